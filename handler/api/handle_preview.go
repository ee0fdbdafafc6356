package apiEndpoint

import (
	"github.com/bsthun/gut"
	"github.com/gofiber/fiber/v3"
	"go.scnd.dev/open/forge/type/payload"
)

// HandlePreview
// @forge handler
func (r *Handler) HandlePreview(c fiber.Ctx) error {
	// * span
	s, ctx := r.layer.With(c.Context())
	defer s.End()

	// * parse body
	body := new(payload.SpecRequest)
	if err := c.Bind().Body(body); err != nil {
		return err
	}
	if err := r.validator.Struct(body); err != nil {
		return err
	}

	// * derive structure
	format, err := specFormat(body.Format)
	if err != nil {
		return err
	}
	derived, err := r.scaffold.Preview(ctx, []byte(*body.YamlContent), format)
	if err != nil {
		return invalid(c, err)
	}
	s.Variable("module", derived.ModuleName)

	// * response
	return c.JSON(&payload.PreviewResponse{
		Success:    gut.Ptr(true),
		ModuleName: &derived.ModuleName,
		Structure:  derived,
	})
}
