package apiEndpoint

import (
	"github.com/bsthun/gut"
	"github.com/gofiber/fiber/v3"
	"go.scnd.dev/open/forge/type/payload"
)

// HandleValidate
// @forge handler
func (r *Handler) HandleValidate(c fiber.Ctx) error {
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

	// * validate specification
	format, err := specFormat(body.Format)
	if err != nil {
		return err
	}
	result, err := r.scaffold.Validate(ctx, []byte(*body.YamlContent), format)
	if err != nil {
		return invalid(c, err)
	}
	s.Variable("valid", result.Valid())

	// * response
	return c.JSON(&payload.ValidateResponse{
		Valid:  gut.Ptr(result.Valid()),
		Errors: result.Errors(),
		Issues: result.Issues,
	})
}
