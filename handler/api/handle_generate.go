package apiEndpoint

import (
	"errors"

	"github.com/bsthun/gut"
	"github.com/gofiber/fiber/v3"
	"go.scnd.dev/open/forge/procedure/scaffold"
	"go.scnd.dev/open/forge/type/payload"
)

// HandleGenerate
// @forge handler
// @forge auth scope:generate
func (r *Handler) HandleGenerate(c fiber.Ctx) error {
	// * span
	s, ctx := r.layer.With(c.Context())
	defer s.End()

	// * parse body
	body := new(payload.GenerateRequest)
	if err := c.Bind().Body(body); err != nil {
		return err
	}
	if err := r.validator.Struct(body); err != nil {
		return err
	}

	// * confine output
	output, err := scaffold.Confine(r.config.GetGenerateRoot(), *body.OutputPath)
	if errors.Is(err, scaffold.ErrOutsideRoot) {
		return fiber.NewError(fiber.StatusForbidden, err.Error())
	}
	if err != nil {
		return s.Error("unable to resolve output path", err)
	}
	s.Variable("output", output)

	// * generate structure
	format, err := specFormat(body.Format)
	if err != nil {
		return err
	}
	generation, err := r.scaffold.Generate(ctx, []byte(*body.YamlContent), format, output, body.Validate != nil && *body.Validate)
	if err != nil {
		return invalid(c, err)
	}

	// * response
	return c.JSON(&payload.GenerateResponse{
		Success:      gut.Ptr(true),
		ModuleName:   &generation.ModuleName,
		CreatedPaths: generation.Paths,
		Structure:    generation.Structure,
	})
}
