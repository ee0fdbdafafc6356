package apiEndpoint

import (
	"errors"

	"github.com/bsthun/gut"
	"github.com/gofiber/fiber/v3"
	"go.scnd.dev/open/forge/compat/response"
	"go.scnd.dev/open/forge/package/spec"
	"go.scnd.dev/open/forge/procedure/scaffold"
	"go.scnd.dev/open/forge/type/payload"
)

func specFormat(name *string) (spec.Format, error) {
	if name == nil {
		return spec.FormatYaml, nil
	}
	format, err := spec.ParseFormat(*name)
	if err != nil {
		return "", fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return format, nil
}

// invalid maps specification failures onto client errors and passes everything else to the error handler.
func invalid(c fiber.Ctx, err error) error {
	var parseError *spec.ParseError
	if errors.As(err, &parseError) || errors.Is(err, spec.ErrInvalidShape) {
		return c.Status(fiber.StatusBadRequest).JSON(&response.ErrorResponse{
			Success: gut.Ptr(false),
			Message: gut.Ptr("invalid specification"),
			Error:   gut.Ptr(err.Error()),
		})
	}

	var invalidSpecification *scaffold.InvalidSpecificationError
	if errors.As(err, &invalidSpecification) {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(&payload.RejectedResponse{
			Success: gut.Ptr(false),
			Message: gut.Ptr("invalid specification"),
			Errors:  invalidSpecification.Result.Errors(),
			Issues:  invalidSpecification.Result.Issues,
		})
	}

	return err
}
