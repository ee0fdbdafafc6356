package apiEndpoint

import (
	"github.com/bsthun/gut"
	"github.com/gofiber/fiber/v3"
	"go.scnd.dev/open/forge/type/payload"
)

func (r *Handler) HandleHealth(c fiber.Ctx) error {
	return c.JSON(&payload.HealthResponse{
		Status:  gut.Ptr("ok"),
		Service: gut.Ptr("forge"),
	})
}
