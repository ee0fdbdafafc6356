package apiEndpoint

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
	"go.scnd.dev/open/forge"
	"go.scnd.dev/open/forge/compat/common"
	"go.scnd.dev/open/forge/compat/predefine"
	"go.scnd.dev/open/forge/procedure/scaffold"
)

type Config interface {
	GetApiSecret() string
	GetGenerateRoot() string
}

type Handler struct {
	layer     forge.Layer
	scaffold  *scaffold.Scaffold
	validator *validator.Validate
	config    Config
}

func Handle(
	forge forge.Forge,
	scaffold *scaffold.Scaffold,
	config Config,
) *Handler {
	return &Handler{
		layer:     forge.Layer("api", "handler"),
		scaffold:  scaffold,
		validator: validator.New(),
		config:    config,
	}
}

// Register mounts the health check and the api group. The api group requires
// a bearer token when a secret is configured.
func (r *Handler) Register(app *fiber.App, middlewares ...fiber.Handler) {
	for _, middleware := range middlewares {
		app.Use(middleware)
	}

	app.Get("/health", r.HandleHealth)

	api := app.Group("/api")
	secret := r.config.GetApiSecret()
	if secret != "" {
		api.Use(common.Jwt(secret))
	}
	api.Post("/validate", r.HandleValidate)
	api.Post("/preview", r.HandlePreview)
	if secret != "" {
		api.Post("/generate", common.Scope(predefine.ScopeGenerate), r.HandleGenerate)
	} else {
		api.Post("/generate", r.HandleGenerate)
	}
}
