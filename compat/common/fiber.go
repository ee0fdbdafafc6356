package common

import (
	"context"

	"github.com/bsthun/gut"
	"github.com/gofiber/fiber/v3"
	"go.scnd.dev/open/forge/compat/response"
	"go.uber.org/fx"
)

type FiberConfig interface {
	GetWebListen() *string
}

func NewFiber() *fiber.App {
	return fiber.New(fiber.Config{
		AppName:       "forge",
		ErrorHandler:  response.FiberError,
		StrictRouting: true,
		BodyLimit:     16 * 1024 * 1024,
	})
}

func Fiber(lc fx.Lifecycle, config FiberConfig) *fiber.App {
	app := NewFiber()

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				err := app.Listen(*config.GetWebListen(), fiber.ListenConfig{
					DisableStartupMessage: true,
				})
				if err != nil {
					gut.Fatal("unable to listen", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return app.ShutdownWithContext(ctx)
		},
	})

	return app
}
