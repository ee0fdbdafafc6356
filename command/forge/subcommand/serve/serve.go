package serve

import (
	"context"

	"github.com/gofiber/fiber/v3"
	"go.scnd.dev/open/forge"
	"go.scnd.dev/open/forge/command/forge/app"
	"go.scnd.dev/open/forge/command/forge/common/config"
	"go.scnd.dev/open/forge/compat/common"
	apiEndpoint "go.scnd.dev/open/forge/handler/api"
	"go.scnd.dev/open/forge/procedure/scaffold"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

type Command struct {
	Listen string `help:"Address to listen on (defaults to the configured listen)."`
}

func (r *Command) Run(app *app.App) error {
	return Run(app, r)
}

func Run(app *app.App, command *Command) error {
	c, err := app.Config()
	if err != nil {
		return err
	}
	if command.Listen != "" {
		c.Listen = &command.Listen
	}

	instance, err := app.Forge()
	if err != nil {
		return err
	}

	fx.New(Options(c, instance)).Run()
	return nil
}

func Options(c *config.Config, instance forge.Forge) fx.Option {
	return fx.Options(
		fx.Provide(
			func() *config.Config {
				return c
			},
			func() forge.Forge {
				return instance
			},
			func(c *config.Config) common.FiberConfig {
				return c
			},
			func(c *config.Config) apiEndpoint.Config {
				return c
			},
			func(instance forge.Forge) *scaffold.Scaffold {
				return scaffold.New(instance)
			},
			common.Fiber,
			apiEndpoint.Handle,
		),
		fx.Invoke(
			Register,
		),
		fx.WithLogger(func() fxevent.Logger {
			return &fxevent.ZapLogger{Logger: instance.Logger()}
		}),
	)
}

func Register(lc fx.Lifecycle, app *fiber.App, handler *apiEndpoint.Handler, instance forge.Forge, c *config.Config) {
	handler.Register(app, instance.TracerMiddleware())
	instance.Logger().Info("serving api", zap.String("listen", *c.GetWebListen()))

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return instance.Shutdown(ctx)
		},
	})
}
