package core

import (
	"context"

	"github.com/gofiber/fiber/v3"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.scnd.dev/open/forge"
	"go.scnd.dev/open/forge/package/logger"
	"go.scnd.dev/open/forge/package/span"
	"go.scnd.dev/open/forge/package/telemetry"
	"go.uber.org/zap"
)

type Instance struct {
	config    *forge.Config
	logger    *zap.Logger
	telemetry *telemetry.Telemetry
}

func New(config *forge.Config) (_ forge.Forge, err error) {
	i := &Instance{
		config:    config,
		logger:    nil,
		telemetry: nil,
	}

	// * construct logger
	loggerConfig := &logger.Config{}
	if config.LogLevel != nil {
		loggerConfig.Level = *config.LogLevel
	}
	if config.LogJson != nil {
		loggerConfig.Json = *config.LogJson
	}
	if config.Verbose != nil {
		loggerConfig.Verbose = *config.Verbose
	}
	i.logger, err = logger.New(loggerConfig)
	if err != nil {
		return nil, span.NewError(nil, "unable to initialize logger", err)
	}

	// * construct telemetry
	i.telemetry, err = telemetry.New(i)
	if err != nil {
		return nil, err
	}

	forge.With = span.NewLayer(i, "", "").With

	return i, nil
}

func (r *Instance) Config() *forge.Config {
	return r.config
}

func (r *Instance) Logger() *zap.Logger {
	if r.logger == nil {
		return zap.NewNop()
	}
	return r.logger
}

func (r *Instance) Layer(name string, typ string) forge.Layer {
	return span.NewLayer(r, name, typ)
}

func (r *Instance) Tracer() oteltrace.Tracer {
	if r.telemetry == nil {
		return nil
	}
	return r.telemetry.Tracer
}

func (r *Instance) TracerMiddleware() fiber.Handler {
	return r.telemetry.Middleware()
}

func (r *Instance) Instrument() forge.Instrument {
	if r.telemetry == nil {
		return nil
	}
	return r.telemetry.Instrument
}

func (r *Instance) Shutdown(ctx context.Context) error {
	_ = r.Logger().Sync()
	if r.telemetry == nil {
		return nil
	}
	return r.telemetry.Shutdown(ctx)
}

func init() {
	forge.With = span.NewLayer(nil, "", "").With
}
