package forge

import (
	"context"

	"github.com/gofiber/fiber/v3"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

type Forge interface {
	Config() *Config
	Logger() *zap.Logger
	Layer(name string, typ string) Layer
	Tracer() trace.Tracer
	TracerMiddleware() fiber.Handler
	Instrument() Instrument
	Shutdown(ctx context.Context) error
}

// With opens a span on the default layer. Replaced by core.New with one bound to the instance.
var With func(ctx context.Context) (Span, context.Context)
