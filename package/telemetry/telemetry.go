package telemetry

import (
	"context"
	"errors"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.38.0"
	"go.opentelemetry.io/otel/trace"
	"go.scnd.dev/open/forge"
	"go.scnd.dev/open/forge/package/span"
)

type Telemetry struct {
	Forge          forge.Forge
	Layer          forge.Layer
	Meter          metric.Meter
	Tracer         trace.Tracer
	Instrument     *Instrument
	MeterProvider  *sdkmetric.MeterProvider
	TracerProvider *sdktrace.TracerProvider
}

func New(forge forge.Forge) (_ *Telemetry, err error) {
	// * construct telemetry
	telemetry := &Telemetry{
		Forge:          forge,
		Layer:          forge.Layer("telemetry", "forge"),
		Meter:          nil,
		Tracer:         nil,
		Instrument:     nil,
		MeterProvider:  nil,
		TracerProvider: nil,
	}

	// * construct resource
	config := forge.Config()
	attributes := make([]attribute.KeyValue, 0)
	if config.AppName != nil {
		attributes = append(attributes, semconv.ServiceName(*config.AppName))
	}
	if config.AppVersion != nil {
		attributes = append(attributes, semconv.ServiceVersion(*config.AppVersion))
	}
	if config.AppNamespace != nil {
		attributes = append(attributes, semconv.ServiceNamespace(*config.AppNamespace))
	}
	res, err := resource.New(context.Background(), resource.WithAttributes(attributes...))
	if err != nil {
		return nil, span.NewError(nil, "unable to initialize resource", err)
	}

	// * construct meter
	telemetry.Meter, err = NewMeter(telemetry, res)
	if err != nil {
		return nil, err
	}

	// * construct tracer
	telemetry.Tracer, err = NewTracer(telemetry, res)
	if err != nil {
		return nil, err
	}

	// * construct instrument
	telemetry.Instrument, err = NewInstrument(telemetry.Meter)
	if err != nil {
		return nil, span.NewError(nil, "unable to initialize instrument", err)
	}

	return telemetry, nil
}

// Exporting reports whether an otlp collector is configured.
func (r *Telemetry) Exporting() bool {
	url := r.Forge.Config().TelemetryUrl
	return url != nil && *url != ""
}

func (r *Telemetry) headers() map[string]string {
	headers := make(map[string]string)
	if organization := r.Forge.Config().TelemetryOrganization; organization != nil && *organization != "" {
		headers["X-Scope-OrgID"] = *organization
	}
	return headers
}

func NewMeter(telemetry *Telemetry, res *resource.Resource) (metric.Meter, error) {
	options := []sdkmetric.Option{
		sdkmetric.WithResource(res),
	}

	// * construct exporter
	if telemetry.Exporting() {
		exporter, err := otlpmetricgrpc.New(
			context.Background(),
			otlpmetricgrpc.WithEndpoint(*telemetry.Forge.Config().TelemetryUrl),
			otlpmetricgrpc.WithHeaders(telemetry.headers()),
			otlpmetricgrpc.WithInsecure(),
		)
		if err != nil {
			return nil, span.NewError(nil, "unable to initialize metric exporter", err)
		}
		options = append(options, sdkmetric.WithReader(sdkmetric.NewPeriodicReader(
			exporter,
			sdkmetric.WithInterval(time.Minute),
		)))
	}

	// * construct provider
	telemetry.MeterProvider = sdkmetric.NewMeterProvider(options...)
	otel.SetMeterProvider(telemetry.MeterProvider)

	return telemetry.MeterProvider.Meter("forge-meter"), nil
}

func NewTracer(telemetry *Telemetry, res *resource.Resource) (trace.Tracer, error) {
	options := []sdktrace.TracerProviderOption{
		sdktrace.WithResource(res),
	}

	// * construct exporter
	if telemetry.Exporting() {
		exporter, err := otlptracegrpc.New(
			context.Background(),
			otlptracegrpc.WithEndpoint(*telemetry.Forge.Config().TelemetryUrl),
			otlptracegrpc.WithHeaders(telemetry.headers()),
			otlptracegrpc.WithInsecure(),
		)
		if err != nil {
			return nil, span.NewError(nil, "unable to initialize trace exporter", err)
		}
		options = append(options, sdktrace.WithBatcher(exporter))
	}

	// * construct provider
	telemetry.TracerProvider = sdktrace.NewTracerProvider(options...)
	otel.SetTracerProvider(telemetry.TracerProvider)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	return telemetry.TracerProvider.Tracer("forge-tracer"), nil
}

func (r *Telemetry) Shutdown(ctx context.Context) error {
	var errs []error
	if r.TracerProvider != nil {
		errs = append(errs, r.TracerProvider.Shutdown(ctx))
	}
	if r.MeterProvider != nil {
		errs = append(errs, r.MeterProvider.Shutdown(ctx))
	}
	return errors.Join(errs...)
}
