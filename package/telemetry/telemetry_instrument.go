package telemetry

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

type Instrument struct {
	HttpDurationHistogram          metric.Int64Histogram
	HttpActiveRequestUpDownCounter metric.Int64UpDownCounter
	DerivationCounter              metric.Int64Counter
	DerivedFolderHistogram         metric.Int64Histogram
	MaterializedPathCounter        metric.Int64Counter
}

func NewInstrument(meter metric.Meter) (*Instrument, error) {
	httpDurationHistogram, err := meter.Int64Histogram(
		"app.http.duration",
		metric.WithDescription("Duration of HTTP requests"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	httpActiveRequestUpDownCounter, err := meter.Int64UpDownCounter(
		"app.http.active_requests",
		metric.WithDescription("Number of active HTTP requests"),
	)
	if err != nil {
		return nil, err
	}

	derivationCounter, err := meter.Int64Counter(
		"app.forge.derivations",
		metric.WithDescription("Number of structures derived from specifications"),
	)
	if err != nil {
		return nil, err
	}

	derivedFolderHistogram, err := meter.Int64Histogram(
		"app.forge.derived_folders",
		metric.WithDescription("Number of folders in a derived structure"),
	)
	if err != nil {
		return nil, err
	}

	materializedPathCounter, err := meter.Int64Counter(
		"app.forge.materialized_paths",
		metric.WithDescription("Number of paths reported by materialization"),
	)
	if err != nil {
		return nil, err
	}

	return &Instrument{
		HttpDurationHistogram:          httpDurationHistogram,
		HttpActiveRequestUpDownCounter: httpActiveRequestUpDownCounter,
		DerivationCounter:              derivationCounter,
		DerivedFolderHistogram:         derivedFolderHistogram,
		MaterializedPathCounter:        materializedPathCounter,
	}, nil
}

func (r *Instrument) HttpDurationRecord(ctx context.Context, duration int64, path string, status int) {
	r.HttpDurationHistogram.Record(
		ctx,
		duration,
		metric.WithAttributes(
			attribute.String("http.path", path),
			attribute.Int("http.status", status),
		),
	)
}

func (r *Instrument) HttpActiveRequestCounter(ctx context.Context, delta int64, path string) {
	r.HttpActiveRequestUpDownCounter.Add(
		ctx,
		delta,
		metric.WithAttributes(
			attribute.String("http.path", path),
		),
	)
}

func (r *Instrument) DerivationCount(ctx context.Context, module string, folders int) {
	attributes := metric.WithAttributes(
		attribute.String("forge.module", module),
	)
	r.DerivationCounter.Add(ctx, 1, attributes)
	r.DerivedFolderHistogram.Record(ctx, int64(folders), attributes)
}

func (r *Instrument) MaterializedPathCount(ctx context.Context, module string, count int) {
	r.MaterializedPathCounter.Add(
		ctx,
		int64(count),
		metric.WithAttributes(
			attribute.String("forge.module", module),
		),
	)
}
