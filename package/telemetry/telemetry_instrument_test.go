package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func collect(t *testing.T, reader *sdkmetric.ManualReader) map[string]metricdata.Aggregation {
	t.Helper()
	data := new(metricdata.ResourceMetrics)
	require.NoError(t, reader.Collect(context.Background(), data))

	metrics := make(map[string]metricdata.Aggregation)
	for _, scope := range data.ScopeMetrics {
		for _, item := range scope.Metrics {
			metrics[item.Name] = item.Data
		}
	}
	return metrics
}

func TestInstrumentForgeCounters(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	defer func() {
		_ = provider.Shutdown(context.Background())
	}()

	instrument, err := NewInstrument(provider.Meter("forge-test"))
	require.NoError(t, err)

	ctx := context.Background()
	instrument.DerivationCount(ctx, "Billing", 4)
	instrument.DerivationCount(ctx, "Billing", 6)
	instrument.MaterializedPathCount(ctx, "Billing", 9)

	metrics := collect(t, reader)
	module := attribute.String("forge.module", "Billing")

	// * derivations
	derivations, ok := metrics["app.forge.derivations"].(metricdata.Sum[int64])
	require.True(t, ok)
	require.Len(t, derivations.DataPoints, 1)
	assert.Equal(t, int64(2), derivations.DataPoints[0].Value)
	value, ok := derivations.DataPoints[0].Attributes.Value(module.Key)
	assert.True(t, ok)
	assert.Equal(t, module.Value, value)

	// * derived folders
	folders, ok := metrics["app.forge.derived_folders"].(metricdata.Histogram[int64])
	require.True(t, ok)
	require.Len(t, folders.DataPoints, 1)
	assert.Equal(t, uint64(2), folders.DataPoints[0].Count)
	assert.Equal(t, int64(10), folders.DataPoints[0].Sum)

	// * materialized paths
	paths, ok := metrics["app.forge.materialized_paths"].(metricdata.Sum[int64])
	require.True(t, ok)
	require.Len(t, paths.DataPoints, 1)
	assert.Equal(t, int64(9), paths.DataPoints[0].Value)
}

func TestInstrumentHttp(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	defer func() {
		_ = provider.Shutdown(context.Background())
	}()

	instrument, err := NewInstrument(provider.Meter("forge-test"))
	require.NoError(t, err)

	ctx := context.Background()
	instrument.HttpActiveRequestCounter(ctx, 1, "/api/preview")
	instrument.HttpDurationRecord(ctx, 12, "/api/preview", 200)
	instrument.HttpActiveRequestCounter(ctx, -1, "/api/preview")

	metrics := collect(t, reader)

	active, ok := metrics["app.http.active_requests"].(metricdata.Sum[int64])
	require.True(t, ok)
	require.Len(t, active.DataPoints, 1)
	assert.Equal(t, int64(0), active.DataPoints[0].Value)

	duration, ok := metrics["app.http.duration"].(metricdata.Histogram[int64])
	require.True(t, ok)
	require.Len(t, duration.DataPoints, 1)
	assert.Equal(t, uint64(1), duration.DataPoints[0].Count)
	assert.Equal(t, int64(12), duration.DataPoints[0].Sum)
}
