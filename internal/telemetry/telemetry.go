package telemetry

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.uber.org/zap"
)

const meterName = "github.com/shaibs3/signupsql"

// Telemetry owns the meter provider and the registry its Prometheus exporter writes to
type Telemetry struct {
	Meter    metric.Meter
	Registry *prometheus.Registry

	provider *sdkmetric.MeterProvider
	logger   *zap.Logger

	rowsRead     metric.Int64Counter
	rowsAdmitted metric.Int64Counter
	rowsSkipped  metric.Int64Counter
}

// NewTelemetry sets up an OpenTelemetry meter exported to a private Prometheus registry
func NewTelemetry(logger *zap.Logger) (*Telemetry, error) {
	registry := prometheus.NewRegistry()
	exporter, err := otelprom.New(otelprom.WithRegisterer(registry))
	if err != nil {
		return nil, fmt.Errorf("failed to create prometheus exporter: %w", err)
	}

	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(exporter))
	meter := provider.Meter(meterName)

	t := &Telemetry{
		Meter:    meter,
		Registry: registry,
		provider: provider,
		logger:   logger.Named("telemetry"),
	}

	if t.rowsRead, err = meter.Int64Counter("signup_rows_read",
		metric.WithDescription("Rows read from the signup export")); err != nil {
		return nil, err
	}
	if t.rowsAdmitted, err = meter.Int64Counter("signup_rows_admitted",
		metric.WithDescription("Rows turned into insert tuples")); err != nil {
		return nil, err
	}
	if t.rowsSkipped, err = meter.Int64Counter("signup_rows_skipped",
		metric.WithDescription("Rows dropped for having too few fields")); err != nil {
		return nil, err
	}
	return t, nil
}

// RecordRows adds the outcome of one conversion to the row counters
func (t *Telemetry) RecordRows(ctx context.Context, read, admitted, skipped int) {
	t.rowsRead.Add(ctx, int64(read))
	t.rowsAdmitted.Add(ctx, int64(admitted))
	t.rowsSkipped.Add(ctx, int64(skipped))
}

// Snapshot gathers the registry into a flat name -> value map.
// Counter and gauge samples of the same family are summed.
func (t *Telemetry) Snapshot() (map[string]float64, error) {
	families, err := t.Registry.Gather()
	if err != nil {
		return nil, fmt.Errorf("failed to gather metrics: %w", err)
	}
	out := make(map[string]float64, len(families))
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			switch {
			case m.GetCounter() != nil:
				out[mf.GetName()] += m.GetCounter().GetValue()
			case m.GetGauge() != nil:
				out[mf.GetName()] += m.GetGauge().GetValue()
			}
		}
	}
	return out, nil
}

// Shutdown flushes and stops the meter provider
func (t *Telemetry) Shutdown(ctx context.Context) error {
	if err := t.provider.Shutdown(ctx); err != nil {
		t.logger.Warn("meter provider shutdown failed", zap.Error(err))
		return err
	}
	return nil
}
