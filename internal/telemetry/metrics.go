package telemetry

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/JobinJosh/venezuela-ecnomic-migrants/pkg/analytics"
)

const meterName = "github.com/JobinJosh/venezuela-ecnomic-migrants"

// Metrics holds the run instruments.
type Metrics struct {
	runs        metric.Int64Counter
	individuals metric.Int64Counter
	duration    metric.Float64Histogram
}

// NewMetrics creates instruments on the global meter provider.
func NewMetrics() (*Metrics, error) {
	meter := otel.Meter(meterName)

	runs, err := meter.Int64Counter("migrants.runs",
		metric.WithDescription("Number of generation runs"),
		metric.WithUnit("{run}"))
	if err != nil {
		return nil, err
	}
	individuals, err := meter.Int64Counter("migrants.individuals",
		metric.WithDescription("Individuals generated, by accommodation category"),
		metric.WithUnit("{individual}"))
	if err != nil {
		return nil, err
	}
	duration, err := meter.Float64Histogram("migrants.run.duration",
		metric.WithDescription("Wall time of a generation run"),
		metric.WithUnit("s"))
	if err != nil {
		return nil, err
	}

	return &Metrics{runs: runs, individuals: individuals, duration: duration}, nil
}

// RecordRun records a finished run. source identifies the caller
// ("cli" or "http").
func (m *Metrics) RecordRun(ctx context.Context, source string, r *analytics.Result, elapsed time.Duration) {
	if m == nil {
		return
	}
	src := attribute.String("source", source)
	m.runs.Add(ctx, 1, metric.WithAttributes(src))
	m.duration.Record(ctx, elapsed.Seconds(), metric.WithAttributes(src))
	for cat, n := range r.Summary.Counts {
		if n == 0 {
			continue
		}
		m.individuals.Add(ctx, int64(n), metric.WithAttributes(
			src, attribute.String("accommodation", string(cat))))
	}
}
