package analytics

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/JobinJosh/venezuela-ecnomic-migrants/pkg/population"
	"github.com/JobinJosh/venezuela-ecnomic-migrants/pkg/resources"
	"github.com/JobinJosh/venezuela-ecnomic-migrants/pkg/scenario"
	"github.com/JobinJosh/venezuela-ecnomic-migrants/pkg/validation"
)

const tracerName = "github.com/JobinJosh/venezuela-ecnomic-migrants/pkg/analytics"

// Run generates a population, aggregates its resource demand, and
// summarizes it. Invalid parameters are returned as an error wrapping
// population.ErrInvalidParameter before anything is sampled.
// The population itself is discarded once summarized.
func Run(ctx context.Context, gen *population.Generator, p population.Params) (*Result, *validation.Report, error) {
	tracer := otel.Tracer(tracerName)
	ctx, span := tracer.Start(ctx, "analytics.Run", trace.WithAttributes(
		attribute.Int("population.n", p.N),
		attribute.Int("income.min", p.IncomeMin),
		attribute.Int("income.max", p.IncomeMax),
	))
	defer span.End()

	// 1. Generate
	_, genSpan := tracer.Start(ctx, "population.Generate")
	pop, err := gen.Generate(p)
	if err != nil {
		genSpan.RecordError(err)
		genSpan.SetStatus(codes.Error, err.Error())
		genSpan.End()
		span.SetStatus(codes.Error, "invalid parameters")
		return nil, nil, err
	}
	genSpan.End()

	// 2. Aggregate
	_, aggSpan := tracer.Start(ctx, "resources.Aggregate")
	totals := resources.Aggregate(pop)
	aggSpan.End()

	// 3. Summarize
	summary := Summarize(pop)

	result := &Result{
		Parameters: p,
		Summary:    summary,
		Resources:  totals,
	}

	// 4. Analytical validation
	report := validation.NewReport()
	validateAnalytical(result, report)

	span.SetAttributes(attribute.Float64("resources.total_land", totals.TotalLand))
	return result, report, nil
}

// RunScenario runs a scenario with its own seed and worker count. Extra
// options are applied after the scenario's.
func RunScenario(ctx context.Context, s *scenario.Scenario, opts ...population.Option) (*Result, *validation.Report, error) {
	genOpts := append([]population.Option{population.WithWorkers(s.Workers)}, opts...)
	gen := population.NewGenerator(s.Source(), genOpts...)

	result, report, err := Run(ctx, gen, s.Params())
	if err != nil {
		return nil, nil, err
	}
	result.Scenario = s.Name
	result.Seed = s.Seed
	return result, report, nil
}
