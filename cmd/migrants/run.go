package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/JobinJosh/venezuela-ecnomic-migrants/internal/config"
	"github.com/JobinJosh/venezuela-ecnomic-migrants/internal/server"
	"github.com/JobinJosh/venezuela-ecnomic-migrants/internal/store"
	"github.com/JobinJosh/venezuela-ecnomic-migrants/internal/telemetry"
	"github.com/JobinJosh/venezuela-ecnomic-migrants/pkg/analytics"
	"github.com/JobinJosh/venezuela-ecnomic-migrants/pkg/scenario"
	"github.com/JobinJosh/venezuela-ecnomic-migrants/pkg/validation"
)

const (
	loggerName      = "github.com/JobinJosh/venezuela-ecnomic-migrants/cmd/migrants"
	defaultDatabase = "migrants.db"
)

// runtime bundles the process-level collaborators of a command.
type runtime struct {
	cfg      config.Config
	logger   *slog.Logger
	metrics  *telemetry.Metrics
	shutdown func(context.Context) error
}

func (rt *runtime) close() {
	if rt.shutdown == nil {
		return
	}
	if err := rt.shutdown(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "telemetry shutdown: %v\n", err)
	}
}

// setupRuntime loads configuration and, when enabled, the OpenTelemetry SDK.
func setupRuntime(ctx context.Context, cmd *cobra.Command, configFile string) (*runtime, error) {
	cfg, err := config.Load(configFile, cmd.Flags())
	if err != nil {
		return nil, err
	}
	rt := &runtime{cfg: cfg}

	if cfg.Telemetry {
		shutdown, err := telemetry.SetupOTelSDK(ctx, os.Stderr)
		if err != nil {
			return nil, fmt.Errorf("setting up telemetry: %w", err)
		}
		rt.shutdown = shutdown
	}
	rt.logger = telemetry.NewLogger(loggerName, cfg.Telemetry, cfg.LogLevel, os.Stderr)

	rt.metrics, err = telemetry.NewMetrics()
	if err != nil {
		rt.close()
		return nil, fmt.Errorf("creating metrics: %w", err)
	}
	return rt, nil
}

// loadScenario reads the scenario from the optional directory argument and
// applies command-line overrides.
func loadScenario(cmd *cobra.Command, args []string, opts *runOptions) (*scenario.Scenario, error) {
	sc := scenario.Default()
	if len(args) == 1 {
		var err error
		sc, err = scenario.LoadProject(args[0])
		if err != nil {
			return nil, fmt.Errorf("loading scenario: %w", err)
		}
	}

	flags := cmd.Flags()
	if flags.Changed("population") {
		sc.Population = opts.population
	}
	if flags.Changed("income-min") {
		sc.Income.Min = opts.incomeMin
	}
	if flags.Changed("income-max") {
		sc.Income.Max = opts.incomeMax
	}
	if flags.Lookup("seed") != nil && flags.Changed("seed") {
		seed := opts.seed
		sc.Seed = &seed
	}
	if flags.Lookup("workers") != nil && flags.Changed("workers") {
		sc.Workers = opts.workers
	}
	return sc, nil
}

func runValidate(cmd *cobra.Command, args []string, opts *runOptions) error {
	sc, err := loadScenario(cmd, args, opts)
	if err != nil {
		return err
	}
	report := validation.ValidateScenario(sc)
	printValidationReport(cmd.OutOrStdout(), report)
	return report.Err()
}

// checkFormat rejects an output format before any work is done.
func checkFormat(format string) error {
	switch format {
	case "text", "json":
		return nil
	}
	return fmt.Errorf("unknown format %q (want text or json)", format)
}

func runModel(cmd *cobra.Command, args []string, opts *runOptions) error {
	if err := checkFormat(opts.format); err != nil {
		return err
	}

	ctx := cmd.Context()
	rt, err := setupRuntime(ctx, cmd, opts.configFile)
	if err != nil {
		return err
	}
	defer rt.close()

	sc, err := loadScenario(cmd, args, opts)
	if err != nil {
		return err
	}
	if sc.Workers == 0 {
		sc.Workers = rt.cfg.Workers
	}

	out := cmd.OutOrStdout()
	schemaReport := validation.ValidateScenario(sc)
	validation.ValidatePopulationLimit(schemaReport, sc, rt.cfg.MaxPopulation)
	if !schemaReport.Valid {
		printValidationReport(out, schemaReport)
		return schemaReport.Err()
	}

	start := time.Now()
	result, analyticsReport, err := analytics.RunScenario(ctx, sc)
	if err != nil {
		return fmt.Errorf("running scenario: %w", err)
	}
	elapsed := time.Since(start)
	schemaReport.Merge(analyticsReport)
	rt.metrics.RecordRun(ctx, "cli", result, elapsed)
	rt.logger.InfoContext(ctx, "run complete",
		"scenario", result.Scenario,
		"population", result.Summary.Population,
		"workers", sc.Workers,
		"elapsed", elapsed)

	if opts.record {
		if err := recordRun(ctx, rt, result); err != nil {
			return err
		}
	}

	if opts.format == "json" {
		return writeJSON(out, map[string]any{
			"result":     result,
			"validation": schemaReport,
		})
	}
	printResult(out, result)
	if len(schemaReport.Warnings) > 0 {
		fmt.Fprintln(out)
		printValidationReport(out, schemaReport)
	}
	return nil
}

func recordRun(ctx context.Context, rt *runtime, result *analytics.Result) error {
	path := rt.cfg.Database
	if path == "" {
		path = defaultDatabase
	}
	runs, err := store.Open(ctx, path)
	if err != nil {
		return err
	}
	defer runs.Close()

	run := store.FromResult(result, time.Now())
	if err := runs.Save(ctx, run); err != nil {
		return err
	}
	rt.logger.InfoContext(ctx, "run recorded", "id", run.ID, "database", path)
	return nil
}

func runDefaults(w io.Writer) error {
	data, err := scenario.Default().Marshal()
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

func runHistory(cmd *cobra.Command, configFile string, limit int, format string) error {
	if err := checkFormat(format); err != nil {
		return err
	}

	ctx := cmd.Context()
	rt, err := setupRuntime(ctx, cmd, configFile)
	if err != nil {
		return err
	}
	defer rt.close()

	path := rt.cfg.Database
	if path == "" {
		path = defaultDatabase
	}
	runs, err := store.Open(ctx, path)
	if err != nil {
		return err
	}
	defer runs.Close()

	list, err := runs.List(ctx, limit)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if format == "json" {
		return writeJSON(out, list)
	}
	printHistory(out, list)
	return nil
}

func runServe(cmd *cobra.Command, configFile string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rt, err := setupRuntime(ctx, cmd, configFile)
	if err != nil {
		return err
	}
	defer rt.close()

	var runs *store.Store
	if rt.cfg.Database != "" {
		runs, err = store.Open(ctx, rt.cfg.Database)
		if err != nil {
			return err
		}
		defer runs.Close()
		rt.logger.Info("recording runs", "database", rt.cfg.Database)
	}

	srv := server.New(rt.cfg, rt.logger, runs, rt.metrics)
	return srv.Start(ctx)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
