package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/JobinJosh/venezuela-ecnomic-migrants/internal/config"
	"github.com/JobinJosh/venezuela-ecnomic-migrants/pkg/population"
	"github.com/JobinJosh/venezuela-ecnomic-migrants/pkg/validation"
)

const (
	exitFailure        = 1
	exitInvalidParams  = 2
	defaultHistorySize = 20
)

// runOptions are the flags shared by run and validate.
type runOptions struct {
	population int
	incomeMin  int
	incomeMax  int
	seed       uint64
	workers    int
	format     string
	record     bool
	configFile string
}

func main() {
	os.Exit(exitCode(newRootCmd().Execute()))
}

// exitCode maps a command error to the process exit status.
func exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, population.ErrInvalidParameter), errors.Is(err, validation.ErrInvalid):
		return exitInvalidParams
	default:
		return exitFailure
	}
}

func newRootCmd() *cobra.Command {
	var configFile string

	rootCmd := &cobra.Command{
		Use:           "migrants",
		Short:         "Housing choice and resource demand model for migrant populations",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (yaml, json, or toml)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().Bool("telemetry", false, "export traces, metrics, and logs to stderr")
	rootCmd.PersistentFlags().Int("max-population", config.DefaultMaxPopulation, "largest population a run may generate (0 for no limit)")

	rootCmd.AddCommand(runCmd(&configFile))
	rootCmd.AddCommand(validateCmd(&configFile))
	rootCmd.AddCommand(defaultsCmd())
	rootCmd.AddCommand(historyCmd(&configFile))
	rootCmd.AddCommand(serveCmd(&configFile))
	return rootCmd
}

func runCmd(configFile *string) *cobra.Command {
	opts := &runOptions{}

	cmd := &cobra.Command{
		Use:   "run [scenario-dir]",
		Short: "Generate a population, classify housing, and report resource demand",
		Long: `Run generates a synthetic migrant population, assigns each person an
accommodation type, and aggregates the implied water, electricity, and land
demand. Without a scenario directory the default parameters are used.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.configFile = *configFile
			return runModel(cmd, args, opts)
		},
	}

	f := cmd.Flags()
	f.IntVarP(&opts.population, "population", "n", 0, "number of persons (overrides scenario)")
	f.IntVar(&opts.incomeMin, "income-min", 0, "minimum monthly income in USD (overrides scenario)")
	f.IntVar(&opts.incomeMax, "income-max", 0, "maximum monthly income in USD (overrides scenario)")
	f.Uint64Var(&opts.seed, "seed", 0, "random seed for a reproducible run (overrides scenario)")
	f.IntVarP(&opts.workers, "workers", "w", 0, "generation goroutines (overrides scenario and config)")
	f.StringVarP(&opts.format, "format", "f", "text", "output format: text, json")
	f.BoolVar(&opts.record, "record", false, "record the run summary in the history database")
	f.String("database", "", "history database path")
	return cmd
}

func validateCmd(configFile *string) *cobra.Command {
	opts := &runOptions{}

	cmd := &cobra.Command{
		Use:   "validate [scenario-dir]",
		Short: "Validate a scenario without running it",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.configFile = *configFile
			return runValidate(cmd, args, opts)
		},
	}

	f := cmd.Flags()
	f.IntVarP(&opts.population, "population", "n", 0, "number of persons (overrides scenario)")
	f.IntVar(&opts.incomeMin, "income-min", 0, "minimum monthly income in USD (overrides scenario)")
	f.IntVar(&opts.incomeMax, "income-max", 0, "maximum monthly income in USD (overrides scenario)")
	return cmd
}

func defaultsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "defaults",
		Short: "Print the default scenario as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDefaults(cmd.OutOrStdout())
		},
	}
}

func historyCmd(configFile *string) *cobra.Command {
	var limit int
	var format string

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded runs, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runHistory(cmd, *configFile, limit, format)
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "l", defaultHistorySize, "maximum runs to list (0 for all)")
	cmd.Flags().StringVarP(&format, "format", "f", "text", "output format: text, json")
	cmd.Flags().String("database", "", "history database path")
	return cmd
}

func serveCmd(configFile *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API for interactive what-if runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd, *configFile)
		},
	}

	cmd.Flags().IntP("port", "p", 3000, "HTTP server port")
	cmd.Flags().String("database", "", "history database path; runs are recorded when set")
	cmd.Flags().IntP("workers", "w", 1, "generation goroutines per run")
	return cmd
}
