package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable the tool reads,
// e.g. MIGRANTS_PORT.
const EnvPrefix = "MIGRANTS"

// DefaultMaxPopulation bounds the individuals a single run may generate.
const DefaultMaxPopulation = 1_000_000

// Config holds process-level settings. Scenario parameters live in
// scenario files, not here. An empty Database disables run history.
// MaxPopulation <= 0 removes the population cap.
type Config struct {
	Port          int    `mapstructure:"port"`
	Database      string `mapstructure:"database"`
	Telemetry     bool   `mapstructure:"telemetry"`
	LogLevel      string `mapstructure:"log_level"`
	Workers       int    `mapstructure:"workers"`
	MaxPopulation int    `mapstructure:"max_population"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Port:          3000,
		LogLevel:      "info",
		Workers:       1,
		MaxPopulation: DefaultMaxPopulation,
	}
}

// Load resolves settings from, in increasing precedence: defaults, the
// optional config file, MIGRANTS_* environment variables, and any flags in
// fs that were set explicitly. Flags are bound by their key name with
// dashes, e.g. --log-level for log_level.
func Load(configFile string, fs *pflag.FlagSet) (Config, error) {
	v := viper.New()

	def := Default()
	v.SetDefault("port", def.Port)
	v.SetDefault("database", def.Database)
	v.SetDefault("telemetry", def.Telemetry)
	v.SetDefault("log_level", def.LogLevel)
	v.SetDefault("workers", def.Workers)
	v.SetDefault("max_population", def.MaxPopulation)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	if fs != nil {
		for _, key := range []string{"port", "database", "telemetry", "log_level", "workers", "max_population"} {
			f := fs.Lookup(strings.ReplaceAll(key, "_", "-"))
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return Config{}, fmt.Errorf("binding flag %s: %w", f.Name, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	return cfg, nil
}
