package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable name, e.g.
// FLASHCARDS_SESSION_EXPORT_TO or FLASHCARDS_LOG_LEVEL.
const EnvPrefix = "FLASHCARDS"

// Flag names understood by Load.
const (
	FlagImportFrom = "import_from"
	FlagExportTo   = "export_to"
	FlagLogLevel   = "log-level"
	FlagSeed       = "seed"
	FlagConfig     = "config"
)

// flagKeys maps config keys to the flags that set them.
var flagKeys = map[string]string{
	"session.import_from": FlagImportFrom,
	"session.export_to":   FlagExportTo,
	"log.level":           FlagLogLevel,
	"quiz.seed":           FlagSeed,
}

// RegisterFlags defines the command-line flags read by Load on fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String(FlagImportFrom, "", "import flashcards from this JSON file before the first prompt")
	fs.String(FlagExportTo, "", "export all flashcards to this JSON file on exit")
	fs.String(FlagLogLevel, "", "log level (debug, info, warn, error)")
	fs.Uint64(FlagSeed, 0, "seed for card selection (0 picks a random seed)")
	fs.String(FlagConfig, "", "path to a config file (default ./flashcards.yaml if present)")
}

// Load builds the configuration from, in decreasing precedence, flags set on
// the command line, environment variables, the config file and defaults.
// flags may be nil. Returns a populated Config or an error if loading or
// validation fails.
func Load(flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	v.SetDefault("session.import_from", "")
	v.SetDefault("session.export_to", "")
	v.SetDefault("log.level", "warn")
	v.SetDefault("quiz.seed", 0)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var configFile string
	if flags != nil {
		for key, name := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
				}
			}
		}
		if f := flags.Lookup(FlagConfig); f != nil {
			configFile = f.Value.String()
		}
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configFile, err)
		}
	} else {
		v.SetConfigName("flashcards")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.Log.Level = strings.ToLower(strings.TrimSpace(cfg.Log.Level))

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	return &cfg, nil
}
