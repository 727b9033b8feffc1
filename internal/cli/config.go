package cli

import (
	"flag"

	"github.com/dmitrymomot/cardcheck/pkg/config"
	"github.com/dmitrymomot/cardcheck/pkg/logger"
	"github.com/dmitrymomot/cardcheck/pkg/validator"
)

// Config holds the settings of the cardcheck command.
type Config struct {
	Env      string `env:"APP_ENV" envDefault:"production"`
	LogLevel string `env:"LOG_LEVEL"`
	Lang     string `env:"CARDCHECK_LANG"`
	Locale   string `env:"LANG"`
	Table    string `env:"CARDCHECK_TABLE"`

	// DumpTable prints the active prefix table instead of checking numbers.
	DumpTable bool
	// Numbers are checked in turn instead of prompting.
	Numbers []string
}

var (
	environments = []string{logger.Development, logger.Staging, logger.Production, "dev", "stage", "prod"}
	logLevels    = []string{"debug", "info", "warn", "error"}
)

// ParseConfig reads the environment, then lets flags override it.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.Table, "table", cfg.Table, "YAML prefix table replacing the built-in one")
	fs.StringVar(&cfg.Lang, "lang", cfg.Lang, "message language, e.g. en or pt")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn or error")
	fs.BoolVar(&cfg.DumpTable, "dump-table", false, "print the active prefix table as YAML and exit")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	cfg.Numbers = fs.Args()

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the enumerated settings.
func (c Config) Validate() error {
	return validator.Apply(
		validator.InListCaseInsensitive("APP_ENV", c.Env, environments),
		validator.InListCaseInsensitive("LOG_LEVEL", c.LogLevel, logLevels),
	)
}
