// Package logger builds slog loggers with functional options and provides
// attribute helpers that keep card data out of the logs.
//
// New creates a *slog.Logger writing JSON at INFO level to stdout unless
// options say otherwise:
//
//	log := logger.New(
//	    logger.WithEnvironment(os.Getenv("APP_ENV"), "cardcheck"),
//	    logger.WithOutput(os.Stderr),
//	)
//	log.Info("card checked",
//	    logger.CardNumber(number), // masked, never the raw number
//	    logger.Result(card.Validate(number)),
//	)
//
// # Configuration
//
//   - WithDevelopment / WithStaging / WithProduction / WithEnvironment – presets.
//   - WithFormat / WithTextFormatter / WithJSONFormatter – output format.
//   - WithLevel / WithLevelName – minimum level.
//   - WithOutput – destination writer.
//   - WithAttr – static attributes added to every record.
//
// # Error Handling
//
// Error and Errors produce attributes only for non-nil errors, so they can
// be passed unconditionally.
package logger
