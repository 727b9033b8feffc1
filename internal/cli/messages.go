package cli

import (
	"context"
	"embed"
	"log/slog"

	"github.com/dmitrymomot/cardcheck/pkg/i18n"
)

//go:embed locales/*.yaml
var locales embed.FS

// NewTranslator loads the embedded message catalogs.
func NewTranslator(ctx context.Context, log *slog.Logger) (*i18n.Translator, error) {
	return i18n.NewTranslator(ctx,
		i18n.NewFSAdapter(i18n.NewYAMLParser(), locales, "locales"),
		i18n.WithLogger(log),
		i18n.WithMissingTranslationsLogging(true),
	)
}
