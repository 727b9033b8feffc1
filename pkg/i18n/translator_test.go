package i18n_test

import (
	"bytes"
	"context"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/cardcheck/pkg/i18n"
	"github.com/dmitrymomot/cardcheck/pkg/logger"
)

func newTranslator(t *testing.T, opts ...i18n.Option) *i18n.Translator {
	t.Helper()
	tr, err := i18n.NewTranslator(context.Background(), &i18n.MapAdapter{Data: map[string]map[string]any{
		"en": {
			"prompt": "Enter the card number: ",
			"result": map[string]any{
				"brand":   "Brand: %{brand}",
				"unknown": "Brand not identified.",
			},
			"count": 3,
		},
		"pt": {
			"prompt": "Digite o número do cartão: ",
			"result": map[string]any{
				"brand": "Bandeira: %{brand}",
			},
		},
	}}, opts...)
	require.NoError(t, err)
	return tr
}

func TestTranslator_T(t *testing.T) {
	tr := newTranslator(t)

	assert.Equal(t, "Enter the card number: ", tr.T("en", "prompt"))
	assert.Equal(t, "Digite o número do cartão: ", tr.T("pt", "prompt"))
	assert.Equal(t, "Brand: Visa", tr.T("en", "result.brand", "brand", "Visa"))
	assert.Equal(t, "Bandeira: Elo", tr.T("pt", "result.brand", "brand", "Elo"))
	assert.Equal(t, "3", tr.T("en", "count"))

	t.Run("unknown language uses default", func(t *testing.T) {
		assert.Equal(t, "Brand: JCB", tr.T("de", "result.brand", "brand", "JCB"))
	})

	t.Run("missing key falls back to key", func(t *testing.T) {
		assert.Equal(t, "result.unknown", tr.T("pt", "result.unknown"))
		assert.Equal(t, "result", tr.T("en", "result"))
		assert.Equal(t, "prompt.deeper", tr.T("en", "prompt.deeper"))
	})

	t.Run("unknown placeholders and odd args", func(t *testing.T) {
		assert.Equal(t, "Brand: %{brand}", tr.T("en", "result.brand", "other", "x", "dangling"))
	})
}

func TestTranslator_NoFallback(t *testing.T) {
	buf := &bytes.Buffer{}
	tr := newTranslator(t,
		i18n.WithFallbackToKey(false),
		i18n.WithMissingTranslationsLogging(true),
		i18n.WithLogger(logger.New(logger.WithOutput(buf))),
	)

	assert.Empty(t, tr.T("en", "missing.key"))
	assert.Contains(t, buf.String(), "translation not found")
	assert.Contains(t, buf.String(), "missing.key")
}

func TestTranslator_Match(t *testing.T) {
	tr := newTranslator(t)

	tests := []struct {
		name      string
		preferred []string
		expected  string
	}{
		{"exact", []string{"pt"}, "pt"},
		{"region", []string{"pt-BR"}, "pt"},
		{"posix locale", []string{"pt_BR.UTF-8"}, "pt"},
		{"accept language list", []string{"de-DE,pt;q=0.8,en;q=0.5"}, "pt"},
		{"accept language list prefers higher weight", []string{"en;q=0.2,pt-BR;q=0.9"}, "pt"},
		{"posix locales in a list", []string{"pt_BR.UTF-8;q=0.9, en_US.UTF-8;q=0.5"}, "pt"},
		{"c locale in a list", []string{"C.UTF-8,pt;q=0.5"}, "pt"},
		{"english region", []string{"en-GB"}, "en"},
		{"unsupported", []string{"de"}, "en"},
		{"c locale", []string{"C.UTF-8"}, "en"},
		{"garbage", []string{"!!"}, "en"},
		{"nothing", nil, "en"},
		{"first usable preference", []string{"", "pt"}, "pt"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tr.Match(tt.preferred...))
		})
	}
}

func TestTranslator_Languages(t *testing.T) {
	tr := newTranslator(t, i18n.WithDefaultLanguage("pt"))
	assert.Equal(t, []string{"pt", "en"}, tr.SupportedLanguages())
	assert.Equal(t, "pt", tr.DefaultLanguage())
	assert.Equal(t, "pt", tr.Match("de"))

	assert.True(t, tr.HasTranslation("en", "result.unknown"))
	assert.False(t, tr.HasTranslation("pt", "result.unknown"))
	assert.False(t, tr.HasTranslation("de", "prompt"))
}

func TestNewTranslator_Errors(t *testing.T) {
	ctx := context.Background()

	_, err := i18n.NewTranslator(ctx, nil)
	assert.ErrorIs(t, err, i18n.ErrNilAdapter)

	_, err = i18n.NewTranslator(ctx, &i18n.MapAdapter{})
	assert.ErrorIs(t, err, i18n.ErrNoTranslations)

	_, err = i18n.NewTranslator(ctx, &i18n.MapAdapter{Data: map[string]map[string]any{"en": nil}})
	assert.ErrorIs(t, err, i18n.ErrInvalidCatalog)
}

func TestFSAdapter(t *testing.T) {
	fsys := fstest.MapFS{
		"locales/en.yaml":    {Data: []byte("en:\n  prompt: \"Card: \"\n  result:\n    yes: \"Yes\"\n")},
		"locales/pt.yml":     {Data: []byte("pt:\n  prompt: \"Cartão: \"\n")},
		"locales/notes.txt":  {Data: []byte("ignored")},
		"locales/sub/x.yaml": {Data: []byte("xx:\n  a: b\n")},
	}

	tr, err := i18n.NewTranslator(context.Background(), i18n.NewFSAdapter(i18n.NewYAMLParser(), fsys, "locales"))
	require.NoError(t, err)
	assert.Equal(t, []string{"en", "pt"}, tr.SupportedLanguages())
	assert.Equal(t, "Cartão: ", tr.T("pt", "prompt"))
	assert.Equal(t, "Yes", tr.T("en", "result.yes"))

	t.Run("missing directory", func(t *testing.T) {
		_, err := i18n.NewFSAdapter(i18n.NewYAMLParser(), fsys, "nope").Load(context.Background())
		assert.ErrorIs(t, err, i18n.ErrFailedToReadDirectory)
	})

	t.Run("no catalogs", func(t *testing.T) {
		_, err := i18n.NewFSAdapter(i18n.NewYAMLParser(), fstest.MapFS{"d/a.txt": {}}, "d").Load(context.Background())
		assert.ErrorIs(t, err, i18n.ErrNoTranslations)
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := i18n.NewFSAdapter(i18n.NewYAMLParser(), fsys, "locales").Load(ctx)
		assert.ErrorIs(t, err, i18n.ErrLoadingCancelled)
	})
}

func TestYAMLParser(t *testing.T) {
	p := i18n.NewYAMLParser()
	ctx := context.Background()

	assert.True(t, p.SupportsFileExtension(".yaml"))
	assert.True(t, p.SupportsFileExtension("YML"))
	assert.False(t, p.SupportsFileExtension("json"))

	_, err := p.Parse(ctx, []byte("en: [unterminated"))
	assert.ErrorIs(t, err, i18n.ErrFailedToParseYAML)

	_, err = p.Parse(ctx, []byte("en: just a string\n"))
	assert.ErrorIs(t, err, i18n.ErrInvalidCatalog)

	_, err = p.Parse(ctx, []byte(""))
	assert.ErrorIs(t, err, i18n.ErrNoTranslations)
}
