package i18n

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"slices"
	"strings"

	"golang.org/x/text/language"
)

// DefaultLanguage is used when no WithDefaultLanguage option is given.
const DefaultLanguage = "en"

// Translator resolves message keys to localized strings.
type Translator struct {
	translations  map[string]map[string]any
	defaultLang   string
	fallbackToKey bool
	logMissing    bool
	logger        *slog.Logger

	langs   []string
	matcher language.Matcher
}

// NewTranslator loads translations from adapter.
func NewTranslator(ctx context.Context, adapter TranslationAdapter, options ...Option) (*Translator, error) {
	if adapter == nil {
		return nil, ErrNilAdapter
	}

	t := &Translator{
		defaultLang:   DefaultLanguage,
		fallbackToKey: true,
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, option := range options {
		option(t)
	}

	translations, err := adapter.Load(ctx)
	if err != nil {
		return nil, err
	}
	if len(translations) == 0 {
		return nil, ErrNoTranslations
	}
	for lang, tree := range translations {
		if lang == "" || tree == nil {
			return nil, fmt.Errorf("%w: empty language or nil messages for %q", ErrInvalidCatalog, lang)
		}
	}
	t.translations = translations
	t.buildMatcher()

	t.logger.DebugContext(ctx, "translations loaded", slog.Any("languages", t.langs))
	return t, nil
}

// buildMatcher orders the default language first so that the matcher falls
// back to it when nothing matches.
func (t *Translator) buildMatcher() {
	langs := make([]string, 0, len(t.translations))
	for lang := range t.translations {
		langs = append(langs, lang)
	}
	slices.Sort(langs)
	if i := slices.Index(langs, t.defaultLang); i > 0 {
		langs = append(append([]string{t.defaultLang}, langs[:i]...), langs[i+1:]...)
	}

	tags := make([]language.Tag, len(langs))
	for i, lang := range langs {
		tags[i] = language.Make(lang)
	}
	t.langs = langs
	t.matcher = language.NewMatcher(tags)
}

// SupportedLanguages returns the loaded language codes, default first.
func (t *Translator) SupportedLanguages() []string {
	return slices.Clone(t.langs)
}

// DefaultLanguage returns the fallback language code.
func (t *Translator) DefaultLanguage() string {
	return t.defaultLang
}

// Match returns the supported language that best fits the preferences.
// Each preference may be a BCP 47 tag ("pt-BR"), an Accept-Language list
// ("pt-BR,pt;q=0.9") or a POSIX locale ("pt_BR.UTF-8").
// Without a reasonable match the default language is returned.
func (t *Translator) Match(preferred ...string) string {
	var desired []language.Tag
	for _, p := range preferred {
		tags, _, err := language.ParseAcceptLanguage(normalizePreference(p))
		if err != nil {
			continue
		}
		desired = append(desired, tags...)
	}
	if len(desired) == 0 {
		return t.defaultLang
	}

	_, idx, conf := t.matcher.Match(desired...)
	if conf == language.No || idx >= len(t.langs) {
		return t.defaultLang
	}
	return t.langs[idx]
}

// normalizePreference rewrites POSIX locales inside a preference list into
// BCP 47 tags. Parameters such as q-values are left untouched.
func normalizePreference(pref string) string {
	var parts []string
	for entry := range strings.SplitSeq(pref, ",") {
		tag, params, hasParams := strings.Cut(entry, ";")
		tag = posixToBCP47(tag)
		if tag == "" {
			continue
		}
		if hasParams {
			tag += ";" + params
		}
		parts = append(parts, tag)
	}
	return strings.Join(parts, ",")
}

func posixToBCP47(locale string) string {
	locale = strings.TrimSpace(locale)
	if i := strings.IndexAny(locale, ".@"); i >= 0 {
		locale = locale[:i]
	}
	if locale == "C" || locale == "POSIX" {
		return ""
	}
	return strings.ReplaceAll(locale, "_", "-")
}

// HasTranslation checks if a translation exists for the given language and key.
func (t *Translator) HasTranslation(lang, key string) bool {
	tree, ok := t.translations[lang]
	if !ok {
		return false
	}
	_, ok = lookup(tree, key)
	return ok
}

// T translates a dot-separated key for lang. Arguments are name/value pairs
// substituted into "%{name}" placeholders:
//
//	tr.T("en", "result.brand", "brand", "Visa") // "Brand: Visa"
//
// Unknown languages use the default language. Missing keys return the key
// itself unless WithFallbackToKey(false) was given.
func (t *Translator) T(lang, key string, args ...string) string {
	tree, ok := t.translations[lang]
	if !ok {
		tree = t.translations[t.defaultLang]
	}

	val, ok := lookup(tree, key)
	if !ok {
		return t.missing(lang, key, args)
	}

	switch v := val.(type) {
	case string:
		return substitute(v, args)
	case fmt.Stringer:
		return substitute(v.String(), args)
	case map[string]any:
		return t.missing(lang, key, args)
	default:
		return substitute(fmt.Sprint(v), args)
	}
}

func (t *Translator) missing(lang, key string, args []string) string {
	if t.logMissing {
		t.logger.Warn("translation not found", slog.String("lang", lang), slog.String("key", key))
	}
	if t.fallbackToKey {
		return substitute(key, args)
	}
	return ""
}

// lookup walks a nested map using dot-separated keys.
func lookup(tree map[string]any, key string) (any, bool) {
	var current any = tree
	for part := range strings.SplitSeq(key, ".") {
		m, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		if current, ok = m[part]; !ok {
			return nil, false
		}
	}
	return current, true
}

var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// substitute replaces "%{name}" placeholders with values from name/value
// pairs. Unknown placeholders are kept; a trailing odd argument is ignored.
func substitute(tmpl string, args []string) string {
	if len(args) < 2 || !strings.Contains(tmpl, "%{") {
		return tmpl
	}
	params := make(map[string]string, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		params[args[i]] = args[i+1]
	}
	return paramRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		if val, ok := params[match[2:len(match)-1]]; ok {
			return val
		}
		return match
	})
}
