package logger

import (
	"log/slog"
	"strconv"

	"github.com/dmitrymomot/cardcheck/pkg/card"
	"github.com/dmitrymomot/cardcheck/pkg/sanitizer"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups multiple non-nil errors under the key "errors".
// If all errors are nil, it returns an empty Attr.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// CardNumber records a masked card number under the key "card".
func CardNumber(number string) slog.Attr {
	return slog.String("card", sanitizer.MaskCardNumber(number))
}

// Brand records a card brand under the key "brand".
// An empty brand yields an empty Attr.
func Brand(b card.Brand) slog.Attr {
	if b == "" {
		return slog.Attr{}
	}
	return slog.String("brand", b.String())
}

// Result groups a validation result under the key "result".
func Result(r card.Result) slog.Attr {
	return Group("result",
		slog.Bool("valid", r.Valid),
		Brand(r.Brand),
	)
}

// Rule records the prefix rule that matched under the key "rule".
func Rule(m card.Match) slog.Attr {
	if m.Rule == nil {
		return slog.Attr{}
	}
	return Group("rule",
		slog.String("prefix", m.Rule.String()),
		slog.Int("entry", m.Entry),
	)
}
