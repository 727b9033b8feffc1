package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/dmitrymomot/cardcheck/pkg/card"
	"github.com/dmitrymomot/cardcheck/pkg/i18n"
	"github.com/dmitrymomot/cardcheck/pkg/logger"
	"github.com/dmitrymomot/cardcheck/pkg/sanitizer"
)

var maskDigits = sanitizer.Compose(
	sanitizer.StripCardSeparators,
	sanitizer.MaskCardNumber,
	sanitizer.FormatCardNumber,
)

// displayNumber masks a card number for echoing. Input that is not a digit
// string keeps only its outer characters.
func displayNumber(number string) string {
	if _, ok := card.Normalize(number); !ok {
		return sanitizer.MaskString(number, 1)
	}
	return maskDigits(number)
}

// Run executes the command. Without numbers in cfg it prompts for one line
// on in; answers are written to out and diagnostics to log.
func Run(ctx context.Context, cfg Config, in io.Reader, out io.Writer, log *slog.Logger) error {
	if log == nil {
		log = logger.Discard()
	}

	classifier, err := LoadClassifier(cfg.Table)
	if err != nil {
		return err
	}
	if cfg.DumpTable {
		return card.EncodeTable(out, classifier.Table())
	}

	tr, err := NewTranslator(ctx, log)
	if err != nil {
		return err
	}

	p := &printer{
		classifier: classifier,
		tr:         tr,
		lang:       tr.Match(cfg.Lang, cfg.Locale),
		out:        out,
		log:        log,
	}

	if len(cfg.Numbers) > 0 {
		for _, n := range cfg.Numbers {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := p.check(ctx, n, true); err != nil {
				return err
			}
		}
		return nil
	}

	if _, err := fmt.Fprint(out, tr.T(p.lang, "prompt")); err != nil {
		return err
	}
	line, err := readLine(in)
	if err != nil {
		return err
	}
	return p.check(ctx, line, false)
}

// readLine returns the first line of r without its line terminator.
// An empty reader yields an empty line.
func readLine(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

type printer struct {
	classifier *card.Classifier
	tr         *i18n.Translator
	lang       string
	out        io.Writer
	log        *slog.Logger
}

func (p *printer) check(ctx context.Context, number string, echo bool) error {
	res := p.classifier.Validate(number)

	attrs := []any{logger.CardNumber(number), logger.Result(res)}
	if m, ok := p.classifier.Lookup(number); ok {
		attrs = append(attrs, logger.Rule(m))
	}
	p.log.DebugContext(ctx, "card checked", attrs...)

	var b strings.Builder
	if echo {
		b.WriteString(p.tr.T(p.lang, "result.card", "card", displayNumber(number)))
		b.WriteByte('\n')
	}
	if res.Identified() {
		b.WriteString(p.tr.T(p.lang, "result.brand", "brand", res.Brand.String()))
	} else {
		b.WriteString(p.tr.T(p.lang, "result.brand_unknown"))
	}
	b.WriteByte('\n')

	answer := p.tr.T(p.lang, "answer.no")
	if res.Valid {
		answer = p.tr.T(p.lang, "answer.yes")
	}
	b.WriteString(p.tr.T(p.lang, "result.luhn", "answer", answer))
	b.WriteByte('\n')

	_, err := io.WriteString(p.out, b.String())
	return err
}
