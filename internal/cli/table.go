package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/dmitrymomot/cardcheck/pkg/card"
)

// ErrLoadTable is returned when a custom prefix table cannot be used.
var ErrLoadTable = errors.New("failed to load prefix table")

// LoadClassifier returns the canonical classifier, or one over the YAML
// table at path when path is set.
func LoadClassifier(path string) (*card.Classifier, error) {
	if path == "" {
		return card.Default(), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Join(ErrLoadTable, err)
	}
	defer f.Close()

	table, err := card.DecodeTable(f)
	if err != nil {
		return nil, errors.Join(ErrLoadTable, fmt.Errorf("%s: %w", path, err))
	}
	c, err := card.NewClassifier(table)
	if err != nil {
		return nil, errors.Join(ErrLoadTable, err)
	}
	return c, nil
}
