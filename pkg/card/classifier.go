package card

import "fmt"

// Match describes the rule that classified a number.
type Match struct {
	Brand Brand
	Rule  Rule
	// Entry is the index of the matching entry in the classifier table.
	Entry int
}

// Classifier matches card numbers against a fixed prefix table.
// It never mutates its table and is safe for concurrent use.
type Classifier struct {
	table Table
}

var defaultClassifier = &Classifier{table: defaultTable}

// Default returns the classifier over the canonical table.
func Default() *Classifier {
	return defaultClassifier
}

// NewClassifier returns a classifier over a copy of table.
// Every entry needs a brand and at least one well-formed rule.
func NewClassifier(table Table) (*Classifier, error) {
	if len(table) == 0 {
		return nil, ErrEmptyTable
	}
	for i, e := range table {
		if err := validateEntry(e); err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
	}
	return &Classifier{table: table.Clone()}, nil
}

func validateEntry(e Entry) error {
	if e.Brand == "" {
		return fmt.Errorf("%w: missing brand", ErrInvalidEntry)
	}
	if len(e.Rules) == 0 {
		return fmt.Errorf("%w: %s has no rules", ErrInvalidEntry, e.Brand)
	}
	for _, r := range e.Rules {
		if r == nil {
			return fmt.Errorf("%w: %s has a nil rule", ErrInvalidEntry, e.Brand)
		}
		if _, err := ParseRule(r.String()); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrInvalidEntry, e.Brand, err)
		}
	}
	return nil
}

// Table returns a copy of the classifier table.
func (c *Classifier) Table() Table {
	return c.table.Clone()
}

// Lookup returns the first rule in table order that matches input.
func (c *Classifier) Lookup(input string) (Match, bool) {
	digits, ok := Normalize(input)
	if !ok {
		return Match{}, false
	}
	for i, e := range c.table {
		for _, r := range e.Rules {
			if r.Match(digits) {
				return Match{Brand: e.Brand, Rule: r, Entry: i}, true
			}
		}
	}
	return Match{}, false
}

// Classify returns the brand of input, or false if no rule matches or the
// input is malformed.
func (c *Classifier) Classify(input string) (Brand, bool) {
	m, ok := c.Lookup(input)
	return m.Brand, ok
}

// Validate runs the checksum and the classification independently.
func (c *Classifier) Validate(input string) Result {
	brand, _ := c.Classify(input)
	return Result{
		Valid: IsChecksumValid(input),
		Brand: brand,
	}
}

// Classify identifies the brand of input using the canonical table.
func Classify(input string) (Brand, bool) {
	return defaultClassifier.Classify(input)
}
