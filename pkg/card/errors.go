package card

import "errors"

var (
	// ErrInvalidRule is returned when a prefix rule notation cannot be parsed.
	ErrInvalidRule = errors.New("invalid prefix rule")

	// ErrLengthMismatch is returned when a declared prefix length disagrees
	// with the length derived from the rule value.
	ErrLengthMismatch = errors.New("declared prefix length does not match rule")

	// ErrEmptyTable is returned when a classifier is built from an empty table.
	ErrEmptyTable = errors.New("prefix table is empty")

	// ErrInvalidEntry is returned when a table entry has no brand, no rules,
	// or a nil rule.
	ErrInvalidEntry = errors.New("invalid prefix table entry")

	// ErrDecodeTable is returned when a YAML table document cannot be decoded.
	ErrDecodeTable = errors.New("failed to decode prefix table")
)
