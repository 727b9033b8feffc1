package card

import (
	"fmt"
	"strings"
)

// Rule is a single issuer prefix rule.
// The set of implementations is closed: ExactRule and RangeRule.
type Rule interface {
	// Match reports whether the normalized digit string starts with a
	// prefix accepted by the rule.
	Match(digits string) bool
	// Len is the number of leading digits the rule compares.
	Len() int
	// String returns the rule notation: "34" or "51-55".
	String() string

	isRule()
}

// ExactRule matches numbers that start with Value.
type ExactRule struct {
	Value string
}

// Exact returns an ExactRule for value.
func Exact(value string) ExactRule {
	return ExactRule{Value: value}
}

func (r ExactRule) Match(digits string) bool {
	return strings.HasPrefix(digits, r.Value)
}

func (r ExactRule) Len() int       { return len(r.Value) }
func (r ExactRule) String() string { return r.Value }
func (ExactRule) isRule()          {}

// RangeRule matches numbers whose first len(Low) digits fall within
// [Low, High]. Low and High must have the same length, which makes string
// comparison equivalent to numeric comparison.
type RangeRule struct {
	Low  string
	High string
}

// Range returns a RangeRule for the inclusive bounds low and high.
func Range(low, high string) RangeRule {
	return RangeRule{Low: low, High: high}
}

func (r RangeRule) Match(digits string) bool {
	n := len(r.Low)
	if len(digits) < n {
		return false
	}
	prefix := digits[:n]
	return r.Low <= prefix && prefix <= r.High
}

func (r RangeRule) Len() int       { return len(r.Low) }
func (r RangeRule) String() string { return r.Low + "-" + r.High }
func (RangeRule) isRule()          {}

// ParseRule parses rule notation: a digit string for an exact prefix or two
// equal-length digit strings joined by "-" for an inclusive range.
func ParseRule(notation string) (Rule, error) {
	notation = strings.TrimSpace(notation)
	low, high, isRange := strings.Cut(notation, "-")
	if !isRange {
		if !isDigits(notation) {
			return nil, fmt.Errorf("%w: %q is not a digit string", ErrInvalidRule, notation)
		}
		return Exact(notation), nil
	}

	if !isDigits(low) || !isDigits(high) {
		return nil, fmt.Errorf("%w: %q bounds must be digit strings", ErrInvalidRule, notation)
	}
	if len(low) != len(high) {
		return nil, fmt.Errorf("%w: %q bounds differ in length", ErrInvalidRule, notation)
	}
	if low > high {
		return nil, fmt.Errorf("%w: %q lower bound exceeds upper bound", ErrInvalidRule, notation)
	}
	return Range(low, high), nil
}

// MustParseRule is like ParseRule but panics on error.
func MustParseRule(notation string) Rule {
	r, err := ParseRule(notation)
	if err != nil {
		panic(err)
	}
	return r
}
