package card

// Result is the outcome of Validate.
type Result struct {
	// Valid reports whether the number passes the Luhn checksum.
	Valid bool `json:"valid" yaml:"valid"`
	// Brand is empty when no brand was identified.
	Brand Brand `json:"brand,omitempty" yaml:"brand,omitempty"`
}

// Identified reports whether a brand was found.
func (r Result) Identified() bool {
	return r.Brand != ""
}

// Validate checks input with the canonical table. A failed checksum does not
// prevent classification and vice versa.
func Validate(input string) Result {
	return defaultClassifier.Validate(input)
}
