// Package card validates payment card numbers and identifies their brand.
//
// Validation is split into two independent checks that are combined by
// Validate:
//
//   - IsChecksumValid runs the Luhn checksum over the digits.
//   - Classify matches the leading digits against an ordered table of
//     issuer prefix rules and returns the brand of the first match.
//
// Both checks normalize their input first: spaces and hyphens are removed
// and the remainder must consist of ASCII digits only. Malformed input is
// never an error; it is simply invalid and unclassified.
//
// # Prefix table
//
// The table is an ordered list of Entry values, each holding a Brand and an
// ordered list of Rule values. A Rule is either an ExactRule ("34") or a
// RangeRule ("51-55") whose bounds have equal length. The first matching
// rule in table order wins, so overlapping prefixes are resolved by position.
// For example both Aura and Maestro declare "50"; Aura is listed first and
// therefore wins.
//
// The canonical table is built once at package initialization and never
// mutated. DefaultTable returns a deep copy that callers may edit and pass to
// NewClassifier to build a classifier over a custom table. Tables can also be
// read from and written to YAML with DecodeTable and EncodeTable.
//
// # Usage
//
//	res := card.Validate("4532 0151 1283 0366")
//	if res.Valid && res.Identified() {
//	    fmt.Println(res.Brand) // Visa
//	}
//
// All functions are pure and safe for concurrent use.
package card
