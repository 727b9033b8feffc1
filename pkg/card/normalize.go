package card

import "strings"

var separators = strings.NewReplacer(" ", "", "-", "")

// Normalize strips spaces and hyphens from s. The boolean reports whether
// the stripped string is a non-empty run of ASCII digits; other characters
// are kept, so "1234.5678" is rejected.
func Normalize(s string) (string, bool) {
	digits := separators.Replace(s)
	if !isDigits(digits) {
		return digits, false
	}
	return digits, true
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
