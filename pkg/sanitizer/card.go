package sanitizer

import "strings"

var cardSeparators = strings.NewReplacer(" ", "", "-", "")

// StripCardSeparators removes spaces and hyphens and nothing else.
func StripCardSeparators(s string) string {
	return cardSeparators.Replace(s)
}

// MaskCardNumber replaces every character but the last four with '*',
// after stripping separators.
func MaskCardNumber(cardNumber string) string {
	s := StripCardSeparators(cardNumber)
	if len(s) <= 4 {
		return strings.Repeat("*", len(s))
	}
	return strings.Repeat("*", len(s)-4) + s[len(s)-4:]
}

// FormatCardNumber groups a 13-19 character card number in blocks of four.
// Other lengths are returned unchanged.
func FormatCardNumber(cardNumber string) string {
	s := StripCardSeparators(cardNumber)
	if len(s) < 13 || len(s) > 19 {
		return cardNumber
	}

	var b strings.Builder
	b.Grow(len(s) + len(s)/4)
	for i := 0; i < len(s); i++ {
		if i > 0 && i%4 == 0 {
			b.WriteByte(' ')
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

// MaskString preserves visibleChars runes at each end and hides the middle.
// Strings too short to keep anything hidden are masked entirely.
func MaskString(s string, visibleChars int) string {
	if visibleChars < 0 {
		visibleChars = 1
	}

	runes := []rune(s)
	if len(runes) <= visibleChars*2 {
		return strings.Repeat("*", len(runes))
	}

	return string(runes[:visibleChars]) +
		strings.Repeat("*", len(runes)-visibleChars*2) +
		string(runes[len(runes)-visibleChars:])
}
