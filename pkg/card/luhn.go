package card

// IsChecksumValid reports whether input passes the Luhn checksum.
// Input that is empty or not all digits after normalization is invalid.
func IsChecksumValid(input string) bool {
	digits, ok := Normalize(input)
	if !ok {
		return false
	}
	return luhnSum(digits, false)%10 == 0
}

// CheckDigit returns the digit which, appended to partial, makes the number
// pass the Luhn checksum. It returns false if partial is malformed.
func CheckDigit(partial string) (byte, bool) {
	digits, ok := Normalize(partial)
	if !ok {
		return 0, false
	}
	sum := luhnSum(digits, true)
	return byte('0' + (10-sum%10)%10), true
}

// luhnSum walks digits right to left, doubling every second digit.
// With doubleFirst set the rightmost digit is doubled, which is the layout
// of a number still missing its check digit.
func luhnSum(digits string, doubleFirst bool) int {
	sum := 0
	double := doubleFirst
	for i := len(digits) - 1; i >= 0; i-- {
		d := int(digits[i] - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return sum
}
