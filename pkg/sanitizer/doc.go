// Package sanitizer provides small string transforms for displaying and
// logging payment card numbers without exposing them.
//
// Every transform has the shape func(string) string so it can be chained
// with Apply or turned into a reusable pipeline with Compose:
//
//	display := sanitizer.Compose(
//	    sanitizer.StripCardSeparators,
//	    sanitizer.MaskCardNumber,
//	    sanitizer.FormatCardNumber,
//	)
//	display("4532-0151-1283-0366") // "**** **** **** 0366"
//
// Masking keeps only the last four digits, which is what PCI DSS permits to
// be shown.
package sanitizer
