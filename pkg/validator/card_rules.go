package validator

import (
	"fmt"
	"slices"

	"github.com/dmitrymomot/cardcheck/pkg/card"
)

// Card number length bounds accepted by CardNumberLength.
const (
	MinCardNumberLength = 13
	MaxCardNumberLength = 19
)

// ValidCardNumber validates a card number with the Luhn checksum.
func ValidCardNumber(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return card.IsChecksumValid(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "invalid card number",
			TranslationKey: "validation.card_number",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// CardNumberLength requires 13 to 19 digits after normalization.
func CardNumberLength(field, value string) Rule {
	return Rule{
		Check: func() bool {
			digits, ok := card.Normalize(value)
			return ok && len(digits) >= MinCardNumberLength && len(digits) <= MaxCardNumberLength
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("card number must have between %d and %d digits", MinCardNumberLength, MaxCardNumberLength),
			TranslationKey: "validation.card_number_length",
			TranslationValues: map[string]any{
				"field": field,
				"min":   MinCardNumberLength,
				"max":   MaxCardNumberLength,
			},
		},
	}
}

// KnownCardBrand requires the canonical table to identify a brand.
func KnownCardBrand(field, value string) Rule {
	return KnownCardBrandWith(card.Default(), field, value)
}

// KnownCardBrandWith is like KnownCardBrand with a custom classifier.
func KnownCardBrandWith(c *card.Classifier, field, value string) Rule {
	return Rule{
		Check: func() bool {
			_, ok := c.Classify(value)
			return ok
		},
		Error: ValidationError{
			Field:          field,
			Message:        "card brand not identified",
			TranslationKey: "validation.card_brand_unknown",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// CardBrandIn requires the identified brand to be one of brands.
func CardBrandIn(field, value string, brands ...card.Brand) Rule {
	return CardBrandInWith(card.Default(), field, value, brands...)
}

// CardBrandInWith is like CardBrandIn with a custom classifier.
func CardBrandInWith(c *card.Classifier, field, value string, brands ...card.Brand) Rule {
	return Rule{
		Check: func() bool {
			b, ok := c.Classify(value)
			return ok && slices.Contains(brands, b)
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("card brand must be one of: %v", brands),
			TranslationKey: "validation.card_brand_not_accepted",
			TranslationValues: map[string]any{
				"field":  field,
				"brands": brands,
			},
		},
	}
}
