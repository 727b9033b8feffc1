// Package validator provides declarative validation rules for payment card
// input, built on top of package card.
//
// A Rule pairs a boolean Check with translation-friendly error metadata.
// Apply evaluates any number of rules and aggregates failures into
// ValidationErrors, which implements error:
//
//	err := validator.Apply(
//	    validator.Required("number", number),
//	    validator.CardNumberLength("number", number),
//	    validator.ValidCardNumber("number", number),
//	    validator.CardBrandIn("number", number, card.Visa, card.MasterCard),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    for _, f := range verrs.Fields() {
//	        // render verrs.Get(f)
//	    }
//	}
//
// Every ValidationError carries a TranslationKey (for example
// "validation.card_number") so messages can be localized with package i18n.
//
// ValidationErrors matches ErrValidationFailed with errors.Is.
package validator
