package card

// Brand is the card issuer label assigned by the classifier.
// The zero value means no brand was identified.
type Brand string

// Brands of the canonical prefix table.
const (
	MasterCard      Brand = "MasterCard"
	Visa            Brand = "Visa"
	AmericanExpress Brand = "American Express"
	DinersClub      Brand = "Diners Club"
	Discover        Brand = "Discover"
	EnRoute         Brand = "enRoute"
	JCB             Brand = "JCB"
	Voyager         Brand = "Voyager"
	Hipercard       Brand = "Hipercard"
	Aura            Brand = "Aura"
	Elo             Brand = "Elo"
	VisaElectron    Brand = "Visa Electron"
	Maestro         Brand = "Maestro"
	Solo            Brand = "Solo"
	Switch          Brand = "Switch"
	Laser           Brand = "Laser"
	UnionPay        Brand = "UnionPay"
	Cabal           Brand = "Cabal"
)

func (b Brand) String() string {
	return string(b)
}
