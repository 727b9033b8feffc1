package card

import "slices"

// Entry associates a brand with its ordered prefix rules.
type Entry struct {
	Brand Brand
	Rules []Rule
}

// Table is an ordered list of entries. The first matching rule wins.
type Table []Entry

// Clone returns a deep copy of t.
func (t Table) Clone() Table {
	if t == nil {
		return nil
	}
	out := make(Table, len(t))
	for i, e := range t {
		out[i] = Entry{Brand: e.Brand, Rules: slices.Clone(e.Rules)}
	}
	return out
}

// Brands returns the brand of every entry in table order.
func (t Table) Brands() []Brand {
	out := make([]Brand, len(t))
	for i, e := range t {
		out[i] = e.Brand
	}
	return out
}

// DefaultTable returns a copy of the canonical prefix table.
func DefaultTable() Table {
	return defaultTable.Clone()
}

var defaultTable = Table{
	{MasterCard, []Rule{Range("2221", "2720"), Range("51", "55")}},
	{Visa, []Rule{Exact("4")}},
	{AmericanExpress, []Rule{Exact("34"), Exact("37")}},
	{DinersClub, []Rule{Range("300", "305"), Exact("3095"), Exact("36"), Exact("38"), Exact("39")}},
	{Discover, []Rule{Exact("6011"), Range("622126", "622925"), Range("644", "649"), Exact("65")}},
	{EnRoute, []Rule{Exact("2014"), Exact("2149")}},
	{JCB, []Rule{Range("3528", "3589")}},
	{Voyager, []Rule{Exact("8699"), Exact("7088")}},
	{Hipercard, []Rule{
		Range("384100", "384110"), Range("384140", "384160"), Range("606282", "606290"),
		Range("637095", "637103"), Range("637568", "637570"), Range("637573", "637576"),
		Range("637578", "637580"),
	}},
	{Aura, []Rule{Exact("50")}},
	{Elo, []Rule{
		Exact("4011"), Exact("4312"), Exact("4389"), Exact("4514"), Exact("4573"), Exact("4576"),
		Exact("5041"), Exact("5066"), Exact("5067"), Exact("5090"), Exact("6277"), Exact("6362"),
		Exact("6363"), Range("6500", "6505"), Range("650485", "650531"), Range("650532", "650538"),
		Range("650541", "650598"), Range("650700", "650718"), Range("650720", "650727"),
	}},
	{VisaElectron, []Rule{Exact("4026"), Exact("417500"), Exact("4508"), Exact("4844"), Exact("4913"), Exact("4917")}},
	{Maestro, []Rule{Exact("50"), Range("56", "69")}},
	{Solo, []Rule{Exact("6334"), Exact("6767")}},
	{Switch, []Rule{
		Exact("4903"), Exact("4905"), Exact("4911"), Exact("4936"),
		Exact("564182"), Exact("633110"), Exact("6333"), Exact("6759"),
	}},
	{Laser, []Rule{Exact("6304"), Exact("6706"), Exact("6771"), Exact("6709")}},
	{UnionPay, []Rule{Exact("62")}},
	{Cabal, []Rule{Exact("6042"), Exact("6043")}},
}
