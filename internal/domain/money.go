package domain

import (
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Money is an amount in whole currency units.
type Money struct {
	Amount   int64
	Currency currency.Unit
}

var symbols = map[currency.Unit]string{
	currency.INR: "₹",
	currency.USD: "$",
	currency.EUR: "€",
	currency.GBP: "£",
	currency.JPY: "¥",
}

// Symbol falls back to the ISO code followed by a space for currencies
// without a known sign.
func Symbol(cur currency.Unit) string {
	if s, ok := symbols[cur]; ok {
		return s
	}
	return cur.String() + " "
}

// Format renders the amount with the currency sign and the digit grouping of
// the given locale, e.g. "₹1,200".
func (m Money) Format(tag language.Tag) string {
	p := message.NewPrinter(tag)
	return Symbol(m.Currency) + p.Sprintf("%d", m.Amount)
}
