package pms

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is the display currency used when none is configured.
const DefaultCurrency = "USD"

// Money is a monetary value tagged with a display currency.
//
// Holdings do not carry a currency, the portfolio is single-currency, so
// Money only exists to present amounts.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

// M returns value as Money in currency cur.
func M[T number](value T, cur string) Money {
	return Money{value: newDecimal(value), cur: cur}
}

// currency returns the money's currency
func (m Money) currency() *money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return money.New(0, m.cur).Currency()
}

// String returns the money formatted according to its currency, for instance
// "$1,090.00" in USD. Without currency the plain decimal is returned.
func (m Money) String() string {
	if m.cur == "" {
		return m.value.String()
	}
	cur := m.currency()
	dec := m.value.Round(int32(cur.Fraction)).Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}
