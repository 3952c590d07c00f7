package pms

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Holding is a single investment record of a portfolio.
//
// It is a tagged variant over the four asset classes: every holding shares a
// name, a base amount (principal or cost basis) and a reference price, and
// carries exactly one kind specific field (shares, interest rate, NAV or
// units) selected by its Kind.
//
// Holdings are values: copying a Holding copies the record.
type Holding struct {
	kind  Kind
	name  string
	base  decimal.Decimal
	price decimal.Decimal

	shares int64           // Stock
	rate   decimal.Decimal // Bond, in percent
	nav    decimal.Decimal // MutualFund
	units  decimal.Decimal // Cryptocurrency
}

// NewStock returns a stock holding of shares bought at price.
// The base amount is shares × price.
func NewStock[T number](name string, shares int64, price T) Holding {
	p := newDecimal(price)
	return Holding{
		kind:   Stock,
		name:   name,
		base:   decimal.NewFromInt(shares).Mul(p),
		price:  p,
		shares: shares,
	}
}

// NewBond returns a bond of principal amount paying rate percent.
// The reference price of a bond is its principal.
func NewBond[T number](name string, amount, rate T) Holding {
	a := newDecimal(amount)
	return Holding{
		kind:  Bond,
		name:  name,
		base:  a,
		price: a,
		rate:  newDecimal(rate),
	}
}

// NewMutualFund returns a mutual fund position of amount at the given net
// asset value.
func NewMutualFund[T number](name string, amount, nav T) Holding {
	n := newDecimal(nav)
	return Holding{
		kind:  MutualFund,
		name:  name,
		base:  newDecimal(amount),
		price: n,
		nav:   n,
	}
}

// NewCryptocurrency returns a crypto holding of units at price.
// The base amount is units × price.
func NewCryptocurrency[T number](name string, units, price T) Holding {
	u, p := newDecimal(units), newDecimal(price)
	return Holding{
		kind:  Cryptocurrency,
		name:  name,
		base:  u.Mul(p),
		price: p,
		units: u,
	}
}

func (h Holding) Kind() Kind                      { return h.kind }
func (h Holding) Name() string                    { return h.name }
func (h Holding) BaseAmount() decimal.Decimal     { return h.base }
func (h Holding) ReferencePrice() decimal.Decimal { return h.price }
func (h Holding) Shares() int64                   { return h.shares }
func (h Holding) InterestRate() decimal.Decimal   { return h.rate }
func (h Holding) NAV() decimal.Decimal            { return h.nav }
func (h Holding) Units() decimal.Decimal          { return h.units }

// Value returns the current value of the holding.
//
// A mutual fund is valued at its base amount: the NAV is recorded but does
// not take part in the valuation.
func (h Holding) Value() decimal.Decimal {
	switch h.kind {
	case Stock:
		return decimal.NewFromInt(h.shares).Mul(h.price)
	case Bond:
		return h.base.Mul(decimal.NewFromInt(1).Add(h.rate.Div(hundred)))
	case MutualFund:
		return h.base
	case Cryptocurrency:
		return h.units.Mul(h.price)
	default:
		panic(fmt.Sprintf("unknown holding kind %d", h.kind))
	}
}

// quoted reports whether the holding is valued from a market price.
func (h Holding) quoted() bool {
	return h.kind == Stock || h.kind == Cryptocurrency
}

// WithPrice returns a copy of h with a new reference price.
// Stocks and cryptocurrencies have their base amount recomputed, the other
// kinds keep it.
func (h Holding) WithPrice(price decimal.Decimal) Holding {
	h.price = price
	switch h.kind {
	case Stock:
		h.base = decimal.NewFromInt(h.shares).Mul(price)
	case Cryptocurrency:
		h.base = h.units.Mul(price)
	}
	return h
}

// Equal reports whether both holdings hold the same kind and field values.
func (h Holding) Equal(o Holding) bool {
	return h.kind == o.kind &&
		h.name == o.name &&
		h.base.Equal(o.base) &&
		h.price.Equal(o.price) &&
		h.shares == o.shares &&
		h.rate.Equal(o.rate) &&
		h.nav.Equal(o.nav) &&
		h.units.Equal(o.units)
}

// Summary returns a one line description of the holding, with money
// formatted in currency cur.
func (h Holding) Summary(cur string) string {
	switch h.kind {
	case Stock:
		return fmt.Sprintf("Stock: %s | Shares: %d | Current Price: %s", h.name, h.shares, M(h.price, cur))
	case Bond:
		return fmt.Sprintf("Bond: %s | Amount: %s | Interest Rate: %s%%", h.name, M(h.base, cur), h.rate)
	case MutualFund:
		return fmt.Sprintf("Mutual Fund: %s | Amount: %s | NAV: %s", h.name, M(h.base, cur), M(h.nav, cur))
	case Cryptocurrency:
		return fmt.Sprintf("Cryptocurrency: %s | Units: %s | Current Price: %s", h.name, h.units, M(h.price, cur))
	default:
		return fmt.Sprintf("%s: %s", h.kind, h.name)
	}
}

// String implements fmt.Stringer.
func (h Holding) String() string { return h.Summary("") }
