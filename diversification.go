package pms

import (
	"errors"
	"math"

	"github.com/shopspring/decimal"
)

// ErrNothingToDiversify is returned by Diversification when the portfolio
// total value is zero: the share of each asset class is undefined.
var ErrNothingToDiversify = errors.New("portfolio has no value to diversify")

// Diversification is the breakdown of a portfolio value by asset class.
type Diversification struct {
	Total  decimal.Decimal
	Values [numKinds]decimal.Decimal // sum of holding values, by Kind
	Shares [numKinds]float64         // Values/Total, by Kind
	// Ratio is the euclidean norm of Shares. It is 1 for a portfolio
	// concentrated on a single asset class and 0.5 for one evenly spread
	// over the four.
	Ratio float64
}

// Value returns the total value held in kind k, zero for an unknown kind.
func (d Diversification) Value(k Kind) decimal.Decimal {
	if !k.valid() {
		return decimal.Zero
	}
	return d.Values[k]
}

// Share returns the fraction of the total value held in kind k, zero for an
// unknown kind.
func (d Diversification) Share(k Kind) float64 {
	if !k.valid() {
		return 0
	}
	return d.Shares[k]
}

// Percent returns the share of kind k in percent.
func (d Diversification) Percent(k Kind) Percent { return Percent(d.Share(k) * 100) }

// Diversification computes the portfolio breakdown by asset class.
//
// If the total value is zero (an empty portfolio, or only zero valued
// holdings) the breakdown is undefined: it returns a zero Diversification
// and ErrNothingToDiversify.
func (p *Portfolio) Diversification() (Diversification, error) {
	var d Diversification
	for _, h := range p.holdings {
		v := h.Value()
		d.Values[h.kind] = d.Values[h.kind].Add(v)
		d.Total = d.Total.Add(v)
	}
	if d.Total.IsZero() {
		return Diversification{Total: decimal.Zero}, ErrNothingToDiversify
	}

	var sum float64
	for k, v := range d.Values {
		share := v.Div(d.Total).InexactFloat64()
		d.Shares[k] = share
		sum += share * share
	}
	d.Ratio = math.Sqrt(sum)
	return d, nil
}
