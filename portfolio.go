package pms

import (
	"iter"
	"slices"

	"github.com/shopspring/decimal"
)

// Portfolio is an ordered collection of holdings.
//
// Holdings are kept in insertion order and are identified by their position
// only: duplicates are allowed. Positions are 0-based in this API, the
// user-facing layers (renderer, cmd, session) present them 1-based.
//
// The zero Portfolio is empty and ready to use.
type Portfolio struct {
	holdings []Holding
}

// NewPortfolio returns a portfolio holding hs, in order.
func NewPortfolio(hs ...Holding) *Portfolio {
	return &Portfolio{holdings: slices.Clone(hs)}
}

// Add appends h at the end of the portfolio.
func (p *Portfolio) Add(h Holding) {
	p.holdings = append(p.holdings, h)
}

// RemoveAt removes the holding at 0-based position i.
//
// An out of range position is silently ignored, the returned bool only
// tells whether something was removed.
func (p *Portfolio) RemoveAt(i int) bool {
	if i < 0 || i >= len(p.holdings) {
		return false
	}
	p.holdings = slices.Delete(p.holdings, i, i+1)
	return true
}

// Len returns the number of holdings.
func (p *Portfolio) Len() int { return len(p.holdings) }

// At returns the holding at 0-based position i.
func (p *Portfolio) At(i int) (Holding, bool) {
	if i < 0 || i >= len(p.holdings) {
		return Holding{}, false
	}
	return p.holdings[i], true
}

// All iterates over the holdings in order, with their 1-based index.
//
// The sequence can be ranged over several times. It must not be used while
// the portfolio is being modified.
func (p *Portfolio) All() iter.Seq2[int, Holding] {
	return func(yield func(int, Holding) bool) {
		for i, h := range p.holdings {
			if !yield(i+1, h) {
				return
			}
		}
	}
}

// Holdings returns a copy of the holdings, in order.
func (p *Portfolio) Holdings() []Holding { return slices.Clone(p.holdings) }

// TotalValue returns the sum of the holdings value, zero for an empty
// portfolio.
func (p *Portfolio) TotalValue() decimal.Decimal {
	total := decimal.Zero
	for _, h := range p.holdings {
		total = total.Add(h.Value())
	}
	return total
}

// set replaces the holding at position i, used by price updates.
func (p *Portfolio) set(i int, h Holding) { p.holdings[i] = h }
