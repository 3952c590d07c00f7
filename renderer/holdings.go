package renderer

import (
	"fmt"

	"github.com/etnz/pms"
)

// Holdings is the view of a portfolio content.
type Holdings struct {
	Rows  []HoldingRow
	Total string
}

// HoldingRow is one line of the Holdings table.
type HoldingRow struct {
	Index  int // 1-based, as used to remove a holding
	Kind   string
	Name   string
	Amount string
	Price  string
	Detail string // the kind specific field
	Value  string
}

// NewHoldings builds the Holdings view of p, amounts formatted in cur.
func NewHoldings(p *pms.Portfolio, cur string) *Holdings {
	h := &Holdings{Total: pms.M(p.TotalValue(), cur).String()}
	for i, x := range p.All() {
		h.Rows = append(h.Rows, HoldingRow{
			Index:  i,
			Kind:   x.Kind().Label(),
			Name:   x.Name(),
			Amount: pms.M(x.BaseAmount(), cur).String(),
			Price:  pms.M(x.ReferencePrice(), cur).String(),
			Detail: detail(x, cur),
			Value:  pms.M(x.Value(), cur).String(),
		})
	}
	return h
}

func detail(h pms.Holding, cur string) string {
	switch h.Kind() {
	case pms.Stock:
		return fmt.Sprintf("%d shares", h.Shares())
	case pms.Bond:
		return h.InterestRate().String() + "% interest"
	case pms.MutualFund:
		return "NAV " + pms.M(h.NAV(), cur).String()
	case pms.Cryptocurrency:
		return h.Units().String() + " units"
	default:
		return ""
	}
}
