package renderer

import (
	"errors"
	"fmt"

	"github.com/etnz/pms"
)

// Diversification is the view of the portfolio breakdown by asset class.
type Diversification struct {
	Rows  []DiversificationRow
	Total string
	Ratio string
	// Undefined is set when the portfolio has no value to break down.
	Undefined bool
}

type DiversificationRow struct {
	Label   string
	Value   string
	Percent string
}

// NewDiversification builds the Diversification view of p, amounts formatted
// in cur.
//
// An empty or zero valued portfolio is not an error, the view is marked
// Undefined. Other errors are returned.
func NewDiversification(p *pms.Portfolio, cur string) (*Diversification, error) {
	d, err := p.Diversification()
	if errors.Is(err, pms.ErrNothingToDiversify) {
		return &Diversification{Total: pms.M(d.Total, cur).String(), Undefined: true}, nil
	}
	if err != nil {
		return nil, err
	}

	v := &Diversification{
		Total: pms.M(d.Total, cur).String(),
		Ratio: fmt.Sprintf("%.4f", d.Ratio),
	}
	for _, k := range pms.Kinds() {
		v.Rows = append(v.Rows, DiversificationRow{
			Label:   k.Label(),
			Value:   pms.M(d.Value(k), cur).String(),
			Percent: d.Percent(k).String(),
		})
	}
	return v, nil
}
