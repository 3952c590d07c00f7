package pms

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// This file contains functions to update holdings with latest prices.

// PriceSource returns the latest price of an instrument by name.
type PriceSource interface {
	Price(ctx context.Context, name string) (decimal.Decimal, error)
}

// UpdatePrices fetches the latest price of every stock and cryptocurrency
// holding and sets it as their reference price. Bonds and mutual funds have
// no market price and are left untouched.
//
// It returns the number of holdings updated, and a joined error for the
// holdings that could not be updated.
func (p *Portfolio) UpdatePrices(ctx context.Context, src PriceSource) (int, error) {
	var errs error
	n := 0
	for i, h := range p.holdings {
		if !h.quoted() {
			continue
		}
		if err := ctx.Err(); err != nil {
			return n, errors.Join(errs, err)
		}
		price, err := src.Price(ctx, h.name)
		if err != nil {
			errs = errors.Join(errs, fmt.Errorf("cannot update %s %q: %w", h.kind, h.name, err))
			continue
		}
		l.Debug("price updated", zap.String("name", h.name), zap.Stringer("old", h.price), zap.Stringer("new", price))
		p.set(i, h.WithPrice(price))
		n++
	}
	return n, errs
}
