// Package quote fetches market prices from a JSON web service.
//
// The service is described by a URL template, where "{name}" is replaced by
// the holding name, and a JSONPath expression selecting the price in the
// response, for instance:
//
//	https://api.example.com/v1/quote/{name}
//	$.quote.last
package quote

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ErrNoPrice is returned when the response has no usable price.
var ErrNoPrice = errors.New("no price in response")

// Fetcher gets the latest price of a holding from a JSON web service.
// It is a pms.PriceSource.
type Fetcher struct {
	Client *http.Client // http.DefaultClient if nil
	URL    string       // URL template, "{name}" is replaced by the escaped name
	Path   string       // JSONPath of the price in the response
}

// Price returns the latest price of name.
func (f *Fetcher) Price(ctx context.Context, name string) (decimal.Decimal, error) {
	if f.URL == "" {
		return decimal.Zero, errors.New("no quote URL configured")
	}
	addr := strings.ReplaceAll(f.URL, "{name}", url.PathEscape(name))

	client := f.Client
	if client == nil {
		client = http.DefaultClient
	}

	jobj, err := jwget(ctx, client, addr)
	if err != nil {
		return decimal.Zero, fmt.Errorf("error retrieving %q: %w", name, err)
	}
	jval, err := jsonpath.Get(f.Path, jobj)
	if err != nil {
		return decimal.Zero, fmt.Errorf("error parsing %q: %q %w", name, f.Path, err)
	}
	// jsonpath may return a list of one answer or the answer itself: keep the
	// first one if any
	if jlist, ok := jval.([]any); ok {
		if len(jlist) == 0 {
			return decimal.Zero, fmt.Errorf("error parsing %q: %q: %w", name, f.Path, ErrNoPrice)
		}
		jval = jlist[0]
	}

	price, err := toDecimal(jval)
	if err != nil {
		return decimal.Zero, fmt.Errorf("error parsing %q: %q: %w", name, f.Path, err)
	}
	l.Debug("quote", zap.String("name", name), zap.Stringer("price", price))
	return price, nil
}

func toDecimal(v any) (decimal.Decimal, error) {
	switch v := v.(type) {
	case json.Number:
		return decimal.NewFromString(v.String())
	case float64:
		return decimal.NewFromFloat(v), nil
	case string:
		d, err := decimal.NewFromString(strings.TrimSpace(v))
		if err != nil {
			return decimal.Zero, fmt.Errorf("%w: %q", ErrNoPrice, v)
		}
		return d, nil
	default:
		return decimal.Zero, fmt.Errorf("%w: %v", ErrNoPrice, v)
	}
}
