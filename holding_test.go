package pms

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestHolding_Value(t *testing.T) {
	tests := []struct {
		name    string
		holding Holding
		want    decimal.Decimal
	}{
		{"stock", NewStock("ACME", 10, 5.0), D(50)},
		{"stock without shares", NewStock("ACME", 0, 5.0), D(0)},
		{"stock fractional price", NewStock("ACME", 3, 33.33), D(99.99)},
		{"bond", NewBond("T-Bill", 1000, 4.0), D(1040)},
		{"bond without interest", NewBond("T-Bill", 1000, 0), D(1000)},
		{"bond fractional rate", NewBond("OAT", 200, 2.5), D(205)},
		{"crypto", NewCryptocurrency("BTC", 0.5, 30000), D(15000)},
		{"crypto fractional price", NewCryptocurrency("ETH", 2, 1234.5), D(2469)},
		// the NAV does not take part in the valuation.
		{"mutual fund ignores nav", NewMutualFund("Vanguard500", 2500, 412.35), D(2500)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.holding.Value()
			assert.True(t, tt.want.Equal(got), "Value() = %v, want %v", got, tt.want)
		})
	}
}

func TestHolding_Value_Properties(t *testing.T) {
	for shares := int64(0); shares < 50; shares += 7 {
		for _, price := range []float64{0, 0.01, 1, 19.99, 250.5} {
			h := NewStock("S", shares, price)
			want := decimal.NewFromInt(shares).Mul(D(price))
			assert.True(t, want.Equal(h.Value()), "Stock(%d, %v)", shares, price)

			c := NewCryptocurrency("C", float64(shares)/4, price)
			want = D(float64(shares) / 4).Mul(D(price))
			assert.True(t, want.Equal(c.Value()), "Cryptocurrency(%v, %v)", float64(shares)/4, price)
		}
	}
	for _, amount := range []float64{0, 100, 1234.56} {
		for _, rate := range []float64{0, 1, 4, 7.25} {
			b := NewBond("B", amount, rate)
			want := D(amount).Mul(D(1).Add(D(rate).Div(D(100))))
			assert.True(t, want.Equal(b.Value()), "Bond(%v, %v)", amount, rate)
		}
	}
}

func TestHolding_Constructors(t *testing.T) {
	s := NewStock("ACME", 10, 5.0)
	assert.Equal(t, Stock, s.Kind())
	assert.Equal(t, "ACME", s.Name())
	assert.True(t, D(50).Equal(s.BaseAmount()))
	assert.True(t, D(5).Equal(s.ReferencePrice()))
	assert.Equal(t, int64(10), s.Shares())

	b := NewBond("T-Bill", 1000, 4.0)
	assert.Equal(t, Bond, b.Kind())
	assert.True(t, D(1000).Equal(b.BaseAmount()))
	assert.True(t, D(1000).Equal(b.ReferencePrice()))
	assert.True(t, D(4).Equal(b.InterestRate()))

	m := NewMutualFund("Fund", 2500, 12.5)
	assert.Equal(t, MutualFund, m.Kind())
	assert.True(t, D(2500).Equal(m.BaseAmount()))
	assert.True(t, D(12.5).Equal(m.ReferencePrice()))
	assert.True(t, D(12.5).Equal(m.NAV()))

	c := NewCryptocurrency("BTC", 0.5, 30000)
	assert.Equal(t, Cryptocurrency, c.Kind())
	assert.True(t, D(15000).Equal(c.BaseAmount()))
	assert.True(t, D(30000).Equal(c.ReferencePrice()))
	assert.True(t, D(0.5).Equal(c.Units()))
}

func TestHolding_WithPrice(t *testing.T) {
	s := NewStock("ACME", 10, 5.0).WithPrice(D(6))
	assert.True(t, D(60).Equal(s.Value()))
	assert.True(t, D(60).Equal(s.BaseAmount()))

	c := NewCryptocurrency("BTC", 2, 100).WithPrice(D(150))
	assert.True(t, D(300).Equal(c.Value()))

	b := NewBond("T-Bill", 1000, 4.0).WithPrice(D(990))
	assert.True(t, D(1000).Equal(b.BaseAmount()))
	assert.True(t, D(1040).Equal(b.Value()))
}

func TestHolding_Equal(t *testing.T) {
	a := NewStock("ACME", 10, 5.0)
	assert.True(t, a.Equal(NewStock("ACME", 10, decimal.RequireFromString("5.00"))))
	assert.False(t, a.Equal(NewStock("ACME", 11, 5.0)))
	assert.False(t, a.Equal(NewStock("ACMF", 10, 5.0)))
	assert.False(t, NewBond("X", 10, 1).Equal(NewMutualFund("X", 10, 1)))
}

func TestHolding_Summary(t *testing.T) {
	tests := []struct {
		holding Holding
		want    string
	}{
		{NewStock("ACME", 10, 5.0), "Stock: ACME | Shares: 10 | Current Price: $5.00"},
		{NewBond("T-Bill", 1000, 4.0), "Bond: T-Bill | Amount: $1,000.00 | Interest Rate: 4%"},
		{NewMutualFund("Fund", 2500, 12.5), "Mutual Fund: Fund | Amount: $2,500.00 | NAV: $12.50"},
		{NewCryptocurrency("BTC", 0.5, 30000), "Cryptocurrency: BTC | Units: 0.5 | Current Price: $30,000.00"},
	}
	for _, tt := range tests {
		t.Run(tt.holding.Kind().String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.holding.Summary("USD"))
		})
	}
}
