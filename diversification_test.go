package pms

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiversification_SingleStock(t *testing.T) {
	p := NewPortfolio(NewStock("ACME", 10, 5.0))

	d, err := p.Diversification()
	require.NoError(t, err)

	assert.True(t, d.Percent(Stock).Equal(100), "Stock = %v", d.Percent(Stock))
	for _, k := range []Kind{Bond, MutualFund, Cryptocurrency} {
		assert.True(t, d.Percent(k).Equal(0), "%v = %v", k, d.Percent(k))
	}
	assert.Equal(t, 1.0, d.Ratio)
}

func TestDiversification_Mixed(t *testing.T) {
	// 50 + 1040 + 10 = 1100
	p := NewPortfolio(
		NewStock("ACME", 10, 5.0),
		NewBond("T-Bill", 1000, 4.0),
		NewMutualFund("Fund", 10, 99),
	)

	d, err := p.Diversification()
	require.NoError(t, err)

	assert.True(t, D(1100).Equal(d.Total))
	assert.True(t, D(1040).Equal(d.Value(Bond)))
	assert.InDelta(t, 50.0/1100, d.Share(Stock), 1e-12)
	assert.InDelta(t, 1040.0/1100, d.Share(Bond), 1e-12)
	assert.InDelta(t, 10.0/1100, d.Share(MutualFund), 1e-12)
	assert.Equal(t, 0.0, d.Share(Cryptocurrency))

	want := math.Sqrt(math.Pow(50.0/1100, 2) + math.Pow(1040.0/1100, 2) + math.Pow(10.0/1100, 2))
	assert.InDelta(t, want, d.Ratio, 1e-12)
}

func TestDiversification_Even(t *testing.T) {
	p := NewPortfolio(
		NewStock("S", 1, 100),
		NewBond("B", 100, 0),
		NewMutualFund("M", 100, 1),
		NewCryptocurrency("C", 1, 100),
	)
	d, err := p.Diversification()
	require.NoError(t, err)
	for _, k := range Kinds() {
		assert.True(t, d.Percent(k).Equal(25), "%v = %v", k, d.Percent(k))
	}
	assert.InDelta(t, 0.5, d.Ratio, 1e-12)
}

func TestDiversification_NothingToDiversify(t *testing.T) {
	tests := []struct {
		name      string
		portfolio *Portfolio
	}{
		{"empty", new(Portfolio)},
		{"zero valued", NewPortfolio(NewStock("ACME", 0, 5.0), NewBond("B", 0, 4))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := tt.portfolio.Diversification()
			assert.ErrorIs(t, err, ErrNothingToDiversify)
			assert.Equal(t, 0.0, d.Ratio)
			for _, k := range Kinds() {
				assert.False(t, math.IsNaN(d.Share(k)))
				assert.Equal(t, 0.0, d.Share(k))
			}
		})
	}
}

func TestDiversification_UnknownKind(t *testing.T) {
	d, err := mixed().Diversification()
	require.NoError(t, err)
	for _, k := range []Kind{-1, numKinds, 42} {
		assert.True(t, d.Value(k).IsZero(), "Value(%d)", int(k))
		assert.Equal(t, 0.0, d.Share(k), "Share(%d)", int(k))
		assert.True(t, d.Percent(k).Equal(0), "Percent(%d)", int(k))
	}
}
