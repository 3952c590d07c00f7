package pms

import "github.com/shopspring/decimal"

// D is a helper for test to create decimals from const.
func D(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

// mixed returns a portfolio with one holding of each kind.
func mixed() *Portfolio {
	return NewPortfolio(
		NewStock("ACME", 10, 5.0),
		NewBond("T-Bill", 1000, 4.0),
		NewMutualFund("Vanguard500", 2500, 412.35),
		NewCryptocurrency("BTC", 0.25, 60000),
	)
}
