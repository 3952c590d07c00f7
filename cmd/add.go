package cmd

import (
	"context"
	"flag"
	"fmt"
	"strconv"

	"github.com/etnz/pms"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

type addCmd struct{}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add an investment to the portfolio" }
func (*addCmd) Usage() string {
	return `pms add <type> <name> <quantity> <price>

  Adds an investment at the end of the portfolio file. <type> is one of
  stock, bond, mutual or crypto, and the two numbers depend on it. <name> is
  a single word: it cannot be empty nor contain spaces.

    stock  <name> <shares> <price per share>
    bond   <name> <amount> <interest rate in percent>
    mutual <name> <amount> <NAV>
    crypto <name> <units>  <price per unit>

Usage Examples:
$ pms add stock ACME 10 5
$ pms add bond T-Bill 1000 4

`
}

func (*addCmd) SetFlags(f *flag.FlagSet) {}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 4 {
		fmt.Fprintln(stderr, "Error: expected <type> <name> <quantity> <price>")
		return subcommands.ExitUsageError
	}
	h, err := parseHolding(f.Arg(0), f.Arg(1), f.Arg(2), f.Arg(3))
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	p, err := LoadPortfolio()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	p.Add(h)
	if err := SavePortfolio(p); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(stdout, "Added %s\n", h.Summary(*currency))
	return subcommands.ExitSuccess
}

// parseHolding builds a holding from its command line arguments.
func parseHolding(typ, name, a, b string) (pms.Holding, error) {
	kind, ok := pms.ParseKindAlias(typ)
	if !ok {
		return pms.Holding{}, fmt.Errorf("unknown investment type %q, want stock, bond, mutual or crypto", typ)
	}
	if err := pms.CheckName(name); err != nil {
		return pms.Holding{}, err
	}
	y, err := decimal.NewFromString(b)
	if err != nil {
		return pms.Holding{}, fmt.Errorf("invalid number %q: %w", b, err)
	}

	switch kind {
	case pms.Stock:
		shares, err := strconv.ParseInt(a, 10, 64)
		if err != nil {
			return pms.Holding{}, fmt.Errorf("invalid number of shares %q: %w", a, err)
		}
		return pms.NewStock(name, shares, y), nil
	}

	x, err := decimal.NewFromString(a)
	if err != nil {
		return pms.Holding{}, fmt.Errorf("invalid number %q: %w", a, err)
	}
	switch kind {
	case pms.Bond:
		return pms.NewBond(name, x, y), nil
	case pms.MutualFund:
		return pms.NewMutualFund(name, x, y), nil
	default:
		return pms.NewCryptocurrency(name, x, y), nil
	}
}
