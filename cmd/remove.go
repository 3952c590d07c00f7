package cmd

import (
	"context"
	"flag"
	"fmt"
	"strconv"

	"github.com/google/subcommands"
)

type removeCmd struct{}

func (*removeCmd) Name() string     { return "remove" }
func (*removeCmd) Synopsis() string { return "remove an investment from the portfolio" }
func (*removeCmd) Usage() string {
	return `pms remove <index>

  Removes the investment at <index>, as numbered by 'pms list' (starting at 1).
  The following investments are renumbered.
`
}

func (*removeCmd) SetFlags(f *flag.FlagSet) {}

func (c *removeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(stderr, "Error: expected exactly one <index>")
		return subcommands.ExitUsageError
	}
	i, err := strconv.Atoi(f.Arg(0))
	if err != nil {
		fmt.Fprintf(stderr, "Error: invalid index %q: %v\n", f.Arg(0), err)
		return subcommands.ExitUsageError
	}

	p, err := LoadPortfolio()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	h, ok := p.At(i - 1)
	if !ok {
		fmt.Fprintf(stderr, "Error: no investment at index %d, the portfolio has %d\n", i, p.Len())
		return subcommands.ExitFailure
	}
	p.RemoveAt(i - 1)
	if err := SavePortfolio(p); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(stdout, "Removed %s\n", h.Summary(*currency))
	return subcommands.ExitSuccess
}
