package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/pms/renderer"
	"github.com/google/subcommands"
)

type listCmd struct{}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "list the investments of the portfolio" }
func (*listCmd) Usage() string {
	return `pms list

  Displays every investment of the portfolio, numbered from 1, with its
  current value, and the portfolio total value.
`
}

func (*listCmd) SetFlags(f *flag.FlagSet) {}

func (c *listCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, err := LoadPortfolio()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.RenderHoldings(renderer.NewHoldings(p, *currency)))
	return subcommands.ExitSuccess
}
