package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/pms/renderer"
	"github.com/google/subcommands"
)

type diversifyCmd struct{}

func (*diversifyCmd) Name() string     { return "diversify" }
func (*diversifyCmd) Synopsis() string { return "break down the portfolio value by asset class" }
func (*diversifyCmd) Usage() string {
	return `pms diversify

  Displays the share of each asset class (stock, bond, mutual fund,
  cryptocurrency) in the portfolio value and the diversification ratio.
  The ratio is 1 for a portfolio concentrated on a single class and 0.5 when
  evenly spread over the four.
`
}

func (*diversifyCmd) SetFlags(f *flag.FlagSet) {}

func (c *diversifyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, err := LoadPortfolio()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	d, err := renderer.NewDiversification(p, *currency)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.RenderDiversification(d))
	return subcommands.ExitSuccess
}
