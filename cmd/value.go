package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/pms"
	"github.com/google/subcommands"
)

type valueCmd struct {
	plain bool
}

func (*valueCmd) Name() string     { return "value" }
func (*valueCmd) Synopsis() string { return "print the portfolio total value" }
func (*valueCmd) Usage() string {
	return `pms value [-plain]

  Prints the total value of the portfolio. With -plain, the number is printed
  alone, for scripts.
`
}

func (c *valueCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.plain, "plain", false, "print the bare number")
}

func (c *valueCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, err := LoadPortfolio()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if c.plain {
		fmt.Fprintln(stdout, p.TotalValue())
		return subcommands.ExitSuccess
	}
	fmt.Fprintf(stdout, "Total Portfolio Value: %s\n", pms.M(p.TotalValue(), *currency))
	return subcommands.ExitSuccess
}
