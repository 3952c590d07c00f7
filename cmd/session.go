package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/pms"
	"github.com/etnz/pms/session"
	"github.com/google/subcommands"
)

type sessionCmd struct{}

func (*sessionCmd) Name() string     { return "session" }
func (*sessionCmd) Synopsis() string { return "start the interactive menu" }
func (*sessionCmd) Usage() string {
	return `pms session

  Starts the interactive, menu driven, session: register users, log in and
  manage a portfolio. Users live for the session only. Portfolios are saved
  to, and loaded from, the portfolio file.

  See 'pms topic session'.
`
}

func (*sessionCmd) SetFlags(f *flag.FlagSet) {}

func (c *sessionCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s := session.New(stdout, os.Stdin, new(pms.Registry))
	s.File = *portfolioFile
	s.Currency = *currency
	if err := s.Run(ctx); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
