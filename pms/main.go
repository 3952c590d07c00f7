// Command pms manages a personal investment portfolio.
//
// Run 'pms help' for the list of commands, and 'pms topic' for the
// documentation.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"path"

	"github.com/etnz/pms/cmd"
	"github.com/google/subcommands"
)

func main() {
	// in completion mode, this call exits.
	cmd.Completion().Complete("pms")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	cmd.Register(commander)

	flag.Parse()
	flush := cmd.SetupLogging()

	if sub := flag.Arg(0); sub != "" && !cmd.IsCommand(sub) {
		if ok, code := cmd.RunExtension(sub, flag.Args()[1:]); ok {
			flush()
			os.Exit(code)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	status := commander.Execute(ctx)
	stop()
	flush()
	os.Exit(int(status))
}
