package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/etnz/pms/advisor"
	"github.com/google/subcommands"
	"google.golang.org/genai"
)

// assistCmd is the subcommand for the AI assistant.
type assistCmd struct {
	model string
}

func (*assistCmd) Name() string     { return "assist" }
func (*assistCmd) Synopsis() string { return "start an interactive session with the AI assistant" }
func (*assistCmd) Usage() string {
	return `pms assist [-model <name>] [question...]

  Starts an interactive session with an AI assistant that can read the
  portfolio. The arguments, if any, are asked as the first question.
  Type 'bye' to exit.

  It uses Gemini, configured from the environment (GEMINI_API_KEY or
  GOOGLE_API_KEY).
`
}

func (c *assistCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.model, "model", envOr(EnvModel, advisor.DefaultModel), "Gemini model")
}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var prompts []string
	if f.NArg() > 0 {
		prompts = append(prompts, strings.Join(f.Args(), " "))
	}

	p, err := LoadPortfolio()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	a := advisor.New(stdout, os.Stdin, advisor.NewPortfolioExpert(p, *currency, c.model))
	a.Print = func(_ io.Writer, md string) { printMarkdown(md) }
	if err := a.Run(ctx, client, prompts...); err != nil {
		fmt.Fprintln(stderr, "Assistant failed:", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
