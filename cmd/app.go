// Package cmd implements the CLI application to manage a portfolio.
package cmd

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/pms"
	"github.com/etnz/pms/advisor"
	"github.com/etnz/pms/quote"
	"github.com/etnz/pms/session"
	"github.com/google/subcommands"
	"go.uber.org/zap"
)

// Commands lists all the subcommands, in the order of the help.
var Commands = []subcommands.Command{
	&addCmd{},
	&removeCmd{},
	&listCmd{},
	&valueCmd{},
	&diversifyCmd{},
	&updateCmd{},
	&assistCmd{},
	&sessionCmd{},
	&topicCmd{},
}

// Register registers Commands and the standard help commands.
func Register(c *subcommands.Commander) {
	c.Register(c.HelpCommand(), "")
	c.Register(c.FlagsCommand(), "")
	c.Register(c.CommandsCommand(), "")
	for _, cmd := range Commands {
		c.Register(cmd, group(cmd))
	}
}

func group(c subcommands.Command) string {
	switch c.(type) {
	case *addCmd, *removeCmd, *updateCmd:
		return "edit"
	case *listCmd, *valueCmd, *diversifyCmd:
		return "report"
	default:
		return ""
	}
}

// Environment variables providing the default of the global flags. They
// are also set for extensions.
const (
	EnvPortfolioFile = "PMS_PORTFOLIO_FILE"
	EnvCurrency      = "PMS_CURRENCY"
	EnvVerbose       = "PMS_VERBOSE"
	EnvQuoteURL      = "PMS_QUOTE_URL"
	EnvQuotePath     = "PMS_QUOTE_PATH"
	EnvModel         = "PMS_MODEL"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	portfolioFile = flag.String("portfolio-file", envOr(EnvPortfolioFile, pms.DefaultFile), "Path to the portfolio file")
	currency      = flag.String("currency", envOr(EnvCurrency, pms.DefaultCurrency), "Currency used to display amounts")
	Verbose       = flag.Bool("v", envBool(EnvVerbose), "Log what is going on to stderr")
	rawMarkdown   = flag.Bool("markdown", false, "Print reports as raw markdown instead of rendering them")
)

// output streams, replaced in tests.
var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

func envOr(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func envBool(key string) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	return err == nil && v
}

// SetupLogging installs the logger of every package according to the -v
// flag. It returns a function to flush the logs.
func SetupLogging() func() {
	logger := zap.NewNop()
	if *Verbose {
		var err error
		if logger, err = zap.NewDevelopment(); err != nil {
			fmt.Fprintf(stderr, "Error creating logger: %v\n", err)
			logger = zap.NewNop()
		}
	}
	zap.ReplaceGlobals(logger)
	pms.SetLogger(logger)
	session.SetLogger(logger.Named("session"))
	quote.SetLogger(logger.Named("quote"))
	advisor.SetLogger(logger.Named("advisor"))
	return func() { _ = logger.Sync() }
}

// LoadPortfolio loads the portfolio from the portfolio file. A missing file
// is an empty portfolio.
func LoadPortfolio() (*pms.Portfolio, error) {
	p := new(pms.Portfolio)
	if _, err := p.LoadFrom(*portfolioFile); err != nil {
		return nil, err
	}
	return p, nil
}

// SavePortfolio writes p to the portfolio file.
func SavePortfolio(p *pms.Portfolio) error {
	return p.SaveTo(*portfolioFile)
}

// printMarkdown renders md for the terminal, unless -markdown is set.
func printMarkdown(md string) {
	if *rawMarkdown {
		fmt.Fprint(stdout, md)
		return
	}
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(120))
	if err != nil {
		fmt.Fprint(stdout, md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Fprint(stdout, md)
		return
	}
	fmt.Fprint(stdout, out)
}
