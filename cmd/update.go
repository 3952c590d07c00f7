package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"

	"github.com/etnz/pms/quote"
	"github.com/google/subcommands"
)

type updateCmd struct {
	url   string
	path  string
	cache bool
}

func (*updateCmd) Name() string     { return "update" }
func (*updateCmd) Synopsis() string { return "update stock and cryptocurrency prices from a quote service" }
func (*updateCmd) Usage() string {
	return `pms update [-url <template>] [-path <jsonpath>] [-cache]

  Fetches the latest price of every stock and cryptocurrency of the portfolio
  from a JSON web service and saves the portfolio.

  The service URL is a template where {name} is replaced by the investment
  name, and the price is selected in the response by a JSONPath expression.
  Their defaults are read from $PMS_QUOTE_URL and $PMS_QUOTE_PATH.

  Prices that cannot be fetched are reported and left unchanged, the others
  are still updated.

Usage Examples:
$ pms update -url 'https://api.example.com/quote/{name}' -path '$.last'

`
}

func (c *updateCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.url, "url", envOr(EnvQuoteURL, ""), "quote service URL template, {name} is replaced by the investment name")
	f.StringVar(&c.path, "path", envOr(EnvQuotePath, "$.price"), "JSONPath of the price in the response")
	f.BoolVar(&c.cache, "cache", false, "cache the responses for the day")
}

func (c *updateCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 0 {
		fmt.Fprintln(stderr, "Error: no arguments expected")
		return subcommands.ExitUsageError
	}
	if c.url == "" {
		fmt.Fprintf(stderr, "Error: no quote service, use -url or $%s\n", EnvQuoteURL)
		return subcommands.ExitUsageError
	}

	p, err := LoadPortfolio()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	fetcher := &quote.Fetcher{Client: http.DefaultClient, URL: c.url, Path: c.path}
	if c.cache {
		fetcher.Client = quote.Daily("")
	}
	n, uerr := p.UpdatePrices(ctx, fetcher)
	if uerr != nil {
		fmt.Fprintf(stderr, "Warning: some prices were not updated:\n%v\n", uerr)
	}
	if errors.Is(uerr, context.Canceled) || errors.Is(uerr, context.DeadlineExceeded) {
		return subcommands.ExitFailure
	}

	if n > 0 {
		if err := SavePortfolio(p); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
	}
	fmt.Fprintf(stdout, "Updated %d prices.\n", n)
	if uerr != nil {
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
