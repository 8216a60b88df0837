package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/holdings"
	"github.com/google/subcommands"
)

// fetchCmd holds the flags for the 'fetch' subcommand.
type fetchCmd struct {
	dir string
}

func (*fetchCmd) Name() string     { return "fetch" }
func (*fetchCmd) Synopsis() string { return "download the daily holdings files from the sponsor" }
func (*fetchCmd) Usage() string {
	return `hld fetch [-dir <dir>] [fund...]

  Downloads today's holdings file for the given funds (all catalog funds by
  default) into a local directory. Files keep the sponsor's format; convert
  them to CSV before ingesting.
`
}

func (c *fetchCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.dir, "dir", ".", "Directory to write the downloaded files to")
}

func (c *fetchCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	catalog, err := loadCatalog()
	if err != nil {
		return fail("Error loading fund catalog: %v", err)
	}

	symbols := f.Args()
	if len(symbols) == 0 {
		symbols = catalog.Symbols()
	}

	status := subcommands.ExitSuccess
	for _, symbol := range symbols {
		fund, ok := catalog.Get(symbol)
		if !ok {
			fmt.Printf("unknown fund %q, skipping\n", symbol)
			status = subcommands.ExitFailure
			continue
		}
		path, err := holdings.DownloadHoldings(fund, c.dir)
		if err != nil {
			fmt.Printf("cannot fetch %s: %v\n", symbol, err)
			status = subcommands.ExitFailure
			continue
		}
		fmt.Printf("fetched %s into %s\n", symbol, path)
	}
	return status
}
