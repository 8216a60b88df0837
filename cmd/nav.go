package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/holdings"
	"github.com/google/subcommands"
)

// navCmd holds the flags for the 'nav' subcommand.
type navCmd struct{}

func (*navCmd) Name() string     { return "nav" }
func (*navCmd) Synopsis() string { return "display the latest published NAV of the tracked funds" }
func (*navCmd) Usage() string {
	return `hld nav [fund...]

  Queries the sponsor's fund-data endpoint and prints the latest net asset
  value per share. Only funds with a nav_url in the catalog are queried.
`
}

func (*navCmd) SetFlags(*flag.FlagSet) {}

func (c *navCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
		if fund.NAVURL == "" {
			fmt.Printf("%s: no nav endpoint in the catalog\n", symbol)
			continue
		}
		nav, on, err := holdings.LatestNAV(fund)
		if err != nil {
			fmt.Printf("cannot query nav for %s: %v\n", symbol, err)
			status = subcommands.ExitFailure
			continue
		}
		fmt.Printf("%s: %s as of %s\n", symbol, nav, on)
	}
	return status
}
