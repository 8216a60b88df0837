package cmd

import (
	"context"
	"flag"
	"os"
	"strings"

	"github.com/etnz/holdings"
	"github.com/etnz/holdings/renderer"
	"github.com/google/subcommands"
)

// historyCmd holds the flags for the 'history' subcommand.
type historyCmd struct {
	fund string
	csv  bool
}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "display the full observation history of one asset" }
func (*historyCmd) Usage() string {
	return `hld history -f <fund> [-csv] <identifier or name>

  Shows every observation of one asset in chronological order: its weight,
  par value, market value and derived price on each date. -csv writes the
  raw observations to stdout in the CSV interchange format instead.
`
}

func (c *historyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.fund, "f", "", "Fund holding the asset")
	f.BoolVar(&c.csv, "csv", false, "Export the observations as CSV instead of a table")
}

func (c *historyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.fund == "" {
		return fail("the -f fund flag is required")
	}
	key := strings.Join(f.Args(), " ")
	if key == "" {
		return fail("an asset identifier or name is required")
	}

	db, err := openStore()
	if err != nil {
		return fail("Error opening database: %v", err)
	}
	defer db.Close()

	observations, err := db.History(c.fund, key)
	if err != nil {
		return fail("Error querying history: %v", err)
	}
	if len(observations) == 0 {
		return fail("No observation of %q in %s. Try 'hld assets %s' to search.", key, c.fund, key)
	}

	if c.csv {
		if err := holdings.ExportObservations(os.Stdout, observations); err != nil {
			return fail("Error exporting history: %v", err)
		}
		return subcommands.ExitSuccess
	}

	printMarkdown(renderer.HistoryMarkdown(key, observations))
	return subcommands.ExitSuccess
}
