package cmd

import (
	"context"
	"flag"

	"github.com/etnz/holdings"
	"github.com/etnz/holdings/date"
	"github.com/etnz/holdings/renderer"
	"github.com/google/subcommands"
)

// diffCmd holds the flags for the 'diff' subcommand.
type diffCmd struct {
	fund string
	from string
	to   string
}

func (*diffCmd) Name() string     { return "diff" }
func (*diffCmd) Synopsis() string { return "compare the holdings of a fund on two dates" }
func (*diffCmd) Usage() string {
	return `hld diff -f <fund> [-from <date>] [-to <date>]

  Compares the fund's holdings on two observation dates: assets that
  entered, assets that left, and par values that moved. Defaults to the two
  most recent dates in the database.
`
}

func (c *diffCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.fund, "f", "", "Fund to compare")
	f.StringVar(&c.from, "from", "", "Baseline date (default: second most recent)")
	f.StringVar(&c.to, "to", "", "Current date (default: most recent)")
}

func (c *diffCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.fund == "" {
		return fail("the -f fund flag is required")
	}

	db, err := openStore()
	if err != nil {
		return fail("Error opening database: %v", err)
	}
	defer db.Close()

	dates, err := db.Dates(c.fund)
	if err != nil {
		return fail("Error listing dates: %v", err)
	}
	if len(dates) < 2 {
		return fail("Need at least two observation dates of %s to compare, have %d", c.fund, len(dates))
	}

	from, to := dates[len(dates)-2], dates[len(dates)-1]
	if c.from != "" {
		if from, err = date.Parse(c.from); err != nil {
			return fail("Error parsing -from: %v", err)
		}
	}
	if c.to != "" {
		if to, err = date.Parse(c.to); err != nil {
			return fail("Error parsing -to: %v", err)
		}
	}

	baseline, err := db.Snapshot(c.fund, from)
	if err != nil {
		return fail("Error loading baseline: %v", err)
	}
	current, err := db.Snapshot(c.fund, to)
	if err != nil {
		return fail("Error loading current holdings: %v", err)
	}

	report, err := holdings.BuildChangeReport([]*holdings.Snapshot{baseline, current})
	if err != nil {
		return fail("Error comparing holdings: %v", err)
	}
	if catalog, err := loadCatalog(); err == nil {
		if fund, ok := catalog.Get(c.fund); ok {
			report.FundName = fund.Name
		}
	}

	printMarkdown(renderer.WeeklyMarkdown(report))
	return subcommands.ExitSuccess
}
