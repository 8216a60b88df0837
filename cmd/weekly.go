package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/holdings"
	"github.com/etnz/holdings/date"
	"github.com/etnz/holdings/renderer"
	"github.com/google/subcommands"
)

// weeklyCmd holds the flags for the 'weekly' subcommand.
type weeklyCmd struct {
	fund   string
	from   string
	to     string
	days   int
	format string
	output string
}

func (*weeklyCmd) Name() string     { return "weekly" }
func (*weeklyCmd) Synopsis() string { return "build the change report of a fund over a period" }
func (*weeklyCmd) Usage() string {
	return `hld weekly -f <fund> [-days <n> | -from <date> -to <date>] [-format md|html|csv] [-o <file>]

  Builds the period change report: new assets, removed assets, and every
  par value move between consecutive observation dates. Defaults to the
  last 7 days, rendered to the terminal.
`
}

func (c *weeklyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.fund, "f", "", "Fund to report on")
	f.StringVar(&c.from, "from", "", "Start of the period")
	f.StringVar(&c.to, "to", date.Today().String(), "End of the period")
	f.IntVar(&c.days, "days", 7, "Length of the period in days, when -from is not given")
	f.StringVar(&c.format, "format", "", "Output format: md, html or csv. Empty renders to the terminal")
	f.StringVar(&c.output, "o", "", "Write the report to a file instead of stdout")
}

func (c *weeklyCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.fund == "" {
		return fail("the -f fund flag is required")
	}

	to, err := date.Parse(c.to)
	if err != nil {
		return fail("Error parsing -to: %v", err)
	}
	period := date.LastDays(to, c.days)
	if c.from != "" {
		from, err := date.Parse(c.from)
		if err != nil {
			return fail("Error parsing -from: %v", err)
		}
		period = date.NewRange(from, to)
	}

	db, err := openStore()
	if err != nil {
		return fail("Error opening database: %v", err)
	}
	defer db.Close()

	snapshots, err := db.Snapshots(c.fund, period)
	if err != nil {
		return fail("Error loading holdings: %v", err)
	}
	if len(snapshots) < 2 {
		return fail("Need at least two observation dates of %s in %s, have %d", c.fund, period, len(snapshots))
	}

	report, err := holdings.BuildChangeReport(snapshots)
	if err != nil {
		return fail("Error building report: %v", err)
	}
	if catalog, err := loadCatalog(); err == nil {
		if fund, ok := catalog.Get(c.fund); ok {
			report.FundName = fund.Name
		}
	}

	out := os.Stdout
	if c.output != "" {
		out, err = os.Create(c.output)
		if err != nil {
			return fail("Error creating %q: %v", c.output, err)
		}
		defer out.Close()
	}

	switch c.format {
	case "":
		if c.output != "" {
			fmt.Fprint(out, renderer.WeeklyMarkdown(report))
		} else {
			printMarkdown(renderer.WeeklyMarkdown(report))
		}
	case "md":
		fmt.Fprint(out, renderer.WeeklyMarkdown(report))
	case "html":
		title := fmt.Sprintf("%s holdings changes, %s", report.Fund, report.Period)
		if err := renderer.WriteHTML(out, title, renderer.WeeklyMarkdown(report)); err != nil {
			return fail("Error writing HTML report: %v", err)
		}
	case "csv":
		if err := renderer.WriteCSV(out, report); err != nil {
			return fail("Error writing CSV report: %v", err)
		}
	default:
		return fail("Unknown format %q: use md, html or csv", c.format)
	}
	return subcommands.ExitSuccess
}
