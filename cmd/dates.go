package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

// datesCmd holds the flags for the 'dates' subcommand.
type datesCmd struct {
	fund string
}

func (*datesCmd) Name() string     { return "dates" }
func (*datesCmd) Synopsis() string { return "list the observation dates in the database" }
func (*datesCmd) Usage() string {
	return `hld dates [-f <fund>]

  Lists the dates holdings were observed on, per fund.
`
}

func (c *datesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.fund, "f", "", "Only list dates of this fund")
}

func (c *datesCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	db, err := openStore()
	if err != nil {
		return fail("Error opening database: %v", err)
	}
	defer db.Close()

	funds := []string{c.fund}
	if c.fund == "" {
		funds, err = db.Funds()
		if err != nil {
			return fail("Error listing funds: %v", err)
		}
		if len(funds) == 0 {
			fmt.Println("The database is empty.")
			return subcommands.ExitSuccess
		}
	}

	for _, fund := range funds {
		dates, err := db.Dates(fund)
		if err != nil {
			return fail("Error listing dates for %s: %v", fund, err)
		}
		fmt.Printf("%s: %d observation dates\n", fund, len(dates))
		for _, on := range dates {
			fmt.Printf("  %s\n", on)
		}
	}
	return subcommands.ExitSuccess
}
