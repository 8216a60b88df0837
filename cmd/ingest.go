package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/holdings"
	"github.com/google/subcommands"
)

// ingestCmd holds the flags for the 'ingest' subcommand.
type ingestCmd struct {
	fund string
}

func (*ingestCmd) Name() string     { return "ingest" }
func (*ingestCmd) Synopsis() string { return "load holdings CSV files into the database" }
func (*ingestCmd) Usage() string {
	return `hld ingest -f <fund> <file.csv>...

  Reads holdings CSV files and appends their observations to the database.
  Dates already in the database are skipped, so re-ingesting a file is safe.
  With no file argument, reads from stdin.
`
}

func (c *ingestCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.fund, "f", "", "Fund symbol the files belong to")
}

func (c *ingestCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.fund == "" {
		return fail("the -f fund flag is required")
	}

	var observations []holdings.PositionObservation
	if f.NArg() == 0 {
		obs, err := holdings.ImportObservations(os.Stdin, c.fund)
		if err != nil {
			return fail("Error reading stdin: %v", err)
		}
		observations = obs
	}
	for _, name := range f.Args() {
		file, err := os.Open(name)
		if err != nil {
			return fail("Error opening %q: %v", name, err)
		}
		obs, err := holdings.ImportObservations(file, c.fund)
		file.Close()
		if err != nil {
			return fail("Error reading %q: %v", name, err)
		}
		observations = append(observations, obs...)
	}

	db, err := openStore()
	if err != nil {
		return fail("Error opening database: %v", err)
	}
	defer db.Close()

	inserted, skipped, err := db.Append(observations)
	if err != nil {
		return fail("Error inserting observations: %v", err)
	}

	fmt.Printf("Inserted %d observations for %s\n", inserted, c.fund)
	for _, on := range skipped {
		fmt.Printf("Skipped %s: already in the database\n", on)
	}
	return subcommands.ExitSuccess
}
