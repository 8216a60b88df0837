// Package cmd implements the CLI application to track fund holdings.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/holdings"
	"github.com/etnz/holdings/store"
	"github.com/google/subcommands"
)

// Commands is the list of subcommands of the application. A main package
// registers them on a commander and executes the user-selected one.
var Commands = []subcommands.Command{
	&fetchCmd{},
	&ingestCmd{},
	&navCmd{},

	&datesCmd{},
	&assetsCmd{},
	&historyCmd{},

	&diffCmd{},
	&weeklyCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var dbFile = flag.String("db", "holdings.db", "Path to the holdings database file")
var fundsFile = flag.String("funds", "", "Path to the fund catalog file (YAML). Empty uses the built-in catalog")

// openStore opens the application's holdings database.
func openStore() (*store.Store, error) {
	return store.Open(*dbFile)
}

// loadCatalog loads the application's fund catalog.
func loadCatalog() (*holdings.Catalog, error) {
	return holdings.LoadCatalog(*fundsFile)
}

// printMarkdown renders markdown to the terminal. If the terminal renderer
// cannot be built the raw markdown is printed instead, which is still
// readable.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(0))
	if err != nil {
		fmt.Print(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}

// fail prints an error to stderr and returns the failure exit status.
func fail(format string, args ...interface{}) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	return subcommands.ExitFailure
}
