package cmd

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/etnz/holdings/renderer"
	"github.com/etnz/holdings/store"
	"github.com/google/subcommands"
)

// assetsCmd holds the flags for the 'assets' subcommand.
type assetsCmd struct {
	fund string
}

func (*assetsCmd) Name() string     { return "assets" }
func (*assetsCmd) Synopsis() string { return "list or search the assets ever observed" }
func (*assetsCmd) Usage() string {
	return `hld assets [-f <fund>] [search term]

  Without a search term, lists every asset of the fund (or of all funds).
  With one, searches by name, identifier (CUSIP) or SEDOL: exact matches
  first, substrings otherwise.
`
}

func (c *assetsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.fund, "f", "", "Only list assets of this fund")
}

func (c *assetsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	db, err := openStore()
	if err != nil {
		return fail("Error opening database: %v", err)
	}
	defer db.Close()

	var assets []store.Asset
	title := "Assets"
	if term := strings.Join(f.Args(), " "); term != "" {
		assets, err = db.SearchAssets(term)
		title = fmt.Sprintf("Assets matching %q", term)
	} else {
		assets, err = db.Assets(c.fund)
		if c.fund != "" {
			title = fmt.Sprintf("Assets of %s", c.fund)
		}
	}
	if err != nil {
		return fail("Error querying assets: %v", err)
	}

	printMarkdown(renderer.AssetsMarkdown(title, assets))
	return subcommands.ExitSuccess
}
