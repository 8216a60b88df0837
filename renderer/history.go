package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/holdings"
	"github.com/etnz/holdings/store"
	md "github.com/nao1215/markdown"
)

// HistoryMarkdown renders the full observation history of one asset.
func HistoryMarkdown(key string, observations []holdings.PositionObservation) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("History for %s", key))
	if len(observations) > 0 {
		name := observations[0].Name
		if name != key {
			doc.PlainText(name)
		}
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Date", "Weight", "Par Value", "Market Value", "Price"},
		Rows:   [][]string{},
	}
	for _, o := range observations {
		table.Rows = append(table.Rows, []string{
			o.Date.String(),
			o.Weight,
			o.ParValue.String(),
			o.MarketValue.String(),
			o.Price().String(),
		})
	}
	doc.Table(table)

	return doc.String()
}

// AssetsMarkdown renders a list of assets, as produced by a search or a
// full listing.
func AssetsMarkdown(title string, assets []store.Asset) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(title)
	if len(assets) == 0 {
		doc.PlainText("No matching asset.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{"Fund", "Name", "Identifier", "SEDOL", "First Seen", "Last Seen", "Observations"},
		Rows:   [][]string{},
	}
	for _, a := range assets {
		table.Rows = append(table.Rows, []string{
			a.Fund,
			a.Name,
			a.Identifier,
			a.Sedol,
			a.FirstSeen.String(),
			a.LastSeen.String(),
			fmt.Sprintf("%d", a.Observations),
		})
	}
	doc.Table(table)

	return doc.String()
}
