// Package renderer turns change reports into their publishable forms:
// Markdown for the terminal and the wiki, HTML for mail, CSV for
// spreadsheets.
package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/holdings"
	md "github.com/nao1215/markdown"
)

// disclosure closes every published report.
const disclosure = "Generated from the fund sponsor's published holdings files. Holdings data is reported with a delay and may be incomplete. This document is not investment advice."

// WeeklyMarkdown renders a change report to a markdown string.
func WeeklyMarkdown(r *holdings.ChangeReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	title := r.Fund
	if r.FundName != "" {
		title = fmt.Sprintf("%s (%s)", r.FundName, r.Fund)
	}
	doc.H1(fmt.Sprintf("Holdings Changes: %s", title))

	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{
			md.Bold("Period"),
			md.Bold(r.Period.String()),
		},
		Rows: [][]string{
			{"Observation Dates", fmt.Sprintf("%d", r.ObservationDates)},
			{"Securities Held", fmt.Sprintf("%d", r.SecuritiesCount)},
			{"Total Market Value", r.TotalMarketValue.String()},
			{"Total Par Value", r.TotalParValue.String()},
		},
	})

	doc.H2("New Assets")
	if len(r.New) == 0 {
		doc.PlainText("No assets entered the fund in this period.")
	} else {
		doc.Table(entriesTable(r.New))
	}

	doc.H2("Removed Assets")
	if len(r.Removed) == 0 {
		doc.PlainText("No assets left the fund in this period.")
	} else {
		doc.Table(entriesTable(r.Removed))
	}

	doc.H2("Par Value Changes")
	if len(r.Changes) == 0 {
		doc.PlainText("No par value changed in this period.")
	} else {
		table := md.TableSet{
			Alignment: []md.TableAlignment{
				md.AlignLeft,
				md.AlignLeft,
				md.AlignLeft,
				md.AlignRight,
				md.AlignRight,
				md.AlignRight,
			},
			Header: []string{"Date", "Name", "Identifier", "Previous Par", "Current Par", "Change"},
			Rows:   [][]string{},
		}
		for _, c := range r.Changes {
			table.Rows = append(table.Rows, []string{
				c.Date.String(),
				c.Name,
				c.Identifier,
				c.Previous.String(),
				c.Current.String(),
				c.Delta.SignedString(),
			})
		}
		doc.Table(table)
	}

	doc.HorizontalRule()
	doc.PlainText(md.Italic(disclosure))

	return doc.String()
}

// entriesTable lays out new and removed assets the same way. For removed
// assets the date column is the last date the asset was observed.
func entriesTable(entries []holdings.AssetEntry) md.TableSet {
	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignLeft,
		},
		Header: []string{"Date", "Name", "Identifier", "Par Value", "Market Value", "Price", "Type"},
		Rows:   [][]string{},
	}
	for _, e := range entries {
		table.Rows = append(table.Rows, []string{
			e.Date.String(),
			e.Name,
			e.Identifier,
			e.ParValue.String(),
			e.MarketValue.String(),
			e.Price.String(),
			e.AssetType,
		})
	}
	return table
}
