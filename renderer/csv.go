package renderer

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/etnz/holdings"
)

// WriteCSV exports a change report as a single CSV file with labeled
// sections. Section labels use a leading "#" so spreadsheet users can spot
// them, and empty sections are written anyway: a report where a section is
// silently missing reads like an export bug.
func WriteCSV(w io.Writer, r *holdings.ChangeReport) error {
	if _, err := fmt.Fprintf(w, "# %s holdings changes, %s\n", r.Fund, r.Period); err != nil {
		return err
	}

	if err := writeSection(w, "NEW ASSETS", entryRecords(r.New)); err != nil {
		return err
	}
	if err := writeSection(w, "REMOVED ASSETS", entryRecords(r.Removed)); err != nil {
		return err
	}
	return writeSection(w, "PAR VALUE CHANGES", changeRecords(r.Changes))
}

// WriteEntriesCSV exports one asset-entry section (new or removed assets)
// as a plain CSV file.
func WriteEntriesCSV(w io.Writer, entries []holdings.AssetEntry) error {
	cw := csv.NewWriter(w)
	if err := cw.WriteAll(entryRecords(entries)); err != nil {
		return err
	}
	return cw.Error()
}

// WriteChangesCSV exports the par value changes as a plain CSV file.
func WriteChangesCSV(w io.Writer, changes []holdings.ParChange) error {
	cw := csv.NewWriter(w)
	if err := cw.WriteAll(changeRecords(changes)); err != nil {
		return err
	}
	return cw.Error()
}

func writeSection(w io.Writer, label string, records [][]string) error {
	if _, err := fmt.Fprintf(w, "\n# %s\n", label); err != nil {
		return err
	}
	cw := csv.NewWriter(w)
	if err := cw.WriteAll(records); err != nil {
		return err
	}
	return cw.Error()
}

func entryRecords(entries []holdings.AssetEntry) [][]string {
	records := [][]string{{"date", "name", "identifier", "par_value", "market_value", "last_price", "asset_type"}}
	for _, e := range entries {
		price := ""
		if e.Price.Valid() {
			price = e.Price.String()
		}
		records = append(records, []string{
			e.Date.String(),
			e.Name,
			e.Identifier,
			e.ParValue.String(),
			e.MarketValue.String(),
			price,
			e.AssetType,
		})
	}
	return records
}

func changeRecords(changes []holdings.ParChange) [][]string {
	records := [][]string{{"date", "name", "identifier", "par_value_previous", "par_value_current", "par_change", "asset_type"}}
	for _, c := range changes {
		records = append(records, []string{
			c.Date.String(),
			c.Name,
			c.Identifier,
			c.Previous.String(),
			c.Current.String(),
			c.Delta.String(),
			c.AssetType,
		})
	}
	return records
}
