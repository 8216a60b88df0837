package holdings

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/etnz/holdings/date"
)

// this file contains functions to handle the CSV interchange format.
// It should remain human readable, single file, and easy to append into the database.

// csvHeader is the canonical column order of the interchange format.
var csvHeader = []string{"date", "fund", "name", "identifier", "sedol", "weight", "coupon", "par_value", "market_value", "local_currency", "maturity", "asset_type"}

// ImportObservations reads position observations from 'r' in CSV format.
//
// The first row is a header. Column names are normalized (lowercased,
// spaces replaced with underscores) so the files produced by the fund
// sponsors can be ingested without prior editing. "asset_breakdown" is
// accepted as a synonym for "asset_type", since that is what the SSGA files
// call the classification column.
//
// Columns "date" and "name" are required. The fund symbol is not expected
// in the file: holdings files are published per fund, so the caller assigns
// it. A non-empty "fund" column, when present, must agree with the assigned
// fund. Dates are accepted in ISO (2025-07-28) or US (7/28/2025) form;
// par and market values may carry thousands separators.
func ImportObservations(r io.Reader, fund string) ([]PositionObservation, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("cannot read CSV header: %w", err)
	}
	col := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "_")
		if name == "asset_breakdown" {
			name = "asset_type"
		}
		col[name] = i
	}
	for _, required := range []string{"date", "name"} {
		if _, ok := col[required]; !ok {
			return nil, fmt.Errorf("CSV is missing required column %q", required)
		}
	}

	field := func(record []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	var observations []PositionObservation
	for line := 2; ; line++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("cannot read CSV line %d: %w", line, err)
		}
		if isBlank(record) {
			continue // trailing footer rows in sponsor files
		}

		on, err := date.Parse(field(record, "date"))
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if f := field(record, "fund"); f != "" && f != fund {
			return nil, fmt.Errorf("line %d: row belongs to fund %q, not %q: %w", line, f, fund, ErrFundMismatch)
		}
		par, err := ParseAmount(plainNumber(field(record, "par_value")))
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid par value: %w", line, err)
		}
		market, err := ParseAmount(plainNumber(field(record, "market_value")))
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid market value: %w", line, err)
		}

		observations = append(observations, PositionObservation{
			Fund:          fund,
			Date:          on,
			Name:          field(record, "name"),
			Identifier:    field(record, "identifier"),
			Sedol:         field(record, "sedol"),
			Weight:        field(record, "weight"),
			Coupon:        field(record, "coupon"),
			ParValue:      par,
			MarketValue:   market,
			LocalCurrency: field(record, "local_currency"),
			Maturity:      field(record, "maturity"),
			AssetType:     field(record, "asset_type"),
		})
	}
	return observations, nil
}

// ExportObservations writes observations to 'w' in the CSV interchange
// format, one row per observation, canonical column order.
func ExportObservations(w io.Writer, observations []PositionObservation) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, o := range observations {
		record := []string{
			o.Date.String(),
			o.Fund,
			o.Name,
			o.Identifier,
			o.Sedol,
			o.Weight,
			o.Coupon,
			o.ParValue.String(),
			o.MarketValue.String(),
			o.LocalCurrency,
			o.Maturity,
			o.AssetType,
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// isBlank reports whether every field of a record is empty.
func isBlank(record []string) bool {
	for _, f := range record {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}

// plainNumber strips the decorations sponsor files put on numbers.
func plainNumber(s string) string {
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimPrefix(s, "$")
	if s == "-" {
		return ""
	}
	return s
}
