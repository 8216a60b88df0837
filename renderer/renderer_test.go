package renderer

import (
	"strings"
	"testing"

	"github.com/etnz/holdings"
	"github.com/etnz/holdings/date"
)

func sampleReport() *holdings.ChangeReport {
	return &holdings.ChangeReport{
		Fund:     "PRIV",
		FundName: "SPDR SSGA IG Public & Private Credit ETF",
		Period: date.Range{
			From: date.New(2025, 7, 21),
			To:   date.New(2025, 7, 28),
		},
		ObservationDates: 5,
		TotalMarketValue: holdings.M(5_003_704_040.78, "USD"),
		TotalParValue:    holdings.M(5_100_000_000, "USD"),
		SecuritiesCount:  2,
		New: []holdings.AssetEntry{{
			Date:        date.New(2025, 7, 28),
			Name:        "APPLE INC",
			Identifier:  "037833100",
			ParValue:    holdings.A(100),
			MarketValue: holdings.A(98.5),
			Price:       holdings.PriceOf(holdings.A(98.5), holdings.A(100)),
			AssetType:   "CORPORATE",
		}},
		Removed: []holdings.AssetEntry{{
			Date:       date.New(2025, 7, 21),
			Name:       "OLD LOAN",
			Identifier: "-",
			ParValue:   holdings.A(50),
		}},
		Changes: []holdings.ParChange{{
			Date:       date.New(2025, 7, 24),
			Name:       "MICROSOFT CORP",
			Identifier: "594918104",
			Previous:   holdings.A(100),
			Current:    holdings.A(150),
			Delta:      holdings.A(50),
		}},
	}
}

func TestWeeklyMarkdown(t *testing.T) {
	got := WeeklyMarkdown(sampleReport())

	for _, want := range []string{
		"# Holdings Changes: SPDR SSGA IG Public & Private Credit ETF (PRIV)",
		"| Total Market Value | $5,003,704,040.78 |",
		"## New Assets",
		"| 2025-07-28 | APPLE INC | 037833100 | 100 | 98.5 | 98.5000 | CORPORATE |",
		"## Removed Assets",
		"| 2025-07-21 | OLD LOAN | - | 50 |",
		"## Par Value Changes",
		"| 2025-07-24 | MICROSOFT CORP | 594918104 | 100 | 150 | +50.00 |",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("markdown report is missing %q\nreport:\n%s", want, got)
		}
	}
}

func TestWeeklyMarkdownEmptySections(t *testing.T) {
	r := sampleReport()
	r.New, r.Removed, r.Changes = nil, nil, nil

	got := WeeklyMarkdown(r)
	for _, want := range []string{
		"No assets entered the fund in this period.",
		"No assets left the fund in this period.",
		"No par value changed in this period.",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("markdown report is missing %q", want)
		}
	}
}

func TestWriteCSV(t *testing.T) {
	var buf strings.Builder
	if err := WriteCSV(&buf, sampleReport()); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}
	got := buf.String()

	for _, want := range []string{
		"# NEW ASSETS",
		"# REMOVED ASSETS",
		"# PAR VALUE CHANGES",
		"2025-07-28,APPLE INC,037833100,100,98.5,98.5000,CORPORATE",
		"2025-07-24,MICROSOFT CORP,594918104,100,150,50,",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("CSV export is missing %q\nexport:\n%s", want, got)
		}
	}

	// zero par value: no price, not a zero price
	if !strings.Contains(got, "2025-07-21,OLD LOAN,-,50,0,,") {
		t.Errorf("removed asset with zero market value rendered incorrectly:\n%s", got)
	}
}

func TestWriteHTML(t *testing.T) {
	var buf strings.Builder
	if err := WriteHTML(&buf, "PRIV changes", WeeklyMarkdown(sampleReport())); err != nil {
		t.Fatalf("WriteHTML: %v", err)
	}
	got := buf.String()

	for _, want := range []string{
		"<!DOCTYPE html>",
		"<title>PRIV changes</title>",
		"<table>",
		"APPLE INC",
		"</html>",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("HTML export is missing %q", want)
		}
	}
}
