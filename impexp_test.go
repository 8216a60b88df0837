package holdings

import (
	"errors"
	"strings"
	"testing"

	"github.com/etnz/holdings/date"
)

func TestImportObservations(t *testing.T) {
	// headers as SSGA publishes them: mixed case, spaces, the breakdown synonym
	in := `Date,Name,Identifier,SEDOL,Weight,Coupon,Par Value,Market Value,Local Currency,Maturity,Asset Breakdown
7/28/2025,APPLE INC,037833100,2046251,1.23,4.5,"1,000,000","985,000.50",USD,05/15/2030,CORPORATE
2025-07-28,UNNAMED LOAN,-,,0.5,,-,500000,USD,,PRIVATE CREDIT

`
	observations, err := ImportObservations(strings.NewReader(in), "PRIV")
	if err != nil {
		t.Fatalf("ImportObservations() error = %v", err)
	}
	if len(observations) != 2 {
		t.Fatalf("imported %d observations, want 2 (blank rows skipped)", len(observations))
	}

	o := observations[0]
	if o.Fund != "PRIV" {
		t.Errorf("Fund = %s, want PRIV (assigned by the caller)", o.Fund)
	}
	if o.Date != date.New(2025, 7, 28) {
		t.Errorf("Date = %s, want 2025-07-28 (US format accepted)", o.Date)
	}
	if !o.ParValue.Equal(A(1_000_000)) {
		t.Errorf("ParValue = %s, want 1000000 (separators stripped)", o.ParValue)
	}
	if !o.MarketValue.Equal(A(985_000.50)) {
		t.Errorf("MarketValue = %s, want 985000.5", o.MarketValue)
	}
	if o.AssetType != "CORPORATE" {
		t.Errorf("AssetType = %s, want CORPORATE (from the breakdown column)", o.AssetType)
	}

	o = observations[1]
	if o.Identifier != NoIdentifier {
		t.Errorf("Identifier = %q, want the %q sentinel", o.Identifier, NoIdentifier)
	}
	// "-" in a numeric column means no value
	if !o.ParValue.IsZero() {
		t.Errorf("ParValue = %s, want zero", o.ParValue)
	}
}

func TestImportObservationsRejectsForeignFund(t *testing.T) {
	in := "date,fund,name,par_value,market_value\n2025-07-28,PRSD,APPLE INC,100,99\n"
	_, err := ImportObservations(strings.NewReader(in), "PRIV")
	if !errors.Is(err, ErrFundMismatch) {
		t.Errorf("ImportObservations() error = %v, want ErrFundMismatch", err)
	}
}

func TestImportObservationsMissingColumns(t *testing.T) {
	in := "name,par_value\nAPPLE INC,100\n"
	_, err := ImportObservations(strings.NewReader(in), "PRIV")
	if err == nil {
		t.Fatal("ImportObservations() accepted a file without a date column")
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	day := date.New(2025, 7, 28)
	in := []PositionObservation{{
		Fund:          "PRIV",
		Date:          day,
		Name:          "APPLE INC",
		Identifier:    "037833100",
		Sedol:         "2046251",
		Weight:        "1.23",
		Coupon:        "4.5",
		ParValue:      A(1_000_000),
		MarketValue:   A(985_000.50),
		LocalCurrency: "USD",
		Maturity:      "05/15/2030",
		AssetType:     "CORPORATE",
	}}

	var buf strings.Builder
	if err := ExportObservations(&buf, in); err != nil {
		t.Fatalf("ExportObservations() error = %v", err)
	}
	out, err := ImportObservations(strings.NewReader(buf.String()), "PRIV")
	if err != nil {
		t.Fatalf("ImportObservations() error = %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("round trip produced %d observations, want 1", len(out))
	}
	if out[0].Name != in[0].Name || out[0].Sedol != in[0].Sedol || out[0].Maturity != in[0].Maturity ||
		!out[0].ParValue.Equal(in[0].ParValue) || !out[0].MarketValue.Equal(in[0].MarketValue) {
		t.Errorf("round trip altered the observation: %+v != %+v", out[0], in[0])
	}
}
