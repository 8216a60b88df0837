package holdings

import (
	"errors"
	"testing"

	"github.com/etnz/holdings/date"
)

func TestNewSnapshotRejectsDuplicates(t *testing.T) {
	monday := date.New(2025, 7, 21)
	_, err := NewSnapshot("PRIV", monday, []PositionObservation{
		position("PRIV", monday, "ALPHA CORP", "CUSIP1", 100, 99),
		position("PRIV", monday, "ALPHA CORP AGAIN", "CUSIP1", 50, 49),
	})
	if !errors.Is(err, ErrDuplicateAsset) {
		t.Errorf("NewSnapshot() error = %v, want ErrDuplicateAsset", err)
	}
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("a duplicate asset must classify as invalid input, got %v", err)
	}
}

func TestNewSnapshotRejectsForeignRecords(t *testing.T) {
	monday := date.New(2025, 7, 21)
	friday := date.New(2025, 7, 25)

	_, err := NewSnapshot("PRIV", monday, []PositionObservation{
		position("PRSD", monday, "ALPHA CORP", "CUSIP1", 100, 99),
	})
	if !errors.Is(err, ErrFundMismatch) {
		t.Errorf("NewSnapshot() with a foreign fund error = %v, want ErrFundMismatch", err)
	}

	_, err = NewSnapshot("PRIV", monday, []PositionObservation{
		position("PRIV", friday, "ALPHA CORP", "CUSIP1", 100, 99),
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("NewSnapshot() with a foreign date error = %v, want ErrInvalidInput", err)
	}
}

func TestSnapshotTotals(t *testing.T) {
	monday := date.New(2025, 7, 21)
	s := snapshot(t, "PRIV", monday,
		position("PRIV", monday, "ALPHA CORP", "CUSIP1", 100, 99.5),
		position("PRIV", monday, "BETA CORP", "CUSIP2", 200, 201.25),
	)

	if got := s.TotalParValue(); !got.Equal(A(300)) {
		t.Errorf("TotalParValue() = %s, want 300", got)
	}
	if got := s.TotalMarketValue(); !got.Equal(A(300.75)) {
		t.Errorf("TotalMarketValue() = %s, want 300.75", got)
	}
}

func TestSnapshotGet(t *testing.T) {
	monday := date.New(2025, 7, 21)
	s := snapshot(t, "PRIV", monday,
		position("PRIV", monday, "ALPHA CORP", "CUSIP1", 100, 99),
		position("PRIV", monday, "UNNAMED LOAN", NoIdentifier, 50, 50),
	)

	if o, ok := s.Get("CUSIP1"); !ok || o.Name != "ALPHA CORP" {
		t.Errorf("Get(CUSIP1) = %+v, %v", o, ok)
	}
	// identifier-less positions are keyed by name
	if o, ok := s.Get("UNNAMED LOAN"); !ok || !o.ParValue.Equal(A(50)) {
		t.Errorf("Get(UNNAMED LOAN) = %+v, %v", o, ok)
	}
	if s.Contains("CUSIP404") {
		t.Error("Contains() reported an asset that is not held")
	}
}
