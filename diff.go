package holdings

import (
	"errors"
	"fmt"
	"sort"

	"github.com/etnz/holdings/date"
)

// Error taxonomy of the diff engine. Everything else (network, file,
// spreadsheet problems) belongs to the ingestion layer, which is expected to
// hand over validated, normalized observations.
var (
	// ErrInvalidInput reports inputs that violate the diff preconditions.
	ErrInvalidInput = errors.New("invalid input")
	// ErrFundMismatch reports an attempt to compare snapshots of two different funds.
	ErrFundMismatch = fmt.Errorf("snapshots reference different funds: %w", ErrInvalidInput)
	// ErrDuplicateAsset reports a composite key appearing twice within one snapshot.
	ErrDuplicateAsset = fmt.Errorf("duplicate asset in snapshot: %w", ErrInvalidInput)
)

// AssetEntry is one asset appearing in (or disappearing from) a fund.
//
// For a new asset, Date is the first date it was observed. For a removed
// asset, Date is the last date it was observed (the baseline date), and par,
// market and price carry the last observed values.
type AssetEntry struct {
	Date        date.Date `json:"date"`
	Name        string    `json:"name"`
	Identifier  string    `json:"identifier"`
	ParValue    Amount    `json:"parValue"`
	MarketValue Amount    `json:"marketValue"`
	Price       Price     `json:"price,omitempty"`
	AssetType   string    `json:"assetType,omitempty"`
}

// ParChange is one move in the par value of an asset held on both dates.
type ParChange struct {
	Date       date.Date `json:"date"`
	Name       string    `json:"name"`
	Identifier string    `json:"identifier"`
	Previous   Amount    `json:"parValuePrevious"`
	Current    Amount    `json:"parValueCurrent"`
	Delta      Amount    `json:"parChange"`
	AssetType  string    `json:"assetType,omitempty"`
}

// DiffResult classifies every asset of two snapshots into three disjoint
// collections; assets present in both with an unchanged par value are left
// implicit. Collections are deterministically ordered: new and removed by
// name ascending, changes by date descending then name ascending.
type DiffResult struct {
	Fund     string    `json:"fund"`
	Baseline date.Date `json:"baseline"`
	Current  date.Date `json:"current"`

	New     []AssetEntry `json:"new"`
	Removed []AssetEntry `json:"removed"`
	Changes []ParChange  `json:"changes"`

	// Unchanged counts the assets held on both dates at the same par value.
	Unchanged int `json:"unchanged"`
}

// Diff compares the holdings of a fund on two dates.
//
// Both snapshots must belong to the same fund; either may be empty. The
// computation is pure: no I/O, no shared state, safe to call concurrently
// for different date pairs.
func Diff(baseline, current *Snapshot) (*DiffResult, error) {
	if baseline.Fund() != current.Fund() {
		return nil, fmt.Errorf("cannot diff %q against %q: %w", baseline.Fund(), current.Fund(), ErrFundMismatch)
	}

	r := &DiffResult{
		Fund:     current.Fund(),
		Baseline: baseline.On(),
		Current:  current.On(),
	}

	for key, o := range current.Positions() {
		prev, held := baseline.Get(key)
		if !held {
			r.New = append(r.New, entryOf(o))
			continue
		}
		if prev.ParValue.Equal(o.ParValue) {
			r.Unchanged++
			continue
		}
		r.Changes = append(r.Changes, ParChange{
			Date:       o.Date,
			Name:       o.Name,
			Identifier: o.Identifier,
			Previous:   prev.ParValue,
			Current:    o.ParValue,
			Delta:      o.ParValue.Sub(prev.ParValue),
			AssetType:  o.AssetType,
		})
	}

	for key, o := range baseline.Positions() {
		if !current.Contains(key) {
			// Removed assets keep the baseline date: the last date the
			// asset was actually observed.
			r.Removed = append(r.Removed, entryOf(o))
		}
	}

	sortEntries(r.New)
	sortEntries(r.Removed)
	sortChanges(r.Changes)
	return r, nil
}

// entryOf copies the reportable fields of an observation.
func entryOf(o PositionObservation) AssetEntry {
	return AssetEntry{
		Date:        o.Date,
		Name:        o.Name,
		Identifier:  o.Identifier,
		ParValue:    o.ParValue,
		MarketValue: o.MarketValue,
		Price:       o.Price(),
		AssetType:   o.AssetType,
	}
}

func sortEntries(entries []AssetEntry) {
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
}

func sortChanges(changes []ParChange) {
	sort.Slice(changes, func(i, j int) bool {
		if c := changes[i].Date.Compare(changes[j].Date); c != 0 {
			return c > 0 // most recent first
		}
		return changes[i].Name < changes[j].Name
	})
}
