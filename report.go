package holdings

import (
	"fmt"

	"github.com/etnz/holdings/date"
)

// ChangeReport is the weekly (or ad-hoc) activity report for one fund over a
// period: what entered the fund, what left it, and every par value move in
// between. It is a plain data structure; the renderer package turns it into
// Markdown, HTML or CSV.
type ChangeReport struct {
	Fund     string     `json:"fund"`
	FundName string     `json:"fundName,omitempty"`
	Period   date.Range `json:"period"`

	// ObservationDates is how many distinct dates fall inside the period.
	ObservationDates int `json:"observationDates"`

	// Totals describe the holdings on the period's end date.
	TotalMarketValue Money `json:"totalMarketValue"`
	TotalParValue    Money `json:"totalParValue"`
	SecuritiesCount  int   `json:"securitiesCount"`

	New     []AssetEntry `json:"new"`
	Removed []AssetEntry `json:"removed"`
	Changes []ParChange  `json:"changes"`
}

// BuildChangeReport assembles the change report from the chronological
// snapshots of a fund inside a period. New and removed assets come from
// diffing the first snapshot against the last; par changes are tracked
// across every intermediate date, so a position resized twice in the period
// shows up twice.
//
// At least two snapshots are required: with a single observation date there
// is nothing to compare against.
func BuildChangeReport(snapshots []*Snapshot) (*ChangeReport, error) {
	if len(snapshots) < 2 {
		return nil, fmt.Errorf("need at least two observation dates to build a change report, got %d: %w", len(snapshots), ErrInvalidInput)
	}

	first, last := snapshots[0], snapshots[0]
	for _, s := range snapshots[1:] {
		if s.On().Before(first.On()) {
			first = s
		}
		if s.On().After(last.On()) {
			last = s
		}
	}

	d, err := Diff(first, last)
	if err != nil {
		return nil, err
	}
	changes, err := TrackParChanges(snapshots)
	if err != nil {
		return nil, err
	}

	return &ChangeReport{
		Fund:             d.Fund,
		Period:           date.Range{From: first.On(), To: last.On()},
		ObservationDates: len(snapshots),
		TotalMarketValue: USD(last.TotalMarketValue()),
		TotalParValue:    USD(last.TotalParValue()),
		SecuritiesCount:  last.Len(),
		New:              d.New,
		Removed:          d.Removed,
		Changes:          changes,
	}, nil
}
