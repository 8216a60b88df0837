package holdings

import (
	"fmt"

	"github.com/etnz/holdings/date"
)

// parPoint is one dated par-value observation of an asset within a range.
type parPoint struct {
	obs PositionObservation
}

// TrackParChanges walks every asset through a chronological sequence of
// snapshots and emits one ParChange per non-zero step between consecutive
// observations of that asset.
//
// This is the multi-date variant of Diff: an asset whose par value moves
// twice inside the range produces two change records, each against its
// immediately preceding observation, not against the start of the range.
// Assets observed on fewer than two dates contribute nothing. Snapshots may
// be passed in any order; they are processed chronologically. All snapshots
// must belong to the same fund.
func TrackParChanges(snapshots []*Snapshot) ([]ParChange, error) {
	if len(snapshots) == 0 {
		return nil, nil
	}
	fund := snapshots[0].Fund()

	// One chronological history per composite key. date.History keeps each
	// series sorted whatever the order snapshots come in.
	series := make(map[string]*date.History[parPoint])
	for _, s := range snapshots {
		if s.Fund() != fund {
			return nil, fmt.Errorf("cannot track %q alongside %q: %w", s.Fund(), fund, ErrFundMismatch)
		}
		for key, o := range s.Positions() {
			h, ok := series[key]
			if !ok {
				h = &date.History[parPoint]{}
				series[key] = h
			}
			h.Append(o.Date, parPoint{obs: o})
		}
	}

	var changes []ParChange
	for _, h := range series {
		if h.Len() < 2 {
			continue
		}
		var prev parPoint
		first := true
		for _, p := range h.Values() {
			if first {
				prev, first = p, false
				continue
			}
			if !p.obs.ParValue.Equal(prev.obs.ParValue) {
				changes = append(changes, ParChange{
					Date:       p.obs.Date,
					Name:       p.obs.Name,
					Identifier: p.obs.Identifier,
					Previous:   prev.obs.ParValue,
					Current:    p.obs.ParValue,
					Delta:      p.obs.ParValue.Sub(prev.obs.ParValue),
					AssetType:  p.obs.AssetType,
				})
			}
			prev = p
		}
	}

	sortChanges(changes)
	return changes, nil
}
