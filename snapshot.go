package holdings

import (
	"fmt"
	"iter"

	"github.com/etnz/holdings/date"
)

// Snapshot is the set of all position observations for one fund on one
// date. Within a snapshot the composite key is unique: an asset cannot
// appear twice on the same date for the same fund.
type Snapshot struct {
	fund    string
	on      date.Date
	key     KeyFunc
	records []PositionObservation
	index   map[string]int
}

// SnapshotOption customizes snapshot construction.
type SnapshotOption func(*Snapshot)

// WithKeyFunc overrides the composite key policy (default: DefaultKey).
func WithKeyFunc(key KeyFunc) SnapshotOption {
	return func(s *Snapshot) { s.key = key }
}

// NewSnapshot builds a snapshot from observations that must all share the
// given fund and date. It returns ErrDuplicateAsset (wrapped) if two
// observations resolve to the same composite key, and an error if any
// record belongs to another fund or date.
func NewSnapshot(fund string, on date.Date, records []PositionObservation, opts ...SnapshotOption) (*Snapshot, error) {
	s := &Snapshot{
		fund:    fund,
		on:      on,
		key:     DefaultKey,
		records: records,
		index:   make(map[string]int, len(records)),
	}
	for _, opt := range opts {
		opt(s)
	}

	for i, o := range records {
		if o.Fund != fund {
			return nil, fmt.Errorf("observation %q belongs to fund %q, not %q: %w", o.Name, o.Fund, fund, ErrFundMismatch)
		}
		if o.Date != on {
			return nil, fmt.Errorf("observation %q is dated %s, not %s: %w", o.Name, o.Date, on, ErrInvalidInput)
		}
		k := s.key(o)
		if _, dup := s.index[k]; dup {
			return nil, fmt.Errorf("asset %q appears twice on %s for fund %s: %w", k, on, fund, ErrDuplicateAsset)
		}
		s.index[k] = i
	}
	return s, nil
}

// Fund returns the fund symbol of the snapshot.
func (s *Snapshot) Fund() string { return s.fund }

// On returns the observation date of the snapshot.
func (s *Snapshot) On() date.Date { return s.on }

// Len returns the number of positions in the snapshot.
func (s *Snapshot) Len() int { return len(s.records) }

// Get returns the observation for a composite key.
func (s *Snapshot) Get(key string) (PositionObservation, bool) {
	i, ok := s.index[key]
	if !ok {
		return PositionObservation{}, false
	}
	return s.records[i], true
}

// Contains reports whether the snapshot holds an observation for the key.
func (s *Snapshot) Contains(key string) bool {
	_, ok := s.index[key]
	return ok
}

// Positions returns an iterator over composite key / observation pairs, in
// file order.
func (s *Snapshot) Positions() iter.Seq2[string, PositionObservation] {
	return func(yield func(string, PositionObservation) bool) {
		for _, o := range s.records {
			if !yield(s.key(o), o) {
				return
			}
		}
	}
}

// TotalParValue sums the par value of every position.
func (s *Snapshot) TotalParValue() Amount {
	var total Amount
	for _, o := range s.records {
		total = total.Add(o.ParValue)
	}
	return total
}

// TotalMarketValue sums the market value of every position.
func (s *Snapshot) TotalMarketValue() Amount {
	var total Amount
	for _, o := range s.records {
		total = total.Add(o.MarketValue)
	}
	return total
}
