package holdings

import "github.com/etnz/holdings/date"

// NoIdentifier is the sentinel the upstream feeds use for a position that
// carries no external identifier. Such positions are tracked by name.
const NoIdentifier = "-"

// PositionObservation is one row of a published holdings file: the state of
// one asset inside one fund on one date. Observations are immutable once
// ingested; a change over time is two observations at different dates.
type PositionObservation struct {
	Fund          string    `json:"fund"`
	Date          date.Date `json:"date"`
	Name          string    `json:"name"`
	Identifier    string    `json:"identifier"`
	Sedol         string    `json:"sedol,omitempty"`
	Weight        string    `json:"weight,omitempty"`
	Coupon        string    `json:"coupon,omitempty"`
	ParValue      Amount    `json:"parValue"`
	MarketValue   Amount    `json:"marketValue"`
	LocalCurrency string    `json:"localCurrency,omitempty"`
	Maturity      string    `json:"maturity,omitempty"`
	AssetType     string    `json:"assetType,omitempty"`
}

// Price derives the quoted price per 100 of face value, absent when the
// observation has a zero par value.
func (o PositionObservation) Price() Price { return PriceOf(o.MarketValue, o.ParValue) }

// KeyFunc extracts the composite key that identifies one asset across
// snapshots. It is injectable so that the matching policy can evolve with
// the quality of the source feeds.
type KeyFunc func(PositionObservation) string

// DefaultKey matches assets by identifier (CUSIP), falling back to the
// security name when the feed published no identifier. Identifiers are more
// stable than names (names drift in formatting between files) but are
// sometimes missing.
func DefaultKey(o PositionObservation) string {
	if o.Identifier == "" || o.Identifier == NoIdentifier {
		return o.Name
	}
	return o.Identifier
}
