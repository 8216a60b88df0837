package store

import (
	"fmt"
	"strings"

	"github.com/etnz/holdings"
	"github.com/etnz/holdings/date"
)

// Asset summarizes one tracked security across all its observations.
type Asset struct {
	Fund       string
	Name       string
	Identifier string
	Sedol      string
	FirstSeen  date.Date
	LastSeen   date.Date
	// Observations counts the dates the asset was observed on.
	Observations int
}

const assetColumns = `fund, name, identifier, MAX(sedol), MIN(date), MAX(date), COUNT(*)
	FROM observations
	%s
	GROUP BY fund, name, identifier
	ORDER BY fund, name`

func (s *Store) queryAssets(where string, args ...interface{}) ([]Asset, error) {
	rows, err := s.db.Query(`SELECT `+fmt.Sprintf(assetColumns, where), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var assets []Asset
	for rows.Next() {
		var a Asset
		var first, last string
		if err := rows.Scan(&a.Fund, &a.Name, &a.Identifier, &a.Sedol, &first, &last, &a.Observations); err != nil {
			return nil, err
		}
		if a.FirstSeen, err = date.Parse(first); err != nil {
			return nil, err
		}
		if a.LastSeen, err = date.Parse(last); err != nil {
			return nil, err
		}
		assets = append(assets, a)
	}
	return assets, rows.Err()
}

// Assets lists every asset ever observed in a fund. An empty fund lists the
// assets of all funds.
func (s *Store) Assets(fund string) ([]Asset, error) {
	if fund == "" {
		return s.queryAssets("")
	}
	return s.queryAssets(`WHERE fund = ?`, fund)
}

// SearchAssets finds assets matching a search term against name, identifier
// or SEDOL. Exact matches win: a substring search only runs when nothing
// matches exactly, so searching for a full CUSIP never drowns in partial
// hits.
func (s *Store) SearchAssets(term string) ([]Asset, error) {
	assets, err := s.queryAssets(`WHERE name = ? OR identifier = ? OR sedol = ?`, term, term, term)
	if err != nil || len(assets) > 0 {
		return assets, err
	}
	like := "%" + strings.ToUpper(term) + "%"
	return s.queryAssets(`WHERE UPPER(name) LIKE ? OR UPPER(identifier) LIKE ? OR UPPER(sedol) LIKE ?`, like, like, like)
}

// History returns every observation of one asset in a fund, in
// chronological order. The key is matched the way snapshots match assets:
// against the identifier, or against the name for positions published
// without one.
func (s *Store) History(fund, key string) ([]holdings.PositionObservation, error) {
	rows, err := s.db.Query(`SELECT `+observationColumns+` FROM observations
		WHERE fund = ? AND (identifier = ? OR (identifier = ? AND name = ?))
		ORDER BY date`,
		fund, key, holdings.NoIdentifier, key)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var observations []holdings.PositionObservation
	for rows.Next() {
		o, err := scanObservation(rows)
		if err != nil {
			return nil, err
		}
		observations = append(observations, o)
	}
	return observations, rows.Err()
}
