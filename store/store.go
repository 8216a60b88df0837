// Package store persists position observations in a local SQLite database.
//
// The database is a single append-only table of observations. A (fund, date)
// pair is the unit of ingestion: either all observations of a holdings file
// are in the database, or none are, and re-ingesting the same file is a
// no-op. This keeps daily ingestion idempotent without any bookkeeping
// table.
package store

import (
	"database/sql"
	"fmt"

	"github.com/etnz/holdings"
	"github.com/etnz/holdings/date"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS observations (
	date           TEXT NOT NULL,
	fund           TEXT NOT NULL,
	name           TEXT NOT NULL,
	identifier     TEXT NOT NULL DEFAULT '-',
	sedol          TEXT NOT NULL DEFAULT '',
	weight         TEXT NOT NULL DEFAULT '',
	coupon         TEXT NOT NULL DEFAULT '',
	par_value      TEXT NOT NULL DEFAULT '0',
	market_value   TEXT NOT NULL DEFAULT '0',
	local_currency TEXT NOT NULL DEFAULT '',
	maturity       TEXT NOT NULL DEFAULT '',
	asset_type     TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS observations_fund_date ON observations(fund, date);
`

// Store is a handle on the observations database.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the SQLite database at 'path'.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("cannot open database %q: %w", path, err)
	}
	// WAL keeps readers (reports) unblocked while an ingestion is running.
	if _, err := db.Exec("PRAGMA journal_mode=WAL; PRAGMA busy_timeout=5000;"); err != nil {
		db.Close()
		return nil, fmt.Errorf("cannot configure database %q: %w", path, err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("cannot initialize database %q: %w", path, err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error { return s.db.Close() }

// Append inserts observations, grouped by (fund, date). Groups whose
// (fund, date) is already in the database are skipped entirely, so feeding
// the same file twice inserts nothing. It returns the number of rows
// inserted and the dates that were skipped.
func (s *Store) Append(observations []holdings.PositionObservation) (inserted int, skipped []date.Date, err error) {
	type group struct {
		fund string
		on   date.Date
	}
	groups := make(map[group][]holdings.PositionObservation)
	var order []group
	for _, o := range observations {
		g := group{fund: o.Fund, on: o.Date}
		if _, seen := groups[g]; !seen {
			order = append(order, g)
		}
		groups[g] = append(groups[g], o)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return 0, nil, err
	}
	defer tx.Rollback()

	insert, err := tx.Prepare(`INSERT INTO observations
		(date, fund, name, identifier, sedol, weight, coupon, par_value, market_value, local_currency, maturity, asset_type)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, nil, err
	}
	defer insert.Close()

	for _, g := range order {
		var n int
		if err := tx.QueryRow(`SELECT COUNT(*) FROM observations WHERE fund = ? AND date = ?`, g.fund, g.on.String()).Scan(&n); err != nil {
			return 0, nil, err
		}
		if n > 0 {
			skipped = append(skipped, g.on)
			continue
		}
		for _, o := range groups[g] {
			identifier := o.Identifier
			if identifier == "" {
				identifier = holdings.NoIdentifier
			}
			_, err := insert.Exec(
				o.Date.String(), o.Fund, o.Name, identifier,
				o.Sedol, o.Weight, o.Coupon,
				o.ParValue.String(), o.MarketValue.String(),
				o.LocalCurrency, o.Maturity, o.AssetType,
			)
			if err != nil {
				return 0, nil, fmt.Errorf("cannot insert %q on %s: %w", o.Name, o.Date, err)
			}
			inserted++
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, nil, err
	}
	return inserted, skipped, nil
}

// AppendSnapshot inserts all observations of a snapshot, unless its
// (fund, date) is already in the database.
func (s *Store) AppendSnapshot(snap *holdings.Snapshot) (inserted int, err error) {
	var observations []holdings.PositionObservation
	for _, o := range snap.Positions() {
		observations = append(observations, o)
	}
	inserted, _, err = s.Append(observations)
	return inserted, err
}

// Funds returns the fund symbols present in the database.
func (s *Store) Funds() ([]string, error) {
	rows, err := s.db.Query(`SELECT DISTINCT fund FROM observations ORDER BY fund`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var funds []string
	for rows.Next() {
		var f string
		if err := rows.Scan(&f); err != nil {
			return nil, err
		}
		funds = append(funds, f)
	}
	return funds, rows.Err()
}

// Dates returns the observation dates of a fund, in chronological order.
func (s *Store) Dates(fund string) ([]date.Date, error) {
	// ISO dates sort chronologically as strings.
	rows, err := s.db.Query(`SELECT DISTINCT date FROM observations WHERE fund = ? ORDER BY date`, fund)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var dates []date.Date
	for rows.Next() {
		var str string
		if err := rows.Scan(&str); err != nil {
			return nil, err
		}
		on, err := date.Parse(str)
		if err != nil {
			return nil, fmt.Errorf("corrupted date %q in database: %w", str, err)
		}
		dates = append(dates, on)
	}
	return dates, rows.Err()
}

// DatesIn returns the fund's observation dates that fall inside the period.
func (s *Store) DatesIn(fund string, period date.Range) ([]date.Date, error) {
	all, err := s.Dates(fund)
	if err != nil {
		return nil, err
	}
	var dates []date.Date
	for _, on := range all {
		if period.Contains(on) {
			dates = append(dates, on)
		}
	}
	return dates, nil
}

const observationColumns = `date, fund, name, identifier, sedol, weight, coupon, par_value, market_value, local_currency, maturity, asset_type`

// scanObservation reads one observation row produced by a query selecting
// observationColumns.
func scanObservation(rows *sql.Rows) (holdings.PositionObservation, error) {
	var o holdings.PositionObservation
	var on, par, market string
	err := rows.Scan(&on, &o.Fund, &o.Name, &o.Identifier, &o.Sedol, &o.Weight, &o.Coupon,
		&par, &market, &o.LocalCurrency, &o.Maturity, &o.AssetType)
	if err != nil {
		return o, err
	}
	if o.Date, err = date.Parse(on); err != nil {
		return o, fmt.Errorf("corrupted date %q in database: %w", on, err)
	}
	if o.ParValue, err = holdings.ParseAmount(par); err != nil {
		return o, fmt.Errorf("corrupted par value %q in database: %w", par, err)
	}
	if o.MarketValue, err = holdings.ParseAmount(market); err != nil {
		return o, fmt.Errorf("corrupted market value %q in database: %w", market, err)
	}
	return o, nil
}

// Observations returns all observations of a fund on one date, in insertion
// order.
func (s *Store) Observations(fund string, on date.Date) ([]holdings.PositionObservation, error) {
	rows, err := s.db.Query(`SELECT `+observationColumns+` FROM observations WHERE fund = ? AND date = ?`, fund, on.String())
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

// Snapshot loads the fund's holdings on one date as a snapshot.
// It returns an error if the database holds no observation for that date.
func (s *Store) Snapshot(fund string, on date.Date, opts ...holdings.SnapshotOption) (*holdings.Snapshot, error) {
	observations, err := s.Observations(fund, on)
	if err != nil {
		return nil, err
	}
	if len(observations) == 0 {
		return nil, fmt.Errorf("no holdings for %s on %s", fund, on)
	}
	return holdings.NewSnapshot(fund, on, observations, opts...)
}

// Snapshots loads one snapshot per observation date of the fund inside the
// period, in chronological order.
func (s *Store) Snapshots(fund string, period date.Range, opts ...holdings.SnapshotOption) ([]*holdings.Snapshot, error) {
	dates, err := s.DatesIn(fund, period)
	if err != nil {
		return nil, err
	}
	snapshots := make([]*holdings.Snapshot, 0, len(dates))
	for _, on := range dates {
		snap, err := s.Snapshot(fund, on, opts...)
		if err != nil {
			return nil, err
		}
		snapshots = append(snapshots, snap)
	}
	return snapshots, nil
}
