package holdings

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/holdings/date"
)

// contains the SSGA (State Street Global Advisors) sponsor site access.
//
// SSGA publishes one holdings file per fund per day at a stable URL, and
// a small JSON endpoint with the fund's latest NAV.

// DownloadHoldings fetches the daily holdings file for 'f' and writes it
// under 'dir', named "<symbol>-<today>.<ext>" after the URL's extension.
// It returns the path of the written file.
//
// The HTTP layer caches responses for the day, so repeated calls do not
// hit the sponsor's site again.
func DownloadHoldings(f Fund, dir string) (string, error) {
	if f.HoldingsURL == "" {
		return "", fmt.Errorf("fund %q has no holdings url", f.Symbol)
	}
	content, err := wget(daily(), f.HoldingsURL)
	if err != nil {
		return "", fmt.Errorf("cannot download holdings for %q: %w", f.Symbol, err)
	}

	ext := filepath.Ext(f.HoldingsURL)
	if ext == "" {
		ext = ".dat"
	}
	name := fmt.Sprintf("%s-%s%s", f.Symbol, date.Today(), ext)
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, content, 0644); err != nil {
		return "", err
	}
	return path, nil
}

// LatestNAV queries the fund's NAV endpoint and returns the latest
// published net asset value per share.
func LatestNAV(f Fund) (nav Money, on date.Date, err error) {
	if f.NAVURL == "" {
		return Money{}, date.Date{}, fmt.Errorf("fund %q has no nav url", f.Symbol)
	}
	var v interface{}
	if err := jwget(daily(), f.NAVURL, &v); err != nil {
		return Money{}, date.Date{}, err
	}

	price, err := jsonpath.Get("$.fund.nav", v)
	if err != nil {
		return Money{}, date.Date{}, fmt.Errorf("unexpected nav payload for %q: %w", f.Symbol, err)
	}
	asof, err := jsonpath.Get("$.fund.asOfDate", v)
	if err != nil {
		return Money{}, date.Date{}, fmt.Errorf("unexpected nav payload for %q: %w", f.Symbol, err)
	}

	p, ok := price.(float64)
	if !ok {
		return Money{}, date.Date{}, fmt.Errorf("unexpected nav value for %q: %v", f.Symbol, price)
	}
	on, err = date.Parse(fmt.Sprintf("%v", asof))
	if err != nil {
		return Money{}, date.Date{}, fmt.Errorf("unexpected nav date for %q: %w", f.Symbol, err)
	}
	return M(p, "USD"), on, nil
}
