package holdings

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Fund describes one tracked fund: its symbol, display name, and where its
// daily holdings file is published.
type Fund struct {
	Symbol string `yaml:"symbol"`
	Name   string `yaml:"name"`
	// HoldingsURL is the direct download location of the holdings file.
	HoldingsURL string `yaml:"holdings_url"`
	// NAVURL optionally points at the sponsor's fund-data JSON document.
	NAVURL string `yaml:"nav_url,omitempty"`
}

// Catalog is the set of funds the tool tracks, loaded from a YAML file or
// falling back to the built-in defaults.
type Catalog struct {
	Funds []Fund `yaml:"funds"`
}

// DefaultCatalog returns the funds tracked out of the box.
func DefaultCatalog() *Catalog {
	return &Catalog{Funds: []Fund{
		{
			Symbol:      "PRIV",
			Name:        "SPDR SSGA IG Public & Private Credit ETF",
			HoldingsURL: "https://www.ssga.com/us/en/intermediary/library-content/products/fund-data/etfs/us/holdings-daily-us-en-priv.xlsx",
		},
		{
			Symbol:      "PRSD",
			Name:        "SPDR SSGA Short Duration IG Public & Private Credit ETF",
			HoldingsURL: "https://www.ssga.com/us/en/intermediary/library-content/products/fund-data/etfs/us/holdings-daily-us-en-prsd.xlsx",
		},
	}}
}

// LoadCatalog reads a fund catalog from a YAML file. An empty path returns
// the default catalog.
func LoadCatalog(path string) (*Catalog, error) {
	if path == "" {
		return DefaultCatalog(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read fund catalog %q: %w", path, err)
	}
	c := &Catalog{}
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("cannot parse fund catalog %q: %w", path, err)
	}
	if len(c.Funds) == 0 {
		return nil, fmt.Errorf("fund catalog %q declares no funds", path)
	}
	for i, f := range c.Funds {
		if f.Symbol == "" {
			return nil, fmt.Errorf("fund catalog %q: fund #%d has no symbol", path, i+1)
		}
	}
	return c, nil
}

// Get returns the fund with the given symbol.
func (c *Catalog) Get(symbol string) (Fund, bool) {
	for _, f := range c.Funds {
		if f.Symbol == symbol {
			return f, true
		}
	}
	return Fund{}, false
}

// Symbols returns the fund symbols, in catalog order.
func (c *Catalog) Symbols() []string {
	symbols := make([]string, 0, len(c.Funds))
	for _, f := range c.Funds {
		symbols = append(symbols, f.Symbol)
	}
	return symbols
}
