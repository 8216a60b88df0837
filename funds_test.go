package holdings

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultCatalog(t *testing.T) {
	c := DefaultCatalog()
	for _, symbol := range []string{"PRIV", "PRSD"} {
		f, ok := c.Get(symbol)
		if !ok {
			t.Errorf("default catalog has no %s fund", symbol)
			continue
		}
		if f.HoldingsURL == "" {
			t.Errorf("%s has no holdings url", symbol)
		}
	}
}

func TestLoadCatalog(t *testing.T) {
	// empty path falls back to the defaults
	c, err := LoadCatalog("")
	if err != nil {
		t.Fatalf("LoadCatalog(\"\") error = %v", err)
	}
	if len(c.Funds) == 0 {
		t.Fatal("LoadCatalog(\"\") returned an empty catalog")
	}

	path := filepath.Join(t.TempDir(), "funds.yaml")
	content := `funds:
  - symbol: TEST
    name: Test Fund
    holdings_url: https://example.com/holdings-test.xlsx
    nav_url: https://example.com/nav-test.json
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	c, err = LoadCatalog(path)
	if err != nil {
		t.Fatalf("LoadCatalog() error = %v", err)
	}
	f, ok := c.Get("TEST")
	if !ok {
		t.Fatal("loaded catalog has no TEST fund")
	}
	if f.Name != "Test Fund" || f.NAVURL != "https://example.com/nav-test.json" {
		t.Errorf("loaded fund = %+v", f)
	}
	if got := c.Symbols(); len(got) != 1 || got[0] != "TEST" {
		t.Errorf("Symbols() = %v, want [TEST]", got)
	}
}

func TestLoadCatalogRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "funds.yaml")
	if err := os.WriteFile(path, []byte("funds: []\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadCatalog(path); err == nil {
		t.Error("LoadCatalog() accepted a catalog with no funds")
	}

	if err := os.WriteFile(path, []byte("funds:\n  - name: No Symbol\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadCatalog(path); err == nil {
		t.Error("LoadCatalog() accepted a fund without a symbol")
	}
}
