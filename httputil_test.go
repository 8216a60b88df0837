package holdings

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestWget(t *testing.T) {
	var gotAgent string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAgent = r.UserAgent()
		w.Write([]byte("payload"))
	}))
	defer srv.Close()

	body, err := wget(srv.Client(), srv.URL)
	if err != nil {
		t.Fatalf("wget() error = %v", err)
	}
	if string(body) != "payload" {
		t.Errorf("wget() = %q, want payload", body)
	}
	if gotAgent != browserUserAgent {
		t.Errorf("User-Agent = %q, want %q", gotAgent, browserUserAgent)
	}
}

func TestWgetStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	if _, err := wget(srv.Client(), srv.URL); err == nil {
		t.Error("wget() on a 404 did not fail")
	}
}

func TestJwget(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"fund":{"nav":25.17,"asOfDate":"2025-07-28"}}`))
	}))
	defer srv.Close()

	var v struct {
		Fund struct {
			NAV  float64 `json:"nav"`
			AsOf string  `json:"asOfDate"`
		} `json:"fund"`
	}
	if err := jwget(srv.Client(), srv.URL, &v); err != nil {
		t.Fatalf("jwget() error = %v", err)
	}
	if v.Fund.NAV != 25.17 || v.Fund.AsOf != "2025-07-28" {
		t.Errorf("jwget() decoded %+v", v)
	}
}
