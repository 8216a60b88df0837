package date

import (
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Date
	}{
		{"2025-07-28", New(2025, time.July, 28)},
		{"2025-7-1", New(2025, time.July, 1)},
		{"7/28/2025", New(2025, time.July, 28)},
		{"1/2/2026", New(2026, time.January, 2)},
	}
	for _, tt := range tests {
		got, err := Parse(tt.in)
		if err != nil {
			t.Errorf("Parse(%q) error = %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Parse(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	if _, err := Parse("28 July 2025"); err == nil {
		t.Errorf("Parse(%q) expected an error", "28 July 2025")
	}
}

func TestRange(t *testing.T) {
	from := New(2026, time.January, 6)
	to := New(2026, time.January, 12)

	r := NewRange(to, from) // deliberately swapped
	if r.From != from || r.To != to {
		t.Fatalf("NewRange did not normalize boundaries: %v", r)
	}
	if got := r.Days(); got != 6 {
		t.Errorf("Days() = %d, want 6", got)
	}
	if !r.Contains(from) || !r.Contains(to) || !r.Contains(from.Add(3)) {
		t.Errorf("Contains should include boundaries and interior dates")
	}
	if r.Contains(from.Add(-1)) || r.Contains(to.Add(1)) {
		t.Errorf("Contains should exclude dates outside the range")
	}
	if got := LastDays(to, 7).From; got != to.Add(-7) {
		t.Errorf("LastDays From = %v, want %v", got, to.Add(-7))
	}
}

func TestHistory(t *testing.T) {
	var h History[float64]
	d1 := New(2025, time.June, 1)
	d2 := New(2025, time.June, 2)
	d3 := New(2025, time.June, 3)

	// Append out of order, the history must stay sorted.
	h.Append(d3, 150)
	h.Append(d1, 100)
	h.Append(d2, 100)

	if h.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", h.Len())
	}
	if day, v := h.Earliest(); day != d1 || v != 100 {
		t.Errorf("Earliest() = %v %v, want %v 100", day, v, d1)
	}
	if day, v := h.Latest(); day != d3 || v != 150 {
		t.Errorf("Latest() = %v %v, want %v 150", day, v, d3)
	}

	// Overwrite of an existing date.
	h.Append(d2, 120)
	if v, ok := h.Get(d2); !ok || v != 120 {
		t.Errorf("Get(%v) = %v %v, want 120 true", d2, v, ok)
	}

	if v, ok := h.ValueAsOf(d2.Add(0)); !ok || v != 120 {
		t.Errorf("ValueAsOf(exact) = %v %v, want 120 true", v, ok)
	}
	if v, ok := h.ValueAsOf(d3.Add(5)); !ok || v != 150 {
		t.Errorf("ValueAsOf(after) = %v %v, want 150 true", v, ok)
	}
	if _, ok := h.ValueAsOf(d1.Add(-1)); ok {
		t.Errorf("ValueAsOf(before first) should not be found")
	}

	var got []float64
	for _, v := range h.Values() {
		got = append(got, v)
	}
	want := []float64{100, 120, 150}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Values()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}
