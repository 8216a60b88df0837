package holdings

import "testing"

func TestPriceOf(t *testing.T) {
	// market 105 over par 100 quotes at 105.0000
	p := PriceOf(A(105), A(100))
	if !p.Valid() {
		t.Fatal("PriceOf(105, 100) is absent")
	}
	if got := p.String(); got != "105.0000" {
		t.Errorf("PriceOf(105, 100) = %s, want 105.0000", got)
	}

	// a zero par value yields no price at all, not a zero price
	p = PriceOf(A(105), A(0))
	if p.Valid() {
		t.Errorf("PriceOf(105, 0) = %s, want absent", p)
	}
	if got := p.String(); got != "-" {
		t.Errorf("absent price renders as %q, want \"-\"", got)
	}

	// rounding happens at the 4th decimal place
	p = PriceOf(A(100), A(3))
	if got := p.String(); got != "3333.3333" {
		t.Errorf("PriceOf(100, 3) = %s, want 3333.3333", got)
	}
}

func TestAmountExactComparison(t *testing.T) {
	// 0.1 + 0.2 is exactly 0.3 in decimal arithmetic
	if got := A(0.1).Add(A(0.2)); !got.Equal(A(0.3)) {
		t.Errorf("0.1 + 0.2 = %s, want 0.3", got)
	}

	// trailing zeros do not break equality
	a, err := ParseAmount("100.00")
	if err != nil {
		t.Fatalf("ParseAmount: %v", err)
	}
	if !a.Equal(A(100)) {
		t.Errorf("100.00 != 100")
	}
}

func TestParseAmount(t *testing.T) {
	if a, err := ParseAmount(""); err != nil || !a.IsZero() {
		t.Errorf("ParseAmount(\"\") = %s, %v; want zero", a, err)
	}
	if _, err := ParseAmount("1,000"); err == nil {
		t.Error("ParseAmount accepted a thousands separator; callers must strip them first")
	}
}

func TestSignedString(t *testing.T) {
	tests := []struct {
		amount Amount
		want   string
	}{
		{A(50), "+50.00"},
		{A(-30.5), "-30.50"},
		{A(0), "-"},
	}
	for _, tt := range tests {
		if got := tt.amount.SignedString(); got != tt.want {
			t.Errorf("SignedString(%s) = %q, want %q", tt.amount, got, tt.want)
		}
	}
}
