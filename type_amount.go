package holdings

import "github.com/shopspring/decimal"

// newDecimal is a convenient factory for decimal.Decimal
func newDecimal[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt32(v)
	case int64:
		return decimal.NewFromInt(v)
	case uint:
		return decimal.NewFromUint64(uint64(v))
	case uint32:
		return decimal.NewFromUint64(uint64(v))
	case uint64:
		return decimal.NewFromUint64(v)
	default:
		panic("unsupported type")
	}
}

// Amount is an exact decimal quantity: a par value or a market value.
// Using a decimal rather than a float keeps comparisons exact, so two
// observations of the same position never differ by representation noise.
type Amount struct {
	value decimal.Decimal
}

func A[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) Amount {
	return Amount{value: newDecimal(value)}
}

// ParseAmount parses the decimal representation of an amount, as found in
// holdings CSV files. The empty string parses to the zero amount.
func ParseAmount(str string) (Amount, error) {
	if str == "" {
		return Amount{}, nil
	}
	d, err := decimal.NewFromString(str)
	if err != nil {
		return Amount{}, err
	}
	return Amount{value: d}, nil
}

func (a Amount) Equal(b Amount) bool       { return a.value.Equal(b.value) }
func (a Amount) LessThan(b Amount) bool    { return a.value.LessThan(b.value) }
func (a Amount) GreaterThan(b Amount) bool { return a.value.GreaterThan(b.value) }
func (a Amount) Add(b Amount) Amount       { return Amount{value: a.value.Add(b.value)} }
func (a Amount) Sub(b Amount) Amount       { return Amount{value: a.value.Sub(b.value)} }
func (a Amount) Neg() Amount               { return Amount{value: a.value.Neg()} }
func (a Amount) IsZero() bool              { return a.value.IsZero() }
func (a Amount) IsPositive() bool          { return a.value.IsPositive() }
func (a Amount) IsNegative() bool          { return a.value.IsNegative() }
func (a Amount) String() string            { return a.value.String() }

// StringFixed formats the amount rounded to the given number of decimal places.
func (a Amount) StringFixed(places int32) string { return a.value.StringFixed(places) }

// SignedString returns the amount with an explicit sign, "-" for zero.
// Used in change tables where the direction of a move is the point.
func (a Amount) SignedString() string {
	if a.value.IsZero() {
		return "-"
	}
	if a.value.IsPositive() {
		return "+" + a.value.StringFixed(2)
	}
	return a.value.StringFixed(2)
}

// Decimal exposes the underlying decimal value.
func (a Amount) Decimal() decimal.Decimal { return a.value }

// MarshalJSON implements the json.Marshaler interface.
func (a Amount) MarshalJSON() ([]byte, error) { return a.value.MarshalJSON() }

func (a *Amount) UnmarshalJSON(decimalBytes []byte) error {
	return a.value.UnmarshalJSON(decimalBytes)
}

// hundred is the scaling factor between a price and a unit of face value.
var hundred = decimal.NewFromInt(100)

// Price is the quoted value of a holding per 100 of face value:
// market_value / par_value * 100. It is absent when the observation has a
// zero (or missing) par value, since the ratio is undefined there.
type Price struct {
	value decimal.Decimal
	valid bool
}

// PriceOf derives the price from a market value and a par value.
// A zero par value yields an absent price, never a division panic.
func PriceOf(market, par Amount) Price {
	if par.IsZero() {
		return Price{}
	}
	return Price{value: market.value.Div(par.value).Mul(hundred).Round(4), valid: true}
}

// Valid reports whether the price is present.
func (p Price) Valid() bool { return p.valid }

// Equal reports whether two prices are both absent, or both present and equal.
func (p Price) Equal(q Price) bool {
	if p.valid != q.valid {
		return false
	}
	return !p.valid || p.value.Equal(q.value)
}

// Float returns the price as a float64 and whether it is present.
func (p Price) Float() (float64, bool) {
	if !p.valid {
		return 0, false
	}
	return p.value.InexactFloat64(), true
}

// String formats the price with 4 decimal places, or "-" when absent.
func (p Price) String() string {
	if !p.valid {
		return "-"
	}
	return p.value.StringFixed(4)
}
