package fundsplit

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

func init() {
	// monetary fields are plain numbers on the wire.
	decimal.MarshalJSONWithoutQuotes = true
}

// newDecimal is a convenient factory for decimal.Decimal
func newDecimal[T float64 | int | int64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int64:
		return decimal.NewFromInt(v)
	default:
		panic("unsupported type")
	}
}

// Money represents a currency amount. It is kept exact, rounding only
// happens when it is displayed.
//
// Money is also used for dollar-days, an amount multiplied by a number of days.
type Money struct {
	value decimal.Decimal
}

// M creates a Money from a numeric value.
func M[T float64 | int | int64 | decimal.Decimal](value T) Money {
	return Money{value: newDecimal(value)}
}

// ParseMoney parses a decimal amount, e.g. "1234.56".
func ParseMoney(s string) (Money, error) {
	v, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, err
	}
	return Money{value: v}, nil
}

func (m Money) IsZero() bool                    { return m.value.IsZero() }
func (m Money) IsPositive() bool                { return m.value.IsPositive() }
func (m Money) IsNegative() bool                { return m.value.IsNegative() }
func (m Money) Equal(n Money) bool              { return m.value.Equal(n.value) }
func (m Money) LessThan(n Money) bool           { return m.value.LessThan(n.value) }
func (m Money) GreaterThan(n Money) bool        { return m.value.GreaterThan(n.value) }
func (m Money) GreaterThanOrEqual(n Money) bool { return m.value.GreaterThanOrEqual(n.value) }
func (m Money) Neg() Money                      { return Money{value: m.value.Neg()} }
func (m Money) Abs() Money                      { return Money{value: m.value.Abs()} }
func (m Money) Add(n Money) Money               { return Money{value: m.value.Add(n.value)} }
func (m Money) Sub(n Money) Money               { return Money{value: m.value.Sub(n.value)} }
func (m Money) Mul(r Ratio) Money               { return Money{value: m.value.Mul(r.value)} }
func (m Money) MulDays(days int) Money {
	return Money{value: m.value.Mul(decimal.NewFromInt(int64(days)))}
}
func (m Money) DivInt(n int) Money       { return Money{value: m.value.Div(decimal.NewFromInt(int64(n)))} }
func (m Money) Decimal() decimal.Decimal { return m.value }

// Div returns the ratio m/n, or zero when n is zero.
func (m Money) Div(n Money) Ratio {
	if n.value.IsZero() {
		return Ratio{}
	}
	return Ratio{value: m.value.Div(n.value)}
}

// Within reports whether m and n differ by at most tol.
func (m Money) Within(n Money, tol Money) bool {
	return m.value.Sub(n.value).Abs().LessThanOrEqual(tol.value)
}

// String returns the amount rounded to cents.
func (m Money) String() string { return m.value.StringFixed(2) }

// Format returns the amount formatted in the given currency, e.g. "$1,234.56".
func (m Money) Format(currency string) string {
	if currency == "" {
		return m.String()
	}
	cur := money.New(0, currency).Currency()
	dec := m.value.Shift(int32(cur.Fraction)).Round(0)
	return cur.Formatter().Format(dec.IntPart())
}

// SignedString returns the formatted amount with an explicit sign, "-" for zero.
func (m Money) SignedString(currency string) string {
	if m.IsZero() {
		return "-"
	}
	if m.IsPositive() {
		return "+" + m.Format(currency)
	}
	return m.Format(currency)
}

// Float returns an approximation for display purposes only.
func (m Money) Float() float64 { return m.value.InexactFloat64() }

// MaxMoney returns the largest of a and b.
func MaxMoney(a, b Money) Money {
	if a.GreaterThan(b) {
		return a
	}
	return b
}

// Sum adds all values.
func Sum(values ...Money) Money {
	var total Money
	for _, v := range values {
		total = total.Add(v)
	}
	return total
}

func (m Money) MarshalJSON() ([]byte, error) { return m.value.MarshalJSON() }

func (m *Money) UnmarshalJSON(data []byte) error { return m.value.UnmarshalJSON(data) }

func (m Money) MarshalBinary() ([]byte, error) { return m.value.MarshalBinary() }

func (m *Money) UnmarshalBinary(data []byte) error { return m.value.UnmarshalBinary(data) }
