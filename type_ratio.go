package fundsplit

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Ratio is a dimensionless fraction: a rate, a percentage or a share (0.25 for 25%).
type Ratio struct {
	value decimal.Decimal
}

// R creates a Ratio from a numeric value.
func R[T float64 | int | int64 | decimal.Decimal](value T) Ratio {
	return Ratio{value: newDecimal(value)}
}

// One is the whole.
var One = R(1)

func (r Ratio) IsZero() bool             { return r.value.IsZero() }
func (r Ratio) IsNegative() bool         { return r.value.IsNegative() }
func (r Ratio) Equal(q Ratio) bool       { return r.value.Equal(q.value) }
func (r Ratio) LessThan(q Ratio) bool    { return r.value.LessThan(q.value) }
func (r Ratio) GreaterThan(q Ratio) bool { return r.value.GreaterThan(q.value) }
func (r Ratio) Add(q Ratio) Ratio        { return Ratio{value: r.value.Add(q.value)} }
func (r Ratio) Sub(q Ratio) Ratio        { return Ratio{value: r.value.Sub(q.value)} }
func (r Ratio) Mul(q Ratio) Ratio        { return Ratio{value: r.value.Mul(q.value)} }
func (r Ratio) Decimal() decimal.Decimal { return r.value }

// Complement returns 1-r.
func (r Ratio) Complement() Ratio { return One.Sub(r) }

// Within reports whether r and q differ by at most tol.
func (r Ratio) Within(q Ratio, tol Ratio) bool {
	return r.value.Sub(q.value).Abs().LessThanOrEqual(tol.value)
}

// String returns the ratio as a percentage, e.g. "57.37%".
func (r Ratio) String() string {
	return fmt.Sprintf("%s%%", r.value.Shift(2).StringFixed(2))
}

func (r Ratio) Float() float64 { return r.value.InexactFloat64() }

func (r Ratio) MarshalJSON() ([]byte, error) { return r.value.MarshalJSON() }

func (r *Ratio) UnmarshalJSON(data []byte) error { return r.value.UnmarshalJSON(data) }

func (r Ratio) MarshalBinary() ([]byte, error) { return r.value.MarshalBinary() }

func (r *Ratio) UnmarshalBinary(data []byte) error { return r.value.UnmarshalBinary(data) }
