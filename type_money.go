package stocktrack

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money represents a monetary value in the reporting currency (USD).
// The tracker is single-currency, so Money carries only the exact value.
type Money struct {
	value decimal.Decimal
}

func M[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) Money {
	return Money{value: newDecimal(value)}
}

// ParseMoney parses a decimal string (as persisted in the ledger file).
func ParseMoney(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, err
	}
	return Money{value: d}, nil
}

// currency returns the reporting currency. Going through the money.New
// constructor guarantees a non-nil currency.
func (m Money) currency() money.Currency {
	return *money.New(0, money.USD).Currency()
}

// String formats the value with the currency symbol and thousand separators.
func (m Money) String() string {
	cur := m.currency()
	dec := m.value.Round(int32(cur.Fraction)).Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}

// SignedString is like String with an explicit sign, zero rendered as "-".
func (m Money) SignedString() string {
	if m.value.IsZero() {
		return "-"
	}
	if m.value.IsPositive() {
		return "+" + m.String()
	}
	return m.String()
}

// Decimal returns the exact value, the form persisted in the ledger file.
func (m Money) Decimal() decimal.Decimal { return m.value }

// Round2 rounds to cents, the precision quotes are reported in.
func (m Money) Round2() Money { return Money{value: m.value.Round(2)} }

func (m Money) Equal(n Money) bool    { return m.value.Equal(n.value) }
func (m Money) IsZero() bool          { return m.value.IsZero() }
func (m Money) IsPositive() bool      { return m.value.IsPositive() }
func (m Money) IsNegative() bool      { return m.value.IsNegative() }
func (m Money) Add(n Money) Money     { return Money{value: m.value.Add(n.value)} }
func (m Money) Sub(n Money) Money     { return Money{value: m.value.Sub(n.value)} }
func (m Money) Mul(q Quantity) Money  { return Money{value: m.value.Mul(q.value)} }
func (m Money) LessThan(n Money) bool { return m.value.LessThan(n.value) }

// PercentOf returns m as a percentage of total, and 0 when total is zero
// so that callers never divide by zero.
func (m Money) PercentOf(total Money) Percent {
	if total.IsZero() {
		return 0
	}
	return Percent(m.value.Div(total.value).InexactFloat64() * 100)
}
