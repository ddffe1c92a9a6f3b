package cashflow

import (
	"encoding/json"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// displayCurrency is the single currency used for rendering amounts. Amounts
// themselves are plain exact decimals; the currency only drives formatting.
const displayCurrency = "CZK"

// Money represents an exact decimal monetary value. Positive values are
// income, negative values are expenses.
type Money struct {
	value decimal.Decimal
}

// M builds a Money from any usual numeric type.
func M[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) Money {
	return Money{value: newDecimal(value)}
}

func newDecimal[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) decimal.Decimal {
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
		return decimal.NewFromInt(int64(v))
	case int64:
		return decimal.NewFromInt(v)
	default:
		return decimal.Zero
	}
}

// ParseMoney parses an amount from user input. Spaces are tolerated as
// thousand separators, so "22 158" and "- 478" are valid.
func ParseMoney(s string) (Money, error) {
	cleaned := strings.ReplaceAll(s, " ", "")
	value, err := decimal.NewFromString(cleaned)
	if err != nil {
		return Money{}, err
	}
	return Money{value: value}, nil
}

// String formats the amount in the display currency ("22 158,00 Kč").
func (m Money) String() string {
	cur := *money.New(0, displayCurrency).Currency()
	dec := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}

// SignedString is like String but prefixes positive amounts with a plus sign.
func (m Money) SignedString() string {
	if m.value.IsPositive() {
		return "+" + m.String()
	}
	return m.String()
}

// Decimal returns the underlying exact decimal value.
func (m Money) Decimal() decimal.Decimal { return m.value }

func (m Money) Equal(n Money) bool    { return m.value.Equal(n.value) }
func (m Money) IsZero() bool          { return m.value.IsZero() }
func (m Money) IsPositive() bool      { return m.value.IsPositive() }
func (m Money) IsNegative() bool      { return m.value.IsNegative() }
func (m Money) LessThan(n Money) bool { return m.value.LessThan(n.value) }
func (m Money) Neg() Money            { return Money{value: m.value.Neg()} }

// binary operators.
func (m Money) Add(n Money) Money { return Money{value: m.value.Add(n.value)} }
func (m Money) Sub(n Money) Money { return Money{value: m.value.Sub(n.value)} }

// MarshalJSON encodes the amount as a bare JSON number.
func (m Money) MarshalJSON() ([]byte, error) {
	decimal.MarshalJSONWithoutQuotes = true
	return m.value.MarshalJSON()
}

// UnmarshalJSON accepts both bare numbers and quoted decimals.
func (m *Money) UnmarshalJSON(data []byte) error {
	return m.value.UnmarshalJSON(data)
}

var _ json.Marshaler = (*Money)(nil)
var _ json.Unmarshaler = (*Money)(nil)
