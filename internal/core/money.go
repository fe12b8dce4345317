package core

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Money is an amount in Colombian pesos. COP has no usable decimals, so
// amounts are plain integers.
type Money int64

// UnmarshalJSON accepts numbers, numeric strings and garbage alike.
// Upstream documents carry amounts as floats, strings and occasionally
// null; invalid values coerce to 0 instead of failing the whole order.
func (m *Money) UnmarshalJSON(data []byte) error {
	var v interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		*m = 0
		return nil
	}
	*m = ParseMoneyLenient(v)
	return nil
}

// ParseMoneyLenient coerces an arbitrary value to whole pesos, flooring
// fractions and mapping anything unparseable to 0.
func ParseMoneyLenient(v interface{}) Money {
	switch n := v.(type) {
	case nil:
		return 0
	case Money:
		return n
	case int:
		return Money(n)
	case int64:
		return Money(n)
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return 0
		}
		return Money(math.Floor(n))
	case string:
		s := strings.TrimSpace(n)
		if s == "" {
			return 0
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return ParseMoneyLenient(f)
		}
		return 0
	case json.Number:
		if f, err := n.Float64(); err == nil {
			return ParseMoneyLenient(f)
		}
		return 0
	default:
		return 0
	}
}

// FormatCOP renders an amount as "$12.000" with es-CO thousands grouping.
func FormatCOP(m Money) string {
	neg := m < 0
	if neg {
		m = -m
	}
	digits := strconv.FormatInt(int64(m), 10)

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	b.WriteByte('$')
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
		if len(digits) > lead {
			b.WriteByte('.')
		}
	}
	for i := lead; i < len(digits); i += 3 {
		b.WriteString(digits[i : i+3])
		if i+3 < len(digits) {
			b.WriteByte('.')
		}
	}
	return b.String()
}
