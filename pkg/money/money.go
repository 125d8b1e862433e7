// Package money implements an exact rupee amount stored as integer paise.
// Arithmetic on int64 paise avoids the rounding drift that float64 prices
// accumulate across order totals and tax lines.
package money

import (
	"database/sql/driver"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Money is an amount in paise (1/100 rupee). It marshals to JSON as a
// decimal number ("4999.00" style value without quotes) and persists to
// the database as an integer column.
type Money int64

// FromRupees converts a float rupee amount to Money, rounding half away
// from zero to the nearest paisa.
func FromRupees(r float64) Money {
	return Money(math.Round(r * 100))
}

// FromPaise wraps a raw paise count.
func FromPaise(p int64) Money { return Money(p) }

// Parse reads a decimal string such as "4999", "4999.5" or "4999.50".
func Parse(s string) (Money, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("money: empty amount")
	}

	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}

	whole, frac := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		whole, frac = s[:i], s[i+1:]
	}
	if whole == "" {
		whole = "0"
	}
	if len(frac) > 2 {
		return 0, fmt.Errorf("money: %q has more than two decimal places", s)
	}
	for len(frac) < 2 {
		frac += "0"
	}

	w, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("money: invalid amount %q", s)
	}
	f, err := strconv.ParseInt(frac, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("money: invalid amount %q", s)
	}

	p := w*100 + f
	if neg {
		p = -p
	}
	return Money(p), nil
}

// Paise returns the raw paise count.
func (m Money) Paise() int64 { return int64(m) }

// Rupees returns the amount as float64 rupees. For display only.
func (m Money) Rupees() float64 { return float64(m) / 100 }

// Mul multiplies the amount by an integer quantity.
func (m Money) Mul(qty int) Money { return m * Money(qty) }

// Add returns m + other.
func (m Money) Add(other Money) Money { return m + other }

// Sub returns m - other.
func (m Money) Sub(other Money) Money { return m - other }

// Percent returns pct% of the amount, rounded half away from zero.
// Used for discount and tax lines.
func (m Money) Percent(pct float64) Money {
	return Money(math.Round(float64(m) * pct / 100))
}

// String formats as a plain decimal, e.g. "4999.00" or "-12.50".
func (m Money) String() string {
	p := int64(m)
	sign := ""
	if p < 0 {
		sign = "-"
		p = -p
	}
	return fmt.Sprintf("%s%d.%02d", sign, p/100, p%100)
}

// MarshalJSON emits the amount as a JSON number with two decimals.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalJSON accepts both numbers (4999.5) and strings ("4999.50").
func (m *Money) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "null" {
		*m = 0
		return nil
	}
	v, err := Parse(s)
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// Value implements driver.Valuer so GORM stores the integer paise.
func (m Money) Value() (driver.Value, error) {
	return int64(m), nil
}

// Scan implements sql.Scanner.
func (m *Money) Scan(src interface{}) error {
	switch v := src.(type) {
	case int64:
		*m = Money(v)
	case float64:
		*m = Money(int64(math.Round(v)))
	case []byte:
		p, err := strconv.ParseInt(string(v), 10, 64)
		if err != nil {
			return fmt.Errorf("money: cannot scan %q", v)
		}
		*m = Money(p)
	case nil:
		*m = 0
	default:
		return fmt.Errorf("money: cannot scan %T", src)
	}
	return nil
}
