package money

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
)

// Scale is the number of minor units in one SHELL (1 SHELL = 1 USD = 100 cents).
const Scale = 100

// Max is the largest amount accepted at the API boundary.
const Max Amount = 1_000_000 * Scale

var (
	// ErrTooPrecise is returned for amounts with more than two fractional digits.
	ErrTooPrecise = errors.New("amount must have at most 2 decimal places")
	// ErrOutOfRange is returned for amounts that do not fit into minor units.
	ErrOutOfRange = errors.New("amount is out of range")
)

// Amount is a signed count of minor units.
type Amount int64

// FromDecimal converts a decimal value into minor units without rounding.
func FromDecimal(d decimal.Decimal) (Amount, error) {
	shifted := d.Shift(2)
	if !shifted.IsInteger() {
		return 0, ErrTooPrecise
	}
	if shifted.Abs().GreaterThan(decimal.NewFromInt(int64(Max) * 1000)) {
		return 0, ErrOutOfRange
	}
	return Amount(shifted.IntPart()), nil
}

// Parse parses a decimal string such as "12.50".
func Parse(s string) (Amount, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return FromDecimal(d)
}

// MustParse is Parse that panics, for constants and tests.
func MustParse(s string) Amount {
	a, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return a
}

// FromUnits returns whole SHELL units as an Amount.
func FromUnits(units int64) Amount {
	return Amount(units * Scale)
}

// Decimal returns the amount in major units.
func (a Amount) Decimal() decimal.Decimal {
	return decimal.New(int64(a), -2)
}

// Cents returns the raw minor-unit count.
func (a Amount) Cents() int64 {
	return int64(a)
}

func (a Amount) String() string {
	return a.Decimal().StringFixed(2)
}

// Percent returns a*bps/10000 rounded half up to the minor unit.
// Only meaningful for non-negative amounts.
func (a Amount) Percent(bps int64) Amount {
	return Amount((int64(a)*bps + 5000) / 10000)
}

// MarshalJSON renders the amount as a JSON number with two decimals.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalJSON accepts both JSON numbers and numeric strings.
func (a *Amount) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return nil
	}
	var d decimal.Decimal
	if err := d.UnmarshalJSON(b); err != nil {
		return fmt.Errorf("invalid amount: %w", err)
	}
	v, err := FromDecimal(d)
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// Value stores the amount as BIGINT minor units.
func (a Amount) Value() (driver.Value, error) {
	return int64(a), nil
}

// Scan reads a BIGINT minor-unit column.
func (a *Amount) Scan(src any) error {
	switch v := src.(type) {
	case int64:
		*a = Amount(v)
	case int32:
		*a = Amount(v)
	case []byte:
		n, err := strconv.ParseInt(string(v), 10, 64)
		if err != nil {
			return err
		}
		*a = Amount(n)
	case string:
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return err
		}
		*a = Amount(n)
	case nil:
		*a = 0
	default:
		return fmt.Errorf("cannot scan %T into money.Amount", src)
	}
	return nil
}
