package models

import (
	"bytes"
	"fmt"

	"github.com/shopspring/decimal"
)

// Decimal is a custom type for decimal.Decimal
// the difference from `shopspring` is the json representation is without quotes
// for example the result of this type is 10 instead of "10"
//
// WARNING: if client side is using javascript and unmarshalling this type, the precision will be lost
// since javascript will unmarshal JSON numbers to IEEE 754 double-precision floating point numbers
type Decimal struct {
	decimal.Decimal
}

func NewDecimalFromExternal(d decimal.Decimal) Decimal {
	return Decimal{d}
}

// NewDecimalPtr returns nil for a nil amount.
func NewDecimalPtr(d *decimal.Decimal) *Decimal {
	if d == nil {
		return nil
	}
	return &Decimal{*d}
}

func (d Decimal) MarshalJSON() ([]byte, error) {
	return []byte(d.StringFixed(2)), nil
}

// UnmarshalJSON accepts both a JSON number and a quoted number.
func (d *Decimal) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	data = bytes.Trim(data, `"`)

	v, err := decimal.NewFromString(string(data))
	if err != nil {
		return fmt.Errorf("invalid decimal %q: %w", data, err)
	}
	d.Decimal = v
	return nil
}

// Ptr returns the underlying amount of an optional Decimal.
func (d *Decimal) Ptr() *decimal.Decimal {
	if d == nil {
		return nil
	}
	v := d.Decimal
	return &v
}
