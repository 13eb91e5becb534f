package common

import "github.com/shopspring/decimal"

// NewDecimalFromString converts a string to a decimal.Decimal pointer.
// An empty input returns nil.
func NewDecimalFromString(data string) (*decimal.Decimal, error) {
	if data != "" {
		amount, err := decimal.NewFromString(data)
		if err != nil {
			return nil, err
		}
		return &amount, nil
	}
	return nil, nil
}

// DecimalOrZero dereferences an optional amount.
func DecimalOrZero(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return *d
}
