package ledger

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{raw: "1.234,50", want: "1234.5"},
		{raw: "1234.50", want: "1234.5"},
		{raw: "", want: "0"},
		{raw: "-", want: "0"},
		{raw: "abc", want: "0"},
		{raw: "1.234", want: "1234"},
		{raw: "1.234.567", want: "1234567"},
		{raw: "1.234.567,89", want: "1234567.89"},
		{raw: "0,5", want: "0.5"},
		{raw: ",5", want: "0.5"},
		{raw: "0.5", want: "0.5"},
		{raw: "12.3456", want: "12.3456"},
		{raw: "$ 1.500", want: "1500"},
		{raw: "  -250,75 ", want: "-250.75"},
		{raw: "-1.000", want: "-1000"},
		{raw: "1-2", want: "0"},
		{raw: "1,2,3", want: "12.3"},
		{raw: "ARS 99", want: "99"},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got := Sanitize(tt.raw)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)), "Sanitize(%q) = %s, want %s", tt.raw, got, tt.want)
		})
	}
}
