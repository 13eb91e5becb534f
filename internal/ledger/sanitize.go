package ledger

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Sanitize parses a user typed amount in es-AR notation ("1.234,50") into a decimal.
// It never fails: anything unparsable is zero.
//
// With a comma present, dots are thousands separators and the last comma is the decimal
// separator. Without a comma, a single dot that is not followed by exactly three digits is
// read as a decimal point ("1234.50", "0.5"); any other dot groups thousands ("1.234", "1.234.567").
func Sanitize(raw string) decimal.Decimal {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if (r >= '0' && r <= '9') || r == '.' || r == ',' || r == '-' {
			b.WriteRune(r)
		}
	}
	s := b.String()
	if s == "" {
		return decimal.Zero
	}

	if i := strings.LastIndexByte(s, ','); i >= 0 {
		intPart := strings.NewReplacer(".", "", ",", "").Replace(s[:i])
		fracPart := strings.NewReplacer(".", "", ",", "").Replace(s[i+1:])
		s = intPart + "." + fracPart
	} else if strings.Count(s, ".") > 1 || groupsThousands(s) {
		s = strings.ReplaceAll(s, ".", "")
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// groupsThousands reports whether the only dot of s is followed by exactly three digits.
func groupsThousands(s string) bool {
	i := strings.IndexByte(s, '.')
	if i < 0 {
		return false
	}
	return len(s)-i-1 == 3 && i > 0 && s[i-1] != '-'
}
