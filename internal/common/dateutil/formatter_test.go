package dateutil

import (
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/stretchr/testify/assert"
)

func datePtr(y int, m time.Month, d int) *civil.Date {
	return &civil.Date{Year: y, Month: m, Day: d}
}

func TestFormatSpanishDay(t *testing.T) {
	tests := []struct {
		name string
		in   civil.Date
		want string
	}{
		{name: "monday", in: civil.Date{Year: 2024, Month: time.January, Day: 1}, want: "Lunes, 1 de enero de 2024"},
		{name: "wednesday with accent", in: civil.Date{Year: 2024, Month: time.March, Day: 6}, want: "Miércoles, 6 de marzo de 2024"},
		{name: "saturday", in: civil.Date{Year: 2024, Month: time.December, Day: 28}, want: "Sábado, 28 de diciembre de 2024"},
		{name: "sunday", in: civil.Date{Year: 2024, Month: time.September, Day: 1}, want: "Domingo, 1 de septiembre de 2024"},
		{name: "invalid", in: civil.Date{}, want: DefaultDatePlaceholder},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatSpanishDay(tt.in))
		})
	}
}

func TestSpanishMonth(t *testing.T) {
	assert.Equal(t, "Enero", SpanishMonthName(1))
	assert.Equal(t, "Diciembre", SpanishMonthName(12))
	assert.Equal(t, "", SpanishMonthName(0))
	assert.Equal(t, "", SpanishMonthName(13))
	assert.Equal(t, "Marzo de 2024", FormatSpanishMonth(civil.Date{Year: 2024, Month: time.March, Day: 9}))
}

func TestFormatBatchPeriod(t *testing.T) {
	tests := []struct {
		name             string
		single, from, to *civil.Date
		want             string
	}{
		{name: "single day", single: datePtr(2024, time.January, 2), from: datePtr(2023, time.January, 1), want: "02/01/2024"},
		{name: "range", from: datePtr(2024, time.January, 1), to: datePtr(2024, time.January, 7), want: "01/01/2024 al 07/01/2024"},
		{name: "only from", from: datePtr(2024, time.February, 10), want: "10/02/2024"},
		{name: "only to", to: datePtr(2024, time.February, 11), want: "11/02/2024"},
		{name: "unknown period", want: "Lote #12"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatBatchPeriod(12, tt.single, tt.from, tt.to))
		})
	}
}

func TestBounds(t *testing.T) {
	first, last := MonthBounds(2024, time.February)
	assert.Equal(t, civil.Date{Year: 2024, Month: time.February, Day: 1}, first)
	assert.Equal(t, civil.Date{Year: 2024, Month: time.February, Day: 29}, last)

	first, last = MonthBounds(2023, time.December)
	assert.Equal(t, civil.Date{Year: 2023, Month: time.December, Day: 31}, last)
	assert.Equal(t, 1, first.Day)

	first, last = YearBounds(2025)
	assert.Equal(t, "2025-01-01", first.String())
	assert.Equal(t, "2025-12-31", last.String())
}

func TestToday(t *testing.T) {
	// 02:00 UTC on new year is still the last day of the previous year in Buenos Aires
	got := Today(time.Date(2024, time.January, 1, 2, 0, 0, 0, time.UTC))
	assert.Equal(t, civil.Date{Year: 2023, Month: time.December, Day: 31}, got)

	got = Today(time.Date(2024, time.January, 1, 15, 0, 0, 0, time.UTC))
	assert.Equal(t, civil.Date{Year: 2024, Month: time.January, Day: 1}, got)
}
