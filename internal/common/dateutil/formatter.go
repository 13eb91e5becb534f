package dateutil

import (
	"fmt"
	"strings"
	"sync"
	"time"
	"unicode"
	"unicode/utf8"

	"cloud.google.com/go/civil"

	"github.com/viglianco/go-sales-ledger/internal/common"
)

const DefaultDatePlaceholder = "Sin fecha"

// businessLocation falls back to a fixed UTC-3 when the zone database is missing.
var businessLocation = sync.OnceValue(func() *time.Location {
	loc, err := time.LoadLocation(common.TimezoneBuenosAires)
	if err != nil {
		return time.FixedZone("ART", -3*60*60)
	}
	return loc
})

// Today is the calendar date of now in the business timezone.
func Today(now time.Time) civil.Date {
	return civil.DateOf(now.In(businessLocation()))
}

var spanishMonths = [...]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

// indexed by time.Weekday, Sunday first
var spanishWeekdays = [...]string{
	"domingo", "lunes", "martes", "miércoles", "jueves", "viernes", "sábado",
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// SpanishMonthName returns "Enero" for 1, or an empty string when out of range.
func SpanishMonthName(month int) string {
	if month < 1 || month > 12 {
		return ""
	}
	return capitalize(spanishMonths[month-1])
}

// FormatSpanishMonth formats "Marzo de 2024".
func FormatSpanishMonth(d civil.Date) string {
	return capitalize(fmt.Sprintf("%s de %d", spanishMonths[d.Month-1], d.Year))
}

// FormatSpanishDay formats "Lunes, 1 de enero de 2024".
func FormatSpanishDay(d civil.Date) string {
	if !d.IsValid() {
		return DefaultDatePlaceholder
	}
	weekday := spanishWeekdays[d.In(time.UTC).Weekday()]
	return capitalize(fmt.Sprintf("%s, %d de %s de %d", weekday, d.Day, spanishMonths[d.Month-1], d.Year))
}

// FormatNullableDate formats a date pointer or returns the placeholder.
func FormatNullableDate(d *civil.Date, layout string) string {
	if d == nil {
		return DefaultDatePlaceholder
	}
	if layout == "" {
		layout = common.DateFormatYYYYMMDD
	}
	return d.In(time.UTC).Format(layout)
}

// FormatBatchPeriod labels an upload batch by the period it covers:
// "02/01/2024", "01/01/2024 al 07/01/2024" or "Lote #12" when no date is known.
func FormatBatchPeriod(id int64, single, from, to *civil.Date) string {
	switch {
	case single != nil:
		return FormatNullableDate(single, common.DateFormatDDMMYYYYWithSlash)
	case from != nil && to != nil:
		return strings.Join([]string{
			FormatNullableDate(from, common.DateFormatDDMMYYYYWithSlash),
			FormatNullableDate(to, common.DateFormatDDMMYYYYWithSlash),
		}, " al ")
	case from != nil:
		return FormatNullableDate(from, common.DateFormatDDMMYYYYWithSlash)
	case to != nil:
		return FormatNullableDate(to, common.DateFormatDDMMYYYYWithSlash)
	}
	return fmt.Sprintf("Lote #%d", id)
}

// MonthBounds returns the first and last day of a month.
func MonthBounds(year int, month time.Month) (civil.Date, civil.Date) {
	first := civil.Date{Year: year, Month: month, Day: 1}
	last := civil.DateOf(first.In(time.UTC).AddDate(0, 1, -1))
	return first, last
}

// YearBounds returns January 1st and December 31st of a year.
func YearBounds(year int) (civil.Date, civil.Date) {
	return civil.Date{Year: year, Month: time.January, Day: 1}, civil.Date{Year: year, Month: time.December, Day: 31}
}
