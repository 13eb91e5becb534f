package ledger

import (
	"time"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
)

type Stats struct {
	TotalSales   decimal.Decimal
	Days         int
	AverageDaily decimal.Decimal

	// MaxDay is the first row with the highest settlement total, nil for an empty window.
	MaxDay *Row
}

// Week sums settlement totals of one ISO week (Monday based).
type Week struct {
	Year  int
	Week  int
	Start civil.Date
	End   civil.Date
	Total decimal.Decimal
}

func Summarize(p Projection) (Stats, []Week) {
	stats := Stats{
		TotalSales:   decimal.Zero,
		Days:         p.Len(),
		AverageDaily: decimal.Zero,
	}

	var weeks []Week
	weekIndex := make(map[[2]int]int)

	for i, row := range p.rows {
		total := row.SettlementTotal
		stats.TotalSales = stats.TotalSales.Add(total)
		if stats.MaxDay == nil || total.GreaterThan(stats.MaxDay.SettlementTotal) {
			stats.MaxDay = &p.rows[i]
		}

		date := row.Record.Date
		year, week := date.In(time.UTC).ISOWeek()
		key := [2]int{year, week}
		idx, ok := weekIndex[key]
		if !ok {
			weeks = append(weeks, Week{Year: year, Week: week, Start: date, End: date, Total: decimal.Zero})
			idx = len(weeks) - 1
			weekIndex[key] = idx
		}
		w := &weeks[idx]
		if date.Before(w.Start) {
			w.Start = date
		}
		if date.After(w.End) {
			w.End = date
		}
		w.Total = w.Total.Add(total)
	}

	if stats.Days > 0 {
		stats.AverageDaily = stats.TotalSales.Div(decimal.NewFromInt(int64(stats.Days))).Round(2)
	}

	return stats, weeks
}
