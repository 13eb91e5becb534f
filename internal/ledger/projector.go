package ledger

import (
	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"

	"github.com/viglianco/go-sales-ledger/internal/models"
)

// Overrides holds raw, not yet sanitized user input per date and field.
type Overrides map[civil.Date]map[models.ManualField]string

// Set stores a raw value, leaving the other fields of the date untouched.
func (o Overrides) Set(date civil.Date, field models.ManualField, raw string) {
	fields, ok := o[date]
	if !ok {
		fields = make(map[models.ManualField]string)
		o[date] = fields
	}
	fields[field] = raw
}

func (o Overrides) Clone() Overrides {
	out := make(Overrides, len(o))
	for date, fields := range o {
		cp := make(map[models.ManualField]string, len(fields))
		for f, v := range fields {
			cp[f] = v
		}
		out[date] = cp
	}
	return out
}

// Values are the resolved manual amounts of a row.
type Values struct {
	Anulado        decimal.Decimal
	Payments       decimal.Decimal
	Debits         decimal.Decimal
	Expenses       decimal.Decimal
	Vouchers       decimal.Decimal
	ClosingBalance decimal.Decimal
	OpeningBalance decimal.Decimal
}

func (v Values) Get(f models.ManualField) decimal.Decimal {
	switch f {
	case models.ManualFieldAnulado:
		return v.Anulado
	case models.ManualFieldPayments:
		return v.Payments
	case models.ManualFieldDebits:
		return v.Debits
	case models.ManualFieldExpenses:
		return v.Expenses
	case models.ManualFieldVouchers:
		return v.Vouchers
	case models.ManualFieldClosingBalance:
		return v.ClosingBalance
	case models.ManualFieldOpeningBalance:
		return v.OpeningBalance
	}
	return decimal.Zero
}

// Row is a projected ledger row.
type Row struct {
	Record models.DailyRecord
	Anchor bool

	// Values holds the resolved manual input; Values.OpeningBalance is the typed or stored opening,
	// which only drives OpeningBalance on the anchor.
	Values Values

	OpeningBalance  decimal.Decimal
	ClosingBalance  decimal.Decimal
	SettlementTotal decimal.Decimal
}

// Projection is the derived view of a window, ascending by date.
type Projection struct {
	rows  []Row
	index map[civil.Date]int
}

func (p Projection) Rows() []Row {
	return p.rows
}

func (p Projection) Len() int {
	return len(p.rows)
}

// Row returns the first projected row of a date.
func (p Projection) Row(date civil.Date) (Row, bool) {
	i, ok := p.index[date]
	if !ok {
		return Row{}, false
	}
	return p.rows[i], true
}

// Find returns the projected row of a batch and date.
func (p Projection) Find(batchID int64, date civil.Date) (Row, bool) {
	for _, r := range p.rows {
		if r.Record.BatchID == batchID && r.Record.Date == date {
			return r, true
		}
	}
	return Row{}, false
}

func (p Projection) Anchor() (Row, bool) {
	if len(p.rows) == 0 {
		return Row{}, false
	}
	return p.rows[0], true
}

func compareDates(a, b civil.Date) int {
	switch {
	case a.Before(b):
		return -1
	case a.After(b):
		return 1
	}
	return 0
}

// Project derives opening balances, closing balances and settlement totals for a window.
//
// Records are sorted by date ascending, ties keep their input order. The first record is the
// anchor: its opening balance is its own manual opening (or zero). Every later opening balance
// is the resolved closing balance of the previous row. Per field the value is the sanitized
// override, else the stored value, else zero.
func Project(records []models.DailyRecord, overrides Overrides) Projection {
	sorted := slices.Clone(records)
	slices.SortStableFunc(sorted, func(a, b models.DailyRecord) int {
		return compareDates(a.Date, b.Date)
	})

	p := Projection{
		rows:  make([]Row, 0, len(sorted)),
		index: make(map[civil.Date]int, len(sorted)),
	}

	previousClosing := decimal.Zero
	for i, rec := range sorted {
		values := resolve(rec, overrides[rec.Date])

		opening := previousClosing
		if i == 0 {
			opening = values.OpeningBalance
		}

		p.rows = append(p.rows, Row{
			Record:          rec,
			Anchor:          i == 0,
			Values:          values,
			OpeningBalance:  opening,
			ClosingBalance:  values.ClosingBalance,
			SettlementTotal: SettlementTotal(rec.Sales, opening, values),
		})
		if _, seen := p.index[rec.Date]; !seen {
			p.index[rec.Date] = i
		}

		previousClosing = values.ClosingBalance
	}

	return p
}

// SettlementTotal = sales + opening + payments - closing - anulado - debits - expenses - vouchers.
func SettlementTotal(sales, opening decimal.Decimal, v Values) decimal.Decimal {
	return sales.
		Add(opening).
		Add(v.Payments).
		Sub(v.ClosingBalance).
		Sub(v.Anulado).
		Sub(v.Debits).
		Sub(v.Expenses).
		Sub(v.Vouchers)
}

func resolve(rec models.DailyRecord, overrides map[models.ManualField]string) Values {
	field := func(f models.ManualField) decimal.Decimal {
		if raw, ok := overrides[f]; ok {
			return Sanitize(raw)
		}
		if stored := rec.Manual.Get(f); stored != nil {
			return *stored
		}
		return decimal.Zero
	}

	return Values{
		Anulado:        field(models.ManualFieldAnulado),
		Payments:       field(models.ManualFieldPayments),
		Debits:         field(models.ManualFieldDebits),
		Expenses:       field(models.ManualFieldExpenses),
		Vouchers:       field(models.ManualFieldVouchers),
		ClosingBalance: field(models.ManualFieldClosingBalance),
		OpeningBalance: field(models.ManualFieldOpeningBalance),
	}
}
