package models

import (
	"fmt"
	"time"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"

	"github.com/viglianco/go-sales-ledger/internal/common"
)

type DailySalesRequest struct {
	BatchID  *int64 `query:"batch_id" json:"batch_id" validate:"omitempty,gt=0"`
	Year     int    `query:"year" json:"year" validate:"omitempty,min=1900,max=9999"`
	Month    int    `query:"month" json:"month" validate:"omitempty,min=1,max=12"`
	DateFrom string `query:"date_from" json:"date_from" validate:"omitempty,isodate"`
	DateTo   string `query:"date_to" json:"date_to" validate:"omitempty,isodate"`
}

func (r DailySalesRequest) ToWindowFilter() (WindowFilter, error) {
	filter := WindowFilter{
		BatchID: r.BatchID,
		Year:    r.Year,
		Month:   r.Month,
	}
	for _, p := range []struct {
		raw string
		dst **civil.Date
	}{
		{raw: r.DateFrom, dst: &filter.DateFrom},
		{raw: r.DateTo, dst: &filter.DateTo},
	} {
		if p.raw == "" {
			continue
		}
		d, err := civil.ParseDate(p.raw)
		if err != nil {
			return WindowFilter{}, fmt.Errorf("%w: %s", common.ErrInvalidFormatDate, p.raw)
		}
		*p.dst = &d
	}
	if filter.DateFrom != nil && filter.DateTo != nil && filter.DateTo.Before(*filter.DateFrom) {
		return WindowFilter{}, GetErrMap(ErrKeyInvalidWindowFilter, "date_to is before date_from")
	}
	return filter, nil
}

type ManualFieldsIn struct {
	Anulado        *Decimal `json:"anulado"`
	Payments       *Decimal `json:"payments"`
	Debits         *Decimal `json:"debits"`
	Expenses       *Decimal `json:"expenses"`
	Vouchers       *Decimal `json:"vouchers"`
	ClosingBalance *Decimal `json:"closingBalance"`
	OpeningBalance *Decimal `json:"openingBalance"`
}

type UpsertManualEntryRequest struct {
	BatchID         int64          `json:"batchId" validate:"required,gt=0"`
	Date            string         `json:"date" validate:"required,isodate"`
	Fields          ManualFieldsIn `json:"fields"`
	SettlementTotal *Decimal       `json:"settlementTotal"`
}

// UpsertManualEntryIn is a full row write. Missing amounts are stored as zero except the
// opening balance, which keeps the stored value when OpeningBalance is nil.
type UpsertManualEntryIn struct {
	BatchID         int64
	Date            civil.Date
	Fields          ManualFields
	SettlementTotal decimal.Decimal
}

func (r UpsertManualEntryRequest) ToUpsertManualEntryIn() (UpsertManualEntryIn, error) {
	date, err := civil.ParseDate(r.Date)
	if err != nil {
		return UpsertManualEntryIn{}, fmt.Errorf("%w: %s", common.ErrInvalidFormatDate, r.Date)
	}

	zeroIfNil := func(d *Decimal) *decimal.Decimal {
		if d == nil {
			zero := decimal.Zero
			return &zero
		}
		return d.Ptr()
	}

	in := UpsertManualEntryIn{
		BatchID: r.BatchID,
		Date:    date,
		Fields: ManualFields{
			Anulado:        zeroIfNil(r.Fields.Anulado),
			Payments:       zeroIfNil(r.Fields.Payments),
			Debits:         zeroIfNil(r.Fields.Debits),
			Expenses:       zeroIfNil(r.Fields.Expenses),
			Vouchers:       zeroIfNil(r.Fields.Vouchers),
			ClosingBalance: zeroIfNil(r.Fields.ClosingBalance),
			OpeningBalance: r.Fields.OpeningBalance.Ptr(),
		},
	}
	if r.SettlementTotal != nil {
		in.SettlementTotal = r.SettlementTotal.Decimal
	}
	return in, nil
}

func (in UpsertManualEntryIn) Key() ManualEntryKey {
	return ManualEntryKey{BatchID: in.BatchID, Date: in.Date}
}

func (in UpsertManualEntryIn) ToRequest() UpsertManualEntryRequest {
	total := NewDecimalFromExternal(in.SettlementTotal)
	return UpsertManualEntryRequest{
		BatchID: in.BatchID,
		Date:    in.Date.String(),
		Fields: ManualFieldsIn{
			Anulado:        NewDecimalPtr(in.Fields.Anulado),
			Payments:       NewDecimalPtr(in.Fields.Payments),
			Debits:         NewDecimalPtr(in.Fields.Debits),
			Expenses:       NewDecimalPtr(in.Fields.Expenses),
			Vouchers:       NewDecimalPtr(in.Fields.Vouchers),
			ClosingBalance: NewDecimalPtr(in.Fields.ClosingBalance),
			OpeningBalance: NewDecimalPtr(in.Fields.OpeningBalance),
		},
		SettlementTotal: &total,
	}
}

type ManualFieldsOut struct {
	Anulado        Decimal `json:"anulado"`
	Payments       Decimal `json:"payments"`
	Debits         Decimal `json:"debits"`
	Expenses       Decimal `json:"expenses"`
	Vouchers       Decimal `json:"vouchers"`
	ClosingBalance Decimal `json:"closingBalance"`
	OpeningBalance Decimal `json:"openingBalance"`
}

func NewManualFieldsOut(m ManualFields) ManualFieldsOut {
	return ManualFieldsOut{
		Anulado:        NewDecimalFromExternal(common.DecimalOrZero(m.Anulado)),
		Payments:       NewDecimalFromExternal(common.DecimalOrZero(m.Payments)),
		Debits:         NewDecimalFromExternal(common.DecimalOrZero(m.Debits)),
		Expenses:       NewDecimalFromExternal(common.DecimalOrZero(m.Expenses)),
		Vouchers:       NewDecimalFromExternal(common.DecimalOrZero(m.Vouchers)),
		ClosingBalance: NewDecimalFromExternal(common.DecimalOrZero(m.ClosingBalance)),
		OpeningBalance: NewDecimalFromExternal(common.DecimalOrZero(m.OpeningBalance)),
	}
}

type ManualEntryOut struct {
	Kind            string          `json:"kind"`
	BatchID         int64           `json:"batchId"`
	Date            string          `json:"date"`
	Fields          ManualFieldsOut `json:"fields"`
	SettlementTotal Decimal         `json:"settlementTotal"`
	UpdatedAt       *time.Time      `json:"updatedAt,omitempty"`
}

type DailySalesRowOut struct {
	BatchID         int64           `json:"batchId"`
	Date            string          `json:"date"`
	DateLabel       string          `json:"dateLabel"`
	Sales           Decimal         `json:"sales"`
	Records         int             `json:"records"`
	DatasetLabel    string          `json:"datasetLabel"`
	Source          string          `json:"source"`
	BaseRow         bool            `json:"baseRow"`
	OpeningBalance  Decimal         `json:"openingBalance"`
	ClosingBalance  Decimal         `json:"closingBalance"`
	SettlementTotal Decimal         `json:"settlementTotal"`
	Manual          ManualFieldsOut `json:"manual"`
}

type DailySalesFiltersOut struct {
	Year            int     `json:"year"`
	Month           *int    `json:"month"`
	MonthLabel      *string `json:"monthLabel"`
	BatchID         *int64  `json:"batchId"`
	DateFrom        *string `json:"dateFrom"`
	DateTo          *string `json:"dateTo"`
	AvailableYears  []int   `json:"availableYears"`
	AvailableMonths []int   `json:"availableMonths"`
}

type DailySalesMaxDayOut struct {
	Date  string  `json:"date"`
	Label string  `json:"label"`
	Total Decimal `json:"total"`
}

type DailySalesStatsOut struct {
	TotalSales   Decimal              `json:"totalSales"`
	Days         int                  `json:"days"`
	AverageDaily Decimal              `json:"averageDaily"`
	MaxDay       *DailySalesMaxDayOut `json:"maxDay"`
}

type WeekSummaryOut struct {
	Year  int     `json:"year"`
	Week  int     `json:"week"`
	Start string  `json:"start"`
	End   string  `json:"end"`
	Total Decimal `json:"total"`
}

type DailySalesOut struct {
	Kind        string               `json:"kind"`
	Results     []DailySalesRowOut   `json:"results"`
	Filters     DailySalesFiltersOut `json:"filters"`
	Dataset     *DailySalesRowOut    `json:"dataset"`
	Stats       DailySalesStatsOut   `json:"stats"`
	WeekSummary []WeekSummaryOut     `json:"weekSummary"`
}

// ToDailyRecords rebuilds the ledger window from an API response.
func (o DailySalesOut) ToDailyRecords() ([]DailyRecord, error) {
	records := make([]DailyRecord, 0, len(o.Results))
	for _, row := range o.Results {
		date, err := civil.ParseDate(row.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", common.ErrInvalidFormatDate, row.Date)
		}
		m := row.Manual
		records = append(records, DailyRecord{
			Date:    date,
			BatchID: row.BatchID,
			Sales:   row.Sales.Decimal,
			Manual: ManualFields{
				Anulado:        (&m.Anulado).Ptr(),
				Payments:       (&m.Payments).Ptr(),
				Debits:         (&m.Debits).Ptr(),
				Expenses:       (&m.Expenses).Ptr(),
				Vouchers:       (&m.Vouchers).Ptr(),
				ClosingBalance: (&m.ClosingBalance).Ptr(),
				OpeningBalance: (&m.OpeningBalance).Ptr(),
			},
		})
	}
	return records, nil
}
