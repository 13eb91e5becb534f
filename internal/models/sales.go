package models

import (
	"time"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"

	"github.com/viglianco/go-sales-ledger/internal/common/dateutil"
)

// DailyRecord is one day of the ledger window: server derived sales plus the stored manual values.
type DailyRecord struct {
	Date    civil.Date
	BatchID int64
	Sales   decimal.Decimal
	Manual  ManualFields

	// StoredTotal is the last settlement total snapshot written for the row, nil when never written.
	StoredTotal *decimal.Decimal
}

type UploadBatch struct {
	ID               int64
	OriginalFilename string
	SingleDate       *civil.Date
	DateFrom         *civil.Date
	DateTo           *civil.Date
	CreatedAt        *time.Time
}

func (b UploadBatch) PeriodLabel() string {
	return dateutil.FormatBatchPeriod(b.ID, b.SingleDate, b.DateFrom, b.DateTo)
}

// DailySales is the per batch and day aggregate of uploaded records.
type DailySales struct {
	BatchID     int64
	Date        civil.Date
	Sales       decimal.Decimal
	RecordCount int
	Batch       UploadBatch
}

// ManualEntry is a stored row of manual values, unique on (BatchID, Date).
type ManualEntry struct {
	BatchID         int64
	Date            civil.Date
	Fields          ManualFields
	SettlementTotal decimal.Decimal
	UpdatedAt       *time.Time
}

type ManualEntryKey struct {
	BatchID int64
	Date    civil.Date
}

func (e ManualEntry) Key() ManualEntryKey {
	return ManualEntryKey{BatchID: e.BatchID, Date: e.Date}
}

func (e ManualEntry) ToManualEntryOut() ManualEntryOut {
	return ManualEntryOut{
		Kind:            "manualEntry",
		BatchID:         e.BatchID,
		Date:            e.Date.String(),
		Fields:          NewManualFieldsOut(e.Fields),
		SettlementTotal: NewDecimalFromExternal(e.SettlementTotal),
		UpdatedAt:       e.UpdatedAt,
	}
}

// ToDailyRecords joins the per day sales with their manual entries.
func ToDailyRecords(sales []DailySales, entries []ManualEntry) []DailyRecord {
	byKey := make(map[ManualEntryKey]ManualEntry, len(entries))
	for _, e := range entries {
		byKey[e.Key()] = e
	}

	records := make([]DailyRecord, 0, len(sales))
	for _, s := range sales {
		rec := DailyRecord{
			Date:    s.Date,
			BatchID: s.BatchID,
			Sales:   s.Sales,
		}
		if e, ok := byKey[ManualEntryKey{BatchID: s.BatchID, Date: s.Date}]; ok {
			rec.Manual = e.Fields
			total := e.SettlementTotal
			rec.StoredTotal = &total
		}
		records = append(records, rec)
	}
	return records
}

// WindowFilter selects the daily rows of a ledger window. Zero values are unset.
type WindowFilter struct {
	BatchID  *int64
	Year     int
	Month    int
	DateFrom *civil.Date
	DateTo   *civil.Date
}

// Bounds resolves the inclusive date range of the window; a zero date is an open bound.
func (f WindowFilter) Bounds() (from, to civil.Date) {
	switch {
	case f.Year > 0 && f.Month >= 1 && f.Month <= 12:
		from, to = dateutil.MonthBounds(f.Year, time.Month(f.Month))
	case f.Year > 0:
		from, to = dateutil.YearBounds(f.Year)
	}

	if f.DateFrom != nil && (from.IsZero() || f.DateFrom.After(from)) {
		from = *f.DateFrom
	}
	if f.DateTo != nil && (to.IsZero() || f.DateTo.Before(to)) {
		to = *f.DateTo
	}
	return from, to
}

// ManualEntryChangedEvent is published after a manual entry upsert.
type ManualEntryChangedEvent struct {
	EventID         string          `json:"eventId"`
	BatchID         int64           `json:"batchId"`
	Date            string          `json:"date"`
	Fields          ManualFieldsOut `json:"fields"`
	SettlementTotal Decimal         `json:"settlementTotal"`
	OpeningIncluded bool            `json:"openingIncluded"`
	ChangedAt       time.Time       `json:"changedAt"`
}

type ReconcileTotalsOut struct {
	Checked int      `json:"checked"`
	Updated int      `json:"updated"`
	Dates   []string `json:"dates"`
}
