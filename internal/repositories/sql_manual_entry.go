package repositories

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"

	"github.com/viglianco/go-sales-ledger/internal/common"
	"github.com/viglianco/go-sales-ledger/internal/models"
	"github.com/viglianco/go-sales-ledger/internal/monitoring"
)

//go:generate mockgen -source=sql_manual_entry.go -destination=mock/sql_manual_entry.go -package=mock

type ManualEntryRepository interface {
	GetByBatches(ctx context.Context, batchIDs []int64, from, to civil.Date) ([]models.ManualEntry, error)
	Upsert(ctx context.Context, in models.UpsertManualEntryIn) (*models.ManualEntry, error)
	UpdateSettlementTotal(ctx context.Context, key models.ManualEntryKey, total decimal.Decimal) error
}

type manualEntryRepository sqlRepo

var _ ManualEntryRepository = (*manualEntryRepository)(nil)

type scanner interface {
	Scan(dest ...any) error
}

func nullDecimal(d decimal.NullDecimal) *decimal.Decimal {
	if !d.Valid {
		return nil
	}
	return &d.Decimal
}

func scanManualEntry(row scanner) (models.ManualEntry, error) {
	var (
		entry                                         models.ManualEntry
		date                                          time.Time
		anulado, payments, debits, expenses, vouchers decimal.NullDecimal
		closing, opening                              decimal.NullDecimal
		updatedAt                                     *time.Time
	)
	err := row.Scan(
		&entry.BatchID,
		&date,
		&anulado,
		&payments,
		&debits,
		&expenses,
		&vouchers,
		&closing,
		&opening,
		&entry.SettlementTotal,
		&updatedAt,
	)
	if err != nil {
		return models.ManualEntry{}, err
	}

	entry.Date = civil.DateOf(date)
	entry.Fields = models.ManualFields{
		Anulado:        nullDecimal(anulado),
		Payments:       nullDecimal(payments),
		Debits:         nullDecimal(debits),
		Expenses:       nullDecimal(expenses),
		Vouchers:       nullDecimal(vouchers),
		ClosingBalance: nullDecimal(closing),
		OpeningBalance: nullDecimal(opening),
	}
	entry.UpdatedAt = updatedAt
	return entry, nil
}

func (mer *manualEntryRepository) GetByBatches(ctx context.Context, batchIDs []int64, from, to civil.Date) (result []models.ManualEntry, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	if len(batchIDs) == 0 {
		return nil, nil
	}

	query, args, err := buildManualEntriesQuery(batchIDs, from, to).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	db := mer.r.extractTxRead(ctx)
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		entry, err := scanManualEntry(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, entry)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

// Upsert writes a full row. A nil opening balance keeps the stored one, or zero on insert.
func (mer *manualEntryRepository) Upsert(ctx context.Context, in models.UpsertManualEntryIn) (entry *models.ManualEntry, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	var opening decimal.NullDecimal
	if in.Fields.OpeningBalance != nil {
		opening = decimal.NewNullDecimal(*in.Fields.OpeningBalance)
	}

	db := mer.r.extractTxWrite(ctx)
	row := db.QueryRowContext(ctx, queryManualEntryUpsert,
		in.BatchID,
		in.Date.In(time.UTC),
		common.DecimalOrZero(in.Fields.Anulado),
		common.DecimalOrZero(in.Fields.Payments),
		common.DecimalOrZero(in.Fields.Debits),
		common.DecimalOrZero(in.Fields.Expenses),
		common.DecimalOrZero(in.Fields.Vouchers),
		common.DecimalOrZero(in.Fields.ClosingBalance),
		opening,
		in.SettlementTotal,
	)
	stored, err := scanManualEntry(row)
	if err != nil {
		return nil, err
	}

	return &stored, nil
}

func (mer *manualEntryRepository) UpdateSettlementTotal(ctx context.Context, key models.ManualEntryKey, total decimal.Decimal) (err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	db := mer.r.extractTxWrite(ctx)
	res, err := db.ExecContext(ctx, queryManualEntryUpdateSettlementTotal, key.BatchID, key.Date.In(time.UTC), total)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return common.ErrNoRowsAffected
	}

	return nil
}
