package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"cloud.google.com/go/civil"

	"github.com/viglianco/go-sales-ledger/internal/common"
	"github.com/viglianco/go-sales-ledger/internal/models"
	"github.com/viglianco/go-sales-ledger/internal/monitoring"
)

//go:generate mockgen -source=sql_sales.go -destination=mock/sql_sales.go -package=mock

type SalesRepository interface {
	GetDailySales(ctx context.Context, filter models.WindowFilter) ([]models.DailySales, error)
	GetAvailableYears(ctx context.Context, batchID *int64) ([]int, error)
	GetAvailableMonths(ctx context.Context, year int, batchID *int64) ([]int, error)
	GetBatch(ctx context.Context, id int64) (*models.UploadBatch, error)
}

type salesRepository sqlRepo

var _ SalesRepository = (*salesRepository)(nil)

func nullDate(t sql.NullTime) *civil.Date {
	if !t.Valid {
		return nil
	}
	d := civil.DateOf(t.Time)
	return &d
}

func nullTime(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	return &t.Time
}

func (sr *salesRepository) GetDailySales(ctx context.Context, filter models.WindowFilter) (result []models.DailySales, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	query, args, err := buildDailySalesQuery(filter).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	db := sr.r.extractTxRead(ctx)
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			item                      models.DailySales
			day                       time.Time
			single, from, to, created sql.NullTime
		)
		err = rows.Scan(
			&item.BatchID,
			&day,
			&item.Sales,
			&item.RecordCount,
			&item.Batch.OriginalFilename,
			&single,
			&from,
			&to,
			&created,
		)
		if err != nil {
			return nil, err
		}
		item.Date = civil.DateOf(day)
		item.Batch.ID = item.BatchID
		item.Batch.SingleDate = nullDate(single)
		item.Batch.DateFrom = nullDate(from)
		item.Batch.DateTo = nullDate(to)
		item.Batch.CreatedAt = nullTime(created)
		result = append(result, item)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

func (sr *salesRepository) queryInts(ctx context.Context, query string, args []any) (result []int, err error) {
	db := sr.r.extractTxRead(ctx)
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var v int
		if err = rows.Scan(&v); err != nil {
			return nil, err
		}
		result = append(result, v)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// GetAvailableYears lists the years holding sales data, oldest first.
func (sr *salesRepository) GetAvailableYears(ctx context.Context, batchID *int64) (years []int, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	query, args, err := buildAvailableYearsQuery(batchID).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}
	return sr.queryInts(ctx, query, args)
}

func (sr *salesRepository) GetAvailableMonths(ctx context.Context, year int, batchID *int64) (months []int, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	query, args, err := buildAvailableMonthsQuery(year, batchID).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}
	return sr.queryInts(ctx, query, args)
}

func (sr *salesRepository) GetBatch(ctx context.Context, id int64) (batch *models.UploadBatch, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	var (
		b                         models.UploadBatch
		single, from, to, created sql.NullTime
	)
	db := sr.r.extractTxRead(ctx)
	err = db.QueryRowContext(ctx, queryBatchGetByID, id).Scan(
		&b.ID,
		&b.OriginalFilename,
		&single,
		&from,
		&to,
		&created,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrBatchNotFound
		}
		return nil, err
	}
	b.SingleDate = nullDate(single)
	b.DateFrom = nullDate(from)
	b.DateTo = nullDate(to)
	b.CreatedAt = nullTime(created)

	return &b, nil
}
