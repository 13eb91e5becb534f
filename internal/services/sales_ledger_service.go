package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/viglianco/go-sales-ledger/internal/common"
	"github.com/viglianco/go-sales-ledger/internal/common/cache"
	"github.com/viglianco/go-sales-ledger/internal/common/dateutil"
	"github.com/viglianco/go-sales-ledger/internal/common/log"
	"github.com/viglianco/go-sales-ledger/internal/common/metrics"
	"github.com/viglianco/go-sales-ledger/internal/common/publisher"
	"github.com/viglianco/go-sales-ledger/internal/ledger"
	"github.com/viglianco/go-sales-ledger/internal/models"
	"github.com/viglianco/go-sales-ledger/internal/monitoring"
)

//go:generate mockgen -source=sales_ledger_service.go -destination=mock/sales_ledger_service.go -package=mock

type SalesLedgerService interface {
	GetDailySales(ctx context.Context, filter models.WindowFilter) (output *models.DailySalesOut, err error)
	UpsertManualEntry(ctx context.Context, in models.UpsertManualEntryIn) (output *models.ManualEntry, err error)
	ReconcileTotals(ctx context.Context, filter models.WindowFilter) (output *models.ReconcileTotalsOut, err error)
	ReconcileFollowing(ctx context.Context, key models.ManualEntryKey) (output *models.ReconcileTotalsOut, err error)
}

type salesLedger service

var _ SalesLedgerService = (*salesLedger)(nil)

const (
	kindDailySales         = "dailySales"
	manualEntryEventPrefix = "mec"
)

// window is a loaded ledger window before presentation.
type window struct {
	filter     models.WindowFilter
	years      []int
	months     []int
	sales      map[models.ManualEntryKey]models.DailySales
	projection ledger.Projection
}

// resolveYear defaults the year to the latest one holding data, or the current business year.
func (s *salesLedger) resolveYear(ctx context.Context, filter models.WindowFilter) (models.WindowFilter, []int, error) {
	years, err := s.srv.sqlRepo.GetSalesRepository().GetAvailableYears(ctx, filter.BatchID)
	if err != nil {
		return filter, nil, checkDatabaseError(err)
	}
	if filter.Year == 0 {
		if len(years) > 0 {
			filter.Year = years[len(years)-1]
		} else {
			filter.Year = dateutil.Today(time.Now()).Year
		}
	}
	return filter, years, nil
}

func (s *salesLedger) loadWindow(ctx context.Context, filter models.WindowFilter) (*window, error) {
	filter, years, err := s.resolveYear(ctx, filter)
	if err != nil {
		return nil, err
	}

	var (
		daily  []models.DailySales
		months []int
	)
	salesRepo := s.srv.sqlRepo.GetSalesRepository()
	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() (err error) {
		daily, err = salesRepo.GetDailySales(egCtx, filter)
		return err
	})
	eg.Go(func() (err error) {
		months, err = salesRepo.GetAvailableMonths(egCtx, filter.Year, filter.BatchID)
		return err
	})
	if err = eg.Wait(); err != nil {
		return nil, checkDatabaseError(err)
	}

	batchIDs := make([]int64, 0, len(daily))
	seen := make(map[int64]struct{}, len(daily))
	sales := make(map[models.ManualEntryKey]models.DailySales, len(daily))
	for _, d := range daily {
		sales[models.ManualEntryKey{BatchID: d.BatchID, Date: d.Date}] = d
		if _, ok := seen[d.BatchID]; !ok {
			seen[d.BatchID] = struct{}{}
			batchIDs = append(batchIDs, d.BatchID)
		}
	}

	from, to := filter.Bounds()
	entries, err := s.srv.sqlRepo.GetManualEntryRepository().GetByBatches(ctx, batchIDs, from, to)
	if err != nil {
		return nil, checkDatabaseError(err)
	}

	projection := ledger.Project(models.ToDailyRecords(daily, entries), nil)
	s.srv.ledgerMetrics().RecordProjection(projection.Len())

	return &window{
		filter:     filter,
		years:      years,
		months:     months,
		sales:      sales,
		projection: projection,
	}, nil
}

// GetDailySales implements SalesLedgerService.
func (s *salesLedger) GetDailySales(ctx context.Context, filter models.WindowFilter) (output *models.DailySalesOut, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	build := func() (models.DailySalesOut, error) {
		w, err := s.loadWindow(ctx, filter)
		if err != nil {
			return models.DailySalesOut{}, err
		}
		return w.toDailySalesOut(), nil
	}

	ttl := s.srv.conf.Ledger.CacheTTL
	if s.srv.windowCache == nil || ttl <= 0 {
		out, err := build()
		if err != nil {
			return nil, err
		}
		return &out, nil
	}

	// the cache key needs the resolved year
	if filter.Year == 0 {
		filter, _, err = s.resolveYear(ctx, filter)
		if err != nil {
			return nil, err
		}
	}
	out, err := s.srv.windowCache.GetOrSet(ctx, cache.GetOrSetOpts[models.DailySalesOut]{
		Key:      windowCacheKey(s.windowVersion(ctx, filter.Year), filter),
		TTL:      ttl,
		Callback: build,
		OnLookup: s.srv.ledgerMetrics().RecordCacheLookup,
	})
	if err != nil {
		return nil, err
	}

	return &out, nil
}

func (w *window) toDailySalesOut() models.DailySalesOut {
	out := models.DailySalesOut{
		Kind:        kindDailySales,
		Results:     make([]models.DailySalesRowOut, 0, w.projection.Len()),
		WeekSummary: []models.WeekSummaryOut{},
		Filters: models.DailySalesFiltersOut{
			Year:            w.filter.Year,
			BatchID:         w.filter.BatchID,
			AvailableYears:  w.years,
			AvailableMonths: w.months,
		},
	}
	if out.Filters.AvailableYears == nil {
		out.Filters.AvailableYears = []int{}
	}
	if out.Filters.AvailableMonths == nil {
		out.Filters.AvailableMonths = []int{}
	}
	if w.filter.Month >= 1 && w.filter.Month <= 12 {
		month, label := w.filter.Month, dateutil.SpanishMonthName(w.filter.Month)
		out.Filters.Month = &month
		out.Filters.MonthLabel = &label
	}
	if w.filter.DateFrom != nil {
		from := w.filter.DateFrom.String()
		out.Filters.DateFrom = &from
	}
	if w.filter.DateTo != nil {
		to := w.filter.DateTo.String()
		out.Filters.DateTo = &to
	}

	for _, row := range w.projection.Rows() {
		rec := row.Record
		daily := w.sales[models.ManualEntryKey{BatchID: rec.BatchID, Date: rec.Date}]
		rowOut := models.DailySalesRowOut{
			BatchID:         rec.BatchID,
			Date:            rec.Date.String(),
			DateLabel:       dateutil.FormatSpanishDay(rec.Date),
			Sales:           models.NewDecimalFromExternal(rec.Sales.Round(2)),
			Records:         daily.RecordCount,
			DatasetLabel:    daily.Batch.PeriodLabel(),
			Source:          daily.Batch.OriginalFilename,
			BaseRow:         row.Anchor,
			OpeningBalance:  models.NewDecimalFromExternal(row.OpeningBalance),
			ClosingBalance:  models.NewDecimalFromExternal(row.ClosingBalance),
			SettlementTotal: models.NewDecimalFromExternal(row.SettlementTotal),
			Manual:          models.NewManualFieldsOut(rec.Manual),
		}
		out.Results = append(out.Results, rowOut)

		if w.filter.BatchID != nil && out.Dataset == nil && rec.BatchID == *w.filter.BatchID {
			dataset := rowOut
			out.Dataset = &dataset
		}
	}

	stats, weeks := ledger.Summarize(w.projection)
	out.Stats = models.DailySalesStatsOut{
		TotalSales:   models.NewDecimalFromExternal(stats.TotalSales),
		Days:         stats.Days,
		AverageDaily: models.NewDecimalFromExternal(stats.AverageDaily),
	}
	if stats.MaxDay != nil {
		out.Stats.MaxDay = &models.DailySalesMaxDayOut{
			Date:  stats.MaxDay.Record.Date.String(),
			Label: dateutil.FormatSpanishDay(stats.MaxDay.Record.Date),
			Total: models.NewDecimalFromExternal(stats.MaxDay.SettlementTotal),
		}
	}
	for _, wk := range weeks {
		out.WeekSummary = append(out.WeekSummary, models.WeekSummaryOut{
			Year:  wk.Year,
			Week:  wk.Week,
			Start: wk.Start.String(),
			End:   wk.End.String(),
			Total: models.NewDecimalFromExternal(wk.Total),
		})
	}

	return out
}

// UpsertManualEntry implements SalesLedgerService.
func (s *salesLedger) UpsertManualEntry(ctx context.Context, in models.UpsertManualEntryIn) (output *models.ManualEntry, err error) {
	monitor := monitoring.New(ctx)
	defer func() {
		s.srv.ledgerMetrics().RecordUpsert(metrics.UpsertSourceAPI, err)
		monitor.Finish(monitoring.WithFinishCheckError(err))
	}()

	if _, err = s.srv.sqlRepo.GetSalesRepository().GetBatch(ctx, in.BatchID); err != nil {
		if errors.Is(err, common.ErrBatchNotFound) {
			return nil, models.GetErrMap(models.ErrKeyBatchNotFound, fmt.Sprintf("batch %d", in.BatchID))
		}
		return nil, checkDatabaseError(err)
	}

	output, err = s.srv.sqlRepo.GetManualEntryRepository().Upsert(ctx, in)
	if err != nil {
		return nil, checkDatabaseError(err)
	}

	s.invalidateWindows(ctx, in.Date.Year)
	s.publishManualEntryChanged(ctx, *output, in.Fields.OpeningBalance != nil)

	return output, nil
}

// publishManualEntryChanged is best effort: the entry is already stored.
func (s *salesLedger) publishManualEntryChanged(ctx context.Context, entry models.ManualEntry, openingIncluded bool) {
	if s.srv.manualEntryPub == nil {
		return
	}

	event := models.ManualEntryChangedEvent{
		EventID:         s.srv.idGenerator.Generate(manualEntryEventPrefix),
		BatchID:         entry.BatchID,
		Date:            entry.Date.String(),
		Fields:          models.NewManualFieldsOut(entry.Fields),
		SettlementTotal: models.NewDecimalFromExternal(entry.SettlementTotal),
		OpeningIncluded: openingIncluded,
		ChangedAt:       time.Now(),
	}
	if entry.UpdatedAt != nil {
		event.ChangedAt = *entry.UpdatedAt
	}

	key := fmt.Sprintf("%d:%s", entry.BatchID, entry.Date)
	if err := s.srv.manualEntryPub.Publish(ctx, event, publisher.WithKey(key)); err != nil {
		log.Warn(ctx, "[SALES-LEDGER.PUBLISH]", log.String("key", key), log.Err(err))
	}
}

// ReconcileTotals implements SalesLedgerService.
func (s *salesLedger) ReconcileTotals(ctx context.Context, filter models.WindowFilter) (output *models.ReconcileTotalsOut, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	return s.reconcile(ctx, filter, false)
}

// ReconcileFollowing rewrites the totals of the rows after key up to the end of its month. The row of key
// seeds the chain and keeps its snapshot, so a month anchor written by the sales board is never replaced
// by a value carried from the previous month.
func (s *salesLedger) ReconcileFollowing(ctx context.Context, key models.ManualEntryKey) (output *models.ReconcileTotalsOut, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	from := key.Date
	return s.reconcile(ctx, models.WindowFilter{
		Year:     from.Year,
		Month:    int(from.Month),
		DateFrom: &from,
	}, true)
}

func (s *salesLedger) reconcile(ctx context.Context, filter models.WindowFilter, keepSeed bool) (*models.ReconcileTotalsOut, error) {
	w, err := s.loadWindow(ctx, filter)
	if err != nil {
		return nil, err
	}

	rows := w.projection.Rows()
	if keepSeed && len(rows) > 0 {
		rows = rows[1:]
	}

	output := &models.ReconcileTotalsOut{Dates: []string{}}
	repo := s.srv.sqlRepo.GetManualEntryRepository()
	for _, row := range rows {
		stored := row.Record.StoredTotal
		if stored == nil {
			continue
		}
		output.Checked++
		if stored.Equal(row.SettlementTotal) {
			continue
		}

		key := models.ManualEntryKey{BatchID: row.Record.BatchID, Date: row.Record.Date}
		total := row.SettlementTotal
		err = s.srv.retryer.Retry(ctx, func() error {
			err := repo.UpdateSettlementTotal(ctx, key, total)
			if errors.Is(err, common.ErrNoRowsAffected) {
				return s.srv.retryer.StopRetryWithErr(err)
			}
			return err
		}, nil)
		if err != nil {
			return nil, checkDatabaseError(err)
		}

		log.Info(ctx, "[SALES-LEDGER.RECONCILE]",
			log.Int64("batchId", key.BatchID),
			log.String("date", key.Date.String()),
			log.String("stored", stored.String()),
			log.String("projected", total.String()))
		output.Updated++
		output.Dates = append(output.Dates, key.Date.String())
	}

	if output.Updated > 0 {
		s.invalidateWindows(ctx, w.filter.Year)
	}
	s.srv.ledgerMetrics().RecordReconcile(output.Checked, output.Updated)

	return output, nil
}
