package repositories

import (
	"time"

	"cloud.google.com/go/civil"
	sq "github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/viglianco/go-sales-ledger/internal/models"
)

// batchDay is the business day of an upload batch.
const batchDay = `COALESCE(b."singleDate", b."dateFrom", b."dateTo")`

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// query to upload batch and sales record database
var (
	queryBatchGetByID = `SELECT
		"id", "originalFilename", "singleDate", "dateFrom", "dateTo", "createdAt"
	FROM "upload_batch"
	WHERE "id" = $1;`

	queryManualEntryUpsert = `
		INSERT INTO "sales_manual_entry"(
			"batchId", "date", "anulado", "payments", "debits", "expenses", "vouchers",
			"closingBalance", "openingBalance", "settlementTotal", "createdAt", "updatedAt"
		)
		VALUES(
			$1, $2, $3, $4, $5, $6, $7, $8, COALESCE($9::numeric, 0), $10, now(), now()
		)
		ON CONFLICT ("batchId", "date") DO UPDATE SET
			"anulado" = EXCLUDED."anulado",
			"payments" = EXCLUDED."payments",
			"debits" = EXCLUDED."debits",
			"expenses" = EXCLUDED."expenses",
			"vouchers" = EXCLUDED."vouchers",
			"closingBalance" = EXCLUDED."closingBalance",
			"openingBalance" = COALESCE($9::numeric, "sales_manual_entry"."openingBalance"),
			"settlementTotal" = EXCLUDED."settlementTotal",
			"updatedAt" = now()
		RETURNING "batchId", "date", "anulado", "payments", "debits", "expenses", "vouchers",
			"closingBalance", "openingBalance", "settlementTotal", "updatedAt";
	`

	queryManualEntryUpdateSettlementTotal = `UPDATE "sales_manual_entry"
		SET "settlementTotal" = $3, "updatedAt" = now()
		WHERE "batchId" = $1 AND "date" = $2;`
)

var manualEntryColumns = []string{
	`"batchId"`, `"date"`, `"anulado"`, `"payments"`, `"debits"`, `"expenses"`, `"vouchers"`,
	`"closingBalance"`, `"openingBalance"`, `"settlementTotal"`, `"updatedAt"`,
}

func dateBounds(filter models.WindowFilter) (from, to *time.Time) {
	f, t := filter.Bounds()
	if !f.IsZero() {
		v := f.In(time.UTC)
		from = &v
	}
	if !t.IsZero() {
		v := t.In(time.UTC)
		to = &v
	}
	return from, to
}

func whereWindow(query sq.SelectBuilder, filter models.WindowFilter) sq.SelectBuilder {
	query = query.Where(batchDay + " IS NOT NULL")
	from, to := dateBounds(filter)
	if from != nil {
		query = query.Where(sq.GtOrEq{batchDay: *from})
	}
	if to != nil {
		query = query.Where(sq.LtOrEq{batchDay: *to})
	}
	if filter.BatchID != nil {
		query = query.Where(sq.Eq{`b."id"`: *filter.BatchID})
	}
	return query
}

// buildDailySalesQuery sums the uploaded records of every batch in the window, one row per batch and day.
func buildDailySalesQuery(filter models.WindowFilter) sq.SelectBuilder {
	query := psql.Select(
		`b."id"`,
		batchDay+` AS "day"`,
		`COALESCE(SUM(r."imp"), 0)`,
		`COUNT(r."id")`,
		`b."originalFilename"`,
		`b."singleDate"`,
		`b."dateFrom"`,
		`b."dateTo"`,
		`b."createdAt"`,
	).
		From(`"upload_batch" b`).
		Join(`"sales_record" r ON r."batchId" = b."id"`)

	return whereWindow(query, filter).
		GroupBy(`b."id"`).
		OrderBy(`"day" ASC`, `b."id" ASC`)
}

func buildAvailableYearsQuery(batchID *int64) sq.SelectBuilder {
	query := psql.Select(`DISTINCT EXTRACT(YEAR FROM ` + batchDay + `)::int AS "year"`).
		From(`"upload_batch" b`).
		Where(`EXISTS (SELECT 1 FROM "sales_record" r WHERE r."batchId" = b."id")`)
	return whereWindow(query, models.WindowFilter{BatchID: batchID}).
		OrderBy(`"year" ASC`)
}

func buildAvailableMonthsQuery(year int, batchID *int64) sq.SelectBuilder {
	query := psql.Select(`DISTINCT EXTRACT(MONTH FROM ` + batchDay + `)::int AS "month"`).
		From(`"upload_batch" b`).
		Where(`EXISTS (SELECT 1 FROM "sales_record" r WHERE r."batchId" = b."id")`)
	return whereWindow(query, models.WindowFilter{BatchID: batchID, Year: year}).
		OrderBy(`"month" ASC`)
}

// buildManualEntriesQuery selects the entries of the given batches, a zero date is an open bound.
func buildManualEntriesQuery(batchIDs []int64, from, to civil.Date) sq.SelectBuilder {
	query := psql.Select(manualEntryColumns...).
		From(`"sales_manual_entry"`).
		Where(`"batchId" = ANY(?)`, pq.Array(batchIDs))
	if !from.IsZero() {
		query = query.Where(sq.GtOrEq{`"date"`: from.In(time.UTC)})
	}
	if !to.IsZero() {
		query = query.Where(sq.LtOrEq{`"date"`: to.In(time.UTC)})
	}
	return query.OrderBy(`"date" ASC`, `"batchId" ASC`)
}
