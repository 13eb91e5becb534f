package ledger

import (
	"context"
	"strings"
	"time"

	"github.com/viglianco/go-sales-ledger/internal/common/log"
	"github.com/viglianco/go-sales-ledger/internal/models"
	"github.com/viglianco/go-sales-ledger/internal/services"
)

type ledgerHandler struct {
	salesLedgerSrv services.SalesLedgerService
}

func Routes(sls services.SalesLedgerService) map[string]func(ctx context.Context, date time.Time, flag models.JobFlag) error {
	handler := ledgerHandler{
		salesLedgerSrv: sls,
	}
	return map[string]func(ctx context.Context, date time.Time, flag models.JobFlag) error{
		"reconcile-totals": handler.ReconcileTotals,
		// add more job here
	}
}

// ReconcileTotals rewrites drifted settlement totals of the year of date, or of one month when the flag sets it.
func (lh *ledgerHandler) ReconcileTotals(ctx context.Context, date time.Time, flag models.JobFlag) error {
	filter := models.WindowFilter{
		Year:  date.Year(),
		Month: flag.Month,
	}
	if flag.BatchID > 0 {
		batchID := flag.BatchID
		filter.BatchID = &batchID
	}

	out, err := lh.salesLedgerSrv.ReconcileTotals(ctx, filter)
	if err != nil {
		return err
	}

	log.Info(ctx, "ReconcileTotals",
		log.Int("year", filter.Year),
		log.Int("month", filter.Month),
		log.Int("checked", out.Checked),
		log.Int("updated", out.Updated),
		log.String("dates", strings.Join(out.Dates, ",")))

	return nil
}
