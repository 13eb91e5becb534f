package consumer

import (
	"context"
	"fmt"

	"github.com/viglianco/go-sales-ledger/internal/common/graceful"
	"github.com/viglianco/go-sales-ledger/internal/common/metrics"
	"github.com/viglianco/go-sales-ledger/internal/config"
	ledgerreconciler "github.com/viglianco/go-sales-ledger/internal/deliveries/consumer/ledger_reconciler"
	"github.com/viglianco/go-sales-ledger/internal/services"
)

const LedgerReconciler = "ledger_reconciler"

// Names lists the consumers NewKafkaConsumer knows.
func Names() []string {
	return []string{LedgerReconciler}
}

func NewKafkaConsumer(
	ctx context.Context,
	consumerName string,
	conf config.Config,
	svc *services.Services,
	mtc metrics.Metrics,
) (consumerProcess graceful.ProcessStartStopper, err error) {
	switch consumerName {
	case LedgerReconciler:
		consumerProcess = ledgerreconciler.New(ctx, conf, svc.SalesLedger, mtc)
	default:
		err = fmt.Errorf("consumer type name for %s not found", consumerName)
	}

	return
}
