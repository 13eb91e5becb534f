package salesboard

import (
	"context"

	"github.com/viglianco/go-sales-ledger/internal/models"
)

//go:generate mockgen -source=store.go -destination=mock/store.go -package=mock

// Store is the remote side of the sales board: it serves ledger windows and accepts manual entry upserts.
type Store interface {
	FetchWindow(ctx context.Context, filter models.WindowFilter) ([]models.DailyRecord, error)
	UpsertManualEntry(ctx context.Context, in models.UpsertManualEntryIn) error
}
