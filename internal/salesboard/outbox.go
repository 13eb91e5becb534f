package salesboard

import (
	"context"
	"errors"
	"fmt"

	localstorage "github.com/viglianco/go-sales-ledger/internal/common/local_storage"
	"github.com/viglianco/go-sales-ledger/internal/common/log"
	"github.com/viglianco/go-sales-ledger/internal/models"
)

var ErrNotSynced = errors.New("kept in outbox, not stored yet")

// Outbox keeps the latest payload of every row whose write failed, so a later run can send it.
type Outbox struct {
	storage localstorage.LocalStorage[models.UpsertManualEntryIn]
}

func NewOutbox(storage localstorage.LocalStorage[models.UpsertManualEntryIn]) *Outbox {
	return &Outbox{storage: storage}
}

// OpenOutbox opens the on disk outbox under dir.
func OpenOutbox(dir string) (*Outbox, error) {
	storage, err := localstorage.NewBadgerStorage[models.UpsertManualEntryIn](dir)
	if err != nil {
		return nil, err
	}
	return NewOutbox(storage), nil
}

func (o *Outbox) Close() error {
	return o.storage.Close()
}

// outboxKey sorts by batch and then by day.
func outboxKey(key models.ManualEntryKey) string {
	return fmt.Sprintf("%020d/%s", key.BatchID, key.Date)
}

func (o *Outbox) Put(in models.UpsertManualEntryIn) error {
	return o.storage.Set(outboxKey(in.Key()), in)
}

func (o *Outbox) Remove(key models.ManualEntryKey) error {
	return o.storage.Delete(outboxKey(key))
}

func (o *Outbox) Pending() ([]models.UpsertManualEntryIn, error) {
	var out []models.UpsertManualEntryIn
	err := o.storage.ForEach(func(_ string, in models.UpsertManualEntryIn) error {
		out = append(out, in)
		return nil
	})
	return out, err
}

// PendingKeys is Pending shaped for Render.
func (o *Outbox) PendingKeys() (map[models.ManualEntryKey]error, error) {
	pending, err := o.Pending()
	if err != nil {
		return nil, err
	}
	out := make(map[models.ManualEntryKey]error, len(pending))
	for _, in := range pending {
		out[in.Key()] = ErrNotSynced
	}
	return out, nil
}

type SyncResult struct {
	Sent   int
	Failed map[models.ManualEntryKey]error
}

// Sync sends every kept payload. Accepted rows leave the outbox; failed ones stay for the next run.
func (o *Outbox) Sync(ctx context.Context, store Store) (SyncResult, error) {
	res := SyncResult{Failed: map[models.ManualEntryKey]error{}}

	pending, err := o.Pending()
	if err != nil {
		return res, err
	}

	for _, in := range pending {
		key := in.Key()
		if err := store.UpsertManualEntry(ctx, in); err != nil {
			log.Warn(ctx, "[SALESBOARD.OUTBOX]",
				log.Int64("batchId", key.BatchID),
				log.String("date", key.Date.String()),
				log.Err(err))
			res.Failed[key] = err
			continue
		}
		if err := o.Remove(key); err != nil {
			return res, err
		}
		res.Sent++
	}
	return res, nil
}
