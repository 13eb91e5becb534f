package salesboard

import (
	"context"
	"fmt"
	"sync"
	"time"

	"cloud.google.com/go/civil"

	"github.com/viglianco/go-sales-ledger/internal/common"
	"github.com/viglianco/go-sales-ledger/internal/common/log"
	"github.com/viglianco/go-sales-ledger/internal/common/metrics"
	"github.com/viglianco/go-sales-ledger/internal/ledger"
	"github.com/viglianco/go-sales-ledger/internal/models"
)

const defaultPersistTimeout = 10 * time.Second

// Edit is a single field change typed by the user.
type Edit struct {
	BatchID int64
	Date    civil.Date
	Field   models.ManualField
	Value   string
}

// EditResult carries the synchronous outcome of an edit. Persisted receives exactly one value once
// the background write finishes: nil on success, the store error otherwise.
type EditResult struct {
	Row        ledger.Row
	Projection ledger.Projection
	Payload    models.UpsertManualEntryIn
	Persisted  <-chan error
}

// FailureHook is called after a background write failed.
type FailureHook func(ctx context.Context, edit Edit, err error)

type Option func(*Session)

func WithPersistTimeout(d time.Duration) Option {
	return func(s *Session) {
		if d > 0 {
			s.persistTimeout = d
		}
	}
}

func WithFailureHook(hook FailureHook) Option {
	return func(s *Session) { s.onFailure = hook }
}

// WithOutbox keeps failed payloads in outbox until a later write of the row succeeds.
func WithOutbox(outbox *Outbox) Option {
	return func(s *Session) { s.outbox = outbox }
}

func WithMetrics(mtc metrics.Metrics) Option {
	return func(s *Session) {
		if mtc != nil {
			s.metrics = mtc.GetLedgerPrometheus()
		}
	}
}

type pendingWrite struct {
	seq uint64
	err error
}

// Session owns one ledger window and the user's not yet reloaded edits on it.
//
// A Session has a single writer: Load, ApplyEdit and the read accessors must not be called
// concurrently. Background writes only touch the pending set, which is safe to read at any time.
type Session struct {
	store          Store
	persistTimeout time.Duration
	onFailure      FailureHook
	outbox         *Outbox
	metrics        *metrics.LedgerPrometheusMetrics

	filter     models.WindowFilter
	records    []models.DailyRecord
	overrides  ledger.Overrides
	projection ledger.Projection

	wg      sync.WaitGroup
	mu      sync.Mutex
	seq     uint64
	pending map[models.ManualEntryKey]pendingWrite
}

func NewSession(store Store, opts ...Option) *Session {
	s := &Session{
		store:          store,
		persistTimeout: defaultPersistTimeout,
		overrides:      ledger.Overrides{},
		pending:        make(map[models.ManualEntryKey]pendingWrite),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.onFailure == nil {
		s.onFailure = logPersistFailure
	}
	s.projection = ledger.Project(nil, nil)
	return s
}

func logPersistFailure(ctx context.Context, edit Edit, err error) {
	log.Warn(ctx, "[SALESBOARD.PERSIST]",
		log.Int64("batchId", edit.BatchID),
		log.String("date", edit.Date.String()),
		log.String("field", edit.Field.String()),
		log.String("status", "unsynced"),
		log.Err(err))
}

// Load fetches a window from the store and starts over from the stored values.
// Edits typed on a previous window are dropped.
func (s *Session) Load(ctx context.Context, filter models.WindowFilter) error {
	records, err := s.store.FetchWindow(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to fetch window: %w", err)
	}
	s.SetWindow(filter, records)
	return nil
}

// SetWindow replaces the window with already fetched records.
func (s *Session) SetWindow(filter models.WindowFilter, records []models.DailyRecord) {
	s.filter = filter
	s.records = records
	s.overrides = ledger.Overrides{}
	s.project()
}

func (s *Session) project() {
	s.projection = ledger.Project(s.records, s.overrides)
	s.metrics.RecordProjection(s.projection.Len())
}

func (s *Session) Filter() models.WindowFilter {
	return s.filter
}

func (s *Session) Projection() ledger.Projection {
	return s.projection
}

// Overrides returns a copy of the raw values typed so far.
func (s *Session) Overrides() ledger.Overrides {
	return s.overrides.Clone()
}

// ApplyEdit records the raw value, re-projects the whole window and writes the edited row in the
// background. The local state is kept when the write fails.
func (s *Session) ApplyEdit(ctx context.Context, edit Edit) (EditResult, error) {
	field, err := models.ParseManualField(string(edit.Field))
	if err != nil {
		return EditResult{}, err
	}
	edit.Field = field

	current, ok := s.projection.Find(edit.BatchID, edit.Date)
	if !ok {
		return EditResult{}, fmt.Errorf("%w: batch %d on %s", common.ErrRowNotInWindow, edit.BatchID, edit.Date)
	}
	if field == models.ManualFieldOpeningBalance && !current.Anchor {
		return EditResult{}, fmt.Errorf("%w: %s", common.ErrOpeningNotOnAnchor, edit.Date)
	}
	// overrides are keyed by date, so an edit on a shared date would land on every batch of it
	if n := rowsOn(s.projection, edit.Date); n > 1 {
		return EditResult{}, fmt.Errorf("%w: %d rows on %s", common.ErrDateSharedByBatches, n, edit.Date)
	}

	s.overrides.Set(edit.Date, field, edit.Value)
	s.project()

	row, _ := s.projection.Find(edit.BatchID, edit.Date)
	payload := buildPayload(row)

	return EditResult{
		Row:        row,
		Projection: s.projection,
		Payload:    payload,
		Persisted:  s.persist(ctx, edit, payload),
	}, nil
}

func rowsOn(p ledger.Projection, date civil.Date) int {
	n := 0
	for _, r := range p.Rows() {
		if r.Record.Date == date {
			n++
		}
	}
	return n
}

// buildPayload writes every persisted manual field of the row plus the fresh total;
// the opening balance only travels with the anchor.
func buildPayload(row ledger.Row) models.UpsertManualEntryIn {
	in := models.UpsertManualEntryIn{
		BatchID:         row.Record.BatchID,
		Date:            row.Record.Date,
		SettlementTotal: row.SettlementTotal,
	}
	for _, f := range models.PersistedManualFields {
		v := row.Values.Get(f)
		in.Fields.Set(f, &v)
	}
	if row.Anchor {
		opening := row.OpeningBalance
		in.Fields.OpeningBalance = &opening
	}
	return in
}

func (s *Session) persist(ctx context.Context, edit Edit, payload models.UpsertManualEntryIn) <-chan error {
	key := payload.Key()

	s.mu.Lock()
	s.seq++
	seq := s.seq
	s.pending[key] = pendingWrite{seq: seq}
	s.mu.Unlock()

	done := make(chan error, 1)
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer close(done)

		writeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.persistTimeout)
		defer cancel()

		err := s.store.UpsertManualEntry(writeCtx, payload)
		s.metrics.RecordUpsert(metrics.UpsertSourceEditSink, err)

		s.mu.Lock()
		if p, ok := s.pending[key]; ok && p.seq == seq {
			if err == nil {
				delete(s.pending, key)
			} else {
				s.pending[key] = pendingWrite{seq: seq, err: err}
			}
			s.keepInOutbox(ctx, payload, err)
		}
		s.mu.Unlock()

		if err != nil {
			s.onFailure(ctx, edit, err)
		}
		done <- err
	}()

	return done
}

func (s *Session) keepInOutbox(ctx context.Context, payload models.UpsertManualEntryIn, writeErr error) {
	if s.outbox == nil {
		return
	}
	var err error
	if writeErr != nil {
		err = s.outbox.Put(payload)
	} else {
		err = s.outbox.Remove(payload.Key())
	}
	if err != nil {
		log.Error(ctx, "[SALESBOARD.OUTBOX]", log.String("date", payload.Date.String()), log.Err(err))
	}
}

// Unsynced lists rows whose latest write is still in flight (nil error) or failed.
func (s *Session) Unsynced() map[models.ManualEntryKey]error {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[models.ManualEntryKey]error, len(s.pending))
	for k, p := range s.pending {
		out[k] = p.err
	}
	return out
}

// Wait blocks until every background write has finished.
func (s *Session) Wait() {
	s.wg.Wait()
}
