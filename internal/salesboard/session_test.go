package salesboard_test

import (
	"context"
	"errors"
	"os"
	"sync"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/viglianco/go-sales-ledger/internal/common"
	"github.com/viglianco/go-sales-ledger/internal/common/log"
	"github.com/viglianco/go-sales-ledger/internal/common/matcher"
	salesapimock "github.com/viglianco/go-sales-ledger/internal/common/salesapi/mock"
	"github.com/viglianco/go-sales-ledger/internal/ledger"
	"github.com/viglianco/go-sales-ledger/internal/models"
	"github.com/viglianco/go-sales-ledger/internal/salesboard"
	"github.com/viglianco/go-sales-ledger/internal/salesboard/mock"
)

func TestMain(m *testing.M) {
	log.InitForTest()
	os.Exit(m.Run())
}

// backgroundWriteCtx matches the context of a write started with the default persist timeout.
var backgroundWriteCtx = matcher.ContextWithTimeoutRange(9*time.Second, 10*time.Second)

func day(n int) civil.Date {
	return civil.Date{Year: 2024, Month: time.January, Day: n}
}

func amount(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func window() []models.DailyRecord {
	return []models.DailyRecord{
		{
			Date:    day(1),
			BatchID: 1,
			Sales:   decimal.NewFromInt(1000),
			Manual: models.ManualFields{
				OpeningBalance: amount(500),
				ClosingBalance: amount(300),
			},
		},
		{Date: day(2), BatchID: 1, Sales: decimal.NewFromInt(1200)},
		{Date: day(3), BatchID: 1, Sales: decimal.NewFromInt(900)},
	}
}

type testSessionHelper struct {
	mockStore *mock.MockStore
	session   *salesboard.Session
	filter    models.WindowFilter
}

func sessionTestHelper(t *testing.T, opts ...salesboard.Option) testSessionHelper {
	t.Helper()

	mockCtrl := gomock.NewController(t)
	mockStore := mock.NewMockStore(mockCtrl)

	filter := models.WindowFilter{Year: 2024, Month: 1}
	s := salesboard.NewSession(mockStore, opts...)
	s.SetWindow(filter, window())

	return testSessionHelper{
		mockStore: mockStore,
		session:   s,
		filter:    filter,
	}
}

func TestSession_ApplyEdit(t *testing.T) {
	type args struct {
		edit salesboard.Edit
	}
	tests := []struct {
		name         string
		args         args
		doMock       func(h testSessionHelper)
		wantErr      error
		wantTotals   []string
		wantOpening  *decimal.Decimal
		wantClosing  string
		wantPayments string
	}{
		{
			name: "success - closing balance cascades into next opening",
			args: args{edit: salesboard.Edit{BatchID: 1, Date: day(2), Field: "closingBalance", Value: "200"}},
			doMock: func(h testSessionHelper) {
				h.mockStore.EXPECT().
					UpsertManualEntry(backgroundWriteCtx, gomock.Any()).
					Return(nil)
			},
			wantTotals:   []string{"1200", "1300", "1100"},
			wantClosing:  "200",
			wantPayments: "0",
		},
		{
			name: "success - legacy field name and grouped amount",
			args: args{edit: salesboard.Edit{BatchID: 1, Date: day(3), Field: "pagos", Value: "$ 1.234,50"}},
			doMock: func(h testSessionHelper) {
				h.mockStore.EXPECT().
					UpsertManualEntry(backgroundWriteCtx, gomock.Any()).
					Return(nil)
			},
			wantTotals:   []string{"1200", "1500", "2134.5"},
			wantClosing:  "0",
			wantPayments: "1234.5",
		},
		{
			name: "success - opening balance on the anchor travels with the payload",
			args: args{edit: salesboard.Edit{BatchID: 1, Date: day(1), Field: models.ManualFieldOpeningBalance, Value: "700"}},
			doMock: func(h testSessionHelper) {
				h.mockStore.EXPECT().
					UpsertManualEntry(backgroundWriteCtx, gomock.Any()).
					Return(nil)
			},
			wantTotals:   []string{"1400", "1500", "900"},
			wantOpening:  amount(700),
			wantClosing:  "300",
			wantPayments: "0",
		},
		{
			name:    "error - unknown field",
			args:    args{edit: salesboard.Edit{BatchID: 1, Date: day(2), Field: "tips", Value: "1"}},
			wantErr: common.ErrUnknownManualField,
		},
		{
			name:    "error - row not in window",
			args:    args{edit: salesboard.Edit{BatchID: 2, Date: day(2), Field: models.ManualFieldPayments, Value: "1"}},
			wantErr: common.ErrRowNotInWindow,
		},
		{
			name:    "error - opening balance on a later row",
			args:    args{edit: salesboard.Edit{BatchID: 1, Date: day(2), Field: models.ManualFieldOpeningBalance, Value: "1"}},
			wantErr: common.ErrOpeningNotOnAnchor,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := sessionTestHelper(t)
			if tt.doMock != nil {
				tt.doMock(h)
			}

			res, err := h.session.ApplyEdit(context.Background(), tt.args.edit)
			h.session.Wait()

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, h.session.Overrides())
				assert.Equal(t, "1500", mustRow(t, h.session, day(2)).SettlementTotal.String())
				return
			}
			require.NoError(t, err)

			var totals []string
			for _, row := range res.Projection.Rows() {
				totals = append(totals, row.SettlementTotal.String())
			}
			assert.Equal(t, tt.wantTotals, totals)

			p := res.Payload
			assert.Equal(t, tt.args.edit.Date, p.Date)
			assert.True(t, p.SettlementTotal.Equal(res.Row.SettlementTotal))
			for _, f := range models.PersistedManualFields {
				assert.NotNil(t, p.Fields.Get(f), "field %s", f)
			}
			assert.Equal(t, tt.wantClosing, p.Fields.ClosingBalance.String())
			assert.Equal(t, tt.wantPayments, p.Fields.Payments.String())
			if tt.wantOpening != nil {
				require.NotNil(t, p.Fields.OpeningBalance)
				assert.True(t, p.Fields.OpeningBalance.Equal(*tt.wantOpening))
			}

			assert.NoError(t, <-res.Persisted)
			assert.Empty(t, h.session.Unsynced())
		})
	}
}

func mustRow(t *testing.T, s *salesboard.Session, date civil.Date) ledger.Row {
	t.Helper()
	row, ok := s.Projection().Row(date)
	require.True(t, ok)
	return row
}

func TestSession_ApplyEdit_SharedDate(t *testing.T) {
	h := sessionTestHelper(t)
	records := append(window(), models.DailyRecord{Date: day(2), BatchID: 2, Sales: decimal.NewFromInt(50)})
	h.session.SetWindow(h.filter, records)

	for _, batchID := range []int64{1, 2} {
		_, err := h.session.ApplyEdit(context.Background(), salesboard.Edit{
			BatchID: batchID, Date: day(2), Field: models.ManualFieldPayments, Value: "10",
		})
		assert.ErrorIs(t, err, common.ErrDateSharedByBatches)
	}
	h.session.Wait()
	assert.Empty(t, h.session.Overrides())
	assert.Empty(t, h.session.Unsynced())

	// the other dates stay editable
	h.mockStore.EXPECT().UpsertManualEntry(backgroundWriteCtx, gomock.Any()).Return(nil)
	res, err := h.session.ApplyEdit(context.Background(), salesboard.Edit{
		BatchID: 1, Date: day(3), Field: models.ManualFieldPayments, Value: "10",
	})
	require.NoError(t, err)
	assert.NoError(t, <-res.Persisted)
}

func TestSession_ApplyEdit_PayloadOpening(t *testing.T) {
	h := sessionTestHelper(t)

	var mu sync.Mutex
	written := map[civil.Date]models.UpsertManualEntryIn{}
	h.mockStore.EXPECT().
		UpsertManualEntry(backgroundWriteCtx, gomock.Any()).
		DoAndReturn(func(_ context.Context, in models.UpsertManualEntryIn) error {
			mu.Lock()
			defer mu.Unlock()
			written[in.Date] = in
			return nil
		}).Times(2)

	_, err := h.session.ApplyEdit(context.Background(), salesboard.Edit{BatchID: 1, Date: day(1), Field: models.ManualFieldVouchers, Value: "10"})
	require.NoError(t, err)
	_, err = h.session.ApplyEdit(context.Background(), salesboard.Edit{BatchID: 1, Date: day(3), Field: models.ManualFieldVouchers, Value: "10"})
	require.NoError(t, err)
	h.session.Wait()

	require.Len(t, written, 2)
	require.NotNil(t, written[day(1)].Fields.OpeningBalance)
	assert.Equal(t, "500", written[day(1)].Fields.OpeningBalance.String())
	assert.Nil(t, written[day(3)].Fields.OpeningBalance)
	assert.Equal(t, "890", written[day(3)].SettlementTotal.String())
}

func TestSession_ApplyEdit_PersistFailure(t *testing.T) {
	storeErr := errors.New("connection refused")

	var (
		hookMu    sync.Mutex
		hookCalls []salesboard.Edit
	)
	hook := func(_ context.Context, edit salesboard.Edit, err error) {
		hookMu.Lock()
		defer hookMu.Unlock()
		assert.ErrorIs(t, err, storeErr)
		hookCalls = append(hookCalls, edit)
	}

	h := sessionTestHelper(t, salesboard.WithFailureHook(hook), salesboard.WithPersistTimeout(time.Second))
	h.mockStore.EXPECT().
		UpsertManualEntry(matcher.ContextWithTimeoutRange(0, time.Second), gomock.Any()).
		Return(storeErr)

	res, err := h.session.ApplyEdit(context.Background(), salesboard.Edit{BatchID: 1, Date: day(2), Field: models.ManualFieldExpenses, Value: "100"})
	require.NoError(t, err)
	assert.ErrorIs(t, <-res.Persisted, storeErr)
	h.session.Wait()

	// the typed value stays on screen
	assert.Equal(t, "100", h.session.Overrides()[day(2)][models.ManualFieldExpenses])
	row, ok := h.session.Projection().Row(day(2))
	require.True(t, ok)
	assert.Equal(t, "1400", row.SettlementTotal.String())

	unsynced := h.session.Unsynced()
	require.Len(t, unsynced, 1)
	assert.ErrorIs(t, unsynced[models.ManualEntryKey{BatchID: 1, Date: day(2)}], storeErr)

	hookMu.Lock()
	defer hookMu.Unlock()
	require.Len(t, hookCalls, 1)
	assert.Equal(t, models.ManualFieldExpenses, hookCalls[0].Field)
}

func TestSession_ApplyEdit_LatestWriteWins(t *testing.T) {
	h := sessionTestHelper(t)

	release := make(chan struct{})
	h.mockStore.EXPECT().
		UpsertManualEntry(backgroundWriteCtx, gomock.Any()).
		DoAndReturn(func(_ context.Context, in models.UpsertManualEntryIn) error {
			if in.Fields.Debits.Equal(decimal.NewFromInt(1)) {
				<-release
				return errors.New("timeout")
			}
			return nil
		}).Times(2)

	first, err := h.session.ApplyEdit(context.Background(), salesboard.Edit{BatchID: 1, Date: day(2), Field: models.ManualFieldDebits, Value: "1"})
	require.NoError(t, err)
	second, err := h.session.ApplyEdit(context.Background(), salesboard.Edit{BatchID: 1, Date: day(2), Field: models.ManualFieldDebits, Value: "2"})
	require.NoError(t, err)

	assert.NoError(t, <-second.Persisted)
	close(release)
	assert.Error(t, <-first.Persisted)
	h.session.Wait()

	assert.Empty(t, h.session.Unsynced())
}

func TestSession_Load(t *testing.T) {
	h := sessionTestHelper(t)
	h.mockStore.EXPECT().
		UpsertManualEntry(backgroundWriteCtx, gomock.Any()).
		Return(nil)

	_, err := h.session.ApplyEdit(context.Background(), salesboard.Edit{BatchID: 1, Date: day(3), Field: models.ManualFieldPayments, Value: "5"})
	require.NoError(t, err)
	h.session.Wait()
	require.NotEmpty(t, h.session.Overrides())

	next := models.WindowFilter{Year: 2024, Month: 1, DateFrom: ptr(day(2))}
	h.mockStore.EXPECT().
		FetchWindow(gomock.AssignableToTypeOf(context.Background()), next).
		Return(window()[1:], nil)

	require.NoError(t, h.session.Load(context.Background(), next))
	assert.Empty(t, h.session.Overrides())
	assert.Equal(t, next, h.session.Filter())

	anchor, ok := h.session.Projection().Anchor()
	require.True(t, ok)
	assert.Equal(t, day(2), anchor.Record.Date)
	assert.Equal(t, "1200", anchor.SettlementTotal.String())

	h.mockStore.EXPECT().
		FetchWindow(gomock.AssignableToTypeOf(context.Background()), gomock.Any()).
		Return(nil, errors.New("boom"))
	assert.Error(t, h.session.Load(context.Background(), h.filter))
	assert.Equal(t, 2, h.session.Projection().Len())
}

func ptr[T any](v T) *T {
	return &v
}

func TestSession_SalesAPIClientStore(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	client := salesapimock.NewMockClient(mockCtrl)
	filter := models.WindowFilter{Year: 2024}

	client.EXPECT().
		FetchWindow(gomock.AssignableToTypeOf(context.Background()), filter).
		Return(window(), nil)
	client.EXPECT().
		UpsertManualEntry(backgroundWriteCtx, gomock.Any()).
		DoAndReturn(func(_ context.Context, in models.UpsertManualEntryIn) error {
			assert.Equal(t, day(1), in.Date)
			assert.Equal(t, "1400", in.SettlementTotal.String())
			return nil
		})

	s := salesboard.NewSession(client)
	require.NoError(t, s.Load(context.Background(), filter))

	res, err := s.ApplyEdit(context.Background(), salesboard.Edit{BatchID: 1, Date: day(1), Field: models.ManualFieldClosingBalance, Value: "100"})
	require.NoError(t, err)
	require.NoError(t, <-res.Persisted)

	row, ok := res.Projection.Row(day(2))
	require.True(t, ok)
	assert.Equal(t, "100", row.OpeningBalance.String())
}
