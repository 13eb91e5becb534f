package ledger_reconciler

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/Shopify/sarama"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/viglianco/go-sales-ledger/internal/common/log"
	"github.com/viglianco/go-sales-ledger/internal/models"
	"github.com/viglianco/go-sales-ledger/internal/services/mock"
)

type fakeSession struct {
	ctx context.Context

	mu     sync.Mutex
	marked []int64
}

func (s *fakeSession) Claims() map[string][]int32 { return nil }
func (s *fakeSession) MemberID() string { return "member" }
func (s *fakeSession) GenerationID() int32 { return 1 }
func (s *fakeSession) MarkOffset(string, int32, int64, string) {}
func (s *fakeSession) Commit() {}
func (s *fakeSession) ResetOffset(string, int32, int64, string) {}
func (s *fakeSession) Context() context.Context { return s.ctx }
func (s *fakeSession) MarkMessage(msg *sarama.ConsumerMessage, _ string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.marked = append(s.marked, msg.Offset)
}

type fakeClaim struct {
	messages chan *sarama.ConsumerMessage
}

func (c *fakeClaim) Topic() string { return "sales.manual_entry.changed" }
func (c *fakeClaim) Partition() int32 { return 0 }
func (c *fakeClaim) InitialOffset() int64 { return 0 }
func (c *fakeClaim) HighWaterMarkOffset() int64 { return 0 }
func (c *fakeClaim) Messages() <-chan *sarama.ConsumerMessage { return c.messages }

func newClaim(values ...string) *fakeClaim {
	c := &fakeClaim{messages: make(chan *sarama.ConsumerMessage, len(values))}
	for i, v := range values {
		c.messages <- &sarama.ConsumerMessage{
			Topic:  "sales.manual_entry.changed",
			Offset: int64(i),
			Key:    []byte("1:2024-01-02"),
			Value:  []byte(v),
			Headers: []*sarama.RecordHeader{
				{Key: []byte(log.CorrelationIDHeader), Value: []byte("corr-1")},
			},
		}
	}
	close(c.messages)
	return c
}

const changedEvent = `{"batchId":1,"date":"2024-01-02","fields":{"payments":"50.00"},"settlementTotal":"1450.00","openingIncluded":false,"changedAt":"2024-01-02T10:00:00Z"}`

func TestHandler_ConsumeClaim(t *testing.T) {
	log.InitForTest()

	tests := []struct {
		name     string
		values   []string
		doMock   func(sls *mock.MockSalesLedgerService)
		wantMark []int64
	}{
		{
			name:   "reconciles the rows after the changed one",
			values: []string{changedEvent},
			doMock: func(sls *mock.MockSalesLedgerService) {
				sls.EXPECT().
					ReconcileFollowing(gomock.Any(), models.ManualEntryKey{BatchID: 1, Date: civil.Date{Year: 2024, Month: time.January, Day: 2}}).
					DoAndReturn(func(ctx context.Context, _ models.ManualEntryKey) (*models.ReconcileTotalsOut, error) {
						assert.Equal(t, "corr-1", log.GetCorrelationID(ctx))
						return &models.ReconcileTotalsOut{Checked: 3, Updated: 1, Dates: []string{"2024-01-03"}}, nil
					})
			},
			wantMark: []int64{0},
		},
		{
			name:     "bad payloads are nacked and skipped",
			values:   []string{`{"batchId":`, `{"batchId":1,"date":"02/01/2024"}`},
			doMock:   func(sls *mock.MockSalesLedgerService) {},
			wantMark: []int64{0, 1},
		},
		{
			name:   "service failure does not stop the claim",
			values: []string{changedEvent, changedEvent},
			doMock: func(sls *mock.MockSalesLedgerService) {
				gomock.InOrder(
					sls.EXPECT().ReconcileFollowing(gomock.Any(), gomock.Any()).
						Return(nil, models.GetErrMap(models.ErrKeyDatabaseError, "timeout")),
					sls.EXPECT().ReconcileFollowing(gomock.Any(), gomock.Any()).
						Return(&models.ReconcileTotalsOut{Dates: []string{}}, nil),
				)
			},
			wantMark: []int64{0, 1},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			sls := mock.NewMockSalesLedgerService(ctrl)
			tt.doMock(sls)

			h := NewHandler("client", sls, nil)
			session := &fakeSession{ctx: context.Background()}

			require.NoError(t, h.Setup(session))
			require.NoError(t, h.ConsumeClaim(session, newClaim(tt.values...)))
			require.NoError(t, h.Cleanup(session))
			assert.Equal(t, tt.wantMark, session.marked)
		})
	}
}

func TestHandler_ConsumeClaim_StopsOnSessionDone(t *testing.T) {
	log.InitForTest()
	ctrl := gomock.NewController(t)
	sls := mock.NewMockSalesLedgerService(ctrl)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	h := NewHandler("client", sls, nil)
	claim := &fakeClaim{messages: make(chan *sarama.ConsumerMessage)}
	assert.NoError(t, h.ConsumeClaim(&fakeSession{ctx: ctx}, claim))
}

func TestProcessMessage_Error(t *testing.T) {
	log.InitForTest()
	ctrl := gomock.NewController(t)
	sls := mock.NewMockSalesLedgerService(ctrl)
	sls.EXPECT().ReconcileFollowing(gomock.Any(), gomock.Any()).Return(nil, errors.New("boom"))

	h := NewHandler("client", sls, nil)
	err := h.processMessage(context.Background(), &sarama.ConsumerMessage{Value: []byte(changedEvent)})
	assert.EqualError(t, err, "unable to reconcile totals after 2024-01-02: boom")
}
