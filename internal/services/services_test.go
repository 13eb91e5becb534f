package services_test

import (
	"fmt"
	"os"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"

	"github.com/viglianco/go-sales-ledger/internal/common/cache"
	"github.com/viglianco/go-sales-ledger/internal/common/log"
	"github.com/viglianco/go-sales-ledger/internal/common/metrics"
	"github.com/viglianco/go-sales-ledger/internal/common/publisher"
	mockPublisher "github.com/viglianco/go-sales-ledger/internal/common/publisher/mock"
	"github.com/viglianco/go-sales-ledger/internal/config"
	"github.com/viglianco/go-sales-ledger/internal/models"
	"github.com/viglianco/go-sales-ledger/internal/repositories"
	"github.com/viglianco/go-sales-ledger/internal/repositories/mock"
	"github.com/viglianco/go-sales-ledger/internal/services"
)

func TestMain(m *testing.M) {
	log.InitForTest()
	os.Exit(m.Run())
}

type testServiceHelper struct {
	mockCtrl                  *gomock.Controller
	config                    config.Config
	mockSQLRepository         *mock.MockSQLRepository
	mockSalesRepository       *mock.MockSalesRepository
	mockManualEntryRepository *mock.MockManualEntryRepository
	mockCacheRepository       *mock.MockCacheRepository
	mockPublisher             *mockPublisher.MockPublisher

	salesLedgerService services.SalesLedgerService
}

type helperOptions struct {
	windowCache bool
	redis       bool
	publisher   bool
}

type helperOption func(*helperOptions)

func withWindowCache(redis bool) helperOption {
	return func(o *helperOptions) {
		o.windowCache = true
		o.redis = redis
	}
}

func withPublisher() helperOption {
	return func(o *helperOptions) { o.publisher = true }
}

func serviceTestHelper(t *testing.T, opts ...helperOption) testServiceHelper {
	t.Helper()
	t.Parallel()

	o := helperOptions{}
	for _, opt := range opts {
		opt(&o)
	}

	mockCtrl := gomock.NewController(t)

	cfg := config.Config{
		ExponentialBackoff: config.ExponentialBackOffConfig{
			MaxRetries:        2,
			MaxBackoffTime:    time.Second,
			BackoffMultiplier: 1,
		},
	}

	helper := testServiceHelper{
		mockCtrl:                  mockCtrl,
		mockSQLRepository:         mock.NewMockSQLRepository(mockCtrl),
		mockSalesRepository:       mock.NewMockSalesRepository(mockCtrl),
		mockManualEntryRepository: mock.NewMockManualEntryRepository(mockCtrl),
		mockCacheRepository:       mock.NewMockCacheRepository(mockCtrl),
		mockPublisher:             mockPublisher.NewMockPublisher(mockCtrl),
	}
	helper.mockSQLRepository.EXPECT().GetSalesRepository().Return(helper.mockSalesRepository).AnyTimes()
	helper.mockSQLRepository.EXPECT().GetManualEntryRepository().Return(helper.mockManualEntryRepository).AnyTimes()

	var (
		cacheRepo   repositories.CacheRepository
		windowCache cache.Client[models.DailySalesOut]
		pub         publisher.Publisher
	)
	if o.windowCache {
		cfg.Ledger.CacheTTL = time.Minute
		inMemory := cache.NewInMemoryClient[models.DailySalesOut]()
		t.Cleanup(inMemory.Close)
		windowCache = inMemory
	}
	if o.redis {
		cacheRepo = helper.mockCacheRepository
	}
	if o.publisher {
		pub = helper.mockPublisher
	}
	helper.config = cfg

	srv := services.New(cfg, helper.mockSQLRepository, cacheRepo, windowCache, pub,
		metrics.NewWithRegisterer(prometheus.NewRegistry()))
	helper.salesLedgerService = srv.SalesLedger

	return helper
}

func day(n int) civil.Date {
	return civil.Date{Year: 2024, Month: time.January, Day: n}
}

func amount(v string) *decimal.Decimal {
	d := decimal.RequireFromString(v)
	return &d
}

// decimalEq matches a decimal.Decimal by value, ignoring its exponent.
type decimalEq struct {
	want decimal.Decimal
}

func (m decimalEq) Matches(x any) bool {
	d, ok := x.(decimal.Decimal)
	return ok && d.Equal(m.want)
}

func (m decimalEq) String() string {
	return fmt.Sprintf("is equal to %s", m.want)
}
