package services

import (
	"github.com/viglianco/go-sales-ledger/internal/common/cache"
	"github.com/viglianco/go-sales-ledger/internal/common/idgenerator"
	"github.com/viglianco/go-sales-ledger/internal/common/metrics"
	"github.com/viglianco/go-sales-ledger/internal/common/publisher"
	"github.com/viglianco/go-sales-ledger/internal/common/retry"
	"github.com/viglianco/go-sales-ledger/internal/config"
	"github.com/viglianco/go-sales-ledger/internal/models"
	"github.com/viglianco/go-sales-ledger/internal/repositories"
)

type service struct {
	srv *Services
}

type Services struct {
	conf config.Config

	sqlRepo   repositories.SQLRepository
	cacheRepo repositories.CacheRepository

	// windowCache is nil when caching is disabled
	windowCache    cache.Client[models.DailySalesOut]
	windowVersions *windowVersions

	manualEntryPub publisher.Publisher
	idGenerator    idgenerator.Generator
	retryer        retry.Retryer
	metrics        metrics.Metrics

	common service

	SalesLedger *salesLedger
}

// New wires the services. cacheRepo, windowCache and manualEntryPub are optional.
func New(
	conf config.Config,
	sqlRepo repositories.SQLRepository,
	cacheRepo repositories.CacheRepository,
	windowCache cache.Client[models.DailySalesOut],
	manualEntryPub publisher.Publisher,
	metrics metrics.Metrics,
) *Services {
	srv := &Services{
		conf:           conf,
		sqlRepo:        sqlRepo,
		cacheRepo:      cacheRepo,
		windowCache:    windowCache,
		windowVersions: newWindowVersions(),
		manualEntryPub: manualEntryPub,
		idGenerator:    idgenerator.New(),
		retryer:        retry.NewExponentialBackOff(conf.ExponentialBackoff),
		metrics:        metrics,
	}
	srv.common.srv = srv
	srv.SalesLedger = (*salesLedger)(&srv.common)

	return srv
}

func (s *Services) ledgerMetrics() *metrics.LedgerPrometheusMetrics {
	if s.metrics == nil {
		return nil
	}
	return s.metrics.GetLedgerPrometheus()
}
