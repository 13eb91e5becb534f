package retry

import (
	"context"

	"github.com/cenkalti/backoff/v4"

	"github.com/viglianco/go-sales-ledger/internal/common/log"
	"github.com/viglianco/go-sales-ledger/internal/config"
)

const DefaultMaxRetries uint64 = 3

type Retryer interface {
	Retry(ctx context.Context, operation func() error, fallback func(err error) error) error
	StopRetryWithErr(err error) error
}

type exponentialBackoff struct {
	cfg config.ExponentialBackOffConfig
}

/*
NewExponentialBackOff returns a Retryer backed by an exponential backoff.

Example:

	retryer.Retry(ctx, func() error { return repo.UpdateSettlementTotal(ctx, key, total) }, func(err error) error { return err })
*/
func NewExponentialBackOff(cfg config.ExponentialBackOffConfig) Retryer {
	if cfg.MaxBackoffTime < 0 {
		cfg.MaxBackoffTime = backoff.DefaultMaxElapsedTime
	}
	if cfg.BackoffMultiplier <= 0 {
		cfg.BackoffMultiplier = backoff.DefaultMultiplier
	}
	if cfg.MaxRetries == 0 {
		cfg.MaxRetries = DefaultMaxRetries
	}
	return &exponentialBackoff{cfg: cfg}
}

/*
Retry runs operation until it succeeds, the retries are exhausted, the context is done or
operation returns StopRetryWithErr.

When operation keeps failing, fallback is called with the last error and its result is returned.
A nil fallback returns the last error as is.
*/
func (r *exponentialBackoff) Retry(ctx context.Context, operation func() error, fallback func(err error) error) error {
	eb := backoff.NewExponentialBackOff()
	eb.MaxElapsedTime = r.cfg.MaxBackoffTime
	eb.Multiplier = r.cfg.BackoffMultiplier

	err := backoff.Retry(operation, backoff.WithContext(backoff.WithMaxRetries(eb, r.cfg.MaxRetries), ctx))
	if err == nil {
		return nil
	}

	log.Debugf(ctx, "retries exhausted with err: %v", err)
	if fallback == nil {
		return err
	}
	return fallback(err)
}

// StopRetryWithErr stops retrying and hands err to the fallback.
// Call it inside operation.
func (r *exponentialBackoff) StopRetryWithErr(err error) error {
	return backoff.Permanent(err)
}
