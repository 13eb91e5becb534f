package cache

import (
	"context"
	"errors"
	"time"

	"github.com/viglianco/go-sales-ledger/internal/common/log"
)

type Client[T any] interface {
	Get(ctx context.Context, key string) (T, error)
	Set(ctx context.Context, key string, object T, ttl time.Duration) error
	GetOrSet(ctx context.Context, opts GetOrSetOpts[T]) (T, error)
}

var (
	ErrNotExists           = errors.New("key not exists on cache storage")
	ErrCallbackNotProvided = errors.New("callback not provided")
	ErrInvalidType         = errors.New("invalid type result")
)

type GetOrSetOpts[T any] struct {
	Key      string
	TTL      time.Duration
	Callback func() (T, error)

	// OnLookup is told whether the key was served from the cache.
	OnLookup func(hit bool)
}

// getOrSet serves key from c or stores the callback's result. A broken cache degrades to
// calling the callback; only callback errors are returned.
func getOrSet[T any](ctx context.Context, c Client[T], opts GetOrSetOpts[T]) (result T, err error) {
	if opts.Callback == nil {
		return result, ErrCallbackNotProvided
	}
	observe := func(hit bool) {
		if opts.OnLookup != nil {
			opts.OnLookup(hit)
		}
	}

	obj, err := c.Get(ctx, opts.Key)
	if err == nil {
		observe(true)
		return obj, nil
	}
	observe(false)
	if !errors.Is(err, ErrNotExists) {
		log.Warn(ctx, "[CACHE.GET]", log.String("key", opts.Key), log.Err(err))
	}

	obj, err = opts.Callback()
	if err != nil {
		return result, err
	}

	if err = c.Set(ctx, opts.Key, obj, opts.TTL); err != nil {
		log.Warn(ctx, "[CACHE.SET]", log.String("key", opts.Key), log.Err(err))
	}
	return obj, nil
}
