package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/viglianco/go-sales-ledger/internal/common"
	"github.com/viglianco/go-sales-ledger/internal/common/log"
	"github.com/viglianco/go-sales-ledger/internal/models"
)

const windowVersionKeyFormat = "sales:daily:version:%d"

// windowVersions counts invalidations per year when no redis is configured.
type windowVersions struct {
	mu       sync.Mutex
	versions map[int]int64
}

func newWindowVersions() *windowVersions {
	return &windowVersions{versions: make(map[int]int64)}
}

func (w *windowVersions) get(year int) int64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.versions[year]
}

func (w *windowVersions) bump(year int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.versions[year]++
}

// windowCacheKey identifies a resolved window. Year is always set, so a window never spans two versions.
func windowCacheKey(version string, filter models.WindowFilter) string {
	parts := []string{
		"daily",
		"v" + version,
		"y" + strconv.Itoa(filter.Year),
		"m" + strconv.Itoa(filter.Month),
	}
	if filter.BatchID != nil {
		parts = append(parts, "b"+strconv.FormatInt(*filter.BatchID, 10))
	}
	if filter.DateFrom != nil {
		parts = append(parts, "f"+filter.DateFrom.String())
	}
	if filter.DateTo != nil {
		parts = append(parts, "t"+filter.DateTo.String())
	}
	return strings.Join(parts, ":")
}

func (s *salesLedger) windowVersion(ctx context.Context, year int) string {
	if s.srv.cacheRepo == nil {
		return strconv.FormatInt(s.srv.windowVersions.get(year), 10)
	}

	v, err := s.srv.cacheRepo.Get(ctx, fmt.Sprintf(windowVersionKeyFormat, year))
	if err != nil {
		if !errors.Is(err, common.ErrDataNotFound) {
			log.Warn(ctx, "[CACHE.VERSION.GET]", log.Int("year", year), log.Err(err))
		}
		return "0"
	}
	return v
}

// invalidateWindows drops every cached window of year.
func (s *salesLedger) invalidateWindows(ctx context.Context, year int) {
	if s.srv.cacheRepo == nil {
		s.srv.windowVersions.bump(year)
		return
	}

	if _, err := s.srv.cacheRepo.Incr(ctx, fmt.Sprintf(windowVersionKeyFormat, year)); err != nil {
		log.Warn(ctx, "[CACHE.VERSION.INCR]", log.Int("year", year), log.Err(err))
	}
}
