// Package matcher holds gomock matchers shared by tests.
package matcher

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/mock/gomock"
)

type deadlineMatcher struct {
	min, max time.Duration
}

func (m deadlineMatcher) Matches(x any) bool {
	ctx, ok := x.(context.Context)
	if !ok {
		return false
	}
	deadline, ok := ctx.Deadline()
	if !ok {
		return false
	}
	remaining := time.Until(deadline)
	return remaining > 0 && remaining >= m.min && remaining <= m.max
}

func (m deadlineMatcher) String() string {
	return fmt.Sprintf("context with deadline in [%s, %s]", m.min, m.max)
}

// ContextWithTimeoutRange matches a context whose remaining time is within [min, max].
func ContextWithTimeoutRange(min, max time.Duration) gomock.Matcher {
	return deadlineMatcher{min: min, max: max}
}
