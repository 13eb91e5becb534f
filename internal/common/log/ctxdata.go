package log

import (
	"context"

	"github.com/google/uuid"
)

const (
	CorrelationIDKey    = "correlationId"
	CorrelationIDHeader = "X-Correlation-Id"
)

type correlationKey struct{}

func SetCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationKey{}, id)
}

func GetCorrelationID(ctx context.Context) string {
	id, _ := ctx.Value(correlationKey{}).(string)
	return id
}

// EnsureCorrelationID keeps an existing id or generates a new one.
func EnsureCorrelationID(ctx context.Context) context.Context {
	if GetCorrelationID(ctx) != "" {
		return ctx
	}
	return SetCorrelationID(ctx, uuid.NewString())
}
