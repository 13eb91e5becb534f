package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/viglianco/go-sales-ledger/internal/common/log"
)

// Context carries the caller's X-Correlation-Id into the request context, generating one when missing,
// and echoes it back on the response.
func (m AppMiddleware) Context() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			ctx := req.Context()
			if id := req.Header.Get(log.CorrelationIDHeader); id != "" {
				ctx = log.SetCorrelationID(ctx, id)
			}
			ctx = log.EnsureCorrelationID(ctx)

			c.SetRequest(req.WithContext(ctx))
			c.Response().Header().Set(log.CorrelationIDHeader, log.GetCorrelationID(ctx))
			return next(c)
		}
	}
}
