package middleware

import (
	"crypto/subtle"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	commonhttp "github.com/viglianco/go-sales-ledger/internal/common/http"
)

const SecretKeyHeader = "X-Secret-Key"

// InternalAuth rejects requests without the configured X-Secret-Key.
func (m AppMiddleware) InternalAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		secretKey := c.Request().Header.Get(SecretKeyHeader)
		if secretKey == "" {
			return commonhttp.RestErrorResponse(c, http.StatusUnauthorized, errors.New("required secret key"))
		}
		if subtle.ConstantTimeCompare([]byte(secretKey), []byte(m.conf.SecretKey)) != 1 {
			return commonhttp.RestErrorResponse(c, http.StatusUnauthorized, errors.New("invalid secret key"))
		}
		return next(c)
	}
}
