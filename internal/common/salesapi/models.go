package salesapi

import (
	"fmt"

	"github.com/viglianco/go-sales-ledger/internal/common"
	"github.com/viglianco/go-sales-ledger/internal/models"
)

const ServiceName = "go-sales-ledger"

const (
	pathDailySales  = "/api/v1/sales/daily"
	pathManualEntry = "/api/v1/sales/manual"
)

type errorResponse struct {
	Status  string `json:"status"`
	Code    any    `json:"code"`
	Message string `json:"message"`
}

// APIError is a non 2xx answer of the sales API.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("sales api responded %d: code: %s, message: %s", e.StatusCode, e.Code, e.Message)
}

func (e *APIError) Unwrap() error {
	switch e.Code {
	case models.ErrKeyBatchNotFound:
		return common.ErrBatchNotFound
	case models.ErrKeyDataNotFound:
		return common.ErrDataNotFound
	}
	return nil
}
