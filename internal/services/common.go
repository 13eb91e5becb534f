package services

import (
	"errors"

	"github.com/viglianco/go-sales-ledger/internal/common"
	"github.com/viglianco/go-sales-ledger/internal/models"
)

// checkDatabaseError maps a repository error to its ErrorDetail; details pass through untouched.
func checkDatabaseError(err error) error {
	var detail models.ErrorDetail
	switch {
	case errors.As(err, &detail):
		return detail
	case errors.Is(err, common.ErrBatchNotFound):
		return models.GetErrMap(models.ErrKeyBatchNotFound)
	case errors.Is(err, common.ErrNoRows):
		return models.GetErrMap(models.ErrKeyDataNotFound)
	default:
		return models.GetErrMap(models.ErrKeyDatabaseError, err.Error())
	}
}
