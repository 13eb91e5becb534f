package common

import (
	"database/sql"
	"errors"
	"fmt"
)

var (
	ErrNoRowsAffected      = errors.New("no rows affected")
	ErrValidation          = errors.New("validation failed")
	ErrDataNotFound        = errors.New("data not found")
	ErrInternalServerError = errors.New("internal server error")
	ErrInvalidFormatDate   = errors.New("invalid format date")
	ErrNoRows              = sql.ErrNoRows

	ErrBatchNotFound       = errors.New("batch not found")
	ErrUnknownManualField  = errors.New("unknown manual field")
	ErrRowNotInWindow      = errors.New("row not in window")
	ErrOpeningNotOnAnchor  = errors.New("opening balance is only editable on the first row of the window")
	ErrDateSharedByBatches = errors.New("date has rows from more than one batch")
	ErrNoSalesYears        = errors.New("no sales data available")
	ErrPublisherNotEnabled = errors.New("publisher not enabled")
)

type WrapError struct {
	Causer interface{}
	Err    error
}

func (e WrapError) Error() string {
	return fmt.Sprintf("%v, root cause: %v", e.Causer, e.Err)
}

func (e WrapError) Unwrap() error {
	return e.Err
}
