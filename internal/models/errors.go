package models

import (
	"errors"
	"fmt"
	"net/http"
)

type (
	MapErrs     map[string]ErrorDetail
	ErrorDetail struct {
		Code         string `json:"code,omitempty"`
		HTTPStatus   int    `json:"-"`
		ErrorMessage error  `json:"message,omitempty"`
	}
)

func (e ErrorDetail) Error() string {
	return fmt.Sprintf("code: %s, message: %v", e.Code, e.ErrorMessage)
}

const (
	ErrKeyDataNotFound        = "DATA_NOT_FOUND"
	ErrKeyDatabaseError       = "DATABASE_ERROR"
	ErrKeyBatchNotFound       = "BATCH_NOT_FOUND"
	ErrKeyInvalidDate         = "INVALID_DATE"
	ErrKeyInvalidWindowFilter = "INVALID_WINDOW_FILTER"
	ErrKeyCacheError          = "CACHE_ERROR"
)

var MapErrors = MapErrs{
	ErrKeyDataNotFound: {
		Code:         ErrKeyDataNotFound,
		HTTPStatus:   http.StatusNotFound,
		ErrorMessage: errors.New("data not found"),
	},
	ErrKeyDatabaseError: {
		Code:         ErrKeyDatabaseError,
		HTTPStatus:   http.StatusInternalServerError,
		ErrorMessage: errors.New("database error"),
	},
	ErrKeyBatchNotFound: {
		Code:         ErrKeyBatchNotFound,
		HTTPStatus:   http.StatusNotFound,
		ErrorMessage: errors.New("upload batch not found"),
	},
	ErrKeyInvalidDate: {
		Code:         ErrKeyInvalidDate,
		HTTPStatus:   http.StatusBadRequest,
		ErrorMessage: errors.New("invalid date, expected YYYY-MM-DD"),
	},
	ErrKeyInvalidWindowFilter: {
		Code:         ErrKeyInvalidWindowFilter,
		HTTPStatus:   http.StatusBadRequest,
		ErrorMessage: errors.New("invalid window filter"),
	},
	ErrKeyCacheError: {
		Code:         ErrKeyCacheError,
		HTTPStatus:   http.StatusInternalServerError,
		ErrorMessage: errors.New("cache error"),
	},
}

func GetErrMap(code string, args ...string) ErrorDetail {
	v, ok := MapErrors[code]
	if !ok {
		return ErrorDetail{
			Code:         code,
			HTTPStatus:   http.StatusInternalServerError,
			ErrorMessage: errors.New("unknown error mapping"),
		}
	}
	if len(args) > 0 {
		v.ErrorMessage = fmt.Errorf("%s caused by %s", v.ErrorMessage, args[0])
	}

	return v
}
