package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/hashicorp/go-multierror"
	"github.com/labstack/echo/v4"

	"github.com/viglianco/go-sales-ledger/internal/common"
	"github.com/viglianco/go-sales-ledger/internal/models"
)

type (
	RestErrorResponseModel struct {
		Status  string `json:"status" example:"error"`
		Code    any    `json:"code"`
		Message string `json:"message" example:"error"`
	}

	RestErrorValidationResponseModel struct {
		Status  string `json:"status" example:"error"`
		Message string `json:"message" example:"validation error"`
		Errors  any    `json:"errors"`
	}
)

func RestSuccessResponse(c echo.Context, code int, in any) error {
	return c.JSON(code, in)
}

// RestErrorResponse writes err with statusCode. A models.ErrorDetail found in the chain
// replaces the code and, when it carries one, the status.
func RestErrorResponse(c echo.Context, statusCode int, err error) error {
	res := RestErrorResponseModel{
		Status:  "error",
		Code:    statusCode,
		Message: err.Error(),
	}

	var echoErr *echo.HTTPError
	if errors.As(err, &echoErr) {
		res.Code = echoErr.Code
		res.Message = fmt.Sprint(echoErr.Message)
	}

	var detail models.ErrorDetail
	if errors.As(err, &detail) {
		res.Code = detail.Code
		res.Message = detail.ErrorMessage.Error()
		if detail.HTTPStatus != 0 {
			statusCode = detail.HTTPStatus
		}
	}
	return c.JSON(statusCode, res)
}

func RestErrorValidationResponse(c echo.Context, err error) error {
	res := RestErrorValidationResponseModel{
		Status:  "error",
		Message: common.ErrValidation.Error(),
	}
	var merr *multierror.Error
	if errors.As(err, &merr) {
		res.Errors = merr.Errors
	}

	return c.JSON(http.StatusUnprocessableEntity, res)
}
