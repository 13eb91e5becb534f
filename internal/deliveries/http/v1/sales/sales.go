package sales

import (
	nethttp "net/http"

	"github.com/labstack/echo/v4"

	"github.com/viglianco/go-sales-ledger/internal/common/http"
	"github.com/viglianco/go-sales-ledger/internal/common/validation"
	"github.com/viglianco/go-sales-ledger/internal/models"
	"github.com/viglianco/go-sales-ledger/internal/services"
)

type salesHandler struct {
	salesLedgerSvc services.SalesLedgerService
}

// New sales handler will initialize the sales/ resources endpoint
func New(app *echo.Group, salesLedgerSvc services.SalesLedgerService) {
	handler := salesHandler{
		salesLedgerSvc: salesLedgerSvc,
	}
	api := app.Group("/sales")
	api.GET("/daily", handler.getDailySales)
	api.POST("/manual", handler.upsertManualEntry)
}

func bindDailySalesRequest(c echo.Context) (*models.DailySalesRequest, error) {
	req := new(models.DailySalesRequest)
	var batchID int64
	err := echo.QueryParamsBinder(c).
		Int64("batch_id", &batchID).
		Int("year", &req.Year).
		Int("month", &req.Month).
		String("date_from", &req.DateFrom).
		String("date_to", &req.DateTo).
		BindError()
	if err != nil {
		return nil, err
	}
	if c.QueryParam("batch_id") != "" {
		req.BatchID = &batchID
	}
	return req, nil
}

// getDailySales API get the daily sales window
// @Summary Get daily sales with manual balances
// @Description Get the projected daily ledger of a year, month, date range or upload batch
// @Tags Sales
// @Accept  json
// @Produce  json
// @Param batch_id query int false "upload batch id"
// @Param year query int false "year, defaults to the latest year with sales"
// @Param month query int false "month 1-12"
// @Param date_from query string false "YYYY-MM-DD"
// @Param date_to query string false "YYYY-MM-DD"
// @Success 200 {object} models.DailySalesOut
// @Failure 400 {object} http.RestErrorResponseModel
// @Failure 422 {object} http.RestErrorValidationResponseModel
// @Failure 500 {object} http.RestErrorResponseModel
// @Router /v1/sales/daily [get]
func (h *salesHandler) getDailySales(c echo.Context) error {
	req, err := bindDailySalesRequest(c)
	if err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
	}

	if err := validation.ValidateStruct(req); err != nil {
		return http.RestErrorValidationResponse(c, err)
	}

	filter, err := req.ToWindowFilter()
	if err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
	}

	res, err := h.salesLedgerSvc.GetDailySales(c.Request().Context(), filter)
	if err != nil {
		return http.RestErrorResponse(c, nethttp.StatusInternalServerError, err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusOK, res)
}

// upsertManualEntry API create or update the manual values of a day
// @Summary Upsert a manual entry
// @Description Stores the manual values and the settlement total of one (batch, date) row
// @Tags Sales
// @Accept  json
// @Produce  json
// @Param body body models.UpsertManualEntryRequest true "body"
// @Success 201 {object} models.ManualEntryOut
// @Failure 400 {object} http.RestErrorResponseModel
// @Failure 404 {object} http.RestErrorResponseModel
// @Failure 422 {object} http.RestErrorValidationResponseModel
// @Failure 500 {object} http.RestErrorResponseModel
// @Router /v1/sales/manual [post]
func (h *salesHandler) upsertManualEntry(c echo.Context) error {
	req := new(models.UpsertManualEntryRequest)

	if err := c.Bind(req); err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
	}

	if err := validation.ValidateStruct(req); err != nil {
		return http.RestErrorValidationResponse(c, err)
	}

	in, err := req.ToUpsertManualEntryIn()
	if err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
	}

	res, err := h.salesLedgerSvc.UpsertManualEntry(c.Request().Context(), in)
	if err != nil {
		return http.RestErrorResponse(c, nethttp.StatusInternalServerError, err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusCreated, res.ToManualEntryOut())
}
