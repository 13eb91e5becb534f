package salesapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-resty/resty/v2"

	"github.com/viglianco/go-sales-ledger/internal/common/http/middleware"
	"github.com/viglianco/go-sales-ledger/internal/common/httpclient"
	"github.com/viglianco/go-sales-ledger/internal/common/metrics"
	"github.com/viglianco/go-sales-ledger/internal/config"
	"github.com/viglianco/go-sales-ledger/internal/models"
	"github.com/viglianco/go-sales-ledger/internal/monitoring"
	"github.com/viglianco/go-sales-ledger/internal/salesboard"
)

//go:generate mockgen -source=client.go -destination=mock/client.go -package=mock

var logMessage = "[SALES-API-CLIENT]"

type Client interface {
	salesboard.Store
	GetDailySales(ctx context.Context, filter models.WindowFilter) (*models.DailySalesOut, error)
}

type client struct {
	secretKey string
	wrapper   *httpclient.RequestWrapper
}

func New(configuration config.HTTPConfiguration, metrics metrics.Metrics) Client {
	return client{
		secretKey: configuration.SecretKey,
		wrapper:   httpclient.NewRequestWrapper(httpclient.NewRestyClient(configuration), metrics, ServiceName, logMessage),
	}
}

func filterParams(filter models.WindowFilter) map[string]string {
	params := make(map[string]string)
	if filter.BatchID != nil {
		params["batch_id"] = strconv.FormatInt(*filter.BatchID, 10)
	}
	if filter.Year > 0 {
		params["year"] = strconv.Itoa(filter.Year)
	}
	if filter.Month > 0 {
		params["month"] = strconv.Itoa(filter.Month)
	}
	if filter.DateFrom != nil {
		params["date_from"] = filter.DateFrom.String()
	}
	if filter.DateTo != nil {
		params["date_to"] = filter.DateTo.String()
	}
	return params
}

func (c client) GetDailySales(ctx context.Context, filter models.WindowFilter) (out *models.DailySalesOut, err error) {
	monitor := monitoring.New(ctx, monitoring.WithLayer(monitoring.LayerClient))
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	httpRes, err := c.wrapper.DoRequest(ctx, httpclient.Request{
		Method: http.MethodGet,
		Path:   pathDailySales,
		Prepare: func(r *resty.Request) *resty.Request {
			return r.
				SetHeader(middleware.SecretKeyHeader, c.secretKey).
				SetQueryParams(filterParams(filter))
		},
	})
	if err != nil {
		return nil, err
	}
	if httpRes.IsError() {
		return nil, toAPIError(httpRes)
	}

	out = new(models.DailySalesOut)
	if err = json.Unmarshal(httpRes.Body(), out); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}
	return out, nil
}

// FetchWindow loads the stored rows of a window for the edit sink.
func (c client) FetchWindow(ctx context.Context, filter models.WindowFilter) ([]models.DailyRecord, error) {
	out, err := c.GetDailySales(ctx, filter)
	if err != nil {
		return nil, err
	}
	return out.ToDailyRecords()
}

func (c client) UpsertManualEntry(ctx context.Context, in models.UpsertManualEntryIn) (err error) {
	monitor := monitoring.New(ctx, monitoring.WithLayer(monitoring.LayerClient))
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	httpRes, err := c.wrapper.DoRequest(ctx, httpclient.Request{
		Method: http.MethodPost,
		Path:   pathManualEntry,
		Prepare: func(r *resty.Request) *resty.Request {
			return r.
				SetHeader(middleware.SecretKeyHeader, c.secretKey).
				SetHeader("Content-Type", "application/json").
				SetBody(in.ToRequest())
		},
	})
	if err != nil {
		return err
	}
	if httpRes.IsError() {
		return toAPIError(httpRes)
	}
	return nil
}

func toAPIError(httpRes *resty.Response) error {
	apiErr := &APIError{
		StatusCode: httpRes.StatusCode(),
		Message:    string(httpRes.Body()),
	}

	var body errorResponse
	if err := json.Unmarshal(httpRes.Body(), &body); err == nil {
		apiErr.Code = fmt.Sprint(body.Code)
		apiErr.Message = body.Message
	}
	return apiErr
}
