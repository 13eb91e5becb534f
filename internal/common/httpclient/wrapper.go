package httpclient

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/viglianco/go-sales-ledger/internal/common/log"
	"github.com/viglianco/go-sales-ledger/internal/common/metrics"
	"github.com/viglianco/go-sales-ledger/internal/config"
	"github.com/viglianco/go-sales-ledger/internal/models"
	"github.com/viglianco/go-sales-ledger/internal/monitoring"
)

// NewRestyClient builds a client that retries on RetryableHTTPCodes and reports external segments to New Relic.
func NewRestyClient(cfg config.HTTPConfiguration) *resty.Client {
	client := resty.New()
	return client.
		AddRetryCondition(func(r *resty.Response, err error) bool {
			if r == nil {
				return false
			}
			_, retryable := models.RetryableHTTPCodes[r.StatusCode()]
			return retryable
		}).
		SetTransport(monitoring.NewMiddlewareRoundTripper(client.GetClient().Transport)).
		SetBaseURL(cfg.BaseURL).
		SetRetryCount(cfg.RetryCount).
		SetRetryWaitTime(time.Duration(cfg.RetryWaitTime) * time.Millisecond).
		SetTimeout(cfg.Timeout)
}

type RequestWrapper struct {
	client      *resty.Client
	metrics     metrics.Metrics
	serviceName string
	logPrefix   string
}

func NewRequestWrapper(client *resty.Client, metrics metrics.Metrics, serviceName, logPrefix string) *RequestWrapper {
	return &RequestWrapper{
		client:      client,
		metrics:     metrics,
		serviceName: serviceName,
		logPrefix:   logPrefix,
	}
}

// Request describes one outgoing call. Endpoint is the path template used as the metrics label.
type Request struct {
	Method   string
	Path     string
	Endpoint string
	Prepare  func(*resty.Request) *resty.Request
}

// DoRequest sends the request with the correlation id of ctx and returns the raw response.
// Non 2xx responses are returned without error; the caller decides how to map them.
func (w *RequestWrapper) DoRequest(ctx context.Context, r Request) (*resty.Response, error) {
	startTime := time.Now()

	logFields := []log.Field{
		log.String("path", r.Path),
		log.String("method", r.Method),
	}
	log.Debug(ctx, w.logPrefix, append(logFields, log.String("message", "send request"))...)

	req := w.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetHeader(log.CorrelationIDHeader, log.GetCorrelationID(ctx))
	if r.Prepare != nil {
		req = r.Prepare(req)
	}

	var (
		httpRes *resty.Response
		err     error
	)
	switch r.Method {
	case http.MethodGet:
		httpRes, err = req.Get(r.Path)
	case http.MethodPost:
		httpRes, err = req.Post(r.Path)
	case http.MethodPut:
		httpRes, err = req.Put(r.Path)
	case http.MethodDelete:
		httpRes, err = req.Delete(r.Path)
	default:
		return nil, fmt.Errorf("unsupported HTTP method: %s", r.Method)
	}
	if err != nil {
		log.Warn(ctx, w.logPrefix, append(logFields, log.Err(err))...)
		return nil, fmt.Errorf("failed send request: %w", err)
	}

	endpoint := r.Endpoint
	if endpoint == "" {
		endpoint = r.Path
	}
	if w.metrics != nil {
		w.metrics.GetHTTPClientPrometheus().Record(time.Since(startTime), w.serviceName, r.Method, endpoint, httpRes.StatusCode())
	}

	logFields = append(logFields,
		log.Int("httpStatusCode", httpRes.StatusCode()),
		log.Duration("elapsed", httpRes.Time()))

	if httpRes.IsError() {
		log.Warn(ctx, w.logPrefix, append(logFields, log.String("httpResponse", string(httpRes.Body())))...)
	} else {
		log.Info(ctx, w.logPrefix, logFields...)
	}

	return httpRes, nil
}
