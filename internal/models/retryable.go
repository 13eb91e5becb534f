package models

import (
	"net/http"
)

// RetryableHTTPCodes are upstream statuses worth another attempt.
var RetryableHTTPCodes = map[int]struct{}{
	http.StatusTooManyRequests:     {},
	http.StatusInternalServerError: {},
	http.StatusBadGateway:          {},
	http.StatusServiceUnavailable:  {},
	http.StatusGatewayTimeout:      {},
}
