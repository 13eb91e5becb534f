package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// latencyBuckets are shared by every duration histogram of the service, in seconds.
var latencyBuckets = []float64{0, 0.0001, 0.001, 0.010, 0.100, 0.200, 0.500, 1, 2, 5, 10, 100, 1000}

func newLatencyHistogram(reg prometheus.Registerer, name, help string, labels ...string) *prometheus.HistogramVec {
	hist := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    name,
		Help:    help,
		Buckets: latencyBuckets,
	}, labels)
	reg.MustRegister(hist)
	return hist
}

// HTTPClientPrometheusMetrics times calls to other services, e.g. the sales API from the board.
type HTTPClientPrometheusMetrics struct {
	requestDuration *prometheus.HistogramVec
}

func newHTTPClientPrometheusMetrics(reg prometheus.Registerer) *HTTPClientPrometheusMetrics {
	return &HTTPClientPrometheusMetrics{
		requestDuration: newLatencyHistogram(reg,
			"external_api_request_duration_seconds",
			"Duration of external API requests in seconds.",
			"service", "method", "endpoint", "response_code"),
	}
}

func (m *HTTPClientPrometheusMetrics) Record(duration time.Duration, service, method, endpoint string, statusCode int) {
	if m == nil {
		return
	}
	m.requestDuration.WithLabelValues(service, method, endpoint, strconv.Itoa(statusCode)).
		Observe(duration.Seconds())
}

// PublisherPrometheusMetrics times manual entry events sent to kafka.
type PublisherPrometheusMetrics struct {
	publishDuration *prometheus.HistogramVec
}

func newPublisherPrometheusMetrics(reg prometheus.Registerer) *PublisherPrometheusMetrics {
	return &PublisherPrometheusMetrics{
		publishDuration: newLatencyHistogram(reg,
			"kafka_publisher_duration_seconds",
			"Duration of Kafka message publishing in seconds.",
			"topic", "success"),
	}
}

func (m *PublisherPrometheusMetrics) GenerateMetrics(startTime time.Time, topic string, processErr error) {
	if m == nil {
		return
	}
	m.publishDuration.WithLabelValues(topic, strconv.FormatBool(processErr == nil)).
		Observe(time.Since(startTime).Seconds())
}
