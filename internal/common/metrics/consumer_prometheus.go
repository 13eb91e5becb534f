package metrics

import (
	"strconv"
	"time"

	"github.com/Shopify/sarama"
	prometheusmetrics "github.com/deathowl/go-metrics-prometheus"
	"github.com/prometheus/client_golang/prometheus"
	goMetrics "github.com/rcrowley/go-metrics"
)

type ConsumerMetrics struct {
	namespace     string
	subsystem     string
	flushInterval time.Duration
	registerer    prometheus.Registerer
	metrics       goMetrics.Registry

	consumeTimeHist    *prometheus.HistogramVec
	processingTimeHist *prometheus.HistogramVec
	getMessageTimeHist *prometheus.HistogramVec
}

// NewConsumerMetrics registers the handler histograms of one consumer group. namespace is the group name.
func NewConsumerMetrics(namespace, subsystem string, flushInterval time.Duration, reg prometheus.Registerer) *ConsumerMetrics {
	appMetrics := goMetrics.NewPrefixedRegistry(FlattenName(namespace) + "_")

	return &ConsumerMetrics{
		namespace:     namespace,
		subsystem:     subsystem,
		flushInterval: flushInterval,
		registerer:    reg,
		metrics:       appMetrics,
		consumeTimeHist: newLatencyHistogram(reg,
			"kafka_consumer_consume_time", "consume time of kafka consumer handler",
			"topic", "consumer_group"),
		processingTimeHist: newLatencyHistogram(reg,
			"kafka_consumer_processing_time", "processing time of kafka consumer handler",
			"topic", "success", "consumer_group"),
		getMessageTimeHist: newLatencyHistogram(reg,
			"kafka_consumer_get_message_time", "get message time of kafka consumer handler",
			"topic", "consumer_group"),
	}
}

// Registry is handed to the sarama consumer config so client metrics land in prometheus too.
func (m *ConsumerMetrics) Registry() goMetrics.Registry {
	return m.metrics
}

func (m *ConsumerMetrics) Run() {
	prometheusClient := prometheusmetrics.NewPrometheusProvider(
		m.metrics, FlattenName(m.namespace), FlattenName(m.subsystem), m.registerer, m.flushInterval,
	)
	go prometheusClient.UpdatePrometheusMetrics()
}

func (m *ConsumerMetrics) GenerateMetrics(startTime time.Time, message *sarama.ConsumerMessage, processErr error) {
	if m == nil || message == nil {
		return
	}
	endTime := time.Now()

	m.consumeTimeHist.WithLabelValues(message.Topic, m.namespace).
		Observe(endTime.Sub(message.Timestamp).Seconds())

	m.processingTimeHist.WithLabelValues(message.Topic, strconv.FormatBool(processErr == nil), m.namespace).
		Observe(endTime.Sub(startTime).Seconds())

	m.getMessageTimeHist.WithLabelValues(message.Topic, m.namespace).
		Observe(startTime.Sub(message.Timestamp).Seconds())
}
