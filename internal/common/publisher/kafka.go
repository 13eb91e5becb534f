package publisher

import (
	"time"

	"github.com/Shopify/sarama"
	gometrics "github.com/rcrowley/go-metrics"
)

type Option func(*sarama.Config)

func NewKafkaSyncProducer(brokers []string, opts ...Option) (sarama.SyncProducer, error) {
	producer, err := sarama.NewSyncProducer(brokers, NewSyncProducerConfig(opts...))
	if err != nil {
		return nil, err
	}
	return producer, nil
}

// NewSyncProducerConfig is the producer config used by NewKafkaSyncProducer.
func NewSyncProducerConfig(opts ...Option) *sarama.Config {
	saramaCfg := sarama.NewConfig()
	saramaCfg.Producer.Return.Successes = true
	saramaCfg.Producer.Return.Errors = true
	saramaCfg.Producer.RequiredAcks = sarama.WaitForAll
	saramaCfg.Producer.Timeout = 2 * time.Second
	saramaCfg.Net.DialTimeout = 2 * time.Second
	saramaCfg.Net.ReadTimeout = 2 * time.Second
	saramaCfg.Net.WriteTimeout = 2 * time.Second

	for _, opt := range opts {
		opt(saramaCfg)
	}
	return saramaCfg
}

func WithClientID(clientID string) Option {
	return func(cfg *sarama.Config) {
		if clientID != "" {
			cfg.ClientID = clientID
		}
	}
}

// WithMetricRegistry exposes the producer's internal metrics through registry.
func WithMetricRegistry(registry gometrics.Registry) Option {
	return func(cfg *sarama.Config) {
		if registry != nil {
			cfg.MetricRegistry = registry
		}
	}
}
