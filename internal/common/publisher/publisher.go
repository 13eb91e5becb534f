package publisher

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Shopify/sarama"

	"github.com/viglianco/go-sales-ledger/internal/common/log"
	"github.com/viglianco/go-sales-ledger/internal/common/metrics"
)

//go:generate mockgen -source=publisher.go -destination=mock/publisher.go -package=mock

const logIdentifier = "[GENERAL-PUBLISHER]"

type Publisher interface {
	Publish(ctx context.Context, message any, opts ...PublishOption) error
}

type publishOptions struct {
	key     string
	headers map[string]string
}

type PublishOption func(*publishOptions)

func WithKey(key string) PublishOption {
	return func(opts *publishOptions) {
		opts.key = key
	}
}

func WithHeaders(headers map[string]string) PublishOption {
	return func(opts *publishOptions) {
		opts.headers = headers
	}
}

type publisher struct {
	producer sarama.SyncProducer
	topic    string
	metrics  *metrics.PublisherPrometheusMetrics
}

func NewPublisher(p sarama.SyncProducer, topic string, mtc metrics.Metrics) Publisher {
	pub := publisher{
		producer: p,
		topic:    topic,
	}
	if mtc != nil {
		pub.metrics = mtc.GetPublisherPrometheus()
	}
	return pub
}

// Publish sends message as JSON. The correlation id of ctx travels as a header.
func (d publisher) Publish(ctx context.Context, message any, opts ...PublishOption) (err error) {
	start := time.Now()
	defer func() { d.metrics.GenerateMetrics(start, d.topic, err) }()

	options := &publishOptions{}
	for _, opt := range opts {
		opt(options)
	}

	msg, err := d.prepareMessage(ctx, message, options)
	if err != nil {
		log.Error(ctx, logIdentifier,
			log.String("status", "failed prepare message"),
			log.Err(err))
		return err
	}

	partition, offset, err := d.producer.SendMessage(msg)
	if err != nil {
		log.Error(ctx, logIdentifier,
			log.String("status", "failed send message"),
			log.String("topic", d.topic),
			log.Err(err))
		return err
	}

	log.Info(ctx, logIdentifier,
		log.String("status", "success publish message"),
		log.String("topic", d.topic),
		log.Int("partition", int(partition)),
		log.Int64("offset", offset))

	return nil
}

func (d publisher) prepareMessage(ctx context.Context, message any, opts *publishOptions) (*sarama.ProducerMessage, error) {
	msgByte, err := json.Marshal(message)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payload: %w", err)
	}

	producerMsg := &sarama.ProducerMessage{
		Topic: d.topic,
		Value: sarama.ByteEncoder(msgByte),
	}
	if opts.key != "" {
		producerMsg.Key = sarama.StringEncoder(opts.key)
	}

	if id := log.GetCorrelationID(ctx); id != "" {
		producerMsg.Headers = append(producerMsg.Headers, sarama.RecordHeader{
			Key:   []byte(log.CorrelationIDHeader),
			Value: []byte(id),
		})
	}
	for key, value := range opts.headers {
		producerMsg.Headers = append(producerMsg.Headers, sarama.RecordHeader{
			Key:   []byte(key),
			Value: []byte(value),
		})
	}

	return producerMsg, nil
}
