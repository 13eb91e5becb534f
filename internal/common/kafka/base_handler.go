package kafka

import (
	"context"
	"time"

	"github.com/Shopify/sarama"

	"github.com/viglianco/go-sales-ledger/internal/common/log"
	"github.com/viglianco/go-sales-ledger/internal/common/metrics"
)

// BaseHandler holds what every group handler shares: logging, acking and metrics.
// There is no dead letter topic; a nacked message is logged with its payload and skipped.
type BaseHandler struct {
	ClientID        string
	ConsumerMetrics *metrics.ConsumerMetrics
	LogPrefix       string
}

func (b *BaseHandler) CreateLogField(msg *sarama.ConsumerMessage) []log.Field {
	return []log.Field{
		log.Time("timestamp", msg.Timestamp),
		log.String("topic", msg.Topic),
		log.String("key", string(msg.Key)),
		log.Int32("partition", msg.Partition),
		log.Int64("offset", msg.Offset),
		log.String("message-claimed", string(msg.Value)),
	}
}

// CorrelationID reads the correlation header set by the publisher, if any.
func (b *BaseHandler) CorrelationID(msg *sarama.ConsumerMessage) string {
	for _, h := range msg.Headers {
		if h != nil && string(h.Key) == log.CorrelationIDHeader {
			return string(h.Value)
		}
	}
	return ""
}

func (b *BaseHandler) Ack(session sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) {
	session.MarkMessage(message, "")
	log.Debug(
		context.Background(),
		b.LogPrefix+"[ACK]",
		log.String("topic", message.Topic),
		log.Int32("partition", message.Partition),
		log.Int64("offset", message.Offset),
	)
}

func (b *BaseHandler) Nack(ctx context.Context, session sarama.ConsumerGroupSession, message *sarama.ConsumerMessage, causeErr error) {
	logField := b.CreateLogField(message)
	logField = append(logField, log.Err(causeErr))

	session.MarkMessage(message, "")
	log.Warn(ctx, b.LogPrefix+"[NACK]", logField...)
}

func (b *BaseHandler) RecordMetrics(startTime time.Time, message *sarama.ConsumerMessage, err error) {
	if b.ConsumerMetrics != nil {
		b.ConsumerMetrics.GenerateMetrics(startTime, message, err)
	}
}
