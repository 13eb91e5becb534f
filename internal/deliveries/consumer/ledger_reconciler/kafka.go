package ledger_reconciler

import (
	"context"

	"github.com/Shopify/sarama"

	"github.com/viglianco/go-sales-ledger/internal/common/kafka"
	"github.com/viglianco/go-sales-ledger/internal/common/metrics"
	"github.com/viglianco/go-sales-ledger/internal/config"
	"github.com/viglianco/go-sales-ledger/internal/services"
)

const logMessage = "[KAFKA-CONSUMER] [LEDGER-RECONCILER] "

// New consumes manual entry changes and reconciles the stored totals of the changed year.
func New(ctx context.Context, cfg config.Config, sls services.SalesLedgerService, mtc metrics.Metrics) *kafka.BaseConsumer {
	return kafka.NewBaseConsumer(kafka.BaseConsumerConfig{
		Ctx:     ctx,
		Config:  cfg,
		Metrics: mtc,
		Handler: func(clientID string, consumerMetrics *metrics.ConsumerMetrics) sarama.ConsumerGroupHandler {
			return NewHandler(clientID, sls, consumerMetrics)
		},
		LogPrefix:     logMessage,
		Topic:         cfg.MessageBroker.TopicManualEntryChanged,
		ConsumerGroup: cfg.MessageBroker.Consumer.ConsumerGroup,
	})
}
