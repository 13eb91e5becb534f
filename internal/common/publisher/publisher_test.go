package publisher

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/Shopify/sarama"
	"github.com/Shopify/sarama/mocks"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	gometrics "github.com/rcrowley/go-metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viglianco/go-sales-ledger/internal/common/log"
	"github.com/viglianco/go-sales-ledger/internal/common/metrics"
)

func init() {
	log.InitForTest()
}

type event struct {
	BatchID int64  `json:"batchId"`
	Date    string `json:"date"`
}

func TestPublisher_Publish(t *testing.T) {
	const topic = "sales.manual_entry.changed"

	t.Run("success", func(t *testing.T) {
		producer := mocks.NewSyncProducer(t, nil)
		producer.ExpectSendMessageWithMessageCheckerFunctionAndSucceed(func(msg *sarama.ProducerMessage) error {
			assert.Equal(t, topic, msg.Topic)

			key, err := msg.Key.Encode()
			require.NoError(t, err)
			assert.Equal(t, "3:2024-01-02", string(key))

			value, err := msg.Value.Encode()
			require.NoError(t, err)
			var got event
			require.NoError(t, json.Unmarshal(value, &got))
			assert.Equal(t, event{BatchID: 3, Date: "2024-01-02"}, got)

			headers := map[string]string{}
			for _, h := range msg.Headers {
				headers[string(h.Key)] = string(h.Value)
			}
			assert.Equal(t, map[string]string{log.CorrelationIDHeader: "corr-1", "source": "api"}, headers)
			return nil
		})

		reg := prometheus.NewRegistry()
		pub := NewPublisher(producer, topic, metrics.NewWithRegisterer(reg))

		ctx := log.SetCorrelationID(context.Background(), "corr-1")
		err := pub.Publish(ctx, event{BatchID: 3, Date: "2024-01-02"},
			WithKey("3:2024-01-02"),
			WithHeaders(map[string]string{"source": "api"}))
		require.NoError(t, err)
		require.NoError(t, producer.Close())

		count, err := testutil.GatherAndCount(reg, "kafka_publisher_duration_seconds")
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("failed send message", func(t *testing.T) {
		producer := mocks.NewSyncProducer(t, nil)
		producer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

		pub := NewPublisher(producer, topic, nil)
		err := pub.Publish(context.Background(), event{BatchID: 3})
		assert.True(t, errors.Is(err, sarama.ErrOutOfBrokers))
		require.NoError(t, producer.Close())
	})

	t.Run("failed prepare message", func(t *testing.T) {
		producer := mocks.NewSyncProducer(t, nil)

		pub := NewPublisher(producer, topic, nil)
		err := pub.Publish(context.Background(), make(chan int))
		assert.Error(t, err)
		require.NoError(t, producer.Close())
	})
}

func TestNewSyncProducerConfig(t *testing.T) {
	registry := gometrics.NewRegistry()
	cfg := NewSyncProducerConfig(WithClientID("sales-ledger"), WithMetricRegistry(registry))

	assert.True(t, cfg.Producer.Return.Successes)
	assert.Equal(t, sarama.WaitForAll, cfg.Producer.RequiredAcks)
	assert.Equal(t, "sales-ledger", cfg.ClientID)
	assert.Equal(t, registry, cfg.MetricRegistry)
	assert.NoError(t, cfg.Validate())
}
