package kafka

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Shopify/sarama"
	"golang.org/x/sync/errgroup"

	"github.com/viglianco/go-sales-ledger/internal/common/graceful"
	"github.com/viglianco/go-sales-ledger/internal/common/log"
	"github.com/viglianco/go-sales-ledger/internal/common/messaging"
	"github.com/viglianco/go-sales-ledger/internal/common/metrics"
	"github.com/viglianco/go-sales-ledger/internal/config"
)

var (
	ErrNoTopic         = errors.New("no topics given to be consumed, please set the topic")
	ErrNoConsumerGroup = errors.New("no kafka consumer group defined, please set the group")
)

// HandlerFactory builds the group handler once the client id and consumer metrics are known.
type HandlerFactory func(clientID string, consumerMetrics *metrics.ConsumerMetrics) sarama.ConsumerGroupHandler

type BaseConsumer struct {
	ctx             context.Context
	clientID        string
	cfg             config.Config
	cg              sarama.ConsumerGroup
	newHandler      HandlerFactory
	handler         sarama.ConsumerGroupHandler
	metrics         metrics.Metrics
	consumerMetrics *metrics.ConsumerMetrics
	logPrefix       string
	topic           string
	consumerGroup   string
}

type BaseConsumerConfig struct {
	Ctx           context.Context
	Config        config.Config
	Metrics       metrics.Metrics
	Handler       HandlerFactory
	LogPrefix     string
	Topic         string
	ConsumerGroup string
}

func NewBaseConsumer(cfg BaseConsumerConfig) *BaseConsumer {
	return &BaseConsumer{
		ctx:           cfg.Ctx,
		cfg:           cfg.Config,
		newHandler:    cfg.Handler,
		metrics:       cfg.Metrics,
		logPrefix:     cfg.LogPrefix,
		topic:         cfg.Topic,
		consumerGroup: cfg.ConsumerGroup,
	}
}

func (c *BaseConsumer) PreStart() error {
	saramaCfg, err := messaging.CreateSaramaConsumerConfig(c.cfg.MessageBroker.Brokers, c.cfg.MessageBroker.Consumer, c.logPrefix)
	if err != nil {
		return fmt.Errorf("failed to create consumer config: %w", err)
	}

	if c.topic == "" {
		return ErrNoTopic
	}

	if c.consumerGroup == "" {
		return ErrNoConsumerGroup
	}

	if c.metrics != nil {
		c.consumerMetrics = metrics.NewConsumerMetrics(c.consumerGroup, c.cfg.App.Name, 1*time.Second, c.metrics.PrometheusRegisterer())
		c.consumerMetrics.Run()
		saramaCfg.MetricRegistry = c.consumerMetrics.Registry()
	}

	c.clientID = saramaCfg.ClientID
	c.handler = c.newHandler(c.clientID, c.consumerMetrics)

	client, err := sarama.NewConsumerGroup(c.cfg.MessageBroker.Brokers, c.consumerGroup, saramaCfg)
	if err != nil {
		return err
	}
	c.cg = client

	log.Info(c.ctx, c.logPrefix,
		log.String("status", "consumer group ready"),
		log.String("topic", c.topic),
		log.String("group", c.consumerGroup))

	return nil
}

func (c *BaseConsumer) Start() graceful.ProcessStarter {
	return func() error {
		err := c.PreStart()
		if err != nil {
			log.Error(c.ctx, c.logPrefix, log.Err(err))
			return err
		}

		go func() {
			for errCg := range c.cg.Errors() {
				log.Error(c.ctx, c.logPrefix, log.Err(fmt.Errorf("client error: %w", errCg)))
			}
		}()

		eg, ctx := errgroup.WithContext(c.ctx)

		eg.Go(func() error {
			for {
				if err := c.cg.Consume(ctx, []string{c.topic}, c.handler); err != nil {
					if errors.Is(err, sarama.ErrClosedConsumerGroup) {
						return nil
					}
					log.Warn(c.ctx, c.logPrefix, log.Err(fmt.Errorf("error start consumer: %w", err)))
				}
				if err := c.ctx.Err(); err != nil {
					return fmt.Errorf("context was canceled: %w", err)
				}
			}
		})

		return eg.Wait()
	}
}

func (c *BaseConsumer) Stop() graceful.ProcessStopper {
	return func(ctx context.Context) error {
		if c.cg == nil {
			return nil
		}
		return c.cg.Close()
	}
}
