package messaging

import (
	"context"
	"errors"
	stdlog "log"
	"os"

	"github.com/Shopify/sarama"

	"github.com/viglianco/go-sales-ledger/internal/common/log"
	"github.com/viglianco/go-sales-ledger/internal/config"
)

var ErrNoBrokers = errors.New("no kafka bootstrap brokers defined, please set the brokers")

func CreateSaramaConsumerConfig(brokers []string, cfg config.ConsumerConfig, logPrefix string) (*sarama.Config, error) {
	if len(brokers) == 0 {
		log.Error(context.Background(), logPrefix, log.Err(ErrNoBrokers))
		return nil, ErrNoBrokers
	}

	saramaCfg := sarama.NewConfig()
	saramaCfg.Version = sarama.V3_0_0_0
	saramaCfg.ClientID, _ = os.Hostname()
	saramaCfg.Consumer.Return.Errors = true

	if cfg.IsVerbose {
		sarama.Logger = stdlog.New(os.Stdout, logPrefix, stdlog.LstdFlags)
	}

	if cfg.IsOldest {
		saramaCfg.Consumer.Offsets.Initial = sarama.OffsetOldest
	}

	switch cfg.Assignor {
	case "sticky":
		saramaCfg.Consumer.Group.Rebalance.GroupStrategies = []sarama.BalanceStrategy{sarama.BalanceStrategySticky}
	case "roundrobin":
		saramaCfg.Consumer.Group.Rebalance.GroupStrategies = []sarama.BalanceStrategy{sarama.BalanceStrategyRoundRobin}
	default:
		saramaCfg.Consumer.Group.Rebalance.GroupStrategies = []sarama.BalanceStrategy{sarama.BalanceStrategyRange}
	}

	return saramaCfg, nil
}
