package config

import (
	"time"
)

type (
	Config struct {
		App                App                      `json:"app"`
		Postgres           Postgres                 `json:"postgres"`
		Redis              Redis                    `json:"redis"`
		SecretKey          string                   `json:"secret_key"`
		NewRelicLicenseKey string                   `json:"new_relic_license_key"`
		SalesAPI           HTTPConfiguration        `json:"sales_api"`
		MessageBroker      MessageBroker            `json:"message_broker"`
		ExponentialBackoff ExponentialBackOffConfig `json:"exponential_backoff"`
		Ledger             LedgerConfig             `json:"ledger"`
	}

	App struct {
		Env             string        `json:"env"`
		HTTPPort        int           `json:"http_port"`
		HTTPTimeout     time.Duration `json:"http_timeout"`
		GracefulTimeout time.Duration `json:"graceful_timeout"`
		Name            string        `json:"name"`
		LogOption       string        `json:"log_option"`
		LogLevel        string        `json:"log_level"`
	}

	Postgres struct {
		Write Database `json:"write"`
		Read  Database `json:"read"`
	}

	Database struct {
		DbHost            string `json:"db_host"`
		DbPort            string `json:"db_port"`
		DbUser            string `json:"db_user"`
		DbPass            string `json:"db_pass"`
		DbName            string `json:"db_name"`
		DbSchema          string `json:"db_schema"`
		MaxOpenConnection int    `json:"maxOpenConnections"`
		MaxIdleConnection int    `json:"maxIdleConnections"`
		ConnMaxLifetime   int    `json:"connMaxLifetime"`
	}

	Redis struct {
		Host     string `json:"host"`
		Port     string `json:"port"`
		Password string `json:"password"`
		Db       int    `json:"db"`
	}

	// HTTPConfiguration configures an outgoing REST client.
	HTTPConfiguration struct {
		BaseURL       string        `json:"base_url"`
		SecretKey     string        `json:"secret_key"`
		RetryCount    int           `json:"retry_count"`
		RetryWaitTime int           `json:"retry_wait_time"`
		Timeout       time.Duration `json:"timeout"`
	}

	MessageBroker struct {
		// Enabled turns on manual entry change events; the API still works without a broker.
		Enabled                 bool           `json:"enabled"`
		Brokers                 []string       `json:"brokers"`
		TopicManualEntryChanged string         `json:"topic_manual_entry_changed"`
		Consumer                ConsumerConfig `json:"consumer"`
	}

	ConsumerConfig struct {
		HTTPPort      int    `json:"http_port"`
		ConsumerGroup string `json:"consumer_group"`
		Assignor      string `json:"assignor"`
		IsOldest      bool   `json:"is_oldest"`
		IsVerbose     bool   `json:"is_verbose"`
	}

	ExponentialBackOffConfig struct {
		MaxRetries        uint64        `json:"max_retries"`
		MaxBackoffTime    time.Duration `json:"max_backoff_time"`
		BackoffMultiplier float64       `json:"backoff_multiplier"`
	}

	LedgerConfig struct {
		// CacheTTL of a cached daily sales window, zero disables caching.
		CacheTTL time.Duration `json:"cache_ttl"`

		// PersistTimeout bounds a single background write of the edit sink.
		PersistTimeout time.Duration `json:"persist_timeout"`
	}
)
