package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

const EnvPrefix = "SALES_LEDGER"

type loaderOptions struct {
	fileName    string
	searchPaths []string
}

type LoaderOption func(*loaderOptions)

func WithConfigFileName(name string) LoaderOption {
	return func(o *loaderOptions) { o.fileName = name }
}

func WithConfigFileSearchPaths(paths ...string) LoaderOption {
	return func(o *loaderOptions) { o.searchPaths = append(o.searchPaths, paths...) }
}

// Load reads the config file (json or yaml) and overlays SALES_LEDGER_* environment variables,
// e.g. SALES_LEDGER_POSTGRES_WRITE_DB_HOST.
func Load(opts ...LoaderOption) (Config, error) {
	o := &loaderOptions{fileName: "config"}
	for _, opt := range opts {
		opt(o)
	}
	if len(o.searchPaths) == 0 {
		o.searchPaths = []string{"/config", ".", "./config"}
	}

	v := viper.New()
	v.SetConfigName(o.fileName)
	for _, p := range o.searchPaths {
		v.AddConfigPath(p)
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	err := v.Unmarshal(&cfg, func(dc *mapstructure.DecoderConfig) {
		dc.TagName = "json"
		dc.DecodeHook = mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		)
	})
	if err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}

	return cfg, nil
}

// setDefaults registers every key so AutomaticEnv can resolve it without a config file.
func setDefaults(v *viper.Viper) {
	v.SetDefault("app.env", "local")
	v.SetDefault("app.name", "go-sales-ledger")
	v.SetDefault("app.http_port", 8080)
	v.SetDefault("app.http_timeout", 30*time.Second)
	v.SetDefault("app.graceful_timeout", 10*time.Second)
	v.SetDefault("app.log_option", "stdout")
	v.SetDefault("app.log_level", "info")

	for _, side := range []string{"write", "read"} {
		prefix := "postgres." + side + "."
		v.SetDefault(prefix+"db_host", "localhost")
		v.SetDefault(prefix+"db_port", "5432")
		v.SetDefault(prefix+"db_user", "postgres")
		v.SetDefault(prefix+"db_pass", "")
		v.SetDefault(prefix+"db_name", "sales_ledger")
		v.SetDefault(prefix+"db_schema", "public")
		v.SetDefault(prefix+"maxOpenConnections", 0)
		v.SetDefault(prefix+"maxIdleConnections", 0)
		v.SetDefault(prefix+"connMaxLifetime", 0)
	}

	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", "6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("secret_key", "")
	v.SetDefault("new_relic_license_key", "")

	v.SetDefault("sales_api.base_url", "http://localhost:8080")
	v.SetDefault("sales_api.secret_key", "")
	v.SetDefault("sales_api.retry_count", 3)
	v.SetDefault("sales_api.retry_wait_time", 100)
	v.SetDefault("sales_api.timeout", 10*time.Second)

	v.SetDefault("message_broker.enabled", false)
	v.SetDefault("message_broker.brokers", []string{})
	v.SetDefault("message_broker.topic_manual_entry_changed", "sales.manual_entry.changed")
	v.SetDefault("message_broker.consumer.http_port", 8081)
	v.SetDefault("message_broker.consumer.consumer_group", "sales-ledger-reconciler")
	v.SetDefault("message_broker.consumer.assignor", "range")
	v.SetDefault("message_broker.consumer.is_oldest", false)
	v.SetDefault("message_broker.consumer.is_verbose", false)

	v.SetDefault("exponential_backoff.max_retries", 3)
	v.SetDefault("exponential_backoff.max_backoff_time", 5*time.Second)
	v.SetDefault("exponential_backoff.backoff_multiplier", 1.5)

	v.SetDefault("ledger.cache_ttl", 5*time.Minute)
	v.SetDefault("ledger.persist_timeout", 10*time.Second)
}
