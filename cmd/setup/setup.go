package setup

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/newrelic/go-agent/v3/integrations/nrzap"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/redis/go-redis/v9"
	"golang.org/x/exp/slices"

	"github.com/viglianco/go-sales-ledger/internal/common/cache"
	"github.com/viglianco/go-sales-ledger/internal/common/graceful"
	"github.com/viglianco/go-sales-ledger/internal/common/log"
	cMetrics "github.com/viglianco/go-sales-ledger/internal/common/metrics"
	"github.com/viglianco/go-sales-ledger/internal/common/publisher"
	"github.com/viglianco/go-sales-ledger/internal/config"
	"github.com/viglianco/go-sales-ledger/internal/models"
	"github.com/viglianco/go-sales-ledger/internal/repositories"
	"github.com/viglianco/go-sales-ledger/internal/services"

	_ "github.com/newrelic/go-agent/v3/integrations/nrpgx"
)

const windowCachePrefix = "sales:window:"

type Setup struct {
	Config    config.Config
	NewRelic  *newrelic.Application
	WriteDB   *sql.DB
	ReadDB    *sql.DB
	Cache     *redis.Client
	RepoCache repositories.CacheRepository
	Service   *services.Services
	Metrics   cMetrics.Metrics
}

// InitLogger loads the configuration and starts the process logger.
func InitLogger() (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return cfg, err
	}

	logLevel := log.DebugLogLevel()
	excludedDebugLevelOnEnvs := []config.Environment{
		config.DEV_ENV,
		config.UAT_ENV,
		config.PROD_ENV,
	}
	if slices.Contains(excludedDebugLevelOnEnvs, cfg.Environment()) {
		logLevel = log.InfoLogLevel()
	}

	log.Init(cfg.App.Name,
		log.WithLogToOption(cfg.App.LogOption),
		log.WithLogEnvOption(cfg.App.Env),
		log.WithCaller(true),
		log.AddCallerSkip(1),
		logLevel)

	return cfg, nil
}

func Init(command string) (setup *Setup, stopper []graceful.ProcessStopper, err error) {
	ctx := context.Background()

	cfg, err := InitLogger()
	if err != nil {
		return
	}
	setup = &Setup{
		Config: cfg,
	}

	stopper = append(stopper, func(ctx context.Context) error {
		_ = log.Sync()
		return nil
	})

	newRelic := setupNR(ctx, cfg)
	if newRelic != nil {
		stopper = append(stopper, func(ctx context.Context) error {
			newRelic.Shutdown(cfg.App.GracefulTimeout)
			return nil
		})
	}

	// metrics
	mtc := cMetrics.New()

	// connect to db master
	writeDB, readDB, err := setupPostgres(cfg)
	if err != nil {
		err = fmt.Errorf("failed connect to database: %w", err)
		return
	}
	stopper = append(stopper, func(ctx context.Context) error {
		var errs error

		if writeDB != nil {
			if err := writeDB.Close(); err != nil {
				errs = errors.Join(errs, fmt.Errorf("failed to close writeDB: %w", err))
			}
		}

		if readDB != nil {
			if err := readDB.Close(); err != nil {
				errs = errors.Join(errs, fmt.Errorf("failed to close readDB: %w", err))
			}
		}

		return errs
	})

	// register DB write stat prometheus metrics
	err = mtc.RegisterDB(writeDB, cfg.App.Name+"-"+command+"-write", cfg.Postgres.Write.DbName)
	if err != nil {
		err = fmt.Errorf("failed register DB stat prometheus: %w", err)
		return
	}
	// register DB read stat prometheus metrics
	err = mtc.RegisterDB(readDB, cfg.App.Name+"-"+command+"-read", cfg.Postgres.Read.DbName)
	if err != nil {
		err = fmt.Errorf("failed register DB stat prometheus: %w", err)
		return
	}

	// register repository
	sqlRepo := repositories.NewSQLRepository(writeDB, readDB, cfg)

	var (
		redisClient *redis.Client
		cacheRepo   repositories.CacheRepository
		windowCache cache.Client[models.DailySalesOut]
	)
	if cfg.Redis.Host != "" {
		redisClient, err = setupRedis(ctx, cfg)
		if err != nil {
			err = fmt.Errorf("failed connect to redis: %w", err)
			return
		}
		stopper = append(stopper, func(ctx context.Context) error { return redisClient.Close() })

		// register redis prometheus metrics
		err = mtc.RegisterRedis(redisClient, cfg.App.Name, command)
		if err != nil {
			err = fmt.Errorf("failed register redis prometheus: %w", err)
			return
		}

		cacheRepo = repositories.NewCacheRepository(redisClient)
		windowCache = cache.NewRedisClient[models.DailySalesOut](redisClient, windowCachePrefix)
	} else {
		log.Warn(ctx, "[SETUP] redis is not configured, daily windows are cached in memory")
		inMemory := cache.NewInMemoryClient[models.DailySalesOut]()
		stopper = append(stopper, func(ctx context.Context) error {
			inMemory.Close()
			return nil
		})
		windowCache = inMemory
	}

	var manualEntryPub publisher.Publisher
	if cfg.MessageBroker.Enabled {
		producer, perr := publisher.NewKafkaSyncProducer(
			cfg.MessageBroker.Brokers,
			publisher.WithClientID(cfg.App.Name),
			publisher.WithMetricRegistry(mtc.SaramaRegistry(cfg.App.Name+"-"+command+"-kafka", time.Minute)),
		)
		if perr != nil {
			err = fmt.Errorf("unable to create client kafka sync producer: %w", perr)
			return
		}
		stopper = append(stopper, func(ctx context.Context) error { return producer.Close() })

		manualEntryPub = publisher.NewPublisher(producer, cfg.MessageBroker.TopicManualEntryChanged, mtc)
	}

	// register service
	srv := services.New(
		cfg,
		sqlRepo,
		cacheRepo,
		windowCache,
		manualEntryPub,
		mtc,
	)

	return &Setup{
		Config:    cfg,
		NewRelic:  newRelic,
		WriteDB:   writeDB,
		ReadDB:    readDB,
		Cache:     redisClient,
		RepoCache: cacheRepo,
		Service:   srv,
		Metrics:   mtc,
	}, stopper, nil
}

func setupRedis(ctx context.Context, cfg config.Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.Redis.Host, cfg.Redis.Port),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.Db,
	})
	if _, err := client.Ping(ctx).Result(); err != nil {
		_ = client.Close()
		return nil, err
	}
	return client, nil
}

func setupPostgres(conf config.Config) (*sql.DB, *sql.DB, error) {
	writeDB, err := initDB(conf.Postgres.Write)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to init write DB: %w", err)
	}

	readDB, err := initDB(conf.Postgres.Read)
	if err != nil {
		_ = writeDB.Close()
		return nil, nil, fmt.Errorf("failed to init read DB: %w", err)
	}

	return writeDB, readDB, nil
}

func initDB(pgConf config.Database) (*sql.DB, error) {
	const (
		DefaultMaxOpen     = 10
		DefaultMaxIdle     = 10
		DefaultMaxLifetime = 3 // minutes
	)

	dsName := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s search_path=%s sslmode=disable",
		pgConf.DbHost, pgConf.DbPort, pgConf.DbUser, pgConf.DbPass, pgConf.DbName, pgConf.DbSchema,
	)

	db, err := sql.Open("nrpgx", dsName)
	if err != nil {
		return nil, err
	}

	if pgConf.MaxOpenConnection > 0 {
		db.SetMaxOpenConns(pgConf.MaxOpenConnection)
	} else {
		db.SetMaxOpenConns(DefaultMaxOpen)
	}

	if pgConf.MaxIdleConnection > 0 {
		db.SetMaxIdleConns(pgConf.MaxIdleConnection)
	} else {
		db.SetMaxIdleConns(DefaultMaxIdle)
	}

	if pgConf.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(time.Duration(pgConf.ConnMaxLifetime) * time.Minute)
	} else {
		db.SetConnMaxLifetime(time.Duration(DefaultMaxLifetime) * time.Minute)
	}

	if err := db.Ping(); err != nil {
		return nil, err
	}

	return db, nil
}

func setupNR(ctx context.Context, cfg config.Config) *newrelic.Application {
	if cfg.Environment() != config.PROD_ENV || cfg.NewRelicLicenseKey == "" {
		return nil
	}

	app, err := newrelic.NewApplication(
		newrelic.ConfigAppName(cfg.App.Name),
		newrelic.ConfigLicense(cfg.NewRelicLicenseKey),
		func(config *newrelic.Config) {
			config.Logger = nrzap.Transform(log.Logger())
		},
		newrelic.ConfigDistributedTracerEnabled(true),
	)
	if err != nil {
		log.Errorf(ctx, "setupNR.NewApplication - %v", err)
		return nil
	}
	if err = app.WaitForConnection(15 * time.Second); nil != err {
		log.Errorf(ctx, "setupNR.WaitForConnection - %v", err)
	}
	return app
}
