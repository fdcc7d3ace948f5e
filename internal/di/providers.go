package di

import (
	"context"
	"fmt"
	"time"

	"SignalDesk/internal/domain/repository"
	"SignalDesk/internal/handler/api"
	internalrepo "SignalDesk/internal/repository"
	"SignalDesk/internal/service/auth"
	"SignalDesk/internal/service/telegram"
	"SignalDesk/internal/service/yahoo"
	"SignalDesk/internal/usecase"
	"SignalDesk/pkg/cache"
	pkgch "SignalDesk/pkg/clickhouse"
	"SignalDesk/pkg/config"
	xhttp "SignalDesk/pkg/http"
	pkgkafka "SignalDesk/pkg/kafka"
	applogger "SignalDesk/pkg/logger"
	"SignalDesk/pkg/metrics"
	"SignalDesk/pkg/server"
)

// ProvideLogger creates the application logger from config.
func ProvideLogger(cfg *config.Config) (*applogger.Logger, error) {
	return applogger.New(&applogger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics() repository.Metrics {
	return metrics.New()
}

// ProvideClickHouseClient creates a ClickHouse client.
func ProvideClickHouseClient(cfg *config.Config) (*pkgch.Client, error) {
	client, err := pkgch.NewClient(
		pkgch.WithHost(cfg.ClickHouse.Host),
		pkgch.WithPort(cfg.ClickHouse.Port),
		pkgch.WithDatabase(cfg.ClickHouse.Database),
		pkgch.WithCredentials(cfg.ClickHouse.User, cfg.ClickHouse.Password),
		pkgch.WithMaxConnections(10, 5),
		pkgch.WithHTTP(cfg.ClickHouse.UseHTTP),
		pkgch.WithTimeouts(cfg.ClickHouse.DialTimeout, cfg.ClickHouse.ReadTimeout, cfg.ClickHouse.WriteTimeout),
		pkgch.WithMaxExecutionTime(cfg.ClickHouse.MaxExecutionTime),
	)
	if err != nil {
		return nil, fmt.Errorf("clickhouse client: %w", err)
	}
	return client, nil
}

// ProvideHistoryStore creates the ClickHouse history store and ensures its
// schema exists.
func ProvideHistoryStore(chClient *pkgch.Client, l *applogger.Logger) (repository.HistoryStore, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	store, err := internalrepo.NewCHHistoryStore(ctx, chClient, l)
	if err != nil {
		return nil, fmt.Errorf("history store: %w", err)
	}
	return store, nil
}

// ProvideStatsPublisher creates the Kafka stats publisher, or a noop when
// Kafka is disabled in config.
func ProvideStatsPublisher(cfg *config.Config, l *applogger.Logger) (repository.StatsPublisher, error) {
	if !cfg.Kafka.Enabled {
		return internalrepo.NoopStatsPublisher{}, nil
	}

	producer, err := pkgkafka.NewProducer(
		pkgkafka.WithBrokers(cfg.Kafka.Brokers),
		pkgkafka.WithCompression(cfg.Kafka.Compression),
		pkgkafka.WithRequiredAcks(cfg.Kafka.RequiredAcks),
		pkgkafka.WithBatchSize(cfg.Kafka.Producer.BatchSize),
		pkgkafka.WithBatchBytes(cfg.Kafka.Producer.BatchBytes),
		pkgkafka.WithBatchTimeout(cfg.Kafka.Producer.Linger),
		pkgkafka.WithTimeouts(cfg.Kafka.Producer.WriteTimeout, cfg.Kafka.Producer.ReadTimeout),
		pkgkafka.WithMaxAttempts(cfg.Kafka.Producer.MaxAttempts),
		pkgkafka.WithAsync(cfg.Kafka.Producer.Async),
		pkgkafka.WithHashByKey(true),
	)
	if err != nil {
		return nil, fmt.Errorf("kafka producer: %w", err)
	}
	return internalrepo.NewKafkaStatsPublisher(producer, cfg.Kafka.Topic, l), nil
}

// ProvideCache creates the price cache: Redis when enabled, in-process
// memory otherwise.
func ProvideCache(cfg *config.Config) (cache.Service, error) {
	if !cfg.Redis.Enabled {
		return cache.NewMemoryCache(), nil
	}

	c, err := cache.NewRedisCache(cache.RedisConfig{
		Host:     cfg.Redis.Host,
		Port:     cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		return nil, fmt.Errorf("redis cache: %w", err)
	}
	return c, nil
}

// ProvideMessageSource creates the Telegram message source.
func ProvideMessageSource(cfg *config.Config, l *applogger.Logger) repository.MessageSource {
	return telegram.NewClient(cfg, l)
}

// ProvidePriceSource creates the Yahoo daily close source.
func ProvidePriceSource(cfg *config.Config, l *applogger.Logger) repository.PriceSource {
	return yahoo.NewClient(cfg, l)
}

// ProvideAuthService builds the email allow list.
func ProvideAuthService(cfg *config.Config) *auth.Service {
	return auth.NewService(cfg.Auth.ApprovedEmails)
}

// ProvideSignalRunner creates the pipeline orchestrator.
func ProvideSignalRunner(
	messages repository.MessageSource,
	prices repository.PriceSource,
	history repository.HistoryStore,
	publisher repository.StatsPublisher,
	m repository.Metrics,
	cacheSvc cache.Service,
	cfg *config.Config,
	l *applogger.Logger,
) *usecase.SignalRunner {
	return usecase.NewSignalRunner(messages, prices, history, publisher, m, cacheSvc, cfg.Redis.TTL, l)
}

// ProvideHandler creates the HTTP handler.
func ProvideHandler(
	l *applogger.Logger,
	runner *usecase.SignalRunner,
	authSvc *auth.Service,
	history repository.HistoryStore,
	cfg *config.Config,
) xhttp.Handler {
	return api.NewSignalsEchoHandler(l, runner, authSvc, history, cfg.History.DefaultLimit)
}

// ProvideApp creates the application server.
func ProvideApp(
	cfg *config.Config,
	l *applogger.Logger,
	handler xhttp.Handler,
	history repository.HistoryStore,
	publisher repository.StatsPublisher,
	cacheSvc cache.Service,
) *server.App {
	return server.New(cfg, l, handler, history, publisher, cacheSvc)
}
