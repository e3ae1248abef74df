package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/Gunvolt24/trickbook/config"
	cachebolt "github.com/Gunvolt24/trickbook/internal/cache/bolt"
	cachemem "github.com/Gunvolt24/trickbook/internal/cache/memory"
	cacheredis "github.com/Gunvolt24/trickbook/internal/cache/redis"
	"github.com/Gunvolt24/trickbook/internal/kafka"
	"github.com/Gunvolt24/trickbook/internal/ports"
	"github.com/Gunvolt24/trickbook/internal/repo/postgres"
	rest "github.com/Gunvolt24/trickbook/internal/transport/http"
	"github.com/Gunvolt24/trickbook/internal/usecase"
	"github.com/Gunvolt24/trickbook/pkg/logger"
	"github.com/Gunvolt24/trickbook/pkg/metrics"
	"github.com/Gunvolt24/trickbook/pkg/telemetry"
	"github.com/Gunvolt24/trickbook/pkg/validate"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// ErrUnknownSnapshotBackend — неизвестное значение CACHE_SNAPSHOT_BACKEND.
var ErrUnknownSnapshotBackend = errors.New("unknown snapshot backend")

// OrderCloser — отложенная запись порядка, которую нужно дописать при остановке.
type OrderCloser interface {
	Close(ctx context.Context) error
}

// App — собранное приложение и его внешние интерфейсы (HTTP, consumer).
type App struct {
	Logger          ports.Logger          // логгер
	HTTPServer      *http.Server          // HTTP-сервер API
	MetricsServer   *http.Server          // отдельный /metrics; nil — только на основном роутере
	KafkaConsumer   ports.MessageConsumer // консьюмер событий; nil — Kafka выключена
	Orders          OrderCloser           // дописывается после остановки входящих потоков
	gracefulTimeout time.Duration         // время ожидания завершения
}

// Cleanup — функция освобождения ресурсов.
type Cleanup func()

// applyGinMode — устанавливает режим Gin по строке;
// неизвестное значение → debug и предупреждение в лог.
func applyGinMode(ctx context.Context, mode string, log ports.Logger) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "release":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	case "", "debug":
		gin.SetMode(gin.DebugMode)
	default:
		gin.SetMode(gin.DebugMode)
		log.Warnf(ctx, "unknown GIN_MODE=%q, fallback to debug", mode)
	}
}

// OpenSnapshotStore — персистентный уровень кэша по конфигурации.
// "none" возвращает (nil, nil): сервис работает только с памятью.
func OpenSnapshotStore(ctx context.Context, cache config.Cache, redis config.Redis) (ports.SnapshotStore, error) {
	switch strings.ToLower(strings.TrimSpace(cache.SnapshotBackend)) {
	case "", "bolt":
		store, err := cachebolt.Open(cache.SnapshotPath)
		if err != nil {
			return nil, err
		}
		return store, nil
	case "redis":
		store, err := cacheredis.New(ctx, cacheredis.Config{
			Addr:      redis.Addr,
			DB:        redis.DB,
			Password:  redis.Password,
			Namespace: redis.Namespace,
			TTL:       redis.TTL,
		})
		if err != nil {
			return nil, err
		}
		return store, nil
	case "none":
		return nil, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSnapshotBackend, cache.SnapshotBackend)
	}
}

// Bootstrap — собирает зависимости и возвращает приложение, функцию очистки и ошибку.
func Bootstrap(ctx context.Context, cfg *config.Config) (*App, Cleanup, error) {
	// Логгер (dev/prod режим задаётся конфигурацией).
	logg, cleanupLogger, err := logger.NewZapLogger(cfg.Logger.IsProd)
	if err != nil {
		return nil, func() {}, err
	}
	fail := func(err error, closers ...func()) (*App, Cleanup, error) {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
		if cErr := cleanupLogger(); cErr != nil {
			logg.Warnf(ctx, "cleanup logger: %v", cErr)
		}
		return nil, func() {}, err
	}

	metrics.MustRegister()

	// Миграции до открытия пула: схема должна быть готова к первому запросу.
	if cfg.Postgres.MigrateOnStart {
		if err := postgres.Migrate(ctx, cfg.Postgres.DSN); err != nil {
			return fail(fmt.Errorf("migrate: %w", err))
		}
		logg.Infof(ctx, "migrations applied")
	}

	pool, err := postgres.NewPool(ctx, cfg.Postgres.DSN, cfg.Postgres.MaxConns)
	if err != nil {
		return fail(fmt.Errorf("postgres pool: %w", err))
	}

	snapshots, err := OpenSnapshotStore(ctx, cfg.Cache, cfg.Redis)
	if err != nil {
		return fail(fmt.Errorf("snapshot store: %w", err), pool.Close)
	}
	closeSnapshots := func() {
		if snapshots == nil {
			return
		}
		if err := snapshots.Close(); err != nil {
			logg.Warnf(ctx, "snapshot store close: %v", err)
		}
	}
	logg.Infof(ctx, "snapshot backend=%s", cfg.Cache.SnapshotBackend)

	// Трейсинг OTEL (при включённой конфигурации); по умолчанию — no-op.
	shutdownTrace := func(context.Context) error { return nil }
	if cfg.Tracing.Enabled {
		setup, tErr := telemetry.SetupTracing(ctx, telemetry.Options{
			ServiceName: cfg.Tracing.ServiceName,
			Endpoint:    cfg.Tracing.Endpoint,
			SampleRatio: cfg.Tracing.SampleRatio,
		})
		if tErr != nil {
			logg.Warnf(ctx, "failed to setup tracing: %v", tErr)
		} else {
			logg.Infof(ctx, "otel tracing enabled service=%s endpoint=%s sample=%.2f",
				cfg.Tracing.ServiceName, cfg.Tracing.Endpoint, cfg.Tracing.SampleRatio)
			shutdownTrace = setup
		}
	}

	// Доменный слой.
	contentService := usecase.NewContentService(
		postgres.NewContentSource(pool),
		cachemem.NewContentCache(cfg.Cache.Capacity),
		snapshots,
		logg,
		cfg.Cache.PageSize,
	)
	orderService := usecase.NewOrderService(
		postgres.NewOrderRepository(pool),
		postgres.NewLibraryRepository(pool),
		logg,
		usecase.OrderConfig{FlushDelay: cfg.Order.FlushDelay, FlushTimeout: cfg.Order.FlushTimeout},
	)

	if len(cfg.Cache.WarmUpUsers) > 0 {
		contentService.WarmUp(ctx, cfg.Cache.WarmUpUsers)
	}

	applyGinMode(ctx, cfg.HTTP.GinMode, logg)

	// Имя сервиса для otelgin (только при включённом трейсинге).
	otelServiceName := ""
	if cfg.Tracing.Enabled {
		otelServiceName = cfg.Tracing.ServiceName
	}

	httpHandler := rest.NewHandler(contentService, orderService, logg, cfg.HTTP.HandlerTimeout)
	httpSrv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           rest.NewRouter(httpHandler, otelServiceName),
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
	}

	var metricsSrv *http.Server
	if addr := cfg.Metrics.Addr; addr != "" && addr != cfg.HTTP.Addr {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		metricsSrv = &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout}
	}

	var consumer ports.MessageConsumer
	if cfg.Kafka.Enabled {
		consumerCfg := &kafka.ConsumerConfig{
			Brokers:        cfg.Kafka.Brokers,
			GroupID:        cfg.Kafka.GroupID,
			Topic:          cfg.Kafka.Topic,
			StartOffset:    cfg.Kafka.StartOffset,
			MaxWait:        cfg.Kafka.MaxWait,
			ProcessTimeout: cfg.Kafka.ProcessTimeout,
			RetryInitial:   cfg.Kafka.RetryInitial,
			RetryMax:       cfg.Kafka.RetryMax,
		}
		if err := consumerCfg.Validate(); err != nil {
			return fail(err, pool.Close, closeSnapshots, func() { _ = shutdownTrace(context.Background()) })
		}
		events := usecase.NewLibraryEventService(contentService, orderService, validate.NewEventValidator(), logg)
		consumer = kafka.NewConsumer(consumerCfg, events, logg)
	} else {
		logg.Infof(ctx, "kafka consumer disabled")
	}

	app := &App{
		Logger:          logg,
		HTTPServer:      httpSrv,
		MetricsServer:   metricsSrv,
		KafkaConsumer:   consumer,
		Orders:          orderService,
		gracefulTimeout: cfg.HTTP.GracefulTimeout,
	}

	// Очистка ресурсов (в обратном порядке).
	cleanup := func() {
		if terr := shutdownTrace(context.Background()); terr != nil {
			logg.Warnf(ctx, "shutdown tracing: %v", terr)
		}
		if consumer != nil {
			if err := consumer.Close(); err != nil {
				logg.Warnf(ctx, "kafka consumer close error: %v", err)
			}
		}
		closeSnapshots()
		pool.Close()
		if cerr := cleanupLogger(); cerr != nil {
			logg.Warnf(ctx, "cleanup logger: %v", cerr)
		}
	}

	return app, cleanup, nil
}

// Run — запускает HTTP-сервер и консьюмера; ждёт отмены контекста или ошибки и останавливает их.
// Накопленные изменения порядка дописываются последними, когда новых уже не будет.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 3)

	if a.KafkaConsumer != nil {
		go func() {
			a.Logger.Infof(ctx, "kafka consumer starting")
			if err := a.KafkaConsumer.Run(ctx); err != nil {
				errCh <- err
			}
		}()
	}

	for _, srv := range []*http.Server{a.HTTPServer, a.MetricsServer} {
		if srv == nil {
			continue
		}
		srv := srv
		go func() {
			a.Logger.Infof(ctx, "http server starting (addr=%s)", srv.Addr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
		}()
	}

	// Ожидание сигнала остановки или фоновой ошибки.
	select {
	case <-ctx.Done():
		a.Logger.Infof(ctx, "shutdown requested, starting graceful shutdown")
	case err := <-errCh:
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			a.Logger.Infof(ctx, "background component stopped: %v", err)
		} else {
			a.Logger.Warnf(ctx, "background error: %v", err)
		}
	}

	gt := a.gracefulTimeout
	if gt <= 0 {
		gt = 5 * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), gt)
	defer cancel()

	for _, srv := range []*http.Server{a.HTTPServer, a.MetricsServer} {
		if srv == nil {
			continue
		}
		if err := srv.Shutdown(shutdownCtx); err != nil {
			a.Logger.Warnf(ctx, "http server shutdown failed addr=%s: %v", srv.Addr, err)
		} else {
			a.Logger.Infof(ctx, "http server stopped gracefully addr=%s", srv.Addr)
		}
	}

	if a.KafkaConsumer != nil {
		if err := a.KafkaConsumer.Close(); err != nil {
			a.Logger.Warnf(ctx, "kafka consumer close error: %v", err)
		}
	}

	if a.Orders != nil {
		if err := a.Orders.Close(shutdownCtx); err != nil {
			a.Logger.Errorf(ctx, "final order flush failed: %v", err)
		} else {
			a.Logger.Infof(ctx, "pending order updates flushed")
		}
	}

	a.Logger.Infof(ctx, "service stopped")
	return nil
}
