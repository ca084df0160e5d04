package main

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"golang.org/x/net/netutil"

	"qrgen/internal/cache"
	"qrgen/internal/config"
	"qrgen/internal/handler"
	"qrgen/internal/lock"
	"qrgen/internal/metrics"
	custommiddleware "qrgen/internal/middleware"
	"qrgen/internal/qrimage"
	"qrgen/internal/repository"
	"qrgen/internal/service"
	"qrgen/internal/storage"
	"qrgen/internal/validation"
)

const infraMetricsInterval = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	if err := run(ctx, logger); err != nil {
		logger.Error("application failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := repository.OpenDatabase(&cfg.Database, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := repository.CloseDatabase(db); err != nil {
			logger.Warn("failed to close database", slog.String("error", err.Error()))
		}
	}()

	repo, err := repository.NewRecordRepository(db)
	if err != nil {
		return fmt.Errorf("failed to create repository: %w", err)
	}

	imageCache, err := cache.New(cfg.Cache.MaxSizePow2)
	if err != nil {
		return fmt.Errorf("failed to create cache: %w", err)
	}
	defer imageCache.Close()

	images, err := storage.NewImageStore(&cfg.Storage, imageCache)
	if err != nil {
		return fmt.Errorf("failed to create image store: %w", err)
	}

	locker, closeLocker, err := newLocker(ctx, &cfg.Lock, logger)
	if err != nil {
		return err
	}
	defer closeLocker()

	recorder, err := metrics.NewRecorder(db, &cfg.Metrics, logger)
	if err != nil {
		return fmt.Errorf("failed to create metrics recorder: %w", err)
	}
	recorder.Start(ctx)
	defer recorder.Close()

	go collectInfraMetrics(ctx, recorder, repo, imageCache)

	generation := service.NewGenerationService(repo, qrimage.New(), images, locker, recorder, logger)
	history := service.NewHistoryService(repo, images, recorder)
	urlValidator := validation.NewURLValidator(cfg.Validation.MaxURLLength)

	h := handler.New(generation, history, urlValidator, images, cfg.Storage.ImageRoute, logger)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())
	e.Use(middleware.BodyLimit(cfg.Validation.MaxRequestBodySize))
	e.Use(custommiddleware.Metrics(recorder, "/static", "/health"))
	e.Use(custommiddleware.RequestLogger(logger, "/health"))

	h.Register(e, custommiddleware.RateLimit(&cfg.RateLimit, logger))

	httpAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("starting HTTP server",
		slog.String("addr", httpAddr),
		slog.Int("max_connections", cfg.Server.MaxConnections),
		slog.String("image_dir", cfg.Storage.ImageDir))

	httpListener, err := listen(httpAddr, cfg.Server.MaxConnections)
	if err != nil {
		return fmt.Errorf("failed to create HTTP listener: %w", err)
	}

	httpServer := newServer(e)
	go serve(httpServer, httpListener, logger)

	var httpsServer *http.Server
	if cfg.TLS.Enabled {
		httpsAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.TLS.Port)
		logger.Info("starting HTTPS server", slog.String("addr", httpsAddr))

		cert, err := tls.LoadX509KeyPair(cfg.TLS.CertFile, cfg.TLS.KeyFile)
		if err != nil {
			return fmt.Errorf("failed to load TLS certificate: %w", err)
		}

		httpsListener, err := listen(httpsAddr, cfg.Server.MaxConnections)
		if err != nil {
			return fmt.Errorf("failed to create HTTPS listener: %w", err)
		}

		tlsListener := tls.NewListener(httpsListener, &tls.Config{
			MinVersion:   tls.VersionTLS12,
			Certificates: []tls.Certificate{cert},
		})

		httpsServer = newServer(e)
		go serve(httpsServer, tlsListener, logger)
	}

	<-ctx.Done()
	logger.Info("shutting down servers")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown failed: %w", err)
	}

	if httpsServer != nil {
		if err := httpsServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("https server shutdown failed: %w", err)
		}
	}

	return nil
}

// newLocker picks the redis locker when a redis URL is configured, so several replicas
// sharing one database do not render the same URL twice.
func newLocker(ctx context.Context, cfg *config.LockConfig, logger *slog.Logger) (service.Locker, func(), error) {
	if cfg.RedisURL == "" {
		logger.Info("using in-process url locks")
		return lock.NewLocalLocker(), func() {}, nil
	}

	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse redis url: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	logger.Info("using redis url locks", slog.String("addr", opts.Addr))
	closeFn := func() {
		if err := client.Close(); err != nil {
			logger.Warn("failed to close redis client", slog.String("error", err.Error()))
		}
	}
	return lock.NewRedisLocker(client, cfg.TTL, cfg.RetryDelay, logger), closeFn, nil
}

func listen(addr string, maxConnections int) (net.Listener, error) {
	l, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}
	if maxConnections > 0 {
		l = netutil.LimitListener(l, maxConnections)
	}
	return l, nil
}

func newServer(h http.Handler) *http.Server {
	return &http.Server{
		Handler:        h,
		ReadTimeout:    5 * time.Second,
		WriteTimeout:   15 * time.Second,
		IdleTimeout:    120 * time.Second,
		MaxHeaderBytes: 1 << 14, // 16KB
	}
}

func serve(srv *http.Server, l net.Listener, logger *slog.Logger) {
	if err := srv.Serve(l); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("server error", slog.String("error", err.Error()))
	}
}

func collectInfraMetrics(ctx context.Context, recorder *metrics.Recorder, repo *repository.RecordRepository, imageCache *cache.ImageCache) {
	ticker := time.NewTicker(infraMetricsInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			dbStats := repo.Stats()
			cacheHits, cacheMisses, cacheRatio := imageCache.Stats()

			var memStats runtime.MemStats
			runtime.ReadMemStats(&memStats)

			recorder.RecordInfra(metrics.InfraMetric{
				Time:          time.Now(),
				DBOpen:        dbStats.OpenConnections,
				DBInUse:       dbStats.InUse,
				DBIdle:        dbStats.Idle,
				DBMaxOpen:     dbStats.MaxOpenConnections,
				CacheHits:     int64(cacheHits),
				CacheMisses:   int64(cacheMisses),
				CacheHitRatio: cacheRatio,
				Goroutines:    runtime.NumGoroutine(),
				HeapAllocMB:   float64(memStats.HeapAlloc) / 1024 / 1024,
			})
		}
	}
}
