// cmd/skillgap-server/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"skillgap-analyzer/internal/common/camunda"
	"skillgap-analyzer/internal/common/config"
	"skillgap-analyzer/internal/common/database"
	"skillgap-analyzer/internal/common/logger"
	"skillgap-analyzer/internal/common/observability"
	"skillgap-analyzer/internal/http/handler"
	"skillgap-analyzer/internal/http/router"
	"skillgap-analyzer/internal/news"
	"skillgap-analyzer/internal/skillgap"

	asg "skillgap-analyzer/internal/workers/career/analyze-skill-gap"
	gr "skillgap-analyzer/internal/workers/career/generate-roadmap"
	slo "skillgap-analyzer/internal/workers/career/suggest-learning-order"
)

// retryWithBackoff attempts to execute a function with exponential backoff
func retryWithBackoff(operation func() error, maxRetries int, initialDelay time.Duration, log *zap.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for i := 0; i < maxRetries; i++ {
		err = operation()
		if err == nil {
			return nil
		}

		if i < maxRetries-1 {
			log.Warn(fmt.Sprintf("%s failed, retrying...", operationName),
				zap.Error(err),
				zap.Int("attempt", i+1),
				zap.Int("maxRetries", maxRetries),
				zap.Duration("nextRetryIn", delay),
			)
			time.Sleep(delay)
			delay *= 2
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		bootLog := logger.New("info", "console")
		bootLog.Fatal("config load failed", zap.Error(err))
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format, cfg.Logging.Output)
	defer zapLog.Sync()
	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("starting skill-gap analyzer",
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Environment),
		zap.String("catalogSource", cfg.Catalog.Source),
	)

	setGinMode(cfg)

	obs, err := observability.New(cfg.App.Name, prometheus.DefaultRegisterer)
	if err != nil {
		zapLog.Fatal("observability init failed", zap.Error(err))
	}

	ctx := context.Background()
	checks := map[string]handler.Check{}

	// --- Redis (optional) ---
	var redisClient *redis.Client
	if cfg.Database.Redis.Enabled {
		var rc *database.RedisClient
		err = retryWithBackoff(func() error {
			var err error
			rc, err = database.NewRedis(cfg.Database.Redis)
			if err != nil {
				return err
			}
			return database.PingOrClose(ctx, rc)
		}, 10, 2*time.Second, zapLog, "Redis connection")
		if err != nil {
			zapLog.Fatal("redis failed after retries", zap.Error(err))
		}
		defer rc.Close()
		redisClient = rc.Client
		checks["redis"] = rc.Ping
		zapLog.Info("Redis connected successfully")
	}

	// --- Role catalog ---
	provider, closeProvider := buildProvider(ctx, cfg, redisClient, zapLog, log)
	defer closeProvider()
	checks["catalog"] = func(ctx context.Context) error {
		_, err := provider.Catalog(ctx)
		return err
	}

	// --- Zeebe workers (optional) ---
	var workers []*camunda.Worker
	if cfg.Camunda.Enabled {
		var zeebe *camunda.Client
		err = retryWithBackoff(func() error {
			var err error
			zeebe, err = camunda.NewClient(camunda.ConfigFromApp(cfg.Camunda), log)
			return err
		}, 10, 2*time.Second, zapLog, "Zeebe client initialization")
		if err != nil {
			zapLog.Fatal("zeebe client failed after retries", zap.Error(err))
		}
		defer zeebe.Close()
		checks["zeebe"] = zeebe.HealthCheck

		workers = startWorkers(cfg, zeebe, provider, obs, log)
		zapLog.Info("job workers registered", zap.Int("count", len(workers)))
	}

	// --- HTTP server ---
	errs := handler.NewErrorWriter(log, cfg.App.IsDevelopment())
	newsClient := news.NewClient(cfg.News, redisClient, log)

	engine := router.New(router.Handlers{
		SkillGap: handler.NewSkillGapHandler(provider, errs, log),
		Roadmap:  handler.NewRoadmapHandler(errs),
		News:     handler.NewNewsHandler(newsClient, errs),
		Health:   handler.NewHealthHandler(cfg.App.Version, checks, errs),
	}, router.Options{
		AllowedOrigins: cfg.Server.AllowedOrigins,
		Observability:  obs,
		Logger:         log,
	})

	srv := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      engine,
		ReadTimeout:  config.GetDuration(cfg.Server.ReadTimeout),
		WriteTimeout: config.GetDuration(cfg.Server.WriteTimeout),
	}

	go func() {
		zapLog.Info("HTTP server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLog.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	// --- Graceful Shutdown ---
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	zapLog.Info("shutdown signal received")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.GetDuration(cfg.Server.ShutdownTimeout))
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		zapLog.Error("HTTP server shutdown failed", zap.Error(err))
	}
	for _, w := range workers {
		w.Stop()
	}
	if err := obs.Shutdown(shutdownCtx); err != nil {
		zapLog.Error("observability shutdown failed", zap.Error(err))
	}

	zapLog.Info("shutdown complete")
}

func setGinMode(cfg *config.Config) {
	switch {
	case cfg.Server.GinMode != "":
		gin.SetMode(cfg.Server.GinMode)
	case cfg.App.IsDevelopment():
		gin.SetMode(gin.DebugMode)
	default:
		gin.SetMode(gin.ReleaseMode)
	}
}

// buildProvider loads the role tables from files once, or wires the
// Postgres provider when catalog.source is postgres.
func buildProvider(
	ctx context.Context,
	cfg *config.Config,
	redisClient *redis.Client,
	zapLog *zap.Logger,
	log logger.Logger,
) (skillgap.Provider, func()) {
	if cfg.Catalog.Source != config.CatalogSourcePostgres {
		catalog, err := skillgap.LoadCatalog(cfg.Catalog.RoleSkillsPath, cfg.Catalog.LearningOrderPath)
		if err != nil {
			zapLog.Fatal("role catalog load failed", zap.Error(err))
		}
		zapLog.Info("role catalog loaded", zap.Int("roles", catalog.Len()))
		return skillgap.NewStaticProvider(catalog), func() {}
	}

	var pg *database.PostgresClient
	err := retryWithBackoff(func() error {
		var err error
		pg, err = database.NewPostgres(cfg.Database.Postgres)
		if err != nil {
			return err
		}
		return database.PingOrClose(ctx, pg)
	}, 15, 2*time.Second, zapLog, "PostgreSQL connection")
	if err != nil {
		zapLog.Fatal("postgres failed after retries", zap.Error(err))
	}
	zapLog.Info("PostgreSQL connected successfully")

	provider := skillgap.NewPostgresProvider(pg.DB, redisClient, config.GetDuration(cfg.Catalog.CacheTTL), log)
	return provider, func() { pg.Close() }
}

func startWorkers(
	cfg *config.Config,
	zeebe *camunda.Client,
	provider skillgap.Provider,
	obs *observability.Observability,
	log logger.Logger,
) []*camunda.Worker {
	var started []*camunda.Worker
	start := func(taskType string, h camunda.JobHandler) {
		if w := camunda.StartWorker(zeebe.Raw(), taskType, config.GetWorkerConfig(cfg, taskType), h, obs, log); w != nil {
			started = append(started, w)
		}
	}

	analyzeCfg := asg.LoadConfig()
	analyzeCfg.Timeout = workerTimeout(cfg, asg.TaskType, analyzeCfg.Timeout)
	start(asg.TaskType, asg.NewHandler(analyzeCfg, provider, log))

	orderCfg := slo.LoadConfig().Apply(config.GetWorkerConfig(cfg, slo.TaskType))
	start(slo.TaskType, slo.NewHandler(orderCfg, provider, log))

	roadmapCfg := gr.LoadConfig()
	roadmapCfg.Timeout = workerTimeout(cfg, gr.TaskType, roadmapCfg.Timeout)
	start(gr.TaskType, gr.NewHandler(roadmapCfg, log))

	return started
}

func workerTimeout(cfg *config.Config, taskType string, fallback time.Duration) time.Duration {
	if wcfg, ok := cfg.Workers[taskType]; ok && wcfg.Timeout > 0 {
		return config.GetDuration(wcfg.Timeout)
	}
	return fallback
}
