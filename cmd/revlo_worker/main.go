package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
	"github.com/revlo/revlo_ledger/internal/core/ports/repositories"
	"github.com/revlo/revlo_ledger/internal/core/services"
	"github.com/revlo/revlo_ledger/internal/jobs"
	"github.com/revlo/revlo_ledger/internal/platform/config"
	"github.com/revlo/revlo_ledger/internal/repositories/cache"
	"github.com/revlo/revlo_ledger/internal/repositories/database/pgsql"
	"github.com/revlo/revlo_ledger/pkg/database"
)

// The worker runs project drift repairs, both on demand and on PROJECT_REPAIR_CRON.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		lvl = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl})).
		With(slog.String("component", "worker"))
	slog.SetDefault(logger)

	if cfg.RedisAddr == "" {
		logger.Error("REDIS_ADDR is required to run the worker")
		os.Exit(1)
	}
	if cfg.StorageDriver != config.StorageDriverPostgres {
		logger.Error("The worker requires postgres storage", slog.String("storage", cfg.StorageDriver))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer database.ClosePgxPool(dbPool)

	redisClient := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	defer redisClient.Close()

	var debtCache repositories.DebtSummaryCache = cache.NewRedisDebtCache(redisClient, cfg.DebtCacheTTL)
	container, err := services.NewServiceContainer(cfg, pgsql.NewRepositoryProvider(dbPool), debtCache)
	if err != nil {
		logger.Error("Failed to build services", slog.String("error", err.Error()))
		os.Exit(1)
	}

	repairJob := jobs.NewProjectRepairJob(container.Project, logger)

	var cron []jobs.CronRegistration
	if cfg.ProjectRepairCron != "" {
		task, err := jobs.NewProjectRepairTask(jobs.ProjectRepairPayload{})
		if err != nil {
			logger.Error("Failed to build scheduled repair task", slog.String("error", err.Error()))
			os.Exit(1)
		}
		cron = append(cron, jobs.CronRegistration{
			Spec:    cfg.ProjectRepairCron,
			Task:    task,
			Options: []asynq.Option{asynq.Queue(jobs.QueueDefault), asynq.MaxRetry(3)},
		})
	}

	worker, err := jobs.NewWorker(jobs.WorkerConfig{
		RedisOpts: asynq.RedisClientOpt{Addr: cfg.RedisAddr},
		Logger:    logger,
		Handlers: []jobs.TaskHandler{
			{Type: jobs.TaskProjectRepair, Handler: repairJob.Handle},
		},
		Cron: cron,
	})
	if err != nil {
		logger.Error("Failed to create worker", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := worker.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("Worker stopped with error", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("Worker stopped")
}
