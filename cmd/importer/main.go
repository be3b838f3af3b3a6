package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/ubiwhere/go-postal-codes/internal/config"
	"github.com/ubiwhere/go-postal-codes/internal/db"
	"github.com/ubiwhere/go-postal-codes/internal/importer"
	"github.com/ubiwhere/go-postal-codes/internal/queue/asynqserver"
	"github.com/ubiwhere/go-postal-codes/internal/queue/client"
	"github.com/ubiwhere/go-postal-codes/internal/repository"
	"github.com/ubiwhere/go-postal-codes/internal/source"
	"github.com/ubiwhere/go-postal-codes/internal/source/portugal"
	"github.com/ubiwhere/go-postal-codes/pkg/logger"
)

func main() {
	// Init cfg from environment variables
	cfg := config.MustLoad()

	appLogger := logger.SetupLogger(cfg.Env)
	defer appLogger.Sync()

	appLogger.Info("starting postal codes importer", zap.String("env", cfg.Env))

	if cfg.Importer.Enqueue {
		enqueue(cfg, appLogger)
		return
	}

	// Init database
	dbMySQL, err := db.New(cfg.Database)
	if err != nil {
		appLogger.Error("mysql connect problem", zap.Error(err))
		os.Exit(1)
	}
	defer func() {
		if err := dbMySQL.Close(); err != nil {
			appLogger.Error("error when closing", zap.Error(err))
		}
	}()
	appLogger.Info("mysql connection done")

	if err := db.EnsureSchema(dbMySQL); err != nil {
		appLogger.Error("schema bootstrap failed", zap.Error(err))
		os.Exit(1)
	}

	registry := source.Registry{
		portugal.Name: portugal.New,
	}

	repos := repository.NewRepositories(dbMySQL)
	imp := importer.New(dbMySQL, repos, registry, cfg.Importer, appLogger)

	// Stop mid-import on SIGTERM/SIGINT; the open transaction rolls back and
	// the previous dataset stays in place.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	if err := imp.Run(ctx); err != nil {
		appLogger.Error("import run finished with failures", zap.Error(err))
		os.Exit(1)
	}
	appLogger.Info("import run finished")
}

func enqueue(cfg *config.Config, appLogger *zap.Logger) {
	queueClient := client.New(asynqserver.RedisOptions(cfg.Queue))
	defer queueClient.Close()

	for _, name := range cfg.Importer.Countries {
		info, err := queueClient.EnqueueImport(context.Background(), name)
		if err != nil {
			appLogger.Error("enqueue failed", zap.String("source", name), zap.Error(err))
			os.Exit(1)
		}
		appLogger.Info("import enqueued",
			zap.String("source", name),
			zap.String("task_id", info.ID),
		)
	}
}
