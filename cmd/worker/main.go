package main

import (
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/ubiwhere/go-postal-codes/internal/config"
	"github.com/ubiwhere/go-postal-codes/internal/db"
	"github.com/ubiwhere/go-postal-codes/internal/importer"
	"github.com/ubiwhere/go-postal-codes/internal/queue/asynqserver"
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

	appLogger.Info("starting import worker", zap.String("env", cfg.Env))

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

	srv, mux := asynqserver.New(cfg.Queue, imp)
	go func() {
		if err := srv.Run(mux); err != nil {
			appLogger.Error("error occurred while running queue server", zap.Error(err))
			os.Exit(1)
		}
	}()
	appLogger.Info("worker started")

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	<-quit

	srv.Shutdown()
	appLogger.Info("worker stopped")
}
