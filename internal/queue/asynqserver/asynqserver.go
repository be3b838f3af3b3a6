package asynqserver

import (
	"github.com/hibiken/asynq"

	"github.com/ubiwhere/go-postal-codes/internal/config"
	"github.com/ubiwhere/go-postal-codes/internal/importer"
	"github.com/ubiwhere/go-postal-codes/internal/queue/processor"
	"github.com/ubiwhere/go-postal-codes/internal/queue/task"
)

const (
	RedisTypeSingle  = "redis"
	RedisTypeCluster = "redisCluster"
)

func New(cfg config.Queue, imp *importer.Importer) (*asynq.Server, *asynq.ServeMux) {
	mux, queues := getQueues(imp)
	srv := asynq.NewServer(
		RedisOptions(cfg),
		asynq.Config{
			Concurrency: cfg.Concurrency,
			LogLevel:    asynq.ErrorLevel,
			Queues:      queues,
		},
	)

	return srv, mux
}

func RedisOptions(cfg config.Queue) asynq.RedisConnOpt {
	var opts asynq.RedisConnOpt
	if cfg.Type == RedisTypeCluster {
		opts = asynq.RedisClusterClientOpt{Addrs: cfg.RedisCluster.Addresses, Password: cfg.RedisCluster.Password}
	} else {
		opts = asynq.RedisClientOpt{Addr: cfg.Redis.Address, Password: cfg.Redis.Password}
	}
	return opts
}

func getQueues(imp *importer.Importer) (*asynq.ServeMux, map[string]int) {
	mux := asynq.NewServeMux()
	mux.Handle(task.ImportCountryTaskName, processor.NewImportCountryProcessor(imp))
	queues := map[string]int{
		task.ImportCountryQueueName: 1,
	}
	return mux, queues
}
