package config

import (
	"log"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env      string `env:"ENV" env-required:"true"`
	LogLevel string `env:"LOG_LEVEL" env-default:"info" env-description:"logging level, debug, info, etc."`
	Database Database
	Importer Importer
	Queue    Queue
}

type Database struct {
	Net                string        `env:"DB_NET" env-default:"tcp"`
	Server             string        `env:"DB_SERVER" env-required:"true"`
	DBName             string        `env:"DB_NAME" env-required:"true"`
	User               string        `env:"DB_USER" env-required:"true"`
	Password           string        `env:"DB_PASSWORD" env-required:"true"`
	TimeZone           string        `env:"DB_TIMEZONE"`
	Timeout            time.Duration `env:"DB_TIMEOUT" env-default:"2s"`
	MaxIdleConnections int           `env:"DB_MAX_IDLE_CONNECTIONS" env-default:"40"`
	MaxOpenConnections int           `env:"DB_MAX_OPEN_CONNECTIONS" env-default:"40"`
}

type Importer struct {
	// Countries selects which registered import sources run, by source name.
	Countries []string `env:"IMPORT_COUNTRIES" env-default:"portugal" env-description:"import sources to run"`
	// DataDir is the root directory holding per-country raw datasets.
	DataDir string `env:"IMPORT_DATA_DIR" env-default:"./data" env-description:"root directory with raw country datasets"`
	// Workers bounds the parallel postal record resolution fan-out.
	Workers int `env:"IMPORT_WORKERS" env-default:"8" env-description:"parallel postal record resolver workers"`
	// BatchSize bounds rows per bulk insert statement.
	BatchSize int `env:"IMPORT_BATCH_SIZE" env-default:"500"`
	// Enqueue hands imports to the background worker instead of running
	// them inline.
	Enqueue bool `env:"IMPORT_ENQUEUE" env-default:"false"`
}

type Queue struct {
	Type  string `env:"REDIS_TYPE" env-default:"redis" env-description:"specifies provider, one of redis/redisCluster"`
	Redis struct {
		Address  string `env:"REDIS_ADDR" env-default:"" env-description:"redis host:port single instance"`
		Password string `env:"REDIS_PASSWORD" env-default:"" env-description:"redis password if exists"`
	}
	RedisCluster struct {
		Addresses []string `env:"REDIS_CLUSTER_ADDRS" env-default:"" env-description:"redis cluster nodes"`
		Password  string   `env:"REDIS_PASSWORD" env-default:"" env-description:"redis password if exists"`
	}
	Concurrency int `env:"QUEUE_CONCURRENCY" env-default:"1" env-description:"imports processed at once; one import already saturates the database"`
}

func MustLoad() *Config {
	var cfg Config

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		log.Fatalf("cannot read config from environment: %s", err)
	}

	return &cfg
}
