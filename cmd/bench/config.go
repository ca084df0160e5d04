package main

import (
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	BaseURL            string        `env:"BASE_URL" envDefault:"http://localhost:8080"`
	SeedCount          int           `env:"SEED_COUNT" envDefault:"1000"`
	SeedWorkers        int           `env:"SEED_WORKERS" envDefault:"0"`
	Rate               int           `env:"RATE" envDefault:"200"`
	Duration           time.Duration `env:"DURATION" envDefault:"30s"`
	NewRatio           float64       `env:"NEW_RATIO" envDefault:"0.1"`
	HistoryRatio       float64       `env:"HISTORY_RATIO" envDefault:"0.3"`
	BenchType          string        `env:"BENCH_TYPE" envDefault:"mixed"`
	RateLimitBypass    string        `env:"RATE_LIMIT_BYPASS_SECRET"`
	InsecureSkipVerify bool          `env:"INSECURE_SKIP_VERIFY" envDefault:"false"`
	SeedTimeout        time.Duration `env:"SEED_TIMEOUT" envDefault:"30s"`
	Connections        int           `env:"CONNECTIONS" envDefault:"1000"`
	MaxWorkers         uint64        `env:"MAX_WORKERS" envDefault:"0"`
}

func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
