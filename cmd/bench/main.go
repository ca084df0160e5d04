// Command bench drives load against a running qrgen server: it seeds distinct URLs,
// then attacks generation and history routes with vegeta and prints a text report.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"qrgen/internal/bench/attack"
	"qrgen/internal/bench/seed"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var urls []string
	if attack.NeedsSeed(cfg.BenchType) {
		urls, err = seed.Run(ctx, &seed.Config{
			BaseURL:            cfg.BaseURL,
			Count:              cfg.SeedCount,
			Workers:            cfg.SeedWorkers,
			BypassSecret:       cfg.RateLimitBypass,
			InsecureSkipVerify: cfg.InsecureSkipVerify,
			Timeout:            cfg.SeedTimeout,
		}, os.Stdout)
		if err != nil {
			return fmt.Errorf("seed failed: %w", err)
		}
	}

	return attack.Run(ctx, &attack.Config{
		BaseURL:            cfg.BaseURL,
		SeededURLs:         urls,
		Rate:               cfg.Rate,
		Duration:           cfg.Duration,
		NewRatio:           cfg.NewRatio,
		HistoryRatio:       cfg.HistoryRatio,
		Type:               cfg.BenchType,
		RateLimitBypass:    cfg.RateLimitBypass,
		InsecureSkipVerify: cfg.InsecureSkipVerify,
		Connections:        cfg.Connections,
		MaxWorkers:         cfg.MaxWorkers,
	}, os.Stdout)
}
