package attack

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"io"
	"time"

	vegeta "github.com/tsenart/vegeta/v12/lib"
)

const (
	TypeGenerate = "generate"
	TypeRepeat   = "repeat"
	TypeHistory  = "history"
	TypeMixed    = "mixed"
)

var ErrNoSeededURLs = errors.New("attack requires seeded urls")

type Config struct {
	BaseURL            string
	SeededURLs         []string
	Rate               int
	Duration           time.Duration
	NewRatio           float64
	HistoryRatio       float64
	Type               string
	RateLimitBypass    string
	InsecureSkipVerify bool
	Connections        int
	MaxWorkers         uint64
}

// NeedsSeed reports whether attackType replays previously generated URLs.
func NeedsSeed(attackType string) bool {
	return attackType == TypeRepeat || attackType == TypeMixed
}

func Targeter(cfg *Config) (vegeta.Targeter, error) {
	if NeedsSeed(cfg.Type) && len(cfg.SeededURLs) == 0 {
		return nil, fmt.Errorf("%s: %w", cfg.Type, ErrNoSeededURLs)
	}

	switch cfg.Type {
	case TypeGenerate:
		return GenerateTargeter(cfg.BaseURL, cfg.RateLimitBypass), nil
	case TypeRepeat:
		return RepeatTargeter(cfg.BaseURL, cfg.SeededURLs, cfg.RateLimitBypass), nil
	case TypeHistory:
		return HistoryTargeter(cfg.BaseURL), nil
	case TypeMixed:
		return MixedTargeter(cfg.BaseURL, cfg.SeededURLs, cfg.NewRatio, cfg.HistoryRatio, cfg.RateLimitBypass), nil
	default:
		return nil, fmt.Errorf("unknown attack type: %s", cfg.Type)
	}
}

func Run(ctx context.Context, cfg *Config, out io.Writer) error {
	targeter, err := Targeter(cfg)
	if err != nil {
		return err
	}

	opts := []func(*vegeta.Attacker){
		vegeta.Redirects(-1),
		vegeta.KeepAlive(true),
		vegeta.Timeout(5 * time.Second),
		vegeta.MaxBody(0),
		vegeta.HTTP2(false),
		vegeta.TLSConfig(&tls.Config{InsecureSkipVerify: cfg.InsecureSkipVerify}), //nolint:gosec // self-signed bench targets
	}
	if cfg.Connections > 0 {
		opts = append(opts, vegeta.Connections(cfg.Connections))
	}
	if cfg.MaxWorkers > 0 {
		opts = append(opts, vegeta.MaxWorkers(cfg.MaxWorkers))
	}
	attacker := vegeta.NewAttacker(opts...)

	rate := vegeta.Rate{Freq: cfg.Rate, Per: time.Second}
	_, _ = fmt.Fprintf(out, "Starting %s attack: rate=%d/s duration=%s\n", cfg.Type, cfg.Rate, cfg.Duration)

	stop := context.AfterFunc(ctx, func() { attacker.Stop() })
	defer stop()

	var metrics vegeta.Metrics
	for res := range attacker.Attack(targeter, rate, cfg.Duration, cfg.Type) {
		metrics.Add(res)
	}
	metrics.Close()

	return vegeta.NewTextReporter(&metrics).Report(out)
}
