package metrics

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"gorm.io/gorm"

	"qrgen/internal/config"
)

const insertBatchSize = 200

// Recorder buffers metrics in memory and writes them to the database in batches from
// background goroutines. Record* never block: a full buffer drops the sample.
type Recorder struct {
	db           *gorm.DB
	logger       *slog.Logger
	cfg          *config.MetricsConfig
	httpCh       chan HTTPMetric
	businessCh   chan BusinessMetric
	infraCh      chan InfraMetric
	wg           sync.WaitGroup
	shutdownOnce sync.Once
	shutdownCh   chan struct{}
}

func NewRecorder(db *gorm.DB, cfg *config.MetricsConfig, logger *slog.Logger) (*Recorder, error) {
	if cfg.Enabled {
		if err := db.AutoMigrate(&HTTPMetric{}, &BusinessMetric{}, &InfraMetric{}); err != nil {
			return nil, fmt.Errorf("failed to migrate metrics tables: %w", err)
		}
	}

	return &Recorder{
		db:         db,
		logger:     logger,
		cfg:        cfg,
		httpCh:     make(chan HTTPMetric, cfg.BufferSize),
		businessCh: make(chan BusinessMetric, cfg.BufferSize),
		infraCh:    make(chan InfraMetric, cfg.BufferSize),
		shutdownCh: make(chan struct{}),
	}, nil
}

func (r *Recorder) RecordHTTP(m HTTPMetric) {
	if !r.cfg.Enabled {
		return
	}
	select {
	case r.httpCh <- m:
	default:
		r.logger.Warn("http metrics buffer full, dropping metric")
	}
}

func (r *Recorder) RecordBusiness(name string, value float64, labels map[string]string) {
	if !r.cfg.Enabled {
		return
	}

	labelsJSON := []byte("{}")
	if len(labels) > 0 {
		if b, err := json.Marshal(labels); err == nil {
			labelsJSON = b
		}
	}

	m := BusinessMetric{
		Time:       time.Now().UTC(),
		MetricName: name,
		Value:      value,
		Labels:     string(labelsJSON),
	}
	select {
	case r.businessCh <- m:
	default:
		r.logger.Warn("business metrics buffer full, dropping metric")
	}
}

func (r *Recorder) RecordInfra(m InfraMetric) {
	if !r.cfg.Enabled {
		return
	}
	select {
	case r.infraCh <- m:
	default:
		r.logger.Warn("infra metrics buffer full, dropping metric")
	}
}

func (r *Recorder) Start(ctx context.Context) {
	if !r.cfg.Enabled {
		r.logger.Info("metrics recording disabled")
		return
	}

	interval := time.Duration(r.cfg.FlushInterval) * time.Millisecond

	r.wg.Add(3)
	go flushLoop(ctx, r, r.httpCh, interval, "http")
	go flushLoop(ctx, r, r.businessCh, interval, "business")
	go flushLoop(ctx, r, r.infraCh, interval, "infra")

	r.logger.Info("metrics recorder started",
		slog.Int("buffer_size", r.cfg.BufferSize),
		slog.Int("flush_interval_ms", r.cfg.FlushInterval))
}

// Close stops the flushers after writing whatever is still buffered.
func (r *Recorder) Close() {
	r.shutdownOnce.Do(func() {
		close(r.shutdownCh)
		r.wg.Wait()
	})
}

func flushLoop[T any](ctx context.Context, r *Recorder, ch chan T, interval time.Duration, kind string) {
	defer r.wg.Done()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	batch := make([]T, 0, r.cfg.FlushThreshold)

	for {
		select {
		case <-ctx.Done():
			drainAndFlush(r, ch, batch, kind)
			return
		case <-r.shutdownCh:
			drainAndFlush(r, ch, batch, kind)
			return
		case m := <-ch:
			batch = append(batch, m)
			if len(batch) >= r.cfg.FlushThreshold {
				writeBatch(ctx, r, batch, kind)
				batch = batch[:0]
			}
		case <-ticker.C:
			if len(batch) > 0 {
				writeBatch(ctx, r, batch, kind)
				batch = batch[:0]
			}
		}
	}
}

func drainAndFlush[T any](r *Recorder, ch chan T, batch []T, kind string) {
	for {
		select {
		case m := <-ch:
			batch = append(batch, m)
		default:
			if len(batch) > 0 {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				writeBatch(ctx, r, batch, kind)
				cancel()
			}
			return
		}
	}
}

func writeBatch[T any](ctx context.Context, r *Recorder, batch []T, kind string) {
	if len(batch) == 0 {
		return
	}

	if err := r.db.WithContext(ctx).CreateInBatches(&batch, insertBatchSize).Error; err != nil {
		r.logger.Error("failed to write metrics batch",
			slog.String("kind", kind),
			slog.Int("size", len(batch)),
			slog.String("error", err.Error()))
	}
}
