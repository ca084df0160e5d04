package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"qrgen/internal/classifier"
	"qrgen/internal/domain"
	"qrgen/internal/repository"
)

const (
	MsgGenerated = "QR Code generated successfully"
	MsgRetrieved = "QR Code retrieved from history"
)

type GenerationService struct {
	repo     RecordRepository
	synth    Synthesizer
	images   ImageStore
	locker   Locker
	recorder BusinessRecorder
	logger   *slog.Logger
}

func NewGenerationService(
	repo RecordRepository,
	synth Synthesizer,
	images ImageStore,
	locker Locker,
	recorder BusinessRecorder,
	logger *slog.Logger,
) *GenerationService {
	return &GenerationService{
		repo:     repo,
		synth:    synth,
		images:   images,
		locker:   locker,
		recorder: recorder,
		logger:   logger,
	}
}

// Generate returns the QR code for url, rendering a new one only when url has no
// record yet. Lookup and insert run under a per-url lock; the unique index on url
// catches anything the lock cannot see, such as an expired distributed lock.
func (s *GenerationService) Generate(ctx context.Context, url string) (*domain.GenerateResponse, error) {
	unlock, err := s.locker.Lock(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("failed to lock url: %w", err)
	}
	defer unlock()

	existing, err := s.repo.FindByURL(ctx, url)
	if err == nil {
		return s.fromHistory(ctx, existing)
	}
	if !errors.Is(err, repository.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: failed to find record: %w", ErrPersistence, err)
	}

	c := classifier.Classify(url)

	png, err := s.synth.Render(url, c.FillColor, c.BackColor)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSynthesis, err)
	}

	filename, err := s.images.Save(ctx, png)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStorageWrite, err)
	}

	rec := &domain.QRCodeRecord{
		URL:       url,
		ImagePath: filename,
		Domain:    c.Domain,
		Category:  c.Category,
	}
	if err := s.repo.Create(ctx, rec); err != nil {
		if errors.Is(err, repository.ErrDuplicateURL) {
			return s.lostRace(ctx, url, filename)
		}
		return nil, fmt.Errorf("%w: failed to create record: %w", ErrPersistence, err)
	}

	s.recorder.RecordBusiness("qr_generated", 1, map[string]string{
		"category": c.Category,
		"domain":   c.Domain,
	})

	return &domain.GenerateResponse{
		Message:     MsgGenerated,
		QRImage:     s.images.Reference(filename),
		OriginalURL: url,
		Domain:      c.Domain,
		Category:    c.Category,
	}, nil
}

func (s *GenerationService) fromHistory(ctx context.Context, rec *domain.QRCodeRecord) (*domain.GenerateResponse, error) {
	if err := s.repo.Touch(ctx, rec); err != nil {
		return nil, fmt.Errorf("%w: failed to touch record: %w", ErrPersistence, err)
	}

	s.recorder.RecordBusiness("qr_history_hit", 1, map[string]string{
		"category": rec.Category,
	})

	return &domain.GenerateResponse{
		Message:     MsgRetrieved,
		QRImage:     s.images.Reference(rec.ImagePath),
		OriginalURL: rec.URL,
		Domain:      rec.Domain,
		Category:    rec.Category,
	}, nil
}

// lostRace serves the record another writer inserted first. The image we just wrote
// stays on disk unreferenced.
func (s *GenerationService) lostRace(ctx context.Context, url, orphan string) (*domain.GenerateResponse, error) {
	s.logger.Warn("concurrent generation for url, keeping existing record",
		slog.String("url", url),
		slog.String("orphan_image", orphan))

	existing, err := s.repo.FindByURL(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to find record after conflict: %w", ErrPersistence, err)
	}
	return s.fromHistory(ctx, existing)
}
