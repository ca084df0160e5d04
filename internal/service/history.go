package service

import (
	"context"
	"fmt"

	"qrgen/internal/domain"
)

// HistoryLimit caps how many records the history view returns.
const HistoryLimit = 10

type HistoryService struct {
	repo     RecordRepository
	images   ImageStore
	recorder BusinessRecorder
}

func NewHistoryService(repo RecordRepository, images ImageStore, recorder BusinessRecorder) *HistoryService {
	return &HistoryService{
		repo:     repo,
		images:   images,
		recorder: recorder,
	}
}

// Recent lists the newest records first with created_at rendered in UTC.
func (s *HistoryService) Recent(ctx context.Context) ([]domain.HistoryItem, error) {
	records, err := s.repo.ListRecent(ctx, HistoryLimit)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to list records: %w", ErrPersistence, err)
	}

	items := make([]domain.HistoryItem, len(records))
	for i, rec := range records {
		items[i] = domain.HistoryItem{
			ID:        rec.ID,
			URL:       rec.URL,
			ImagePath: s.images.Reference(rec.ImagePath),
			Domain:    rec.Domain,
			Category:  rec.Category,
			CreatedAt: rec.CreatedAt.UTC().Format(domain.TimestampLayout),
		}
	}
	return items, nil
}

func (s *HistoryService) Clear(ctx context.Context) error {
	deleted, err := s.repo.DeleteAll(ctx)
	if err != nil {
		return fmt.Errorf("%w: failed to delete records: %w", ErrPersistence, err)
	}

	s.recorder.RecordBusiness("history_cleared", float64(deleted), nil)
	return nil
}
