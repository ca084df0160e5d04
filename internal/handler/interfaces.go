package handler

//go:generate go tool mockery

import (
	"context"

	"qrgen/internal/domain"
)

type GenerationService interface {
	Generate(ctx context.Context, url string) (*domain.GenerateResponse, error)
}

type HistoryService interface {
	Recent(ctx context.Context) ([]domain.HistoryItem, error)
	Clear(ctx context.Context) error
}

type URLValidator interface {
	ValidateURL(url string) error
}

type ImageReader interface {
	Read(filename string) ([]byte, error)
}
