package service

//go:generate go tool mockery

import (
	"context"

	"qrgen/internal/domain"
)

type RecordRepository interface {
	FindByURL(ctx context.Context, url string) (*domain.QRCodeRecord, error)
	Create(ctx context.Context, rec *domain.QRCodeRecord) error
	Touch(ctx context.Context, rec *domain.QRCodeRecord) error
	ListRecent(ctx context.Context, limit int) ([]domain.QRCodeRecord, error)
	DeleteAll(ctx context.Context) (int64, error)
}

type Synthesizer interface {
	Render(text, fillColor, backColor string) ([]byte, error)
}

type ImageStore interface {
	Save(ctx context.Context, data []byte) (string, error)
	Reference(filename string) string
}

// Locker grants exclusive access per key; the returned func releases it.
type Locker interface {
	Lock(ctx context.Context, key string) (func(), error)
}

type BusinessRecorder interface {
	RecordBusiness(name string, value float64, labels map[string]string)
}
