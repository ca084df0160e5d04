package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"qrgen/internal/domain"
	"qrgen/internal/service"
	"qrgen/internal/service/mocks"
)

func TestRecent_MapsRecords(t *testing.T) {
	berlin := time.FixedZone("CEST", 2*60*60)

	repo := mocks.NewMockRecordRepository(t)
	repo.EXPECT().ListRecent(mock.Anything, service.HistoryLimit).Return([]domain.QRCodeRecord{
		{
			ID:        2,
			URL:       "https://x.com/foo",
			ImagePath: "qr_b.png",
			Domain:    "x.com",
			Category:  "Twitter/X",
			CreatedAt: time.Date(2024, 5, 1, 14, 30, 15, 123000, berlin),
		},
		{
			ID:        1,
			URL:       "https://example.org",
			ImagePath: "qr_a.png",
			Domain:    "example.org",
			Category:  "Other",
			CreatedAt: time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC),
		},
	}, nil)

	images := mocks.NewMockImageStore(t)
	images.EXPECT().Reference(mock.Anything).RunAndReturn(func(name string) string {
		return "http://localhost:8080/images/" + name
	})

	svc := service.NewHistoryService(repo, images, mocks.NewMockBusinessRecorder(t))

	items, err := svc.Recent(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, domain.HistoryItem{
		ID:        2,
		URL:       "https://x.com/foo",
		ImagePath: "http://localhost:8080/images/qr_b.png",
		Domain:    "x.com",
		Category:  "Twitter/X",
		CreatedAt: "2024-05-01 12:30:15",
	}, items[0])
	assert.Equal(t, "2024-05-01 09:00:00", items[1].CreatedAt)
}

func TestRecent_EmptyIsNotNil(t *testing.T) {
	repo := mocks.NewMockRecordRepository(t)
	repo.EXPECT().ListRecent(mock.Anything, service.HistoryLimit).Return([]domain.QRCodeRecord{}, nil)

	svc := service.NewHistoryService(repo, mocks.NewMockImageStore(t), mocks.NewMockBusinessRecorder(t))

	items, err := svc.Recent(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestRecent_Error(t *testing.T) {
	dbErr := errors.New("no such table")

	repo := mocks.NewMockRecordRepository(t)
	repo.EXPECT().ListRecent(mock.Anything, service.HistoryLimit).Return(nil, dbErr)

	svc := service.NewHistoryService(repo, mocks.NewMockImageStore(t), mocks.NewMockBusinessRecorder(t))

	_, err := svc.Recent(context.Background())
	assert.ErrorIs(t, err, service.ErrPersistence)
	assert.ErrorIs(t, err, dbErr)
}

func TestClear(t *testing.T) {
	repo := mocks.NewMockRecordRepository(t)
	repo.EXPECT().DeleteAll(mock.Anything).Return(int64(4), nil)

	recorder := mocks.NewMockBusinessRecorder(t)
	recorder.EXPECT().RecordBusiness("history_cleared", float64(4), mock.Anything).Return()

	svc := service.NewHistoryService(repo, mocks.NewMockImageStore(t), recorder)

	require.NoError(t, svc.Clear(context.Background()))
}

func TestClear_Error(t *testing.T) {
	dbErr := errors.New("database is locked")

	repo := mocks.NewMockRecordRepository(t)
	repo.EXPECT().DeleteAll(mock.Anything).Return(int64(0), dbErr)

	svc := service.NewHistoryService(repo, mocks.NewMockImageStore(t), mocks.NewMockBusinessRecorder(t))

	err := svc.Clear(context.Background())
	assert.ErrorIs(t, err, service.ErrPersistence)
	assert.ErrorIs(t, err, dbErr)
}
