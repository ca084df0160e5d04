package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"qrgen/internal/domain"
)

var (
	ErrRecordNotFound = errors.New("record not found")
	ErrDuplicateURL   = errors.New("record for url already exists")
)

type RecordRepository struct {
	db  *gorm.DB
	now func() time.Time
}

// NewRecordRepository creates the qr_code_records table and its unique url index if
// they do not exist yet.
func NewRecordRepository(db *gorm.DB) (*RecordRepository, error) {
	if err := db.AutoMigrate(&domain.QRCodeRecord{}); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	return &RecordRepository{db: db, now: time.Now}, nil
}

func (r *RecordRepository) FindByURL(ctx context.Context, url string) (*domain.QRCodeRecord, error) {
	var records []domain.QRCodeRecord
	err := r.db.WithContext(ctx).Where("url = ?", url).Limit(1).Find(&records).Error
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, ErrRecordNotFound
	}
	return &records[0], nil
}

// Create inserts rec and fills in its id and timestamp. A second row for the same url
// is rejected by the unique index and reported as ErrDuplicateURL.
func (r *RecordRepository) Create(ctx context.Context, rec *domain.QRCodeRecord) error {
	rec.CreatedAt = r.timestamp()

	err := r.db.WithContext(ctx).Create(rec).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateURL
	}
	return err
}

// Touch moves rec.CreatedAt to now, keeping it strictly after its previous value.
func (r *RecordRepository) Touch(ctx context.Context, rec *domain.QRCodeRecord) error {
	ts := r.timestamp()
	if !ts.After(rec.CreatedAt) {
		ts = rec.CreatedAt.Add(time.Microsecond)
	}

	res := r.db.WithContext(ctx).Model(&domain.QRCodeRecord{}).
		Where("id = ?", rec.ID).
		Update("created_at", ts)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrRecordNotFound
	}

	rec.CreatedAt = ts
	return nil
}

func (r *RecordRepository) ListRecent(ctx context.Context, limit int) ([]domain.QRCodeRecord, error) {
	records := make([]domain.QRCodeRecord, 0, limit)
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Order("id DESC").
		Limit(limit).
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

// DeleteAll removes every record in one transaction; on failure nothing is removed.
func (r *RecordRepository) DeleteAll(ctx context.Context) (int64, error) {
	var deleted int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&domain.QRCodeRecord{})
		deleted = res.RowsAffected
		return res.Error
	})
	if err != nil {
		return 0, err
	}
	return deleted, nil
}

func (r *RecordRepository) Stats() sql.DBStats {
	sqlDB, err := r.db.DB()
	if err != nil {
		return sql.DBStats{}
	}
	return sqlDB.Stats()
}

func (r *RecordRepository) timestamp() time.Time {
	return r.now().UTC().Truncate(time.Microsecond)
}
