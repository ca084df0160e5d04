package domain

import "time"

// TimestampLayout is the wire format of created_at in history responses.
const TimestampLayout = "2006-01-02 15:04:05"

// QRCodeRecord is one generated code. ImagePath holds the image filename; the servable
// reference is resolved at read time so stored rows carry no host-dependent URLs.
type QRCodeRecord struct {
	ID        uint      `gorm:"primaryKey"`
	URL       string    `gorm:"size:2048;uniqueIndex;not null"`
	ImagePath string    `gorm:"size:255;not null"`
	Domain    string    `gorm:"size:255"`
	Category  string    `gorm:"size:50"`
	CreatedAt time.Time `gorm:"index;not null"`
}

func (QRCodeRecord) TableName() string {
	return "qr_code_records"
}

type GenerateRequest struct {
	URL string `json:"url"`
}

type GenerateResponse struct {
	Message     string `json:"message"`
	QRImage     string `json:"qr_image"`
	OriginalURL string `json:"original_url"`
	Domain      string `json:"domain"`
	Category    string `json:"category"`
}

type HistoryItem struct {
	ID        uint   `json:"id"`
	URL       string `json:"url"`
	ImagePath string `json:"image_path"`
	Domain    string `json:"domain"`
	Category  string `json:"category"`
	CreatedAt string `json:"created_at"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
