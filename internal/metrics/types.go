package metrics

import "time"

type HTTPMetric struct {
	ID         uint      `gorm:"primaryKey"`
	Time       time.Time `gorm:"index;not null"`
	Method     string    `gorm:"size:16"`
	Path       string    `gorm:"size:255"`
	StatusCode int
	DurationMs float64
	ClientIP   string `gorm:"size:64"`
	Error      string `gorm:"type:text"`
}

func (HTTPMetric) TableName() string { return "http_metrics" }

type BusinessMetric struct {
	ID         uint      `gorm:"primaryKey"`
	Time       time.Time `gorm:"index;not null"`
	MetricName string    `gorm:"size:64;index"`
	Value      float64
	Labels     string `gorm:"type:text"` // JSON object
}

func (BusinessMetric) TableName() string { return "business_metrics" }

type InfraMetric struct {
	ID            uint      `gorm:"primaryKey"`
	Time          time.Time `gorm:"index;not null"`
	DBOpen        int
	DBInUse       int
	DBIdle        int
	DBMaxOpen     int
	CacheHits     int64
	CacheMisses   int64
	CacheHitRatio float64
	Goroutines    int
	HeapAllocMB   float64
}

func (InfraMetric) TableName() string { return "infra_metrics" }
