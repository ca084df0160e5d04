package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Server     ServerConfig
	TLS        TLSConfig
	Database   DatabaseConfig
	Storage    StorageConfig
	Validation ValidationConfig
	RateLimit  RateLimitConfig
	Cache      CacheConfig
	Lock       LockConfig
	Metrics    MetricsConfig
}

type ServerConfig struct {
	Host           string `env:"SERVER_HOST" envDefault:"localhost"`
	Port           int    `env:"SERVER_PORT" envDefault:"8080"`
	MaxConnections int    `env:"SERVER_MAX_CONNECTIONS" envDefault:"0"`
}

type TLSConfig struct {
	Enabled  bool   `env:"TLS_ENABLED" envDefault:"false"`
	Port     int    `env:"TLS_PORT" envDefault:"8443"`
	CertFile string `env:"TLS_CERT_FILE"`
	KeyFile  string `env:"TLS_KEY_FILE"`
}

// DatabaseConfig selects the record store. Driver is "sqlite" (embedded file) or "postgres".
type DatabaseConfig struct {
	Driver     string `env:"DB_DRIVER" envDefault:"sqlite"`
	SQLitePath string `env:"DB_SQLITE_PATH" envDefault:"qrcodes.db"`
	Host       string `env:"POSTGRES_HOST" envDefault:"localhost"`
	Port       int    `env:"POSTGRES_PORT" envDefault:"5432"`
	User       string `env:"POSTGRES_USER" envDefault:"postgres"`
	Password   string `env:"POSTGRES_PASSWORD" envDefault:"postgres"`
	DBName     string `env:"POSTGRES_DB" envDefault:"qrgen"`
	SSLMode    string `env:"POSTGRES_SSLMODE" envDefault:"disable"`
}

// StorageConfig describes where images live and how clients reach them. An empty
// PublicBaseURL yields host-relative references such as "/images/qr_<hex>.png".
type StorageConfig struct {
	ImageDir      string `env:"STORAGE_IMAGE_DIR" envDefault:"static/images"`
	ImageRoute    string `env:"STORAGE_IMAGE_ROUTE" envDefault:"/images"`
	PublicBaseURL string `env:"PUBLIC_BASE_URL"`
}

type ValidationConfig struct {
	MaxURLLength       int    `env:"VALIDATION_MAX_URL_LENGTH" envDefault:"2048"`
	MaxRequestBodySize string `env:"VALIDATION_MAX_REQUEST_BODY_SIZE" envDefault:"16K"`
}

type RateLimitConfig struct {
	RPS           float64 `env:"RATE_LIMIT_RPS" envDefault:"20"`
	Burst         int     `env:"RATE_LIMIT_BURST" envDefault:"40"`
	ExpireMinutes int     `env:"RATE_LIMIT_EXPIRE_MINUTES" envDefault:"3"`
	BypassSecret  string  `env:"RATE_LIMIT_BYPASS_SECRET"`
}

type CacheConfig struct {
	MaxSizePow2 int `env:"CACHE_MAX_SIZE_POW2" envDefault:"26"`
}

// LockConfig enables cross-process deduplication when RedisURL is set; otherwise
// per-URL locking is process-local.
type LockConfig struct {
	RedisURL   string        `env:"REDIS_URL"`
	TTL        time.Duration `env:"LOCK_TTL" envDefault:"10s"`
	RetryDelay time.Duration `env:"LOCK_RETRY_DELAY" envDefault:"25ms"`
}

type MetricsConfig struct {
	Enabled        bool `env:"METRICS_ENABLED" envDefault:"true"`
	BufferSize     int  `env:"METRICS_BUFFER_SIZE" envDefault:"4096"`
	FlushInterval  int  `env:"METRICS_FLUSH_INTERVAL_MS" envDefault:"1000"`
	FlushThreshold int  `env:"METRICS_FLUSH_THRESHOLD" envDefault:"500"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
