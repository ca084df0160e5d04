package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"qrgen/internal/config"
)

const (
	filenamePrefix = "qr_"
	filenameExt    = ".png"
)

var (
	ErrImageNotFound   = errors.New("image not found")
	ErrInvalidFilename = errors.New("invalid image filename")

	filenamePattern = regexp.MustCompile(`^qr_[0-9a-f]{32}\.png$`)
)

type Cache interface {
	Get(filename string) ([]byte, bool)
	Set(filename string, data []byte)
}

// ImageStore writes rendered QR codes into a directory and resolves them back for
// the image route. It backs both the persistent and the ephemeral deployment: only
// the directory and the public base URL differ.
type ImageStore struct {
	dir           string
	route         string
	publicBaseURL string
	cache         Cache
}

func NewImageStore(cfg *config.StorageConfig, cache Cache) (*ImageStore, error) {
	if err := os.MkdirAll(cfg.ImageDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create image directory: %w", err)
	}

	return &ImageStore{
		dir:           cfg.ImageDir,
		route:         NormalizeRoute(cfg.ImageRoute),
		publicBaseURL: strings.TrimRight(cfg.PublicBaseURL, "/"),
		cache:         cache,
	}, nil
}

// NormalizeRoute returns route with a single leading slash and no trailing one.
// The root route normalizes to "" so that route+"/"+filename stays a valid path.
func NormalizeRoute(route string) string {
	route = strings.Trim(route, "/")
	if route == "" {
		return ""
	}
	return "/" + route
}

// NewFilename returns "qr_" followed by a random 128-bit identifier in hex.
func NewFilename() string {
	id := uuid.New()
	return filenamePrefix + strings.ReplaceAll(id.String(), "-", "") + filenameExt
}

// Save stores data under a fresh filename and returns that filename. The file appears
// atomically so the image route never serves a partial PNG.
func (s *ImageStore) Save(ctx context.Context, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	filename := NewFilename()

	tmp, err := os.CreateTemp(s.dir, ".upload-*")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	defer func() {
		_ = os.Remove(tmp.Name()) // no-op once renamed
	}()

	if err := tmp.Chmod(0o644); err != nil {
		_ = tmp.Close()
		return "", fmt.Errorf("failed to set image permissions: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return "", fmt.Errorf("failed to write image: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("failed to close image: %w", err)
	}
	if err := os.Rename(tmp.Name(), filepath.Join(s.dir, filename)); err != nil {
		return "", fmt.Errorf("failed to move image into place: %w", err)
	}

	s.cache.Set(filename, data)
	return filename, nil
}

func (s *ImageStore) Read(filename string) ([]byte, error) {
	if !filenamePattern.MatchString(filename) {
		return nil, ErrInvalidFilename
	}

	if data, ok := s.cache.Get(filename); ok {
		return data, nil
	}

	data, err := os.ReadFile(filepath.Join(s.dir, filename))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrImageNotFound
		}
		return nil, fmt.Errorf("failed to read image: %w", err)
	}

	s.cache.Set(filename, data)
	return data, nil
}

// Reference turns a stored filename into the URL clients fetch the image from.
func (s *ImageStore) Reference(filename string) string {
	return s.publicBaseURL + s.route + "/" + filename
}
