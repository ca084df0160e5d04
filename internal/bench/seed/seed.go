package seed

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"runtime"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"qrgen/internal/middleware"
)

type Config struct {
	BaseURL            string
	Count              int
	Workers            int
	BypassSecret       string
	InsecureSkipVerify bool
	Timeout            time.Duration
}

type generateRequest struct {
	URL string `json:"url"`
}

type generateResponse struct {
	OriginalURL string `json:"original_url"`
}

// URL returns the i-th seed URL. Seeds are stable so repeated runs hit history.
func URL(i int) string {
	return fmt.Sprintf("https://seed.example.com/item/%d", i)
}

// Run generates cfg.Count QR codes in parallel and returns the URLs it generated.
func Run(ctx context.Context, cfg *Config, progressOut io.Writer) ([]string, error) {
	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU() * 2
	}
	_, _ = fmt.Fprintf(progressOut, "Seeding %d URLs (workers: %d)...\n", cfg.Count, workers)

	client := &http.Client{
		Timeout: cfg.Timeout,
		Transport: &http.Transport{
			TLSClientConfig:     &tls.Config{InsecureSkipVerify: cfg.InsecureSkipVerify}, //nolint:gosec // self-signed bench targets
			MaxIdleConns:        workers * 2,
			MaxIdleConnsPerHost: workers * 2,
			IdleConnTimeout:     90 * time.Second,
		},
	}

	urls := make([]string, cfg.Count)
	var progress atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := range cfg.Count {
		g.Go(func() error {
			u, err := generate(gctx, client, cfg, URL(i))
			if err != nil {
				return fmt.Errorf("failed to seed url %d: %w", i, err)
			}
			urls[i] = u
			if done := progress.Add(1); done%100 == 0 || int(done) == cfg.Count {
				_, _ = fmt.Fprintf(progressOut, "\rProgress: %d/%d", done, cfg.Count)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	_, _ = fmt.Fprintf(progressOut, "\nSeeding complete: %d urls\n", len(urls))
	return urls, nil
}

func generate(ctx context.Context, client *http.Client, cfg *Config, url string) (string, error) {
	body, err := json.Marshal(generateRequest{URL: url})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, cfg.BaseURL+"/generate", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	if cfg.BypassSecret != "" {
		req.Header.Set(middleware.BypassHeader, cfg.BypassSecret)
	}

	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	var result generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", err
	}
	return result.OriginalURL, nil
}
