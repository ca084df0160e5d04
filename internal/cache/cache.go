package cache

import (
	"github.com/dgraph-io/ristretto"
)

// ImageCache keeps rendered PNGs in memory keyed by filename. Images are immutable once
// written, so entries never need invalidation.
type ImageCache struct {
	cache *ristretto.Cache
}

func New(maxSizePow2 int) (*ImageCache, error) {
	maxCost := max(1, int64(1)<<maxSizePow2)
	numCounters := max(1, maxCost/1000) // ~10KB per PNG, 10x counters per entry

	cache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: numCounters,
		MaxCost:     maxCost,
		BufferItems: 64,
		Metrics:     true,
	})
	if err != nil {
		return nil, err
	}
	return &ImageCache{cache: cache}, nil
}

func (c *ImageCache) Get(filename string) ([]byte, bool) {
	val, found := c.cache.Get(filename)
	if !found {
		return nil, false
	}
	return val.([]byte), true
}

func (c *ImageCache) Set(filename string, data []byte) {
	c.cache.Set(filename, data, int64(len(filename)+len(data)))
}

func (c *ImageCache) Close() {
	c.cache.Close()
}

func (c *ImageCache) Stats() (hits, misses uint64, ratio float64) {
	metrics := c.cache.Metrics
	hits = metrics.Hits()
	misses = metrics.Misses()
	ratio = metrics.Ratio()
	return
}
