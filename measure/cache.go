package measure

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultCacheSize is the number of widths CachedMeasurer keeps by default.
const DefaultCacheSize = 256

// CachedMeasurer memoizes the widths returned by another Measurer.
// It is safe for concurrent use if the wrapped Measurer is.
type CachedMeasurer struct {
	m     Measurer
	cache *lru.Cache[string, float64]
}

// NewCachedMeasurer wraps m with an LRU cache holding up to size entries.
// A non-positive size selects DefaultCacheSize.
func NewCachedMeasurer(m Measurer, size int) (*CachedMeasurer, error) {
	if size <= 0 {
		size = DefaultCacheSize
	}
	cache, err := lru.New[string, float64](size)
	if err != nil {
		return nil, fmt.Errorf("measure: create cache: %w", err)
	}
	return &CachedMeasurer{m: m, cache: cache}, nil
}

// Width implements Measurer.
func (c *CachedMeasurer) Width(text string) float64 {
	if w, ok := c.cache.Get(text); ok {
		return w
	}
	w := c.m.Width(text)
	c.cache.Add(text, w)
	return w
}

// Len returns the number of cached widths.
func (c *CachedMeasurer) Len() int {
	return c.cache.Len()
}

// Purge drops all cached widths. Call it after changing the wrapped
// measurer's font or size.
func (c *CachedMeasurer) Purge() {
	c.cache.Purge()
}
