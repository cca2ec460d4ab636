package domain

import (
	"log/slog"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	m "perfchart.dev/pkg/perfchart/internal/model"
)

// CalculatorCache memoizes calculators by definition digest, so repeated runs
// against an unchanged chart skip rebuilding it.
type CalculatorCache struct {
	lru *expirable.LRU[string, Calculator]
}

// NewCalculatorCache creates a cache holding up to size calculators for ttl.
// A non-positive size disables caching; a zero ttl never expires entries.
func NewCalculatorCache(size int, ttl time.Duration) *CalculatorCache {
	if size <= 0 {
		return &CalculatorCache{}
	}

	return &CalculatorCache{lru: expirable.NewLRU[string, Calculator](size, nil, ttl)}
}

// Get returns the cached calculator for def or builds and stores a new one.
func (c *CalculatorCache) Get(def m.Definition) (Calculator, error) {
	if c == nil || c.lru == nil || def.Digest == "" {
		return NewCalculator(def)
	}

	if calc, ok := c.lru.Get(def.Digest); ok {
		slog.Debug("calculator cache hit", "source", def.Source, "digest", def.Digest)
		return calc, nil
	}

	calc, err := NewCalculator(def)
	if err != nil {
		return nil, err
	}

	c.lru.Add(def.Digest, calc)

	return calc, nil
}

// Len returns the number of cached calculators.
func (c *CalculatorCache) Len() int {
	if c == nil || c.lru == nil {
		return 0
	}

	return c.lru.Len()
}
