// Package squarecache is a small in-process LRU in front of Redis for
// encoded squares. Entries never go stale (the codec is pure), so the only
// pressure on the cache is memory, which the LRU bound handles.
package squarecache

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/mohammed-shakir/csquares-cache/internal/core/model"
	"github.com/mohammed-shakir/csquares-cache/internal/core/observability"
)

type Cache struct {
	lru *lru.Cache[string, model.SquareResponse]
}

func New(size int) (*Cache, error) {
	if size <= 0 {
		size = 1024
	}
	c, err := lru.New[string, model.SquareResponse](size)
	if err != nil {
		return nil, err
	}
	return &Cache{lru: c}, nil
}

func (c *Cache) Get(key string) (model.SquareResponse, bool) {
	v, ok := c.lru.Get(key)
	if ok {
		observability.IncCacheHit("lru")
	} else {
		observability.IncCacheMiss("lru")
	}
	return v, ok
}

func (c *Cache) Add(key string, v model.SquareResponse) {
	c.lru.Add(key, v)
}

func (c *Cache) Len() int { return c.lru.Len() }
