package view

import (
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// CacheKeyはパスとユーザー（未ログインは0）
type CacheKey struct {
	Path   string
	Query  string
	UserID int64
}

// Cacheは描画済みページ。actionが成功したら古いパスを捨てる
type Cache struct {
	lru *expirable.LRU[CacheKey, []byte]
}

func NewCache(size int, ttl time.Duration) *Cache {
	return &Cache{lru: expirable.NewLRU[CacheKey, []byte](size, nil, ttl)}
}

func (c *Cache) Get(k CacheKey) ([]byte, bool) {
	return c.lru.Get(k)
}

func (c *Cache) Put(k CacheKey, b []byte) {
	c.lru.Add(k, b)
}

// Invalidateはそのパスと配下（/products なら /products/12 も）を全ユーザー分捨てる
func (c *Cache) Invalidate(p string) int {
	p = strings.TrimRight(p, "/")
	n := 0
	for _, k := range c.lru.Keys() {
		if matches(k.Path, p) && c.lru.Remove(k) {
			n++
		}
	}
	return n
}

func (c *Cache) Len() int {
	return c.lru.Len()
}

func matches(key, p string) bool {
	if p == "" {
		// "/" はトップだけ
		return key == "/"
	}
	return key == p || strings.HasPrefix(key, p+"/")
}
