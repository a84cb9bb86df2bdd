package view_test

import (
	"testing"
	"time"

	"storefront/internal/view"

	"github.com/stretchr/testify/assert"
)

func TestCache_PutGet(t *testing.T) {
	c := view.NewCache(8, time.Minute)
	k := view.CacheKey{Path: "/cart", UserID: 7}

	_, ok := c.Get(k)
	assert.False(t, ok)

	c.Put(k, []byte("page"))
	b, ok := c.Get(k)
	assert.True(t, ok)
	assert.Equal(t, "page", string(b))

	// 別ユーザーは別エントリ
	_, ok = c.Get(view.CacheKey{Path: "/cart", UserID: 8})
	assert.False(t, ok)
}

func TestCache_InvalidateAllUsersAndChildren(t *testing.T) {
	c := view.NewCache(16, time.Minute)
	c.Put(view.CacheKey{Path: "/products", UserID: 0}, []byte("a"))
	c.Put(view.CacheKey{Path: "/products", Query: "q=lamp", UserID: 7}, []byte("b"))
	c.Put(view.CacheKey{Path: "/products/3", UserID: 7}, []byte("c"))
	c.Put(view.CacheKey{Path: "/productsale", UserID: 7}, []byte("d"))
	c.Put(view.CacheKey{Path: "/cart", UserID: 7}, []byte("e"))

	assert.Equal(t, 3, c.Invalidate("/products"))
	assert.Equal(t, 2, c.Len())

	_, ok := c.Get(view.CacheKey{Path: "/productsale", UserID: 7})
	assert.True(t, ok)
}

// "/" はトップページだけを捨てる
func TestCache_InvalidateRoot(t *testing.T) {
	c := view.NewCache(8, time.Minute)
	c.Put(view.CacheKey{Path: "/", UserID: 7}, []byte("home"))
	c.Put(view.CacheKey{Path: "/cart", UserID: 7}, []byte("cart"))

	assert.Equal(t, 1, c.Invalidate("/"))
	_, ok := c.Get(view.CacheKey{Path: "/cart", UserID: 7})
	assert.True(t, ok)
}

func TestCache_Expires(t *testing.T) {
	c := view.NewCache(8, 10*time.Millisecond)
	k := view.CacheKey{Path: "/", UserID: 0}
	c.Put(k, []byte("home"))

	assert.Eventually(t, func() bool {
		_, ok := c.Get(k)
		return !ok
	}, time.Second, 5*time.Millisecond)
}
