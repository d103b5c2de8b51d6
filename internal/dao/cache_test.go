package dao

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDocumentCacheTTL(t *testing.T) {
	c := NewDocumentCache(time.Minute)
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }

	c.Set("a", []byte("A"))
	bb, ok := c.Get("a")
	assert.True(t, ok)
	assert.Equal(t, []byte("A"), bb)

	now = now.Add(time.Minute)
	_, ok = c.Get("a")
	assert.True(t, ok)

	now = now.Add(time.Second)
	_, ok = c.Get("a")
	assert.False(t, ok)
}

func TestDocumentCacheInvalidate(t *testing.T) {
	c := NewDocumentCache(time.Hour)
	c.Set("s3://docs/menu.ini", []byte("m"))
	c.Set("s3://docs/profile.yaml", []byte("p"))
	c.Set("/tmp/menu.ini", []byte("l"))

	c.Invalidate("/tmp/menu.ini")
	_, ok := c.Get("/tmp/menu.ini")
	assert.False(t, ok)

	c.InvalidatePrefix("s3://docs/")
	_, ok = c.Get("s3://docs/menu.ini")
	assert.False(t, ok)

	c.Set("x", nil)
	c.Clear()
	_, ok = c.Get("x")
	assert.False(t, ok)
}
