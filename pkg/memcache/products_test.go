package memcache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTTLStoreSetGet(t *testing.T) {
	store := NewTTLStore()
	store.Set("k", "v", time.Minute)

	got, ok := store.Get("k")
	require.True(t, ok)
	assert.Equal(t, "v", got)

	_, ok = store.Get("missing")
	assert.False(t, ok)
}

func TestTTLStoreExpiry(t *testing.T) {
	now := time.Date(2024, 10, 23, 12, 0, 0, 0, time.UTC)
	store := NewTTLStoreWithNow(func() time.Time { return now })

	store.Set("k", 42, 5*time.Minute)

	now = now.Add(4 * time.Minute)
	_, ok := store.Get("k")
	assert.True(t, ok, "still inside the window")

	now = now.Add(2 * time.Minute)
	_, ok = store.Get("k")
	assert.False(t, ok, "expired")

	// expired entries are removed on read
	now = now.Add(-6 * time.Minute)
	_, ok = store.Get("k")
	assert.False(t, ok)
}

func TestTTLStoreDelete(t *testing.T) {
	store := NewTTLStore()
	store.Set("k", "v", time.Minute)
	store.Delete("k")

	_, ok := store.Get("k")
	assert.False(t, ok)
}
