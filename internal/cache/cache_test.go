package cache

import (
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetGet(t *testing.T) {
	c := New(time.Minute)
	c.Set("compute", []string{"VM.Standard.E5.Flex"})

	v, ok := c.Get("compute")
	require.True(t, ok)
	assert.Equal(t, []string{"VM.Standard.E5.Flex"}, v)
}

func TestGetMissing(t *testing.T) {
	c := New(time.Minute)
	v, ok := c.Get("absent")
	assert.False(t, ok)
	assert.Nil(t, v)
}

func TestExpiry(t *testing.T) {
	c := New(time.Minute)
	now := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }

	c.SetWithTTL("k", "v", time.Minute)

	// Retrievable immediately.
	_, ok := c.Get("k")
	assert.True(t, ok)

	// Still live at exactly the expiration instant.
	now = now.Add(time.Minute)
	_, ok = c.Get("k")
	assert.True(t, ok)

	// Gone once the clock passes it.
	now = now.Add(time.Second)
	_, ok = c.Get("k")
	assert.False(t, ok)

	// Expired entry was deleted, not just hidden.
	stats := c.GetStats()
	assert.Equal(t, 0, stats.Size)
}

func TestTTLOverride(t *testing.T) {
	c := New(time.Hour)
	now := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }

	c.SetWithTTL("short", "v", 5*time.Minute)
	c.Set("long", "v")

	now = now.Add(10 * time.Minute)
	_, ok := c.Get("short")
	assert.False(t, ok)
	_, ok = c.Get("long")
	assert.True(t, ok)
}

func TestHasDelete(t *testing.T) {
	c := New(time.Minute)
	c.Set("k", 1)
	assert.True(t, c.Has("k"))

	c.Delete("k")
	assert.False(t, c.Has("k"))
}

func TestClear(t *testing.T) {
	c := New(time.Minute)
	c.Set("a", 1)
	c.Set("b", 2)
	c.Clear()
	assert.Equal(t, 0, c.GetStats().Size)
}

func TestStatsSweepsExpired(t *testing.T) {
	c := New(time.Minute)
	now := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }

	c.SetWithTTL("stale", 1, time.Minute)
	c.SetWithTTL("fresh", 2, time.Hour)

	now = now.Add(2 * time.Minute)
	stats := c.GetStats()
	require.Equal(t, 1, stats.Size)
	sort.Strings(stats.Keys)
	assert.Equal(t, []string{"fresh"}, stats.Keys)
}

func TestNonPositiveDefaultTTL(t *testing.T) {
	c := New(0)
	assert.Equal(t, DefaultTTL, c.defaultTTL)
}
