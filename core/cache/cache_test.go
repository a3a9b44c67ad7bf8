package cache_test

import (
	"errors"
	"sync"
	"testing"
	"time"

	"pokepc-dataset/core/cache"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock is a manually advanced time source.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (f *fakeClock) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

func (f *fakeClock) Advance(d time.Duration) {
	f.mu.Lock()
	f.now = f.now.Add(d)
	f.mu.Unlock()
}

func newClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func TestCached(t *testing.T) {
	t.Run("ProducerRunsOncePerTTL", func(t *testing.T) {
		clock := newClock()
		c := cache.New(10*time.Second, cache.WithClock(clock.Now))

		calls := 0
		producer := func() (int, error) {
			calls++
			return calls, nil
		}

		v, err := cache.Cached(c, "k", producer)
		require.NoError(t, err)
		assert.Equal(t, 1, v)

		clock.Advance(time.Second)
		v, err = cache.Cached(c, "k", producer)
		require.NoError(t, err)
		assert.Equal(t, 1, v)
		assert.Equal(t, 1, calls)

		clock.Advance(11 * time.Second)
		v, err = cache.Cached(c, "k", producer)
		require.NoError(t, err)
		assert.Equal(t, 2, v)
		assert.Equal(t, 2, calls)
	})

	t.Run("ErrorsAreNotCached", func(t *testing.T) {
		c := cache.New(time.Minute)
		boom := errors.New("boom")

		_, err := cache.Cached(c, "k", func() (string, error) { return "", boom })
		assert.ErrorIs(t, err, boom)
		assert.Equal(t, 0, c.Len())

		v, err := cache.Cached(c, "k", func() (string, error) { return "ok", nil })
		require.NoError(t, err)
		assert.Equal(t, "ok", v)
	})

	t.Run("KeysAreIndependent", func(t *testing.T) {
		c := cache.New(time.Minute)

		a, _ := cache.Cached(c, "a", func() (string, error) { return "A", nil })
		b, _ := cache.Cached(c, "b", func() (string, error) { return "B", nil })
		assert.Equal(t, "A", a)
		assert.Equal(t, "B", b)
		assert.Equal(t, 2, c.Len())
	})

	t.Run("StatsCountHitsAndMisses", func(t *testing.T) {
		c := cache.New(time.Minute)
		producer := func() (int, error) { return 1, nil }

		_, _ = cache.Cached(c, "k", producer)
		_, _ = cache.Cached(c, "k", producer)
		_, _ = cache.Cached(c, "k", producer)

		hits, misses := c.Stats()
		assert.Equal(t, int64(2), hits)
		assert.Equal(t, int64(1), misses)
	})
}

func TestCache_Invalidate(t *testing.T) {
	c := cache.New(time.Minute)
	calls := 0
	producer := func() (int, error) {
		calls++
		return calls, nil
	}

	_, _ = cache.Cached(c, "k", producer)
	c.Invalidate("k")
	v, err := cache.Cached(c, "k", producer)
	require.NoError(t, err)
	assert.Equal(t, 2, v)
}

func TestCache_InvalidatePrefix(t *testing.T) {
	c := cache.New(time.Minute)
	c.Set("searchable-eng", 1)
	c.Set("searchable-deu", 2)
	c.Set("allPokemon", 3)

	assert.Equal(t, 2, c.InvalidatePrefix("searchable-"))
	assert.Equal(t, 1, c.Len())

	_, ok := c.Get("searchable-eng")
	assert.False(t, ok)
	v, ok := c.Get("allPokemon")
	assert.True(t, ok)
	assert.Equal(t, 3, v)
}

func TestNew_DefaultTTL(t *testing.T) {
	assert.Equal(t, cache.DefaultTTL, cache.New(0).TTL())
	assert.Equal(t, time.Second, cache.New(time.Second).TTL())
}

func TestEntry_IsExpired(t *testing.T) {
	at := time.Date(2024, 1, 1, 0, 0, 10, 0, time.UTC)
	e := &cache.Entry{ExpiresAt: at}

	assert.False(t, e.IsExpired(at.Add(-time.Nanosecond)))
	assert.True(t, e.IsExpired(at))
}
