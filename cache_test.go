package formatstyle

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/atomic"
)

func TestFormatterCacheGetOrCreate(t *testing.T) {
	cache := NewFormatterCache[string, int]()

	builds := 0
	build := func() (int, error) {
		builds++
		return 42, nil
	}

	value, err := cache.GetOrCreate("answer", build)
	require.NoError(t, err)
	assert.Equal(t, 42, value)

	value, err = cache.GetOrCreate("answer", build)
	require.NoError(t, err)
	assert.Equal(t, 42, value)

	assert.Equal(t, 1, builds)
	assert.Equal(t, CacheStats{Size: 1, Hits: 1, Misses: 1}, cache.Stats())
}

func TestFormatterCacheDoesNotStoreErrors(t *testing.T) {
	cache := NewFormatterCache[string, int]()
	boom := errors.New("boom")

	_, err := cache.GetOrCreate("key", func() (int, error) { return 0, boom })
	require.ErrorIs(t, err, boom)
	assert.Equal(t, 0, cache.Len())

	value, err := cache.GetOrCreate("key", func() (int, error) { return 7, nil })
	require.NoError(t, err)
	assert.Equal(t, 7, value)
}

func TestFormatterCacheFlushesAtLimit(t *testing.T) {
	cache := NewFormatterCache[int, int]()

	for i := 0; i < DefaultCacheLimit; i++ {
		cache.Set(i, i)
	}
	assert.Equal(t, DefaultCacheLimit, cache.Len())

	// overwriting an existing key never flushes
	cache.Set(0, 100)
	assert.Equal(t, DefaultCacheLimit, cache.Len())

	cache.Set(DefaultCacheLimit, DefaultCacheLimit)
	assert.Equal(t, 1, cache.Len())

	_, ok := cache.Get(0)
	assert.False(t, ok)
	value, ok := cache.Get(DefaultCacheLimit)
	assert.True(t, ok)
	assert.Equal(t, DefaultCacheLimit, value)
	assert.Equal(t, int64(1), cache.Stats().Flushes)
}

func TestFormatterCacheCapacityOption(t *testing.T) {
	cache := NewFormatterCache[int, int](WithCacheCapacity(2), WithCacheCapacity(0), nil)

	cache.Set(1, 1)
	cache.Set(2, 2)
	cache.Set(3, 3)

	assert.Equal(t, 1, cache.Len())
}

func TestFormatterCachePurge(t *testing.T) {
	cache := NewFormatterCache[string, string]()
	cache.Set("a", "1")
	cache.Set("b", "2")

	released := map[string]string{}
	cache.Purge(func(key, value string) {
		released[key] = value
	})

	assert.Equal(t, map[string]string{"a": "1", "b": "2"}, released)
	assert.Equal(t, 0, cache.Len())

	cache.Purge(nil)
	assert.Equal(t, 0, cache.Len())
}

func TestFormatterCacheSingleFlight(t *testing.T) {
	cache := NewFormatterCache[string, int](WithSingleFlight())

	builds := atomic.NewInt32(0)
	release := make(chan struct{})
	build := func() (int, error) {
		builds.Inc()
		<-release
		return 1, nil
	}

	const callers = 8
	var (
		wg      sync.WaitGroup
		started sync.WaitGroup
	)
	started.Add(callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			started.Done()
			value, err := cache.GetOrCreate("shared", build)
			assert.NoError(t, err)
			assert.Equal(t, 1, value)
		}()
	}

	started.Wait()
	close(release)
	wg.Wait()

	value, ok := cache.Get("shared")
	require.True(t, ok)
	assert.Equal(t, 1, value)
	assert.Equal(t, int32(1), builds.Load())
}

func TestFormatterCacheEvictsFlushedEntries(t *testing.T) {
	evicted := map[int]string{}
	cache := NewFormatterCache[int, string](
		WithCacheCapacity(2),
		WithCacheEvict(func(key int, value string) {
			evicted[key] = value
		}),
	)

	cache.Set(1, "one")
	cache.Set(2, "two")
	cache.Set(2, "deux")
	assert.Empty(t, evicted)

	cache.Set(3, "three")
	assert.Equal(t, map[int]string{1: "one", 2: "deux"}, evicted)

	value, ok := cache.Get(3)
	require.True(t, ok)
	assert.Equal(t, "three", value)
	assert.Equal(t, int64(1), cache.Stats().Flushes)
}
