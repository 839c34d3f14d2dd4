package library

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestViewCache_SetAndGet(t *testing.T) {
	cache := NewCache(1 * time.Minute)

	cache.Set(libraryKey("user-1"), "shelf")

	value, ok := cache.Get(libraryKey("user-1"))
	assert.True(t, ok)
	assert.Equal(t, "shelf", value)
}

func TestViewCache_Miss(t *testing.T) {
	cache := NewCache(1 * time.Minute)

	value, ok := cache.Get(statsKey("user-1"))
	assert.False(t, ok)
	assert.Nil(t, value)
}

func TestViewCache_TTLExpiry(t *testing.T) {
	cache := NewCache(50 * time.Millisecond)

	cache.Set("library:user-1", "shelf")

	value, ok := cache.Get("library:user-1")
	assert.True(t, ok)
	assert.Equal(t, "shelf", value)

	time.Sleep(60 * time.Millisecond)

	value, ok = cache.Get("library:user-1")
	assert.False(t, ok)
	assert.Nil(t, value)
}

func TestViewCache_Invalidate(t *testing.T) {
	cache := NewCache(1 * time.Minute)

	cache.Set(libraryKey("user-1"), "shelf")
	cache.Set(statsKey("user-1"), "numbers")
	cache.Set(libraryKey("user-2"), "other shelf")

	cache.Invalidate(libraryKey("user-1"), statsKey("user-1"))

	_, ok := cache.Get(libraryKey("user-1"))
	assert.False(t, ok)
	_, ok = cache.Get(statsKey("user-1"))
	assert.False(t, ok)

	// Other users' views survive
	value, ok := cache.Get(libraryKey("user-2"))
	assert.True(t, ok)
	assert.Equal(t, "other shelf", value)
}

func TestViewCache_ConcurrentAccess(t *testing.T) {
	cache := NewCache(1 * time.Minute)
	var wg sync.WaitGroup

	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			cache.Set("shared-key", "view")
		}()
		wg.Add(1)
		go func() {
			defer wg.Done()
			cache.Get("shared-key")
		}()
		wg.Add(1)
		go func() {
			defer wg.Done()
			cache.Invalidate("other-key")
		}()
	}

	wg.Wait()

	value, ok := cache.Get("shared-key")
	assert.True(t, ok)
	assert.Equal(t, "view", value)
}
