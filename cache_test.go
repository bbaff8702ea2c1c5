package figmagen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoCacheHit(t *testing.T) {
	cache := NewMemoCache()
	css := "/* button */ display: flex;"

	first := ParseCached(cache, css)
	second := ParseCached(cache, css)

	require.NotNil(t, first)
	assert.Same(t, first, second)
}

func TestMemoCacheClear(t *testing.T) {
	cache := NewMemoCache()
	css := "/* button */ display: flex;"

	first := ParseCached(cache, css)
	cache.Clear()
	second := ParseCached(cache, css)

	assert.NotSame(t, first, second)
	assert.Equal(t, first.ComponentName, second.ComponentName)
}

func TestParseCachedNilCache(t *testing.T) {
	parsed := ParseCached(nil, "/* card */ display: grid;")
	require.NotNil(t, parsed)
	assert.Equal(t, "Card", parsed.ComponentName)
}

func TestCacheKey(t *testing.T) {
	short := "/* button */ display: flex;"
	assert.Equal(t, CacheKey(short), CacheKey(short))
	assert.NotEqual(t, CacheKey(short), CacheKey(short+" "))

	// Inputs sharing the hashed prefix are told apart by length.
	prefix := strings.Repeat("a", cacheKeyPrefixLen)
	assert.NotEqual(t, CacheKey(prefix+"x"), CacheKey(prefix+"xy"))

	// Same prefix and same length collide. Documented tradeoff.
	assert.Equal(t, CacheKey(prefix+"x"), CacheKey(prefix+"y"))
}
