package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cosmogony/internal/zone"
)

func TestCacheCachesOnFirstAccess(t *testing.T) {
	c := NewCache()
	mp := squareMP(0, 0, 1, 1)

	e1, ok1 := c.Get(0, mp)
	require.True(t, ok1, "expected a valid engine from a valid boundary")

	e2, ok2 := c.Get(0, nil) // second call's boundary arg should be ignored on a hit
	require.True(t, ok2, "expected the cached hit to still report valid")

	assert.Equal(t, e1.Valid(), e2.Valid(), "both accesses should report the same validity")
}

func TestCacheReportsInvalidBoundary(t *testing.T) {
	c := NewCache()
	_, ok := c.Get(zone.Index(1), nil)
	assert.False(t, ok, "an empty boundary should never be reported as a valid cache hit")
}
