package multiview

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPoolEvictsLeastRecentlyActivated(t *testing.T) {
	pool := newPlayerPool(6)

	for _, id := range []string{"a", "b", "c", "d", "e", "f"} {
		evicted, didEvict := pool.activate(id)
		assert.False(t, didEvict, "no eviction below the bound, got %q", evicted)
	}
	assert.Equal(t, []string{"f", "e", "d", "c", "b", "a"}, pool.active())
	assert.True(t, pool.isFull())

	evicted, didEvict := pool.activate("g")
	assert.True(t, didEvict)
	assert.Equal(t, "a", evicted)
	assert.Equal(t, []string{"g", "f", "e", "d", "c", "b"}, pool.active())
	assert.Equal(t, 6, pool.size())
}

func TestPoolActivateResidentMovesToFront(t *testing.T) {
	pool := newPlayerPool(6)
	pool.activate("a")
	pool.activate("b")
	pool.activate("c")

	evicted, didEvict := pool.activate("a")
	assert.False(t, didEvict)
	assert.Empty(t, evicted)
	assert.Equal(t, []string{"a", "c", "b"}, pool.active())
	assert.Equal(t, 3, pool.size())
}

func TestPoolBoundHoldsUnderAnySequence(t *testing.T) {
	pool := newPlayerPool(6)

	for i := 0; i < 100; i++ {
		pool.activate(fmt.Sprintf("cell%d", i%13))
		assert.LessOrEqual(t, pool.size(), 6)

		seen := map[string]bool{}
		for _, id := range pool.active() {
			assert.False(t, seen[id], "pool must not contain duplicates")
			seen[id] = true
		}
	}
}

func TestPoolDeactivate(t *testing.T) {
	pool := newPlayerPool(6)
	pool.activate("a")
	pool.activate("b")

	assert.True(t, pool.deactivate("a"))
	assert.False(t, pool.deactivate("a"), "removing an absent id is a no-op")
	assert.Equal(t, []string{"b"}, pool.active())

	pool.deactivateAll()
	assert.Empty(t, pool.active())
	assert.False(t, pool.isFull())
}

func TestPoolContains(t *testing.T) {
	pool := newPlayerPool(2)
	pool.activate("a")

	assert.True(t, pool.contains("a"))
	assert.False(t, pool.contains("b"))
}
