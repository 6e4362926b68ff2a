package grid

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() Config {
	return Config{Cols: 24, Rows: 24, MinW: 2, MinH: 2}
}

func TestFindPositionFillsRowMajor(t *testing.T) {
	cfg := testConfig()
	layout := []Item{}

	// seven 4x2 items fill from the top-left, row-major
	expected := []Position{
		{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 8, Y: 0}, {X: 12, Y: 0}, {X: 16, Y: 0}, {X: 20, Y: 0},
		{X: 0, Y: 2},
	}

	for i, want := range expected {
		pos, ok := cfg.FindPosition(layout, 4, 2)
		require.True(t, ok, "placement %d must succeed", i)
		assert.Equal(t, want, pos, "placement %d", i)

		layout = append(layout, Item{ID: fmt.Sprintf("c%d", i), X: pos.X, Y: pos.Y, W: 4, H: 2})
	}

	assert.True(t, cfg.ValidateLayout(layout, 0).Valid)
}

func TestFindPositionSkipsOccupiedSpace(t *testing.T) {
	cfg := testConfig()
	layout := []Item{
		{ID: "a", X: 0, Y: 0, W: 12, H: 24},
		{ID: "b", X: 12, Y: 0, W: 12, H: 12},
	}

	pos, ok := cfg.FindPosition(layout, 12, 12)
	require.True(t, ok)
	assert.Equal(t, Position{X: 12, Y: 12}, pos)

	placed := Item{ID: "c", X: pos.X, Y: pos.Y, W: 12, H: 12}
	for _, item := range layout {
		assert.False(t, Overlaps(placed, item))
	}
	assert.True(t, cfg.InBounds(placed))
}

func TestFindPositionNoRoom(t *testing.T) {
	cfg := testConfig()
	layout := []Item{{ID: "a", X: 0, Y: 0, W: 24, H: 24}}

	_, ok := cfg.FindPosition(layout, 2, 2)
	assert.False(t, ok)
}

func TestFindPositionRejectsOversizedRequest(t *testing.T) {
	cfg := testConfig()

	_, ok := cfg.FindPosition(nil, 25, 2)
	assert.False(t, ok)

	_, ok = cfg.FindPosition(nil, 0, 2)
	assert.False(t, ok)
}

func TestFindPositionBelow(t *testing.T) {
	cfg := testConfig()
	layout := []Item{{ID: "a", X: 0, Y: 0, W: 24, H: 12}}

	pos, ok := cfg.FindPositionBelow(layout, 8, 8, BottomEdge(layout))
	require.True(t, ok)
	assert.Equal(t, Position{X: 0, Y: 12}, pos)
}

func TestClampKeepsValidItemUntouched(t *testing.T) {
	cfg := testConfig()
	item := Item{ID: "a", X: 4, Y: 4, W: 8, H: 8}

	assert.Equal(t, item, cfg.Clamp(item))
}

func TestClampArbitraryBounds(t *testing.T) {
	cfg := testConfig()

	cases := []Item{
		{ID: "neg", X: -5, Y: -3, W: 8, H: 8},
		{ID: "far", X: 100, Y: 100, W: 8, H: 8},
		{ID: "wide", X: 0, Y: 0, W: 100, H: 100},
		{ID: "tiny", X: 5, Y: 5, W: 0, H: 1},
		{ID: "mixed", X: -1, Y: 30, W: 50, H: 0},
	}

	for _, item := range cases {
		got := cfg.Clamp(item)
		assert.GreaterOrEqual(t, got.X, 0, item.ID)
		assert.GreaterOrEqual(t, got.Y, 0, item.ID)
		assert.GreaterOrEqual(t, got.W, cfg.MinW, item.ID)
		assert.GreaterOrEqual(t, got.H, cfg.MinH, item.ID)
		assert.LessOrEqual(t, got.X+got.W, cfg.Cols, item.ID)
		assert.LessOrEqual(t, got.Y+got.H, cfg.Rows, item.ID)
	}
}

func TestClampCornerRepositionsInsteadOfShrinking(t *testing.T) {
	cfg := testConfig()

	// an item dragged into the far corner is pulled back so the minimum
	// size still fits, never shrunk below MinW/MinH
	got := cfg.Clamp(Item{ID: "a", X: 23, Y: 23, W: 4, H: 4})
	assert.Equal(t, 22, got.X)
	assert.Equal(t, 22, got.Y)
	assert.Equal(t, 2, got.W)
	assert.Equal(t, 2, got.H)
}

func TestConstraintsArePositionDependent(t *testing.T) {
	cfg := testConfig()

	maxW, maxH := cfg.Constraints(Item{X: 0, Y: 0})
	assert.Equal(t, 24, maxW)
	assert.Equal(t, 24, maxH)

	maxW, maxH = cfg.Constraints(Item{X: 16, Y: 20})
	assert.Equal(t, 8, maxW)
	assert.Equal(t, 4, maxH)
}

func TestValidateLayout(t *testing.T) {
	cfg := testConfig()

	t.Run("valid split", func(t *testing.T) {
		result := cfg.ValidateLayout([]Item{
			{ID: "a", X: 0, Y: 0, W: 12, H: 24},
			{ID: "b", X: 12, Y: 0, W: 12, H: 24},
		}, 16)
		assert.True(t, result.Valid)
		assert.Empty(t, result.Errors)
	})

	t.Run("overlap", func(t *testing.T) {
		result := cfg.ValidateLayout([]Item{
			{ID: "a", X: 0, Y: 0, W: 12, H: 12},
			{ID: "b", X: 6, Y: 6, W: 12, H: 12},
		}, 16)
		assert.False(t, result.Valid)
		assert.NotEmpty(t, result.Errors)
	})

	t.Run("out of bounds", func(t *testing.T) {
		result := cfg.ValidateLayout([]Item{{ID: "a", X: 20, Y: 0, W: 10, H: 24}}, 16)
		assert.False(t, result.Valid)
	})

	t.Run("small cell warns only", func(t *testing.T) {
		result := cfg.ValidateLayout([]Item{{ID: "a", X: 0, Y: 0, W: 1, H: 1}}, 16)
		assert.True(t, result.Valid)
		assert.NotEmpty(t, result.Warnings)
	})

	t.Run("empty layout warns", func(t *testing.T) {
		result := cfg.ValidateLayout(nil, 16)
		assert.True(t, result.Valid)
		assert.NotEmpty(t, result.Warnings)
	})

	t.Run("too many cells", func(t *testing.T) {
		layout := make([]Item, 0, 20)
		for i := 0; i < 20; i++ {
			layout = append(layout, Item{ID: fmt.Sprintf("c%d", i), X: 0, Y: 0, W: 2, H: 2})
		}
		result := cfg.ValidateLayout(layout, 16)
		assert.False(t, result.Valid)
	})
}
