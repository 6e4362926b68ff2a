package grid

// Clamp corrects an item whose bounds drifted outside the grid during a
// free-form interaction. The position is clamped first, leaving at least a
// MinW×MinH footprint of room, then the size is clamped against the already
// corrected position. An item is therefore repositioned rather than ever
// shrunk below the minimum size, even in the far grid corner.
func (c Config) Clamp(item Item) Item {
	item.X = clampInt(item.X, 0, c.Cols-c.MinW)
	item.Y = clampInt(item.Y, 0, c.Rows-c.MinH)
	item.W = clampInt(item.W, c.MinW, c.Cols-item.X)
	item.H = clampInt(item.H, c.MinH, c.Rows-item.Y)

	return item
}

// ClampAll clamps every item in layout, returning a new slice.
func (c Config) ClampAll(layout []Item) []Item {
	clamped := make([]Item, len(layout))
	for i, item := range layout {
		clamped[i] = c.Clamp(item)
	}

	return clamped
}

// Constraints returns the position-dependent maximum size for an item. These
// are not global constants: they must be recomputed whenever x or y changes,
// before the layout is handed back to the interactive layer.
func (c Config) Constraints(item Item) (maxW, maxH int) {
	return c.Cols - item.X, c.Rows - item.Y
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}

	return v
}
