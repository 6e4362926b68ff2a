package grid

// Position is a candidate top-left anchor for a new item.
type Position struct {
	X int
	Y int
}

// FindPosition scans candidate anchors in row-major order (y outer, x inner)
// and returns the first one where a w×h rectangle is fully in-bounds and
// overlaps no existing item. The scan is deterministic: the same layout and
// request always yield the same position. ok is false when the grid has no
// room; callers must treat that as a capacity condition.
func (c Config) FindPosition(layout []Item, w, h int) (Position, bool) {
	return c.findPositionFrom(layout, w, h, 0)
}

// FindPositionBelow is FindPosition restricted to rows at or below startY,
// used by the reconciler's bottom-packing rule for orphan content.
func (c Config) FindPositionBelow(layout []Item, w, h, startY int) (Position, bool) {
	return c.findPositionFrom(layout, w, h, startY)
}

func (c Config) findPositionFrom(layout []Item, w, h, startY int) (Position, bool) {
	if w <= 0 || h <= 0 || w > c.Cols || h > c.Rows {
		return Position{}, false
	}
	if startY < 0 {
		startY = 0
	}

	occupied := c.occupancy(layout)

	for y := startY; y+h <= c.Rows; y++ {
		for x := 0; x+w <= c.Cols; x++ {
			if c.fits(occupied, x, y, w, h) {
				return Position{X: x, Y: y}, true
			}
		}
	}

	return Position{}, false
}

// occupancy is the union of unit cells each item covers, clipped to the grid.
func (c Config) occupancy(layout []Item) []bool {
	occupied := make([]bool, c.Cols*c.Rows)
	for _, item := range layout {
		for y := max(item.Y, 0); y < min(item.Y+item.H, c.Rows); y++ {
			for x := max(item.X, 0); x < min(item.X+item.W, c.Cols); x++ {
				occupied[y*c.Cols+x] = true
			}
		}
	}

	return occupied
}

func (c Config) fits(occupied []bool, x, y, w, h int) bool {
	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			if occupied[(y+dy)*c.Cols+x+dx] {
				return false
			}
		}
	}

	return true
}
