// Package grid implements the bounded integer coordinate space a multiview
// canvas is arranged on: free-space placement, bounds clamping and layout
// validation. Everything here is pure; no item is mutated in place.
package grid

// Config describes the grid bounds and the smallest permissible cell.
// All quantities are grid units; there are no fractional coordinates.
type Config struct {
	Cols int
	Rows int
	MinW int
	MinH int
}

func DefaultConfig() Config {
	return Config{Cols: 24, Rows: 24, MinW: 2, MinH: 2}
}

// Item is a spatial placement only; it carries no semantic payload.
type Item struct {
	ID          string
	X           int
	Y           int
	W           int
	H           int
	IsDraggable bool
	IsResizable bool
	Static      bool
}

// Overlaps reports whether the two rectangles share any unit cell.
func Overlaps(a, b Item) bool {
	return a.X < b.X+b.W && b.X < a.X+a.W && a.Y < b.Y+b.H && b.Y < a.Y+a.H
}

// InBounds reports whether item lies fully inside the grid.
func (c Config) InBounds(item Item) bool {
	return item.X >= 0 && item.Y >= 0 && item.X+item.W <= c.Cols && item.Y+item.H <= c.Rows
}

// BottomEdge returns the first row below every item in layout, 0 for an
// empty layout.
func BottomEdge(layout []Item) int {
	bottom := 0
	for _, item := range layout {
		if edge := item.Y + item.H; edge > bottom {
			bottom = edge
		}
	}

	return bottom
}
