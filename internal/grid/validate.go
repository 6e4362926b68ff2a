package grid

import "fmt"

// Result is a structured validation outcome. Errors make the layout invalid;
// warnings do not. Reported rather than returned as an error so the caller
// can choose to clamp, reject or prompt.
type Result struct {
	Valid    bool     `json:"valid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

// ValidateLayout checks item count, grid bounds, minimum sizes and pairwise
// overlap. maxCells <= 0 disables the count check.
func (c Config) ValidateLayout(layout []Item, maxCells int) Result {
	errors := []string{}
	warnings := []string{}

	if maxCells > 0 && len(layout) > maxCells {
		errors = append(errors, fmt.Sprintf("cell count %d exceeds the maximum of %d", len(layout), maxCells))
	}

	if len(layout) == 0 {
		warnings = append(warnings, "layout is empty")
		return Result{Valid: true, Errors: errors, Warnings: warnings}
	}

	for i, item := range layout {
		if item.X < 0 || item.X >= c.Cols {
			errors = append(errors, fmt.Sprintf("cell %q: x position %d is outside the grid", item.ID, item.X))
		}
		if item.Y < 0 || item.Y >= c.Rows {
			errors = append(errors, fmt.Sprintf("cell %q: y position %d is outside the grid", item.ID, item.Y))
		}
		if item.X+item.W > c.Cols {
			errors = append(errors, fmt.Sprintf("cell %q: width extends past the grid (x=%d, w=%d)", item.ID, item.X, item.W))
		}
		if item.Y+item.H > c.Rows {
			errors = append(errors, fmt.Sprintf("cell %q: height extends past the grid (y=%d, h=%d)", item.ID, item.Y, item.H))
		}

		if item.W < c.MinW {
			warnings = append(warnings, fmt.Sprintf("cell %q: width %d is below the minimum of %d", item.ID, item.W, c.MinW))
		}
		if item.H < c.MinH {
			warnings = append(warnings, fmt.Sprintf("cell %q: height %d is below the minimum of %d", item.ID, item.H, c.MinH))
		}

		for _, other := range layout[i+1:] {
			if Overlaps(item, other) {
				errors = append(errors, fmt.Sprintf("cell %q overlaps cell %q", item.ID, other.ID))
			}
		}
	}

	return Result{Valid: len(errors) == 0, Errors: errors, Warnings: warnings}
}
