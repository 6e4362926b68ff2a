package multiview

import (
	"golang.org/x/exp/slices"

	"github.com/gridview/server/internal/grid"
)

// Reconcile repairs the 1:1 correspondence between layout items and content
// entries after the two structures may have drifted (on load, after an
// external removal, after merging a partial update). Safe to run on already
// consistent state: the pass is idempotent.
func (s *service) Reconcile() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.reconcileLocked()
}

// reconcileLocked runs prune before append, in that order: an id that is
// both stale in the old layout and freshly content-assigned must end up
// present exactly once.
func (s *service) reconcileLocked() {
	changed := false

	// prune ghost references: layout items with no content entry
	pruned := s.layout[:0]
	for _, item := range s.layout {
		if _, ok := s.content[item.ID]; ok {
			pruned = append(pruned, item)
			continue
		}

		changed = true
		delete(s.players, item.ID)
		if s.pool.deactivate(item.ID) {
			s.publish(SlicePool, "player_deactivated", item.ID)
		}
	}
	s.layout = pruned

	// pool entries and player states must reference live video cells
	for _, id := range s.pool.active() {
		if cell, ok := s.content[id]; !ok || cell.Kind != CellKindVideo {
			s.pool.deactivate(id)
			s.publish(SlicePool, "player_deactivated", id)
		}
	}
	for id := range s.players {
		if cell, ok := s.content[id]; !ok || cell.Kind != CellKindVideo {
			delete(s.players, id)
		}
	}

	// append orphan content: content ids with no layout item, in id order so
	// the pass is deterministic
	present := make(map[string]bool, len(s.layout))
	for _, item := range s.layout {
		present[item.ID] = true
	}

	orphans := make([]string, 0)
	for id := range s.content {
		if !present[id] {
			orphans = append(orphans, id)
		}
	}
	slices.Sort(orphans)

	for i, id := range orphans {
		s.layout = append(s.layout, s.placeOrphanLocked(id, i))
		changed = true
	}

	if changed {
		s.publish(SliceLayout, "layout_reconciled", nil)
	}
}

// placeOrphanLocked synthesizes a layout item for orphan content at the
// bottom of the current arrangement, offset horizontally by index so several
// orphans appended at once do not stack visually.
func (s *service) placeOrphanLocked(cellID string, index int) LayoutItem {
	w := max(s.grid.Cols/3, s.grid.MinW)
	h := max(s.grid.Rows/3, s.grid.MinH)

	item := LayoutItem{ID: cellID, W: w, H: h, IsDraggable: true, IsResizable: true}

	layout := s.gridLayoutLocked()
	bottom := min(grid.BottomEdge(layout), s.grid.Rows-h)

	if pos, ok := s.grid.FindPositionBelow(layout, w, h, bottom); ok {
		item.X, item.Y = pos.X, pos.Y
		return item
	}
	if pos, ok := s.grid.FindPosition(layout, w, h); ok {
		item.X, item.Y = pos.X, pos.Y
		return item
	}

	// grid is full: overlap at the bottom anchor rather than fail, the user
	// resolves it by dragging
	item.X = (index * w) % (s.grid.Cols - w + 1)
	item.Y = bottom

	return item
}
