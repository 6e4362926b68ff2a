package multiview

type AddCellParams struct {
	W int
	H int
}

// AddCell inserts a new empty cell into free space. The allocator scans
// row-major from the top-left; no room is a capacity condition, never an
// overlapping or clipped placement.
func (s *service) AddCell(params *AddCellParams) (LayoutItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.maxCells > 0 && len(s.layout) >= s.maxCells {
		return LayoutItem{}, ErrCellLimitReached
	}

	// requested sizes below the minimum are raised to it, same as the clamp
	w := params.W
	if w < s.grid.MinW {
		w = s.grid.MinW
	}
	h := params.H
	if h < s.grid.MinH {
		h = s.grid.MinH
	}

	pos, ok := s.grid.FindPosition(s.gridLayoutLocked(), w, h)
	if !ok {
		return LayoutItem{}, ErrNoFreeSpace
	}

	item := LayoutItem{
		ID:          s.newCellID(),
		X:           pos.X,
		Y:           pos.Y,
		W:           w,
		H:           h,
		IsDraggable: true,
		IsResizable: true,
	}
	s.layout = append(s.layout, item)
	s.content[item.ID] = CellContent{ID: item.ID, Kind: CellKindEmpty}

	s.publish(SliceLayout, "cell_added", item)
	s.publish(SliceContent, "content_assigned", s.content[item.ID])

	return item, nil
}

// RemoveCell deletes a cell and everything hanging off it: content entry,
// player runtime state and pool membership. The id is never reused.
func (s *service) RemoveCell(cellID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.findItemLocked(cellID)
	if !ok {
		return ErrCellNotFound
	}

	s.layout = append(s.layout[:i], s.layout[i+1:]...)
	delete(s.content, cellID)
	delete(s.players, cellID)
	if s.pool.deactivate(cellID) {
		s.publish(SlicePool, "player_deactivated", cellID)
	}

	s.publish(SliceLayout, "cell_removed", cellID)
	s.publish(SliceContent, "content_removed", cellID)

	return nil
}

type MoveCellParams struct {
	CellID string
	X      int
	Y      int
}

// MoveCell commits a drag-stop. The interactive layer may report transiently
// invalid positions mid-gesture; the committed position is always clamped
// back into the grid.
func (s *service) MoveCell(params *MoveCellParams) (LayoutItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.findItemLocked(params.CellID)
	if !ok {
		return LayoutItem{}, ErrCellNotFound
	}

	item := s.layout[i]
	if item.Static || !item.IsDraggable {
		return item, nil
	}

	item.X = params.X
	item.Y = params.Y
	item = layoutItemFromGrid(s.grid.Clamp(item.toGrid()))
	s.layout[i] = item

	s.publish(SliceLayout, "cell_moved", item)

	return item, nil
}

type ResizeCellParams struct {
	CellID string
	W      int
	H      int
}

// ResizeCell commits a resize-stop, clamped the same way as MoveCell.
func (s *service) ResizeCell(params *ResizeCellParams) (LayoutItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.findItemLocked(params.CellID)
	if !ok {
		return LayoutItem{}, ErrCellNotFound
	}

	item := s.layout[i]
	if item.Static || !item.IsResizable {
		return item, nil
	}

	item.W = params.W
	item.H = params.H
	item = layoutItemFromGrid(s.grid.Clamp(item.toGrid()))
	s.layout[i] = item

	s.publish(SliceLayout, "cell_resized", item)

	return item, nil
}

type AssignContentParams struct {
	CellID      string
	Kind        string
	VideoID     string
	VideoSource string
	ChatTab     int
}

// AssignContent sets the semantic payload of a cell. The assignment flows
// through the reconciler, so a content id without a layout item gets one
// appended rather than dangling.
func (s *service) AssignContent(params *AssignContentParams) (CellContent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cell := CellContent{
		ID:          params.CellID,
		Kind:        params.Kind,
		VideoID:     params.VideoID,
		VideoSource: params.VideoSource,
		ChatTab:     params.ChatTab,
	}
	s.content[params.CellID] = cell

	if cell.Kind == CellKindVideo {
		if _, ok := s.players[params.CellID]; !ok {
			s.players[params.CellID] = PlayerState{CellID: params.CellID, Muted: true, Volume: 100}
		}
	} else {
		delete(s.players, params.CellID)
		if s.pool.deactivate(params.CellID) {
			s.publish(SlicePool, "player_deactivated", params.CellID)
		}
	}

	s.reconcileLocked()

	s.publish(SliceContent, "content_assigned", cell)

	return cell, nil
}

// ClearContent returns a cell to the empty state, tearing down its player
// state and pool membership.
func (s *service) ClearContent(cellID string) (CellContent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.content[cellID]; !ok {
		return CellContent{}, ErrCellNotFound
	}

	cell := CellContent{ID: cellID, Kind: CellKindEmpty}
	s.content[cellID] = cell
	delete(s.players, cellID)
	if s.pool.deactivate(cellID) {
		s.publish(SlicePool, "player_deactivated", cellID)
	}

	s.publish(SliceContent, "content_assigned", cell)

	return cell, nil
}

func (s *service) clampAllLocked() {
	for i, item := range s.layout {
		s.layout[i] = layoutItemFromGrid(s.grid.Clamp(item.toGrid()))
	}
}
