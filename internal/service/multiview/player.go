package multiview

// ActivateCell admits a cell's player into the active pool. The pool is LRU
// ordered, most-recently-activated first; admitting into a full pool evicts
// the least-recently-activated id. Eviction is a pure membership change and
// tears nothing down itself.
func (s *service) ActivateCell(cellID string) (evicted string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.findItemLocked(cellID); !ok {
		return "", ErrCellNotFound
	}
	if cell, ok := s.content[cellID]; !ok || cell.Kind != CellKindVideo {
		return "", ErrNotVideoCell
	}

	evictedID, didEvict := s.pool.activate(cellID)
	if didEvict {
		s.publish(SlicePool, "player_evicted", evictedID)
	}
	s.publish(SlicePool, "player_activated", cellID)

	if s.muteOthers {
		s.applyMuteOthersLocked(cellID)
	}

	return evictedID, nil
}

// DeactivateCell removes a cell from the pool; a no-op when absent.
func (s *service) DeactivateCell(cellID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pool.deactivate(cellID) {
		s.publish(SlicePool, "player_deactivated", cellID)
	}
}

func (s *service) DeactivateAll() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pool.deactivateAll()
	s.publish(SlicePool, "pool_cleared", nil)
}

// ActiveCells returns pool membership, most-recently-activated first.
func (s *service) ActiveCells() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.pool.active()
}

func (s *service) IsPoolFull() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.pool.isFull()
}

type UpdatePlayerStateParams struct {
	CellID       string
	Muted        bool
	Volume       int
	Playing      bool
	CurrentTime  *float64
	PlaybackRate *float64
}

// UpdatePlayerState records the runtime state of a cell's player. The state
// exists per content-bearing cell whether or not the player is currently in
// the active pool.
func (s *service) UpdatePlayerState(params *UpdatePlayerStateParams) (PlayerState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cell, ok := s.content[params.CellID]
	if !ok {
		return PlayerState{}, ErrCellNotFound
	}
	if cell.Kind != CellKindVideo {
		return PlayerState{}, ErrNotVideoCell
	}

	volume := params.Volume
	if volume < 0 {
		volume = 0
	}
	if volume > 100 {
		volume = 100
	}

	state := PlayerState{
		CellID:       params.CellID,
		Muted:        params.Muted,
		Volume:       volume,
		Playing:      params.Playing,
		CurrentTime:  params.CurrentTime,
		PlaybackRate: params.PlaybackRate,
	}
	s.players[params.CellID] = state

	s.publish(SlicePlayer, "player_state_updated", state)

	return state, nil
}

// SetMuteOthers toggles the one-unmuted-cell-at-a-time mode. When enabling,
// focusCellID names the cell that stays audible.
func (s *service) SetMuteOthers(enabled bool, focusCellID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.muteOthers = enabled
	if enabled {
		s.applyMuteOthersLocked(focusCellID)
	}

	s.publish(SlicePlayer, "mute_others_updated", enabled)
}

func (s *service) applyMuteOthersLocked(focusCellID string) {
	for id, state := range s.players {
		muted := id != focusCellID
		if state.Muted == muted {
			continue
		}

		state.Muted = muted
		s.players[id] = state
		s.publish(SlicePlayer, "player_state_updated", state)
	}
}
