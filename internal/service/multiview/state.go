package multiview

import (
	"context"
	"errors"
	"fmt"

	"github.com/gridview/server/internal/repository/multiview"
)

// Save persists the session to the repository. Persistence is a side-effect
// of, not a precondition for, in-memory state changes: a failed save leaves
// the session untouched.
func (s *service) Save(ctx context.Context) error {
	s.mu.Lock()
	state := s.repoStateLocked()
	s.mu.Unlock()

	if err := s.stateRepo.SetState(ctx, &multiview.SetStateParams{State: state}); err != nil {
		return fmt.Errorf("failed to save state: %w", err)
	}

	return nil
}

// Load replaces the session with the persisted state. Externally-sourced
// values never enter the core unchecked: bounds are clamped and the two
// structures reconciled before the swap is visible. Returns false when
// nothing was persisted yet.
func (s *service) Load(ctx context.Context) (bool, error) {
	state, err := s.stateRepo.GetState(ctx)
	if err != nil {
		if errors.Is(err, multiview.ErrStateNotFound) {
			return false, nil
		}

		return false, fmt.Errorf("failed to load state: %w", err)
	}

	layout := make([]LayoutItem, len(state.Layout))
	for i, item := range state.Layout {
		layout[i] = LayoutItem{
			ID:          item.ID,
			X:           item.X,
			Y:           item.Y,
			W:           item.W,
			H:           item.H,
			IsDraggable: item.IsDraggable,
			IsResizable: item.IsResizable,
			Static:      item.Static,
		}
	}

	content := make(map[string]CellContent, len(state.Content))
	for id, cell := range state.Content {
		content[id] = CellContent{
			ID:          cell.ID,
			Kind:        cell.Kind,
			VideoID:     cell.VideoID,
			VideoSource: cell.VideoSource,
			ChatTab:     cell.ChatTab,
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.installLocked(layout, content, state.ActivePresetID)
	s.muteOthers = state.MuteOthers

	// loaded player states win over the defaults installLocked seeded, but
	// only for cells that still carry video content
	for id, ps := range state.PlayerStates {
		if cell, ok := s.content[id]; !ok || cell.Kind != CellKindVideo {
			continue
		}

		volume := ps.Volume
		if volume < 0 {
			volume = 0
		}
		if volume > 100 {
			volume = 100
		}

		s.players[id] = PlayerState{
			CellID:       id,
			Muted:        ps.Muted,
			Volume:       volume,
			Playing:      ps.Playing,
			CurrentTime:  ps.CurrentTime,
			PlaybackRate: ps.PlaybackRate,
		}
	}

	return true, nil
}

func (s *service) repoStateLocked() multiview.State {
	layout := make([]multiview.LayoutItem, len(s.layout))
	for i, item := range s.layout {
		layout[i] = multiview.LayoutItem{
			ID:          item.ID,
			X:           item.X,
			Y:           item.Y,
			W:           item.W,
			H:           item.H,
			IsDraggable: item.IsDraggable,
			IsResizable: item.IsResizable,
			Static:      item.Static,
		}
	}

	content := make(map[string]multiview.CellContent, len(s.content))
	for id, cell := range s.content {
		content[id] = multiview.CellContent{
			ID:          cell.ID,
			Kind:        cell.Kind,
			VideoID:     cell.VideoID,
			VideoSource: cell.VideoSource,
			ChatTab:     cell.ChatTab,
		}
	}

	players := make(map[string]multiview.PlayerState, len(s.players))
	for id, ps := range s.players {
		players[id] = multiview.PlayerState{
			CellID:       ps.CellID,
			Muted:        ps.Muted,
			Volume:       ps.Volume,
			Playing:      ps.Playing,
			CurrentTime:  ps.CurrentTime,
			PlaybackRate: ps.PlaybackRate,
		}
	}

	return multiview.State{
		Layout:         layout,
		Content:        content,
		PlayerStates:   players,
		MuteOthers:     s.muteOthers,
		ActivePresetID: s.activePresetID,
	}
}
