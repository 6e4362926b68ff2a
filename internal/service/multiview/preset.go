package multiview

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/gridview/server/internal/repository/multiview"
	"github.com/gridview/server/pkg/layoutcode"
)

const builtinPresetPrefix = "builtin_"

// fr is a fraction of a grid dimension. Presets are defined as ratios and
// rescaled to the live grid at apply-time, so changing the grid resolution
// does not invalidate them.
type fr struct {
	n int
	d int
}

func (f fr) scale(total int) int {
	return total * f.n / f.d
}

type presetCell struct {
	x0, x1  fr
	y0, y1  fr
	kind    string
	chatTab int
}

type builtinPreset struct {
	id    string
	name  string
	cells []presetCell
}

// videoCellCount is the number of player-bearing cells the preset defines.
// Instantiated builtin cells start out empty, so the count comes from the
// definition, not from the encoded form.
func (p builtinPreset) videoCellCount() int {
	count := 0
	for _, cell := range p.cells {
		if cell.kind == CellKindVideo {
			count++
		}
	}

	return count
}

var (
	whole = fr{1, 1}
	zero  = fr{0, 1}
)

func builtinPresets() []builtinPreset {
	videoCell := func(x0, x1, y0, y1 fr) presetCell {
		return presetCell{x0: x0, x1: x1, y0: y0, y1: y1, kind: CellKindVideo}
	}
	chatCell := func(x0, x1, y0, y1 fr, tab int) presetCell {
		return presetCell{x0: x0, x1: x1, y0: y0, y1: y1, kind: CellKindChat, chatTab: tab}
	}
	grid := func(cols, rows int) []presetCell {
		cells := make([]presetCell, 0, cols*rows)
		for row := 0; row < rows; row++ {
			for col := 0; col < cols; col++ {
				cells = append(cells, videoCell(fr{col, cols}, fr{col + 1, cols}, fr{row, rows}, fr{row + 1, rows}))
			}
		}
		return cells
	}

	return []builtinPreset{
		{id: "builtin_1", name: "Single", cells: []presetCell{
			videoCell(zero, whole, zero, whole),
		}},
		{id: "builtin_2", name: "2-way split (horizontal)", cells: []presetCell{
			videoCell(zero, fr{1, 2}, zero, whole),
			videoCell(fr{1, 2}, whole, zero, whole),
		}},
		{id: "builtin_2v", name: "2-way split (vertical)", cells: []presetCell{
			videoCell(zero, whole, zero, fr{1, 2}),
			videoCell(zero, whole, fr{1, 2}, whole),
		}},
		{id: "builtin_2x2", name: "2x2", cells: grid(2, 2)},
		{id: "builtin_3", name: "1+2", cells: []presetCell{
			videoCell(zero, fr{7, 12}, zero, whole),
			videoCell(fr{7, 12}, whole, zero, fr{1, 2}),
			videoCell(fr{7, 12}, whole, fr{1, 2}, whole),
		}},
		{id: "builtin_3x2", name: "3x2", cells: grid(3, 2)},
		{id: "builtin_3x3", name: "3x3", cells: grid(3, 3)},
		{id: "builtin_4x4", name: "4x4", cells: grid(4, 4)},
		{id: "builtin_side_chat", name: "Single + chat (side)", cells: []presetCell{
			videoCell(zero, fr{3, 4}, zero, whole),
			chatCell(fr{3, 4}, whole, zero, whole, 0),
		}},
		{id: "builtin_2_1chat", name: "2 + chat", cells: []presetCell{
			videoCell(zero, fr{3, 4}, zero, fr{1, 2}),
			videoCell(zero, fr{3, 4}, fr{1, 2}, whole),
			chatCell(fr{3, 4}, whole, zero, whole, 0),
		}},
		{id: "builtin_1_bottom_chat", name: "Single + chat (bottom)", cells: []presetCell{
			videoCell(zero, whole, zero, fr{3, 4}),
			chatCell(zero, whole, fr{3, 4}, whole, 0),
		}},
	}
}

// instantiate rescales the preset to the live grid. Every apply generates
// fresh cell ids, never reusing ones from earlier sessions.
func (s *service) instantiatePresetLocked(preset builtinPreset) ([]LayoutItem, map[string]CellContent) {
	layout := make([]LayoutItem, 0, len(preset.cells))
	content := make(map[string]CellContent, len(preset.cells))

	for _, cell := range preset.cells {
		x := cell.x0.scale(s.grid.Cols)
		y := cell.y0.scale(s.grid.Rows)
		item := LayoutItem{
			ID:          s.newCellID(),
			X:           x,
			Y:           y,
			W:           cell.x1.scale(s.grid.Cols) - x,
			H:           cell.y1.scale(s.grid.Rows) - y,
			IsDraggable: true,
			IsResizable: true,
		}
		layout = append(layout, item)

		switch cell.kind {
		case CellKindChat:
			content[item.ID] = CellContent{ID: item.ID, Kind: CellKindChat, ChatTab: cell.chatTab}
		default:
			content[item.ID] = CellContent{ID: item.ID, Kind: CellKindEmpty}
		}
	}

	return layout, content
}

// ListPresets returns the built-in catalog followed by custom presets from
// the repository.
func (s *service) ListPresets(ctx context.Context) ([]Preset, error) {
	s.mu.Lock()
	builtins := make([]Preset, 0, len(builtinPresets()))
	for _, bp := range builtinPresets() {
		layout, content := s.instantiatePresetLocked(bp)
		encoded, err := layoutcode.Encode(toCodecItems(layout), toCodecContent(content), false)
		if err != nil {
			s.mu.Unlock()
			return nil, fmt.Errorf("failed to encode builtin preset: %w", err)
		}

		builtins = append(builtins, Preset{
			ID:             bp.id,
			Name:           bp.name,
			EncodedLayout:  encoded.Encoded,
			IsBuiltIn:      true,
			VideoCellCount: bp.videoCellCount(),
		})
	}
	s.mu.Unlock()

	custom, err := s.stateRepo.GetPresets(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get presets: %w", err)
	}

	presets := builtins
	for _, p := range custom {
		presets = append(presets, presetFromRepo(p))
	}

	return presets, nil
}

// ApplyPreset replaces the whole arrangement with the preset's. Old cells
// are gone entirely: content, player states and pool membership included.
func (s *service) ApplyPreset(ctx context.Context, presetID string) (Snapshot, error) {
	var layout []LayoutItem
	var content map[string]CellContent

	if strings.HasPrefix(presetID, builtinPresetPrefix) {
		found := false
		for _, bp := range builtinPresets() {
			if bp.id == presetID {
				s.mu.Lock()
				layout, content = s.instantiatePresetLocked(bp)
				s.mu.Unlock()
				found = true
				break
			}
		}
		if !found {
			return Snapshot{}, ErrPresetNotFound
		}
	} else {
		preset, err := s.stateRepo.GetPreset(ctx, presetID)
		if err != nil {
			if err == multiview.ErrPresetNotFound {
				return Snapshot{}, ErrPresetNotFound
			}

			return Snapshot{}, fmt.Errorf("failed to get preset: %w", err)
		}

		decoded, err := layoutcode.Decode(preset.EncodedLayout, s.newCellID)
		if err != nil {
			return Snapshot{}, fmt.Errorf("failed to decode preset layout: %w", err)
		}

		layout, content = fromCodec(decoded)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.installLocked(layout, content, &presetID)

	s.publish(SlicePreset, "preset_applied", presetID)

	return s.snapshotLocked(), nil
}

// SavePreset stores the current arrangement, geometry only, as a custom
// preset.
func (s *service) SavePreset(ctx context.Context, name string) (Preset, error) {
	s.mu.Lock()
	encoded, err := layoutcode.Encode(toCodecItems(s.layout), toCodecContent(s.content), false)
	s.mu.Unlock()
	if err != nil {
		return Preset{}, fmt.Errorf("failed to encode layout: %w", err)
	}

	preset := multiview.Preset{
		ID:             "custom_" + uuid.NewString(),
		Name:           name,
		EncodedLayout:  encoded.Encoded,
		VideoCellCount: encoded.VideoCellCount,
		CreatedAt:      time.Now().UTC(),
	}
	if err := s.stateRepo.SetPreset(ctx, &multiview.SetPresetParams{Preset: preset}); err != nil {
		return Preset{}, fmt.Errorf("failed to save preset: %w", err)
	}

	s.publish(SlicePreset, "preset_saved", preset.ID)

	return presetFromRepo(preset), nil
}

// DeletePreset removes a custom preset. Built-ins are protected.
func (s *service) DeletePreset(ctx context.Context, presetID string) error {
	if strings.HasPrefix(presetID, builtinPresetPrefix) {
		return ErrPresetProtected
	}

	if err := s.stateRepo.RemovePreset(ctx, presetID); err != nil {
		if err == multiview.ErrPresetNotFound {
			return ErrPresetNotFound
		}

		return fmt.Errorf("failed to delete preset: %w", err)
	}

	s.publish(SlicePreset, "preset_deleted", presetID)

	return nil
}

// installLocked swaps the session to a new arrangement: bounds clamped,
// structures reconciled, player states rebuilt and the pool emptied.
func (s *service) installLocked(layout []LayoutItem, content map[string]CellContent, presetID *string) {
	s.layout = layout
	s.content = content
	s.players = make(map[string]PlayerState)
	for id, cell := range content {
		if cell.Kind == CellKindVideo {
			s.players[id] = PlayerState{CellID: id, Muted: true, Volume: 100}
		}
	}
	s.pool.deactivateAll()
	s.activePresetID = presetID

	s.clampAllLocked()
	s.reconcileLocked()

	s.publish(SliceLayout, "layout_replaced", nil)
	s.publish(SliceContent, "content_replaced", nil)
	s.publish(SlicePool, "pool_cleared", nil)
}

func presetFromRepo(p multiview.Preset) Preset {
	preset := Preset{
		ID:             p.ID,
		Name:           p.Name,
		EncodedLayout:  p.EncodedLayout,
		VideoCellCount: p.VideoCellCount,
	}
	if !p.CreatedAt.IsZero() {
		preset.CreatedAt = p.CreatedAt.Format(time.RFC3339)
	}

	return preset
}
