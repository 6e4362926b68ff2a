package multiview

import (
	"fmt"

	"github.com/gridview/server/pkg/layoutcode"
)

type EncodedLayout struct {
	Encoded        string `json:"encoded"`
	VideoCellCount int    `json:"video_cell_count"`
}

// EncodeLayout serializes the current arrangement into the shareable string
// form. includeContentIDs controls whether video ids travel with it.
func (s *service) EncodeLayout(includeContentIDs bool) (EncodedLayout, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	encoded, err := layoutcode.Encode(toCodecItems(s.layout), toCodecContent(s.content), includeContentIDs)
	if err != nil {
		return EncodedLayout{}, fmt.Errorf("failed to encode layout: %w", err)
	}

	return EncodedLayout{Encoded: encoded.Encoded, VideoCellCount: encoded.VideoCellCount}, nil
}

// DecodeLayout parses a shareable string without touching the session.
// Decoded cells carry fresh ids.
func (s *service) DecodeLayout(encoded string) ([]LayoutItem, map[string]CellContent, error) {
	decoded, err := layoutcode.Decode(encoded, s.newCellID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to decode layout: %w", err)
	}

	layout, content := fromCodec(decoded)

	return layout, content, nil
}

// ImportLayout replaces the session with a decoded shareable string, e.g.
// one pasted from a shared link.
func (s *service) ImportLayout(encoded string) (Snapshot, error) {
	layout, content, err := s.DecodeLayout(encoded)
	if err != nil {
		return Snapshot{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.installLocked(layout, content, nil)

	return s.snapshotLocked(), nil
}

func toCodecItems(layout []LayoutItem) []layoutcode.Item {
	items := make([]layoutcode.Item, len(layout))
	for i, item := range layout {
		items[i] = layoutcode.Item{ID: item.ID, X: item.X, Y: item.Y, W: item.W, H: item.H}
	}

	return items
}

func toCodecContent(content map[string]CellContent) map[string]layoutcode.Content {
	codec := make(map[string]layoutcode.Content, len(content))
	for id, cell := range content {
		codec[id] = layoutcode.Content{
			ID:          cell.ID,
			Kind:        cell.Kind,
			VideoID:     cell.VideoID,
			VideoSource: cell.VideoSource,
			ChatTab:     cell.ChatTab,
		}
	}

	return codec
}

func fromCodec(decoded layoutcode.Decoded) ([]LayoutItem, map[string]CellContent) {
	layout := make([]LayoutItem, len(decoded.Layout))
	for i, item := range decoded.Layout {
		layout[i] = LayoutItem{
			ID:          item.ID,
			X:           item.X,
			Y:           item.Y,
			W:           item.W,
			H:           item.H,
			IsDraggable: true,
			IsResizable: true,
		}
	}

	content := make(map[string]CellContent, len(decoded.Content))
	for id, cell := range decoded.Content {
		content[id] = CellContent{
			ID:          cell.ID,
			Kind:        cell.Kind,
			VideoID:     cell.VideoID,
			VideoSource: cell.VideoSource,
			ChatTab:     cell.ChatTab,
		}
	}

	return layout, content
}
