package multiview

import "github.com/gridview/server/internal/grid"

const (
	CellKindEmpty = "empty"
	CellKindVideo = "video"
	CellKindChat  = "chat"
)

const (
	VideoSourceYouTube = "youtube"
	VideoSourceTwitch  = "twitch"
)

type LayoutItem struct {
	ID          string `json:"id"`
	X           int    `json:"x"`
	Y           int    `json:"y"`
	W           int    `json:"w"`
	H           int    `json:"h"`
	IsDraggable bool   `json:"is_draggable"`
	IsResizable bool   `json:"is_resizable"`
	Static      bool   `json:"static"`
}

func (l LayoutItem) toGrid() grid.Item {
	return grid.Item{
		ID:          l.ID,
		X:           l.X,
		Y:           l.Y,
		W:           l.W,
		H:           l.H,
		IsDraggable: l.IsDraggable,
		IsResizable: l.IsResizable,
		Static:      l.Static,
	}
}

func layoutItemFromGrid(item grid.Item) LayoutItem {
	return LayoutItem{
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

type CellContent struct {
	ID          string         `json:"id"`
	Kind        string         `json:"kind"`
	VideoID     string         `json:"video_id,omitempty"`
	VideoSource string         `json:"video_source,omitempty"`
	ChatTab     int            `json:"chat_tab,omitempty"`
	Metadata    *VideoMetadata `json:"metadata,omitempty"`
}

// VideoMetadata is provider-supplied and best-effort; it may be absent.
type VideoMetadata struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	ChannelID   string `json:"channel_id"`
	ChannelName string `json:"channel_name"`
	Thumbnail   string `json:"thumbnail,omitempty"`
}

type PlayerState struct {
	CellID       string   `json:"cell_id"`
	Muted        bool     `json:"muted"`
	Volume       int      `json:"volume"`
	Playing      bool     `json:"playing"`
	CurrentTime  *float64 `json:"current_time,omitempty"`
	PlaybackRate *float64 `json:"playback_rate,omitempty"`
}

type SizeConstraint struct {
	MaxW int `json:"max_w"`
	MaxH int `json:"max_h"`
}

type Snapshot struct {
	Layout         []LayoutItem              `json:"layout"`
	Content        map[string]CellContent    `json:"content"`
	PlayerStates   map[string]PlayerState    `json:"player_states"`
	ActiveCells    []string                  `json:"active_cells"`
	MuteOthers     bool                      `json:"mute_others"`
	ActivePresetID *string                   `json:"active_preset_id,omitempty"`
	GestureActive  bool                      `json:"gesture_active"`
	Constraints    map[string]SizeConstraint `json:"constraints"`
}

type Preset struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	EncodedLayout  string `json:"encoded_layout"`
	IsBuiltIn      bool   `json:"is_built_in"`
	VideoCellCount int    `json:"video_cell_count"`
	CreatedAt      string `json:"created_at,omitempty"`
}
