package multiview

import "time"

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

type CellContent struct {
	ID          string `json:"id"`
	Kind        string `json:"kind"`
	VideoID     string `json:"video_id,omitempty"`
	VideoSource string `json:"video_source,omitempty"`
	ChatTab     int    `json:"chat_tab,omitempty"`
}

type PlayerState struct {
	CellID       string   `json:"cell_id"`
	Muted        bool     `json:"muted"`
	Volume       int      `json:"volume"`
	Playing      bool     `json:"playing"`
	CurrentTime  *float64 `json:"current_time,omitempty"`
	PlaybackRate *float64 `json:"playback_rate,omitempty"`
}

type State struct {
	Layout         []LayoutItem           `json:"layout"`
	Content        map[string]CellContent `json:"content"`
	PlayerStates   map[string]PlayerState `json:"player_states"`
	MuteOthers     bool                   `json:"mute_others"`
	ActivePresetID *string                `json:"active_preset_id,omitempty"`
}

type Preset struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	EncodedLayout  string    `json:"encoded_layout"`
	VideoCellCount int       `json:"video_cell_count"`
	CreatedAt      time.Time `json:"created_at"`
}

type SetStateParams struct {
	State State
}

type SetPresetParams struct {
	Preset Preset
}
