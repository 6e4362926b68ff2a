package inmemory

import (
	"context"
	"sync"

	"github.com/gridview/server/internal/repository/multiview"
)

type repo struct {
	state    *multiview.State
	presets  map[string]multiview.Preset
	presetID []string
	mu       sync.RWMutex
}

func NewRepo() *repo {
	return &repo{
		presets: make(map[string]multiview.Preset),
	}
}

func (r *repo) SetState(_ context.Context, params *multiview.SetStateParams) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	state := params.State
	r.state = &state

	return nil
}

func (r *repo) GetState(_ context.Context) (multiview.State, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.state == nil {
		return multiview.State{}, multiview.ErrStateNotFound
	}

	return *r.state, nil
}

func (r *repo) SetPreset(_ context.Context, params *multiview.SetPresetParams) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.presets[params.Preset.ID]; !ok {
		r.presetID = append(r.presetID, params.Preset.ID)
	}
	r.presets[params.Preset.ID] = params.Preset

	return nil
}

func (r *repo) GetPreset(_ context.Context, presetID string) (multiview.Preset, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	preset, ok := r.presets[presetID]
	if !ok {
		return multiview.Preset{}, multiview.ErrPresetNotFound
	}

	return preset, nil
}

func (r *repo) GetPresets(_ context.Context) ([]multiview.Preset, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	presets := make([]multiview.Preset, 0, len(r.presets))
	for _, id := range r.presetID {
		presets = append(presets, r.presets[id])
	}

	return presets, nil
}

func (r *repo) RemovePreset(_ context.Context, presetID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.presets[presetID]; !ok {
		return multiview.ErrPresetNotFound
	}

	delete(r.presets, presetID)
	for i, id := range r.presetID {
		if id == presetID {
			r.presetID = append(r.presetID[:i], r.presetID[i+1:]...)
			break
		}
	}

	return nil
}
