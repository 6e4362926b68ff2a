package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridview/server/internal/repository/multiview"
)

func newTestRepo(t *testing.T) (*repo, *miniredis.Miniredis) {
	t.Helper()

	s := miniredis.RunT(t)
	rc := redis.NewClient(&redis.Options{
		Addr: s.Addr(),
	})

	return NewRepo(rc, time.Hour), s
}

func TestStateRoundtrip(t *testing.T) {
	r, _ := newTestRepo(t)
	ctx := context.Background()

	_, err := r.GetState(ctx)
	assert.ErrorIs(t, err, multiview.ErrStateNotFound)

	presetID := "builtin_2x2"
	state := multiview.State{
		Layout: []multiview.LayoutItem{
			{ID: "abc", X: 0, Y: 0, W: 12, H: 12, IsDraggable: true, IsResizable: true},
			{ID: "def", X: 12, Y: 0, W: 12, H: 12, IsDraggable: true, IsResizable: true},
		},
		Content: map[string]multiview.CellContent{
			"abc": {ID: "abc", Kind: "video", VideoID: "dQw4w9WgXcQ", VideoSource: "youtube"},
			"def": {ID: "def", Kind: "empty"},
		},
		PlayerStates: map[string]multiview.PlayerState{
			"abc": {CellID: "abc", Muted: false, Volume: 80, Playing: true},
		},
		MuteOthers:     true,
		ActivePresetID: &presetID,
	}

	require.NoError(t, r.SetState(ctx, &multiview.SetStateParams{State: state}))

	got, err := r.GetState(ctx)
	require.NoError(t, err)
	assert.Equal(t, state.Layout, got.Layout)
	assert.Equal(t, state.Content, got.Content)
	assert.Equal(t, state.PlayerStates, got.PlayerStates)
	assert.True(t, got.MuteOthers)
	require.NotNil(t, got.ActivePresetID)
	assert.Equal(t, presetID, *got.ActivePresetID)
}

func TestStateExpires(t *testing.T) {
	r, s := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, r.SetState(ctx, &multiview.SetStateParams{State: multiview.State{}}))

	s.FastForward(2 * time.Hour)

	_, err := r.GetState(ctx)
	assert.ErrorIs(t, err, multiview.ErrStateNotFound)
}

func TestPresetRoundtrip(t *testing.T) {
	r, _ := newTestRepo(t)
	ctx := context.Background()

	preset := multiview.Preset{
		ID:             "custom_1f0c",
		Name:           "my split",
		EncodedLayout:  "AAMY,MAMY",
		VideoCellCount: 2,
		CreatedAt:      time.Date(2026, 8, 23, 12, 0, 0, 0, time.UTC),
	}
	require.NoError(t, r.SetPreset(ctx, &multiview.SetPresetParams{Preset: preset}))

	got, err := r.GetPreset(ctx, preset.ID)
	require.NoError(t, err)
	assert.Equal(t, preset, got)

	_, err = r.GetPreset(ctx, "custom_missing")
	assert.ErrorIs(t, err, multiview.ErrPresetNotFound)
}

func TestGetPresetsListsAll(t *testing.T) {
	r, _ := newTestRepo(t)
	ctx := context.Background()

	for _, id := range []string{"custom_a", "custom_b", "custom_c"} {
		require.NoError(t, r.SetPreset(ctx, &multiview.SetPresetParams{Preset: multiview.Preset{
			ID:            id,
			Name:          id,
			EncodedLayout: "AAYY",
		}}))
	}

	presets, err := r.GetPresets(ctx)
	require.NoError(t, err)
	require.Len(t, presets, 3)

	ids := map[string]bool{}
	for _, p := range presets {
		ids[p.ID] = true
	}
	assert.Equal(t, map[string]bool{"custom_a": true, "custom_b": true, "custom_c": true}, ids)
}

func TestGetPresetsPrunesExpiredRefs(t *testing.T) {
	r, s := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, r.SetPreset(ctx, &multiview.SetPresetParams{Preset: multiview.Preset{
		ID:            "custom_gone",
		EncodedLayout: "AAYY",
	}}))

	// the preset value expired but the list still references it
	s.Del(r.getPresetKey("custom_gone"))

	presets, err := r.GetPresets(ctx)
	require.NoError(t, err)
	assert.Empty(t, presets)

	members, err := s.SMembers(r.getPresetListKey())
	if err == nil {
		assert.NotContains(t, members, "custom_gone")
	}
}

func TestRemovePreset(t *testing.T) {
	r, _ := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, r.SetPreset(ctx, &multiview.SetPresetParams{Preset: multiview.Preset{
		ID:            "custom_x",
		EncodedLayout: "AAYY",
	}}))

	require.NoError(t, r.RemovePreset(ctx, "custom_x"))
	assert.ErrorIs(t, r.RemovePreset(ctx, "custom_x"), multiview.ErrPresetNotFound)

	presets, err := r.GetPresets(ctx)
	require.NoError(t, err)
	assert.Empty(t, presets)
}
