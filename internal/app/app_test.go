package app

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridview/server/internal/grid"
	multiviewRedis "github.com/gridview/server/internal/repository/multiview/redis"
	"github.com/gridview/server/internal/service/multiview"
	"github.com/gridview/server/pkg/ytoembed"
)

type noMetadata struct{}

func (noMetadata) Get(_ context.Context, _ string) (*ytoembed.VideoData, error) {
	return nil, ytoembed.ErrVideoNotFound
}

func TestMultiviewSession(t *testing.T) {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	s := miniredis.RunT(t)
	r := redis.NewClient(&redis.Options{
		Addr: s.Addr(),
	})
	stateRepo := multiviewRedis.NewRepo(r, 24*time.Hour)
	service := multiview.NewService(stateRepo, noMetadata{}, &multiview.Config{
		Grid:       grid.Config{Cols: 24, Rows: 24, MinW: 2, MinH: 2},
		MaxCells:   16,
		MaxPlayers: 6,
	}, slog.Default())

	ctx := context.Background()

	// build an arrangement
	cell1, err := service.AddCell(&multiview.AddCellParams{W: 12, H: 12})
	require.NoError(t, err)
	cell2, err := service.AddCell(&multiview.AddCellParams{W: 12, H: 12})
	require.NoError(t, err)
	assert.NotEqual(t, cell1.ID, cell2.ID)
	t.Log("cells added")

	// assign a video and bring its player up
	_, err = service.AssignContent(&multiview.AssignContentParams{
		CellID:      cell1.ID,
		Kind:        multiview.CellKindVideo,
		VideoID:     "dQw4w9WgXcQ",
		VideoSource: multiview.VideoSourceYouTube,
	})
	require.NoError(t, err)

	evicted, err := service.ActivateCell(cell1.ID)
	require.NoError(t, err)
	assert.Empty(t, evicted, "pool is not full yet")
	assert.Equal(t, []string{cell1.ID}, service.ActiveCells())
	t.Log("video activated")

	// persist the session, then restore it into a fresh service
	require.NoError(t, service.Save(ctx))

	restored := multiview.NewService(stateRepo, noMetadata{}, &multiview.Config{
		Grid:       grid.Config{Cols: 24, Rows: 24, MinW: 2, MinH: 2},
		MaxCells:   16,
		MaxPlayers: 6,
	}, slog.Default())
	loaded, err := restored.Load(ctx)
	require.NoError(t, err)
	require.True(t, loaded)

	snap := restored.Snapshot()
	assert.Len(t, snap.Layout, 2, "layout must survive the roundtrip")
	assert.Equal(t, multiview.CellKindVideo, snap.Content[cell1.ID].Kind)
	assert.Empty(t, snap.ActiveCells, "pool membership is runtime-only")
	t.Log("session restored")

	// custom preset lifecycle against the same redis
	preset, err := restored.SavePreset(ctx, "two up")
	require.NoError(t, err)

	presets, err := restored.ListPresets(ctx)
	require.NoError(t, err)
	found := false
	for _, p := range presets {
		if p.ID == preset.ID {
			found = true
			assert.False(t, p.IsBuiltIn)
		}
	}
	assert.True(t, found, "saved preset must be listed")

	applied, err := restored.ApplyPreset(ctx, preset.ID)
	require.NoError(t, err)
	assert.Len(t, applied.Layout, 2)
	for _, item := range applied.Layout {
		assert.NotEqual(t, cell1.ID, item.ID, "preset apply must mint fresh ids")
		assert.NotEqual(t, cell2.ID, item.ID, "preset apply must mint fresh ids")
	}
	t.Log("preset applied")

	require.NoError(t, restored.DeletePreset(ctx, preset.ID))

	t.Log(r.Keys(ctx, "*").Val())
}
