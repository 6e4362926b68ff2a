package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/gridview/server/internal/repository/multiview"
)

func (r repo) SetPreset(ctx context.Context, params *multiview.SetPresetParams) error {
	data, err := json.Marshal(params.Preset)
	if err != nil {
		return fmt.Errorf("failed to marshal preset: %w", err)
	}

	presetKey := r.getPresetKey(params.Preset.ID)

	pipe := r.rc.TxPipeline()
	pipe.Set(ctx, presetKey, data, r.expireDuration)
	pipe.SAdd(ctx, r.getPresetListKey(), params.Preset.ID)
	pipe.Expire(ctx, r.getPresetListKey(), r.expireDuration)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to set preset: %w", err)
	}

	return nil
}

func (r repo) GetPreset(ctx context.Context, presetID string) (multiview.Preset, error) {
	data, err := r.rc.Get(ctx, r.getPresetKey(presetID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return multiview.Preset{}, multiview.ErrPresetNotFound
		}

		return multiview.Preset{}, fmt.Errorf("failed to get preset: %w", err)
	}

	var preset multiview.Preset
	if err := json.Unmarshal(data, &preset); err != nil {
		return multiview.Preset{}, fmt.Errorf("failed to unmarshal preset: %w", err)
	}

	return preset, nil
}

func (r repo) GetPresets(ctx context.Context) ([]multiview.Preset, error) {
	ids, err := r.rc.SMembers(ctx, r.getPresetListKey()).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get preset ids: %w", err)
	}

	presets := make([]multiview.Preset, 0, len(ids))
	for _, id := range ids {
		preset, err := r.GetPreset(ctx, id)
		if err != nil {
			if errors.Is(err, multiview.ErrPresetNotFound) {
				// expired preset still referenced by the list
				r.rc.SRem(ctx, r.getPresetListKey(), id)
				continue
			}

			return nil, err
		}

		presets = append(presets, preset)
	}

	return presets, nil
}

func (r repo) RemovePreset(ctx context.Context, presetID string) error {
	res, err := r.rc.Del(ctx, r.getPresetKey(presetID)).Result()
	if err != nil {
		return fmt.Errorf("failed to remove preset: %w", err)
	}

	if res == 0 {
		return multiview.ErrPresetNotFound
	}

	r.rc.SRem(ctx, r.getPresetListKey(), presetID)

	return nil
}
