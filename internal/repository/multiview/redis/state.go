package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/gridview/server/internal/repository/multiview"
)

func (r repo) SetState(ctx context.Context, params *multiview.SetStateParams) error {
	data, err := json.Marshal(params.State)
	if err != nil {
		return fmt.Errorf("failed to marshal state: %w", err)
	}

	if err := r.rc.Set(ctx, r.getStateKey(), data, r.expireDuration).Err(); err != nil {
		return fmt.Errorf("failed to set state: %w", err)
	}

	return nil
}

func (r repo) GetState(ctx context.Context) (multiview.State, error) {
	data, err := r.rc.Get(ctx, r.getStateKey()).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return multiview.State{}, multiview.ErrStateNotFound
		}

		return multiview.State{}, fmt.Errorf("failed to get state: %w", err)
	}

	var state multiview.State
	if err := json.Unmarshal(data, &state); err != nil {
		return multiview.State{}, fmt.Errorf("failed to unmarshal state: %w", err)
	}

	r.rc.Expire(ctx, r.getStateKey(), r.expireDuration)

	return state, nil
}
