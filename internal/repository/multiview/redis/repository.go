package redis

import (
	"time"

	"github.com/redis/go-redis/v9"
)

type repo struct {
	rc             *redis.Client
	expireDuration time.Duration
}

func NewRepo(rc *redis.Client, expireDuration time.Duration) *repo {
	return &repo{
		rc:             rc,
		expireDuration: expireDuration,
	}
}

func (r repo) getStateKey() string {
	return "multiview:state"
}

func (r repo) getPresetKey(presetID string) string {
	return "multiview:preset:" + presetID
}

func (r repo) getPresetListKey() string {
	return "multiview:presets"
}
