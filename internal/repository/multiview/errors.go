package multiview

import "errors"

var (
	ErrStateNotFound  = errors.New("multiview state not found")
	ErrPresetNotFound = errors.New("preset not found")
)
