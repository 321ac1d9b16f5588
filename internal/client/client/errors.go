package client

import "errors"

var (
	ErrEmptyDSN              = errors.New("empty database path")
	ErrLocalDataNotAvailable = errors.New("local data unavailable")
)
