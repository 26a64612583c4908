package redis

import "errors"

var (
	ErrEmptyURL    = errors.New("redis: connection URL is empty")
	ErrInvalidURL  = errors.New("redis: invalid connection URL")
	ErrUnreachable = errors.New("redis: server unreachable")
	ErrPingFailed  = errors.New("redis: ping failed")
)
