package db

import "errors"

var (
	ErrEmptyDSN         = errors.New("db: connection string is empty")
	ErrInvalidDSN       = errors.New("db: invalid connection string")
	ErrUnreachable      = errors.New("db: database unreachable")
	ErrPingFailed       = errors.New("db: ping failed")
	ErrMigrationsFailed = errors.New("db: migrations failed")
)
