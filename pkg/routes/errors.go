package routes

import "errors"

var (
	ErrSourceFailed    = errors.New("routes: source failed to load")
	ErrInvalidFile     = errors.New("routes: invalid translation file")
	ErrReloadFailed    = errors.New("routes: reload failed")
	ErrInvalidSchedule = errors.New("routes: invalid reload schedule")
	ErrEmptyTable      = errors.New("routes: no route translations loaded")
)
