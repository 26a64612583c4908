package health

import "errors"

// ErrCheckTimeout wraps the error of a check that exceeded its timeout.
var ErrCheckTimeout = errors.New("health: check timeout")
