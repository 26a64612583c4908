package internal

import "errors"

var (
	ErrNoLocales          = errors.New("localization: no available locales configured")
	ErrInvalidLocale      = errors.New("localization: locale must be a single host label")
	ErrNilTranslations    = errors.New("localization: translations are required")
	ErrRouteNotTranslated = errors.New("localization: route has no translated path")
	ErrRouteConflict      = errors.New("localization: path already serves another route")
)
