package i18n

import "errors"

var (
	ErrEmptyLanguage  = errors.New("i18n: empty language")
	ErrInvalidFile    = errors.New("i18n: malformed translation file")
)
