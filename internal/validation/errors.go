package validation

import "errors"

var (
	ErrEmptyURL   = errors.New("url is required")
	ErrURLTooLong = errors.New("url exceeds maximum length")
)
