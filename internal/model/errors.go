package model

import "errors"

var (
	ErrInvalidURL      = errors.New("rawhttp: invalid url")
	ErrMissingHost     = errors.New("rawhttp: missing host")
	ErrMissingPort     = errors.New("rawhttp: missing port")
	ErrInvalidMethod   = errors.New("rawhttp: invalid method")
	ErrInvalidHeader   = errors.New("rawhttp: invalid header")
	ErrContentLength   = errors.New("rawhttp: conflicting content-length")
	ErrUnsupportedBody = errors.New("rawhttp: unsupported body type")

	// ErrInvalidUTF8 is returned when response bytes are decoded as text
	// and they are not valid UTF-8.
	ErrInvalidUTF8 = errors.New("rawhttp: invalid utf-8")
)
