package model

import "errors"

// ErrInvalidWord is returned when a word entry fails validation.
var ErrInvalidWord = errors.New("invalid word entry")
