package jsonfile

import "errors"

// ErrCorruptFile is returned when the word file cannot be decoded.
var ErrCorruptFile = errors.New("corrupt word file")
