package cmu

import "errors"

var (
	// ErrEmptyDictionary is returned when a source holds no usable entries.
	ErrEmptyDictionary = errors.New("cmu dictionary has no entries")
	// ErrNotFound is returned by Lookup for unknown words.
	ErrNotFound = errors.New("word not in cmu dictionary")
)
