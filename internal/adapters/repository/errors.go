package repository

import "errors"

// Sentinel kinds for word repository errors.
var (
	ErrNotFound        = errors.New("word not found")
	ErrDuplicateWord   = errors.New("duplicate word")
	ErrEmptyRepository = errors.New("word repository is empty")
)
