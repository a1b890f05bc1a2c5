package service

import "errors"

// Sentinel kinds for service errors.
var (
	ErrNotStarted       = errors.New("service not started")
	ErrWordNotFound     = errors.New("word not found")
	ErrDuplicateRequest = errors.New("request already in progress")
	ErrInvalidRequest   = errors.New("invalid request")
)
