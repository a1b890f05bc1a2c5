package loadtest

import "errors"

// Sentinel errors reported by a load run.
var (
	ErrReplayMismatch = errors.New("replayed answer does not match the original")
	ErrStatsMismatch  = errors.New("server statistics do not match judged answers")
	ErrNoFeatures     = errors.New("server lists no features")
)
