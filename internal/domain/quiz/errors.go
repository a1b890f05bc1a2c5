package quiz

import "errors"

// ErrNoActiveWord is returned when a guess arrives for a session that has no
// word awaiting judgement, including a stale or repeated round.
var ErrNoActiveWord = errors.New("no active word")
