package phonetic

import "errors"

// ErrEmptyTranscription is returned when a transcription has no units.
var ErrEmptyTranscription = errors.New("empty transcription")
