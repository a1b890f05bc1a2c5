package quiz

import (
	"github.com/okian/accent/internal/domain/model"
	"github.com/okian/accent/pkg/metrics"
)

// FeedbackKind is the three-way outcome of a judged guess.
type FeedbackKind int

const (
	Correct FeedbackKind = iota
	Wrong
	Skipped
)

func (k FeedbackKind) String() string {
	switch k {
	case Correct:
		return metrics.OutcomeCorrect
	case Wrong:
		return metrics.OutcomeWrong
	case Skipped:
		return metrics.OutcomeSkipped
	}
	return "unknown"
}

// MarshalText lets the kind appear as its name in JSON.
func (k FeedbackKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Round is a word served to a session. Number increases with every served
// word and identifies the round a guess answers.
type Round struct {
	SessionID string
	Number    uint64
	Word      model.WordEntry
}

// Result is the judgement of one guess.
type Result struct {
	Correct        bool
	Kind           FeedbackKind
	CorrectFeature string
	Guess          string
	Word           model.WordEntry
	Attempt        int    // judged guesses in this session
	RoundAttempts  int    // judged guesses on this word
	Next           *Round // set when the session advanced
}

// Judged reports whether the guess was scored. A Result returned with an
// error may still be judged when only the advance failed.
func (r Result) Judged() bool { return r.Attempt > 0 }

// Feedback renders the message shown after a guess.
func (r Result) Feedback() string {
	switch r.Kind {
	case Correct:
		return "Correct!"
	case Skipped:
		return "Skipped! Correct: " + r.CorrectFeature
	default:
		return "Wrong! Try again."
	}
}
