// Package progress accumulates quiz attempt outcomes into global statistics.
package progress

import (
	"math"
	"sort"
	"sync"
)

// SkipGuess is the reserved guess value for a skipped round.
const SkipGuess = "skip"

// Stats is an aggregate snapshot. Values returned by a Tracker never alias
// its internal maps.
type Stats struct {
	TotalRounds       int            `json:"total_rounds"`
	TotalCorrect      int            `json:"correct"`
	TotalSkipped      int            `json:"skipped"`
	AttemptsPerWord   map[string]int `json:"attempts_per_word"`
	CorrectPerFeature map[string]int `json:"per_feature"`
	MostMissed        map[string]int `json:"most_missed"`
}

// NewStats returns zeroed statistics with non-nil maps.
func NewStats() Stats {
	return Stats{
		AttemptsPerWord:   map[string]int{},
		CorrectPerFeature: map[string]int{},
		MostMissed:        map[string]int{},
	}
}

// Clone deep-copies s.
func (s Stats) Clone() Stats {
	out := s
	out.AttemptsPerWord = cloneCounts(s.AttemptsPerWord)
	out.CorrectPerFeature = cloneCounts(s.CorrectPerFeature)
	out.MostMissed = cloneCounts(s.MostMissed)
	return out
}

func cloneCounts(m map[string]int) map[string]int {
	out := make(map[string]int, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// Accuracy returns the percentage of correct rounds rounded to one decimal.
func (s Stats) Accuracy() float64 {
	if s.TotalRounds == 0 {
		return 0
	}
	return math.Round(float64(s.TotalCorrect)/float64(s.TotalRounds)*1000) / 10
}

// Count is a word or feature with its tally.
type Count struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// TopMissed returns up to n most-missed words, highest first and then by word.
// n <= 0 returns all of them.
func (s Stats) TopMissed(n int) []Count {
	return top(s.MostMissed, n)
}

// TopFeatures returns up to n features by correct count.
func (s Stats) TopFeatures(n int) []Count {
	return top(s.CorrectPerFeature, n)
}

func top(m map[string]int, n int) []Count {
	out := make([]Count, 0, len(m))
	for k, v := range m {
		out = append(out, Count{Key: k, Count: v})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Key < out[j].Key
	})
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

// Tracker is the mutex-protected owner of the global statistics.
type Tracker struct {
	mu       sync.Mutex
	stats    Stats
	onChange func()
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithOnChange registers a hook called after every mutation, outside the
// tracker lock. The hook must not block.
func WithOnChange(fn func()) Option {
	return func(t *Tracker) { t.onChange = fn }
}

// New creates an empty tracker.
func New(opts ...Option) *Tracker {
	t := &Tracker{stats: NewStats()}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// SaveAttempt records one judged round. Any word or feature string is
// accepted.
func (t *Tracker) SaveAttempt(word string, correct bool, feature string) {
	t.mu.Lock()
	s := &t.stats
	s.TotalRounds++
	s.AttemptsPerWord[word]++
	if correct {
		s.TotalCorrect++
		s.CorrectPerFeature[feature]++
	} else {
		s.MostMissed[word]++
	}
	if feature == SkipGuess {
		s.TotalSkipped++
	}
	t.mu.Unlock()

	t.changed()
}

// Stats returns a consistent deep copy of the current statistics.
func (t *Tracker) Stats() Stats {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.stats.Clone()
}

// Reset zeroes all aggregates.
func (t *Tracker) Reset() {
	t.mu.Lock()
	t.stats = NewStats()
	t.mu.Unlock()

	t.changed()
}

// Restore replaces the statistics with previously persisted values. It does
// not fire the change hook.
func (t *Tracker) Restore(s Stats) {
	s = s.Clone()
	t.mu.Lock()
	t.stats = s
	t.mu.Unlock()
}

func (t *Tracker) changed() {
	if t.onChange != nil {
		t.onChange()
	}
}
