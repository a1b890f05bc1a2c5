// Package quiz runs per-session quiz rounds: serve a word, judge a guess,
// record the outcome and advance.
package quiz

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/okian/accent/internal/domain/model"
	"github.com/okian/accent/internal/domain/progress"
	"github.com/okian/accent/pkg/logger"
	"github.com/okian/accent/pkg/metrics"
)

// WordSource supplies random quiz words.
type WordSource interface {
	Random(ctx context.Context) (model.WordEntry, error)
}

// Recorder receives judged attempts.
type Recorder interface {
	SaveAttempt(word string, correct bool, feature string)
}

// state is one session's mutable quiz state.
type state struct {
	mu            sync.Mutex
	current       *model.WordEntry
	round         uint64
	attempts      int
	roundAttempts int
}

// Manager owns every session. Sessions never expire; End drops one.
type Manager struct {
	words   WordSource
	tracker Recorder
	log     logger.Logger

	mu       sync.Mutex
	sessions map[string]*state
}

// Option configures a Manager.
type Option func(*Manager)

// WithLogger sets the manager's logger.
func WithLogger(l logger.Logger) Option {
	return func(m *Manager) {
		if l != nil {
			m.log = l
		}
	}
}

// New creates a manager serving words from words and recording into tracker.
func New(words WordSource, tracker Recorder, opts ...Option) *Manager {
	m := &Manager{
		words:    words,
		tracker:  tracker,
		sessions: make(map[string]*state),
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.log == nil {
		m.log = logger.Get().Named("quiz")
	}
	return m
}

func (m *Manager) session(id string, create bool) *state {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[id]
	if !ok && create {
		s = &state{}
		m.sessions[id] = s
		metrics.UpdateActiveSessions(len(m.sessions))
	}
	return s
}

// NextWord serves a random word, discarding any unjudged one. The session is
// created on first use.
func (m *Manager) NextWord(ctx context.Context, sessionID string) (Round, error) {
	s := m.session(sessionID, true)
	s.mu.Lock()
	defer s.mu.Unlock()
	return m.advance(ctx, sessionID, s)
}

// advance must be called with s.mu held.
func (m *Manager) advance(ctx context.Context, sessionID string, s *state) (Round, error) {
	w, err := m.words.Random(ctx)
	if err != nil {
		s.current = nil
		return Round{}, err
	}
	s.current = &w
	s.round++
	s.roundAttempts = 0
	metrics.RecordWordServed()
	return Round{SessionID: sessionID, Number: s.round, Word: w.Clone()}, nil
}

// SubmitGuess judges featureID against the current word.
func (m *Manager) SubmitGuess(ctx context.Context, sessionID, featureID string) (Result, error) {
	return m.submit(ctx, sessionID, 0, featureID)
}

// SubmitRoundGuess is SubmitGuess for a specific round. A round that is not
// the session's current one reports ErrNoActiveWord, so a replayed request
// is never scored twice.
func (m *Manager) SubmitRoundGuess(ctx context.Context, sessionID string, round uint64, featureID string) (Result, error) {
	if round == 0 {
		return Result{}, fmt.Errorf("%w: round 0", ErrNoActiveWord)
	}
	return m.submit(ctx, sessionID, round, featureID)
}

func (m *Manager) submit(ctx context.Context, sessionID string, round uint64, featureID string) (Result, error) {
	s := m.session(sessionID, false)
	if s == nil {
		return Result{}, fmt.Errorf("%w: session %q", ErrNoActiveWord, sessionID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return Result{}, fmt.Errorf("%w: session %q", ErrNoActiveWord, sessionID)
	}
	if round != 0 && round != s.round {
		return Result{}, fmt.Errorf("%w: round %d is not current (%d)", ErrNoActiveWord, round, s.round)
	}

	word := *s.current
	guess := NormalizeGuess(featureID)
	res := Result{
		CorrectFeature: word.TargetFeature,
		Guess:          guess,
		Word:           word.Clone(),
	}
	switch {
	case guess == progress.SkipGuess:
		res.Kind = Skipped
	case guess == word.TargetFeature:
		res.Kind = Correct
		res.Correct = true
	default:
		res.Kind = Wrong
	}

	s.attempts++
	s.roundAttempts++
	res.Attempt = s.attempts
	res.RoundAttempts = s.roundAttempts

	m.tracker.SaveAttempt(word.Text, res.Correct, guess)
	m.recordOutcome(ctx, res.Kind)
	m.log.Debug(ctx, "guess judged",
		logger.String("session", sessionID),
		logger.String("word", word.Text),
		logger.String("guess", guess),
		logger.String("outcome", res.Kind.String()))

	if res.Kind == Wrong {
		return res, nil
	}
	next, err := m.advance(ctx, sessionID, s)
	if err != nil {
		return res, fmt.Errorf("advance after %s guess: %w", res.Kind, err)
	}
	res.Next = &next
	return res, nil
}

func (m *Manager) recordOutcome(ctx context.Context, k FeedbackKind) {
	if err := metrics.RecordRound(k.String()); err != nil {
		m.log.Debug(ctx, "round outcome not recorded", logger.Error(err))
	}
}

// NormalizeGuess trims and lower-cases a guess. Only the skip token skips;
// an empty guess is judged like any other wrong answer.
func NormalizeGuess(guess string) string {
	return strings.ToLower(strings.TrimSpace(guess))
}

// Current returns the round awaiting a guess.
func (m *Manager) Current(ctx context.Context, sessionID string) (Round, error) {
	s := m.session(sessionID, false)
	if s == nil {
		return Round{}, fmt.Errorf("%w: session %q", ErrNoActiveWord, sessionID)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return Round{}, fmt.Errorf("%w: session %q", ErrNoActiveWord, sessionID)
	}
	return Round{SessionID: sessionID, Number: s.round, Word: s.current.Clone()}, nil
}

// End forgets a session. It reports whether the session existed.
func (m *Manager) End(ctx context.Context, sessionID string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.sessions[sessionID]; !ok {
		return false
	}
	delete(m.sessions, sessionID)
	metrics.UpdateActiveSessions(len(m.sessions))
	return true
}

// Sessions returns the number of sessions held.
func (m *Manager) Sessions() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}
