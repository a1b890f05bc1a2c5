// Package memory provides process-local stores that keep nothing on disk.
package memory

import (
	"context"
	"sync"

	"github.com/okian/accent/internal/domain/model"
	"github.com/okian/accent/internal/domain/progress"
)

// Store keeps words and the last persisted statistics in memory.
type Store struct {
	mu    sync.Mutex
	words []model.WordEntry
	index map[string]int
	stats progress.Stats
	saves int
}

// New returns a store preloaded with words.
func New(words ...model.WordEntry) *Store {
	s := &Store{index: make(map[string]int), stats: progress.NewStats()}
	for _, w := range words {
		s.put(w)
	}
	return s
}

func (s *Store) put(w model.WordEntry) {
	if i, ok := s.index[w.Text]; ok {
		s.words[i] = w.Clone()
		return
	}
	s.index[w.Text] = len(s.words)
	s.words = append(s.words, w.Clone())
}

// LoadAll returns copies of the stored words.
func (s *Store) LoadAll(_ context.Context) ([]model.WordEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.WordEntry, len(s.words))
	for i, w := range s.words {
		out[i] = w.Clone()
	}
	return out, nil
}

// Save stores entry, replacing any word with the same text.
func (s *Store) Save(_ context.Context, entry model.WordEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.put(entry)
	return nil
}

// Load returns the last persisted statistics.
func (s *Store) Load(_ context.Context) (progress.Stats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stats.Clone(), nil
}

// Persist keeps a copy of stats.
func (s *Store) Persist(_ context.Context, stats progress.Stats) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stats = stats.Clone()
	s.saves++
	return nil
}

// Persists returns how many times Persist was called.
func (s *Store) Persists() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saves
}
