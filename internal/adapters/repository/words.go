package repository

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sync"

	"github.com/okian/accent/internal/domain/model"
	"github.com/okian/accent/pkg/metrics"
)

// Words is the in-memory, RWMutex-protected Store.
//
// Entries keep insertion order; index maps the normalised text to a slot.
type Words struct {
	mu      sync.RWMutex
	entries []model.WordEntry
	index   map[string]int

	rndMu          sync.Mutex
	rnd            *rand.Rand // nil means the package-level source
	fuzzyThreshold float64
}

var _ Store = (*Words)(nil)

// NewWords creates an empty repository.
func NewWords(opts ...Option) *Words {
	w := &Words{
		index:          make(map[string]int),
		fuzzyThreshold: defaultFuzzyThreshold,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// All returns copies of every entry in insertion order.
func (w *Words) All(ctx context.Context) []model.WordEntry {
	w.mu.RLock()
	defer w.mu.RUnlock()

	out := make([]model.WordEntry, len(w.entries))
	for i, e := range w.entries {
		out[i] = e.Clone()
	}
	return out
}

// Random picks an entry uniformly. Repeats are allowed.
func (w *Words) Random(ctx context.Context) (model.WordEntry, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	if len(w.entries) == 0 {
		metrics.RecordRepositoryError("empty")
		return model.WordEntry{}, ErrEmptyRepository
	}
	return w.entries[w.intN(len(w.entries))].Clone(), nil
}

func (w *Words) intN(n int) int {
	if w.rnd == nil {
		return rand.IntN(n)
	}
	w.rndMu.Lock()
	defer w.rndMu.Unlock()
	return w.rnd.IntN(n)
}

// FindByText looks a word up case-insensitively.
func (w *Words) FindByText(ctx context.Context, text string) (model.WordEntry, error) {
	key := model.NormalizeText(text)

	w.mu.RLock()
	defer w.mu.RUnlock()

	i, ok := w.index[key]
	if !ok {
		metrics.RecordLookupMiss()
		return model.WordEntry{}, fmt.Errorf("%w: %q", ErrNotFound, key)
	}
	return w.entries[i].Clone(), nil
}

// Add appends entry; the new word is visible to the next read. Entries
// without text or transcription are rejected with model.ErrInvalidWord.
func (w *Words) Add(ctx context.Context, entry model.WordEntry) error {
	key := model.NormalizeText(entry.Text)
	if key == "" || entry.Transcription.IsZero() {
		metrics.RecordRepositoryError("invalid")
		return fmt.Errorf("%w: %q", model.ErrInvalidWord, key)
	}
	entry = entry.Clone()
	entry.Text = key

	w.mu.Lock()
	if _, exists := w.index[key]; exists {
		w.mu.Unlock()
		metrics.RecordRepositoryError("duplicate")
		return fmt.Errorf("%w: %q", ErrDuplicateWord, key)
	}
	w.index[key] = len(w.entries)
	w.entries = append(w.entries, entry)
	n := len(w.entries)
	w.mu.Unlock()

	metrics.RecordWordAdded()
	metrics.UpdateRepositoryWords(n)
	return nil
}

// Count returns the number of entries.
func (w *Words) Count(ctx context.Context) int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return len(w.entries)
}

// ByFeature returns the entries targeting id, in insertion order.
func (w *Words) ByFeature(ctx context.Context, id string) []model.WordEntry {
	w.mu.RLock()
	defer w.mu.RUnlock()

	var out []model.WordEntry
	for _, e := range w.entries {
		if e.TargetFeature == id {
			out = append(out, e.Clone())
		}
	}
	return out
}

// texts returns a snapshot of the known spellings.
func (w *Words) texts() []string {
	w.mu.RLock()
	defer w.mu.RUnlock()

	out := make([]string, len(w.entries))
	for i, e := range w.entries {
		out[i] = e.Text
	}
	return out
}
