// Package repository holds the quiz-eligible words.
package repository

import (
	"context"

	"github.com/okian/accent/internal/domain/model"
)

// Store provides read/write access to the word set.
type Store interface {
	// All returns every entry in insertion order.
	All(ctx context.Context) []model.WordEntry

	// Random returns a uniformly chosen entry.
	// Returns ErrEmptyRepository when there are no entries.
	Random(ctx context.Context) (model.WordEntry, error)

	// FindByText looks a word up case-insensitively.
	// Returns ErrNotFound if the word is unknown.
	FindByText(ctx context.Context, text string) (model.WordEntry, error)

	// Add appends an entry. Returns ErrDuplicateWord when the text exists.
	Add(ctx context.Context, entry model.WordEntry) error

	// Count returns the number of entries.
	Count(ctx context.Context) int

	// Suggest returns up to n known words that look or sound like text.
	Suggest(ctx context.Context, text string, n int) []string

	// ByFeature returns the entries whose target feature is id.
	ByFeature(ctx context.Context, id string) []model.WordEntry
}
