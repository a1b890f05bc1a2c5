// Package model contains domain models passed between layers.
package model

import (
	"fmt"
	"strings"

	"github.com/okian/accent/internal/domain/catalog"
	"github.com/okian/accent/internal/domain/phonetic"
)

// WordEntry is one quiz-eligible word. Entries are built by NewWordEntry and
// treated as immutable; replace them wholesale instead of editing fields.
type WordEntry struct {
	Text          string                 // lower-cased, trimmed spelling
	Transcription phonetic.Transcription // pronunciation units
	Syllables     []string               // syllable-boundary representation
	TargetFeature string                 // catalog id this word quizzes
	Gloss         string                 // optional reference pronunciation
	IPA           string                 // IPA supplied by the word source, if any
	ClipID        string                 // optional audio clip reference
}

// WordOption sets an optional WordEntry field.
type WordOption func(*WordEntry)

// WithGloss sets the free-text reference pronunciation.
func WithGloss(gloss string) WordOption {
	return func(w *WordEntry) { w.Gloss = strings.TrimSpace(gloss) }
}

// WithIPA keeps an IPA string supplied by the word source.
func WithIPA(ipa string) WordOption {
	return func(w *WordEntry) { w.IPA = strings.TrimSpace(ipa) }
}

// WithClipID sets the audio clip reference.
func WithClipID(id string) WordOption {
	return func(w *WordEntry) { w.ClipID = id }
}

// WithSyllables overrides the syllables derived from the transcription.
// An empty list is ignored.
func WithSyllables(syllables []string) WordOption {
	return func(w *WordEntry) {
		if len(syllables) > 0 {
			w.Syllables = append([]string(nil), syllables...)
		}
	}
}

// NormalizeText returns the repository key for a spelling.
func NormalizeText(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}

// NewWordEntry validates and builds a word entry.
func NewWordEntry(text string, t phonetic.Transcription, target string, opts ...WordOption) (WordEntry, error) {
	text = NormalizeText(text)
	if text == "" {
		return WordEntry{}, fmt.Errorf("%w: empty text", ErrInvalidWord)
	}
	if t.IsZero() {
		return WordEntry{}, fmt.Errorf("%w: %q: %w", ErrInvalidWord, text, phonetic.ErrEmptyTranscription)
	}
	target = strings.TrimSpace(target)
	if !catalog.Has(target) {
		return WordEntry{}, fmt.Errorf("%w: %q: %w %q", ErrInvalidWord, text, catalog.ErrUnknownFeature, target)
	}

	w := WordEntry{
		Text:          text,
		Transcription: t,
		TargetFeature: target,
	}
	for _, opt := range opts {
		opt(&w)
	}
	if len(w.Syllables) == 0 {
		w.Syllables = t.Syllables()
	}
	return w, nil
}

// Clone returns a copy that shares no mutable state with w.
func (w WordEntry) Clone() WordEntry {
	w.Syllables = append([]string(nil), w.Syllables...)
	return w
}

// DisplayIPA returns the source IPA when present, otherwise one derived
// from the transcription.
func (w WordEntry) DisplayIPA() string {
	if w.IPA != "" {
		return w.IPA
	}
	if w.Transcription.IsZero() {
		return ""
	}
	return w.Transcription.IPA()
}
