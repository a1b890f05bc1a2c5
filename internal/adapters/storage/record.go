// Package storage holds the word record format shared by the persistence
// backends, and the conversions between records and domain entries.
package storage

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/okian/accent/internal/domain/model"
	"github.com/okian/accent/internal/domain/phonetic"
)

// WordRecord is the on-disk word shape:
//
//	{"text": "water", "syllables": ["W AA1", "DX ER0"], "feature_id": "t_flap",
//	 "original_pronunciation": false, "ipa_pronunciation": "...", "clip_id": "clip3"}
type WordRecord struct {
	Text                  string   `json:"text" yaml:"text"`
	Syllables             []string `json:"syllables" yaml:"syllables"`
	FeatureID             string   `json:"feature_id" yaml:"feature_id"`
	OriginalPronunciation Gloss    `json:"original_pronunciation,omitempty" yaml:"original_pronunciation,omitempty"`
	IPAPronunciation      string   `json:"ipa_pronunciation,omitempty" yaml:"ipa_pronunciation,omitempty"`
	ClipID                string   `json:"clip_id,omitempty" yaml:"clip_id,omitempty"`
}

// Gloss is a reference pronunciation that older files store as a boolean
// placeholder. Booleans decode to the empty gloss.
type Gloss string

// UnmarshalJSON accepts a string, a boolean or null.
func (g *Gloss) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*g = Gloss(s)
		return nil
	}
	var flag *bool
	if err := json.Unmarshal(b, &flag); err != nil {
		return fmt.Errorf("original_pronunciation: want string or bool, got %s", b)
	}
	*g = ""
	return nil
}

// UnmarshalYAML accepts a string or a boolean scalar.
func (g *Gloss) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("original_pronunciation: want scalar at line %d", node.Line)
	}
	if tag := node.ShortTag(); tag == "!!bool" || tag == "!!null" {
		*g = ""
		return nil
	}
	*g = Gloss(node.Value)
	return nil
}

// Skipped describes a record that could not become a word entry.
type Skipped struct {
	Index int
	Text  string
	Err   error
}

// ToEntry validates r and converts it into a word entry.
func (r WordRecord) ToEntry() (model.WordEntry, error) {
	t, err := phonetic.ParseSyllables(r.Syllables)
	if err != nil {
		return model.WordEntry{}, fmt.Errorf("%w: %q: %w", model.ErrInvalidWord, r.Text, err)
	}
	opts := []model.WordOption{
		model.WithSyllables(r.Syllables),
		model.WithGloss(string(r.OriginalPronunciation)),
		model.WithClipID(r.ClipID),
	}
	if ipa := r.IPAPronunciation; ipa != "" && !derivedIPA(ipa, t) {
		opts = append(opts, model.WithIPA(ipa))
	}
	return model.NewWordEntry(r.Text, t, r.FeatureID, opts...)
}

// derivedIPA reports whether ipa is just the lower-cased ARPAbet run
// together, which some generated word lists store in place of real IPA.
func derivedIPA(ipa string, t phonetic.Transcription) bool {
	flat := strings.ToLower(strings.ReplaceAll(t.String(), " ", ""))
	return strings.ReplaceAll(strings.ToLower(ipa), " ", "") == flat
}

// FromEntry converts a word entry into its record form.
func FromEntry(e model.WordEntry) WordRecord {
	return WordRecord{
		Text:                  e.Text,
		Syllables:             append([]string(nil), e.Syllables...),
		FeatureID:             e.TargetFeature,
		OriginalPronunciation: Gloss(e.Gloss),
		IPAPronunciation:      e.IPA,
		ClipID:                e.ClipID,
	}
}

// Decode converts records, collecting the ones that fail validation instead
// of failing the whole load.
func Decode(records []WordRecord) ([]model.WordEntry, []Skipped) {
	entries := make([]model.WordEntry, 0, len(records))
	var skipped []Skipped
	for i, r := range records {
		e, err := r.ToEntry()
		if err != nil {
			skipped = append(skipped, Skipped{Index: i, Text: r.Text, Err: err})
			continue
		}
		entries = append(entries, e)
	}
	return entries, skipped
}
