// Package detect maps a word's transcription to the pronunciation features
// it demonstrates.
package detect

import (
	"sort"

	"github.com/okian/accent/internal/domain/catalog"
	"github.com/okian/accent/internal/domain/phonetic"
)

// Set is a sorted, duplicate-free list of feature ids.
type Set []string

// Has reports whether id is in the set.
func (s Set) Has(id string) bool {
	i := sort.SearchStrings(s, id)
	return i < len(s) && s[i] == id
}

// Slice returns a copy of the ids.
func (s Set) Slice() []string {
	return append([]string{}, s...)
}

type binding struct {
	id   string
	rule Rule
}

// Detector evaluates one rule per feature. It holds no mutable state after
// construction and is safe for concurrent use.
type Detector struct {
	stressMin int
	rhythmMin int
	extra     []binding
	bindings  []binding
}

// New creates a detector with the default rule table.
func New(opts ...Option) *Detector {
	d := &Detector{
		stressMin: DefaultStressMinSyllables,
		rhythmMin: DefaultRhythmMinSyllables,
	}
	for _, opt := range opts {
		opt(d)
	}

	d.bindings = []binding{
		{catalog.Stress, Stress(d.stressMin)},
		{catalog.Rhythm, Rhythm(d.rhythmMin)},
		{catalog.Reduction, Reduction},
		{catalog.Linking, Linking},
		{catalog.Assimilation, Assimilation},
		{catalog.TFlap, TFlap},
		{catalog.DarkL, DarkL},
		{catalog.Glottalization, Glottalization},
		{catalog.RColoring, RColoring},
		{catalog.Aspiration, Aspiration},
		{catalog.NasalFlap, NasalFlap},
		{catalog.Contractions, Contractions},
	}
	for _, b := range d.extra {
		d.bind(b)
	}
	d.extra = nil
	return d
}

// bind replaces the rule for b.id, or appends it when the id is new.
func (d *Detector) bind(b binding) {
	for i := range d.bindings {
		if d.bindings[i].id == b.id {
			d.bindings[i] = b
			return
		}
	}
	d.bindings = append(d.bindings, b)
}

// Detect returns every feature whose rule matches. An empty set is a valid
// result.
func (d *Detector) Detect(word string, t phonetic.Transcription) Set {
	if t.IsZero() {
		return Set{}
	}
	in := NewInput(word, t)
	out := make(Set, 0, 4)
	for _, b := range d.bindings {
		if b.rule(in) {
			out = append(out, b.id)
		}
	}
	sort.Strings(out)
	return out
}

// Features returns the ids that have a rule, in evaluation order.
func (d *Detector) Features() []string {
	out := make([]string, len(d.bindings))
	for i, b := range d.bindings {
		out[i] = b.id
	}
	return out
}
