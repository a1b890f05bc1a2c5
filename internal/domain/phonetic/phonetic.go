// Package phonetic models ARPAbet-style transcriptions as ordered sequences
// of labeled units.
//
// Parsing is permissive: any whitespace separated token becomes a unit, and
// symbols outside the ARPAbet alphabet are kept as-is so that new
// transcription sources can introduce unseen units without failing.
package phonetic

import (
	"fmt"
	"strings"
)

// Stress is the stress level carried by a unit.
type Stress int

const (
	// StressNone marks an unstressed vowel (digit 0) or a unit with no marker.
	StressNone Stress = iota
	// StressPrimary marks a primary stressed vowel (digit 1).
	StressPrimary
	// StressSecondary marks a secondary stressed vowel (digit 2).
	StressSecondary
)

// String returns the lower-case stress name.
func (s Stress) String() string {
	switch s {
	case StressPrimary:
		return "primary"
	case StressSecondary:
		return "secondary"
	default:
		return "none"
	}
}

// boundaryBase is the base symbol used for every cross-word marker.
const boundaryBase = "|"

// vowels is the ARPAbet vowel inventory, including reduced and r-colored forms.
var vowels = map[string]struct{}{
	"AA": {}, "AE": {}, "AH": {}, "AO": {}, "AW": {}, "AX": {}, "AXR": {}, "AY": {},
	"EH": {}, "ER": {}, "EY": {}, "IH": {}, "IX": {}, "IY": {}, "OW": {}, "OY": {},
	"UH": {}, "UW": {}, "UX": {},
}

// Unit is one symbol of a transcription. The zero value is not meaningful;
// units are produced by ParseUnit.
type Unit struct {
	base   string
	stress Stress
}

// NewUnit builds a unit from a base symbol and a stress level.
func NewUnit(base string, stress Stress) Unit {
	return Unit{base: strings.ToUpper(base), stress: stress}
}

// Boundary returns a cross-word boundary unit.
func Boundary() Unit {
	return Unit{base: boundaryBase}
}

// ParseUnit parses a single token such as "AA1", "DX" or "|".
func ParseUnit(token string) Unit {
	token = strings.ToUpper(strings.TrimSpace(token))
	if isBoundaryToken(token) {
		return Boundary()
	}
	stress := StressNone
	if n := len(token); n > 1 {
		switch token[n-1] {
		case '0':
			token = token[:n-1]
		case '1':
			stress = StressPrimary
			token = token[:n-1]
		case '2':
			stress = StressSecondary
			token = token[:n-1]
		}
	}
	return Unit{base: token, stress: stress}
}

func isBoundaryToken(token string) bool {
	switch token {
	case "|", "#", "_", "+", "||":
		return true
	}
	return false
}

// Base returns the symbol without its stress digit.
func (u Unit) Base() string { return u.base }

// Stress returns the unit's stress level.
func (u Unit) Stress() Stress { return u.stress }

// IsBoundary reports whether u marks a word boundary.
func (u Unit) IsBoundary() bool { return u.base == boundaryBase }

// IsVowel reports whether the base symbol is an ARPAbet vowel.
func (u Unit) IsVowel() bool {
	_, ok := vowels[u.base]
	return ok
}

// IsConsonant reports whether u is a segment that is not a vowel.
func (u Unit) IsConsonant() bool {
	return !u.IsBoundary() && !u.IsVowel() && u.base != ""
}

// IsStressed reports whether u carries primary or secondary stress.
func (u Unit) IsStressed() bool {
	return u.stress == StressPrimary || u.stress == StressSecondary
}

// Is reports whether the base symbol equals any of the given symbols.
func (u Unit) Is(bases ...string) bool {
	for _, b := range bases {
		if u.base == b {
			return true
		}
	}
	return false
}

// String renders the unit back into ARPAbet form. Vowels always carry a digit.
func (u Unit) String() string {
	if !u.IsVowel() {
		return u.base
	}
	switch u.stress {
	case StressPrimary:
		return u.base + "1"
	case StressSecondary:
		return u.base + "2"
	default:
		return u.base + "0"
	}
}

// Transcription is an ordered, non-empty, immutable sequence of units.
type Transcription struct {
	units []Unit
}

// New builds a transcription from units. It fails when units is empty.
func New(units ...Unit) (Transcription, error) {
	if len(units) == 0 {
		return Transcription{}, ErrEmptyTranscription
	}
	cp := make([]Unit, len(units))
	copy(cp, units)
	return Transcription{units: cp}, nil
}

// Parse splits s on whitespace and parses each token as a unit.
func Parse(s string) (Transcription, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return Transcription{}, fmt.Errorf("%w: %q", ErrEmptyTranscription, s)
	}
	units := make([]Unit, 0, len(fields))
	for _, f := range fields {
		units = append(units, ParseUnit(f))
	}
	return Transcription{units: units}, nil
}

// ParseSyllables parses a syllable list such as ["W AA1", "DX", "ER0"].
func ParseSyllables(syllables []string) (Transcription, error) {
	return Parse(strings.Join(syllables, " "))
}

// MustParse is like Parse but panics on error. Intended for static tables.
func MustParse(s string) Transcription {
	t, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return t
}

// Len returns the number of units, boundaries included.
func (t Transcription) Len() int { return len(t.units) }

// IsZero reports whether t was never parsed.
func (t Transcription) IsZero() bool { return len(t.units) == 0 }

// At returns the unit at index i.
func (t Transcription) At(i int) Unit { return t.units[i] }

// Units returns a copy of the unit sequence.
func (t Transcription) Units() []Unit {
	cp := make([]Unit, len(t.units))
	copy(cp, t.units)
	return cp
}

// VowelCount returns the number of vowel units, which approximates the
// syllable count.
func (t Transcription) VowelCount() int {
	n := 0
	for _, u := range t.units {
		if u.IsVowel() {
			n++
		}
	}
	return n
}

// Segments returns the units with boundary markers removed.
func (t Transcription) Segments() []Unit {
	out := make([]Unit, 0, len(t.units))
	for _, u := range t.units {
		if !u.IsBoundary() {
			out = append(out, u)
		}
	}
	return out
}

// String renders the transcription as space separated ARPAbet.
func (t Transcription) String() string {
	parts := make([]string, len(t.units))
	for i, u := range t.units {
		parts[i] = u.String()
	}
	return strings.Join(parts, " ")
}

// Syllables groups units into syllables. Each syllable holds its onset
// consonants and one vowel; consonants after the last vowel of a word join
// that word's final syllable. Boundaries always close the running syllable
// and are not emitted.
func (t Transcription) Syllables() []string {
	var (
		out     []string
		current []string
		open    bool // current holds a vowel nucleus
	)
	flush := func() {
		if len(current) > 0 {
			out = append(out, strings.Join(current, " "))
		}
		current = nil
		open = false
	}
	// vowelAhead reports whether a vowel follows index i before the
	// next boundary, which decides whether a consonant is coda or onset.
	vowelAhead := func(i int) bool {
		for j := i + 1; j < len(t.units); j++ {
			if t.units[j].IsBoundary() {
				return false
			}
			if t.units[j].IsVowel() {
				return true
			}
		}
		return false
	}
	for i, u := range t.units {
		switch {
		case u.IsBoundary():
			flush()
		case u.IsVowel():
			if open {
				flush()
			}
			current = append(current, u.String())
			open = true
		default:
			if open && vowelAhead(i) {
				flush()
			}
			current = append(current, u.String())
		}
	}
	flush()
	return out
}
