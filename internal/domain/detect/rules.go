package detect

import (
	"strings"

	"github.com/okian/accent/internal/domain/phonetic"
)

// Input is what a rule inspects: the raw spelling and the parsed units.
type Input struct {
	Word  string
	Units []phonetic.Unit
}

// NewInput builds a rule input from a word and its transcription.
func NewInput(word string, t phonetic.Transcription) Input {
	return Input{Word: word, Units: t.Units()}
}

// Rule reports whether one feature is present. Rules only read their input.
type Rule func(Input) bool

// segments returns the units without boundary markers.
func (in Input) segments() []phonetic.Unit {
	out := make([]phonetic.Unit, 0, len(in.Units))
	for _, u := range in.Units {
		if !u.IsBoundary() {
			out = append(out, u)
		}
	}
	return out
}

func (in Input) vowelCount() int {
	n := 0
	for _, u := range in.Units {
		if u.IsVowel() {
			n++
		}
	}
	return n
}

func (in Input) hasStressedVowel() bool {
	for _, u := range in.Units {
		if u.IsVowel() && u.IsStressed() {
			return true
		}
	}
	return false
}

func (in Input) has(bases ...string) bool {
	for _, u := range in.Units {
		if u.Is(bases...) {
			return true
		}
	}
	return false
}

// words splits the spelling into lower-cased tokens on spaces and underscores.
func (in Input) words() []string {
	return strings.FieldsFunc(strings.ToLower(in.Word), func(r rune) bool {
		return r == '_' || r == ' ' || r == '\t'
	})
}

// followedBy reports whether some unit in first is immediately followed by a
// unit in second, ignoring boundaries.
func followedBy(segs []phonetic.Unit, first, second []string) bool {
	for i := 0; i+1 < len(segs); i++ {
		if segs[i].Is(first...) && segs[i+1].Is(second...) {
			return true
		}
	}
	return false
}

// Stress matches a stressed vowel in a word with at least minVowels vowels.
func Stress(minVowels int) Rule {
	return func(in Input) bool {
		return in.hasStressedVowel() && in.vowelCount() >= minVowels
	}
}

// Rhythm matches words long enough to show stress-timed compression.
func Rhythm(minVowels int) Rule {
	return func(in Input) bool {
		return in.vowelCount() >= minVowels && in.hasStressedVowel()
	}
}

// Reduction matches an unstressed schwa-class vowel.
func Reduction(in Input) bool {
	for _, u := range in.Units {
		if u.Is("AH", "AX", "IX") && u.Stress() == phonetic.StressNone {
			return true
		}
	}
	return false
}

// TFlap matches an explicit flap or a T/D between two vowels. A lone
// segment never flaps.
func TFlap(in Input) bool {
	segs := in.segments()
	if len(segs) < 2 {
		return false
	}
	if in.has("DX") {
		return true
	}
	for i := 1; i+1 < len(segs); i++ {
		if segs[i].Is("T", "D") && segs[i-1].IsVowel() && segs[i+1].IsVowel() {
			return true
		}
	}
	return false
}

// DarkL matches a word-final L or an L closed by a following consonant.
func DarkL(in Input) bool {
	if len(in.Units) < 2 {
		return false
	}
	for i, u := range in.Units {
		if !u.Is("L") || i == 0 {
			continue
		}
		if i+1 == len(in.Units) {
			return true
		}
		next := in.Units[i+1]
		if next.IsBoundary() || next.IsConsonant() {
			return true
		}
	}
	return false
}

// Glottalization matches T before a nasal, or an explicit glottal stop
// within a longer transcription.
func Glottalization(in Input) bool {
	segs := in.segments()
	if len(segs) < 2 {
		return false
	}
	return in.has("Q") || followedBy(segs, []string{"T"}, []string{"N", "M"})
}

// RColoring matches any rhotic vowel or consonant.
func RColoring(in Input) bool {
	return in.has("ER", "AXR", "R")
}

// Aspiration matches a word-initial voiceless stop.
func Aspiration(in Input) bool {
	return len(in.Units) >= 2 && in.Units[0].Is("P", "T", "K")
}

// NasalFlap matches N immediately followed by T or a flap.
func NasalFlap(in Input) bool {
	return followedBy(in.segments(), []string{"N"}, []string{"T", "DX"})
}

// Linking matches multi-word items, marked either in the transcription or
// in the spelling.
func Linking(in Input) bool {
	for _, u := range in.Units {
		if u.IsBoundary() {
			return true
		}
	}
	return len(in.words()) > 1
}

// Assimilation matches an alveolar followed by the glide Y, or a t/d + y
// word juncture that the transcription realises as CH or JH.
func Assimilation(in Input) bool {
	if followedBy(in.segments(), []string{"T", "D", "S", "Z"}, []string{"Y"}) {
		return true
	}
	words := in.words()
	for i := 0; i+1 < len(words); i++ {
		left, right := words[i], words[i+1]
		if (strings.HasSuffix(left, "t") || strings.HasSuffix(left, "d")) && strings.HasPrefix(right, "y") {
			return in.has("CH", "JH")
		}
	}
	return false
}

var informalForms = map[string]struct{}{
	"gonna": {}, "wanna": {}, "gotta": {}, "hafta": {}, "hasta": {}, "lemme": {},
	"gimme": {}, "kinda": {}, "sorta": {}, "outta": {}, "dunno": {}, "cuz": {},
	"cause": {},
}

var contractedTails = map[string]struct{}{"to": {}, "me": {}, "of": {}}

// Contractions matches informal spellings and phrases such as "going to".
func Contractions(in Input) bool {
	words := in.words()
	for i, w := range words {
		if _, ok := informalForms[w]; ok {
			return true
		}
		if i > 0 {
			if _, ok := contractedTails[w]; ok {
				return true
			}
		}
	}
	return false
}
