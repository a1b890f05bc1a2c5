package repository

import (
	"context"
	"sort"
	"strings"

	"github.com/antzucaro/matchr"

	"github.com/okian/accent/internal/domain/model"
)

const (
	defaultFuzzyThreshold = 0.80
	// phoneticThreshold applies when the Double Metaphone codes overlap.
	phoneticThreshold = 0.60
)

type suggestion struct {
	text     string
	score    float64
	phonetic bool
}

// Suggest ranks known words by spelling similarity, preferring words that
// also sound alike. Exact matches are not suggested.
func (w *Words) Suggest(ctx context.Context, text string, n int) []string {
	query := model.NormalizeText(text)
	if query == "" || n <= 0 {
		return nil
	}
	queryCodes := metaphoneCodes(query)

	var found []suggestion
	for _, cand := range w.texts() {
		if cand == query {
			continue
		}
		score := matchr.JaroWinkler(query, cand, false)
		sounds := codesOverlap(queryCodes, metaphoneCodes(cand))
		switch {
		case sounds && score >= phoneticThreshold:
		case score >= w.fuzzyThreshold:
		default:
			continue
		}
		found = append(found, suggestion{text: cand, score: score, phonetic: sounds})
	}

	sort.Slice(found, func(i, j int) bool {
		a, b := found[i], found[j]
		if a.phonetic != b.phonetic {
			return a.phonetic
		}
		if a.score != b.score {
			return a.score > b.score
		}
		return a.text < b.text
	})
	if len(found) > n {
		found = found[:n]
	}

	out := make([]string, len(found))
	for i, s := range found {
		out[i] = s.text
	}
	return out
}

// metaphoneCodes returns the Double Metaphone codes of every token in s.
// Underscores separate tokens the same way spaces do.
func metaphoneCodes(s string) map[string]struct{} {
	tokens := strings.Fields(strings.ReplaceAll(s, "_", " "))
	codes := make(map[string]struct{}, len(tokens)*2)
	for _, t := range tokens {
		primary, secondary := matchr.DoubleMetaphone(t)
		if primary != "" {
			codes[primary] = struct{}{}
		}
		if secondary != "" {
			codes[secondary] = struct{}{}
		}
	}
	return codes
}

func codesOverlap(a, b map[string]struct{}) bool {
	if len(a) > len(b) {
		a, b = b, a
	}
	for code := range a {
		if _, ok := b[code]; ok {
			return true
		}
	}
	return false
}
