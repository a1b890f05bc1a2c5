package cli

import (
	"fmt"
	"io"
	"sort"

	"github.com/okian/accent/internal/domain/quiz"
)

const topMissed = 5

// FeatureTally counts finished rounds for one target feature.
type FeatureTally struct {
	Rounds  int
	Correct int
}

type wordTally struct {
	rounds   int
	attempts int
}

// Tally summarises one terminal session. A round finishes when its word is
// answered correctly or skipped.
type Tally struct {
	Rounds     int
	Correct    int
	Skipped    int
	Attempts   int
	PerFeature map[string]*FeatureTally
	Missed     map[string]int

	words map[string]*wordTally
}

// NewTally returns an empty tally.
func NewTally() *Tally {
	return &Tally{
		PerFeature: make(map[string]*FeatureTally),
		Missed:     make(map[string]int),
		words:      make(map[string]*wordTally),
	}
}

// Record adds a finished round. Wrong guesses before the finish count as
// misses for the word, as does a skip.
func (t *Tally) Record(res quiz.Result) {
	word := res.Word.Text
	t.Rounds++
	t.Attempts += res.RoundAttempts

	ft := t.PerFeature[res.CorrectFeature]
	if ft == nil {
		ft = &FeatureTally{}
		t.PerFeature[res.CorrectFeature] = ft
	}
	ft.Rounds++

	misses := res.RoundAttempts - 1
	switch res.Kind {
	case quiz.Correct:
		t.Correct++
		ft.Correct++
	case quiz.Skipped:
		t.Skipped++
		misses++
	}
	if misses > 0 {
		t.Missed[word] += misses
	}

	wt := t.words[word]
	if wt == nil {
		wt = &wordTally{}
		t.words[word] = wt
	}
	wt.rounds++
	wt.attempts += res.RoundAttempts
}

// Write prints the summary under title.
func (t *Tally) Write(w io.Writer, title string) {
	if t.Rounds == 0 {
		fmt.Fprintln(w, "No rounds played.")
		return
	}
	fmt.Fprintf(w, "\n%s\n", title)
	fmt.Fprintf(w, "Total rounds: %d\n", t.Rounds)
	fmt.Fprintf(w, "Correct: %d\n", t.Correct)
	fmt.Fprintf(w, "Skipped: %d\n", t.Skipped)
	fmt.Fprintf(w, "Average attempts per round: %.2f\n", float64(t.Attempts)/float64(t.Rounds))

	fmt.Fprintln(w, "Per-feature accuracy:")
	features := make([]string, 0, len(t.PerFeature))
	for id := range t.PerFeature {
		features = append(features, id)
	}
	sort.Strings(features)
	for _, id := range features {
		ft := t.PerFeature[id]
		fmt.Fprintf(w, "- %s: %.1f%% (%d/%d)\n", id, float64(ft.Correct)/float64(ft.Rounds)*100, ft.Correct, ft.Rounds)
	}

	if missed := t.TopMissed(topMissed); len(missed) > 0 {
		fmt.Fprintln(w, "Most missed words:")
		for _, word := range missed {
			fmt.Fprintf(w, "- %s: %d\n", word, t.Missed[word])
		}
	}

	fmt.Fprintf(w, "Attempts per word (top %d by avg attempts):\n", topMissed)
	for _, word := range t.topByAttempts(topMissed) {
		wt := t.words[word]
		fmt.Fprintf(w, "- %s: %.2f avg over %d rounds\n", word, float64(wt.attempts)/float64(wt.rounds), wt.rounds)
	}
}

// TopMissed returns up to n words by miss count, then alphabetically.
func (t *Tally) TopMissed(n int) []string {
	words := make([]string, 0, len(t.Missed))
	for w := range t.Missed {
		words = append(words, w)
	}
	sort.Slice(words, func(i, j int) bool {
		if t.Missed[words[i]] != t.Missed[words[j]] {
			return t.Missed[words[i]] > t.Missed[words[j]]
		}
		return words[i] < words[j]
	})
	if len(words) > n {
		words = words[:n]
	}
	return words
}

func (t *Tally) topByAttempts(n int) []string {
	words := make([]string, 0, len(t.words))
	for w := range t.words {
		words = append(words, w)
	}
	avg := func(w string) float64 {
		wt := t.words[w]
		return float64(wt.attempts) / float64(wt.rounds)
	}
	sort.Slice(words, func(i, j int) bool {
		if avg(words[i]) != avg(words[j]) {
			return avg(words[i]) > avg(words[j])
		}
		return words[i] < words[j]
	})
	if len(words) > n {
		words = words[:n]
	}
	return words
}
