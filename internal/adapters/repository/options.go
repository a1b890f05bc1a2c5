package repository

import "math/rand/v2"

// Option applies a configuration option to the Words repository.
type Option func(*Words)

// WithRand makes random selection use r instead of the shared source.
// Mainly useful for reproducible tests.
func WithRand(r *rand.Rand) Option {
	return func(w *Words) {
		if r != nil {
			w.rnd = r
		}
	}
}

// WithSuggestThreshold sets the minimum Jaro-Winkler similarity for a
// suggestion that does not also sound alike.
func WithSuggestThreshold(th float64) Option {
	return func(w *Words) {
		if th > 0 && th <= 1 {
			w.fuzzyThreshold = th
		}
	}
}
