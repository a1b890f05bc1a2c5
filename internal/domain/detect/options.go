package detect

// Default thresholds, counted in vowel nuclei.
const (
	DefaultStressMinSyllables = 2
	DefaultRhythmMinSyllables = 3
)

// Option configures a Detector.
type Option func(*Detector)

// WithStressMinSyllables sets how many vowels a word needs before stress
// counts as a feature. Values below 1 are ignored.
func WithStressMinSyllables(n int) Option {
	return func(d *Detector) {
		if n >= 1 {
			d.stressMin = n
		}
	}
}

// WithRhythmMinSyllables sets how many vowels a word needs to show rhythm.
// Values below 1 are ignored.
func WithRhythmMinSyllables(n int) Option {
	return func(d *Detector) {
		if n >= 1 {
			d.rhythmMin = n
		}
	}
}

// WithRule binds rule to id, replacing any built-in rule for it.
func WithRule(id string, rule Rule) Option {
	return func(d *Detector) {
		if rule != nil {
			d.extra = append(d.extra, binding{id: id, rule: rule})
		}
	}
}
