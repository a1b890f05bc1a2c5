package cmu

import (
	"context"
	"fmt"
	"math/rand/v2"
	"unicode"

	"github.com/okian/accent/internal/domain/catalog"
	"github.com/okian/accent/internal/domain/detect"
	"github.com/okian/accent/internal/domain/model"
	"github.com/okian/accent/pkg/logger"
)

const (
	defaultClipCount     = 10
	intonationMinLetters = 7
)

// featurePriority decides which detected feature a generated word quizzes.
var featurePriority = []string{
	catalog.TFlap,
	catalog.Stress,
	catalog.Rhythm,
	catalog.DarkL,
	catalog.NasalFlap,
	catalog.Glottalization,
	catalog.RColoring,
	catalog.Reduction,
	catalog.Aspiration,
	catalog.Assimilation,
	catalog.Linking,
	catalog.Contractions,
}

// Importer converts dictionary entries into word entries.
type Importer struct {
	detector  *detect.Detector
	sample    int
	clipCount int
	rnd       *rand.Rand
	log       logger.Logger
}

// ImportOption configures an Importer.
type ImportOption func(*Importer)

// WithSample keeps a random sample of n words. n <= 0 keeps all of them.
func WithSample(n int) ImportOption {
	return func(im *Importer) { im.sample = n }
}

// WithClipCount assigns clip ids "clip1".."clipN". Zero leaves them empty.
func WithClipCount(n int) ImportOption {
	return func(im *Importer) {
		if n >= 0 {
			im.clipCount = n
		}
	}
}

// WithRand sets the random source for sampling and clip ids.
func WithRand(r *rand.Rand) ImportOption {
	return func(im *Importer) {
		if r != nil {
			im.rnd = r
		}
	}
}

// WithLogger sets the importer's logger.
func WithLogger(l logger.Logger) ImportOption {
	return func(im *Importer) {
		if l != nil {
			im.log = l
		}
	}
}

// NewImporter creates an importer that targets features found by d.
func NewImporter(d *detect.Detector, opts ...ImportOption) *Importer {
	im := &Importer{
		detector:  d,
		clipCount: defaultClipCount,
	}
	for _, opt := range opts {
		opt(im)
	}
	if im.rnd == nil {
		im.rnd = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if im.log == nil {
		im.log = logger.Get().Named("cmu")
	}
	return im
}

// PickFeature chooses the feature a word should quiz from its detected set.
// Words with nothing detected fall back to intonation when long and to
// assimilation otherwise.
func PickFeature(word string, found detect.Set) string {
	for _, id := range featurePriority {
		if found.Has(id) {
			return id
		}
	}
	if len([]rune(word)) >= intonationMinLetters {
		return catalog.Intonation
	}
	return catalog.Assimilation
}

// Import builds entries for the alphabetic words of dict, using each
// word's first pronunciation.
func (im *Importer) Import(ctx context.Context, dict *Dict) ([]model.WordEntry, error) {
	words := make([]string, 0, dict.Len())
	for _, w := range dict.Words() {
		if isAlpha(w) {
			words = append(words, w)
		}
	}
	if im.sample > 0 && im.sample < len(words) {
		im.rnd.Shuffle(len(words), func(i, j int) { words[i], words[j] = words[j], words[i] })
		words = words[:im.sample]
	}

	out := make([]model.WordEntry, 0, len(words))
	for i, w := range words {
		if i%1024 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		t, err := dict.Lookup(w)
		if err != nil {
			continue
		}
		var opts []model.WordOption
		if im.clipCount > 0 {
			opts = append(opts, model.WithClipID(fmt.Sprintf("clip%d", im.rnd.IntN(im.clipCount)+1)))
		}
		entry, err := model.NewWordEntry(w, t, PickFeature(w, im.detector.Detect(w, t)), opts...)
		if err != nil {
			im.log.Warn(ctx, "skipping dictionary word", logger.String("word", w), logger.Error(err))
			continue
		}
		out = append(out, entry)
	}
	im.log.Info(ctx, "imported dictionary words",
		logger.Int("words", len(out)),
		logger.Int("malformed_lines", dict.Malformed()))
	return out, nil
}

func isAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
