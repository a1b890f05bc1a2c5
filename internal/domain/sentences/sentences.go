// Package sentences builds practice sentences around a quiz word.
package sentences

import (
	"math/rand/v2"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"
)

// %s is the lower-cased word; %C marks the capitalised form.
var templates = []string{
	"The %s is important.",
	"I enjoy the %s.",
	"She mentioned the %s.",
	"They saw a beautiful %s.",
	"This %s is interesting.",
	"He studied the %s carefully.",
	"The %C was remarkable.",
	"Can you explain the %s?",
	"We discussed the %s at length.",
	"The %s has many uses.",
}

// Default bounds for the number of sentences returned.
const (
	DefaultMin   = 1
	DefaultMax   = 10
	DefaultCount = 5
)

// Generator fills sentence templates. It is safe for concurrent use.
type Generator struct {
	min, max, def int

	mu  sync.Mutex
	rnd *rand.Rand
}

// Option configures a Generator.
type Option func(*Generator)

// WithBounds sets the inclusive range requests are clamped to. The maximum
// never exceeds the number of templates.
func WithBounds(lo, hi int) Option {
	return func(g *Generator) {
		if lo >= 0 && hi >= lo {
			g.min, g.max = lo, hi
		}
	}
}

// WithDefault sets the count used when a request asks for zero or fewer.
func WithDefault(n int) Option {
	return func(g *Generator) {
		if n > 0 {
			g.def = n
		}
	}
}

// WithRand sets the random source used to pick templates.
func WithRand(r *rand.Rand) Option {
	return func(g *Generator) {
		if r != nil {
			g.rnd = r
		}
	}
}

// New creates a generator.
func New(opts ...Option) *Generator {
	g := &Generator{min: DefaultMin, max: DefaultMax, def: DefaultCount}
	for _, opt := range opts {
		opt(g)
	}
	if g.max > len(templates) {
		g.max = len(templates)
	}
	if g.min > g.max {
		g.min = g.max
	}
	return g
}

// Clamp returns the number of sentences Generate will produce for count.
func (g *Generator) Clamp(count int) int {
	if count <= 0 {
		count = g.def
	}
	if count < g.min {
		count = g.min
	}
	if count > g.max {
		count = g.max
	}
	return count
}

// Generate returns distinct sentences using word. A blank word yields none.
func (g *Generator) Generate(word string, count int) []string {
	word = strings.TrimSpace(strings.ReplaceAll(word, "_", " "))
	if word == "" {
		return nil
	}
	n := g.Clamp(count)
	lower := strings.ToLower(word)
	capital := capitalize(word)

	out := make([]string, 0, n)
	for _, i := range g.perm(len(templates))[:n] {
		s := strings.Replace(templates[i], "%C", capital, 1)
		out = append(out, strings.Replace(s, "%s", lower, 1))
	}
	return out
}

func (g *Generator) perm(n int) []int {
	if g.rnd == nil {
		return rand.Perm(n)
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rnd.Perm(n)
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}
