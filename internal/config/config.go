// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New(ctx) to build a Config with defaults.
// - Loaders accept context.Context as the first parameter.
// - Validation failures wrap ErrInvalidConfig.
package config

import (
	"context"
	"fmt"
)

// Storage backends for words and statistics.
const (
	StorageJSON   = "json"
	StorageSQLite = "sqlite"
	StorageMemory = "memory"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`
	// LogFormat selects text or json log output.
	LogFormat string `koanf:"log_format"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// AppName and Version are reported by GET /config.
	AppName string `koanf:"app_name"`
	Version string `koanf:"version"`

	// Storage picks the persistence backend: json, sqlite or memory.
	Storage string `koanf:"storage"`
	// WordFile is the JSON or YAML word list used by the json backend.
	WordFile string `koanf:"word_file"`
	// StatsFile is the JSON statistics file used by the json backend.
	StatsFile string `koanf:"stats_file"`
	// SQLitePath is the database file used by the sqlite backend.
	SQLitePath string `koanf:"sqlite_path"`
	// CMUDictPath optionally points at a CMU pronouncing dictionary used as
	// an IPA fallback for words outside the repository.
	CMUDictPath string `koanf:"cmu_dict_path"`

	// SeedBuiltin fills an empty repository with the catalog example words.
	SeedBuiltin bool `koanf:"seed_builtin"`

	// Example sentence bounds.
	SentencesMin     int `koanf:"sentences_min"`
	SentencesMax     int `koanf:"sentences_max"`
	SentencesDefault int `koanf:"sentences_default"`

	// Detection thresholds, counted in vowels.
	StressMinSyllables int `koanf:"stress_min_syllables"`
	RhythmMinSyllables int `koanf:"rhythm_min_syllables"`

	// PersistQueueSize bounds pending statistics writes.
	PersistQueueSize int `koanf:"persist_queue_size"`

	// DedupeSize bounds the answer request-id cache.
	DedupeSize int `koanf:"dedupe_size"`

	// MaxSuggestions caps "did you mean" suggestions on failed lookups.
	MaxSuggestions int `koanf:"max_suggestions"`

	// Quiz holds presentation defaults shared with clients.
	Quiz QuizConfig `koanf:"quiz"`
}

// QuizConfig holds the client-facing quiz presentation defaults.
type QuizConfig struct {
	ShowIPA       bool `koanf:"show_ipa" json:"show_ipa"`
	ShowSyllables bool `koanf:"show_syllables" json:"show_syllables"`
	ShowOriginal  bool `koanf:"show_original" json:"show_original"`
}

// New creates a Config with defaults. The context is reserved for loaders
// that need it and is currently unused.
func New(_ context.Context) *Config {
	return &Config{
		LogLevel:           "info",
		LogFormat:          "text",
		Addr:               ":9080",
		AppName:            "American Accent Trainer",
		Version:            "1.0.0",
		Storage:            StorageJSON,
		WordFile:           "data/words.json",
		StatsFile:          "data/stats.json",
		SQLitePath:         "data/accent.db",
		SeedBuiltin:        true,
		SentencesMin:       1,
		SentencesMax:       10,
		SentencesDefault:   5,
		StressMinSyllables: 2,
		RhythmMinSyllables: 3,
		PersistQueueSize:   1,
		DedupeSize:         10_000,
		MaxSuggestions:     5,
		Quiz: QuizConfig{
			ShowIPA:       true,
			ShowSyllables: true,
			ShowOriginal:  false,
		},
	}
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	switch {
	case c.Addr == "":
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	case c.Storage != StorageJSON && c.Storage != StorageSQLite && c.Storage != StorageMemory:
		return fmt.Errorf("%w: unknown storage %q", ErrInvalidConfig, c.Storage)
	case c.Storage == StorageJSON && (c.WordFile == "" || c.StatsFile == ""):
		return fmt.Errorf("%w: json storage needs word_file and stats_file", ErrInvalidConfig)
	case c.Storage == StorageSQLite && c.SQLitePath == "":
		return fmt.Errorf("%w: sqlite storage needs sqlite_path", ErrInvalidConfig)
	case c.SentencesMin < 0 || c.SentencesMax < c.SentencesMin:
		return fmt.Errorf("%w: sentences_min %d / sentences_max %d", ErrInvalidConfig, c.SentencesMin, c.SentencesMax)
	case c.SentencesDefault < c.SentencesMin || c.SentencesDefault > c.SentencesMax:
		return fmt.Errorf("%w: sentences_default %d outside [%d, %d]", ErrInvalidConfig, c.SentencesDefault, c.SentencesMin, c.SentencesMax)
	case c.StressMinSyllables < 1 || c.RhythmMinSyllables < 1:
		return fmt.Errorf("%w: syllable thresholds must be positive", ErrInvalidConfig)
	case c.PersistQueueSize < 1:
		return fmt.Errorf("%w: persist_queue_size must be positive", ErrInvalidConfig)
	case c.MaxSuggestions < 0:
		return fmt.Errorf("%w: max_suggestions must not be negative", ErrInvalidConfig)
	}
	return nil
}
