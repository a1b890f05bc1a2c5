// Package jsonfile persists words and statistics as files: words as a JSON
// or YAML list, statistics as a JSON object.
package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/okian/accent/internal/adapters/storage"
	"github.com/okian/accent/internal/domain/model"
	"github.com/okian/accent/internal/domain/progress"
	"github.com/okian/accent/pkg/logger"
)

// Store reads and writes the word and statistics files. Writes go to a
// temporary file that is renamed into place.
type Store struct {
	wordPath  string
	statsPath string
	log       logger.Logger

	mu sync.Mutex // serialises read-modify-write of the word file
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the store's logger.
func WithLogger(l logger.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.log = l
		}
	}
}

// New creates a store over the given files. Neither file needs to exist.
func New(wordPath, statsPath string, opts ...Option) *Store {
	s := &Store{wordPath: wordPath, statsPath: statsPath}
	for _, opt := range opts {
		opt(s)
	}
	if s.log == nil {
		s.log = logger.Get().Named("jsonfile")
	}
	return s
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

func (s *Store) readRecords() ([]storage.WordRecord, error) {
	b, err := os.ReadFile(s.wordPath)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.wordPath, err)
	}
	var recs []storage.WordRecord
	if isYAML(s.wordPath) {
		err = yaml.Unmarshal(b, &recs)
	} else {
		err = json.Unmarshal(b, &recs)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrCorruptFile, s.wordPath, err)
	}
	return recs, nil
}

func (s *Store) writeRecords(recs []storage.WordRecord) error {
	var (
		b   []byte
		err error
	)
	if isYAML(s.wordPath) {
		b, err = yaml.Marshal(recs)
	} else {
		b, err = json.MarshalIndent(recs, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("encode words: %w", err)
	}
	return writeAtomic(s.wordPath, b)
}

// LoadAll returns every valid word in file order. Invalid records are
// logged and skipped; a missing file yields no words.
func (s *Store) LoadAll(ctx context.Context) ([]model.WordEntry, error) {
	s.mu.Lock()
	recs, err := s.readRecords()
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}

	entries, skipped := storage.Decode(recs)
	for _, sk := range skipped {
		s.log.Warn(ctx, "skipping invalid word record",
			logger.String("file", s.wordPath),
			logger.Int("index", sk.Index),
			logger.String("text", sk.Text),
			logger.Error(sk.Err))
	}
	return entries, nil
}

// Save replaces the record with the same text or appends a new one.
func (s *Store) Save(ctx context.Context, entry model.WordEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	recs, err := s.readRecords()
	if err != nil {
		return err
	}
	rec := storage.FromEntry(entry)
	replaced := false
	for i := range recs {
		if model.NormalizeText(recs[i].Text) == entry.Text {
			recs[i] = rec
			replaced = true
			break
		}
	}
	if !replaced {
		recs = append(recs, rec)
	}
	return s.writeRecords(recs)
}

// SaveAll replaces the whole word file with entries.
func (s *Store) SaveAll(_ context.Context, entries []model.WordEntry) error {
	recs := make([]storage.WordRecord, len(entries))
	for i, e := range entries {
		recs[i] = storage.FromEntry(e)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writeRecords(recs)
}

// Load reads the statistics file. A missing file gives empty statistics; a
// corrupt one is logged and treated as empty.
func (s *Store) Load(ctx context.Context) (progress.Stats, error) {
	b, err := os.ReadFile(s.statsPath)
	if errors.Is(err, fs.ErrNotExist) {
		return progress.NewStats(), nil
	}
	if err != nil {
		return progress.Stats{}, fmt.Errorf("read %s: %w", s.statsPath, err)
	}

	stats := progress.NewStats()
	if err := json.Unmarshal(b, &stats); err != nil {
		s.log.Warn(ctx, "statistics file is corrupt, starting empty",
			logger.String("file", s.statsPath), logger.Error(err))
		return progress.NewStats(), nil
	}
	return stats.Clone(), nil
}

// Persist writes a statistics snapshot.
func (s *Store) Persist(ctx context.Context, stats progress.Stats) error {
	b, err := json.MarshalIndent(stats, "", "  ")
	if err != nil {
		return fmt.Errorf("encode stats: %w", err)
	}
	return writeAtomic(s.statsPath, b)
}

func writeAtomic(path string, b []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("create temp for %s: %w", path, err)
	}
	name := tmp.Name()
	defer func() { _ = os.Remove(name) }()

	if _, err := tmp.Write(append(b, '\n')); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	if err := os.Rename(name, path); err != nil {
		return fmt.Errorf("rename into %s: %w", path, err)
	}
	return nil
}
