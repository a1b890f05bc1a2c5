// Package sqlite persists words and statistics in a SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/okian/accent/internal/adapters/storage"
	"github.com/okian/accent/internal/domain/model"
	"github.com/okian/accent/internal/domain/progress"
	"github.com/okian/accent/pkg/logger"
)

//go:embed schema.sql
var schemaSQL string

// Count kinds stored in progress_counts.
const (
	kindAttempts   = "attempts"
	kindPerFeature = "per_feature"
	kindMostMissed = "most_missed"
)

// Store is a SQLite-backed word and statistics store.
type Store struct {
	db  *sql.DB
	log logger.Logger
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

// Open opens (creating if needed) the database at path and migrates it.
func Open(ctx context.Context, path string, opts ...Option) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	s, err := New(ctx, db, opts...)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

// New wraps an open database and migrates it. A single connection is used
// so that ":memory:" databases behave like files.
func New(ctx context.Context, db *sql.DB, opts ...Option) (*Store, error) {
	db.SetMaxOpenConns(1)
	s := &Store{db: db}
	for _, opt := range opts {
		opt(s)
	}
	if s.log == nil {
		s.log = logger.Get().Named("sqlite")
	}
	if err := InitDB(ctx, db); err != nil {
		return nil, err
	}
	return s, nil
}

// InitDB runs the embedded migrations.
func InitDB(ctx context.Context, db *sql.DB) error {
	for _, stmt := range strings.Split(schemaSQL, ";") {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("%w: %w", ErrMigrate, err)
		}
	}
	return nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// LoadAll returns every valid word in insertion order.
func (s *Store) LoadAll(ctx context.Context) ([]model.WordEntry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT text, syllables, feature_id, gloss, ipa, clip_id FROM words ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query words: %w", err)
	}
	defer rows.Close()

	var recs []storage.WordRecord
	for rows.Next() {
		var (
			r         storage.WordRecord
			syllables string
			gloss     string
		)
		if err := rows.Scan(&r.Text, &syllables, &r.FeatureID, &gloss, &r.IPAPronunciation, &r.ClipID); err != nil {
			return nil, fmt.Errorf("scan word: %w", err)
		}
		if err := json.Unmarshal([]byte(syllables), &r.Syllables); err != nil {
			s.log.Warn(ctx, "word has unreadable syllables", logger.String("text", r.Text), logger.Error(err))
		}
		r.OriginalPronunciation = storage.Gloss(gloss)
		recs = append(recs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate words: %w", err)
	}

	entries, skipped := storage.Decode(recs)
	for _, sk := range skipped {
		s.log.Warn(ctx, "skipping invalid word row",
			logger.String("text", sk.Text), logger.Error(sk.Err))
	}
	return entries, nil
}

// Save inserts the word or replaces the row with the same text.
func (s *Store) Save(ctx context.Context, entry model.WordEntry) error {
	syllables, err := json.Marshal(entry.Syllables)
	if err != nil {
		return fmt.Errorf("encode syllables: %w", err)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO words (text, syllables, feature_id, gloss, ipa, clip_id)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(text) DO UPDATE SET
			syllables = excluded.syllables,
			feature_id = excluded.feature_id,
			gloss = excluded.gloss,
			ipa = excluded.ipa,
			clip_id = excluded.clip_id`,
		entry.Text, string(syllables), entry.TargetFeature, entry.Gloss, entry.IPA, entry.ClipID)
	if err != nil {
		return fmt.Errorf("save word %q: %w", entry.Text, err)
	}
	return nil
}

// Load reads the persisted statistics; an empty database gives zero values.
func (s *Store) Load(ctx context.Context) (progress.Stats, error) {
	stats := progress.NewStats()

	err := s.db.QueryRowContext(ctx,
		`SELECT total_rounds, correct, skipped FROM progress_totals WHERE id = 1`).
		Scan(&stats.TotalRounds, &stats.TotalCorrect, &stats.TotalSkipped)
	if err != nil && err != sql.ErrNoRows {
		return progress.Stats{}, fmt.Errorf("query totals: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, `SELECT kind, key, count FROM progress_counts`)
	if err != nil {
		return progress.Stats{}, fmt.Errorf("query counts: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			kind, key string
			count     int
		)
		if err := rows.Scan(&kind, &key, &count); err != nil {
			return progress.Stats{}, fmt.Errorf("scan count: %w", err)
		}
		switch kind {
		case kindAttempts:
			stats.AttemptsPerWord[key] = count
		case kindPerFeature:
			stats.CorrectPerFeature[key] = count
		case kindMostMissed:
			stats.MostMissed[key] = count
		}
	}
	if err := rows.Err(); err != nil {
		return progress.Stats{}, fmt.Errorf("iterate counts: %w", err)
	}
	return stats, nil
}

// Persist replaces the stored statistics in one transaction.
func (s *Store) Persist(ctx context.Context, stats progress.Stats) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, `
		INSERT INTO progress_totals (id, total_rounds, correct, skipped) VALUES (1, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			total_rounds = excluded.total_rounds,
			correct = excluded.correct,
			skipped = excluded.skipped`,
		stats.TotalRounds, stats.TotalCorrect, stats.TotalSkipped); err != nil {
		return fmt.Errorf("write totals: %w", err)
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM progress_counts`); err != nil {
		return fmt.Errorf("clear counts: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO progress_counts (kind, key, count) VALUES (?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare counts: %w", err)
	}
	defer stmt.Close()

	for kind, counts := range map[string]map[string]int{
		kindAttempts:   stats.AttemptsPerWord,
		kindPerFeature: stats.CorrectPerFeature,
		kindMostMissed: stats.MostMissed,
	} {
		for key, count := range counts {
			if _, err = stmt.ExecContext(ctx, kind, key, count); err != nil {
				return fmt.Errorf("write %s count: %w", kind, err)
			}
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
