// Package bootstrap builds a configured quiz service for the binaries.
package bootstrap

import (
	"context"
	"fmt"

	"github.com/okian/accent/internal/adapters/cmu"
	"github.com/okian/accent/internal/adapters/storage/jsonfile"
	"github.com/okian/accent/internal/adapters/storage/memory"
	"github.com/okian/accent/internal/adapters/storage/sqlite"
	service "github.com/okian/accent/internal/app"
	"github.com/okian/accent/internal/config"
	"github.com/okian/accent/internal/domain/detect"
	"github.com/okian/accent/internal/domain/sentences"
	"github.com/okian/accent/pkg/logger"
)

// Store is a backend holding both words and statistics.
type Store interface {
	service.WordStore
	service.StatsStore
}

// OpenStore opens the backend selected by cfg.Storage.
func OpenStore(ctx context.Context, cfg *config.Config, log logger.Logger) (Store, error) {
	switch cfg.Storage {
	case config.StorageJSON:
		return jsonfile.New(cfg.WordFile, cfg.StatsFile, jsonfile.WithLogger(log.Named("jsonfile"))), nil
	case config.StorageSQLite:
		st, err := sqlite.Open(ctx, cfg.SQLitePath, sqlite.WithLogger(log.Named("sqlite")))
		if err != nil {
			return nil, fmt.Errorf("open sqlite %s: %w", cfg.SQLitePath, err)
		}
		return st, nil
	case config.StorageMemory:
		return memory.New(), nil
	}
	return nil, fmt.Errorf("%w: unknown storage %q", config.ErrInvalidConfig, cfg.Storage)
}

// OpenDictionary loads the CMU dictionary when one is configured. It
// returns nil without error when cfg.CMUDictPath is empty.
func OpenDictionary(ctx context.Context, cfg *config.Config) (*cmu.Dict, error) {
	if cfg.CMUDictPath == "" {
		return nil, nil
	}
	d, err := cmu.Load(ctx, cfg.CMUDictPath)
	if err != nil {
		return nil, fmt.Errorf("load cmu dictionary: %w", err)
	}
	return d, nil
}

// DetectorOptions maps the detection thresholds from cfg.
func DetectorOptions(cfg *config.Config) []detect.Option {
	return []detect.Option{
		detect.WithStressMinSyllables(cfg.StressMinSyllables),
		detect.WithRhythmMinSyllables(cfg.RhythmMinSyllables),
	}
}

// NewService opens the configured stores and dictionary and returns an
// unstarted service.
func NewService(ctx context.Context, cfg *config.Config, log logger.Logger) (*service.Service, error) {
	store, err := OpenStore(ctx, cfg, log)
	if err != nil {
		return nil, err
	}
	opts := []service.Option{
		service.WithLogger(log.Named("service")),
		service.WithWordStore(store),
		service.WithStatsStore(store),
		service.WithSeedBuiltin(cfg.SeedBuiltin),
		service.WithQueueSize(cfg.PersistQueueSize),
		service.WithDedupeSize(cfg.DedupeSize),
		service.WithMaxSuggestions(cfg.MaxSuggestions),
		service.WithDetectorOptions(DetectorOptions(cfg)...),
		service.WithSentenceOptions(
			sentences.WithBounds(cfg.SentencesMin, cfg.SentencesMax),
			sentences.WithDefault(cfg.SentencesDefault),
		),
	}

	dict, err := OpenDictionary(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if dict != nil {
		log.Info(ctx, "cmu dictionary loaded",
			logger.String("path", cfg.CMUDictPath), logger.Int("words", dict.Len()))
		opts = append(opts, service.WithDictionary(dict))
	}
	return service.New(opts...), nil
}
