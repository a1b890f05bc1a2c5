package service

import (
	"github.com/okian/accent/internal/adapters/repository"
	"github.com/okian/accent/internal/domain/detect"
	"github.com/okian/accent/internal/domain/sentences"
	"github.com/okian/accent/pkg/logger"
)

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithWordStore sets where added words are persisted and loaded from.
func WithWordStore(ws WordStore) Option {
	return func(s *Service) {
		if ws != nil {
			s.wordStore = ws
		}
	}
}

// WithStatsStore sets where statistics are persisted and loaded from.
func WithStatsStore(ss StatsStore) Option {
	return func(s *Service) {
		if ss != nil {
			s.statsStore = ss
		}
	}
}

// WithDictionary sets the fallback pronunciation source for IPA lookups.
func WithDictionary(d Dictionary) Option {
	return func(s *Service) { s.dict = d }
}

// WithSeedBuiltin controls whether an empty word set is filled with the
// catalog example words.
func WithSeedBuiltin(seed bool) Option {
	return func(s *Service) { s.seedBuiltin = seed }
}

// WithQueueSize sets how many statistics writes may be pending.
func WithQueueSize(size int) Option {
	return func(s *Service) {
		if size > 0 {
			s.queueSize = size
		}
	}
}

// WithDedupeSize sets the size of the answer request-id cache.
func WithDedupeSize(size int) Option {
	return func(s *Service) {
		if size > 0 {
			s.dedupeSize = size
		}
	}
}

// WithMaxSuggestions caps "did you mean" suggestions.
func WithMaxSuggestions(n int) Option {
	return func(s *Service) {
		if n >= 0 {
			s.maxSuggestions = n
		}
	}
}

// WithDetectorOptions configures the feature detector.
func WithDetectorOptions(opts ...detect.Option) Option {
	return func(s *Service) { s.detectOpts = append(s.detectOpts, opts...) }
}

// WithSentenceOptions configures the example sentence generator.
func WithSentenceOptions(opts ...sentences.Option) Option {
	return func(s *Service) { s.sentenceOpts = append(s.sentenceOpts, opts...) }
}

// WithRepositoryOptions configures the in-memory word repository.
func WithRepositoryOptions(opts ...repository.Option) Option {
	return func(s *Service) { s.repoOpts = append(s.repoOpts, opts...) }
}
