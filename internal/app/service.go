// Package service wires the quiz engine together and implements the
// dependencies required by the HTTP API and the terminal quiz.
package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/okian/accent/internal/adapters/mq/queue"
	"github.com/okian/accent/internal/adapters/mq/worker"
	"github.com/okian/accent/internal/adapters/repository"
	"github.com/okian/accent/internal/adapters/storage/memory"
	"github.com/okian/accent/internal/domain/catalog"
	"github.com/okian/accent/internal/domain/dedupe"
	"github.com/okian/accent/internal/domain/detect"
	"github.com/okian/accent/internal/domain/model"
	"github.com/okian/accent/internal/domain/phonetic"
	"github.com/okian/accent/internal/domain/progress"
	"github.com/okian/accent/internal/domain/quiz"
	"github.com/okian/accent/internal/domain/sentences"
	"github.com/okian/accent/pkg/logger"
	"github.com/okian/accent/pkg/metrics"
)

// Pronunciation lookup sources.
const (
	SourceLocal = "local"
	SourceCMU   = "cmudict"
)

const (
	defaultQueueSize      = 1
	defaultDedupeSize     = 10000
	defaultMaxSuggestions = 5
	stopTimeout           = 10 * time.Second
)

// WordStore persists added words.
type WordStore interface {
	LoadAll(ctx context.Context) ([]model.WordEntry, error)
	Save(ctx context.Context, entry model.WordEntry) error
}

// StatsStore persists statistics snapshots.
type StatsStore interface {
	Load(ctx context.Context) (progress.Stats, error)
	Persist(ctx context.Context, stats progress.Stats) error
}

// Dictionary is a fallback pronunciation source for words outside the
// repository.
type Dictionary interface {
	Lookup(word string) (phonetic.Transcription, error)
}

// Pronunciation is the answer to an IPA lookup.
type Pronunciation struct {
	Word      string   `json:"word"`
	Syllables []string `json:"syllables"`
	IPA       string   `json:"ipa"`
	Source    string   `json:"source"`
}

// Detection is the result of analysing a word.
type Detection struct {
	Word      string   `json:"word"`
	Syllables []string `json:"syllables"`
	IPA       string   `json:"ipa"`
	Features  []string `json:"features"`
}

// AddWordRequest describes a word to add.
type AddWordRequest struct {
	Text      string
	Syllables []string
	FeatureID string
	Gloss     string
	IPA       string
	ClipID    string
}

// Answer is a guess submitted for a session.
type Answer struct {
	SessionID string
	Round     uint64 // 0 answers whatever word is current
	Guess     string
	RequestID string // optional; repeats replay the first result
}

// AnswerOutcome is a judged answer. Replayed is set when the result came
// from the request-id cache.
type AnswerOutcome struct {
	Result   quiz.Result
	Replayed bool
}

// Service implements the API dependencies for the quiz.
type Service struct {
	mu sync.RWMutex
	// addMu serialises AddWord so the word store and repository agree.
	addMu sync.Mutex

	// Core components
	repo      *repository.Words
	detector  *detect.Detector
	tracker   *progress.Tracker
	quiz      *quiz.Manager
	generator *sentences.Generator
	deduper   dedupe.Deduper[AnswerOutcome]
	queue     *queue.InMemoryQueue
	worker    *worker.InMemoryWorker

	// Collaborators
	wordStore  WordStore
	statsStore StatsStore
	dict       Dictionary

	// Configuration
	seedBuiltin    bool
	queueSize      int
	dedupeSize     int
	maxSuggestions int
	detectOpts     []detect.Option
	sentenceOpts   []sentences.Option
	repoOpts       []repository.Option

	// State
	started   bool
	startedAt time.Time
	cancel    context.CancelFunc
	runDone   chan struct{}
	seeded    int

	logger logger.Logger
}

// New constructs a Service. Components are usable immediately; Start loads
// persisted data and starts the statistics writer.
func New(opts ...Option) *Service {
	s := &Service{
		seedBuiltin:    true,
		queueSize:      defaultQueueSize,
		dedupeSize:     defaultDedupeSize,
		maxSuggestions: defaultMaxSuggestions,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = logger.Get().Named("service")
	}
	if s.wordStore == nil || s.statsStore == nil {
		mem := memory.New()
		if s.wordStore == nil {
			s.wordStore = mem
		}
		if s.statsStore == nil {
			s.statsStore = mem
		}
	}

	s.repo = repository.NewWords(s.repoOpts...)
	s.detector = detect.New(s.detectOpts...)
	s.generator = sentences.New(s.sentenceOpts...)
	s.deduper = dedupe.NewInMemoryDeduper[AnswerOutcome](dedupe.WithMaxSize(s.dedupeSize))
	s.queue = queue.NewInMemoryQueue(queue.WithCapacity(s.queueSize))
	s.tracker = progress.New(progress.WithOnChange(s.requestPersist))
	s.quiz = quiz.New(s.repo, s.tracker, quiz.WithLogger(s.logger.Named("quiz")))
	s.worker = worker.NewInMemoryWorker(s.queue, s.tracker, s.statsStore,
		worker.WithLogger(s.logger.Named("persist")))
	return s
}

func (s *Service) requestPersist() {
	s.queue.Enqueue(context.Background(), queue.Request{Reason: "stats changed"})
}

// Start loads words and statistics and starts the statistics writer.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}
	s.logger.Info(ctx, "starting quiz service...")

	words, err := s.wordStore.LoadAll(ctx)
	if err != nil {
		return fmt.Errorf("load words: %w", err)
	}
	for _, w := range words {
		if err := s.repo.Add(ctx, w); err != nil {
			s.logger.Warn(ctx, "skipping word", logger.String("text", w.Text), logger.Error(err))
		}
	}
	if s.repo.Count(ctx) == 0 && s.seedBuiltin {
		s.seeded = s.seed(ctx)
	}

	stats, err := s.statsStore.Load(ctx)
	if err != nil {
		return fmt.Errorf("load stats: %w", err)
	}
	s.tracker.Restore(stats)

	runCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	s.cancel = cancel
	s.runDone = make(chan struct{})
	go func() {
		defer close(s.runDone)
		s.worker.Run(runCtx)
	}()

	s.started = true
	s.startedAt = time.Now()
	s.logger.Info(ctx, "quiz service started",
		logger.Int("words", s.repo.Count(ctx)),
		logger.Int("seeded", s.seeded),
		logger.Int("rounds", stats.TotalRounds),
	)
	return nil
}

// seed fills the repository with catalog example words. The first feature
// listing a word wins.
func (s *Service) seed(ctx context.Context) int {
	n := 0
	for _, def := range catalog.All() {
		for _, ex := range def.Examples {
			t, err := phonetic.Parse(ex.Transcription)
			if err != nil {
				continue
			}
			entry, err := model.NewWordEntry(ex.Word, t, def.ID)
			if err != nil {
				continue
			}
			if err := s.repo.Add(ctx, entry); err == nil {
				n++
			}
		}
	}
	return n
}

// Stop flushes statistics and releases the stores.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), stopTimeout)
	defer cancel()
	s.logger.Info(ctx, "stopping quiz service...")

	if err := s.worker.Shutdown(ctx); err != nil {
		s.logger.Error(ctx, "final stats flush failed", logger.Error(err))
	}
	s.cancel()
	<-s.runDone
	_ = s.queue.Close()

	closed := map[any]bool{}
	for _, c := range []any{s.wordStore, s.statsStore} {
		if closer, ok := c.(io.Closer); ok && !closed[c] {
			closed[c] = true
			if err := closer.Close(); err != nil {
				s.logger.Warn(ctx, "closing store failed", logger.Error(err))
			}
		}
	}

	s.started = false
	s.logger.Info(ctx, "quiz service stopped")
}

func (s *Service) isStarted() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.started
}

// Features lists the catalog summaries.
func (s *Service) Features() []catalog.Summary { return catalog.List() }

// Guide returns every full feature definition.
func (s *Service) Guide() []catalog.FeatureDefinition { return catalog.All() }

// Feature returns one feature definition.
func (s *Service) Feature(id string) (catalog.FeatureDefinition, error) { return catalog.Get(id) }

// FeatureExamples returns a feature's example words.
func (s *Service) FeatureExamples(id string) ([]catalog.Example, error) {
	return catalog.Examples(id)
}

// FeatureIDs lists the valid guesses.
func (s *Service) FeatureIDs() []string { return catalog.IDs() }

// Detect analyses a word given its syllables.
func (s *Service) Detect(ctx context.Context, word string, syllables []string) (Detection, error) {
	t, err := phonetic.ParseSyllables(syllables)
	if err != nil {
		return Detection{}, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}
	set := s.detector.Detect(word, t)
	for _, id := range set {
		metrics.RecordDetection(id)
	}
	s.logger.Debug(ctx, "features detected",
		logger.String("word", word), logger.Int("count", len(set)))
	return Detection{
		Word:      word,
		Syllables: append([]string(nil), syllables...),
		IPA:       t.IPA(),
		Features:  set.Slice(),
	}, nil
}

// Words returns every quiz word.
func (s *Service) Words(ctx context.Context) []model.WordEntry { return s.repo.All(ctx) }

// Word looks a word up. On a miss the error wraps ErrWordNotFound and
// suggestions holds similar known words.
func (s *Service) Word(ctx context.Context, text string) (model.WordEntry, []string, error) {
	w, err := s.repo.FindByText(ctx, text)
	if errors.Is(err, repository.ErrNotFound) {
		return model.WordEntry{}, s.repo.Suggest(ctx, text, s.maxSuggestions),
			fmt.Errorf("%w: %w", ErrWordNotFound, err)
	}
	return w, nil, err
}

// AddWord validates, persists and adds a word. The gloss defaults to the
// syllables joined by spaces.
func (s *Service) AddWord(ctx context.Context, req AddWordRequest) (model.WordEntry, error) {
	t, err := phonetic.ParseSyllables(req.Syllables)
	if err != nil {
		return model.WordEntry{}, fmt.Errorf("%w: %w", model.ErrInvalidWord, err)
	}
	gloss := strings.TrimSpace(req.Gloss)
	if gloss == "" {
		gloss = strings.Join(req.Syllables, " ")
	}
	entry, err := model.NewWordEntry(req.Text, t, req.FeatureID,
		model.WithSyllables(req.Syllables),
		model.WithGloss(gloss),
		model.WithIPA(req.IPA),
		model.WithClipID(req.ClipID),
	)
	if err != nil {
		return model.WordEntry{}, err
	}
	s.addMu.Lock()
	defer s.addMu.Unlock()

	if _, err := s.repo.FindByText(ctx, entry.Text); err == nil {
		return model.WordEntry{}, fmt.Errorf("%w: %q", repository.ErrDuplicateWord, entry.Text)
	}

	err = s.wordStore.Save(ctx, entry)
	metrics.RecordWordStoreWrite(err)
	if err != nil {
		return model.WordEntry{}, fmt.Errorf("persist word: %w", err)
	}
	if err := s.repo.Add(ctx, entry); err != nil {
		return model.WordEntry{}, err
	}
	s.logger.Info(ctx, "word added",
		logger.String("text", entry.Text), logger.String("feature", entry.TargetFeature))
	return entry.Clone(), nil
}

// NewSession returns a fresh session id.
func (s *Service) NewSession() string { return uuid.NewString() }

// NextWord serves a word to a session.
func (s *Service) NextWord(ctx context.Context, sessionID string) (quiz.Round, error) {
	return s.quiz.NextWord(ctx, sessionID)
}

// CurrentWord returns the word awaiting a guess.
func (s *Service) CurrentWord(ctx context.Context, sessionID string) (quiz.Round, error) {
	return s.quiz.Current(ctx, sessionID)
}

// EndSession forgets a session.
func (s *Service) EndSession(ctx context.Context, sessionID string) bool {
	return s.quiz.End(ctx, sessionID)
}

// SubmitAnswer judges a guess. With a request id, a repeat of a completed
// request replays its result and one still in flight reports
// ErrDuplicateRequest.
func (s *Service) SubmitAnswer(ctx context.Context, a Answer) (AnswerOutcome, error) {
	key := ""
	if a.RequestID != "" {
		key = a.SessionID + "/" + a.RequestID
		prior, state := s.deduper.Claim(ctx, key)
		switch state {
		case dedupe.Done:
			metrics.RecordDuplicateAnswer()
			prior.Replayed = true
			return prior, nil
		case dedupe.Pending:
			metrics.RecordDuplicateAnswer()
			return AnswerOutcome{}, fmt.Errorf("%w: %q", ErrDuplicateRequest, a.RequestID)
		}
	}

	var (
		res quiz.Result
		err error
	)
	if a.Round == 0 {
		res, err = s.quiz.SubmitGuess(ctx, a.SessionID, a.Guess)
	} else {
		res, err = s.quiz.SubmitRoundGuess(ctx, a.SessionID, a.Round, a.Guess)
	}
	out := AnswerOutcome{Result: res}

	if key != "" {
		// A judged guess is final even when the session could not advance.
		if err != nil && !res.Judged() {
			s.deduper.Unrecord(ctx, key)
		} else {
			s.deduper.Complete(ctx, key, out)
		}
	}
	return out, err
}

// Stats returns the aggregate statistics.
func (s *Service) Stats() progress.Stats { return s.tracker.Stats() }

// ResetStats zeroes the statistics and persists the empty snapshot.
func (s *Service) ResetStats(ctx context.Context) error {
	s.tracker.Reset()
	if !s.isStarted() {
		return nil
	}
	return s.worker.Flush(ctx)
}

// IPA looks up a word's pronunciation, preferring the quiz words.
func (s *Service) IPA(ctx context.Context, word string) (Pronunciation, error) {
	if w, err := s.repo.FindByText(ctx, word); err == nil {
		return Pronunciation{
			Word:      word,
			Syllables: w.Syllables,
			IPA:       w.DisplayIPA(),
			Source:    SourceLocal,
		}, nil
	}
	if s.dict != nil {
		if t, err := s.dict.Lookup(word); err == nil {
			return Pronunciation{
				Word:      word,
				Syllables: []string{t.String()},
				IPA:       t.IPA(),
				Source:    SourceCMU,
			}, nil
		}
	}
	return Pronunciation{}, fmt.Errorf("%w: %q", ErrWordNotFound, word)
}

// Sentences returns example sentences for word.
func (s *Service) Sentences(word string, count int) []string {
	return s.generator.Generate(word, count)
}

// SentenceCount returns how many sentences a request for count yields.
func (s *Service) SentenceCount(count int) int { return s.generator.Clamp(count) }

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ctx := context.Background()
	stats := map[string]interface{}{
		"started":    s.started,
		"queueSize":  s.queueSize,
		"dedupeSize": s.dedupeSize,
	}
	if s.started {
		writes, failed := s.worker.Stats()
		stats["words"] = s.repo.Count(ctx)
		stats["seededWords"] = s.seeded
		stats["sessions"] = s.quiz.Sessions()
		stats["pendingWrites"] = s.queue.Len()
		stats["persistWrites"] = writes
		stats["persistFailures"] = failed
		stats["dedupeEntries"] = s.deduper.Size()
		stats["uptimeSeconds"] = int64(time.Since(s.startedAt).Seconds())

		metrics.UpdateRepositoryWords(s.repo.Count(ctx))
		metrics.UpdateActiveSessions(s.quiz.Sessions())
	}
	return stats
}
