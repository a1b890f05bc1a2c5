// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/okian/accent/internal/adapters/repository"
	service "github.com/okian/accent/internal/app"
	"github.com/okian/accent/internal/config"
	"github.com/okian/accent/internal/domain/catalog"
	"github.com/okian/accent/internal/domain/model"
	"github.com/okian/accent/internal/domain/progress"
	"github.com/okian/accent/internal/domain/quiz"
)

const maxBodyBytes = 1 << 20

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	StatsProvider

	Features() []catalog.Summary
	Guide() []catalog.FeatureDefinition
	Feature(id string) (catalog.FeatureDefinition, error)
	FeatureExamples(id string) ([]catalog.Example, error)
	Detect(ctx context.Context, word string, syllables []string) (service.Detection, error)

	Words(ctx context.Context) []model.WordEntry
	Word(ctx context.Context, text string) (model.WordEntry, []string, error)
	AddWord(ctx context.Context, req service.AddWordRequest) (model.WordEntry, error)

	NewSession() string
	NextWord(ctx context.Context, sessionID string) (quiz.Round, error)
	SubmitAnswer(ctx context.Context, a service.Answer) (service.AnswerOutcome, error)

	Stats() progress.Stats
	ResetStats(ctx context.Context) error

	IPA(ctx context.Context, word string) (service.Pronunciation, error)
	Sentences(word string, count int) []string
}

// AppInfo is what GET /config reports.
type AppInfo struct {
	AppName string            `json:"app_name"`
	Version string            `json:"version"`
	Quiz    config.QuizConfig `json:"quiz"`
}

// Server wires HTTP routes for the quiz API.
type Server struct {
	healthHandler        *HealthHandler
	statsHandler         *StatsHandler
	featuresHandler      *FeaturesHandler
	wordsHandler         *WordsHandler
	quizHandler          *QuizHandler
	pronunciationHandler *PronunciationHandler
	info                 AppInfo
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, info AppInfo) *Server {
	return &Server{
		healthHandler:        NewHealthHandler(),
		statsHandler:         NewStatsHandler(deps),
		featuresHandler:      NewFeaturesHandler(deps),
		wordsHandler:         NewWordsHandler(deps),
		quizHandler:          NewQuizHandler(deps),
		pronunciationHandler: NewPronunciationHandler(deps),
		info:                 info,
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(_ context.Context, mux *http.ServeMux) {
	if mux == nil {
		panic("mux is nil")
	}
	route := func(pattern, endpoint string, h http.HandlerFunc) {
		mux.HandleFunc(pattern, MetricsMiddleware(h, endpoint))
	}

	route("GET /healthz", "healthz", s.healthHandler.HandleHealth)
	mux.Handle("GET /metrics", s.healthHandler.MetricsHandler())
	route("GET /config", "config", s.handleConfig)

	route("GET /features", "features", s.featuresHandler.HandleList)
	route("GET /features/guide", "features_guide", s.featuresHandler.HandleGuide)
	route("POST /features/detect", "features_detect", s.featuresHandler.HandleDetect)
	route("GET /features/{id}", "feature", s.featuresHandler.HandleGet)
	route("GET /features/{id}/examples", "feature_examples", s.featuresHandler.HandleExamples)

	route("GET /words", "words", s.wordsHandler.HandleList)
	route("POST /words", "words_add", s.wordsHandler.HandleAdd)
	route("GET /words/{text}", "word", s.wordsHandler.HandleGet)

	route("POST /quiz/sessions", "quiz_sessions", s.quizHandler.HandleNewSession)
	route("POST /quiz/next", "quiz_next", s.quizHandler.HandleNext)
	route("POST /quiz/answer", "quiz_answer", s.quizHandler.HandleAnswer)

	route("GET /stats", "stats", s.statsHandler.HandleStats)
	route("POST /stats/reset", "stats_reset", s.statsHandler.HandleReset)
	route("GET /stats/service", "stats_service", s.statsHandler.HandleServiceStats)

	route("GET /pronunciation/ipa/{word}", "pronunciation_ipa", s.pronunciationHandler.HandleIPA)
	route("GET /pronunciation/sentences/{word}", "pronunciation_sentences", s.pronunciationHandler.HandleSentences)
}

func (s *Server) handleConfig(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.info)
}

type errorResponse struct {
	Code        string   `json:"code"`
	Message     string   `json:"message"`
	Suggestions []string `json:"suggestions,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// decodeJSON reads a single JSON object into v. An empty body leaves v
// untouched.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		var tooBig *http.MaxBytesError
		switch {
		case errors.Is(err, io.EOF):
			return nil
		case errors.As(err, &tooBig):
			return ErrBodyTooBig
		default:
			return fmt.Errorf("%w: %w", ErrBadRequest, err)
		}
	}
	return nil
}

// writeDomainError maps service and domain errors onto HTTP statuses.
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrBodyTooBig):
		writeError(w, http.StatusRequestEntityTooLarge, "body_too_large", err)
	case errors.Is(err, ErrBadRequest), errors.Is(err, service.ErrInvalidRequest):
		writeError(w, http.StatusBadRequest, "bad_request", err)
	case errors.Is(err, model.ErrInvalidWord):
		writeError(w, http.StatusBadRequest, "invalid_word", err)
	case errors.Is(err, catalog.ErrUnknownFeature):
		writeError(w, http.StatusNotFound, "unknown_feature", err)
	case errors.Is(err, service.ErrWordNotFound):
		writeError(w, http.StatusNotFound, "word_not_found", err)
	case errors.Is(err, repository.ErrEmptyRepository):
		writeError(w, http.StatusNotFound, "no_words", err)
	case errors.Is(err, repository.ErrDuplicateWord):
		writeError(w, http.StatusConflict, "duplicate_word", err)
	case errors.Is(err, quiz.ErrNoActiveWord):
		writeError(w, http.StatusConflict, "no_active_word", err)
	case errors.Is(err, service.ErrDuplicateRequest):
		writeError(w, http.StatusConflict, "duplicate_request", err)
	default:
		writeError(w, http.StatusInternalServerError, "internal", err)
	}
}
