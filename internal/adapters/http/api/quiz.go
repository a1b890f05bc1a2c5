package api

import (
	"net/http"
	"strings"

	service "github.com/okian/accent/internal/app"
)

const defaultSessionID = "default"

// QuizHandler serves quiz rounds.
type QuizHandler struct {
	deps Dependencies
}

// NewQuizHandler creates a new quiz handler.
func NewQuizHandler(deps Dependencies) *QuizHandler {
	return &QuizHandler{deps: deps}
}

func sessionOrDefault(id string) string {
	if id = strings.TrimSpace(id); id == "" {
		return defaultSessionID
	}
	return id
}

// HandleNewSession handles POST /quiz/sessions requests.
func (h *QuizHandler) HandleNewSession(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusCreated, map[string]string{"session_id": h.deps.NewSession()})
}

type nextRequest struct {
	SessionID string `json:"session_id"`
}

// HandleNext handles POST /quiz/next requests.
func (h *QuizHandler) HandleNext(w http.ResponseWriter, r *http.Request) {
	var req nextRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeDomainError(w, err)
		return
	}
	round, err := h.deps.NextWord(r.Context(), sessionOrDefault(req.SessionID))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newRoundView(round))
}

type answerRequest struct {
	SessionID string `json:"session_id"`
	Feature   string `json:"feature"`
	Round     uint64 `json:"round,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

type answerResponse struct {
	Correct        bool       `json:"correct"`
	Outcome        string     `json:"outcome"`
	CorrectFeature string     `json:"correct_feature"`
	GuessedFeature string     `json:"guessed_feature"`
	Feedback       string     `json:"feedback"`
	Word           wordView   `json:"word"`
	Attempt        int        `json:"attempt"`
	RoundAttempts  int        `json:"round_attempts"`
	Replayed       bool       `json:"replayed"`
	Next           *roundView `json:"next,omitempty"`
}

// HandleAnswer handles POST /quiz/answer requests. A guess that was judged
// but could not be followed by a new word still returns 200 without next.
func (h *QuizHandler) HandleAnswer(w http.ResponseWriter, r *http.Request) {
	var req answerRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeDomainError(w, err)
		return
	}
	out, err := h.deps.SubmitAnswer(r.Context(), service.Answer{
		SessionID: sessionOrDefault(req.SessionID),
		Round:     req.Round,
		Guess:     req.Feature,
		RequestID: strings.TrimSpace(req.RequestID),
	})
	res := out.Result
	if err != nil && !res.Judged() {
		writeDomainError(w, err)
		return
	}

	resp := answerResponse{
		Correct:        res.Correct,
		Outcome:        res.Kind.String(),
		CorrectFeature: res.CorrectFeature,
		GuessedFeature: res.Guess,
		Feedback:       res.Feedback(),
		Word:           newWordView(res.Word),
		Attempt:        res.Attempt,
		RoundAttempts:  res.RoundAttempts,
		Replayed:       out.Replayed,
	}
	if res.Next != nil {
		next := newRoundView(*res.Next)
		resp.Next = &next
	}
	writeJSON(w, http.StatusOK, resp)
}
