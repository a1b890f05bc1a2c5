package api

import (
	"errors"
	"net/http"

	service "github.com/okian/accent/internal/app"
)

// WordsHandler serves the word set.
type WordsHandler struct {
	deps Dependencies
}

// NewWordsHandler creates a new words handler.
func NewWordsHandler(deps Dependencies) *WordsHandler {
	return &WordsHandler{deps: deps}
}

// HandleList handles GET /words requests.
func (h *WordsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	words := newWordViews(h.deps.Words(r.Context()))
	writeJSON(w, http.StatusOK, map[string]any{"count": len(words), "words": words})
}

// HandleGet handles GET /words/{text} requests. Misses carry suggestions.
func (h *WordsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	entry, suggestions, err := h.deps.Word(r.Context(), r.PathValue("text"))
	if errors.Is(err, service.ErrWordNotFound) {
		writeJSON(w, http.StatusNotFound, errorResponse{
			Code:        "word_not_found",
			Message:     err.Error(),
			Suggestions: suggestions,
		})
		return
	}
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newWordView(entry))
}

type addWordRequest struct {
	Text                  string   `json:"text"`
	Syllables             []string `json:"syllables"`
	FeatureID             string   `json:"feature_id"`
	OriginalPronunciation string   `json:"original_pronunciation"`
	IPA                   string   `json:"ipa"`
	ClipID                string   `json:"clip_id"`
}

// HandleAdd handles POST /words requests.
func (h *WordsHandler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	var req addWordRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeDomainError(w, err)
		return
	}
	entry, err := h.deps.AddWord(r.Context(), service.AddWordRequest{
		Text:      req.Text,
		Syllables: req.Syllables,
		FeatureID: req.FeatureID,
		Gloss:     req.OriginalPronunciation,
		IPA:       req.IPA,
		ClipID:    req.ClipID,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"status": "success", "word": newWordView(entry)})
}
