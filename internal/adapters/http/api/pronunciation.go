package api

import (
	"fmt"
	"net/http"
	"strconv"
)

// PronunciationHandler serves IPA lookups and example sentences.
type PronunciationHandler struct {
	deps Dependencies
}

// NewPronunciationHandler creates a new pronunciation handler.
func NewPronunciationHandler(deps Dependencies) *PronunciationHandler {
	return &PronunciationHandler{deps: deps}
}

// HandleIPA handles GET /pronunciation/ipa/{word} requests.
func (h *PronunciationHandler) HandleIPA(w http.ResponseWriter, r *http.Request) {
	p, err := h.deps.IPA(r.Context(), r.PathValue("word"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// HandleSentences handles GET /pronunciation/sentences/{word}?count=N.
func (h *PronunciationHandler) HandleSentences(w http.ResponseWriter, r *http.Request) {
	word := r.PathValue("word")
	count := 0
	if raw := r.URL.Query().Get("count"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeDomainError(w, fmt.Errorf("%w: count %q is not a number", ErrBadRequest, raw))
			return
		}
		count = n
	}
	sentences := h.deps.Sentences(word, count)
	if sentences == nil {
		sentences = []string{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"word": word, "count": len(sentences), "sentences": sentences})
}
