package api

import (
	"net/http"
)

// FeaturesHandler serves the feature catalog and detection.
type FeaturesHandler struct {
	deps Dependencies
}

// NewFeaturesHandler creates a new features handler.
func NewFeaturesHandler(deps Dependencies) *FeaturesHandler {
	return &FeaturesHandler{deps: deps}
}

// HandleList handles GET /features requests.
func (h *FeaturesHandler) HandleList(w http.ResponseWriter, _ *http.Request) {
	list := h.deps.Features()
	writeJSON(w, http.StatusOK, map[string]any{"count": len(list), "features": list})
}

// HandleGuide handles GET /features/guide requests.
func (h *FeaturesHandler) HandleGuide(w http.ResponseWriter, _ *http.Request) {
	guide := h.deps.Guide()
	writeJSON(w, http.StatusOK, map[string]any{"count": len(guide), "features": guide})
}

// HandleGet handles GET /features/{id} requests.
func (h *FeaturesHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	def, err := h.deps.Feature(r.PathValue("id"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, def)
}

// HandleExamples handles GET /features/{id}/examples requests.
func (h *FeaturesHandler) HandleExamples(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	examples, err := h.deps.FeatureExamples(id)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"feature_id": id, "count": len(examples), "examples": examples})
}

type detectRequest struct {
	Word      string   `json:"word"`
	Syllables []string `json:"syllables"`
}

type detectResponse struct {
	Word      string   `json:"word"`
	Syllables []string `json:"syllables"`
	IPA       string   `json:"ipa"`
	Features  []string `json:"features"`
	Count     int      `json:"count"`
}

// HandleDetect handles POST /features/detect requests.
func (h *FeaturesHandler) HandleDetect(w http.ResponseWriter, r *http.Request) {
	var req detectRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeDomainError(w, err)
		return
	}
	d, err := h.deps.Detect(r.Context(), req.Word, req.Syllables)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, detectResponse{
		Word:      d.Word,
		Syllables: d.Syllables,
		IPA:       d.IPA,
		Features:  d.Features,
		Count:     len(d.Features),
	})
}
