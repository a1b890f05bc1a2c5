package api

import (
	"net/http"

	"github.com/okian/accent/internal/domain/progress"
)

const topMissedCount = 10

// StatsProvider defines the interface for getting service statistics.
type StatsProvider interface {
	GetStats() map[string]interface{}
}

// StatsHandler handles quiz and service statistics requests.
type StatsHandler struct {
	deps Dependencies
}

// NewStatsHandler creates a new stats handler.
func NewStatsHandler(deps Dependencies) *StatsHandler {
	return &StatsHandler{deps: deps}
}

type statsResponse struct {
	Stats           progress.Stats   `json:"stats"`
	AccuracyPercent float64          `json:"accuracy_percent"`
	TopMissed       []progress.Count `json:"top_missed"`
}

// HandleStats handles GET /stats requests.
func (h *StatsHandler) HandleStats(w http.ResponseWriter, _ *http.Request) {
	stats := h.deps.Stats()
	writeJSON(w, http.StatusOK, statsResponse{
		Stats:           stats,
		AccuracyPercent: stats.Accuracy(),
		TopMissed:       stats.TopMissed(topMissedCount),
	})
}

// HandleReset handles POST /stats/reset requests.
func (h *StatsHandler) HandleReset(w http.ResponseWriter, r *http.Request) {
	if err := h.deps.ResetStats(r.Context()); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "success", "message": "Stats reset"})
}

// HandleServiceStats handles GET /stats/service requests.
func (h *StatsHandler) HandleServiceStats(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.deps.GetStats())
}
