package api

import "net/http"

// StatsProvider exposes operational statistics for the /stats endpoint.
type StatsProvider interface {
	GetStats() map[string]any
}

// StatsHandler serves service statistics.
type StatsHandler struct {
	provider StatsProvider
}

// NewStatsHandler creates the handler for GET /stats.
func NewStatsHandler(provider StatsProvider) *StatsHandler {
	return &StatsHandler{provider: provider}
}

// HandleStats returns aggregate counters and component sizes.
func (h *StatsHandler) HandleStats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", NewKind("stats", ErrBadRequest))
		return
	}

	writeJSON(w, http.StatusOK, h.provider.GetStats())
}
