package api

import (
	"net/http"
	"strconv"

	"github.com/parvinm/screenwise/internal/domain/model"
	"github.com/parvinm/screenwise/pkg/logger"
)

const defaultHistoryLimit = 20

// HistoryHandler serves recorded assessments, newest first.
type HistoryHandler struct {
	deps     Dependencies
	maxLimit int
	log      logger.Logger
}

// NewHistoryHandler creates the handler for GET /history.
func NewHistoryHandler(deps Dependencies, maxLimit int) *HistoryHandler {
	if maxLimit <= 0 {
		maxLimit = defaultHistoryLimit
	}
	return &HistoryHandler{
		deps:     deps,
		maxLimit: maxLimit,
		log:      logger.Named("api.history"),
	}
}

type historyResponse struct {
	Assessments []model.Assessment `json:"assessments"`
	Count       int                `json:"count"`
}

// HandleGetHistory returns up to ?limit recent assessments, capped at
// the configured maximum.
func (h *HistoryHandler) HandleGetHistory(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", NewKind("history", ErrBadRequest))
		return
	}

	limit := defaultHistoryLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			writeError(w, http.StatusBadRequest, "invalid_limit", NewKind("history", ErrBadRequest))
			return
		}
		limit = n
	}
	if limit > h.maxLimit {
		limit = h.maxLimit
	}

	assessments, err := h.deps.Recent(r.Context(), limit)
	if err != nil {
		h.log.Error(r.Context(), "history read failed", logger.Error(err))
		writeError(w, http.StatusInternalServerError, "history_failed", Wrap("history", err))
		return
	}

	if assessments == nil {
		assessments = []model.Assessment{}
	}

	writeJSON(w, http.StatusOK, historyResponse{
		Assessments: assessments,
		Count:       len(assessments),
	})
}
