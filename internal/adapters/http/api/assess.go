package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/parvinm/screenwise/internal/domain/form"
	"github.com/parvinm/screenwise/pkg/logger"
	"github.com/parvinm/screenwise/pkg/metrics"
)

// AssessHandler scores submitted screen-exposure forms.
type AssessHandler struct {
	deps Dependencies
	log  logger.Logger
}

// NewAssessHandler creates the handler for POST /assess.
func NewAssessHandler(deps Dependencies) *AssessHandler {
	return &AssessHandler{
		deps: deps,
		log:  logger.Named("api.assess"),
	}
}

// HandleAssess validates a form submission, scores it, and returns the
// six sub-scores with the derived harm level and recommendation text.
func (h *AssessHandler) HandleAssess(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", NewKind("assess", ErrBadRequest))
		return
	}

	var req assessRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		metrics.RecordErrorByComponent("api", "decode_failed")
		writeError(w, http.StatusBadRequest, "invalid_json", WrapKind("assess", ErrBadRequest, err))
		return
	}

	if !req.HasInput() {
		writeError(w, http.StatusBadRequest, "empty_form", NewKind("assess", ErrEmptyForm))
		return
	}

	values, err := req.Validate()
	if err != nil {
		writeError(w, http.StatusBadRequest, validationCode(err), WrapKind("assess", ErrBadRequest, err))
		return
	}

	res, duplicate, err := h.deps.Assess(r.Context(), req.SubmissionID, values)
	if err != nil {
		h.log.Error(r.Context(), "scoring failed", logger.Error(err))
		writeError(w, http.StatusInternalServerError, "scoring_failed", Wrap("assess", err))
		return
	}

	writeJSON(w, http.StatusOK, assessResponse{
		SubmissionID: req.SubmissionID,
		Duplicate:    duplicate,
		Scores:       res.Scores,
		Average:      res.Average,
		HarmLevel:    string(res.HarmLevel),
		Suggestions:  res.Suggestions,
	})
}

// validationCode maps a validation failure onto a stable error code.
func validationCode(err error) string {
	switch {
	case errors.Is(err, form.ErrMissingField):
		return "missing_field"
	case errors.Is(err, form.ErrInvalidEnum):
		return "invalid_enum"
	case errors.Is(err, form.ErrOutOfRange):
		return "out_of_range"
	default:
		return "invalid_form"
	}
}
