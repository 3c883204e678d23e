// Package model contains domain records passed between layers.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/parvinm/screenwise/internal/domain/form"
	"github.com/parvinm/screenwise/internal/domain/scoring"
)

// Assessment is one scored submission flowing from the API through the
// queue into the history store. Value object; never mutated after build.
type Assessment struct {
	ID          string         `json:"id"`
	Values      form.Values    `json:"values"`
	Result      scoring.Result `json:"result"`
	SubmittedAt time.Time      `json:"submitted_at"`
}

// NewAssessment builds an assessment, generating an id when the caller
// did not supply one.
func NewAssessment(id string, v form.Values, res scoring.Result, at time.Time) Assessment {
	if id == "" {
		id = uuid.New().String()
	}
	if at.IsZero() {
		at = time.Now().UTC()
	}
	return Assessment{
		ID:          id,
		Values:      v,
		Result:      res,
		SubmittedAt: at,
	}
}
