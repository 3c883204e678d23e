// Package repository defines the assessment history store and errors.
package repository

import (
	"context"

	"github.com/parvinm/screenwise/internal/domain/model"
	"github.com/parvinm/screenwise/internal/domain/scoring"
)

// Aggregates summarizes everything ever recorded, independent of how
// many assessments the bounded history still retains.
type Aggregates struct {
	Total      int                       `json:"total"`
	HarmCounts map[scoring.HarmLevel]int `json:"harm_counts"`
	MeanScores scoring.Scores            `json:"mean_scores"`
}

// Store provides read/write access to assessment history.
type Store interface {
	// Record appends an assessment to history.
	Record(ctx context.Context, a model.Assessment) error

	// Recent returns up to n assessments, newest first.
	Recent(ctx context.Context, n int) ([]model.Assessment, error)

	// Count returns the number of assessments currently retained.
	Count(ctx context.Context) int

	// Aggregates returns running totals over everything recorded.
	Aggregates(ctx context.Context) Aggregates
}
