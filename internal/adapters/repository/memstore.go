package repository

import (
	"context"
	"sync"

	"github.com/parvinm/screenwise/internal/domain/model"
	"github.com/parvinm/screenwise/internal/domain/scoring"
	"github.com/parvinm/screenwise/pkg/metrics"
)

const defaultCapacity = 10_000

// MemStore implements Store with a bounded ring of recent assessments
// plus running aggregates that survive eviction.
type MemStore struct {
	mu       sync.RWMutex
	ring     []model.Assessment
	head     int // next slot to write
	filled   int
	capacity int
	closed   bool

	total      int
	harmCounts map[scoring.HarmLevel]int
	scoreSums  scoring.Scores
}

// NewMemStore creates an in-memory history store with options.
func NewMemStore(opts ...StoreOption) *MemStore {
	s := &MemStore{
		capacity: defaultCapacity,
	}

	for _, opt := range opts {
		opt(s)
	}

	s.ring = make([]model.Assessment, s.capacity)
	s.harmCounts = map[scoring.HarmLevel]int{
		scoring.HarmLow:    0,
		scoring.HarmMedium: 0,
		scoring.HarmHigh:   0,
	}

	metrics.UpdateHistorySize(0)

	return s
}

// Record appends an assessment, evicting the oldest when full.
func (s *MemStore) Record(_ context.Context, a model.Assessment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrClosed
	}

	s.ring[s.head] = a
	s.head = (s.head + 1) % s.capacity
	if s.filled < s.capacity {
		s.filled++
	}

	s.total++
	s.harmCounts[a.Result.HarmLevel]++
	s.scoreSums.Vocabulary += a.Result.Scores.Vocabulary
	s.scoreSums.MentalVerb += a.Result.Scores.MentalVerb
	s.scoreSums.Expressive += a.Result.Scores.Expressive
	s.scoreSums.VerbalInteraction += a.Result.Scores.VerbalInteraction
	s.scoreSums.SentenceComp += a.Result.Scores.SentenceComp
	s.scoreSums.SocialLang += a.Result.Scores.SocialLang

	metrics.RecordHistoryRecorded()
	metrics.UpdateHistorySize(s.filled)

	return nil
}

// Recent returns up to n assessments, newest first.
func (s *MemStore) Recent(_ context.Context, n int) ([]model.Assessment, error) {
	if n < 1 {
		return nil, ErrInvalidLimit
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, ErrClosed
	}

	if n > s.filled {
		n = s.filled
	}
	out := make([]model.Assessment, 0, n)
	for i := 1; i <= n; i++ {
		idx := (s.head - i + s.capacity) % s.capacity
		out = append(out, s.ring[idx])
	}
	return out, nil
}

// Count returns the number of retained assessments.
func (s *MemStore) Count(_ context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filled
}

// Aggregates returns running totals over everything recorded.
func (s *MemStore) Aggregates(_ context.Context) Aggregates {
	s.mu.RLock()
	defer s.mu.RUnlock()

	counts := make(map[scoring.HarmLevel]int, len(s.harmCounts))
	for level, c := range s.harmCounts {
		counts[level] = c
	}

	agg := Aggregates{
		Total:      s.total,
		HarmCounts: counts,
	}
	if s.total > 0 {
		n := float64(s.total)
		agg.MeanScores = scoring.Scores{
			Vocabulary:        s.scoreSums.Vocabulary / n,
			MentalVerb:        s.scoreSums.MentalVerb / n,
			Expressive:        s.scoreSums.Expressive / n,
			VerbalInteraction: s.scoreSums.VerbalInteraction / n,
			SentenceComp:      s.scoreSums.SentenceComp / n,
			SocialLang:        s.scoreSums.SocialLang / n,
		}
	}
	return agg
}

// Close marks the store closed; subsequent reads and writes fail.
func (s *MemStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}
