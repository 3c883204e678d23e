// Package app wires the scorer, dedupe, queue, workers, and history
// store into the service consumed by the HTTP API.
package app

import (
	"context"
	"runtime"
	"sync"
	"time"

	"github.com/parvinm/screenwise/internal/adapters/mq/queue"
	"github.com/parvinm/screenwise/internal/adapters/mq/worker"
	"github.com/parvinm/screenwise/internal/adapters/repository"
	"github.com/parvinm/screenwise/internal/domain/dedupe"
	"github.com/parvinm/screenwise/internal/domain/form"
	"github.com/parvinm/screenwise/internal/domain/model"
	"github.com/parvinm/screenwise/internal/domain/scoring"
	"github.com/parvinm/screenwise/pkg/logger"
	"github.com/parvinm/screenwise/pkg/metrics"
)

// Defaults applied when options leave a knob unset.
const (
	defaultQueueSize   = 10_000
	defaultDedupeSize  = 50_000
	defaultHistorySize = 10_000
)

// Service implements the API dependencies for the assessment system.
type Service struct {
	mu sync.RWMutex

	scorer  scoring.Scorer
	deduper dedupe.Deduper
	queue   queue.Queue
	history *repository.MemStore
	pool    *worker.Pool

	workerCount int
	queueSize   int
	dedupeSize  int
	historySize int
	suggestions map[scoring.HarmLevel]string

	started bool

	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithWorkerCount sets the number of recording workers.
func WithWorkerCount(count int) Option {
	return func(s *Service) {
		if count > 0 {
			s.workerCount = count
		}
	}
}

// WithQueueSize bounds the recording queue.
func WithQueueSize(size int) Option {
	return func(s *Service) {
		if size > 0 {
			s.queueSize = size
		}
	}
}

// WithDedupeSize bounds the submission-id dedupe cache.
func WithDedupeSize(size int) Option {
	return func(s *Service) {
		if size > 0 {
			s.dedupeSize = size
		}
	}
}

// WithHistorySize bounds the retained assessment history.
func WithHistorySize(size int) Option {
	return func(s *Service) {
		if size > 0 {
			s.historySize = size
		}
	}
}

// WithSuggestions overrides recommendation texts per harm level.
func WithSuggestions(texts map[scoring.HarmLevel]string) Option {
	return func(s *Service) {
		s.suggestions = texts
	}
}

// WithLogger sets a custom logger.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// New constructs a Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		workerCount: runtime.NumCPU(),
		queueSize:   defaultQueueSize,
		dedupeSize:  defaultDedupeSize,
		historySize: defaultHistorySize,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start initializes the components and launches the worker pool.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	if s.logger == nil {
		s.logger = logger.Get().Named("app")
	}

	s.scorer = scoring.NewHeuristicScorer(scoring.WithSuggestions(s.suggestions))
	s.deduper = dedupe.NewInMemoryDeduper(dedupe.WithMaxSize(s.dedupeSize))
	s.queue = queue.NewInMemoryQueue(queue.WithCapacity(s.queueSize))
	s.history = repository.NewMemStore(repository.WithCapacity(s.historySize))
	s.pool = worker.NewPool(s.workerCount, s.queue, s.history)
	s.pool.Start(ctx)

	s.started = true
	s.logger.Info(ctx, "assessment service started",
		logger.Int("workers", s.workerCount),
		logger.Int("queueSize", s.queueSize),
		logger.Int("historySize", s.historySize),
	)

	return nil
}

// Stop gracefully shuts down the service.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}

	ctx := context.Background()
	s.logger.Info(ctx, "stopping assessment service")

	if s.queue != nil {
		_ = s.queue.Close()
	}
	if s.pool != nil {
		s.pool.Stop()
	}
	if s.history != nil {
		_ = s.history.Close()
	}

	s.started = false
	s.logger.Info(ctx, "assessment service stopped")
}

// Assess scores a validated form synchronously and queues the scored
// assessment for history recording. The returned flag reports whether
// the submission id had been seen before; duplicates are scored again
// (the scorer is pure) but recorded only once.
func (s *Service) Assess(ctx context.Context, submissionID string, v form.Values) (scoring.Result, bool, error) {
	start := time.Now()
	res, err := s.scorer.Score(ctx, v)
	metrics.RecordScoringLatency(float64(time.Since(start).Milliseconds()))
	if err != nil {
		metrics.RecordErrorByComponent("scorer", "score_failed")
		return scoring.Result{}, false, err
	}

	metrics.RecordAssessmentScored()
	metrics.RecordHarmLevel(string(res.HarmLevel))

	a := model.NewAssessment(submissionID, v, res, time.Now().UTC())

	if s.deduper.SeenAndRecord(ctx, a.ID) {
		metrics.RecordDuplicateSubmission()
		s.logger.Debug(ctx, "duplicate submission, skipping history record",
			logger.String("submissionID", a.ID),
		)
		return res, true, nil
	}

	if ok := s.queue.Enqueue(ctx, a); !ok {
		// Recording is best effort; scoring already succeeded. Unrecord
		// so a retry of the same submission can land in history.
		s.deduper.Unrecord(ctx, a.ID)
		s.logger.Warn(ctx, "history queue rejected assessment",
			logger.String("submissionID", a.ID),
		)
	}

	return res, false, nil
}

// Recent returns up to n recorded assessments, newest first.
func (s *Service) Recent(ctx context.Context, n int) ([]model.Assessment, error) {
	return s.history.Recent(ctx, n)
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := map[string]any{
		"started":     s.started,
		"workerCount": s.workerCount,
		"queueSize":   s.queueSize,
		"historySize": s.historySize,
	}

	if s.started {
		ctx := context.Background()
		agg := s.history.Aggregates(ctx)

		stats["queueLength"] = s.queue.Len(ctx)
		stats["historyCount"] = s.history.Count(ctx)
		stats["totalAssessed"] = agg.Total
		stats["harmCounts"] = agg.HarmCounts
		stats["meanScores"] = agg.MeanScores
		stats["dedupeTracked"] = s.deduper.Size()
	}

	return stats
}
