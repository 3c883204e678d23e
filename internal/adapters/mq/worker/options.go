package worker

import "github.com/parvinm/screenwise/pkg/logger"

// Option applies a configuration option to the Worker.
type Option func(*Worker)

// WithName sets the worker name used for logging.
func WithName(name string) Option {
	return func(w *Worker) {
		if name != "" {
			w.name = name
		}
	}
}

// WithLogger sets a custom logger.
func WithLogger(l logger.Logger) Option {
	return func(w *Worker) {
		if l != nil {
			w.logger = l
		}
	}
}
