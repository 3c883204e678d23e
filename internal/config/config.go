// Package config defines service configuration structures and loading hooks.
package config

import "runtime"

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":9080".
	Addr string `koanf:"addr"`

	// QueueSize bounds the in-memory history recording queue.
	QueueSize int `koanf:"queue_size"`

	// WorkerCount sets the number of history recording workers.
	WorkerCount int `koanf:"worker_count"`

	// DedupeSize sets the size of the submission-id deduplication cache.
	DedupeSize int `koanf:"dedupe_size"`

	// HistorySize bounds the retained assessment history.
	HistorySize int `koanf:"history_size"`

	// MaxHistoryLimit caps GET /history?limit.
	MaxHistoryLimit int `koanf:"max_history_limit"`

	// Suggestions overrides recommendation texts per harm level
	// (keys: Low, Medium, High). Unset levels keep the defaults.
	Suggestions map[string]string `koanf:"suggestions"`
}

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		LogLevel:        "info",
		Addr:            ":9080",
		QueueSize:       10_000,
		WorkerCount:     runtime.NumCPU(),
		DedupeSize:      50_000,
		HistorySize:     10_000,
		MaxHistoryLimit: 100,
	}
}
