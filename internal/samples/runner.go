package samples

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/parvinm/screenwise/pkg/logger"
)

// File permission constants.
const (
	directoryPermission = 0750
	outputPermission    = 0600
)

// Run executes the complete sample-form exercise against a running service.
func Run(ctx context.Context, config *Config) error {
	stats := &Stats{StartTime: time.Now()}

	logger.Get().Info(ctx, "starting sample-form run",
		logger.String("baseURL", config.BaseURL),
		logger.Int("forms", config.NumForms),
		logger.Int("workers", config.Workers),
		logger.String("timeout", config.Timeout.String()))

	if err := checkServiceHealth(ctx, config); err != nil {
		return fmt.Errorf("service health check failed: %w", err)
	}

	forms, err := generateForms(ctx, config, stats)
	if err != nil {
		return fmt.Errorf("form generation failed: %w", err)
	}

	results, err := submitForms(ctx, config, forms, stats)
	if err != nil {
		return fmt.Errorf("form submission failed: %w", err)
	}

	if err := verifyResults(ctx, results); err != nil {
		return fmt.Errorf("result verification failed: %w", err)
	}

	// Give the recording pipeline a moment before reading history.
	logger.Get().Info(ctx, "waiting for history recording")
	time.Sleep(processingDelay)

	count, err := fetchHistoryCount(ctx, config)
	if err != nil {
		return fmt.Errorf("history retrieval failed: %w", err)
	}
	stats.HistoryCount = count

	svcStats, err := fetchStats(ctx, config)
	if err != nil {
		logger.Get().Warn(ctx, "stats retrieval failed", logger.Error(err))
	} else {
		logger.Get().Info(ctx, "service statistics",
			logger.Any("totalAssessed", svcStats["totalAssessed"]),
			logger.Any("harmCounts", svcStats["harmCounts"]))
	}

	if err := saveFormsToFile(ctx, config, forms); err != nil {
		logger.Get().Warn(ctx, "failed to save forms to file", logger.Error(err))
	}

	stats.EndTime = time.Now()
	stats.Duration = stats.EndTime.Sub(stats.StartTime)
	displayFinalStats(stats)

	logger.Get().Info(ctx, "sample-form run completed successfully")
	return nil
}

// checkServiceHealth verifies the service is running.
func checkServiceHealth(ctx context.Context, config *Config) error {
	logger.Get().Info(ctx, "checking service health")

	client := newHTTPClient(config.Timeout)
	resp, err := client.Get(ctx, config.BaseURL+"/healthz")
	if err != nil {
		return fmt.Errorf("failed to connect to service: %w", err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			logger.Get().Error(context.Background(), "failed to close response body", logger.Error(cerr))
		}
	}()

	if resp.StatusCode != StatusOK {
		return fmt.Errorf("service health check failed with status: %d", resp.StatusCode)
	}

	logger.Get().Info(ctx, "service is healthy")
	return nil
}

// saveFormsToFile writes the generated forms to a JSON file.
func saveFormsToFile(ctx context.Context, config *Config, forms []Submission) error {
	if len(forms) == 0 {
		return fmt.Errorf("no forms to save")
	}

	filename := config.OutputFile
	if filename == "" {
		timestamp := time.Now().Format("20060102_150405")
		filename = "generated_forms_" + timestamp + ".json"
	}

	if dir := filepath.Dir(filename); dir != "." {
		if err := os.MkdirAll(dir, directoryPermission); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	data, err := json.MarshalIndent(forms, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal forms: %w", err)
	}
	if err := os.WriteFile(filename, data, outputPermission); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	logger.Get().Info(ctx, "forms saved to file", logger.String("filename", filename))
	return nil
}

// displayFinalStats prints the final run statistics.
func displayFinalStats(stats *Stats) {
	var successRate, formsPerSecond float64

	if stats.FormsSubmitted > 0 {
		successRate = float64(stats.FormsSuccessful+stats.FormsDuplicate) /
			float64(stats.FormsSubmitted) * PercentageMultiplier
	}
	if stats.Duration > 0 {
		formsPerSecond = float64(stats.FormsSubmitted) / stats.Duration.Seconds()
	}

	logger.Get().Info(context.Background(), "final statistics",
		logger.Int("formsGenerated", stats.FormsGenerated),
		logger.Int("formsSubmitted", stats.FormsSubmitted),
		logger.Int("formsSuccessful", stats.FormsSuccessful),
		logger.Int("formsDuplicate", stats.FormsDuplicate),
		logger.Int("formsFailed", stats.FormsFailed),
		logger.Int("historyCount", stats.HistoryCount),
		logger.String("duration", stats.Duration.String()),
		logger.Float64("successRate", successRate),
		logger.Float64("formsPerSecond", formsPerSecond))
}
