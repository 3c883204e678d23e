package samples

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/parvinm/screenwise/pkg/logger"
)

// File permission constants.
const (
	logFilePermission = 0600
)

// SetupLogging configures logging to both console and file.
// If logFile is empty, a timestamped filename is generated.
func SetupLogging(logFile string) error {
	if err := logger.Init(); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if logFile == "" {
		timestamp := time.Now().Format("20060102_150405")
		logFile = "samples_log_" + timestamp + ".log"
	}

	file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, logFilePermission)
	if err != nil {
		return fmt.Errorf("failed to create log file: %w", err)
	}

	multiWriter := io.MultiWriter(os.Stdout, file)
	log.SetOutput(multiWriter)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	logger.Get().Info(context.Background(), "logging to file", logger.String("logFile", logFile))
	return nil
}

// ShowHelp prints usage information for the sample-forms tool.
func ShowHelp() {
	os.Stdout.WriteString(`Screenwise Sample Forms Tool
============================

Generates varied screen-exposure forms, submits them to a running
Screenwise service, and verifies the returned assessments.

Usage:
  go run cmd/sample-forms/main.go [options]

Options:
  -url string
        Base URL of the service (default "http://localhost:9080")
  -forms int
        Number of forms to generate and submit (default 1000)
  -workers int
        Number of concurrent workers (default CPU cores * 2)
  -timeout duration
        HTTP request timeout (default 30s)
  -output string
        Output file for generated forms (default: generated_forms_TIMESTAMP.json)
  -log string
        Log file for run output (default: samples_log_TIMESTAMP.log)
  -verbose
        Enable verbose logging
  -help
        Show this help message

Examples:
  # Run with default settings
  go run cmd/sample-forms/main.go

  # Run with custom parameters
  go run cmd/sample-forms/main.go -forms 5000 -workers 16 -url http://localhost:8080
`)
}
