package main

import (
	"context"
	"flag"
	"os"
	"runtime"
	"time"

	"github.com/parvinm/screenwise/internal/samples"
)

// Default configuration constants.
const (
	defaultNumForms   = 1000
	defaultWorkers    = 2 // multiplier for runtime.NumCPU()
	defaultTimeout    = 30 * time.Second
	defaultRunTimeout = 10 * time.Minute
)

func main() {
	var (
		baseURL    = flag.String("url", "http://localhost:9080", "Base URL of the service")
		numForms   = flag.Int("forms", defaultNumForms, "Number of forms to generate and submit")
		workers    = flag.Int("workers", runtime.NumCPU()*defaultWorkers, "Number of concurrent workers")
		timeout    = flag.Duration("timeout", defaultTimeout, "HTTP request timeout")
		outputFile = flag.String("output", "", "Output file for generated forms (default: generated_forms_TIMESTAMP.json)")
		logFile    = flag.String("log", "", "Log file for run output (default: samples_log_TIMESTAMP.log)")
		verbose    = flag.Bool("verbose", false, "Enable verbose logging")
		help       = flag.Bool("help", false, "Show help")
	)
	flag.Parse()

	if *help {
		samples.ShowHelp()
		return
	}

	if err := samples.SetupLogging(*logFile); err != nil {
		os.Stderr.WriteString("Failed to setup logging: " + err.Error() + "\n")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultRunTimeout)
	defer cancel()

	config := &samples.Config{
		BaseURL:    *baseURL,
		NumForms:   *numForms,
		Workers:    *workers,
		Timeout:    *timeout,
		OutputFile: *outputFile,
		LogFile:    *logFile,
		Verbose:    *verbose,
	}

	if err := samples.Run(ctx, config); err != nil {
		os.Stderr.WriteString("Run failed: " + err.Error() + "\n")
		os.Exit(1)
	}
}
