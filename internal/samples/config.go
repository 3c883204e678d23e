// Package samples drives a running service with generated screen-exposure
// forms and verifies the responses.
package samples

import "time"

// Config holds configuration for the sample-form run.
type Config struct {
	BaseURL    string        // Base URL of the service
	NumForms   int           // Number of forms to generate
	Workers    int           // Number of concurrent workers
	Timeout    time.Duration // HTTP request timeout
	OutputFile string        // Output file for generated forms
	LogFile    string        // Log file for run output
	Verbose    bool          // Enable verbose logging
}

// Submission is the flat JSON body POSTed to /assess.
type Submission struct {
	SubmissionID         string  `json:"submission_id"`
	ContentType          string  `json:"content_type"`
	Duration             float64 `json:"duration"`
	Frequency            float64 `json:"frequency"`
	AgeMonths            int     `json:"age_months"`
	ParentalInvolvement  string  `json:"parental_involvement"`
	SimultaneousUse      bool    `json:"simultaneous_use"`
	BackgroundFreq       float64 `json:"background_freq"`
	MaternalScreenTime   float64 `json:"maternal_screen_time"`
	MaternalMentalHealth bool    `json:"maternal_mental_health"`
}

// AssessResult mirrors the /assess response body.
type AssessResult struct {
	SubmissionID string             `json:"submission_id"`
	Duplicate    bool               `json:"duplicate"`
	Scores       map[string]float64 `json:"scores"`
	Average      float64            `json:"average"`
	HarmLevel    string             `json:"harm_level"`
	Suggestions  string             `json:"suggestions"`
}

// HistoryResult mirrors the /history response body.
type HistoryResult struct {
	Count int `json:"count"`
}

// Stats holds run statistics.
type Stats struct {
	FormsGenerated  int
	FormsSubmitted  int
	FormsSuccessful int
	FormsDuplicate  int
	FormsFailed     int
	HistoryCount    int
	StartTime       time.Time
	EndTime         time.Time
	Duration        time.Duration
}
