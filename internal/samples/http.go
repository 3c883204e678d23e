package samples

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/parvinm/screenwise/pkg/logger"
)

// HTTPClient wraps http.Client with a timeout.
type HTTPClient struct {
	client *http.Client
}

func newHTTPClient(timeout time.Duration) *HTTPClient {
	return &HTTPClient{client: &http.Client{Timeout: timeout}}
}

// Get performs a GET request.
func (c *HTTPClient) Get(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	return c.client.Do(req)
}

// Post performs a POST request with a JSON body.
func (c *HTTPClient) Post(ctx context.Context, url string, body any) (*http.Response, error) {
	jsonData, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.client.Do(req)
}

func readResponseBody(resp *http.Response) ([]byte, error) {
	defer resp.Body.Close()
	return io.ReadAll(resp.Body)
}

// submitForms posts the forms concurrently and collects the results.
func submitForms(ctx context.Context, config *Config, forms []Submission, stats *Stats) ([]AssessResult, error) {
	logger.Get().Info(ctx, "submitting forms",
		logger.Int("count", len(forms)),
		logger.Int("workers", config.Workers))

	client := newHTTPClient(config.Timeout)
	url := config.BaseURL + "/assess"

	var (
		successful int64
		duplicate  int64
		failed     int64
		submitted  int64
	)

	results := make([]AssessResult, len(forms))
	type job struct {
		index int
		form  Submission
	}

	jobChan := make(chan job, config.Workers*2)
	var wg sync.WaitGroup

	for i := 0; i < config.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobChan {
				select {
				case <-ctx.Done():
					return
				default:
				}

				res, status := submitSingleForm(ctx, client, url, j.form)
				atomic.AddInt64(&submitted, 1)
				switch status {
				case "success":
					atomic.AddInt64(&successful, 1)
					results[j.index] = res
				case "duplicate":
					atomic.AddInt64(&duplicate, 1)
					results[j.index] = res
				default:
					atomic.AddInt64(&failed, 1)
				}
			}
		}()
	}

	go func() {
		defer close(jobChan)
		for i, f := range forms {
			select {
			case <-ctx.Done():
				return
			case jobChan <- job{index: i, form: f}:
			}
		}
	}()

	wg.Wait()

	stats.FormsSubmitted = int(atomic.LoadInt64(&submitted))
	stats.FormsSuccessful = int(atomic.LoadInt64(&successful))
	stats.FormsDuplicate = int(atomic.LoadInt64(&duplicate))
	stats.FormsFailed = int(atomic.LoadInt64(&failed))

	logger.Get().Info(ctx, "form submission completed",
		logger.Int("successful", stats.FormsSuccessful),
		logger.Int("duplicate", stats.FormsDuplicate),
		logger.Int("failed", stats.FormsFailed))

	if stats.FormsFailed > 0 && stats.FormsSuccessful == 0 {
		return nil, fmt.Errorf("all %d submissions failed", stats.FormsFailed)
	}
	return results, nil
}

func submitSingleForm(ctx context.Context, client *HTTPClient, url string, form Submission) (AssessResult, string) {
	resp, err := client.Post(ctx, url, form)
	if err != nil {
		return AssessResult{}, "failed"
	}

	body, err := readResponseBody(resp)
	if err != nil || resp.StatusCode != StatusOK {
		return AssessResult{}, "failed"
	}

	var res AssessResult
	if err := json.Unmarshal(body, &res); err != nil {
		return AssessResult{}, "failed"
	}
	if res.Duplicate {
		return res, "duplicate"
	}
	return res, "success"
}

// fetchHistoryCount reads the recorded history size from the service.
func fetchHistoryCount(ctx context.Context, config *Config) (int, error) {
	client := newHTTPClient(config.Timeout)
	resp, err := client.Get(ctx, config.BaseURL+"/history?limit=1")
	if err != nil {
		return 0, fmt.Errorf("failed to fetch history: %w", err)
	}

	body, err := readResponseBody(resp)
	if err != nil {
		return 0, fmt.Errorf("failed to read history response: %w", err)
	}
	if resp.StatusCode != StatusOK {
		return 0, fmt.Errorf("history fetch failed with status: %d", resp.StatusCode)
	}

	var hr HistoryResult
	if err := json.Unmarshal(body, &hr); err != nil {
		return 0, fmt.Errorf("failed to parse history response: %w", err)
	}
	return hr.Count, nil
}

// fetchStats reads the /stats payload from the service.
func fetchStats(ctx context.Context, config *Config) (map[string]any, error) {
	client := newHTTPClient(config.Timeout)
	resp, err := client.Get(ctx, config.BaseURL+"/stats")
	if err != nil {
		return nil, fmt.Errorf("failed to fetch stats: %w", err)
	}

	body, err := readResponseBody(resp)
	if err != nil {
		return nil, fmt.Errorf("failed to read stats response: %w", err)
	}
	if resp.StatusCode != StatusOK {
		return nil, fmt.Errorf("stats fetch failed with status: %d", resp.StatusCode)
	}

	var out map[string]any
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("failed to parse stats response: %w", err)
	}
	return out, nil
}
