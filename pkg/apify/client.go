package apify

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Terminal run statuses reported by the Apify platform.
const (
	StatusSucceeded = "SUCCEEDED"
	StatusFailed    = "FAILED"
	StatusAborted   = "ABORTED"
	StatusTimedOut  = "TIMED-OUT"
)

// Client is a minimal Apify REST API client covering actor runs, log
// streaming and dataset item retrieval.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewClient creates an Apify API client. baseURL is normally
// https://api.apify.com; token is the account API token.
func NewClient(baseURL, token string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		// Actor runs are polled, not held open; only log streaming is
		// long-lived and that request manages its own lifetime via ctx.
		httpClient: &http.Client{Timeout: 60 * time.Second},
	}
}

// Run describes an actor run as returned by the platform.
type Run struct {
	ID               string `json:"id"`
	ActorID          string `json:"actId"`
	Status           string `json:"status"`
	DefaultDatasetID string `json:"defaultDatasetId"`
}

// Finished reports whether the run reached a terminal status.
func (r *Run) Finished() bool {
	switch r.Status {
	case StatusSucceeded, StatusFailed, StatusAborted, StatusTimedOut:
		return true
	}
	return false
}

type runEnvelope struct {
	Data Run `json:"data"`
}

// StartRun starts an actor with the given input and returns the created run.
func (c *Client) StartRun(ctx context.Context, actorID string, input interface{}) (*Run, error) {
	body, err := json.Marshal(input)
	if err != nil {
		return nil, fmt.Errorf("failed to encode actor input: %w", err)
	}

	endpoint := fmt.Sprintf("%s/v2/acts/%s/runs?token=%s", c.baseURL, url.PathEscape(actorID), url.QueryEscape(c.token))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to start actor run: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		return nil, apiError("start actor run", resp)
	}

	var env runEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("failed to decode actor run: %w", err)
	}
	return &env.Data, nil
}

// GetRun fetches the current state of a run.
func (c *Client) GetRun(ctx context.Context, runID string) (*Run, error) {
	endpoint := fmt.Sprintf("%s/v2/actor-runs/%s?token=%s", c.baseURL, url.PathEscape(runID), url.QueryEscape(c.token))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch actor run: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apiError("fetch actor run", resp)
	}

	var env runEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("failed to decode actor run: %w", err)
	}
	return &env.Data, nil
}

// WaitForFinish polls a run until it reaches a terminal status or ctx is
// cancelled.
func (c *Client) WaitForFinish(ctx context.Context, runID string, interval time.Duration) (*Run, error) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		run, err := c.GetRun(ctx, runID)
		if err != nil {
			return nil, err
		}
		if run.Finished() {
			return run, nil
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
		}
	}
}

// StreamLog follows a run's log output, invoking handle once per complete
// line. It returns when the log stream ends (the run finished) or ctx is
// cancelled. Partial lines at stream end are flushed to the handler.
func (c *Client) StreamLog(ctx context.Context, runID string, handle func(line string)) error {
	endpoint := fmt.Sprintf("%s/v2/logs/%s?stream=1&token=%s", c.baseURL, url.PathEscape(runID), url.QueryEscape(c.token))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}

	// A streaming response must outlive the client's request timeout.
	streamClient := &http.Client{}
	resp, err := streamClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to open log stream: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return apiError("open log stream", resp)
	}

	reader := bufio.NewReader(resp.Body)
	for {
		line, err := reader.ReadString('\n')
		if trimmed := strings.TrimRight(line, "\r\n"); trimmed != "" {
			handle(trimmed)
		}
		if err != nil {
			if err == io.EOF || ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("log stream interrupted: %w", err)
		}
	}
}

// ListItems retrieves all items of a dataset as decoded place results.
func (c *Client) ListItems(ctx context.Context, datasetID string) ([]PlaceResult, error) {
	endpoint := fmt.Sprintf("%s/v2/datasets/%s/items?clean=true&format=json&token=%s", c.baseURL, url.PathEscape(datasetID), url.QueryEscape(c.token))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch dataset items: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apiError("fetch dataset items", resp)
	}

	var items []PlaceResult
	if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
		return nil, fmt.Errorf("failed to decode dataset items: %w", err)
	}
	return items, nil
}

func apiError(op string, resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	return fmt.Errorf("failed to %s: apify returned %d: %s", op, resp.StatusCode, strings.TrimSpace(string(body)))
}
