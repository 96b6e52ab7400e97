package judge

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"dsa_tracker/internal/common"
)

// Community profile APIs, in priority order. Each takes the platform username
// as the single format argument.
var (
	defaultGFGEndpoints = []string{
		"https://geeks-for-geeks-api.vercel.app/%s",
		"https://gfg-api.vercel.app/%s",
	}
	defaultLeetCodeEndpoints = []string{
		"https://alfa-leetcode-api.onrender.com/%s/acSubmission",
		"https://leetcode-stats-api.herokuapp.com/%s",
	}
)

// Client fetches a user's solved-problem data from third-party judge APIs.
// For each platform it walks the endpoint list in order; every endpoint gets
// a bounded number of attempts with a fixed delay in between, and the first
// non-error JSON body short-circuits the whole search.
type Client struct {
	httpClient *http.Client

	GFGEndpoints      []string
	LeetCodeEndpoints []string

	AttemptsPerEndpoint int
	AttemptDelay        time.Duration
	RequestTimeout      time.Duration
}

func NewClient() *Client {
	return &Client{
		httpClient:          &http.Client{},
		GFGEndpoints:        defaultGFGEndpoints,
		LeetCodeEndpoints:   defaultLeetCodeEndpoints,
		AttemptsPerEndpoint: 3,
		AttemptDelay:        2 * time.Second,
		RequestTimeout:      10 * time.Second,
	}
}

func (c *Client) FetchGFGProfile(ctx context.Context, username string) ([]byte, error) {
	return c.fetchWithFallback(ctx, c.GFGEndpoints, username)
}

func (c *Client) FetchLeetCodeProfile(ctx context.Context, username string) ([]byte, error) {
	return c.fetchWithFallback(ctx, c.LeetCodeEndpoints, username)
}

func (c *Client) fetchWithFallback(ctx context.Context, endpoints []string, username string) ([]byte, error) {
	var lastErr error
	for _, endpoint := range endpoints {
		url := fmt.Sprintf(endpoint, username)
		for attempt := 1; attempt <= c.AttemptsPerEndpoint; attempt++ {
			body, err := c.fetchOnce(ctx, url)
			if err == nil {
				return body, nil
			}
			lastErr = err
			log.Printf("WARN: judge API attempt %d/%d failed for %s: %v", attempt, c.AttemptsPerEndpoint, url, err)
			if attempt < c.AttemptsPerEndpoint {
				time.Sleep(c.AttemptDelay)
			}
		}
	}
	return nil, fmt.Errorf("all judge API endpoints exhausted (last error: %v), please try again later: %w",
		lastErr, common.ErrUpstreamUnavailable)
}

// fetchOnce performs a single attempt with its own timeout. Success means a
// 2xx status and a JSON body that is not an upstream error object.
func (c *Client) fetchOnce(ctx context.Context, url string) ([]byte, error) {
	attemptCtx, cancel := context.WithTimeout(ctx, c.RequestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(attemptCtx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}
	if !json.Valid(body) {
		return nil, fmt.Errorf("response is not valid JSON")
	}

	// Some upstreams answer 200 with {"error": "..."} for unknown users.
	var probe struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &probe); err == nil && probe.Error != "" {
		return nil, fmt.Errorf("upstream error: %s", probe.Error)
	}

	return body, nil
}
