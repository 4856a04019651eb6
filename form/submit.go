package form

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"time"
)

// Submission carries the already-validated field values handed to a
// Submitter.
type Submission struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// Submitter delivers a submission somewhere. Implementations may take
// arbitrarily long and fail with arbitrary errors; the controller
// treats them as opaque.
type Submitter interface {
	Submit(ctx context.Context, sub Submission) error
}

// SimulatedSubmitter stands in for a real transport: it waits a fixed
// delay, then fails at the configured rate.
type SimulatedSubmitter struct {
	Delay       time.Duration
	FailureRate float64
	rng         *rand.Rand
}

// NewSimulatedSubmitter returns a simulated transport. The seed makes
// the failure sequence reproducible.
func NewSimulatedSubmitter(delay time.Duration, failureRate float64, seed int64) *SimulatedSubmitter {
	return &SimulatedSubmitter{
		Delay:       delay,
		FailureRate: failureRate,
		rng:         rand.New(rand.NewSource(seed)),
	}
}

// Submit implements Submitter.
func (s *SimulatedSubmitter) Submit(ctx context.Context, _ Submission) error {
	select {
	case <-time.After(s.Delay):
	case <-ctx.Done():
		return ctx.Err()
	}
	if s.rng.Float64() < s.FailureRate {
		return fmt.Errorf("simulated delivery failure")
	}
	return nil
}

// HTTPSubmitter posts submissions as JSON to a fixed endpoint.
type HTTPSubmitter struct {
	Endpoint string
	Client   *http.Client
}

// Submit implements Submitter. Any non-2xx response is an error.
func (s *HTTPSubmitter) Submit(ctx context.Context, sub Submission) error {
	body, err := json.Marshal(sub)
	if err != nil {
		return fmt.Errorf("encoding submission: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.Endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("posting submission: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("submission endpoint returned %s", resp.Status)
	}
	return nil
}
