package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/google/logger"
	"wirralclean/internal/models"
)

// ErrRelayRejected is returned when the relay answers without success.
var ErrRelayRejected = errors.New("form relay rejected submission")

// Dispatcher sends a submission without making the caller wait for it.
type Dispatcher interface {
	Dispatch(sub models.Submission)
}

// Relay posts form submissions to the hosted email relay.
type Relay struct {
	url     string
	client  *http.Client
	timeout time.Duration
	wg      sync.WaitGroup
}

// NewRelay creates a relay client. timeout bounds each background submission.
func NewRelay(url string, timeout time.Duration) *Relay {
	return &Relay{
		url:     url,
		client:  &http.Client{Timeout: timeout},
		timeout: timeout,
	}
}

type relayResponse struct {
	Success any    `json:"success"`
	Message string `json:"message"`
}

// ok accepts both true and "true"; the relay sends the string form.
func (r relayResponse) ok() bool {
	switch v := r.Success.(type) {
	case bool:
		return v
	case string:
		return v == "true"
	}
	return false
}

// Submit posts one submission and reports the outcome.
func (r *Relay) Submit(ctx context.Context, sub models.Submission) error {
	body, err := json.Marshal(sub)
	if err != nil {
		return fmt.Errorf("encode submission: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build relay request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return fmt.Errorf("post to relay: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err != nil {
		return fmt.Errorf("read relay response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: status %d", ErrRelayRejected, resp.StatusCode)
	}
	var result relayResponse
	if err := json.Unmarshal(raw, &result); err != nil {
		return fmt.Errorf("decode relay response: %w", err)
	}
	if !result.ok() {
		return fmt.Errorf("%w: %s", ErrRelayRejected, result.Message)
	}
	return nil
}

// Dispatch submits in the background. Failures are logged and dropped:
// the visitor is shown the thank-you message either way.
func (r *Relay) Dispatch(sub models.Submission) {
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
		defer cancel()
		if err := r.Submit(ctx, sub); err != nil {
			logger.Warningf("Form relay failed for %q: %v", sub[FieldSubject], err)
			return
		}
		logger.Infof("Form relayed: %q", sub[FieldSubject])
	}()
}

// Wait blocks until in-flight submissions finish.
func (r *Relay) Wait() {
	r.wg.Wait()
}
