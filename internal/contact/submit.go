package contact

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultTimeout bounds a contact submission request.
const DefaultTimeout = 30 * time.Second

// Input is the contact form payload.
type Input struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required"`
	Subject string `json:"subject" binding:"required"`
	Message string `json:"message" binding:"required"`
}

// SubmitError is returned when the contact endpoint answers with a non-2xx
// status. It keeps the raw response body so callers can distinguish a
// structured validation rejection from a server failure.
type SubmitError struct {
	StatusCode int
	Body       []byte
}

func (e *SubmitError) Error() string {
	return fmt.Sprintf("contact submission failed with status %d", e.StatusCode)
}

// EmailError extracts the first server-side email validation message from a
// 400 response body of the shape {"email": ["...", ...]}. The second return
// is false for any other status or body shape.
func (e *SubmitError) EmailError() (string, bool) {
	if e.StatusCode != http.StatusBadRequest {
		return "", false
	}

	var fields struct {
		Email []string `json:"email"`
	}
	if err := json.Unmarshal(e.Body, &fields); err != nil || len(fields.Email) == 0 {
		return "", false
	}
	return fields.Email[0], true
}

// Submitter posts contact form submissions to the content API. Unlike the
// read paths, failures here propagate: the caller needs to tell a validation
// rejection apart from an unreachable backend.
type Submitter struct {
	baseURL    string
	httpClient *http.Client
}

// NewSubmitter creates a submitter for the given content API base URL.
func NewSubmitter(baseURL string) *Submitter {
	return &Submitter{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
	}
}

// Submit POSTs the form to {base}/contact/ and returns the parsed response
// body on success. Non-2xx statuses yield a *SubmitError.
func (s *Submitter) Submit(ctx context.Context, in Input) (map[string]any, error) {
	payload, err := json.Marshal(in)
	if err != nil {
		return nil, fmt.Errorf("marshal contact form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/contact/", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("contact request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read contact response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &SubmitError{StatusCode: resp.StatusCode, Body: body}
	}

	var result map[string]any
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("decode contact response: %w", err)
	}
	return result, nil
}
