package testutil

import (
	"context"
	"sync"

	"github.com/railwatch/railwatch-cli/internal/models"
)

// StubResolver answers status lookups from a canned record and records every request.
// It satisfies api.StatusResolver.
type StubResolver struct {
	mu       sync.Mutex
	Record   *models.TrainStatus
	Err      error
	Requests []string
}

// NewStubResolver creates a resolver that always returns rec and err
func NewStubResolver(rec *models.TrainStatus, err error) *StubResolver {
	return &StubResolver{Record: rec, Err: err}
}

// Lookup records the request and returns the canned answer
func (s *StubResolver) Lookup(_ context.Context, trainNumber string) (*models.TrainStatus, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Requests = append(s.Requests, trainNumber)
	if s.Record == nil {
		return nil, s.Err
	}
	rec := *s.Record
	return &rec, s.Err
}

// LastRequest returns the most recent train number, or "" if none
func (s *StubResolver) LastRequest() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.Requests) == 0 {
		return ""
	}
	return s.Requests[len(s.Requests)-1]
}

// RequestCount returns the number of lookups received
func (s *StubResolver) RequestCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.Requests)
}

// Reset clears the request history
func (s *StubResolver) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Requests = nil
}

// StubSummarizer returns a fixed summary and records which trains were summarized.
// It satisfies api.Summarizer.
type StubSummarizer struct {
	mu       sync.Mutex
	Text     string
	Err      error
	Requests []string
}

// NewStubSummarizer creates a summarizer that always returns text and err
func NewStubSummarizer(text string, err error) *StubSummarizer {
	return &StubSummarizer{Text: text, Err: err}
}

// Summarize records the request and returns the canned answer
func (s *StubSummarizer) Summarize(_ context.Context, status models.TrainStatus) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Requests = append(s.Requests, status.TrainName)
	if s.Err != nil {
		return "", s.Err
	}
	return s.Text, nil
}

// RequestCount returns the number of summaries requested
func (s *StubSummarizer) RequestCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.Requests)
}
