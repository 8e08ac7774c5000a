package api

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/railwatch/railwatch-cli/internal/models"
	"github.com/rs/zerolog"
	"go.uber.org/atomic"
)

// Summarizer turns a status record into a short travel summary.
type Summarizer interface {
	Summarize(ctx context.Context, status models.TrainStatus) (string, error)
}

const summaryTemplate = "Looks like the %s is making good time! It's currently %s. " +
	"The delay is only about %s, so you're pretty much on schedule. " +
	"Have a safe and pleasant journey!"

// MockSummarizer produces a templated summary after an artificial delay
type MockSummarizer struct {
	latency time.Duration
	logger  zerolog.Logger
	calls   *atomic.Int64
}

// NewMockSummarizer creates a mock summary generator
func NewMockSummarizer(opts ...MockOption) *MockSummarizer {
	cfg := newMockConfig(DefaultSummaryLatency, opts)
	return &MockSummarizer{
		latency: cfg.latency,
		logger:  cfg.logger,
		calls:   atomic.NewInt64(0),
	}
}

// Summarize renders the summary template for the record
func (s *MockSummarizer) Summarize(ctx context.Context, status models.TrainStatus) (string, error) {
	s.calls.Inc()

	if err := status.Validate(); err != nil {
		return "", NewProviderError(mockProvider, "summarize", err)
	}

	s.logger.Debug().Str("train", status.TrainName).Msg("Generating mock summary")

	if err := wait(ctx, s.latency); err != nil {
		return "", NewProviderError(mockProvider, "summarize", err)
	}

	return RenderSummary(status), nil
}

// Calls returns how many summaries were requested
func (s *MockSummarizer) Calls() int64 {
	return s.calls.Load()
}

// RenderSummary fills the summary template from the record's fields
func RenderSummary(status models.TrainStatus) string {
	return fmt.Sprintf(summaryTemplate, status.TrainName, strings.ToLower(status.Status), status.Delay)
}
