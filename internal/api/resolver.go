package api

import (
	"context"
	"errors"
	"time"

	"github.com/railwatch/railwatch-cli/internal/models"
	"github.com/rs/zerolog"
	"go.uber.org/atomic"
)

const (
	// DefaultLookupLatency is the artificial delay of a mock status lookup
	DefaultLookupLatency = 800 * time.Millisecond

	// DefaultSummaryLatency is the artificial delay of a mock summary
	DefaultSummaryLatency = 1200 * time.Millisecond

	mockProvider = "mock"
)

// StatusResolver looks up the live status of a train.
// A nil record with a nil error means the provider had no data.
type StatusResolver interface {
	Lookup(ctx context.Context, trainNumber string) (*models.TrainStatus, error)
}

// MockResolver serves canned records from a fixed table after an artificial delay
type MockResolver struct {
	latency time.Duration
	logger  zerolog.Logger
	calls   *atomic.Int64
}

// MockOption configures the mock providers
type MockOption func(*mockConfig)

type mockConfig struct {
	latency time.Duration
	logger  zerolog.Logger
}

// WithLatency sets the artificial delay
func WithLatency(d time.Duration) MockOption {
	return func(c *mockConfig) {
		if d < 0 {
			d = 0
		}
		c.latency = d
	}
}

// WithLogger sets the logger used for request tracing
func WithLogger(logger zerolog.Logger) MockOption {
	return func(c *mockConfig) {
		c.logger = logger
	}
}

func newMockConfig(latency time.Duration, opts []MockOption) mockConfig {
	cfg := mockConfig{
		latency: latency,
		logger:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// NewMockResolver creates a mock status resolver
func NewMockResolver(opts ...MockOption) *MockResolver {
	cfg := newMockConfig(DefaultLookupLatency, opts)
	return &MockResolver{
		latency: cfg.latency,
		logger:  cfg.logger,
		calls:   atomic.NewInt64(0),
	}
}

// Lookup returns the table entry selected by the last digit of the train number.
// The same number always yields the same record.
func (r *MockResolver) Lookup(ctx context.Context, trainNumber string) (*models.TrainStatus, error) {
	r.calls.Inc()

	number, err := ValidateTrainNumber(trainNumber)
	if err != nil {
		return nil, err
	}

	r.logger.Debug().Str("train_number", number).Msg("Fetching mock train status")

	if err := wait(ctx, r.latency); err != nil {
		return nil, NewProviderError(mockProvider, "lookup", err)
	}

	rec := mockTrains[lastDigit(number)%len(mockTrains)]
	return &rec, nil
}

// Calls returns how many lookups were requested
func (r *MockResolver) Calls() int64 {
	return r.calls.Load()
}

// wait blocks for d or until ctx is done. A missed deadline maps to ErrTimeout.
func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return ErrTimeout
		}
		return ctx.Err()
	}
}
