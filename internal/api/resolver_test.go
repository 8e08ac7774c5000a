package api

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/railwatch/railwatch-cli/internal/testutil"
)

func TestNewMockResolver_Defaults(t *testing.T) {
	r := NewMockResolver()
	testutil.AssertEqual(t, r.latency, DefaultLookupLatency)
	testutil.AssertEqual(t, r.Calls(), int64(0))
}

func TestNewMockResolver_NegativeLatency(t *testing.T) {
	r := NewMockResolver(WithLatency(-time.Second))
	testutil.AssertEqual(t, r.latency, time.Duration(0))
}

func TestMockResolver_Examples(t *testing.T) {
	r := NewMockResolver(WithLatency(0))

	tests := []struct {
		number   string
		wantName string
		wantLate bool
	}{
		{"12345", "GARIB RATH", false},
		{"99999", "BENGALURU RAJDHANI", true},
		{"10000", "MUMBAI RAJDHANI", false},
		{"22221", "SHATABDI EXPRESS", true},
		{"12953", "TEJAS EXPRESS", false},
	}

	for _, tt := range tests {
		t.Run(tt.number, func(t *testing.T) {
			rec, err := r.Lookup(context.Background(), tt.number)
			testutil.AssertNil(t, err)
			testutil.AssertTrue(t, rec != nil)
			testutil.AssertEqual(t, rec.TrainName, tt.wantName)
			testutil.AssertEqual(t, rec.IsDelayed(), tt.wantLate)
		})
	}
}

func TestMockResolver_GaribRathRecord(t *testing.T) {
	r := NewMockResolver(WithLatency(0))

	rec, err := r.Lookup(context.Background(), "12345")
	testutil.AssertNil(t, err)
	testutil.AssertEqual(t, *rec, testutil.GaribRath())
}

func TestMockResolver_Deterministic(t *testing.T) {
	r := NewMockResolver(WithLatency(0))

	// Every last digit, several prefixes, repeated lookups
	for d := 0; d < 10; d++ {
		for _, prefix := range []string{"0000", "1234", "9876"} {
			number := fmt.Sprintf("%s%d", prefix, d)
			first, err := r.Lookup(context.Background(), number)
			testutil.AssertNil(t, err)
			second, err := r.Lookup(context.Background(), number)
			testutil.AssertNil(t, err)
			testutil.AssertEqual(t, *first, *second)
			testutil.AssertEqual(t, *first, mockTrains[d])
		}
	}
}

func TestMockResolver_ReturnsCopies(t *testing.T) {
	r := NewMockResolver(WithLatency(0))

	rec, err := r.Lookup(context.Background(), "12345")
	testutil.AssertNil(t, err)
	rec.Status = "tampered"

	again, err := r.Lookup(context.Background(), "12345")
	testutil.AssertNil(t, err)
	testutil.AssertEqual(t, again.Status, "Departed from Patna. On time.")
}

func TestMockResolver_InvalidNumber(t *testing.T) {
	r := NewMockResolver(WithLatency(time.Hour))

	start := time.Now()
	rec, err := r.Lookup(context.Background(), "abcde")
	testutil.AssertTrue(t, rec == nil)
	testutil.AssertTrue(t, errors.Is(err, ErrInvalidTrainNumber))
	// Validation fails before the artificial delay
	testutil.AssertTrue(t, time.Since(start) < time.Second)
}

func TestMockResolver_Latency(t *testing.T) {
	r := NewMockResolver(WithLatency(30 * time.Millisecond))

	start := time.Now()
	_, err := r.Lookup(context.Background(), "12345")
	testutil.AssertNil(t, err)
	testutil.AssertDurationAtLeast(t, time.Since(start), 30*time.Millisecond)
}

func TestMockResolver_Timeout(t *testing.T) {
	r := NewMockResolver(WithLatency(time.Hour))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	rec, err := r.Lookup(ctx, "12345")
	testutil.AssertTrue(t, rec == nil)
	testutil.AssertTrue(t, errors.Is(err, ErrTimeout))

	var pe *ProviderError
	testutil.AssertTrue(t, errors.As(err, &pe))
	testutil.AssertEqual(t, pe.Operation, "lookup")
}

func TestMockResolver_Canceled(t *testing.T) {
	r := NewMockResolver(WithLatency(time.Hour))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := r.Lookup(ctx, "12345")
	testutil.AssertTrue(t, errors.Is(err, context.Canceled))
}

func TestMockResolver_Calls(t *testing.T) {
	r := NewMockResolver(WithLatency(0))

	_, _ = r.Lookup(context.Background(), "12345")
	_, _ = r.Lookup(context.Background(), "bad")
	testutil.AssertEqual(t, r.Calls(), int64(2))
}

func TestMockTrains(t *testing.T) {
	trains := MockTrains()
	testutil.AssertLen(t, trains, 10)
	testutil.AssertEqual(t, trains[5].TrainName, "GARIB RATH")
	testutil.AssertEqual(t, trains[9].TrainName, "BENGALURU RAJDHANI")

	// The copy does not alias the table
	trains[0].TrainName = "changed"
	testutil.AssertEqual(t, mockTrains[0].TrainName, "MUMBAI RAJDHANI")

	for i, rec := range MockTrains() {
		if err := rec.Validate(); err != nil {
			t.Errorf("mock record %d invalid: %v", i, err)
		}
	}
}
