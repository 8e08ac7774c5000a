// Package session holds the presentation state machine shared by the TUI and
// the one-shot status command.
//
// A Session moves through Idle, Validating, LookupInFlight, ResultShown,
// ErrorShown, SummaryInFlight and SummaryShown. Lookups and summaries run
// elsewhere; their completions are handed back with the Token they were
// started with, and completions carrying an outdated token are dropped.
package session

import (
	"time"

	"github.com/railwatch/railwatch-cli/internal/api"
	"github.com/railwatch/railwatch-cli/internal/models"
)

// User-facing messages
const (
	MsgInvalidNumber = "Please enter a valid 5-digit train number."
	MsgNoData        = "Could not retrieve train data."
	MsgUnexpected    = "An unexpected error occurred."
	MsgSummaryFailed = "Could not generate a summary."
)

// State is a presentation state.
type State int

const (
	Idle State = iota
	Validating
	LookupInFlight
	ResultShown
	ErrorShown
	SummaryInFlight
	SummaryShown
)

var stateNames = [...]string{
	Idle:            "idle",
	Validating:      "validating",
	LookupInFlight:  "lookup-in-flight",
	ResultShown:     "result-shown",
	ErrorShown:      "error-shown",
	SummaryInFlight: "summary-in-flight",
	SummaryShown:    "summary-shown",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "unknown"
	}
	return stateNames[s]
}

// Token identifies one asynchronous request. Zero is never issued.
type Token uint64

// Observer is called on every state change.
type Observer func(from, to State)

// Option configures a Session
type Option func(*Session)

// WithObserver registers fn to be told about every transition
func WithObserver(fn Observer) Option {
	return func(s *Session) {
		s.observer = fn
	}
}

// Session is the single owner of the current record and visible state.
// It is not safe for concurrent use; callers serialize access (Bubble Tea's
// Update loop does this naturally).
type Session struct {
	state     State
	record    *models.TrainStatus
	updatedAt time.Time
	errMsg    string
	summary   string
	summErr   string

	lookupTok  Token
	summaryTok Token

	observer Observer
}

// New returns a Session in the Idle state
func New(opts ...Option) Session {
	s := Session{state: Idle}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

func (s *Session) transition(to State) {
	from := s.state
	s.state = to
	if s.observer != nil {
		s.observer(from, to)
	}
}

func (s *Session) clear() {
	s.record = nil
	s.updatedAt = time.Time{}
	s.errMsg = ""
	s.summary = ""
	s.summErr = ""
}

// BeginSearch validates input and, when valid, starts a lookup.
// It returns the token to complete the lookup with and the normalized train
// number. ok is false when input was rejected; the session is then in
// ErrorShown and no lookup must be made. Any lookup or summary still in flight
// becomes stale either way.
func (s *Session) BeginSearch(input string) (tok Token, number string, ok bool) {
	s.lookupTok++
	s.summaryTok++
	s.transition(Validating)

	number, err := api.ValidateTrainNumber(input)
	if err != nil {
		s.clear()
		s.errMsg = MsgInvalidNumber
		s.transition(ErrorShown)
		return 0, "", false
	}

	s.clear()
	s.transition(LookupInFlight)
	return s.lookupTok, number, true
}

// CompleteLookup applies the result of the lookup started with tok.
// It reports whether the result was applied; stale results are ignored.
func (s *Session) CompleteLookup(tok Token, rec *models.TrainStatus, err error, at time.Time) bool {
	if tok != s.lookupTok || s.state != LookupInFlight {
		return false
	}

	switch {
	case err != nil:
		s.errMsg = MsgUnexpected
		s.transition(ErrorShown)
	case rec == nil || rec.Validate() != nil:
		s.errMsg = MsgNoData
		s.transition(ErrorShown)
	default:
		cp := *rec
		s.record = &cp
		s.updatedAt = at
		s.transition(ResultShown)
	}
	return true
}

// BeginSummary starts summary generation for the current record.
// It is a no-op (ok false) unless a result is being shown.
func (s *Session) BeginSummary() (tok Token, rec models.TrainStatus, ok bool) {
	if s.record == nil || s.state != ResultShown {
		return 0, models.TrainStatus{}, false
	}

	s.summaryTok++
	s.summary = ""
	s.summErr = ""
	s.transition(SummaryInFlight)
	return s.summaryTok, *s.record, true
}

// CompleteSummary applies the summary started with tok.
// It reports whether the result was applied; stale results are ignored.
func (s *Session) CompleteSummary(tok Token, text string, err error) bool {
	if tok != s.summaryTok || s.state != SummaryInFlight {
		return false
	}

	if err != nil {
		s.summErr = MsgSummaryFailed
		s.transition(ResultShown)
		return true
	}

	s.summary = text
	s.transition(SummaryShown)
	return true
}

// State returns the current state
func (s Session) State() State {
	return s.state
}

// Record returns a copy of the current record
func (s Session) Record() (models.TrainStatus, bool) {
	if s.record == nil {
		return models.TrainStatus{}, false
	}
	return *s.record, true
}

// UpdatedAt returns when the current record was received
func (s Session) UpdatedAt() time.Time {
	return s.updatedAt
}

// Err returns the visible error message, if any
func (s Session) Err() string {
	return s.errMsg
}

// Summary returns the generated summary text, if any
func (s Session) Summary() string {
	return s.summary
}

// SummaryErr returns the summary failure message, if any
func (s Session) SummaryErr() string {
	return s.summErr
}

// Loading reports whether a lookup is in flight
func (s Session) Loading() bool {
	return s.state == LookupInFlight
}

// SummaryLoading reports whether a summary is in flight
func (s Session) SummaryLoading() bool {
	return s.state == SummaryInFlight
}

// CanSummarize reports whether BeginSummary would start a request
func (s Session) CanSummarize() bool {
	return s.record != nil && s.state == ResultShown
}
