package models

import (
	"errors"
	"regexp"
	"strconv"
)

// DelayThreshold is the delay in minutes at which a train counts as delayed.
const DelayThreshold = 5

// DelayClass is the visual classification of a train's delay.
type DelayClass string

const (
	DelayOnTime  DelayClass = "on-time"
	DelayDelayed DelayClass = "delayed"
)

// TrainStatus is a snapshot of a train's live running status.
type TrainStatus struct {
	TrainName       string `json:"train_name"`
	CurrentStation  string `json:"current_station_name"`
	Status          string `json:"status"`
	Delay           string `json:"delay"`
	NextStation     string `json:"next_station_name"`
	ExpectedArrival string `json:"expected_arrival_time_at_next_station"`
}

var delayRegex = regexp.MustCompile(`^\s*([+-]?\d+)`)

// DelayMinutes returns the leading signed integer of the delay text.
// "-5 minutes" yields -5; text without a leading number yields false.
func (s TrainStatus) DelayMinutes() (int, bool) {
	matches := delayRegex.FindStringSubmatch(s.Delay)
	if len(matches) != 2 {
		return 0, false
	}
	n, err := strconv.Atoi(matches[1])
	if err != nil {
		return 0, false
	}
	return n, true
}

// DelayClass classifies the delay. Early, unparseable and small delays are on time.
func (s TrainStatus) DelayClass() DelayClass {
	if s.IsDelayed() {
		return DelayDelayed
	}
	return DelayOnTime
}

// IsDelayed reports whether the delay is at least DelayThreshold minutes.
func (s TrainStatus) IsDelayed() bool {
	n, ok := s.DelayMinutes()
	return ok && n >= DelayThreshold
}

// Validate checks the fields a status card cannot be drawn without.
func (s TrainStatus) Validate() error {
	if s.TrainName == "" {
		return errors.New("train name is required")
	}
	return nil
}
