package models

import (
	"encoding/json"
	"testing"
)

func TestTrainStatus_DelayMinutes(t *testing.T) {
	tests := []struct {
		delay  string
		want   int
		wantOK bool
	}{
		{"0 minutes", 0, true},
		{"15 minutes", 15, true},
		{"-5 minutes", -5, true},
		{"1 minute", 1, true},
		{"+7 minutes", 7, true},
		{"  10 minutes", 10, true},
		{"", 0, false},
		{"unknown", 0, false},
		{"about 5 minutes", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.delay, func(t *testing.T) {
			s := TrainStatus{Delay: tt.delay}
			got, ok := s.DelayMinutes()
			if ok != tt.wantOK {
				t.Fatalf("DelayMinutes() ok = %v, want %v", ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("DelayMinutes() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestTrainStatus_DelayClass(t *testing.T) {
	tests := []struct {
		delay string
		want  DelayClass
	}{
		{"0 minutes", DelayOnTime},
		{"2 minutes", DelayOnTime},
		{"4 minutes", DelayOnTime},
		{"5 minutes", DelayDelayed},
		{"10 minutes", DelayDelayed},
		{"30 minutes", DelayDelayed},
		{"-5 minutes", DelayOnTime},
		{"-30 minutes", DelayOnTime},
		{"n/a", DelayOnTime},
	}

	for _, tt := range tests {
		t.Run(tt.delay, func(t *testing.T) {
			s := TrainStatus{Delay: tt.delay}
			if got := s.DelayClass(); got != tt.want {
				t.Errorf("DelayClass() = %q, want %q", got, tt.want)
			}
			if s.IsDelayed() != (tt.want == DelayDelayed) {
				t.Errorf("IsDelayed() disagrees with DelayClass() for %q", tt.delay)
			}
		})
	}
}

func TestTrainStatus_Validate(t *testing.T) {
	if err := (TrainStatus{TrainName: "GARIB RATH"}).Validate(); err != nil {
		t.Errorf("Validate() error = %v, want nil", err)
	}
	if err := (TrainStatus{}).Validate(); err == nil {
		t.Error("Validate() on empty record should fail")
	}
}

func TestTrainStatus_JSONFieldNames(t *testing.T) {
	raw := `{
		"train_name": "HOWRAH MAIL",
		"current_station_name": "Asansol Jn",
		"status": "Arrived at Asansol. On time.",
		"delay": "0 minutes",
		"next_station_name": "Howrah Jn",
		"expected_arrival_time_at_next_station": "03:30 AM"
	}`

	var s TrainStatus
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		t.Fatalf("Unmarshal error = %v", err)
	}
	if s.TrainName != "HOWRAH MAIL" || s.CurrentStation != "Asansol Jn" {
		t.Errorf("unexpected names: %+v", s)
	}
	if s.NextStation != "Howrah Jn" || s.ExpectedArrival != "03:30 AM" {
		t.Errorf("unexpected next stop: %+v", s)
	}
}
