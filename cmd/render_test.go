package cmd

import (
	"testing"
	"time"
)

func TestParseWeekday(t *testing.T) {
	tests := []struct {
		input    string
		expected time.Weekday
		wantErr  bool
	}{
		{input: "Monday", expected: time.Monday},
		{input: "monday", expected: time.Monday},
		{input: "mon", expected: time.Monday},
		{input: "SUNDAY", expected: time.Sunday},
		{input: "0", expected: time.Sunday},
		{input: "6", expected: time.Saturday},
		{input: "7", wantErr: true},
		{input: "-1", wantErr: true},
		{input: "mondayish", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			day, err := parseWeekday(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q, got %v", tt.input, day)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error for %q: %v", tt.input, err)
			}
			if day != tt.expected {
				t.Errorf("expected %v for %q, got %v", tt.expected, tt.input, day)
			}
		})
	}
}
