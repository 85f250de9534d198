package moderation

import (
	"testing"
	"time"
)

func TestParseDuration(t *testing.T) {
	tests := []struct {
		input string
		want  time.Duration
	}{
		{"30s", 30 * time.Second},
		{"10m", 10 * time.Minute},
		{"2h", 2 * time.Hour},
		{"7d", 7 * 24 * time.Hour},
		{"1w", 7 * 24 * time.Hour},
		{"0s", 0},
	}

	for _, tt := range tests {
		got, err := ParseDuration(tt.input)
		if err != nil {
			t.Errorf("ParseDuration(%q) unexpected error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseDuration(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestParseDurationInvalid(t *testing.T) {
	inputs := []string{"", "10", "m", "10x", "1.5h", "-5m", "10 m", "5mm", "h10", "10M"}

	for _, input := range inputs {
		if _, err := ParseDuration(input); err == nil {
			t.Errorf("ParseDuration(%q) expected error, got nil", input)
		}
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		seconds int64
		want    string
	}{
		{0, "0 seconds"},
		{1, "1 second"},
		{45, "45 seconds"},
		{59, "59 seconds"},
		{60, "1 minute"},
		{120, "2 minutes"},
		{3599, "59 minutes"},
		{3600, "1 hour"},
		{3661, "1 hour"},
		{7200, "2 hours"},
		{86399, "23 hours"},
		{86400, "1 day"},
		{90000, "1 day"},
		{172800, "2 days"},
		{2419200, "28 days"},
	}

	for _, tt := range tests {
		if got := FormatDuration(tt.seconds); got != tt.want {
			t.Errorf("FormatDuration(%d) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}
