package components

import (
	"testing"
	"time"
)

func TestFormatPlaybackLabel(t *testing.T) {
	tests := []struct {
		pos, dur time.Duration
		want     string
	}{
		{0, 0, "00:00/00:00"},
		{5 * time.Second, 245 * time.Second, "00:05/04:05"},
		{65 * time.Second, 245 * time.Second, "01:05/04:05"},
		{10 * time.Minute, 10*time.Minute + 59*time.Second, "10:00/10:59"},
	}

	for _, tt := range tests {
		if got := FormatPlaybackLabel(tt.pos, tt.dur); got != tt.want {
			t.Errorf("FormatPlaybackLabel(%v, %v) = %q, want %q", tt.pos, tt.dur, got, tt.want)
		}
	}
}
