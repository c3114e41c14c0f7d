package utils

import (
	"testing"
	"time"
)

func TestFormatTime(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{45 * time.Second, "45s"},
		{90 * time.Second, "1m:30s"},
		{2*time.Hour + 5*time.Minute + 3*time.Second, "2h:5m:3s"},
		{26*time.Hour + 30*time.Minute, "1d:2h:30m:0s"},
	}
	for _, tc := range tests {
		if got := FormatTime(tc.d); got != tc.want {
			t.Errorf("FormatTime(%v) = %q, want %q", tc.d, got, tc.want)
		}
	}
}

func TestSpinnerStartStop(t *testing.T) {
	s := NewSpinner()
	s.Start("working")

	stopped := make(chan struct{})
	go func() {
		s.Stop()
		close(stopped)
	}()
	select {
	case <-stopped:
	case <-time.After(2 * time.Second):
		t.Fatal("Stop did not return")
	}
}
