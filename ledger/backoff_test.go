package ledger

import (
	"testing"
	"time"
)

func TestBackoff_DelayFor(t *testing.T) {
	b := Backoff{
		InitialDelay: 250 * time.Millisecond,
		MaxDelay:     8 * time.Second,
		Multiplier:   2.0,
	}

	tests := []struct {
		attempt int
		expect  time.Duration
	}{
		{1, 250 * time.Millisecond},
		{2, 500 * time.Millisecond},
		{3, 1 * time.Second},
		{6, 8 * time.Second},  // capped
		{10, 8 * time.Second}, // stays capped
		{0, 250 * time.Millisecond},
		{-3, 250 * time.Millisecond},
	}

	for _, tt := range tests {
		if got := b.DelayFor(tt.attempt); got != tt.expect {
			t.Errorf("DelayFor(%d) = %v, want %v", tt.attempt, got, tt.expect)
		}
	}
}

func TestBackoff_NonDecreasing(t *testing.T) {
	b := DefaultBackoff

	prev := time.Duration(0)
	for attempt := 1; attempt <= 30; attempt++ {
		d := b.DelayFor(attempt)
		if d < prev {
			t.Fatalf("DelayFor(%d) = %v is smaller than DelayFor(%d) = %v", attempt, d, attempt-1, prev)
		}
		if d < 0 {
			t.Fatalf("DelayFor(%d) = %v is negative", attempt, d)
		}
		prev = d
	}
}
