package ledger

import (
	"math"
	"time"
)

// DelayProvider maps an attempt number to the delay observed before the
// next attempt. Delays must be non-decreasing in the attempt number; they
// throttle retries and are not a correctness mechanism.
type DelayProvider interface {
	DelayFor(attempt int) time.Duration
}

// Backoff is an exponential DelayProvider with a cap.
type Backoff struct {
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Multiplier   float64
}

// DefaultBackoff matches the network's recommended retry cadence.
var DefaultBackoff = Backoff{
	InitialDelay: 250 * time.Millisecond,
	MaxDelay:     8 * time.Second,
	Multiplier:   2.0,
}

// DelayFor returns the delay before the attempt following `attempt`.
func (b Backoff) DelayFor(attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}

	delay := float64(b.InitialDelay) * math.Pow(b.Multiplier, float64(attempt-1))
	if delay > float64(b.MaxDelay) {
		delay = float64(b.MaxDelay)
	}
	return time.Duration(delay)
}
