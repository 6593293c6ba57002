package chat

import (
	"math/rand"
	"time"
)

// RetryPolicy decides how long to wait before reconnect attempt n (1-based),
// and whether to keep trying at all.
type RetryPolicy interface {
	NextDelay(attempt int) (time.Duration, bool)
}

// FixedDelay retries forever with a constant delay. The default matches the
// foregrounded, short-lived chat view: 5 seconds, unbounded.
type FixedDelay time.Duration

func (d FixedDelay) NextDelay(int) (time.Duration, bool) {
	return time.Duration(d), true
}

var DefaultRetry RetryPolicy = FixedDelay(5 * time.Second)

// Backoff is the policy for longer-lived embeddings: exponential growth with
// jitter and a retry ceiling.
type Backoff struct {
	Initial     time.Duration
	Max         time.Duration
	Jitter      float64 // fraction of the delay, 0..1
	MaxAttempts int     // 0 means unbounded
}

func (b Backoff) NextDelay(attempt int) (time.Duration, bool) {
	if b.MaxAttempts > 0 && attempt > b.MaxAttempts {
		return 0, false
	}
	d := b.Initial
	for i := 1; i < attempt; i++ {
		d *= 2
		if b.Max > 0 && d >= b.Max {
			d = b.Max
			break
		}
	}
	if b.Jitter > 0 {
		spread := float64(d) * b.Jitter
		d += time.Duration(rand.Float64()*2*spread - spread)
		if d < 0 {
			d = 0
		}
	}
	return d, true
}
