package core

import "time"

// throttle gates renders under PolicyInterval. A nil *throttle lets every
// frame through.
type throttle struct {
	interval time.Duration
	last     time.Time
}

func newThrottle(policy Policy, interval time.Duration) *throttle {
	if policy != PolicyInterval {
		return nil
	}
	if interval <= 0 {
		interval = DefaultFrameInterval
	}
	return &throttle{interval: interval}
}

// allow reports whether a frame may be rendered at now, and if so starts a
// new interval.
func (t *throttle) allow(now time.Time) bool {
	if t == nil {
		return true
	}
	if !t.last.IsZero() && now.Sub(t.last) < t.interval {
		return false
	}
	t.last = now
	return true
}
