package core

import (
	"testing"
	"time"
)

func TestThrottleEventPolicyAllowsEverything(t *testing.T) {
	th := newThrottle(PolicyEvent, time.Second)
	now := time.Unix(100, 0)
	for i := 0; i < 5; i++ {
		if !th.allow(now) {
			t.Fatalf("frame %d throttled under the event policy", i)
		}
	}
}

func TestThrottleIntervalPolicy(t *testing.T) {
	th := newThrottle(PolicyInterval, 16*time.Millisecond)
	start := time.Unix(100, 0)

	steps := []struct {
		at   time.Duration
		want bool
	}{
		{0, true},
		{5 * time.Millisecond, false},
		{15 * time.Millisecond, false},
		{16 * time.Millisecond, true},
		{20 * time.Millisecond, false},
		{40 * time.Millisecond, true},
	}
	for _, s := range steps {
		if got := th.allow(start.Add(s.at)); got != s.want {
			t.Fatalf("allow(+%v) = %v, want %v", s.at, got, s.want)
		}
	}
}

func TestThrottleDefaultsInterval(t *testing.T) {
	th := newThrottle(PolicyInterval, 0)
	if th.interval != DefaultFrameInterval {
		t.Fatalf("interval = %v, want %v", th.interval, DefaultFrameInterval)
	}
}
