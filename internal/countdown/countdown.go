// Package countdown derives a rental's remaining time from its start time
// and slot length. It keeps no state: the display loop recomputes a snapshot
// every tick and decides for itself whether the warning has already fired.
package countdown

import (
	"context"
	"time"
)

// WarningThresholdMinutes is the point at which the display turns the timer
// into a warning.
const WarningThresholdMinutes = 10

// Snapshot is one observation of a rental's clock.
type Snapshot struct {
	RemainingSeconds int64
	Minutes          int64
	Seconds          int64
	Warning          bool
	Expired          bool
}

// Remaining returns the whole seconds left on a rental started at start with
// a slot of duration+extra minutes, evaluated at now. Never negative.
func Remaining(start time.Time, duration, extra int32, now time.Time) int64 {
	end := start.Add(time.Duration(duration+extra) * time.Minute)
	left := end.Sub(now) / time.Second
	if left < 0 {
		return 0
	}
	return int64(left)
}

// At builds the full snapshot for a rental clock at the given instant.
func At(start time.Time, duration, extra int32, now time.Time) Snapshot {
	left := Remaining(start, duration, extra, now)
	minutes := left / 60
	return Snapshot{
		RemainingSeconds: left,
		Minutes:          minutes,
		Seconds:          left % 60,
		Warning:          minutes > 0 && minutes <= WarningThresholdMinutes,
		Expired:          left == 0,
	}
}

// Watch emits a snapshot every interval until the clock expires or ctx is
// canceled, then closes the channel. The first snapshot is sent immediately.
func Watch(ctx context.Context, start time.Time, duration, extra int32, interval time.Duration) <-chan Snapshot {
	out := make(chan Snapshot, 1)
	go func() {
		defer close(out)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		send := func(now time.Time) bool {
			snap := At(start, duration, extra, now)
			select {
			case out <- snap:
			case <-ctx.Done():
				return false
			}
			return !snap.Expired
		}

		if !send(time.Now()) {
			return
		}
		for {
			select {
			case <-ctx.Done():
				return
			case now := <-ticker.C:
				if !send(now) {
					return
				}
			}
		}
	}()
	return out
}
