package countdown

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRemaining(t *testing.T) {
	start := time.Date(2025, 7, 12, 10, 0, 0, 0, time.UTC)

	t.Run("Full slot ahead", func(t *testing.T) {
		left := Remaining(start, 60, 0, start)
		assert.Equal(t, int64(3600), left)
	})

	t.Run("One minute before expiry", func(t *testing.T) {
		left := Remaining(start, 60, 0, start.Add(59*time.Minute))
		assert.Equal(t, int64(60), left)
	})

	t.Run("Past expiry is clamped to zero", func(t *testing.T) {
		left := Remaining(start, 60, 0, start.Add(61*time.Minute))
		assert.Equal(t, int64(0), left)
	})

	t.Run("Extra time extends the clock", func(t *testing.T) {
		left := Remaining(start, 60, 15, start.Add(60*time.Minute))
		assert.Equal(t, int64(15*60), left)
	})
}

func TestAt(t *testing.T) {
	start := time.Date(2025, 7, 12, 10, 0, 0, 0, time.UTC)

	t.Run("Warning inside threshold", func(t *testing.T) {
		snap := At(start, 60, 0, start.Add(59*time.Minute))
		assert.Equal(t, int64(60), snap.RemainingSeconds)
		assert.Equal(t, int64(1), snap.Minutes)
		assert.Equal(t, int64(0), snap.Seconds)
		assert.True(t, snap.Warning)
		assert.False(t, snap.Expired)
	})

	t.Run("Warning at exactly ten minutes", func(t *testing.T) {
		snap := At(start, 60, 0, start.Add(50*time.Minute))
		assert.Equal(t, int64(10), snap.Minutes)
		assert.True(t, snap.Warning)
	})

	t.Run("No warning with plenty of time", func(t *testing.T) {
		snap := At(start, 60, 0, start.Add(30*time.Minute))
		assert.False(t, snap.Warning)
		assert.False(t, snap.Expired)
	})

	t.Run("Expired clock", func(t *testing.T) {
		snap := At(start, 60, 0, start.Add(61*time.Minute))
		assert.Equal(t, int64(0), snap.RemainingSeconds)
		assert.False(t, snap.Warning)
		assert.True(t, snap.Expired)
	})

	t.Run("Seconds under a minute do not warn", func(t *testing.T) {
		// 30 seconds left: minutes == 0, so the warning window has passed.
		snap := At(start, 60, 0, start.Add(59*time.Minute+30*time.Second))
		assert.Equal(t, int64(0), snap.Minutes)
		assert.Equal(t, int64(30), snap.Seconds)
		assert.False(t, snap.Warning)
	})
}

func TestWatch_EmitsImmediatelyAndStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch := Watch(ctx, time.Now(), 60, 0, time.Hour)

	select {
	case snap, ok := <-ch:
		assert.True(t, ok)
		assert.False(t, snap.Expired)
	case <-time.After(time.Second):
		t.Fatal("expected an immediate snapshot")
	}

	cancel()
	select {
	case _, ok := <-ch:
		assert.False(t, ok, "channel should close after cancel")
	case <-time.After(time.Second):
		t.Fatal("channel did not close after cancel")
	}
}

func TestWatch_ClosesAfterExpiry(t *testing.T) {
	ctx := context.Background()

	// Clock already expired: the immediate snapshot is the last one.
	ch := Watch(ctx, time.Now().Add(-2*time.Hour), 60, 0, 10*time.Millisecond)

	snap, ok := <-ch
	assert.True(t, ok)
	assert.True(t, snap.Expired)

	select {
	case _, ok := <-ch:
		assert.False(t, ok, "channel should close after the expired snapshot")
	case <-time.After(time.Second):
		t.Fatal("channel did not close after expiry")
	}
}
