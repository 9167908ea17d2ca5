package watchdog

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestBiteFiresOnTimeout(t *testing.T) {
	var bitten atomic.Bool
	d := New(
		WithFoodDuration(20*time.Millisecond),
		WithHandFunction(func() { bitten.Store(true) }),
	)
	_ = d

	time.Sleep(100 * time.Millisecond)
	if !bitten.Load() {
		t.Fatal("expected the dog to bite after the food duration elapsed")
	}
}

func TestFeedPreventsBite(t *testing.T) {
	var bitten atomic.Bool
	d := New(
		WithFoodDuration(50*time.Millisecond),
		WithHandFunction(func() { bitten.Store(true) }),
	)

	deadline := time.Now().Add(200 * time.Millisecond)
	for time.Now().Before(deadline) {
		d.Feed()
		time.Sleep(10 * time.Millisecond)
	}

	if bitten.Load() {
		t.Fatal("expected regular feeding to prevent a bite")
	}
}

func TestStopPreventsBite(t *testing.T) {
	var bitten atomic.Bool
	d := New(
		WithFoodDuration(20*time.Millisecond),
		WithHandFunction(func() { bitten.Store(true) }),
	)

	d.Stop()

	time.Sleep(100 * time.Millisecond)
	if bitten.Load() {
		t.Fatal("expected Stop to disarm the timer before it could bite")
	}
}
