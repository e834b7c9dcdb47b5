package clock

import (
	"testing"
	"time"
)

func TestFakeClockAccumulates(t *testing.T) {
	clk := NewFake()
	start := time.Now()
	clk.Sleep(3 * time.Second)
	clk.Sleep(time.Second)
	if time.Since(start) > time.Second {
		t.Fatal("fake clock slept on the wall clock")
	}
	if got := clk.Elapsed(); got != 4*time.Second {
		t.Errorf("elapsed = %v, want 4s", got)
	}
	if got := clk.Sleeps(); got != 2 {
		t.Errorf("sleeps = %d, want 2", got)
	}
}

func TestSystemClockSleeps(t *testing.T) {
	start := time.Now()
	SystemClock{}.Sleep(5 * time.Millisecond)
	if elapsed := time.Since(start); elapsed < 5*time.Millisecond {
		t.Errorf("slept %v, want at least 5ms", elapsed)
	}
}
