// Package clock abstracts the time source so the car's timed transitions can
// run against a fake in tests instead of the wall clock.
package clock

import (
	"sync"
	"time"
)

// Clock is the sleep dependency injected into the car controller.
type Clock interface {
	Sleep(d time.Duration)
}

// SystemClock sleeps on the wall clock.
type SystemClock struct{}

func (SystemClock) Sleep(d time.Duration) {
	time.Sleep(d)
}

// FakeClock returns from Sleep immediately and accumulates the durations it
// was asked to sleep, so tests can assert simulated latency without waiting.
type FakeClock struct {
	mtx     sync.Mutex
	elapsed time.Duration
	sleeps  int
}

func NewFake() *FakeClock {
	return &FakeClock{}
}

func (c *FakeClock) Sleep(d time.Duration) {
	c.mtx.Lock()
	c.elapsed += d
	c.sleeps++
	c.mtx.Unlock()
}

// Elapsed is the total simulated time slept so far.
func (c *FakeClock) Elapsed() time.Duration {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	return c.elapsed
}

// Sleeps is the number of timed operations that have suspended on this clock.
func (c *FakeClock) Sleeps() int {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	return c.sleeps
}
