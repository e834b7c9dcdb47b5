package car

import (
	"log/slog"
	"slices"

	"liftcar/src/types"
)

// evaluateDirectionLocked re-runs the idle dispatch policy: pick the pending
// floor nearest to the car and point the car at it. If the nearest target is
// the current floor the car stays idle and a detached door-open cycle is
// started. A no-op unless the car is idle. Caller holds mtx.
func (c *Car) evaluateDirectionLocked() {
	if c.dir != types.DirIdle {
		return
	}
	target, ok := c.nearestRequestLocked()
	if !ok {
		return
	}
	switch {
	case target == c.floor:
		c.openDoorsDetached()
	case target > c.floor:
		c.dir = types.DirUp
	default:
		c.dir = types.DirDown
	}
	slog.Debug("direction evaluated", "target", target, "dir", c.dir)
}

// nearestRequestLocked returns the pending floor with minimum distance from
// the car. Ties go to the floor seen first: panel floors in ascending order,
// then calls in insertion order. A call's requested direction does not bias
// target selection.
func (c *Car) nearestRequestLocked() (int, bool) {
	best, found := 0, false
	consider := func(f int) {
		if !found || abs(f-c.floor) < abs(best-c.floor) {
			best, found = f, true
		}
	}
	for _, f := range c.panel {
		consider(f)
	}
	for _, call := range c.calls {
		consider(call.Floor)
	}
	return best, found
}

// shouldStopLocked decides whether the floor just arrived at gets a stop:
// always for a panel request, and for a hall call only when the call's
// direction matches the travel direction. Calls pointing the opposite way do
// not stop a passing car.
func (c *Car) shouldStopLocked() bool {
	if _, ok := slices.BinarySearch(c.panel, c.floor); ok {
		return true
	}
	for _, call := range c.calls {
		if call.Floor != c.floor {
			continue
		}
		if c.dir == types.DirIdle || call.Dir.Direction() == c.dir {
			return true
		}
	}
	return false
}

// clearFloorLocked fulfills requests at the current floor: the panel entry if
// present and every call there, whichever direction it asked for.
func (c *Car) clearFloorLocked() {
	if i, ok := slices.BinarySearch(c.panel, c.floor); ok {
		c.panel = slices.Delete(c.panel, i, i+1)
	}
	c.calls = slices.DeleteFunc(c.calls, func(call types.Call) bool {
		return call.Floor == c.floor
	})
}

func (c *Car) hasRequestsLocked() bool {
	return len(c.panel) > 0 || len(c.calls) > 0
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
