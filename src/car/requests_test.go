package car

import (
	"slices"
	"testing"

	"liftcar/src/types"
)

func TestNearestRequestPicksMinimumDistance(t *testing.T) {
	c, _ := newTestCar(t, 1, 9, 5)
	c.panel = []int{2, 8}
	c.calls = []types.Call{{Floor: 6, Dir: types.HallDown}}

	target, ok := c.nearestRequestLocked()
	if !ok || target != 6 {
		t.Errorf("nearest = %d, %v; want 6, true", target, ok)
	}
}

func TestNearestRequestTieBreaksOnEncounterOrder(t *testing.T) {
	// Panel floors are scanned in ascending order before calls, so an
	// equidistant pair resolves to the lower panel floor.
	c, _ := newTestCar(t, 1, 9, 5)
	c.panel = []int{3, 7}
	if target, ok := c.nearestRequestLocked(); !ok || target != 3 {
		t.Errorf("panel tie: nearest = %d, %v; want 3, true", target, ok)
	}

	// Calls tie-break by insertion order.
	c.panel = nil
	c.calls = []types.Call{
		{Floor: 7, Dir: types.HallUp},
		{Floor: 3, Dir: types.HallDown},
	}
	if target, ok := c.nearestRequestLocked(); !ok || target != 7 {
		t.Errorf("call tie: nearest = %d, %v; want 7, true", target, ok)
	}

	// A panel floor at the same distance as an earlier-inserted call still
	// wins, since panel floors are considered first.
	c.panel = []int{3}
	c.calls = []types.Call{{Floor: 7, Dir: types.HallUp}}
	if target, ok := c.nearestRequestLocked(); !ok || target != 3 {
		t.Errorf("panel-vs-call tie: nearest = %d, %v; want 3, true", target, ok)
	}
}

func TestNearestRequestEmptyStore(t *testing.T) {
	c, _ := newTestCar(t, 1, 9, 5)
	if _, ok := c.nearestRequestLocked(); ok {
		t.Error("nearest reported a target with no pending requests")
	}
}

func TestShouldStopOnPanelRequest(t *testing.T) {
	c, _ := newTestCar(t, 1, 9, 4)
	c.panel = []int{4}
	c.dir = types.DirUp
	if !c.shouldStopLocked() {
		t.Error("no stop for a panel request at the current floor")
	}
}

func TestShouldStopMatchesCallDirection(t *testing.T) {
	c, _ := newTestCar(t, 1, 9, 4)
	c.calls = []types.Call{{Floor: 4, Dir: types.HallDown}}

	c.dir = types.DirUp
	if c.shouldStopLocked() {
		t.Error("stopped for an opposite-direction call while passing")
	}
	c.dir = types.DirDown
	if !c.shouldStopLocked() {
		t.Error("no stop for a matching-direction call")
	}
	c.dir = types.DirIdle
	if !c.shouldStopLocked() {
		t.Error("no stop for a call while idle")
	}
}

func TestShouldStopIgnoresOtherFloors(t *testing.T) {
	c, _ := newTestCar(t, 1, 9, 4)
	c.panel = []int{5}
	c.calls = []types.Call{{Floor: 3, Dir: types.HallUp}}
	c.dir = types.DirUp
	if c.shouldStopLocked() {
		t.Error("stopped with no request at the current floor")
	}
}

func TestClearFloorRemovesPanelAndEveryCall(t *testing.T) {
	c, _ := newTestCar(t, 1, 9, 4)
	c.panel = []int{2, 4, 6}
	c.calls = []types.Call{
		{Floor: 4, Dir: types.HallUp},
		{Floor: 5, Dir: types.HallDown},
		{Floor: 4, Dir: types.HallDown},
	}

	c.clearFloorLocked()

	if !slices.Equal(c.panel, []int{2, 6}) {
		t.Errorf("panel = %v, want [2 6]", c.panel)
	}
	want := []types.Call{{Floor: 5, Dir: types.HallDown}}
	if !slices.Equal(c.calls, want) {
		t.Errorf("calls = %v, want %v", c.calls, want)
	}
}
