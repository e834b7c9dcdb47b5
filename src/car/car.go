// Package car implements the control core of a single elevator car: the
// request store, the motion/door state machine and the dispatch policy.
package car

import (
	"log/slog"
	"slices"
	"sync"

	"liftcar/src/clock"
	"liftcar/src/types"

	"github.com/tiendc/go-deepcopy"
)

// Car is the controller owning all elevator state. All mutation goes through
// its methods; timed operations are serialized by the busy flag and fail with
// ErrBusy instead of queuing.
type Car struct {
	mtx sync.Mutex
	clk clock.Clock

	minFloor int
	maxFloor int

	floor int
	dir   types.Direction
	doors types.DoorState
	busy  bool

	panel []int        // pending panel floors, sorted ascending, no duplicates
	calls []types.Call // pending hall calls in insertion order
}

// Status is a point-in-time copy of the car's observable state.
type Status struct {
	Floor int
	Dir   types.Direction
	Doors types.DoorState
	Busy  bool
	Panel []int
	Calls []types.Call
}

// New validates the floor range and start position and returns an idle car
// with closed doors. A nil clk selects the system clock.
func New(minFloor, maxFloor, startFloor int, clk clock.Clock) (*Car, error) {
	if minFloor > maxFloor {
		return nil, &ConstructionError{Min: minFloor, Max: maxFloor, Start: startFloor,
			Reason: "min floor above max floor"}
	}
	if startFloor < minFloor || startFloor > maxFloor {
		return nil, &ConstructionError{Min: minFloor, Max: maxFloor, Start: startFloor,
			Reason: "start floor outside served range"}
	}
	if clk == nil {
		clk = clock.SystemClock{}
	}
	return &Car{
		clk:      clk,
		minFloor: minFloor,
		maxFloor: maxFloor,
		floor:    startFloor,
		dir:      types.DirIdle,
		doors:    types.DoorClosed,
	}, nil
}

// PressButton registers an in-car panel request for floor. Re-pressing a
// pending floor is a no-op. Triggers direction evaluation if the car is idle.
func (c *Car) PressButton(floor int) error {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	if floor < c.minFloor || floor > c.maxFloor {
		return &OutOfRangeError{Floor: floor, Min: c.minFloor, Max: c.maxFloor}
	}
	if i, ok := slices.BinarySearch(c.panel, floor); !ok {
		c.panel = slices.Insert(c.panel, i, floor)
	}
	slog.Debug("panel press", "floor", floor)
	c.evaluateDirectionLocked()
	return nil
}

// CallFrom registers a floor-side call. Calls are not deduplicated.
// Triggers direction evaluation if the car is idle.
func (c *Car) CallFrom(floor int, dir types.HallDir) error {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	if floor < c.minFloor || floor > c.maxFloor {
		return &OutOfRangeError{Floor: floor, Min: c.minFloor, Max: c.maxFloor}
	}
	c.calls = append(c.calls, types.Call{Floor: floor, Dir: dir})
	slog.Debug("hall call", "floor", floor, "dir", dir)
	c.evaluateDirectionLocked()
	return nil
}

// Floor is the floor the car is at, or was at last if travelling.
func (c *Car) Floor() int {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	return c.floor
}

func (c *Car) Direction() types.Direction {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	return c.dir
}

func (c *Car) Doors() types.DoorState {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	return c.doors
}

// PendingPanelRequests returns the outstanding panel floors in ascending
// order. The returned slice is a copy.
func (c *Car) PendingPanelRequests() []int {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	return slices.Clone(c.panel)
}

// PendingCalls returns a deep copy of the outstanding hall calls in
// insertion order.
func (c *Car) PendingCalls() []types.Call {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	out := make([]types.Call, 0, len(c.calls))
	if err := deepcopy.Copy(&out, &c.calls); err != nil {
		panic(err)
	}
	return out
}

// Status returns a deep copy of the full observable state, so callers can
// never alias controller-owned memory.
func (c *Car) Status() Status {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	src := Status{
		Floor: c.floor,
		Dir:   c.dir,
		Doors: c.doors,
		Busy:  c.busy,
		Panel: c.panel,
		Calls: c.calls,
	}
	out := new(Status)
	if err := deepcopy.Copy(out, &src); err != nil {
		panic(err)
	}
	return *out
}
