package car

import (
	"errors"
	"log/slog"

	"liftcar/src/config"
	"liftcar/src/types"
)

// OpenDoors opens the doors after one door duration and fulfills requests at
// the current floor. A no-op if the doors are already open. Fails with
// ErrBusy if another timed operation is in flight.
func (c *Car) OpenDoors() error {
	c.mtx.Lock()
	if c.doors == types.DoorOpen {
		c.mtx.Unlock()
		return nil
	}
	if c.busy {
		c.mtx.Unlock()
		return ErrBusy
	}
	c.busy = true
	c.mtx.Unlock()

	c.clk.Sleep(config.DoorDuration)

	c.mtx.Lock()
	c.doors = types.DoorOpen
	c.clearFloorLocked()
	if !c.hasRequestsLocked() {
		c.dir = types.DirIdle
	}
	c.busy = false
	slog.Debug("doors opened", "floor", c.floor, "dir", c.dir)
	c.mtx.Unlock()
	return nil
}

// CloseDoors closes the doors after one door duration and re-evaluates the
// travel direction, since requests may have arrived while parked. A no-op if
// already closed. Fails with ErrBusy if another timed operation is in flight.
func (c *Car) CloseDoors() error {
	c.mtx.Lock()
	if c.doors == types.DoorClosed {
		c.mtx.Unlock()
		return nil
	}
	if c.busy {
		c.mtx.Unlock()
		return ErrBusy
	}
	c.busy = true
	c.mtx.Unlock()

	c.clk.Sleep(config.DoorDuration)

	c.mtx.Lock()
	c.doors = types.DoorClosed
	c.busy = false
	slog.Debug("doors closed", "floor", c.floor)
	c.evaluateDirectionLocked()
	c.mtx.Unlock()
	return nil
}

// MoveOneFloor advances the car one floor in its travel direction after one
// travel duration, then stops and opens the doors if the new floor qualifies.
// At the edge of the served range the car reverses direction instead of
// moving, immediately and without cost. Fails with ErrDoorsOpen if the doors
// are open, ErrBusy if a timed operation is in flight and ErrNoDestination
// if nothing is pending.
func (c *Car) MoveOneFloor() error {
	c.mtx.Lock()
	if c.doors == types.DoorOpen {
		c.mtx.Unlock()
		return ErrDoorsOpen
	}
	if c.busy {
		c.mtx.Unlock()
		return ErrBusy
	}
	if c.dir == types.DirIdle {
		c.evaluateDirectionLocked()
		if c.dir == types.DirIdle {
			c.mtx.Unlock()
			return ErrNoDestination
		}
	}
	next := c.floor + int(c.dir)
	if next < c.minFloor || next > c.maxFloor {
		c.dir = -c.dir
		slog.Debug("reversed at edge", "floor", c.floor, "dir", c.dir)
		c.mtx.Unlock()
		return nil
	}
	c.busy = true
	c.mtx.Unlock()

	c.clk.Sleep(config.TravelDuration)

	c.mtx.Lock()
	c.floor = next
	c.busy = false
	stop := c.shouldStopLocked()
	c.mtx.Unlock()
	slog.Debug("arrived", "floor", next, "stop", stop)

	if stop {
		return c.OpenDoors()
	}
	return nil
}

// StepUntilStop repeatedly moves the car one floor until the doors are open,
// the car goes idle, or maxSteps moves have been made. The bound is a safety
// valve against request patterns that keep the car bouncing between the edge
// floors, not a termination proof.
func (c *Car) StepUntilStop(maxSteps int) error {
	for i := 0; i < maxSteps; i++ {
		c.mtx.Lock()
		done := c.doors == types.DoorOpen || c.dir == types.DirIdle
		c.mtx.Unlock()
		if done {
			return nil
		}
		if err := c.MoveOneFloor(); err != nil {
			if errors.Is(err, ErrNoDestination) {
				return nil
			}
			return err
		}
	}
	return nil
}

// openDoorsDetached starts a door-open cycle without blocking the caller,
// used when a request resolves to the floor the car is already at. The
// outcome is observable through the door state; a failure only means another
// operation already owns the car.
func (c *Car) openDoorsDetached() {
	go func() {
		if err := c.OpenDoors(); err != nil {
			slog.Debug("detached door open skipped", "err", err)
		}
	}()
}
