package car

import (
	"errors"
	"fmt"
)

var (
	// ErrBusy is returned when a timed operation is requested while
	// another one is still in flight.
	ErrBusy = errors.New("another timed operation is in flight")
	// ErrDoorsOpen is returned when a move is requested with open doors.
	ErrDoorsOpen = errors.New("cannot move with doors open")
	// ErrNoDestination is returned when a move is requested and direction
	// evaluation finds nothing pending.
	ErrNoDestination = errors.New("no pending requests to serve")
)

// OutOfRangeError reports a requested floor outside the car's served range.
type OutOfRangeError struct {
	Floor    int
	Min, Max int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("floor %d outside served range [%d, %d]", e.Floor, e.Min, e.Max)
}

// ConstructionError reports invalid floor bounds or start floor passed to New.
type ConstructionError struct {
	Min, Max, Start int
	Reason          string
}

func (e *ConstructionError) Error() string {
	return fmt.Sprintf("car(min=%d, max=%d, start=%d): %s", e.Min, e.Max, e.Start, e.Reason)
}
