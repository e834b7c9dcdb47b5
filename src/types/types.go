// Package types holds the value types shared between the car controller and
// its callers.
package types

// Direction is the car's travel direction.
type Direction int

const (
	DirDown Direction = -1
	DirIdle Direction = 0
	DirUp   Direction = 1
)

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	default:
		return "idle"
	}
}

// HallDir is the direction requested by a floor-side call. It is a separate
// type so a call can never ask for idle.
type HallDir int

const (
	HallDown HallDir = iota
	HallUp
)

// Direction converts a hall call direction to a travel direction.
func (h HallDir) Direction() Direction {
	if h == HallUp {
		return DirUp
	}
	return DirDown
}

func (h HallDir) String() string {
	if h == HallUp {
		return "up"
	}
	return "down"
}

// DoorState is the car's door position.
type DoorState int

const (
	DoorClosed DoorState = iota
	DoorOpen
)

func (s DoorState) String() string {
	if s == DoorOpen {
		return "open"
	}
	return "closed"
}

// Call is one outstanding floor-side pickup request. Calls are not
// deduplicated; two identical calls both exist until a stop at the floor
// clears them.
type Call struct {
	Floor int
	Dir   HallDir
}
