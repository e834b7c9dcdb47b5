package config

import "time"

const (
	// TimeUnit is the base simulated duration. Door operations take one
	// unit, floor-to-floor travel takes three.
	TimeUnit       = 100 * time.Millisecond
	DoorDuration   = 1 * TimeUnit
	TravelDuration = 3 * TimeUnit

	// DefaultMaxSteps bounds StepUntilStop against request patterns that
	// keep the car oscillating between the edge floors.
	DefaultMaxSteps = 64
)

// Demo binary defaults.
const (
	DefaultMinFloor   = 1
	DefaultMaxFloor   = 4
	DefaultStartFloor = 1
)
