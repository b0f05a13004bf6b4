// Package logic contains pure business logic for alarm state tracking.
// This package has NO external dependencies (no GPIO, serial, OS, or
// time.Sleep). Time is always injectable via time.Time parameters.
package logic

import "time"

// EventType represents an alarm state transition event.
type EventType string

const (
	EventGasDetected  EventType = "GAS_DETECTED"
	EventGasCleared   EventType = "GAS_CLEARED"
	EventTempExceeded EventType = "TEMP_EXCEEDED"
	EventTempCleared  EventType = "TEMP_CLEARED"
)

// Reading is one iteration's denoised sensor sample set.
type Reading struct {
	Gas           float64 // normalized gas sensor reading
	TempC         float64 // derived LM35 temperature in Celsius
	Potentiometer float64 // normalized potentiometer reading
	Time          time.Time
}

// AlarmState holds the two independent alarm axes.
type AlarmState struct {
	GasDetected  bool
	TempExceeded bool
}

// Any reports whether either alarm axis is active.
func (s AlarmState) Any() bool {
	return s.GasDetected || s.TempExceeded
}

// Event represents an edge-triggered alarm transition.
type Event struct {
	Timestamp time.Time
	Type      EventType
	State     AlarmState // alarm state after the transition
}

// EventCounts tracks the number of each transition since startup.
type EventCounts struct {
	GasOn   int
	GasOff  int
	TempOn  int
	TempOff int
}
