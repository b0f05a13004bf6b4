package logic

import "time"

// Default thresholds and report cadence.
const (
	// GasThreshold is the normalized reading above which gas counts as
	// detected. The boundary value itself is inactive (strict >).
	GasThreshold = 0.5

	// TempThresholdC is the Celsius temperature above which the
	// temperature alarm is active. Strict >, same as the gas axis.
	TempThresholdC = 24.0

	// ReportInterval is the minimum time between periodic status lines.
	ReportInterval = time.Second
)

// Evaluator tracks the two alarm axes and detects threshold transitions.
// Each axis is evaluated independently on every sample; a transition event
// is emitted exactly once on entry and once on exit.
type Evaluator struct {
	gasThreshold   float64
	tempThresholdC float64

	state AlarmState
	// last mirrors state after every Process call; it is compared against
	// the freshly evaluated state to detect edges.
	last AlarmState

	counts     EventCounts
	lastReport time.Time
}

// NewEvaluator creates an evaluator with the given thresholds. startTime
// seeds the periodic report reference, so the first status line is due one
// ReportInterval after startup.
func NewEvaluator(gasThreshold, tempThresholdC float64, startTime time.Time) *Evaluator {
	return &Evaluator{
		gasThreshold:   gasThreshold,
		tempThresholdC: tempThresholdC,
		lastReport:     startTime,
	}
}

// Process evaluates one reading against the thresholds and returns events
// for any transitions. Repeated frames on the same side of a threshold
// produce no events. If both axes transition on the same sample, the gas
// event is ordered first.
func (e *Evaluator) Process(r Reading) []Event {
	next := AlarmState{
		GasDetected:  r.Gas > e.gasThreshold,
		TempExceeded: r.TempC > e.tempThresholdC,
	}

	var events []Event

	if next.GasDetected != e.last.GasDetected {
		typ := EventGasCleared
		if next.GasDetected {
			typ = EventGasDetected
		}
		events = append(events, Event{Timestamp: r.Time, Type: typ, State: next})
	}

	if next.TempExceeded != e.last.TempExceeded {
		typ := EventTempCleared
		if next.TempExceeded {
			typ = EventTempExceeded
		}
		events = append(events, Event{Timestamp: r.Time, Type: typ, State: next})
	}

	for _, ev := range events {
		switch ev.Type {
		case EventGasDetected:
			e.counts.GasOn++
		case EventGasCleared:
			e.counts.GasOff++
		case EventTempExceeded:
			e.counts.TempOn++
		case EventTempCleared:
			e.counts.TempOff++
		}
	}

	e.state = next
	e.last = next

	return events
}

// State returns the current alarm state.
func (e *Evaluator) State() AlarmState {
	return e.state
}

// Counts returns the accumulated transition counts.
func (e *Evaluator) Counts() EventCounts {
	return e.counts
}

// CheckReport returns true when at least interval has elapsed since the
// last status line, resetting the reference to now. The comparison is >=,
// unlike the strict > used for alarm thresholds. The cadence therefore
// drifts by the loop's own iteration latency; this is a resetting-window
// gate, not a fixed-rate scheduler.
func (e *Evaluator) CheckReport(now time.Time, interval time.Duration) bool {
	if now.Sub(e.lastReport) < interval {
		return false
	}
	e.lastReport = now
	return true
}
