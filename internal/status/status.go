// Package status provides a thread-safe snapshot tracker for the monitor.
// The control loop updates it every iteration; the shutdown summary and the
// one-shot readings mode read from it.
package status

import (
	"sync"
	"time"

	"github.com/sweeney/enviro-monitor/internal/logic"
)

// Config contains monitor configuration for display.
type Config struct {
	PollMs         int64
	ReportMs       int64
	GasThreshold   float64
	TempThresholdC float64
	SerialDevice   string
	BaudRate       int
}

// Snapshot is a point-in-time view of monitor state.
// It is a value type — safe to use after the lock is released.
type Snapshot struct {
	Reading   logic.Reading
	Alarms    logic.AlarmState
	Counts    logic.EventCounts
	StartTime time.Time
	Now       time.Time
	Config    Config
}

// Uptime returns the duration since the monitor started.
func (s Snapshot) Uptime() time.Duration {
	return s.Now.Sub(s.StartTime)
}

// Tracker holds mutable monitor state behind an RWMutex.
type Tracker struct {
	mu   sync.RWMutex
	snap Snapshot
}

// NewTracker creates a Tracker with the given start time and config.
func NewTracker(startTime time.Time, cfg Config) *Tracker {
	return &Tracker{
		snap: Snapshot{
			StartTime: startTime,
			Config:    cfg,
		},
	}
}

// Update sets the latest reading, alarm state, and transition counts.
// Called from the control loop on every iteration.
func (t *Tracker) Update(r logic.Reading, alarms logic.AlarmState, counts logic.EventCounts) {
	t.mu.Lock()
	t.snap.Reading = r
	t.snap.Alarms = alarms
	t.snap.Counts = counts
	t.mu.Unlock()
}

// Snapshot returns a point-in-time copy of the monitor state.
// The Now field is set to the current time at the moment of the call.
func (t *Tracker) Snapshot() Snapshot {
	t.mu.RLock()
	s := t.snap
	t.mu.RUnlock()
	s.Now = time.Now()
	return s
}
