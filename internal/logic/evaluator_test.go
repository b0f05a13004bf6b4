package logic

import (
	"testing"
	"time"
)

func newTestEvaluator(start time.Time) *Evaluator {
	return NewEvaluator(GasThreshold, TempThresholdC, start)
}

func TestNewEvaluator(t *testing.T) {
	start := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	e := newTestEvaluator(start)
	if e == nil {
		t.Fatal("NewEvaluator returned nil")
	}
	if e.State().Any() {
		t.Error("new evaluator should have no active alarms")
	}
}

func TestGasTransitionSequence(t *testing.T) {
	start := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	e := newTestEvaluator(start)

	gas := []float64{0.3, 0.6, 0.6, 0.4}
	var fired []EventType

	for i, g := range gas {
		now := start.Add(time.Duration(i) * 200 * time.Millisecond)
		events := e.Process(Reading{Gas: g, TempC: 20.0, Time: now})
		for _, ev := range events {
			fired = append(fired, ev.Type)
		}
	}

	if len(fired) != 2 {
		t.Fatalf("expected 2 events, got %d: %v", len(fired), fired)
	}
	if fired[0] != EventGasDetected {
		t.Errorf("event 0: expected GAS_DETECTED, got %s", fired[0])
	}
	if fired[1] != EventGasCleared {
		t.Errorf("event 1: expected GAS_CLEARED, got %s", fired[1])
	}
}

func TestNoEventsForStableState(t *testing.T) {
	start := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	e := newTestEvaluator(start)

	for i := 0; i < 10; i++ {
		now := start.Add(time.Duration(i) * 200 * time.Millisecond)
		events := e.Process(Reading{Gas: 0.2, TempC: 20.0, Time: now})
		if len(events) != 0 {
			t.Errorf("iteration %d: expected no events for stable state, got %d", i, len(events))
		}
	}
}

func TestRepeatedActiveFramesFireOnce(t *testing.T) {
	start := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	e := newTestEvaluator(start)

	total := 0
	for i := 0; i < 5; i++ {
		events := e.Process(Reading{Gas: 0.8, TempC: 20.0, Time: start.Add(time.Duration(i) * time.Second)})
		total += len(events)
	}

	if total != 1 {
		t.Errorf("expected exactly 1 event over repeated active frames, got %d", total)
	}
}

func TestTemperatureThresholdBoundary(t *testing.T) {
	start := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	// Exactly at the threshold: inactive (strict >).
	e := newTestEvaluator(start)
	events := e.Process(Reading{Gas: 0.0, TempC: 24.0, Time: start})
	if len(events) != 0 {
		t.Errorf("expected no events at exactly 24.0, got %d", len(events))
	}
	if e.State().TempExceeded {
		t.Error("TempExceeded should be false at exactly 24.0")
	}

	// Just above: active.
	e = newTestEvaluator(start)
	events = e.Process(Reading{Gas: 0.0, TempC: 24.01, Time: start})
	if len(events) != 1 {
		t.Fatalf("expected 1 event at 24.01, got %d", len(events))
	}
	if events[0].Type != EventTempExceeded {
		t.Errorf("expected TEMP_EXCEEDED, got %s", events[0].Type)
	}
	if !e.State().TempExceeded {
		t.Error("TempExceeded should be true at 24.01")
	}
}

func TestGasThresholdBoundary(t *testing.T) {
	start := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	e := newTestEvaluator(start)

	e.Process(Reading{Gas: 0.5, TempC: 20.0, Time: start})
	if e.State().GasDetected {
		t.Error("GasDetected should be false at exactly 0.5")
	}
}

func TestAxesEvaluatedIndependently(t *testing.T) {
	start := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	e := newTestEvaluator(start)

	// Both cross the threshold on the same sample: gas event first.
	events := e.Process(Reading{Gas: 0.9, TempC: 30.0, Time: start})
	if len(events) != 2 {
		t.Fatalf("expected 2 events for simultaneous transitions, got %d", len(events))
	}
	if events[0].Type != EventGasDetected {
		t.Errorf("expected first event GAS_DETECTED, got %s", events[0].Type)
	}
	if events[1].Type != EventTempExceeded {
		t.Errorf("expected second event TEMP_EXCEEDED, got %s", events[1].Type)
	}

	// Only gas drops; temperature stays active.
	events = e.Process(Reading{Gas: 0.1, TempC: 30.0, Time: start.Add(time.Second)})
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	if events[0].Type != EventGasCleared {
		t.Errorf("expected GAS_CLEARED, got %s", events[0].Type)
	}
	if !events[0].State.TempExceeded {
		t.Error("event state should still show TempExceeded")
	}
}

func TestEventStateReflectsTransition(t *testing.T) {
	start := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	e := newTestEvaluator(start)

	events := e.Process(Reading{Gas: 0.7, TempC: 20.0, Time: start})
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	if !events[0].State.GasDetected {
		t.Error("event state should show GasDetected")
	}
	if events[0].State.TempExceeded {
		t.Error("event state should not show TempExceeded")
	}
	if !events[0].Timestamp.Equal(start) {
		t.Errorf("unexpected timestamp: %v", events[0].Timestamp)
	}
}

func TestEventCountsAccumulate(t *testing.T) {
	start := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	e := newTestEvaluator(start)

	readings := []Reading{
		{Gas: 0.8, TempC: 20.0}, // gas on
		{Gas: 0.2, TempC: 30.0}, // gas off, temp on
		{Gas: 0.2, TempC: 20.0}, // temp off
		{Gas: 0.8, TempC: 20.0}, // gas on again
	}
	for i, r := range readings {
		r.Time = start.Add(time.Duration(i) * time.Second)
		e.Process(r)
	}

	c := e.Counts()
	if c.GasOn != 2 {
		t.Errorf("expected GasOn=2, got %d", c.GasOn)
	}
	if c.GasOff != 1 {
		t.Errorf("expected GasOff=1, got %d", c.GasOff)
	}
	if c.TempOn != 1 {
		t.Errorf("expected TempOn=1, got %d", c.TempOn)
	}
	if c.TempOff != 1 {
		t.Errorf("expected TempOff=1, got %d", c.TempOff)
	}
}

func TestCheckReportGate(t *testing.T) {
	start := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	e := newTestEvaluator(start)

	// Simulated ticks at 0, 400, 900, 1050ms relative to start.
	ticks := []time.Duration{0, 400 * time.Millisecond, 900 * time.Millisecond, 1050 * time.Millisecond}
	want := []bool{false, false, false, true}

	for i, tick := range ticks {
		got := e.CheckReport(start.Add(tick), ReportInterval)
		if got != want[i] {
			t.Errorf("tick %v: expected %v, got %v", tick, want[i], got)
		}
	}
}

func TestCheckReportExactInterval(t *testing.T) {
	start := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	e := newTestEvaluator(start)

	// Exactly at the interval fires (>=, unlike the alarm thresholds).
	if !e.CheckReport(start.Add(time.Second), ReportInterval) {
		t.Error("should fire at exactly 1000ms")
	}
}

func TestCheckReportResetsReference(t *testing.T) {
	start := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	e := newTestEvaluator(start)

	t1 := start.Add(1300 * time.Millisecond)
	if !e.CheckReport(t1, ReportInterval) {
		t.Fatal("first report should fire")
	}

	// 900ms after the first report: not yet.
	if e.CheckReport(t1.Add(900*time.Millisecond), ReportInterval) {
		t.Error("should not fire 900ms after previous report")
	}

	// Well past the interval from the first report: fires again.
	if !e.CheckReport(t1.Add(1900*time.Millisecond), ReportInterval) {
		t.Error("should fire 1900ms after previous report")
	}
}
