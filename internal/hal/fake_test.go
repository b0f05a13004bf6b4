package hal

import (
	"errors"
	"testing"
)

func TestFakeAnalogRead(t *testing.T) {
	samples := []float64{0.1, 0.5, 0.9}

	f := NewFakeAnalog(samples)

	for i, want := range samples {
		got, err := f.Read()
		if err != nil {
			t.Fatalf("sample %d: unexpected error: %v", i, err)
		}
		if got != want {
			t.Errorf("sample %d: expected %v, got %v", i, want, got)
		}
	}

	// Fourth read should repeat last sample
	got, err := f.Read()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 0.9 {
		t.Errorf("sample 3 (repeat): expected 0.9, got %v", got)
	}

	if f.Reads != 4 {
		t.Errorf("expected 4 reads recorded, got %d", f.Reads)
	}
}

func TestFakeAnalogNoSamples(t *testing.T) {
	f := NewFakeAnalog(nil)

	_, err := f.Read()
	if err == nil {
		t.Error("expected error with no samples")
	}
}

func TestFakeAnalogError(t *testing.T) {
	f := NewFakeAnalog([]float64{0.5})
	f.ReadError = errors.New("simulated error")

	_, err := f.Read()
	if err == nil {
		t.Error("expected error to be returned")
	}
	if err.Error() != "simulated error" {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestFakeAnalogReset(t *testing.T) {
	f := NewFakeAnalog([]float64{0.2, 0.8})

	f.Read()
	f.Reset()

	got, _ := f.Read()
	if got != 0.2 {
		t.Errorf("after reset: expected 0.2, got %v", got)
	}
}

func TestFakePWMRecordsHistory(t *testing.T) {
	f := NewFakePWM()

	f.SetDuty(0.5)
	f.SetDuty(0.0)
	f.SetDuty(0.5)

	if f.Duty != 0.5 {
		t.Errorf("expected current duty 0.5, got %v", f.Duty)
	}
	want := []float64{0.5, 0.0, 0.5}
	if len(f.History) != len(want) {
		t.Fatalf("expected %d entries, got %d", len(want), len(f.History))
	}
	for i := range want {
		if f.History[i] != want[i] {
			t.Errorf("history[%d]: expected %v, got %v", i, want[i], f.History[i])
		}
	}
}

func TestFakePWMError(t *testing.T) {
	f := NewFakePWM()
	f.SetError = errors.New("simulated error")

	if err := f.SetDuty(0.5); err == nil {
		t.Error("expected error to be returned")
	}
	if len(f.History) != 0 {
		t.Error("failed set should not be recorded")
	}
}

func TestFakeLEDRecordsHistory(t *testing.T) {
	f := NewFakeLED()

	f.Set(true)
	f.Set(false)

	if f.On {
		t.Error("expected LED off after last set")
	}
	if len(f.History) != 2 || f.History[0] != true || f.History[1] != false {
		t.Errorf("unexpected history: %v", f.History)
	}
}

func TestFakeClose(t *testing.T) {
	a := NewFakeAnalog([]float64{0.1})
	p := NewFakePWM()
	l := NewFakeLED()

	if err := a.Close(); err != nil || !a.Closed {
		t.Error("analog should be closed after Close()")
	}
	if err := p.Close(); err != nil || !p.Closed {
		t.Error("pwm should be closed after Close()")
	}
	if err := l.Close(); err != nil || !l.Closed {
		t.Error("led should be closed after Close()")
	}
}
