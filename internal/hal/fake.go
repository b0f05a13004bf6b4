package hal

import "errors"

var (
	_ AnalogInput   = (*FakeAnalog)(nil)
	_ PWMOutput     = (*FakePWM)(nil)
	_ DigitalOutput = (*FakeLED)(nil)
)

// FakeAnalog is a test double that returns scripted normalized readings.
type FakeAnalog struct {
	// Samples contains scripted readings to return.
	// Each call to Read() consumes the next sample.
	Samples []float64

	// index tracks current position in Samples
	index int

	// Reads counts how many times Read was called
	Reads int

	// Closed tracks if Close was called
	Closed bool

	// ReadError, if set, will be returned by Read()
	ReadError error
}

// NewFakeAnalog creates a FakeAnalog with the given samples.
func NewFakeAnalog(samples []float64) *FakeAnalog {
	return &FakeAnalog{Samples: samples}
}

// Read returns the next scripted sample.
// If samples are exhausted, returns the last sample repeatedly.
func (f *FakeAnalog) Read() (float64, error) {
	if f.ReadError != nil {
		return 0, f.ReadError
	}

	if len(f.Samples) == 0 {
		return 0, errors.New("no samples configured")
	}

	f.Reads++
	sample := f.Samples[f.index]
	if f.index < len(f.Samples)-1 {
		f.index++
	}

	return sample, nil
}

// Close marks the input as closed.
func (f *FakeAnalog) Close() error {
	f.Closed = true
	return nil
}

// Reset resets the input to the beginning of samples.
func (f *FakeAnalog) Reset() {
	f.index = 0
	f.Reads = 0
	f.Closed = false
}

// FakePWM records duty cycle changes for test assertions.
type FakePWM struct {
	// Duty is the most recently set duty cycle.
	Duty float64

	// History contains every duty cycle that was set, in order.
	History []float64

	// SetError, if set, will be returned by SetDuty.
	SetError error

	// Closed tracks if Close was called.
	Closed bool
}

// NewFakePWM creates a FakePWM for testing.
func NewFakePWM() *FakePWM {
	return &FakePWM{}
}

// SetDuty records the duty cycle.
func (f *FakePWM) SetDuty(duty float64) error {
	if f.SetError != nil {
		return f.SetError
	}
	f.Duty = duty
	f.History = append(f.History, duty)
	return nil
}

// Close marks the output as closed.
func (f *FakePWM) Close() error {
	f.Closed = true
	return nil
}

// FakeLED records digital output states for test assertions.
type FakeLED struct {
	// On is the most recently set state.
	On bool

	// History contains every state that was set, in order.
	History []bool

	// SetError, if set, will be returned by Set.
	SetError error

	// Closed tracks if Close was called.
	Closed bool
}

// NewFakeLED creates a FakeLED for testing.
func NewFakeLED() *FakeLED {
	return &FakeLED{}
}

// Set records the state.
func (f *FakeLED) Set(on bool) error {
	if f.SetError != nil {
		return f.SetError
	}
	f.On = on
	f.History = append(f.History, on)
	return nil
}

// Close marks the output as closed.
func (f *FakeLED) Close() error {
	f.Closed = true
	return nil
}
