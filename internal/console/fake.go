package console

var _ Transport = (*FakeTransport)(nil)

// FakeTransport is a test double with scripted input bytes and captured
// output.
type FakeTransport struct {
	// Inputs contains scripted Poll results. A zero byte means "no byte
	// pending" for that poll. Once exhausted, Poll reports no byte pending.
	Inputs []byte

	// index tracks current position in Inputs
	index int

	// Writes contains every string written, in order.
	Writes []string

	// PollError, if set, will be returned by Poll.
	PollError error

	// WriteError, if set, will be returned by WriteString.
	WriteError error

	// Closed tracks if Close was called.
	Closed bool
}

// NewFakeTransport creates a FakeTransport with the given scripted inputs.
func NewFakeTransport(inputs []byte) *FakeTransport {
	return &FakeTransport{Inputs: inputs}
}

// Poll returns the next scripted byte, or no byte once the script is
// exhausted.
func (f *FakeTransport) Poll() (byte, bool, error) {
	if f.PollError != nil {
		return 0, false, f.PollError
	}
	if f.index >= len(f.Inputs) {
		return 0, false, nil
	}
	b := f.Inputs[f.index]
	f.index++
	if b == 0 {
		return 0, false, nil
	}
	return b, true, nil
}

// WriteString records the output.
func (f *FakeTransport) WriteString(s string) error {
	if f.WriteError != nil {
		return f.WriteError
	}
	f.Writes = append(f.Writes, s)
	return nil
}

// Close marks the transport as closed.
func (f *FakeTransport) Close() error {
	f.Closed = true
	return nil
}

// Output returns everything written so far as one string.
func (f *FakeTransport) Output() string {
	var out string
	for _, w := range f.Writes {
		out += w
	}
	return out
}
