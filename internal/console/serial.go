package console

import (
	"fmt"
	"time"

	"go.bug.st/serial"
)

// DefaultBaudRate is the console line rate.
const DefaultBaudRate = 115200

// pollTimeout bounds a Poll read so it returns quickly when no byte is
// pending.
const pollTimeout = time.Millisecond

// SerialTransport is a Transport over a real serial port.
type SerialTransport struct {
	port serial.Port
}

var _ Transport = (*SerialTransport)(nil)

// OpenSerial opens the given serial device at the given baud rate.
func OpenSerial(device string, baudRate int) (*SerialTransport, error) {
	if baudRate == 0 {
		baudRate = DefaultBaudRate
	}

	mode := &serial.Mode{BaudRate: baudRate}
	port, err := serial.Open(device, mode)
	if err != nil {
		return nil, fmt.Errorf("open serial port %s: %w", device, err)
	}

	if err := port.SetReadTimeout(pollTimeout); err != nil {
		port.Close()
		return nil, fmt.Errorf("set read timeout: %w", err)
	}

	return &SerialTransport{port: port}, nil
}

// Poll returns the next pending input byte, if any. The short read timeout
// makes this effectively non-blocking.
func (t *SerialTransport) Poll() (byte, bool, error) {
	buf := make([]byte, 1)
	n, err := t.port.Read(buf)
	if err != nil {
		return 0, false, fmt.Errorf("serial read: %w", err)
	}
	if n == 0 {
		return 0, false, nil
	}
	return buf[0], true, nil
}

// WriteString sends s on the port.
func (t *SerialTransport) WriteString(s string) error {
	if _, err := t.port.Write([]byte(s)); err != nil {
		return fmt.Errorf("serial write: %w", err)
	}
	return nil
}

// Close closes the port.
func (t *SerialTransport) Close() error {
	return t.port.Close()
}
