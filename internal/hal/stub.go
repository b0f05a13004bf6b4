//go:build !linux

package hal

import (
	"errors"
	"time"
)

var errNotSupported = errors.New("hal: not supported on this platform (requires Linux)")

// RealLED is not available on non-Linux platforms.
type RealLED struct{}

// NewRealLED returns an error on non-Linux platforms.
func NewRealLED(pin int) (*RealLED, error) {
	return nil, errNotSupported
}

// Set is not implemented on non-Linux platforms.
func (l *RealLED) Set(on bool) error { return errNotSupported }

// Close is not implemented on non-Linux platforms.
func (l *RealLED) Close() error { return nil }

// RealBuzzer is not available on non-Linux platforms.
type RealBuzzer struct{}

// NewRealBuzzer returns an error on non-Linux platforms.
func NewRealBuzzer(pin int, period time.Duration) (*RealBuzzer, error) {
	return nil, errNotSupported
}

// SetDuty is not implemented on non-Linux platforms.
func (b *RealBuzzer) SetDuty(duty float64) error { return errNotSupported }

// Close is not implemented on non-Linux platforms.
func (b *RealBuzzer) Close() error { return nil }

// RealAnalog is not available on non-Linux platforms.
type RealAnalog struct{}

// NewRealAnalog returns an error on non-Linux platforms.
func NewRealAnalog(deviceDir string, channel int, fullScale float64) (*RealAnalog, error) {
	return nil, errNotSupported
}

// Read is not implemented on non-Linux platforms.
func (a *RealAnalog) Read() (float64, error) { return 0, errNotSupported }

// Close is not implemented on non-Linux platforms.
func (a *RealAnalog) Close() error { return nil }
