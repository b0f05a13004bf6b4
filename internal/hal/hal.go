// Package hal provides the board I/O abstraction.
// The real implementations target a Linux board (GPIO character device for
// the digital lines, IIO sysfs for the analog channels).
// The fake implementations allow testing without hardware.
package hal

import "time"

// AnalogInput reads one analog channel.
type AnalogInput interface {
	// Read returns a single-shot normalized reading in [0,1], where 1.0
	// corresponds to the full-scale reference voltage.
	Read() (float64, error)

	// Close releases the channel.
	Close() error
}

// PWMOutput drives a fixed-period PWM pin. The period is configured once
// when the output is created.
type PWMOutput interface {
	// SetDuty sets the fraction of the period the output is high, in [0,1].
	SetDuty(duty float64) error

	// Close stops the output and releases the pin.
	Close() error
}

// DigitalOutput drives a simple on/off pin.
type DigitalOutput interface {
	Set(on bool) error
	Close() error
}

// BuzzerPeriod is the PWM period for the alarm buzzer (500 Hz tone).
const BuzzerPeriod = 2 * time.Millisecond

// Pin definitions (BCM numbering) and IIO channel indices.
const (
	DefaultPinBuzzer = 18
	DefaultPinLED    = 17

	DefaultChannelPotentiometer = 0
	DefaultChannelLM35          = 1
	DefaultChannelGas           = 3
)
