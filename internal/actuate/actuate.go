// Package actuate maps the combined alarm state onto the buzzer and LED.
package actuate

import (
	"fmt"

	"github.com/sweeney/enviro-monitor/internal/console"
	"github.com/sweeney/enviro-monitor/internal/hal"
	"github.com/sweeney/enviro-monitor/internal/logic"
)

// AlarmDuty is the buzzer duty cycle while any alarm is active.
const AlarmDuty = 0.5

// Driver owns the buzzer and LED outputs and the LED toggle state.
type Driver struct {
	buzzer hal.PWMOutput
	led    hal.DigitalOutput
	ledOn  bool
}

// New creates a driver over the given outputs.
func New(buzzer hal.PWMOutput, led hal.DigitalOutput) *Driver {
	return &Driver{buzzer: buzzer, led: led}
}

// Apply drives the outputs for one iteration and returns the alarm-source
// lines to emit. While any alarm is active the buzzer runs at AlarmDuty and
// the LED is inverted on every call, blinking at the loop frequency. The
// returned lines repeat on every active iteration; they are not
// edge-triggered. With no alarm active the buzzer is silenced and the LED
// is forced off, not merely toggled.
func (d *Driver) Apply(state logic.AlarmState) ([]string, error) {
	if !state.Any() {
		if err := d.buzzer.SetDuty(0); err != nil {
			return nil, fmt.Errorf("silence buzzer: %w", err)
		}
		d.ledOn = false
		if err := d.led.Set(false); err != nil {
			return nil, fmt.Errorf("clear led: %w", err)
		}
		return nil, nil
	}

	if err := d.buzzer.SetDuty(AlarmDuty); err != nil {
		return nil, fmt.Errorf("sound buzzer: %w", err)
	}
	d.ledOn = !d.ledOn
	if err := d.led.Set(d.ledOn); err != nil {
		return nil, fmt.Errorf("toggle led: %w", err)
	}

	var lines []string
	if state.GasDetected {
		lines = append(lines, console.GasAlarmLine)
	}
	if state.TempExceeded {
		lines = append(lines, console.TempAlarmLine)
	}
	return lines, nil
}

// Silence forces both outputs off. Used on shutdown.
func (d *Driver) Silence() error {
	_, err := d.Apply(logic.AlarmState{})
	return err
}
