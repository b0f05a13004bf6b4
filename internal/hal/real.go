//go:build linux

package hal

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/warthog618/go-gpiocdev"
)

var (
	_ AnalogInput   = (*RealAnalog)(nil)
	_ PWMOutput     = (*RealBuzzer)(nil)
	_ DigitalOutput = (*RealLED)(nil)
)

// RealLED drives a GPIO output line using the Linux GPIO character device.
type RealLED struct {
	chip *gpiocdev.Chip
	line *gpiocdev.Line
}

// NewRealLED requests the given pin as an output, initially off.
func NewRealLED(pin int) (*RealLED, error) {
	chip, err := gpiocdev.NewChip("gpiochip0")
	if err != nil {
		return nil, fmt.Errorf("open gpio chip: %w", err)
	}

	line, err := chip.RequestLine(pin, gpiocdev.AsOutput(0))
	if err != nil {
		chip.Close()
		return nil, fmt.Errorf("request LED pin %d: %w", pin, err)
	}

	return &RealLED{chip: chip, line: line}, nil
}

// Set drives the line high (on) or low (off).
func (l *RealLED) Set(on bool) error {
	v := 0
	if on {
		v = 1
	}
	if err := l.line.SetValue(v); err != nil {
		return fmt.Errorf("set LED: %w", err)
	}
	return nil
}

// Close drives the line low and releases it.
func (l *RealLED) Close() error {
	var errs []error
	if l.line != nil {
		if err := l.line.SetValue(0); err != nil {
			errs = append(errs, fmt.Errorf("clear LED: %w", err))
		}
		if err := l.line.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close LED line: %w", err))
		}
	}
	if l.chip != nil {
		if err := l.chip.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close chip: %w", err))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("close errors: %v", errs)
	}
	return nil
}

// RealBuzzer drives a GPIO line as a software PWM output with a fixed period.
// A background goroutine toggles the line; SetDuty only updates the duty
// cycle, so calls from the control loop never block on the waveform.
type RealBuzzer struct {
	chip   *gpiocdev.Chip
	line   *gpiocdev.Line
	period time.Duration

	mu   sync.Mutex
	duty float64

	done chan struct{}
	wg   sync.WaitGroup
}

// NewRealBuzzer requests the given pin as an output and starts the PWM
// goroutine with duty cycle 0 (silent).
func NewRealBuzzer(pin int, period time.Duration) (*RealBuzzer, error) {
	chip, err := gpiocdev.NewChip("gpiochip0")
	if err != nil {
		return nil, fmt.Errorf("open gpio chip: %w", err)
	}

	line, err := chip.RequestLine(pin, gpiocdev.AsOutput(0))
	if err != nil {
		chip.Close()
		return nil, fmt.Errorf("request buzzer pin %d: %w", pin, err)
	}

	b := &RealBuzzer{
		chip:   chip,
		line:   line,
		period: period,
		done:   make(chan struct{}),
	}

	b.wg.Add(1)
	go b.run()

	return b, nil
}

// SetDuty sets the fraction of the period the line is high. Values outside
// [0,1] are clamped.
func (b *RealBuzzer) SetDuty(duty float64) error {
	if duty < 0 {
		duty = 0
	}
	if duty > 1 {
		duty = 1
	}
	b.mu.Lock()
	b.duty = duty
	b.mu.Unlock()
	return nil
}

func (b *RealBuzzer) run() {
	defer b.wg.Done()

	for {
		select {
		case <-b.done:
			return
		default:
		}

		b.mu.Lock()
		duty := b.duty
		b.mu.Unlock()

		high := time.Duration(float64(b.period) * duty)
		if high > 0 {
			b.line.SetValue(1)
			time.Sleep(high)
		}
		if low := b.period - high; low > 0 {
			b.line.SetValue(0)
			time.Sleep(low)
		}
	}
}

// Close stops the PWM goroutine, drives the line low, and releases it.
func (b *RealBuzzer) Close() error {
	close(b.done)
	b.wg.Wait()

	var errs []error
	if b.line != nil {
		if err := b.line.SetValue(0); err != nil {
			errs = append(errs, fmt.Errorf("clear buzzer: %w", err))
		}
		if err := b.line.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close buzzer line: %w", err))
		}
	}
	if b.chip != nil {
		if err := b.chip.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close chip: %w", err))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("close errors: %v", errs)
	}
	return nil
}

// RealAnalog reads one voltage channel of a Linux IIO ADC device and
// normalizes the raw counts to [0,1].
type RealAnalog struct {
	path      string
	fullScale float64
}

// NewRealAnalog opens the given channel of an IIO device directory
// (e.g. /sys/bus/iio/devices/iio:device0). fullScale is the raw count that
// corresponds to the reference voltage (4095 for a 12-bit ADC).
func NewRealAnalog(deviceDir string, channel int, fullScale float64) (*RealAnalog, error) {
	if fullScale <= 0 {
		return nil, fmt.Errorf("analog channel %d: full scale must be positive", channel)
	}
	path := filepath.Join(deviceDir, fmt.Sprintf("in_voltage%d_raw", channel))
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("analog channel %d: %w", channel, err)
	}
	return &RealAnalog{path: path, fullScale: fullScale}, nil
}

// Read returns one normalized sample.
func (a *RealAnalog) Read() (float64, error) {
	data, err := os.ReadFile(a.path)
	if err != nil {
		return 0, fmt.Errorf("read %s: %w", a.path, err)
	}
	raw, err := strconv.ParseFloat(strings.TrimSpace(string(data)), 64)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", a.path, err)
	}
	return raw / a.fullScale, nil
}

// Close releases the channel. Sysfs reads hold no state, so this is a no-op.
func (a *RealAnalog) Close() error {
	return nil
}
