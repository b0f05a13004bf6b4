package console

import (
	"fmt"
	"time"

	"github.com/sweeney/enviro-monitor/internal/convert"
	"github.com/sweeney/enviro-monitor/internal/hal"
)

// DefaultStreamDelay is the pause between streamed lines.
const DefaultStreamDelay = 200 * time.Millisecond

// Session runs the modal streaming command loop. While a streaming command
// is active the session owns the transport: the caller's control loop (and
// with it the alarm pipeline) is suspended until q/Q is received.
type Session struct {
	transport Transport
	lm35      hal.AnalogInput
	pot       hal.AnalogInput

	lm35Coefficient float64
	potCoefficient  float64

	streamDelay time.Duration
	sleep       func(time.Duration)
}

// NewSession creates a session over the given transport and sensor inputs.
// Streaming reads are single-shot (not averaged), matching on-demand
// inspection rather than alarm evaluation. The sleep function is injectable
// for tests; pass time.Sleep in production.
func NewSession(transport Transport, lm35, pot hal.AnalogInput, lm35Coefficient, potCoefficient float64, streamDelay time.Duration, sleep func(time.Duration)) *Session {
	if streamDelay <= 0 {
		streamDelay = DefaultStreamDelay
	}
	return &Session{
		transport:       transport,
		lm35:            lm35,
		pot:             pot,
		lm35Coefficient: lm35Coefficient,
		potCoefficient:  potCoefficient,
		streamDelay:     streamDelay,
		sleep:           sleep,
	}
}

// Handle dispatches one pending command byte. Streaming commands block
// until q/Q; unrecognized bytes are a no-op and return immediately.
func (s *Session) Handle(cmd byte) error {
	switch cmd {
	case 'a', 'A':
		return s.stream(func() (string, error) {
			v, err := s.pot.Read()
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("Potentiometer reading: %.2f\r\n", v), nil
		})

	case 'b', 'B':
		return s.stream(func() (string, error) {
			v, err := s.lm35.Read()
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("LM35 reading: %.2f\r\n", v), nil
		})

	case 'c', 'C':
		return s.stream(func() (string, error) {
			v, err := s.lm35.Read()
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("LM35: %.2f °C\r\n", convert.Celsius(v, s.lm35Coefficient)), nil
		})

	case 'd', 'D':
		return s.stream(func() (string, error) {
			v, err := s.lm35.Read()
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("LM35: %.2f °F\r\n", convert.Fahrenheit(v, s.lm35Coefficient)), nil
		})

	case 'e', 'E':
		return s.stream(func() (string, error) {
			lm, err := s.lm35.Read()
			if err != nil {
				return "", err
			}
			pot, err := s.pot.Read()
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("LM35: %.2f °C, Potentiometer scaled to °C: %.2f\r\n",
				convert.Celsius(lm, s.lm35Coefficient), convert.Celsius(pot, s.potCoefficient)), nil
		})

	case 'f', 'F':
		return s.stream(func() (string, error) {
			lm, err := s.lm35.Read()
			if err != nil {
				return "", err
			}
			pot, err := s.pot.Read()
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("LM35: %.2f °F, Potentiometer scaled to °F: %.2f\r\n",
				convert.Fahrenheit(lm, s.lm35Coefficient), convert.Fahrenheit(pot, s.potCoefficient)), nil
		})

	default:
		return nil
	}
}

// stream emits one line per streamDelay until a q/Q byte arrives. Other
// bytes received while streaming are ignored; the selected command keeps
// running.
func (s *Session) stream(line func() (string, error)) error {
	for {
		out, err := line()
		if err != nil {
			return fmt.Errorf("stream read: %w", err)
		}
		if err := s.transport.WriteString(out); err != nil {
			return fmt.Errorf("stream write: %w", err)
		}

		s.sleep(s.streamDelay)

		b, ok, err := s.transport.Poll()
		if err != nil {
			return fmt.Errorf("stream poll: %w", err)
		}
		if ok && (b == 'q' || b == 'Q') {
			return nil
		}
	}
}
