// Package console implements the interactive serial console and all serial
// output formatting. The monitor's background notifications and the modal
// streaming commands share one byte-oriented transport; every output line
// is CRLF-terminated.
package console

import (
	"fmt"

	"github.com/sweeney/enviro-monitor/internal/logic"
)

// Transport is a byte-oriented serial link.
type Transport interface {
	// Poll returns the next pending input byte, if any. It must not block
	// when no byte is pending.
	Poll() (byte, bool, error)

	// WriteString sends s on the link.
	WriteString(s string) error

	// Close releases the link.
	Close() error
}

// Banner is the startup help text listing the streaming commands.
const Banner = "\r\nPress the following keys to continuously " +
	"print the readings until 'q' is pressed:\r\n" +
	" - 'a' the reading at the analog pin A0 (potentiometer)\r\n" +
	" - 'b' the reading at the analog pin A1 (LM35)\r\n" +
	" - 'c' the temperature in Celsius from LM35\r\n" +
	" - 'd' the temperature in Fahrenheit from LM35\r\n" +
	" - 'e' both LM35 in Celsius and potentiometer value in Celsius\r\n" +
	" - 'f' both LM35 in Fahrenheit and potentiometer value in Fahrenheit\r\n" +
	"\r\nWARNING: Press 'q' or 'Q' to stop.\r\n"

// Alarm source lines, repeated every iteration while the alarm is active.
const (
	GasAlarmLine  = "Gas Alarm\r\n"
	TempAlarmLine = "Temperature Alarm\r\n"
)

// FormatEvent returns the one-shot notification line for an alarm
// transition.
func FormatEvent(ev logic.Event) string {
	switch ev.Type {
	case logic.EventGasDetected:
		return "Gas detected!\r\n"
	case logic.EventGasCleared:
		return "Gas no longer detected.\r\n"
	case logic.EventTempExceeded:
		return "ALERT: LM35 temperature exceeds 24°C!\r\n"
	case logic.EventTempCleared:
		return "LM35 temperature below 24°C.\r\n"
	}
	return ""
}

// FormatStatus returns the periodic status line for one reading set.
func FormatStatus(r logic.Reading) string {
	return fmt.Sprintf("Gas: %.2f, LM35: %.2f C, Potentiometer: %.2f\r\n",
		r.Gas, r.TempC, r.Potentiometer)
}
