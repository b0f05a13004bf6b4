// Package convert contains the pure unit conversions from normalized analog
// readings to temperatures. All functions are stateless and deterministic;
// inputs are not clamped, so out-of-range readings propagate linearly.
package convert

// LM35Coefficient scales a normalized 0-3.3V reading to degrees Celsius.
// The LM35 outputs 10mV/°C, so full scale corresponds to 330°C.
const LM35Coefficient = 330.0

// PotentiometerCoefficient scales the potentiometer reading to Celsius.
// It is the same value as LM35Coefficient: the firmware this replaces
// applied the LM35 formula to the potentiometer channel as well. That is
// almost certainly a carried-over calibration artifact, but it is kept to
// preserve the observed numeric behavior.
const PotentiometerCoefficient = 330.0

// Celsius maps a normalized reading to degrees Celsius with the given
// linear coefficient.
func Celsius(reading, coefficient float64) float64 {
	return reading * coefficient
}

// CelsiusToFahrenheit converts degrees Celsius to degrees Fahrenheit.
func CelsiusToFahrenheit(c float64) float64 {
	return c*9.0/5.0 + 32.0
}

// Fahrenheit maps a normalized reading to degrees Fahrenheit. It is the
// composition of Celsius and CelsiusToFahrenheit, with no independent
// formula.
func Fahrenheit(reading, coefficient float64) float64 {
	return CelsiusToFahrenheit(Celsius(reading, coefficient))
}
