// Package sample provides denoised analog reads by averaging consecutive
// samples. The pause between reads smooths out electrical noise and ADC
// jitter at the cost of sampling latency.
package sample

import (
	"time"

	"github.com/sweeney/enviro-monitor/internal/hal"
)

const (
	// DefaultCount is the number of consecutive reads to average.
	DefaultCount = 10

	// DefaultPause is the delay between consecutive reads.
	DefaultPause = 10 * time.Millisecond
)

// Stable returns the arithmetic mean of count consecutive reads from in,
// sleeping pause after each read. The sleep function is injectable for
// tests; pass time.Sleep in production.
func Stable(in hal.AnalogInput, count int, pause time.Duration, sleep func(time.Duration)) (float64, error) {
	if count <= 0 {
		count = 1
	}

	var sum float64
	for i := 0; i < count; i++ {
		v, err := in.Read()
		if err != nil {
			return 0, err
		}
		sum += v
		sleep(pause)
	}
	return sum / float64(count), nil
}
