// Command enviro-monitor samples a gas sensor, an LM35 temperature sensor,
// and a potentiometer, drives a buzzer and LED alarm on threshold crossings,
// and serves an interactive serial console for on-demand readings.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sweeney/enviro-monitor/internal/actuate"
	"github.com/sweeney/enviro-monitor/internal/console"
	"github.com/sweeney/enviro-monitor/internal/convert"
	"github.com/sweeney/enviro-monitor/internal/hal"
	"github.com/sweeney/enviro-monitor/internal/logic"
	"github.com/sweeney/enviro-monitor/internal/sample"
	"github.com/sweeney/enviro-monitor/internal/status"
)

// DefaultPoll is the delay between control loop iterations.
const DefaultPoll = 200 * time.Millisecond

type options struct {
	serialDevice   string
	baudRate       int
	poll           time.Duration
	report         time.Duration
	gasThreshold   float64
	tempThresholdC float64
	pinBuzzer      int
	pinLED         int
	iioDevice      string
	adcFullScale   float64
	chGas          int
	chLM35         int
	chPot          int
	printReadings  bool
}

func main() {
	var opts options
	flag.StringVar(&opts.serialDevice, "serial", "/dev/ttyAMA0", "Serial console device")
	flag.IntVar(&opts.baudRate, "baud", console.DefaultBaudRate, "Serial console baud rate")
	flag.DurationVar(&opts.poll, "poll", DefaultPoll, "Delay between control loop iterations")
	flag.DurationVar(&opts.report, "report", logic.ReportInterval, "Minimum interval between periodic status lines")
	flag.Float64Var(&opts.gasThreshold, "gas-threshold", logic.GasThreshold, "Normalized gas reading above which the gas alarm is active")
	flag.Float64Var(&opts.tempThresholdC, "temp-threshold", logic.TempThresholdC, "Celsius temperature above which the temperature alarm is active")
	flag.IntVar(&opts.pinBuzzer, "pin-buzzer", hal.DefaultPinBuzzer, "BCM pin number for the buzzer")
	flag.IntVar(&opts.pinLED, "pin-led", hal.DefaultPinLED, "BCM pin number for the alarm LED")
	flag.StringVar(&opts.iioDevice, "iio-device", "/sys/bus/iio/devices/iio:device0", "IIO device directory for the ADC")
	flag.Float64Var(&opts.adcFullScale, "adc-full-scale", 4095, "Raw ADC count at the reference voltage")
	flag.IntVar(&opts.chGas, "channel-gas", hal.DefaultChannelGas, "ADC channel for the gas sensor")
	flag.IntVar(&opts.chLM35, "channel-lm35", hal.DefaultChannelLM35, "ADC channel for the LM35")
	flag.IntVar(&opts.chPot, "channel-pot", hal.DefaultChannelPotentiometer, "ADC channel for the potentiometer")
	flag.BoolVar(&opts.printReadings, "print-readings", false, "Sample all channels once, print the status line, and exit")
	flag.Parse()

	if err := run(opts); err != nil {
		log.Fatalf("fatal: %v", err)
	}
}

func run(opts options) error {
	gas, err := hal.NewRealAnalog(opts.iioDevice, opts.chGas, opts.adcFullScale)
	if err != nil {
		return fmt.Errorf("init gas input: %w", err)
	}
	defer gas.Close()

	lm35, err := hal.NewRealAnalog(opts.iioDevice, opts.chLM35, opts.adcFullScale)
	if err != nil {
		return fmt.Errorf("init lm35 input: %w", err)
	}
	defer lm35.Close()

	pot, err := hal.NewRealAnalog(opts.iioDevice, opts.chPot, opts.adcFullScale)
	if err != nil {
		return fmt.Errorf("init potentiometer input: %w", err)
	}
	defer pot.Close()

	// One-shot readings mode
	if opts.printReadings {
		gasV, err := sample.Stable(gas, sample.DefaultCount, sample.DefaultPause, time.Sleep)
		if err != nil {
			return fmt.Errorf("read gas: %w", err)
		}
		lm35V, err := sample.Stable(lm35, sample.DefaultCount, sample.DefaultPause, time.Sleep)
		if err != nil {
			return fmt.Errorf("read lm35: %w", err)
		}
		potV, err := sample.Stable(pot, sample.DefaultCount, sample.DefaultPause, time.Sleep)
		if err != nil {
			return fmt.Errorf("read potentiometer: %w", err)
		}
		fmt.Printf("Gas: %.2f, LM35: %.2f C, Potentiometer: %.2f\n",
			gasV, convert.Celsius(lm35V, convert.LM35Coefficient), potV)
		return nil
	}

	buzzer, err := hal.NewRealBuzzer(opts.pinBuzzer, hal.BuzzerPeriod)
	if err != nil {
		return fmt.Errorf("init buzzer: %w", err)
	}
	defer buzzer.Close()

	led, err := hal.NewRealLED(opts.pinLED)
	if err != nil {
		return fmt.Errorf("init led: %w", err)
	}
	defer led.Close()

	transport, err := console.OpenSerial(opts.serialDevice, opts.baudRate)
	if err != nil {
		return fmt.Errorf("open console: %w", err)
	}
	defer transport.Close()

	tracker := status.NewTracker(time.Now(), status.Config{
		PollMs:         opts.poll.Milliseconds(),
		ReportMs:       opts.report.Milliseconds(),
		GasThreshold:   opts.gasThreshold,
		TempThresholdC: opts.tempThresholdC,
		SerialDevice:   opts.serialDevice,
		BaudRate:       opts.baudRate,
	})

	if err := transport.WriteString(console.Banner); err != nil {
		log.Printf("banner write error: %v", err)
	}

	driver := actuate.New(buzzer, led)
	session := console.NewSession(transport, lm35, pot,
		convert.LM35Coefficient, convert.PotentiometerCoefficient,
		console.DefaultStreamDelay, time.Sleep)

	log.Printf("started: serial=%s poll=%v report=%v gas-threshold=%v temp-threshold=%v",
		opts.serialDevice, opts.poll, opts.report, opts.gasThreshold, opts.tempThresholdC)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	cfg := loopConfig{
		poll:            opts.poll,
		report:          opts.report,
		gasThreshold:    opts.gasThreshold,
		tempThresholdC:  opts.tempThresholdC,
		sampleCount:     sample.DefaultCount,
		samplePause:     sample.DefaultPause,
		lm35Coefficient: convert.LM35Coefficient,
	}

	return runLoop(gas, lm35, pot, driver, session, transport, tracker, cfg, time.Now, time.Sleep, sigCh)
}

// loopConfig holds the fixed parameters of the control loop.
type loopConfig struct {
	poll            time.Duration
	report          time.Duration
	gasThreshold    float64
	tempThresholdC  float64
	sampleCount     int
	samplePause     time.Duration
	lm35Coefficient float64
}

// runLoop is the monitor's single thread of control. Each iteration runs
// sample, evaluate, report, actuate, then the console check; a pending
// streaming command suspends the whole pipeline until the operator quits
// the stream.
func runLoop(gas, lm35, pot hal.AnalogInput, driver *actuate.Driver, session *console.Session, transport console.Transport, tracker *status.Tracker, cfg loopConfig, now func() time.Time, sleep func(time.Duration), sig <-chan os.Signal) error {
	eval := logic.NewEvaluator(cfg.gasThreshold, cfg.tempThresholdC, now())

	for {
		select {
		case s := <-sig:
			log.Printf("received %v, shutting down", s)
			if err := driver.Silence(); err != nil {
				log.Printf("silence outputs: %v", err)
			}
			snap := tracker.Snapshot()
			log.Printf("shutdown: uptime=%v gas_on=%d gas_off=%d temp_on=%d temp_off=%d",
				snap.Uptime().Round(time.Second),
				snap.Counts.GasOn, snap.Counts.GasOff, snap.Counts.TempOn, snap.Counts.TempOff)
			return nil
		default:
		}

		t := now()

		gasV, err := sample.Stable(gas, cfg.sampleCount, cfg.samplePause, sleep)
		if err != nil {
			log.Printf("gas read error: %v", err)
			sleep(cfg.poll)
			continue
		}
		lm35V, err := sample.Stable(lm35, cfg.sampleCount, cfg.samplePause, sleep)
		if err != nil {
			log.Printf("lm35 read error: %v", err)
			sleep(cfg.poll)
			continue
		}
		potV, err := sample.Stable(pot, cfg.sampleCount, cfg.samplePause, sleep)
		if err != nil {
			log.Printf("potentiometer read error: %v", err)
			sleep(cfg.poll)
			continue
		}

		reading := logic.Reading{
			Gas:           gasV,
			TempC:         convert.Celsius(lm35V, cfg.lm35Coefficient),
			Potentiometer: potV,
			Time:          t,
		}

		events := eval.Process(reading)
		for _, event := range events {
			log.Printf("event: %s", event.Type)
			if err := transport.WriteString(console.FormatEvent(event)); err != nil {
				log.Printf("notification write error: %v", err)
			}
		}

		if eval.CheckReport(t, cfg.report) {
			if err := transport.WriteString(console.FormatStatus(reading)); err != nil {
				log.Printf("status write error: %v", err)
			}
		}

		lines, err := driver.Apply(eval.State())
		if err != nil {
			log.Printf("actuate error: %v", err)
		}
		for _, line := range lines {
			if err := transport.WriteString(line); err != nil {
				log.Printf("alarm line write error: %v", err)
			}
		}

		tracker.Update(reading, eval.State(), eval.Counts())

		// Console check: a pending streaming command blocks here until
		// the operator quits it. Alarm monitoring is suspended for the
		// duration; that trade-off is deliberate.
		b, ok, err := transport.Poll()
		if err != nil {
			log.Printf("console read error: %v", err)
		} else if ok {
			if err := session.Handle(b); err != nil {
				log.Printf("console session error: %v", err)
			}
		}

		sleep(cfg.poll)
	}
}
