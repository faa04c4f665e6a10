package engine

import "github.com/san-kum/gaslab/internal/gas"

// Report is the once-per-simulated-second summary of wall activity.
// Pressure is the momentum transferred to the walls over the interval
// divided by the domain perimeter; IdealPressure is the ideal-gas
// prediction N*k_B*T/A for the configured target temperature.
type Report struct {
	Tick          int
	Time          float64 // simulated seconds
	Bounces       int
	Pressure      float64
	IdealPressure float64
	PercentDiff   float64
	Metrics       map[string]float64
}

// Observer receives each interval report. Observers run on the
// simulation goroutine outside the state guard, so they may do I/O but
// should return promptly.
type Observer interface {
	OnReport(r Report)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(Report)

func (f ObserverFunc) OnReport(r Report) { f(r) }

// Metric accumulates a derived quantity over the particle collection.
// Observe is called once per tick under the state guard and must not
// block or retain the slice.
type Metric interface {
	Name() string
	Observe(particles []gas.Particle, t float64)
	Value() float64
	Reset()
}
