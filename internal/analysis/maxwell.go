// Package analysis provides distribution tools for sampled speeds.
//
// The live view uses [Histogram] to bin a speed snapshot and
// [MaxwellBoltzmann2D] to overlay the theoretical distribution the gas
// should relax toward.
package analysis

import (
	"math"

	"github.com/san-kum/gaslab/internal/gas"
)

// Histogram bins values into bins equal-width buckets between the
// sample minimum and maximum. Returns the counts and the bin width.
// Empty input or non-positive bins yields nil counts.
func Histogram(values []float64, bins int) (counts []float64, width float64) {
	if len(values) == 0 || bins <= 0 {
		return nil, 0
	}

	lo, hi := values[0], values[0]
	for _, v := range values {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	if hi == lo {
		counts = make([]float64, bins)
		counts[0] = float64(len(values))
		return counts, 0
	}

	width = (hi - lo) / float64(bins)
	counts = make([]float64, bins)
	for _, v := range values {
		idx := int((v - lo) / width)
		if idx >= bins {
			idx = bins - 1
		}
		counts[idx]++
	}
	return counts, width
}

// MaxwellBoltzmann2D returns the 2D speed-distribution density at speed
// v for a gas of particles with the given mass at temperature temp:
//
//	f(v) = (m*v / k_B*T) * exp(-m*v^2 / (2*k_B*T))
func MaxwellBoltzmann2D(v, mass, temp float64) float64 {
	if v < 0 || temp <= 0 {
		return 0
	}
	kt := gas.Boltzmann * temp
	return mass * v / kt * math.Exp(-mass*v*v/(2*kt))
}

// MeanSpeed returns the arithmetic mean of the samples, or 0 for an
// empty slice.
func MeanSpeed(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
