package gas

import "math"

// Boltzmann is the Boltzmann constant in J/K.
const Boltzmann = 1.380649e-23

// Bounds is the rectangular simulation domain. Distances are in meters
// (the reference scene maps one pixel to one meter), so pressure comes
// out in pascals per unit depth.
type Bounds struct {
	Width  float64
	Height float64
}

func (b Bounds) Perimeter() float64 { return 2 * (b.Width + b.Height) }
func (b Bounds) Area() float64      { return b.Width * b.Height }

// Contains reports whether the particle's full extent lies inside the
// domain.
func (b Bounds) Contains(p *Particle) bool {
	return p.X-p.Radius >= 0 && p.X+p.Radius <= b.Width &&
		p.Y-p.Radius >= 0 && p.Y+p.Radius <= b.Height
}

// RMSSpeed returns the Maxwell-Boltzmann root-mean-square speed for a
// particle of the given mass at temperature temp:
//
//	v_rms = sqrt(2*k_B*T/m)
func RMSSpeed(temp, mass float64) float64 {
	return math.Sqrt(2 * Boltzmann * temp / mass)
}
