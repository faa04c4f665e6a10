// Package metrics derives macroscopic quantities from particle state.
// Each metric implements the engine's Metric interface and averages its
// observations until Reset.
package metrics

import "github.com/san-kum/gaslab/internal/gas"

// Temperature estimates gas temperature from mean kinetic energy. The
// gas has two translational degrees of freedom, so <KE> = k_B*T and
// T = <KE>/k_B; a freshly initialized gas reads back its target
// temperature.
type Temperature struct {
	name    string
	sum     float64
	samples int
}

func NewTemperature() *Temperature {
	return &Temperature{name: "temperature"}
}

func (m *Temperature) Name() string { return m.name }

func (m *Temperature) Observe(particles []gas.Particle, t float64) {
	if len(particles) == 0 {
		return
	}
	total := 0.0
	for i := range particles {
		total += particles[i].KineticEnergy()
	}
	m.sum += total / float64(len(particles)) / gas.Boltzmann
	m.samples++
}

func (m *Temperature) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return m.sum / float64(m.samples)
}

func (m *Temperature) Reset() {
	m.sum = 0
	m.samples = 0
}

// MeanSpeed tracks the average instantaneous particle speed.
type MeanSpeed struct {
	name    string
	sum     float64
	samples int
}

func NewMeanSpeed() *MeanSpeed {
	return &MeanSpeed{name: "mean_speed"}
}

func (m *MeanSpeed) Name() string { return m.name }

func (m *MeanSpeed) Observe(particles []gas.Particle, t float64) {
	if len(particles) == 0 {
		return
	}
	total := 0.0
	for i := range particles {
		total += particles[i].Speed()
	}
	m.sum += total / float64(len(particles))
	m.samples++
}

func (m *MeanSpeed) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return m.sum / float64(m.samples)
}

func (m *MeanSpeed) Reset() {
	m.sum = 0
	m.samples = 0
}

// KineticEnergy tracks the total kinetic energy of the gas. For elastic
// collisions in a closed box it should hold constant up to float error.
type KineticEnergy struct {
	name    string
	sum     float64
	samples int
}

func NewKineticEnergy() *KineticEnergy {
	return &KineticEnergy{name: "kinetic_energy"}
}

func (m *KineticEnergy) Name() string { return m.name }

func (m *KineticEnergy) Observe(particles []gas.Particle, t float64) {
	total := 0.0
	for i := range particles {
		total += particles[i].KineticEnergy()
	}
	m.sum += total
	m.samples++
}

func (m *KineticEnergy) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return m.sum / float64(m.samples)
}

func (m *KineticEnergy) Reset() {
	m.sum = 0
	m.samples = 0
}
