package metrics

import (
	"math"
	"testing"

	"github.com/san-kum/gaslab/internal/gas"
)

func TestTemperature_ReadsBackTarget(t *testing.T) {
	// Particles at the RMS speed for 300K must measure 300K.
	mass := 4.65e-26
	vrms := gas.RMSSpeed(300, mass)
	particles := []gas.Particle{
		{Mass: mass, VX: vrms, VY: 0, Radius: 1},
		{Mass: mass, VX: 0, VY: -vrms, Radius: 1},
	}

	m := NewTemperature()
	m.Observe(particles, 0)

	if math.Abs(m.Value()-300) > 300*1e-9 {
		t.Errorf("temperature = %f, want 300", m.Value())
	}
}

func TestTemperature_AveragesAcrossObservations(t *testing.T) {
	mass := 1.0
	hot := []gas.Particle{{Mass: mass, VX: 2, Radius: 1}}
	cold := []gas.Particle{{Mass: mass, VX: 0, VY: 0, Radius: 1}}

	m := NewTemperature()
	m.Observe(hot, 0)
	m.Observe(cold, 1)

	// KE per particle: 2.0 then 0.0; average temperature is the mean.
	want := (2.0 / gas.Boltzmann) / 2
	if math.Abs(m.Value()-want) > want*1e-12 {
		t.Errorf("temperature = %g, want %g", m.Value(), want)
	}
}

func TestTemperature_Reset(t *testing.T) {
	m := NewTemperature()
	m.Observe([]gas.Particle{{Mass: 1, VX: 1, Radius: 1}}, 0)
	if m.Value() == 0 {
		t.Error("expected non-zero value")
	}

	m.Reset()
	if m.Value() != 0 {
		t.Error("expected zero after reset")
	}
}

func TestTemperature_EmptyCollection(t *testing.T) {
	m := NewTemperature()
	m.Observe(nil, 0)
	if m.Value() != 0 {
		t.Error("empty collection must not contribute")
	}
}

func TestMeanSpeed(t *testing.T) {
	particles := []gas.Particle{
		{Mass: 1, VX: 3, VY: 4, Radius: 1}, // speed 5
		{Mass: 1, VX: 0, VY: 1, Radius: 1}, // speed 1
	}

	m := NewMeanSpeed()
	m.Observe(particles, 0)

	if math.Abs(m.Value()-3) > 1e-12 {
		t.Errorf("mean speed = %f, want 3", m.Value())
	}

	m.Reset()
	if m.Value() != 0 {
		t.Error("expected zero after reset")
	}
}

func TestKineticEnergy(t *testing.T) {
	particles := []gas.Particle{
		{Mass: 2, VX: 3, VY: 0, Radius: 1}, // KE 9
		{Mass: 1, VX: 0, VY: 4, Radius: 1}, // KE 8
	}

	m := NewKineticEnergy()
	m.Observe(particles, 0)

	if math.Abs(m.Value()-17) > 1e-12 {
		t.Errorf("kinetic energy = %f, want 17", m.Value())
	}
}

func TestMetricNames(t *testing.T) {
	if NewTemperature().Name() != "temperature" {
		t.Error("unexpected temperature metric name")
	}
	if NewMeanSpeed().Name() != "mean_speed" {
		t.Error("unexpected mean speed metric name")
	}
	if NewKineticEnergy().Name() != "kinetic_energy" {
		t.Error("unexpected kinetic energy metric name")
	}
}
