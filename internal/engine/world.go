package engine

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"github.com/san-kum/gaslab/internal/config"
	"github.com/san-kum/gaslab/internal/gas"
	"github.com/san-kum/gaslab/internal/grid"
)

// World is the simulation: a fixed population of hard disks in a
// rectangular domain, plus the accumulators the pressure estimate is
// derived from. All mutation happens on the goroutine driving Step or
// Run; everything else reads through the guard.
type World struct {
	mu        sync.Mutex
	bounds    gas.Bounds
	particles []gas.Particle
	grid      *grid.Grid

	rate       int
	dt         float64
	targetTemp float64

	tick       int
	bounces    int
	momentum   float64
	lastReport *Report

	observers []Observer
	metrics   []Metric
	paused    atomic.Bool
}

// New builds a world from a validated configuration, placing particles
// by rejection sampling: uniform position inset by the radius, speed
// fixed at the Maxwell-Boltzmann RMS speed with uniform random
// direction, resampled until the candidate overlaps no placed particle.
// Placement attempts per particle are bounded; running out returns
// ErrDomainTooDense rather than looping forever.
func New(cfg *config.Config) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	bounds := gas.Bounds{Width: cfg.Width, Height: cfg.Height}
	particles, err := place(rng, cfg, bounds)
	if err != nil {
		return nil, err
	}

	return &World{
		bounds:     bounds,
		particles:  particles,
		grid:       grid.New(cfg.Width, cfg.Height, cfg.CellSize),
		rate:       cfg.SimulationRate,
		dt:         1.0 / float64(cfg.SimulationRate),
		targetTemp: cfg.TargetTemp,
	}, nil
}

func place(rng *rand.Rand, cfg *config.Config, bounds gas.Bounds) ([]gas.Particle, error) {
	vrms := gas.RMSSpeed(cfg.TargetTemp, cfg.Mass)
	particles := make([]gas.Particle, 0, cfg.Particles)

	for n := 0; n < cfg.Particles; n++ {
		placed := false
		for attempt := 0; attempt < cfg.PlacementAttempts; attempt++ {
			angle := rng.Float64() * 2 * math.Pi
			p := gas.Particle{
				Mass:   cfg.Mass,
				X:      cfg.Radius + rng.Float64()*(bounds.Width-2*cfg.Radius),
				Y:      cfg.Radius + rng.Float64()*(bounds.Height-2*cfg.Radius),
				VX:     vrms * math.Cos(angle),
				VY:     vrms * math.Sin(angle),
				Radius: cfg.Radius,
			}
			if err := p.Validate(); err != nil {
				return nil, err
			}

			overlaps := false
			for i := range particles {
				if particles[i].Overlaps(&p) {
					overlaps = true
					break
				}
			}
			if !overlaps {
				particles = append(particles, p)
				placed = true
				break
			}
		}
		if !placed {
			return nil, fmt.Errorf("placing particle %d of %d (%d attempts): %w",
				n+1, cfg.Particles, cfg.PlacementAttempts, ErrDomainTooDense)
		}
	}
	return particles, nil
}

// AddObserver registers a per-report callback. Not safe to call after
// Run has started.
func (w *World) AddObserver(o Observer) { w.observers = append(w.observers, o) }

// AddMetric registers a per-tick metric. Not safe to call after Run has
// started.
func (w *World) AddMetric(m Metric) { w.metrics = append(w.metrics, m) }

// Step advances the simulation by one fixed timestep under the guard:
// integrate every particle (accumulating 2*m*|v| wall momentum per
// bounced axis), rebuild the spatial grid, resolve candidate-pair
// collisions in a single pass. A pair left overlapping by a chain of
// collisions within one tick stays overlapping until a later tick; the
// resolver does not iterate to convergence.
//
// At each reporting-interval boundary (one simulated second) Step
// returns the interval report and resets the accumulators; otherwise it
// returns nil.
func (w *World) Step() *Report {
	w.mu.Lock()
	defer w.mu.Unlock()

	for i := range w.particles {
		p := &w.particles[i]
		oldVX, oldVY := p.VX, p.VY
		hit := p.Integrate(w.dt, w.bounds)
		if hit.X {
			w.momentum += 2 * p.Mass * math.Abs(oldVX)
		}
		if hit.Y {
			w.momentum += 2 * p.Mass * math.Abs(oldVY)
		}
		w.bounces += hit.Count()
	}

	w.grid.Rebuild(w.particles)
	w.grid.CandidatePairs(func(i, j int) {
		a, b := &w.particles[i], &w.particles[j]
		if a.Overlaps(b) {
			a.ResolveElasticCollision(b)
		}
	})

	w.tick++
	t := float64(w.tick) * w.dt
	for _, m := range w.metrics {
		m.Observe(w.particles, t)
	}

	if w.tick%w.rate != 0 {
		return nil
	}

	r := w.buildReport(t)
	w.bounces = 0
	w.momentum = 0
	for _, m := range w.metrics {
		m.Reset()
	}
	w.lastReport = &r
	return &r
}

// buildReport derives the interval pressure figures. Caller holds the
// guard.
func (w *World) buildReport(t float64) Report {
	pressure := w.momentum / w.bounds.Perimeter()
	ideal := float64(len(w.particles)) * gas.Boltzmann * w.targetTemp / w.bounds.Area()

	diff := 0.0
	if ideal != 0 {
		diff = 100 * math.Abs(pressure-ideal) / ideal
	}

	vals := make(map[string]float64, len(w.metrics))
	for _, m := range w.metrics {
		vals[m.Name()] = m.Value()
	}

	return Report{
		Tick:          w.tick,
		Time:          t,
		Bounces:       w.bounces,
		Pressure:      pressure,
		IdealPressure: ideal,
		PercentDiff:   diff,
		Metrics:       vals,
	}
}

// Run drives Step at the simulation rate until ctx is cancelled.
// Pacing is best-effort wall-clock scheduling; the physics always uses
// the fixed dt. Observers fire outside the guard.
func (w *World) Run(ctx context.Context) error {
	interval := time.Duration(float64(time.Second) / float64(w.rate))
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if w.paused.Load() {
				continue
			}
			if r := w.Step(); r != nil {
				for _, o := range w.observers {
					o.OnReport(*r)
				}
			}
		}
	}
}

// SetPaused suspends or resumes ticking in Run. Step itself is not
// affected.
func (w *World) SetPaused(p bool) { w.paused.Store(p) }

// Paused reports whether Run is currently skipping ticks.
func (w *World) Paused() bool { return w.paused.Load() }

// Disc is the read-only render feed: position and radius of one
// particle.
type Disc struct {
	X, Y, Radius float64
}

// Discs returns a snapshot of every particle's position and radius,
// taken under the guard. The slice is the caller's to keep.
func (w *World) Discs() []Disc {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]Disc, len(w.particles))
	for i := range w.particles {
		out[i] = Disc{X: w.particles[i].X, Y: w.particles[i].Y, Radius: w.particles[i].Radius}
	}
	return out
}

// Speeds returns the instantaneous speed of every particle in slot
// order, taken under the guard.
func (w *World) Speeds() []float64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]float64, len(w.particles))
	for i := range w.particles {
		out[i] = w.particles[i].Speed()
	}
	return out
}

// LastReport returns the most recent interval report, if any interval
// has completed.
func (w *World) LastReport() (Report, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.lastReport == nil {
		return Report{}, false
	}
	return *w.lastReport, true
}

// Bounds returns the simulation domain.
func (w *World) Bounds() gas.Bounds { return w.bounds }

// ParticleCount returns the fixed population size.
func (w *World) ParticleCount() int { return len(w.particles) }

// SimTime returns the simulated time advanced so far.
func (w *World) SimTime() float64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return float64(w.tick) * w.dt
}
