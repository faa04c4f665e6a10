package gas

import (
	"errors"
	"math"
)

// Domain errors for particle construction.
var (
	// ErrNonPositiveMass indicates a particle with zero or negative mass.
	ErrNonPositiveMass = errors.New("gas: particle mass must be positive")

	// ErrNonPositiveRadius indicates a particle with zero or negative radius.
	ErrNonPositiveRadius = errors.New("gas: particle radius must be positive")
)

const (
	// restitution is fixed at 1: collisions are perfectly elastic.
	restitution = 1.0

	// separationSlop is added to the overlap when pushing a resolved
	// pair apart so the same pair does not re-trigger next tick.
	separationSlop = 1.0
)

// Particle is one hard disk. Fields are mutated in place by Integrate
// and ResolveElasticCollision; identity is the particle's slot in the
// engine's arena, not anything stored here.
type Particle struct {
	Mass   float64
	X, Y   float64
	VX, VY float64
	Radius float64
}

// Validate rejects degenerate particles. Mass must be strictly positive
// so the inverse-mass terms in collision resolution are always finite.
func (p *Particle) Validate() error {
	if p.Mass <= 0 {
		return ErrNonPositiveMass
	}
	if p.Radius <= 0 {
		return ErrNonPositiveRadius
	}
	return nil
}

// Bounce records which axes hit a wall during one integration step.
type Bounce struct {
	X, Y bool
}

// Count returns the number of axes (0, 1, or 2) that bounced.
func (b Bounce) Count() int {
	n := 0
	if b.X {
		n++
	}
	if b.Y {
		n++
	}
	return n
}

// Integrate advances the particle by dt, reflecting and clamping against
// the domain walls per axis. After it returns, the particle's extent is
// inside b on both axes.
func (p *Particle) Integrate(dt float64, b Bounds) Bounce {
	p.X += p.VX * dt
	p.Y += p.VY * dt

	var hit Bounce
	if p.X-p.Radius < 0 || p.X+p.Radius > b.Width {
		p.VX = -p.VX
		p.X = clamp(p.X, p.Radius, b.Width-p.Radius)
		hit.X = true
	}
	if p.Y-p.Radius < 0 || p.Y+p.Radius > b.Height {
		p.VY = -p.VY
		p.Y = clamp(p.Y, p.Radius, b.Height-p.Radius)
		hit.Y = true
	}
	return hit
}

// Overlaps reports whether the two disks intersect.
func (p *Particle) Overlaps(q *Particle) bool {
	return math.Hypot(q.X-p.X, q.Y-p.Y) < p.Radius+q.Radius
}

// ResolveElasticCollision applies an elastic impulse to an overlapping
// pair and pushes the disks apart along the collision normal.
//
// Two defined no-ops: coincident centers (no usable normal) and pairs
// whose relative velocity along the normal is already separating, which
// would otherwise re-resolve a collision handled on a previous tick.
func (p *Particle) ResolveElasticCollision(q *Particle) {
	dx := q.X - p.X
	dy := q.Y - p.Y
	dist := math.Hypot(dx, dy)
	if dist == 0 {
		return
	}

	nx := dx / dist
	ny := dy / dist

	// Relative velocity of q with respect to p along the normal;
	// negative means the pair is approaching.
	dot := (q.VX-p.VX)*nx + (q.VY-p.VY)*ny
	if dot >= 0 {
		return
	}

	impulse := -(1 + restitution) * dot / (1/p.Mass + 1/q.Mass)
	p.VX -= impulse * nx / p.Mass
	p.VY -= impulse * ny / p.Mass
	q.VX += impulse * nx / q.Mass
	q.VY += impulse * ny / q.Mass

	shift := 0.5 * (p.Radius + q.Radius - dist + separationSlop)
	p.X -= nx * shift
	p.Y -= ny * shift
	q.X += nx * shift
	q.Y += ny * shift
}

// Speed returns the magnitude of the velocity.
func (p *Particle) Speed() float64 {
	return math.Hypot(p.VX, p.VY)
}

// KineticEnergy returns 0.5*m*v^2.
func (p *Particle) KineticEnergy() float64 {
	return 0.5 * p.Mass * (p.VX*p.VX + p.VY*p.VY)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
