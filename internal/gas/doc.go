// Package gas provides the hard-disk particle primitives for the
// simulation engine.
//
// The package defines the leaf types the rest of the engine is built on:
//
//   - [Particle]: kinematic state plus motion and collision primitives
//   - [Bounds]: the rectangular simulation domain
//   - [Bounce]: per-axis wall-hit result of one integration step
//
// Collisions are perfectly elastic (restitution 1) and resolved with an
// impulse along the center-to-center normal, so momentum and kinetic
// energy are conserved pair-wise.
package gas
