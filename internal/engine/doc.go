// Package engine owns the simulation state and the tick loop.
//
// A [World] holds the particle arena behind a single mutex. The
// simulation goroutine takes the guard for a whole tick (integration,
// grid rebuild, collision resolution), so readers never see a
// half-applied tick. External consumers read through copy-out accessors
// ([World.Discs], [World.Speeds], [World.LastReport]) and never hold
// references into the arena.
//
// Ticks are strictly sequential; [World.Run] paces them at the
// configured rate and checks its context at the top of every iteration.
package engine
