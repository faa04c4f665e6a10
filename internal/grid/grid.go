// Package grid provides broad-phase collision candidate generation via a
// uniform spatial grid.
//
// Particles are bucketed by floor-dividing their position by the cell
// size. With cells at least one particle diameter wide, any overlapping
// pair sits in the same cell or in adjacent cells, so candidate pairs
// come from each cell's 3x3 Moore neighborhood. The same unordered pair
// is reachable from several cell/neighbor combinations; a visited set
// keyed by ordered index pair guarantees each pair is yielded once.
package grid

import "github.com/san-kum/gaslab/internal/gas"

// Grid buckets particle indices into fixed-size square cells. It is a
// transient structure: rebuilt from scratch (or via Rebuild) every tick,
// never persisted across ticks.
type Grid struct {
	cellSize float64
	cols     int
	rows     int
	cells    [][]int
}

// New creates a grid covering a domain of the given size. cellSize must
// be at least the largest particle diameter for CandidatePairs to see
// every true overlap.
func New(width, height, cellSize float64) *Grid {
	cols := int(width/cellSize) + 1
	rows := int(height/cellSize) + 1
	return &Grid{
		cellSize: cellSize,
		cols:     cols,
		rows:     rows,
		cells:    make([][]int, cols*rows),
	}
}

// Cell returns the cell coordinate containing position (x, y).
func (g *Grid) Cell(x, y float64) (col, row int) {
	col = int(x / g.cellSize)
	row = int(y / g.cellSize)
	// Wall clamping keeps positions in-domain, but guard the edges
	// against float drift anyway.
	if col < 0 {
		col = 0
	} else if col >= g.cols {
		col = g.cols - 1
	}
	if row < 0 {
		row = 0
	} else if row >= g.rows {
		row = g.rows - 1
	}
	return col, row
}

// Rebuild clears the grid and re-inserts every particle into the cell
// containing its current position. Bucket slices are reused between
// ticks to avoid reallocating.
func (g *Grid) Rebuild(particles []gas.Particle) {
	for i := range g.cells {
		g.cells[i] = g.cells[i][:0]
	}
	for i := range particles {
		col, row := g.Cell(particles[i].X, particles[i].Y)
		idx := row*g.cols + col
		g.cells[idx] = append(g.cells[idx], i)
	}
}

// CandidatePairs calls fn once per unordered candidate pair (i, j) with
// i < j. Candidates are particles sharing a cell or sitting in adjacent
// cells. Iteration order is deterministic for a given build: cells in
// row-major order, buckets in insertion order.
func (g *Grid) CandidatePairs(fn func(i, j int)) {
	visited := make(map[uint64]struct{})

	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			bucket := g.cells[row*g.cols+col]
			if len(bucket) == 0 {
				continue
			}
			for dr := -1; dr <= 1; dr++ {
				nr := row + dr
				if nr < 0 || nr >= g.rows {
					continue
				}
				for dc := -1; dc <= 1; dc++ {
					nc := col + dc
					if nc < 0 || nc >= g.cols {
						continue
					}
					neighbor := g.cells[nr*g.cols+nc]
					for _, a := range bucket {
						for _, b := range neighbor {
							if a == b {
								continue
							}
							key := pairKey(a, b)
							if _, seen := visited[key]; seen {
								continue
							}
							visited[key] = struct{}{}
							if a < b {
								fn(a, b)
							} else {
								fn(b, a)
							}
						}
					}
				}
			}
		}
	}
}

// pairKey packs an unordered index pair into one comparable key.
func pairKey(a, b int) uint64 {
	if a > b {
		a, b = b, a
	}
	return uint64(a)<<32 | uint64(b)
}
