package fluid

import "math"

// Grid is a uniform-cell spatial index over the simulation domain. It turns
// the O(n^2) all-pairs neighbor search into a near-O(n) pass: each particle
// only inspects the 3x3 block of cells around its own cell.
//
// The 3x3 block is a superset of all true neighbors only while
// cellSize >= smoothing radius. Grid does not enforce that relationship;
// Params.Validate checks it at construction.
//
// Returned indices refer to the particle slice passed to the last Rebuild
// and are valid only until the next Rebuild.
type Grid struct {
	cellSize float64
	cols     int
	rows     int
	cells    [][]int
}

// NewGrid creates a grid covering [0, width) x [0, height). Dimensions are
// truncated toward zero, so a sliver of the domain beyond cols*cellSize is
// not covered; particles there are treated as out of domain.
func NewGrid(width, height, cellSize float64) *Grid {
	cols := int(width / cellSize)
	rows := int(height / cellSize)

	cells := make([][]int, cols*rows)
	for i := range cells {
		cells[i] = make([]int, 0, 8)
	}

	return &Grid{
		cellSize: cellSize,
		cols:     cols,
		rows:     rows,
		cells:    cells,
	}
}

// CellSize returns the grid cell edge length.
func (g *Grid) CellSize() float64 {
	return g.cellSize
}

// Dims returns the grid dimensions in cells.
func (g *Grid) Dims() (cols, rows int) {
	return g.cols, g.rows
}

// Rebuild clears every cell and reinserts all particles. A particle whose
// cell coordinates fall outside the grid is omitted from every cell and
// becomes invisible to queries until it reenters the domain.
func (g *Grid) Rebuild(particles []Particle) {
	for i := range g.cells {
		g.cells[i] = g.cells[i][:0]
	}

	for i := range particles {
		// Floor, not truncate: a coordinate in (-cellSize, 0) must map to
		// cell -1 and be rejected, not land in cell 0.
		cx := int(math.Floor(particles[i].Pos.X / g.cellSize))
		cy := int(math.Floor(particles[i].Pos.Y / g.cellSize))

		if cx >= 0 && cx < g.cols && cy >= 0 && cy < g.rows {
			idx := cy*g.cols + cx
			g.cells[idx] = append(g.cells[idx], i)
		}
	}
}

// QueryInto appends the candidate neighbors of point (x, y) to dst and
// returns the updated slice. Candidates are every particle in the 3x3 block
// of cells centered on the cell containing the point, in cell-scan order;
// cells outside the grid are skipped. Reuse dst across calls to avoid
// allocations.
//
// Candidates farther than the smoothing radius are included; callers must
// filter by exact distance.
func (g *Grid) QueryInto(dst []int, x, y float64) []int {
	cx := int(math.Floor(x / g.cellSize))
	cy := int(math.Floor(y / g.cellSize))

	for dy := -1; dy <= 1; dy++ {
		ny := cy + dy
		if ny < 0 || ny >= g.rows {
			continue
		}
		for dx := -1; dx <= 1; dx++ {
			nx := cx + dx
			if nx < 0 || nx >= g.cols {
				continue
			}
			dst = append(dst, g.cells[ny*g.cols+nx]...)
		}
	}

	return dst
}

// Query returns the candidate neighbors of point (x, y) in a fresh slice.
func (g *Grid) Query(x, y float64) []int {
	return g.QueryInto(nil, x, y)
}
