/*
Package maze provides tools for building and solving 3D mazes on a regular
grid.

It defines the Grid structure, a width x height x depth lattice of cells
whose inter-cell edges start out closed (walled). A Generator carves a
perfect maze into a fresh grid with randomized recursive backtracking, and
Solve finds the unique shortest path between two cells with breadth-first
search.

Renderers and other collaborators consume the read-only views: the grid
dimensions, the enumerable wall list, and the solution path. ASCII
visualization of the maze is included for debugging.
*/
package maze

import "errors"

const (
	// maxMazeCells caps the total cell count; generation and solving stay
	// well under a second below it.
	maxMazeCells = 4096
)

var (
	ErrInvalidDimension = errors.New("invalid maze dimensions")
	ErrNotAdjacent      = errors.New("cells are not adjacent")
)

// Grid represents a 3D maze grid: the set of cells plus the open/closed
// state of every edge between axis-adjacent cells.
type Grid struct {
	width  int
	height int
	depth  int
	cells  [][][]*Cell // indexed [z][y][x]

	generated bool
}

// New initializes a grid of the given dimensions with every edge closed.
// Dimensions must be at least 1 and the total cell count must not exceed
// the practical cap.
func New(width, height, depth int) (*Grid, error) {
	// The cap is compared by division: a direct width*height*depth product
	// can wrap around for huge dimensions and slip past the check.
	if min(width, height, depth) < 1 || width > maxMazeCells/height/depth {
		return nil, ErrInvalidDimension
	}

	cells := make([][][]*Cell, depth)
	for z := range cells {
		cells[z] = make([][]*Cell, height)
		for y := range cells[z] {
			cells[z][y] = make([]*Cell, width)
			for x := range cells[z][y] {
				cells[z][y][x] = &Cell{
					NorthWall: true,
					SouthWall: true,
					EastWall:  true,
					WestWall:  true,
					UpWall:    true,
					DownWall:  true,
				}
			}
		}
	}

	return &Grid{
		width:  width,
		height: height,
		depth:  depth,
		cells:  cells,
	}, nil
}

// Width returns the grid size along X.
func (g *Grid) Width() int { return g.width }

// Height returns the grid size along Y.
func (g *Grid) Height() int { return g.height }

// Depth returns the grid size along Z.
func (g *Grid) Depth() int { return g.depth }

// Start returns the fixed entry cell (0,0,0).
func (g *Grid) Start() CellPosition { return CellPosition{} }

// End returns the fixed exit cell (width-1, height-1, depth-1).
func (g *Grid) End() CellPosition {
	return CellPosition{X: g.width - 1, Y: g.height - 1, Z: g.depth - 1}
}

// InBound reports whether the position lies within the grid.
func (g *Grid) InBound(pos CellPosition) bool {
	return pos.X >= 0 && pos.X < g.width &&
		pos.Y >= 0 && pos.Y < g.height &&
		pos.Z >= 0 && pos.Z < g.depth
}

func (g *Grid) cellAt(pos CellPosition) *Cell {
	return g.cells[pos.Z][pos.Y][pos.X]
}

// Neighbors finds all in-bounds moves from a given cell position. The
// result order is fixed: +X, -X, +Y, -Y, +Z, -Z.
func (g *Grid) Neighbors(pos CellPosition) []Move {
	var result []Move
	for _, dir := range directionOrder {
		neighbor := pos.shift(dir)
		if g.InBound(neighbor) {
			result = append(result, Move{From: pos, To: neighbor, Direction: dir})
		}
	}
	return result
}

// direction resolves the direction leading from a to b, reporting false
// when the two cells are not in-bounds grid neighbors.
func (g *Grid) direction(a, b CellPosition) (Direction, bool) {
	if !g.InBound(a) || !g.InBound(b) {
		return "", false
	}
	for _, dir := range directionOrder {
		if a.shift(dir) == b {
			return dir, true
		}
	}
	return "", false
}

// IsOpen reports whether the edge between two adjacent cells is open.
// Returns ErrNotAdjacent if the cells are not in-bounds grid neighbors.
func (g *Grid) IsOpen(a, b CellPosition) (bool, error) {
	dir, ok := g.direction(a, b)
	if !ok {
		return false, ErrNotAdjacent
	}
	return !g.cellAt(a).wall(dir) && !g.cellAt(b).wall(dir.opposite()), nil
}

// Open removes the wall between two adjacent cells, updating both sides of
// the edge. Opening an already-open edge is a no-op. Returns ErrNotAdjacent
// if the cells are not in-bounds grid neighbors.
func (g *Grid) Open(a, b CellPosition) error {
	dir, ok := g.direction(a, b)
	if !ok {
		return ErrNotAdjacent
	}
	g.cellAt(a).setWall(dir, false)
	g.cellAt(b).setWall(dir.opposite(), false)
	return nil
}

// Walls enumerates every closed edge as a pair of adjacent cell positions,
// in a fixed order. Renderers consume this view to draw wall geometry; the
// outer boundary of the grid is not part of it, only inter-cell edges are.
func (g *Grid) Walls() []Wall {
	var walls []Wall
	for z := 0; z < g.depth; z++ {
		for y := 0; y < g.height; y++ {
			for x := 0; x < g.width; x++ {
				pos := CellPosition{X: x, Y: y, Z: z}
				for _, dir := range []Direction{East, South, Up} {
					neighbor := pos.shift(dir)
					if g.InBound(neighbor) && g.cellAt(pos).wall(dir) {
						walls = append(walls, Wall{A: pos, B: neighbor})
					}
				}
			}
		}
	}
	return walls
}
