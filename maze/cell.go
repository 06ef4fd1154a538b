package maze

import "fmt"

// Direction identifies one of the six axis-aligned moves between adjacent
// cells. East/West run along X, South/North along Y, Up/Down along Z.
type Direction string

const (
	East  Direction = "East"  // +X
	West  Direction = "West"  // -X
	South Direction = "South" // +Y
	North Direction = "North" // -Y
	Up    Direction = "Up"    // +Z
	Down  Direction = "Down"  // -Z
)

var (
	// Directions maps each direction to its coordinate delta.
	Directions = map[Direction]CellPosition{
		East:  {X: 1},
		West:  {X: -1},
		South: {Y: 1},
		North: {Y: -1},
		Up:    {Z: 1},
		Down:  {Z: -1},
	}

	// directionOrder fixes the enumeration order of neighbors. Keeping it
	// stable makes generation and solving reproducible for a fixed random
	// stream.
	directionOrder = []Direction{East, West, South, North, Up, Down}
)

// opposite returns the direction pointing back across the same edge.
func (d Direction) opposite() Direction {
	switch d {
	case East:
		return West
	case West:
		return East
	case South:
		return North
	case North:
		return South
	case Up:
		return Down
	default:
		return Up
	}
}

// CellPosition identifies a cell by its coordinates within the grid,
// 0 <= X < width, 0 <= Y < height, 0 <= Z < depth.
type CellPosition struct {
	X int
	Y int
	Z int
}

// String renders the position as "(x,y,z)".
func (p CellPosition) String() string {
	return fmt.Sprintf("(%d,%d,%d)", p.X, p.Y, p.Z)
}

// shift returns the position one step away in the given direction.
func (p CellPosition) shift(d Direction) CellPosition {
	delta := Directions[d]
	return CellPosition{X: p.X + delta.X, Y: p.Y + delta.Y, Z: p.Z + delta.Z}
}

// Cell holds the wall state of a single grid cell. Every inter-cell edge is
// recorded on both of its endpoints; Grid.Open keeps the two sides in sync.
type Cell struct {
	NorthWall bool
	SouthWall bool
	EastWall  bool
	WestWall  bool
	UpWall    bool
	DownWall  bool
}

// wall reports whether the wall facing the given direction is present.
func (c *Cell) wall(d Direction) bool {
	switch d {
	case East:
		return c.EastWall
	case West:
		return c.WestWall
	case South:
		return c.SouthWall
	case North:
		return c.NorthWall
	case Up:
		return c.UpWall
	default:
		return c.DownWall
	}
}

// setWall sets the wall facing the given direction.
func (c *Cell) setWall(d Direction, present bool) {
	switch d {
	case East:
		c.EastWall = present
	case West:
		c.WestWall = present
	case South:
		c.SouthWall = present
	case North:
		c.NorthWall = present
	case Up:
		c.UpWall = present
	default:
		c.DownWall = present
	}
}

// Move represents a step from one cell to an adjacent one in a specific
// direction.
type Move struct {
	From      CellPosition
	To        CellPosition
	Direction Direction
}

// Wall is a closed edge between two adjacent cells, exposed for renderers.
type Wall struct {
	A CellPosition
	B CellPosition
}
