package i

import (
	"github.com/beka-birhanu/voxmaze/maze"
	"github.com/google/uuid"
)

// MazeManager owns the live set of generated mazes and serves the
// read-only views consumed by the API layer.
type MazeManager interface {
	// Create generates a new maze with the given dimensions and registers
	// it under a fresh ID. A zero dimension falls back to its default; a
	// zero seed lets the generator seed itself.
	Create(width, height, depth int, seed int64) (uuid.UUID, error)

	// Grid returns the maze registered under the given ID. The caller must
	// treat the grid as read-only.
	Grid(id uuid.UUID) (*maze.Grid, error)

	// Solve finds the shortest path from the maze's start cell to its end
	// cell.
	Solve(id uuid.UUID) ([]maze.CellPosition, error)

	// Delete drops the maze registered under the given ID.
	Delete(id uuid.UUID) error
}
