// Package mazeapi exposes maze generation, inspection and solving over HTTP.
package mazeapi

import (
	"github.com/beka-birhanu/voxmaze/maze"
	"github.com/google/uuid"
)

// CreateMazeRequest represents a request to generate a new maze. Zero
// dimensions fall back to the server defaults; a zero seed produces an
// unpredictable maze.
type CreateMazeRequest struct {
	Width  int   `json:"width"`
	Height int   `json:"height"`
	Depth  int   `json:"depth"`
	Seed   int64 `json:"seed"`
}

// CellResponse represents one cell position of a maze.
type CellResponse struct {
	X int `json:"x"`
	Y int `json:"y"`
	Z int `json:"z"`
}

// WallResponse represents one closed edge between two adjacent cells.
type WallResponse struct {
	A CellResponse `json:"a"`
	B CellResponse `json:"b"`
}

// MazeResponse represents the wall-and-dimension view of a maze.
type MazeResponse struct {
	ID     string         `json:"id"`
	Width  int            `json:"width"`
	Height int            `json:"height"`
	Depth  int            `json:"depth"`
	Start  CellResponse   `json:"start"`
	End    CellResponse   `json:"end"`
	Walls  []WallResponse `json:"walls"`
}

// SolutionResponse represents the shortest start-to-end path of a maze.
// Steps counts moves, one less than the number of path cells.
type SolutionResponse struct {
	ID    string         `json:"id"`
	Steps int            `json:"steps"`
	Path  []CellResponse `json:"path"`
}

func newCellResponse(pos maze.CellPosition) CellResponse {
	return CellResponse{X: pos.X, Y: pos.Y, Z: pos.Z}
}

func newMazeResponse(id uuid.UUID, g *maze.Grid) *MazeResponse {
	walls := g.Walls()
	wallResponses := make([]WallResponse, 0, len(walls))
	for _, w := range walls {
		wallResponses = append(wallResponses, WallResponse{
			A: newCellResponse(w.A),
			B: newCellResponse(w.B),
		})
	}

	return &MazeResponse{
		ID:     id.String(),
		Width:  g.Width(),
		Height: g.Height(),
		Depth:  g.Depth(),
		Start:  newCellResponse(g.Start()),
		End:    newCellResponse(g.End()),
		Walls:  wallResponses,
	}
}

func newSolutionResponse(id uuid.UUID, path []maze.CellPosition) *SolutionResponse {
	cells := make([]CellResponse, 0, len(path))
	for _, pos := range path {
		cells = append(cells, newCellResponse(pos))
	}

	return &SolutionResponse{
		ID:    id.String(),
		Steps: len(cells) - 1,
		Path:  cells,
	}
}
