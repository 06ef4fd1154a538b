package maze

import (
	"errors"
	"slices"
)

var (
	ErrInvalidCell = errors.New("cell is out of the maze")
	ErrNoPathFound = errors.New("no path between the cells")
)

// Solve finds the shortest path between two cells using breadth-first
// search over the open edges, returning the cell sequence from start to end
// inclusive. On a generated maze the result is the unique path between the
// two cells.
//
// Returns ErrInvalidCell if either endpoint lies outside the grid and
// ErrNoPathFound if the end is unreachable; the latter cannot happen on a
// correctly generated maze and indicates a broken generation invariant.
func Solve(g *Grid, start, end CellPosition) ([]CellPosition, error) {
	if !g.InBound(start) || !g.InBound(end) {
		return nil, ErrInvalidCell
	}

	// cameFrom doubles as the visited set; the start maps to itself as the
	// root marker.
	cameFrom := map[CellPosition]CellPosition{start: start}
	queue := []CellPosition{start}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if current == end {
			return reconstructPath(cameFrom, start, end), nil
		}

		for _, move := range g.Neighbors(current) {
			open, _ := g.IsOpen(move.From, move.To)
			if !open {
				continue
			}
			if _, seen := cameFrom[move.To]; seen {
				continue
			}
			cameFrom[move.To] = current
			queue = append(queue, move.To)
		}
	}

	return nil, ErrNoPathFound
}

// reconstructPath walks the predecessor map backward from end to start and
// reverses the result.
func reconstructPath(cameFrom map[CellPosition]CellPosition, start, end CellPosition) []CellPosition {
	path := []CellPosition{end}
	for current := end; current != start; {
		current = cameFrom[current]
		path = append(path, current)
	}
	slices.Reverse(path)
	return path
}
