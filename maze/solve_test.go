package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSolveSingleCell(t *testing.T) {
	g, err := New(1, 1, 1)
	assert.NoError(t, err)

	path, err := Solve(g, g.Start(), g.End())
	assert.NoError(t, err)
	assert.Equal(t, []CellPosition{{}}, path)
}

func TestSolveStartEqualsEnd(t *testing.T) {
	g, err := New(3, 3, 2)
	assert.NoError(t, err)
	assert.NoError(t, NewGenerator(testRand(3)).Generate(g))

	target := CellPosition{X: 1, Y: 2, Z: 1}
	path, err := Solve(g, target, target)
	assert.NoError(t, err)
	assert.Equal(t, []CellPosition{target}, path)
}

func TestSolveInvalidCell(t *testing.T) {
	g, err := New(2, 2, 1)
	assert.NoError(t, err)

	_, err = Solve(g, CellPosition{X: -1}, g.End())
	assert.ErrorIs(t, err, ErrInvalidCell)

	_, err = Solve(g, g.Start(), CellPosition{X: 2})
	assert.ErrorIs(t, err, ErrInvalidCell)
}

func TestSolveNoPath(t *testing.T) {
	// An ungenerated grid keeps every edge closed; ErrNoPathFound here is
	// what surfaces a broken generation invariant in production.
	g, err := New(2, 1, 1)
	assert.NoError(t, err)

	_, err = Solve(g, g.Start(), g.End())
	assert.ErrorIs(t, err, ErrNoPathFound)
}

func TestSolveManualCorridor(t *testing.T) {
	g, err := New(2, 2, 1)
	assert.NoError(t, err)
	assert.NoError(t, g.Open(CellPosition{}, CellPosition{X: 1}))
	assert.NoError(t, g.Open(CellPosition{X: 1}, CellPosition{X: 1, Y: 1}))

	path, err := Solve(g, g.Start(), g.End())
	assert.NoError(t, err)
	assert.Equal(t, []CellPosition{{}, {X: 1}, {X: 1, Y: 1}}, path)
}

func TestSolvePrefersShortestWalk(t *testing.T) {
	// Open all four edges of a 2x2x1 grid. The cycle offers two two-edge
	// walks to the end; BFS must return one of minimum length, and with the
	// fixed neighbor order it is the east-first one.
	g, err := New(2, 2, 1)
	assert.NoError(t, err)
	assert.NoError(t, g.Open(CellPosition{}, CellPosition{X: 1}))
	assert.NoError(t, g.Open(CellPosition{}, CellPosition{Y: 1}))
	assert.NoError(t, g.Open(CellPosition{X: 1}, CellPosition{X: 1, Y: 1}))
	assert.NoError(t, g.Open(CellPosition{Y: 1}, CellPosition{X: 1, Y: 1}))

	path, err := Solve(g, g.Start(), g.End())
	assert.NoError(t, err)
	assert.Equal(t, []CellPosition{{}, {X: 1}, {X: 1, Y: 1}}, path)
}

func TestSolveGeneratedMaze(t *testing.T) {
	g, err := New(5, 4, 3)
	assert.NoError(t, err)
	assert.NoError(t, NewGenerator(testRand(11)).Generate(g))

	path, err := Solve(g, g.Start(), g.End())
	assert.NoError(t, err)
	assert.Equal(t, g.Start(), path[0])
	assert.Equal(t, g.End(), path[len(path)-1])

	for i := 1; i < len(path); i++ {
		open, err := g.IsOpen(path[i-1], path[i])
		assert.NoError(t, err)
		assert.True(t, open)
	}

	t.Run("deterministic", func(t *testing.T) {
		again, err := Solve(g, g.Start(), g.End())
		assert.NoError(t, err)
		assert.Equal(t, path, again)
	})

	t.Run("length matches BFS depth", func(t *testing.T) {
		assert.Equal(t, bfsDepth(g, g.Start(), g.End()), len(path)-1)
	})
}

func TestSolveAllPairsShortest(t *testing.T) {
	g, err := New(3, 3, 2)
	assert.NoError(t, err)
	assert.NoError(t, NewGenerator(testRand(5)).Generate(g))

	var cells []CellPosition
	for z := 0; z < g.Depth(); z++ {
		for y := 0; y < g.Height(); y++ {
			for x := 0; x < g.Width(); x++ {
				cells = append(cells, CellPosition{X: x, Y: y, Z: z})
			}
		}
	}

	for _, from := range cells {
		for _, to := range cells {
			path, err := Solve(g, from, to)
			assert.NoError(t, err)
			assert.Equalf(t, bfsDepth(g, from, to), len(path)-1, "path %s -> %s", from, to)
		}
	}
}

// bfsDepth computes the open-edge distance between two cells layer by
// layer, independently of the solver's bookkeeping.
func bfsDepth(g *Grid, start, end CellPosition) int {
	depth := 0
	seen := map[CellPosition]struct{}{start: {}}
	frontier := []CellPosition{start}
	for len(frontier) > 0 {
		var next []CellPosition
		for _, pos := range frontier {
			if pos == end {
				return depth
			}
			for _, move := range g.Neighbors(pos) {
				open, _ := g.IsOpen(move.From, move.To)
				if !open {
					continue
				}
				if _, ok := seen[move.To]; ok {
					continue
				}
				seen[move.To] = struct{}{}
				next = append(next, move.To)
			}
		}
		frontier = next
		depth++
	}
	return -1
}
