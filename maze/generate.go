package maze

import (
	"errors"
	"math/rand/v2"
	"time"
)

var ErrAlreadyGenerated = errors.New("maze already generated")

// Rand is the source of random draws for maze generation. *rand.Rand from
// math/rand/v2 satisfies it; tests may substitute a scripted stream.
type Rand interface {
	IntN(n int) int
}

// Generator carves a perfect maze into a fresh grid using randomized
// recursive backtracking. The recursion is kept on an explicit stack so
// large grids cannot exhaust call depth.
type Generator struct {
	rng Rand
}

// NewGenerator returns a generator backed by the given random source.
// A nil source falls back to a time-seeded PCG stream.
func NewGenerator(rng Rand) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
	}
	return &Generator{rng: rng}
}

// Generate turns a fully-closed grid into a perfect maze: the open edges
// form a spanning tree over all cells, so exactly one path exists between
// any two of them. A grid can be generated only once; a second call returns
// ErrAlreadyGenerated.
func (gen *Generator) Generate(g *Grid) error {
	if g.generated {
		return ErrAlreadyGenerated
	}
	g.generated = true

	visited := make(map[CellPosition]struct{}, g.width*g.height*g.depth)
	stack := []CellPosition{g.Start()}
	visited[g.Start()] = struct{}{}

	for len(stack) > 0 {
		current := stack[len(stack)-1]

		var frontier []Move
		for _, move := range g.Neighbors(current) {
			if _, seen := visited[move.To]; !seen {
				frontier = append(frontier, move)
			}
		}

		// Dead end: every neighbor is visited, backtrack.
		if len(frontier) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		next := frontier[gen.rng.IntN(len(frontier))]
		_ = g.Open(next.From, next.To)
		visited[next.To] = struct{}{}
		stack = append(stack, next.To)
	}

	return nil
}
