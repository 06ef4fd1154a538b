package maze

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringSingleCell(t *testing.T) {
	g, err := New(1, 1, 1)
	assert.NoError(t, err)

	// Start and end coincide; the end marker wins.
	assert.Equal(t, "z=0\n+---+\n| E |\n+---+\n", g.String())
}

func TestStringOpenCorridor(t *testing.T) {
	g, err := New(2, 1, 1)
	assert.NoError(t, err)
	assert.NoError(t, g.Open(CellPosition{}, CellPosition{X: 1}))

	assert.Equal(t, "z=0\n+---+---+\n| S   E |\n+---+---+\n", g.String())
}

func TestStringVerticalPassage(t *testing.T) {
	g, err := New(1, 1, 2)
	assert.NoError(t, err)
	assert.NoError(t, g.Open(CellPosition{}, CellPosition{Z: 1}))

	assert.Equal(t, "z=0\n+---+\n| Su|\n+---+\nz=1\n+---+\n|dE |\n+---+\n", g.String())
}

func TestRenderMarksPath(t *testing.T) {
	g, err := New(3, 3, 2)
	assert.NoError(t, err)
	assert.NoError(t, NewGenerator(testRand(9)).Generate(g))

	path, err := Solve(g, g.Start(), g.End())
	assert.NoError(t, err)

	art := g.Render(path)
	assert.Equal(t, 2, strings.Count(art, "z="))
	assert.Contains(t, art, "S")
	assert.Contains(t, art, "E")
	// Interior path cells are starred.
	assert.Equal(t, len(path)-2, strings.Count(art, "*"))
}
