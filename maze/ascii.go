package maze

import (
	"fmt"
	"strings"
)

// Render provides a textual representation of the maze, one Z layer at a
// time, with an optional solution path overlaid. Within a cell the middle
// character marks the start (S), the end (E) or a path cell (*); the side
// characters mark open vertical passages to the layer below (d) and above
// (u).
func (g *Grid) Render(path []CellPosition) string {
	marks := make(map[CellPosition]byte, len(path)+2)
	for _, pos := range path {
		marks[pos] = '*'
	}
	marks[g.Start()] = 'S'
	marks[g.End()] = 'E'

	var output string
	for z := 0; z < g.depth; z++ {
		output += fmt.Sprintf("z=%d\n", z)

		// Top boundary
		output += "+" + strings.Repeat("---+", g.width) + "\n"

		for y := 0; y < g.height; y++ {
			// Cell rows
			cellRow := "|"
			for x := 0; x < g.width; x++ {
				pos := CellPosition{X: x, Y: y, Z: z}
				cell := g.cellAt(pos)

				interior := [3]byte{' ', ' ', ' '}
				if !cell.DownWall {
					interior[0] = 'd'
				}
				if mark, ok := marks[pos]; ok {
					interior[1] = mark
				}
				if !cell.UpWall {
					interior[2] = 'u'
				}
				cellRow += string(interior[:])

				// Add east wall or space
				if cell.EastWall {
					cellRow += "|"
				} else {
					cellRow += " "
				}
			}
			output += cellRow + "\n"

			// Wall rows
			wallRow := "+"
			for x := 0; x < g.width; x++ {
				cell := g.cells[z][y][x]

				// Add south wall or space
				if cell.SouthWall {
					wallRow += "---+"
				} else {
					wallRow += "   +"
				}
			}
			output += wallRow + "\n"
		}
	}

	return output
}

// String renders the maze without a path overlay.
func (g *Grid) String() string {
	return g.Render(nil)
}
