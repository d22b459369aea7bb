package blockfall

import (
	"fmt"

	"github.com/vovakirdan/blockfall/internal/core"
)

// Empty is the value of an unoccupied grid cell.
const Empty = core.ColorDefault

// Grid is the playfield: Rows() rows of Columns() cells, row 0 at the top.
// Each cell is Empty or holds the color of the piece that locked there.
// The dimensions never change after construction.
type Grid struct {
	rows  int
	cols  int
	cells [][]core.Color
}

// NewGrid creates an empty grid. Panics on non-positive dimensions.
func NewGrid(rows, cols int) *Grid {
	if rows <= 0 || cols <= 0 {
		panic(fmt.Sprintf("blockfall: invalid grid size %dx%d", rows, cols))
	}
	g := &Grid{rows: rows, cols: cols, cells: make([][]core.Color, rows)}
	for r := range g.cells {
		g.cells[r] = make([]core.Color, cols)
	}
	return g
}

// Rows returns the number of rows.
func (g *Grid) Rows() int {
	return g.rows
}

// Columns returns the number of columns.
func (g *Grid) Columns() int {
	return g.cols
}

// InBounds returns true if (row, col) lies on the grid.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

func (g *Grid) mustInBounds(row, col int) {
	if !g.InBounds(row, col) {
		panic(fmt.Sprintf("blockfall: cell (%d, %d) outside %dx%d grid", row, col, g.rows, g.cols))
	}
}

// CellAt returns the color at (row, col), or Empty.
// Panics if the cell is out of bounds.
func (g *Grid) CellAt(row, col int) core.Color {
	g.mustInBounds(row, col)
	return g.cells[row][col]
}

// Occupied returns true if the cell at (row, col) is not Empty.
// Panics if the cell is out of bounds.
func (g *Grid) Occupied(row, col int) bool {
	return g.CellAt(row, col) != Empty
}

// SetCell writes a single cell, overwriting whatever was there.
// Panics if the cell is out of bounds.
func (g *Grid) SetCell(row, col int, color core.Color) {
	g.mustInBounds(row, col)
	g.cells[row][col] = color
}

func (g *Grid) rowFull(row int) bool {
	for _, c := range g.cells[row] {
		if c == Empty {
			return false
		}
	}
	return true
}

// ClearFullRows removes every completely occupied row and inserts one empty
// row at the top per removed row. Surviving rows keep their relative order.
// Returns the number of rows removed.
func (g *Grid) ClearFullRows() int {
	write := g.rows - 1
	for read := g.rows - 1; read >= 0; read-- {
		if g.rowFull(read) {
			continue
		}
		g.cells[write] = g.cells[read]
		write--
	}

	cleared := write + 1
	for ; write >= 0; write-- {
		g.cells[write] = make([]core.Color, g.cols)
	}
	return cleared
}

// Reset empties every cell.
func (g *Grid) Reset() {
	for r := range g.cells {
		clear(g.cells[r])
	}
}

// Cells returns a deep copy of the cell matrix, indexed [row][col].
func (g *Grid) Cells() [][]core.Color {
	out := make([][]core.Color, g.rows)
	for r, row := range g.cells {
		out[r] = make([]core.Color, g.cols)
		copy(out[r], row)
	}
	return out
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	return &Grid{rows: g.rows, cols: g.cols, cells: g.Cells()}
}

// Equal returns true if both grids have the same size and contents.
func (g *Grid) Equal(other *Grid) bool {
	if g.rows != other.rows || g.cols != other.cols {
		return false
	}
	for r := range g.cells {
		for c := range g.cells[r] {
			if g.cells[r][c] != other.cells[r][c] {
				return false
			}
		}
	}
	return true
}

// FilledCount returns the number of occupied cells.
func (g *Grid) FilledCount() int {
	n := 0
	for _, row := range g.cells {
		for _, c := range row {
			if c != Empty {
				n++
			}
		}
	}
	return n
}
