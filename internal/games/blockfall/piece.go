package blockfall

import "github.com/vovakirdan/blockfall/internal/core"

// Point is a board coordinate: X is the column, Y the row.
type Point struct {
	X, Y int
}

// ActivePiece is the falling piece. X and Y locate the top-left corner of
// its shape on the grid.
type ActivePiece struct {
	Name  string
	Shape Shape
	Color core.Color
	X, Y  int
}

// Clone returns a deep copy of the piece.
func (p ActivePiece) Clone() ActivePiece {
	p.Shape = p.Shape.Clone()
	return p
}

// Cells returns the board coordinates of every occupied shape cell.
func (p ActivePiece) Cells() []Point {
	cells := make([]Point, 0, 4)
	for sy, row := range p.Shape {
		for sx, filled := range row {
			if filled {
				cells = append(cells, Point{X: p.X + sx, Y: p.Y + sy})
			}
		}
	}
	return cells
}

// spawnColumn centers a shape of the given width on a board of cols columns.
func spawnColumn(cols, width int) int {
	return cols/2 - width/2
}
