// Package blockfall implements a falling-block puzzle game: a fixed grid that
// accepts falling pieces which can be shifted, rotated, locked and cleared.
package blockfall

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/core"
)

// Shape is a rectangular occupancy matrix indexed as Shape[row][col].
// Catalog shapes are never mutated; Rotate returns a fresh matrix.
type Shape [][]bool

// Width returns the number of columns in the shape's bounding box.
func (s Shape) Width() int {
	if len(s) == 0 {
		return 0
	}
	return len(s[0])
}

// Height returns the number of rows in the shape's bounding box.
func (s Shape) Height() int {
	return len(s)
}

// Clone returns a deep copy of the shape.
func (s Shape) Clone() Shape {
	out := make(Shape, len(s))
	for i, row := range s {
		out[i] = make([]bool, len(row))
		copy(out[i], row)
	}
	return out
}

// Equal returns true if both shapes have the same dimensions and cells.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for y := range s {
		if len(s[y]) != len(other[y]) {
			return false
		}
		for x := range s[y] {
			if s[y][x] != other[y][x] {
				return false
			}
		}
	}
	return true
}

// String renders the shape with '#' for occupied and '.' for empty cells.
func (s Shape) String() string {
	rows := make([]string, len(s))
	for y, row := range s {
		var sb strings.Builder
		for _, filled := range row {
			if filled {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		rows[y] = sb.String()
	}
	return strings.Join(rows, "\n")
}

// Rotate returns the shape turned a quarter: the transpose with its rows
// reversed. A W×H shape becomes H×W.
func Rotate(s Shape) Shape {
	h, w := s.Height(), s.Width()
	out := make(Shape, w)
	for i := range out {
		out[i] = make([]bool, h)
	}
	// transpose[c][r] = s[r][c]; reversing rows puts transpose row c at w-1-c
	for r := 0; r < h; r++ {
		for c := 0; c < w; c++ {
			out[w-1-c][r] = s[r][c]
		}
	}
	return out
}

// ParseShape builds a shape from text rows, where 'X' or '#' marks an
// occupied cell and '.' or ' ' an empty one.
func ParseShape(rows []string) (Shape, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("shape has no rows")
	}

	width := len(rows[0])
	shape := make(Shape, len(rows))
	occupied := 0

	for y, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("shape row %d has width %d, expected %d", y, len(row), width)
		}
		shape[y] = make([]bool, width)
		for x, ch := range row {
			switch ch {
			case 'X', 'x', '#':
				shape[y][x] = true
				occupied++
			case '.', ' ':
			default:
				return nil, fmt.Errorf("shape row %d has invalid character %q", y, ch)
			}
		}
	}

	if width == 0 || occupied == 0 {
		return nil, fmt.Errorf("shape has no occupied cells")
	}
	return shape, nil
}

// Piece is a catalog entry: a named shape with its color.
type Piece struct {
	Name  string
	Shape Shape
	Color core.Color
}

// Catalog is the fixed table of pieces a session spawns from.
type Catalog struct {
	pieces []Piece
}

// NewCatalog creates a catalog holding copies of the given pieces.
// Panics if pieces is empty.
func NewCatalog(pieces []Piece) *Catalog {
	if len(pieces) == 0 {
		panic("blockfall: catalog must contain at least one piece")
	}
	c := &Catalog{pieces: make([]Piece, len(pieces))}
	for i, p := range pieces {
		c.pieces[i] = Piece{Name: p.Name, Shape: p.Shape.Clone(), Color: p.Color}
	}
	return c
}

// DefaultCatalog returns the seven classic pieces.
func DefaultCatalog() *Catalog {
	return NewCatalog([]Piece{
		{Name: "I", Color: core.ColorCyan, Shape: Shape{
			{true, true, true, true},
		}},
		{Name: "O", Color: core.ColorBlue, Shape: Shape{
			{true, true},
			{true, true},
		}},
		{Name: "S", Color: core.ColorOrange, Shape: Shape{
			{false, true, true},
			{true, true, false},
		}},
		{Name: "Z", Color: core.ColorRed, Shape: Shape{
			{true, true, false},
			{false, true, true},
		}},
		{Name: "T", Color: core.ColorGreen, Shape: Shape{
			{true, true, true},
			{false, true, false},
		}},
		{Name: "L", Color: core.ColorYellow, Shape: Shape{
			{true, false, false},
			{true, true, true},
		}},
		{Name: "J", Color: core.ColorMagenta, Shape: Shape{
			{false, false, true},
			{true, true, true},
		}},
	})
}

// Size returns the number of distinct pieces.
func (c *Catalog) Size() int {
	return len(c.pieces)
}

// At returns the piece at index. The returned shape is a copy.
// Panics if index is outside [0, Size()).
func (c *Catalog) At(index int) Piece {
	if index < 0 || index >= len(c.pieces) {
		panic(fmt.Sprintf("blockfall: catalog index %d out of range [0, %d)", index, len(c.pieces)))
	}
	p := c.pieces[index]
	return Piece{Name: p.Name, Shape: p.Shape.Clone(), Color: p.Color}
}

// MaxWidth returns the widest bounding box in the catalog.
func (c *Catalog) MaxWidth() int {
	w := 0
	for _, p := range c.pieces {
		w = max(w, p.Shape.Width())
	}
	return w
}

// CatalogFromConfig builds a catalog from configured pieces.
func CatalogFromConfig(pieces []config.PieceConfig) (*Catalog, error) {
	if len(pieces) == 0 {
		return nil, fmt.Errorf("catalog: no pieces configured")
	}
	out := make([]Piece, 0, len(pieces))
	for i, pc := range pieces {
		color, ok := core.ParseColor(pc.Color)
		if !ok || color == core.ColorDefault {
			return nil, fmt.Errorf("catalog: piece %d (%s): bad color %q", i, pc.Name, pc.Color)
		}
		shape, err := ParseShape(pc.Shape)
		if err != nil {
			return nil, fmt.Errorf("catalog: piece %d (%s): %w", i, pc.Name, err)
		}
		out = append(out, Piece{Name: pc.Name, Shape: shape, Color: color})
	}
	return NewCatalog(out), nil
}
