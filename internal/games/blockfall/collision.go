package blockfall

// Collides reports whether shape, with its top-left corner at column x and
// row y, hits a side wall, the floor, or an occupied grid cell.
//
// Shape cells above row 0 are open sky: they are checked against the side
// walls but never against the grid, so a piece may overlap the top edge.
func Collides(shape Shape, x, y int, grid *Grid) bool {
	for sy, row := range shape {
		for sx, filled := range row {
			if !filled {
				continue
			}
			col, r := x+sx, y+sy
			if col < 0 || col >= grid.Columns() || r >= grid.Rows() {
				return true
			}
			if r < 0 {
				continue
			}
			if grid.Occupied(r, col) {
				return true
			}
		}
	}
	return false
}
