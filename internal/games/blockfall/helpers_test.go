package blockfall

import "github.com/vovakirdan/blockfall/internal/core"

// scriptedRand returns a fixed sequence of indices, repeating it forever.
type scriptedRand struct {
	seq []int
	pos int
}

func (r *scriptedRand) Intn(n int) int {
	v := r.seq[r.pos%len(r.seq)] % n
	r.pos++
	return v
}

func always(index int) *scriptedRand {
	return &scriptedRand{seq: []int{index}}
}

const (
	pieceI = 0
	pieceO = 1
	pieceT = 4
)

func dotCatalog() *Catalog {
	return NewCatalog([]Piece{{Name: "dot", Shape: Shape{{true}}, Color: core.ColorWhite}})
}

func fillRow(g *Grid, row int, color core.Color, skip ...int) {
	for col := range g.Columns() {
		skipped := false
		for _, s := range skip {
			if s == col {
				skipped = true
			}
		}
		if !skipped {
			g.SetCell(row, col, color)
		}
	}
}
