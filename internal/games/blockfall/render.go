package blockfall

import (
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/blockfall/internal/core"
)

const (
	cellWidth  = 2  // screen columns per board cell
	panelWidth = 22 // side panel, including the gap to the board
	hudHeight  = 1  // title row above the board
)

// layoutSize returns the minimum screen size for the configured board.
func (g *Game) layoutSize() (w, h int) {
	w = g.cfg.Board.Columns*cellWidth + 2 + panelWidth
	h = g.cfg.Board.Rows + 2 + hudHeight
	return w, h
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	layoutW, _ := g.layoutSize()
	boardW := g.cfg.Board.Columns*cellWidth + 2
	boardH := g.cfg.Board.Rows + 2
	boardX := core.Clamp((g.screenW-layoutW)/2, 0, g.screenW)
	boardY := hudHeight
	board := core.NewRect(boardX, boardY, boardW, boardH)

	title := "BLOCKFALL"
	dst.DrawText(boardX+(boardW-len(title))/2, 0, title)

	dst.DrawBox(board)
	g.renderBoard(dst, boardX+1, boardY+1)
	g.renderPanel(dst, boardX+boardW+2, boardY)

	centerX, centerY := board.Center()
	switch {
	case g.session.GameOver():
		g.drawOverlay(dst, centerX, centerY, "Game Over", "Press R to restart")
	case g.paused:
		g.drawOverlay(dst, centerX, centerY, "PAUSED", "Press P to resume")
	}
}

// renderBoard draws locked cells and the active piece with the skin glyph.
func (g *Game) renderBoard(dst *core.Screen, originX, originY int) {
	glyph := g.wallet.Active().Glyph
	snap := g.session.Snapshot()

	for row := range snap.Rows {
		for col := range snap.Columns {
			if c := snap.Cells[row][col]; c != Empty {
				dst.DrawTextColored(originX+col*cellWidth, originY+row, glyph, c)
			}
		}
	}

	if snap.Piece == nil {
		return
	}
	visible := core.NewRect(0, 0, snap.Columns, snap.Rows)
	for _, p := range snap.Piece.Cells() {
		// Cells above the top row are not drawn
		if !visible.Contains(p.X, p.Y) {
			continue
		}
		dst.DrawTextColored(originX+p.X*cellWidth, originY+p.Y, glyph, snap.Piece.Color)
	}
}

// renderPanel draws coins, the skin shop and the key hints.
func (g *Game) renderPanel(dst *core.Screen, x, y int) {
	w := g.wallet
	skin := w.Active()

	dst.DrawText(x, y, fmt.Sprintf("Coins: %d", w.Coins()))
	label := "Skin: " + skin.Name
	dst.DrawText(x, y+1, label)
	dst.DrawTextColored(x+utf8.RuneCountInString(label)+1, y+1, skin.Glyph, core.ColorCyan)

	shop := "All skins owned"
	for _, s := range w.Skins() {
		if !w.Owns(s.ID) {
			shop = fmt.Sprintf("B: %s (%d)", s.Name, s.Cost)
			break
		}
	}
	dst.DrawText(x, y+3, shop)

	if g.noticeTicks > 0 && g.notice != "" {
		dst.DrawTextColored(x, y+4, g.notice, core.ColorYellow)
	}

	hints := []string{
		"A/D   Move",
		"W     Rotate",
		"S     Drop",
		"P     Pause",
		"R     Restart",
		"Q     Quit",
	}
	for i, h := range hints {
		dst.DrawTextColored(x, y+6+i, h, core.ColorGray)
	}
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	minW, minH := g.layoutSize()
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", minW, minH))
}

// drawOverlay draws a centered boxed message.
func (g *Game) drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, utf8.RuneCountInString(line))
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	box := core.NewRect(centerX-boxW/2, centerY-boxH/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	for i, line := range lines {
		x := centerX - utf8.RuneCountInString(line)/2
		dst.DrawText(x, box.Y+1+i, line)
	}
}
