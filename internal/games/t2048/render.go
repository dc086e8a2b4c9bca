package t2048

import (
	"fmt"

	"github.com/vovakirdan/t2048/internal/core"
)

const (
	cellWidth  = 7 // Tile width in characters
	cellHeight = 3 // Tile height in characters
	hudHeight  = 3

	boardWidth  = Size*(cellWidth+1) + 1
	boardHeight = Size*(cellHeight+1) + 1

	minScreenW = boardWidth + 2
	minScreenH = hudHeight + boardHeight + 1
)

// boardColor fills the gaps between tiles.
const boardColor core.Color = "#bbada0"

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	boardX := (g.screenW - boardWidth) / 2
	boardY := hudHeight

	g.renderHUD(dst, boardX)
	g.renderBoard(dst, boardX, boardY)
	g.renderOverlays(dst, core.NewRect(boardX, boardY, boardWidth, boardHeight))
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH))
}

// renderHUD draws the title, score, max tile and move counters.
func (g *Game) renderHUD(dst *core.Screen, boardX int) {
	title := g.Title()
	dst.DrawTextStyled(boardX+(boardWidth-len(title))/2, 0, title, core.ColorYellow, core.ColorDefault)

	dst.DrawText(boardX, 1, fmt.Sprintf("Score: %d", g.engine.Score()))

	maxStr := fmt.Sprintf("Max: %d", g.engine.MaxTile())
	dst.DrawText(boardX+core.Max(boardWidth-len(maxStr), 0), 1, maxStr)

	moves := fmt.Sprintf("Moves: %d  Undo: %d", g.moves, g.engine.HistoryLen())
	dst.DrawTextStyled(boardX, 2, moves, core.ColorGray, core.ColorDefault)

	var status string
	switch {
	case g.autoplay:
		status = "AUTO"
	case g.hasLastDir:
		status = g.lastDir.String()
	}
	if status != "" {
		dst.DrawTextStyled(boardX+boardWidth-len(status), 2, status, core.ColorGreen, core.ColorDefault)
	}
}

// renderBoard draws the 4x4 grid of colored tiles.
func (g *Game) renderBoard(dst *core.Screen, boardX, boardY int) {
	dst.DrawRect(core.NewRect(boardX, boardY, boardWidth, boardHeight), ' ', boardColor)

	board := g.engine.Board()
	for y := range Size {
		for x := range Size {
			tile := board[y][x]
			tx := boardX + 1 + x*(cellWidth+1)
			ty := boardY + 1 + y*(cellHeight+1)

			dst.DrawRect(core.NewRect(tx, ty, cellWidth, cellHeight), ' ', tile.Color())

			label := tile.String()
			if label == "" {
				continue
			}
			pad := core.Clamp((cellWidth-len(label))/2, 0, cellWidth)
			dst.DrawTextStyled(tx+pad, ty+cellHeight/2, label, tile.TextColor(), tile.Color())
		}
	}
}

// renderOverlays draws pause and end-of-game messages over the board.
func (g *Game) renderOverlays(dst *core.Screen, board core.Rect) {
	switch {
	case g.paused:
		g.drawOverlay(dst, board, "PAUSED", "Press P to resume")
	case g.engine.Won():
		g.drawOverlay(dst, board, "You've won!", fmt.Sprintf("Score: %d", g.engine.Score()), "R: restart  U: undo")
	case g.engine.Lost():
		g.drawOverlay(dst, board, "You've lost :(", fmt.Sprintf("Max tile: %d", g.engine.MaxTile()), "R: restart  U: undo")
	}
}

// drawOverlay draws a centered text box.
func (g *Game) drawOverlay(dst *core.Screen, area core.Rect, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = core.Max(maxLen, len(line))
	}

	centerX, centerY := area.Center()
	box := core.NewRect(centerX-(maxLen+4)/2, centerY-(len(lines)+2)/2, maxLen+4, len(lines)+2)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box)

	for i, line := range lines {
		dst.DrawText(centerX-len(line)/2, box.Y+1+i, line)
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows/WASD: Move | Space: Auto | X: Random | U: Undo | Tab: Autoplay | P: Pause | R: Restart | Q: Quit"
}
