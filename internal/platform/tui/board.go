package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/t2048/internal/games/t2048"
)

var boardTileStyle = lipgloss.NewStyle().Width(6).Align(lipgloss.Center)

// RenderBoard draws a board as a grid of colored tiles for plain terminal
// output, outside the full-screen program.
func RenderBoard(b t2048.Board) string {
	rows := make([]string, 0, t2048.Size)
	for _, row := range b {
		cells := make([]string, 0, t2048.Size)
		for _, tile := range row {
			label := tile.String()
			if label == "" {
				label = "·"
			}
			style := boardTileStyle.
				Foreground(lipgloss.Color(tile.TextColor())).
				Background(lipgloss.Color(tile.Color()))
			cells = append(cells, style.Render(label))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
