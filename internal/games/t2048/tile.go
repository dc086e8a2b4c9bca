package t2048

import (
	"strconv"

	"github.com/vovakirdan/t2048/internal/core"
)

// Tile is the value of a single board cell: 0 for an empty cell,
// otherwise a power of two.
type Tile uint32

// WinTile is the tile value that wins the game.
const WinTile Tile = 2048

// Tile palette, keyed by exact value.
var tileColors = map[Tile]core.Color{
	0:    "#cdc1b4",
	2:    "#eee4da",
	4:    "#ede0c8",
	8:    "#f2b179",
	16:   "#f59563",
	32:   "#f67c5f",
	64:   "#f65e3b",
	128:  "#edcf72",
	256:  "#edcc61",
	512:  "#edc850",
	1024: "#edc53f",
	2048: "#edc22e",
}

const (
	overflowColor  core.Color = "#ff0000"
	darkTextColor  core.Color = "#776e65"
	lightTextColor core.Color = "#f9f6f2"
)

// IsEmpty reports whether the cell holds no tile.
func (t Tile) IsEmpty() bool {
	return t == 0
}

// Color returns the tile background color. Values beyond the palette
// share a single overflow color.
func (t Tile) Color() core.Color {
	if c, ok := tileColors[t]; ok {
		return c
	}
	return overflowColor
}

// TextColor returns the color used for the tile's number.
func (t Tile) TextColor() core.Color {
	if t < 16 {
		return darkTextColor
	}
	return lightTextColor
}

// String returns the decimal value, or "" for an empty tile.
func (t Tile) String() string {
	if t.IsEmpty() {
		return ""
	}
	return strconv.FormatUint(uint64(t), 10)
}
