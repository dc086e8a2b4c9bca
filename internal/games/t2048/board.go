package t2048

// Size is the board dimension.
const Size = 4

// Board is the 4x4 grid of tiles, indexed [row][column].
// Boards are values: assigning one copies every cell.
type Board [Size][Size]Tile

// Cell addresses a board position.
type Cell struct {
	Row, Col int
}

// rotate returns the board turned 90° counter-clockwise.
// The right column becomes the top row; four rotations are the identity.
func rotate(b Board) Board {
	var out Board
	for x := range Size {
		for y := range Size {
			out[x][y] = b[y][Size-1-x]
		}
	}
	return out
}

// rotateN applies n counter-clockwise rotations.
func rotateN(b Board, n int) Board {
	for range n % 4 {
		b = rotate(b)
	}
	return b
}

// compressRow slides all tiles to the left, keeping their order.
// Reports whether any cell changed.
func compressRow(row *[Size]Tile) bool {
	before := *row
	write := 0
	for _, t := range before {
		if t != 0 {
			row[write] = t
			write++
		}
	}
	for ; write < Size; write++ {
		row[write] = 0
	}
	return *row != before
}

// mergeRow merges equal neighbours of an already compressed row, left to
// right. A merged tile is never merged again in the same pass: after a merge
// the row is recompressed and the scan continues with the pair to its right.
// Returns the points gained, the largest merged value and whether anything
// merged.
func mergeRow(row *[Size]Tile) (gained int, top Tile, changed bool) {
	for i := 1; i < Size; i++ {
		if row[i-1] == 0 || row[i-1] != row[i] {
			continue
		}
		row[i-1] *= 2
		row[i] = 0
		compressRow(row)

		merged := row[i-1]
		gained += int(merged)
		top = max(top, merged)
		changed = true
	}
	return gained, top, changed
}

// hasMerge reports whether two horizontally adjacent tiles can merge.
func hasMerge(b Board) bool {
	for _, row := range b {
		for x := 1; x < Size; x++ {
			if row[x] != 0 && row[x-1] == row[x] {
				return true
			}
		}
	}
	return false
}

// EmptyCells returns the positions of all empty cells in row-major order.
func (b Board) EmptyCells() []Cell {
	var cells []Cell
	for y := range Size {
		for x := range Size {
			if b[y][x].IsEmpty() {
				cells = append(cells, Cell{Row: y, Col: x})
			}
		}
	}
	return cells
}

// EmptyCount returns the number of empty cells.
func (b Board) EmptyCount() int {
	n := 0
	for y := range Size {
		for x := range Size {
			if b[y][x].IsEmpty() {
				n++
			}
		}
	}
	return n
}

// Sum returns the total of all tile values.
func (b Board) Sum() int {
	sum := 0
	for y := range Size {
		for x := range Size {
			sum += int(b[y][x])
		}
	}
	return sum
}

// Max returns the largest tile on the board.
func (b Board) Max() Tile {
	var top Tile
	for y := range Size {
		for x := range Size {
			top = max(top, b[y][x])
		}
	}
	return top
}

// Values returns the board as plain integers, row-major.
func (b Board) Values() [Size][Size]int {
	var out [Size][Size]int
	for y := range Size {
		for x := range Size {
			out[y][x] = int(b[y][x])
		}
	}
	return out
}
