package tetris

// Board is a grid of occupancy counts indexed [row][col].
// A settled board holds only 0 and 1; a count above 1 means two pieces overlap.
type Board [][]int

// NewBoard returns an empty rows x cols board.
func NewBoard(rows, cols int) Board {
	b := make(Board, rows)
	for r := range b {
		b[r] = make([]int, cols)
	}
	return b
}

// Rows returns the number of rows.
func (b Board) Rows() int {
	return len(b)
}

// Cols returns the number of columns, taken from the first row.
func (b Board) Cols() int {
	if len(b) == 0 {
		return 0
	}
	return len(b[0])
}

// At returns the count at (row, col) and whether that cell exists.
func (b Board) At(row, col int) (int, bool) {
	if row < 0 || row >= len(b) || col < 0 || col >= len(b[row]) {
		return 0, false
	}
	return b[row][col], true
}

// Clone returns a deep copy.
func (b Board) Clone() Board {
	out := make(Board, len(b))
	for r, row := range b {
		out[r] = append([]int(nil), row...)
	}
	return out
}

// Equal reports whether both boards have the same shape and counts.
func (b Board) Equal(other Board) bool {
	if len(b) != len(other) {
		return false
	}
	for r := range b {
		if len(b[r]) != len(other[r]) {
			return false
		}
		for c := range b[r] {
			if b[r][c] != other[r][c] {
				return false
			}
		}
	}
	return true
}

// Occupied returns the number of non-empty cells.
func (b Board) Occupied() int {
	n := 0
	for _, row := range b {
		for _, v := range row {
			if v != 0 {
				n++
			}
		}
	}
	return n
}

// normalized returns a copy with every non-zero count set to 1.
func (b Board) normalized() Board {
	out := b.Clone()
	for _, row := range out {
		for c, v := range row {
			if v != 0 {
				row[c] = 1
			}
		}
	}
	return out
}

// Merge returns a copy of b with p added at pos. Each board cell under the
// piece frame gains the piece cell's value; frame cells that fall outside the
// board are dropped.
func Merge(b Board, p Piece, pos Position) Board {
	out := b.Clone()
	for x := 0; x < PieceSize; x++ {
		for y := 0; y < PieceSize; y++ {
			r, c := pos.Row+x, pos.Col+y
			if _, ok := out.At(r, c); ok {
				out[r][c] += p[x][y]
			}
		}
	}
	return out
}

// isFull reports whether every cell in row is occupied.
func isFull(row []int) bool {
	for _, v := range row {
		if v == 0 {
			return false
		}
	}
	return true
}

// ClearFullRows removes every full row, shifts the remaining rows down in
// their original order and fills the vacated top rows with zeros. It returns
// the new board and the number of rows removed.
func ClearFullRows(b Board) (Board, int) {
	out := NewBoard(b.Rows(), b.Cols())
	dst := len(b) - 1
	cleared := 0

	for r := len(b) - 1; r >= 0; r-- {
		if isFull(b[r]) {
			cleared++
			continue
		}
		copy(out[dst], b[r])
		dst--
	}
	return out, cleared
}

// IsGameOver reports whether the top row holds any occupied cell.
func IsGameOver(b Board) bool {
	if len(b) == 0 {
		return false
	}
	for _, v := range b[0] {
		if v != 0 {
			return true
		}
	}
	return false
}
