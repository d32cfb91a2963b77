package tetris

// Position is the board coordinate of a piece frame's top-left cell.
// It may lie outside the board while a move is being tested.
type Position struct {
	Row int
	Col int
}

// IsValidPlacement reports whether p can sit at pos: the anchor is not
// negative, every occupied piece cell is on the board, and no occupied piece
// cell lands on an occupied board cell.
//
// Empty piece cells are never checked, so a frame may hang over the right
// or bottom edge as long as only its empty cells do.
func IsValidPlacement(b Board, p Piece, pos Position) bool {
	if pos.Row < 0 || pos.Col < 0 {
		return false
	}

	rows, cols := b.Rows(), b.Cols()
	for x := 0; x < PieceSize; x++ {
		for y := 0; y < PieceSize; y++ {
			if p[x][y] == 0 {
				continue
			}
			r, c := pos.Row+x, pos.Col+y
			if r >= rows || c >= cols {
				return false
			}
			v, ok := b.At(r, c)
			if !ok || v+p[x][y] > 1 {
				return false
			}
		}
	}
	return true
}

// IsLocked reports whether a piece at pos can no longer stay there: an
// occupied piece cell is at or below the bottom edge, or overlaps an occupied
// board cell. Hanging over the right edge is not a lock condition.
//
// Occupied cells with coordinates the board cannot address (negative, or
// past the end of a short row) count as locked.
func IsLocked(b Board, p Piece, pos Position) bool {
	rows, cols := b.Rows(), b.Cols()
	for x := 0; x < PieceSize; x++ {
		for y := 0; y < PieceSize; y++ {
			if p[x][y] == 0 {
				continue
			}
			r, c := pos.Row+x, pos.Col+y
			if r >= rows {
				return true
			}
			if c >= cols {
				continue
			}
			v, ok := b.At(r, c)
			if !ok || v+p[x][y] > 1 {
				return true
			}
		}
	}
	return false
}
