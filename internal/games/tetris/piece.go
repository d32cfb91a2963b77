// Package tetris implements a falling-block puzzle: seven three-by-three
// tetrominoes dropping into a fixed grid, row clearing, and a tick-driven
// controller whose speed scales with score.
//
// Boards and pieces have value semantics. Every function in this package
// returns a new board instead of modifying its input.
package tetris

// PieceSize is the side of the square frame every piece is drawn in.
const PieceSize = 3

// Piece is a tetromino on a PieceSize x PieceSize grid of 0/1 cells.
// It is an array, so assignment copies it.
type Piece [PieceSize][PieceSize]int

// PieceKind identifies one of the catalog shapes.
type PieceKind int

const (
	Square PieceKind = iota
	L
	Bar
	MirrorL
	Z
	MirrorZ
	T
)

// NoPiece marks the absence of a falling piece.
const NoPiece PieceKind = -1

// Catalog holds the seven shapes, indexed by PieceKind.
var Catalog = [...]Piece{
	Square:  {{0, 0, 0}, {1, 1, 0}, {1, 1, 0}},
	L:       {{1, 1, 1}, {1, 0, 0}, {0, 0, 0}},
	Bar:     {{1, 1, 1}, {0, 0, 0}, {0, 0, 0}},
	MirrorL: {{1, 1, 1}, {0, 0, 1}, {0, 0, 0}},
	Z:       {{1, 1, 0}, {0, 1, 1}, {0, 0, 0}},
	MirrorZ: {{0, 1, 1}, {1, 1, 0}, {0, 0, 0}},
	T:       {{1, 1, 1}, {0, 1, 0}, {0, 0, 0}},
}

// PieceCount is the number of shapes in the catalog.
const PieceCount = len(Catalog)

var kindNames = [...]string{
	Square:  "Square",
	L:       "L",
	Bar:     "Bar",
	MirrorL: "Mirror L",
	Z:       "Z",
	MirrorZ: "Mirror Z",
	T:       "T",
}

func (k PieceKind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "None"
	}
	return kindNames[k]
}

// Shape returns the catalog piece for k rotated clockwise times quarter turns.
func (k PieceKind) Shape(times int) Piece {
	return Rotate(Catalog[k], times)
}

// Rotate turns p clockwise by times quarter turns. Negative counts rotate the
// other way. Each turn transposes the grid and then reverses every row.
func Rotate(p Piece, times int) Piece {
	times %= 4
	if times < 0 {
		times += 4
	}

	for ; times > 0; times-- {
		for i := 0; i < PieceSize; i++ {
			for j := i + 1; j < PieceSize; j++ {
				p[i][j], p[j][i] = p[j][i], p[i][j]
			}
		}
		for i := range p {
			row := &p[i]
			for a, b := 0, PieceSize-1; a < b; a, b = a+1, b-1 {
				row[a], row[b] = row[b], row[a]
			}
		}
	}
	return p
}

// Cells returns the number of occupied cells.
func (p Piece) Cells() int {
	n := 0
	for _, row := range p {
		for _, v := range row {
			if v != 0 {
				n++
			}
		}
	}
	return n
}
