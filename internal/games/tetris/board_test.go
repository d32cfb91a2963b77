package tetris

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBoard(t *testing.T) {
	b := NewBoard(15, 10)
	assert.Equal(t, 15, b.Rows())
	assert.Equal(t, 10, b.Cols())
	assert.Zero(t, b.Occupied())

	_, ok := b.At(15, 0)
	assert.False(t, ok)
	_, ok = b.At(0, -1)
	assert.False(t, ok)
	v, ok := b.At(14, 9)
	assert.True(t, ok)
	assert.Zero(t, v)
}

func TestCloneIsDeep(t *testing.T) {
	b := NewBoard(3, 3)
	c := b.Clone()
	c[1][1] = 1
	assert.Zero(t, b[1][1])
	assert.False(t, b.Equal(c))
	assert.True(t, b.Equal(b.Clone()))
}

func TestMerge(t *testing.T) {
	b := NewBoard(15, 10)
	got := Merge(b, Catalog[Bar], Position{Row: 14, Col: 3})

	assert.Zero(t, b.Occupied(), "input board must not change")
	assert.Equal(t, 3, got.Occupied())
	for c := 3; c <= 5; c++ {
		assert.Equal(t, 1, got[14][c])
	}
}

func TestMergeDropsOutOfBoundsCells(t *testing.T) {
	b := NewBoard(4, 4)

	got := Merge(b, Catalog[Bar], Position{Row: 0, Col: 2})
	assert.Equal(t, 2, got.Occupied())

	got = Merge(b, Catalog[Square], Position{Row: -2, Col: 0})
	assert.Equal(t, 2, got.Occupied())
	assert.Equal(t, 1, got[0][0])
	assert.Equal(t, 1, got[0][1])
}

func TestMergeAddsCounts(t *testing.T) {
	b := NewBoard(4, 4)
	b[0][0] = 1
	got := Merge(b, Catalog[Bar], Position{Row: 0, Col: 0})
	assert.Equal(t, 2, got[0][0])
	assert.Equal(t, 1, got.normalized()[0][0])
}

func TestClearFullRowsNoop(t *testing.T) {
	b := Merge(NewBoard(15, 10), Catalog[T], Position{Row: 5, Col: 2})
	got, cleared := ClearFullRows(b)
	assert.Zero(t, cleared)
	assert.True(t, b.Equal(got))
}

func TestClearFullRowsShiftsDown(t *testing.T) {
	rows := emptyRows(13, 10)
	rows = append(rows,
		"#.........",
		"####.#####",
	)
	b := boardFrom(rows...)

	pos := Position{Row: 13, Col: 3}
	require.True(t, IsValidPlacement(b, Catalog[T], pos))
	merged := Merge(b, Catalog[T], pos)

	got, cleared := ClearFullRows(merged)
	assert.Equal(t, 1, cleared)
	assert.Equal(t, 15, got.Rows())
	assert.Equal(t, []int{1, 0, 0, 1, 1, 1, 0, 0, 0, 0}, got[14])
	assert.Equal(t, make([]int, 10), got[0])
	assert.Equal(t, 4, got.Occupied())
}

func TestClearFullRowsKeepsOrder(t *testing.T) {
	b := boardFrom(
		"#...",
		"####",
		".#..",
		"####",
		"..#.",
	)
	got, cleared := ClearFullRows(b)
	assert.Equal(t, 2, cleared)
	assert.True(t, boardFrom(
		"....",
		"....",
		"#...",
		".#..",
		"..#.",
	).Equal(got))
}

func TestIsGameOver(t *testing.T) {
	b := NewBoard(15, 10)
	assert.False(t, IsGameOver(b))

	b[1][4] = 1
	assert.False(t, IsGameOver(b))

	b[0][9] = 1
	assert.True(t, IsGameOver(b))

	assert.False(t, IsGameOver(Board{}))
}
