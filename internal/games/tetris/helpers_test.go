package tetris

// scriptedRand returns a fixed sequence of values and records the bounds it
// was asked for.
type scriptedRand struct {
	values []int
	next   int
	bounds []int
}

func newScriptedRand(values ...int) *scriptedRand {
	return &scriptedRand{values: values}
}

func (s *scriptedRand) Intn(n int) int {
	s.bounds = append(s.bounds, n)
	if len(s.values) == 0 {
		return 0
	}
	v := s.values[s.next%len(s.values)]
	s.next++
	return v % n
}

// boardFrom builds a board from rows of '#' (occupied) and '.' (empty).
func boardFrom(rows ...string) Board {
	b := NewBoard(len(rows), len(rows[0]))
	for r, line := range rows {
		for c, ch := range line {
			if ch == '#' {
				b[r][c] = 1
			}
		}
	}
	return b
}

// emptyRows returns n rows of cols dots, for padding boardFrom input.
func emptyRows(n, cols int) []string {
	rows := make([]string, n)
	for i := range rows {
		line := make([]byte, cols)
		for j := range line {
			line[j] = '.'
		}
		rows[i] = string(line)
	}
	return rows
}
