package geometry

// Size returns the total number of cells in the layout.
func (l Layout) Size() int {
	n := 0
	for _, amt := range l {
		n += amt
	}
	return n
}

// RowCol resolves a flat index to its row and column within the row.
// ok is false when idx is outside [0, Size()).
func (l Layout) RowCol(idx int) (row, col int, ok bool) {
	if idx < 0 {
		return 0, 0, false
	}
	for r, amt := range l {
		if idx < amt {
			return r, idx, true
		}
		idx -= amt
	}
	return 0, 0, false
}

// Index is the inverse of RowCol.
func (l Layout) Index(row, col int) (int, bool) {
	if row < 0 || row >= len(l) || col < 0 || col >= l[row] {
		return 0, false
	}
	idx := col
	for r := 0; r < row; r++ {
		idx += l[r]
	}
	return idx, true
}

// centre returns the horizontal and vertical offsets of (row, col) from the
// centre of the layout, in cell units.
func (l Layout) centre(row, col int) (dx, dy float64) {
	dx = float64(col) - float64(l[row]-1)/2
	dy = float64(len(l)-1)/2 - float64(row)
	return dx, dy
}
