package grid

// Bounds describes a play area whose outermost ring of cells is a wall.
// Rows 0 and MaxRow and columns 0 and MaxCol are wall cells; everything
// strictly between them is playable interior.
type Bounds struct {
	MaxRow int
	MaxCol int
}

// Interior reports whether c lies strictly inside the wall ring
func (b Bounds) Interior(c Cell) bool {
	return c.Row > 0 && c.Row < b.MaxRow && c.Col > 0 && c.Col < b.MaxCol
}

// InteriorRows returns the number of playable rows
func (b Bounds) InteriorRows() int {
	if b.MaxRow < 2 {
		return 0
	}
	return b.MaxRow - 1
}

// InteriorCols returns the number of playable columns
func (b Bounds) InteriorCols() int {
	if b.MaxCol < 2 {
		return 0
	}
	return b.MaxCol - 1
}

// InteriorSize returns the number of playable cells
func (b Bounds) InteriorSize() int {
	return b.InteriorRows() * b.InteriorCols()
}
