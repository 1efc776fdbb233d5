package grid

// Cell is a (row, column) grid coordinate, comparable and usable as a map key
type Cell struct {
	Row int
	Col int
}

// C is shorthand for Cell{Row: row, Col: col}
func C(row, col int) Cell {
	return Cell{Row: row, Col: col}
}

// Step returns the neighbouring cell one step along d
func (c Cell) Step(d Direction) Cell {
	dr, dc := d.Delta()
	return Cell{Row: c.Row + dr, Col: c.Col + dc}
}

// Offset returns the cell translated by (dRow, dCol)
func (c Cell) Offset(dRow, dCol int) Cell {
	return Cell{Row: c.Row + dRow, Col: c.Col + dCol}
}

// ContainsCell reports whether c appears in cells
func ContainsCell(cells []Cell, c Cell) bool {
	for _, x := range cells {
		if x == c {
			return true
		}
	}
	return false
}

// CellSet is a set of cells for constant-time membership checks
type CellSet map[Cell]struct{}

// NewCellSet builds a set from the given cells
func NewCellSet(cells ...Cell) CellSet {
	s := make(CellSet, len(cells))
	for _, c := range cells {
		s[c] = struct{}{}
	}
	return s
}

// Has reports set membership
func (s CellSet) Has(c Cell) bool {
	_, ok := s[c]
	return ok
}

// Add inserts c
func (s CellSet) Add(c Cell) {
	s[c] = struct{}{}
}
