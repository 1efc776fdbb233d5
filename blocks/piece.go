package blocks

import "github.com/lixenwraith/grid-arcade/grid"

// Color tags a filled board cell; 0 is empty
type Color uint8

// Empty marks an unoccupied board cell
const Empty Color = 0

// Piece is a tetromino with a rotation state, top-left anchor, and color tag
type Piece struct {
	Kind     Kind
	Rotation int
	Row      int
	Col      int
	Color    Color
}

// Shape returns the occupancy mask at the current rotation
func (p Piece) Shape() Matrix {
	return p.Kind.Shape(p.Rotation)
}

// Cells returns the absolute board cells the piece covers, including any above row 0
func (p Piece) Cells() []grid.Cell {
	return p.cellsAt(0, 0, p.Rotation)
}

func (p Piece) cellsAt(dx, dy, rotation int) []grid.Cell {
	offs := p.Kind.Offsets(rotation)
	cells := make([]grid.Cell, len(offs))
	for i, off := range offs {
		cells[i] = off.Offset(p.Row+dy, p.Col+dx)
	}
	return cells
}
