package blocks

import "github.com/lixenwraith/grid-arcade/grid"

// Kind identifies one of the seven tetrominoes
type Kind uint8

const (
	KindI Kind = iota
	KindO
	KindT
	KindS
	KindZ
	KindJ
	KindL
	KindCount
)

var kindNames = [...]string{"I", "O", "T", "S", "Z", "J", "L"}

func (k Kind) String() string {
	if k < KindCount {
		return kindNames[k]
	}
	return "?"
}

// Matrix is a square occupancy mask for one rotation state, indexed [row][col]
type Matrix [][]bool

const (
	x = true
	o = false
)

// shapes lists every rotation state per kind; rotation counts follow the
// classic simple layout (I, S, Z have two states, O one, T, J, L four)
var shapes = [KindCount][]Matrix{
	KindI: {
		{{o, o, o, o}, {x, x, x, x}, {o, o, o, o}, {o, o, o, o}},
		{{o, o, x, o}, {o, o, x, o}, {o, o, x, o}, {o, o, x, o}},
	},
	KindO: {
		{{x, x}, {x, x}},
	},
	KindT: {
		{{x, x, x}, {o, x, o}, {o, o, o}},
		{{o, x, o}, {x, x, o}, {o, x, o}},
		{{o, o, o}, {o, x, o}, {x, x, x}},
		{{o, x, o}, {o, x, x}, {o, x, o}},
	},
	KindS: {
		{{o, x, x}, {x, x, o}, {o, o, o}},
		{{x, o, o}, {x, x, o}, {o, x, o}},
	},
	KindZ: {
		{{x, x, o}, {o, x, x}, {o, o, o}},
		{{o, x, o}, {x, x, o}, {x, o, o}},
	},
	KindJ: {
		{{x, o, o}, {x, x, x}, {o, o, o}},
		{{x, x, o}, {x, o, o}, {x, o, o}},
		{{o, o, o}, {x, x, x}, {o, o, x}},
		{{o, x, o}, {o, x, o}, {x, x, o}},
	},
	KindL: {
		{{o, o, x}, {x, x, x}, {o, o, o}},
		{{x, o, o}, {x, o, o}, {x, x, o}},
		{{o, o, o}, {x, x, x}, {x, o, o}},
		{{o, x, x}, {o, x, o}, {o, x, o}},
	},
}

// offsets caches the occupied (row, col) offsets of every rotation state
var offsets [KindCount][][]grid.Cell

func init() {
	for k := range shapes {
		offsets[k] = make([][]grid.Cell, len(shapes[k]))
		for r, m := range shapes[k] {
			for row := range m {
				for col, filled := range m[row] {
					if filled {
						offsets[k][r] = append(offsets[k][r], grid.C(row, col))
					}
				}
			}
		}
	}
}

// Rotations returns the number of distinct rotation states of k
func (k Kind) Rotations() int {
	return len(shapes[k])
}

// Shape returns the occupancy mask of k at rotation r (taken modulo the rotation count)
func (k Kind) Shape(r int) Matrix {
	return shapes[k][r%len(shapes[k])]
}

// Offsets returns the occupied cell offsets of k at rotation r
func (k Kind) Offsets(r int) []grid.Cell {
	return offsets[k][r%len(offsets[k])]
}
