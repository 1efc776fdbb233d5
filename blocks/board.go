package blocks

// Board is the fixed-size well of locked cells, indexed [row][col] with row 0 at the top
type Board struct {
	width  int
	height int
	rows   [][]Color
}

// NewBoard creates an empty board
func NewBoard(width, height int) *Board {
	b := &Board{width: width, height: height, rows: make([][]Color, height)}
	for y := range b.rows {
		b.rows[y] = make([]Color, width)
	}
	return b
}

func (b *Board) Width() int  { return b.width }
func (b *Board) Height() int { return b.height }

// InBounds reports whether (row, col) lies on the board
func (b *Board) InBounds(row, col int) bool {
	return row >= 0 && row < b.height && col >= 0 && col < b.width
}

// At returns the color at (row, col); out-of-bounds reads as Empty
func (b *Board) At(row, col int) Color {
	if !b.InBounds(row, col) {
		return Empty
	}
	return b.rows[row][col]
}

// Set writes a color at (row, col); out-of-bounds writes are dropped
func (b *Board) Set(row, col int, c Color) {
	if b.InBounds(row, col) {
		b.rows[row][col] = c
	}
}

// rowComplete reports whether every cell in row y is filled
func (b *Board) rowComplete(y int) bool {
	for _, c := range b.rows[y] {
		if c == Empty {
			return false
		}
	}
	return true
}

// ClearLines removes every complete row, shifts the rows above down, and
// refills the top with empty rows. Returns the number of rows removed.
func (b *Board) ClearLines() int {
	kept := make([][]Color, 0, b.height)
	for y := 0; y < b.height; y++ {
		if !b.rowComplete(y) {
			kept = append(kept, b.rows[y])
		}
	}
	cleared := b.height - len(kept)
	if cleared == 0 {
		return 0
	}

	fresh := make([][]Color, cleared, b.height)
	for i := range fresh {
		fresh[i] = make([]Color, b.width)
	}
	b.rows = append(fresh, kept...)
	return cleared
}

// FilledInRow counts the non-empty cells of row y
func (b *Board) FilledInRow(y int) int {
	n := 0
	for _, c := range b.rows[y] {
		if c != Empty {
			n++
		}
	}
	return n
}

// Rows returns a deep copy of the board contents
func (b *Board) Rows() [][]Color {
	out := make([][]Color, b.height)
	for y, row := range b.rows {
		out[y] = append([]Color(nil), row...)
	}
	return out
}
