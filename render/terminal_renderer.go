// Package render draws game snapshots onto a tcell screen
package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/grid-arcade/blocks"
	"github.com/lixenwraith/grid-arcade/constants"
	"github.com/lixenwraith/grid-arcade/snake"
)

const (
	blockGlyph = '█'
	ghostGlyph = '░'
	foodGlyph  = '*'

	speedMeterWidth = 10
	previewRows     = 4
)

// TerminalRenderer handles all terminal rendering
type TerminalRenderer struct {
	screen tcell.Screen
	width  int
	height int
}

// NewTerminalRenderer creates a renderer sized to the screen
func NewTerminalRenderer(screen tcell.Screen) *TerminalRenderer {
	w, h := screen.Size()
	return &TerminalRenderer{screen: screen, width: w, height: h}
}

// syncSize picks up terminal resizes before a frame is drawn
func (r *TerminalRenderer) syncSize() {
	r.width, r.height = r.screen.Size()
}

// setCell writes one cell, silently clipping anything off screen
func (r *TerminalRenderer) setCell(x, y int, ch rune, style tcell.Style) {
	if x < 0 || y < 0 || x >= r.width || y >= r.height {
		return
	}
	r.screen.SetContent(x, y, ch, nil, style)
}

func (r *TerminalRenderer) drawText(x, y int, text string, style tcell.Style) {
	i := 0
	for _, ch := range text {
		r.setCell(x+i, y, ch, style)
		i++
	}
}

func (r *TerminalRenderer) drawCentered(centerX, y int, text string, style tcell.Style) {
	r.drawText(centerX-len(text)/2, y, text, style)
}

// drawBox draws a single-line frame with corners at (x0,y0) and (x1,y1)
func (r *TerminalRenderer) drawBox(x0, y0, x1, y1 int, style tcell.Style) {
	for x := x0 + 1; x < x1; x++ {
		r.setCell(x, y0, tcell.RuneHLine, style)
		r.setCell(x, y1, tcell.RuneHLine, style)
	}
	for y := y0 + 1; y < y1; y++ {
		r.setCell(x0, y, tcell.RuneVLine, style)
		r.setCell(x1, y, tcell.RuneVLine, style)
	}
	r.setCell(x0, y0, tcell.RuneULCorner, style)
	r.setCell(x1, y0, tcell.RuneURCorner, style)
	r.setCell(x0, y1, tcell.RuneLLCorner, style)
	r.setCell(x1, y1, tcell.RuneLRCorner, style)
}

// RenderSnake renders a snake frame. Cell (row, col) maps to screen (col, row)
// so the walls at row/col 0 and MaxRow/MaxCol become the border.
func (r *TerminalRenderer) RenderSnake(s snake.Snapshot, paused bool) {
	r.syncSize()
	r.screen.Clear()
	defaultStyle := tcell.StyleDefault.Background(RgbBackground)

	r.drawBox(0, 0, s.Bounds.MaxCol, s.Bounds.MaxRow, defaultStyle.Foreground(RgbBorder))

	scoreText := fmt.Sprintf(" Score: %d ", s.Score)
	r.drawCentered((s.Bounds.MaxCol+1)/2, 0, scoreText, defaultStyle.Foreground(RgbScore))

	r.setCell(s.Food.Col, s.Food.Row, foodGlyph, defaultStyle.Foreground(RgbFood))

	// Tail first so the head wins when segments share a cell at game over
	for i := len(s.Body) - 1; i >= 0; i-- {
		color := RgbSnakeBody
		if i == 0 {
			color = RgbSnakeHead
		}
		r.setCell(s.Body[i].Col, s.Body[i].Row, blockGlyph, defaultStyle.Foreground(color))
	}

	r.drawSpeedMeter(s.Speed, s.Bounds.MaxRow+constants.HUDRows, defaultStyle)

	if paused {
		r.drawPaused((s.Bounds.MaxCol+1)/2, s.Bounds.MaxRow/2, defaultStyle)
	}

	r.screen.Show()
}

// drawSpeedMeter draws the speed gradient bar on the HUD row
func (r *TerminalRenderer) drawSpeedMeter(progress float64, y int, defaultStyle tcell.Style) {
	label := "Speed "
	r.drawText(0, y, label, defaultStyle.Foreground(RgbStatusText))

	filled := int(progress*speedMeterWidth + 0.5)
	for x := 0; x < speedMeterWidth; x++ {
		style := defaultStyle.Foreground(RgbMeterOff)
		if x < filled {
			style = defaultStyle.Foreground(GetSpeedMeterColor(float64(x+1) / speedMeterWidth))
		}
		r.setCell(len(label)+x, y, blockGlyph, style)
	}
	r.drawText(len(label)+speedMeterWidth+2, y, "p pause  q quit", defaultStyle.Foreground(RgbHintText))
}

// RenderBlocks renders a blocks frame: framed board, ghost, falling piece,
// and the side panel with stats and next-piece preview
func (r *TerminalRenderer) RenderBlocks(s blocks.Snapshot, paused bool) {
	r.syncSize()
	r.screen.Clear()
	defaultStyle := tcell.StyleDefault.Background(RgbBackground)

	height := len(s.Board)
	width := 0
	if height > 0 {
		width = len(s.Board[0])
	}
	boardRight := width*constants.BlocksCellWidth + 1
	r.drawBox(0, 0, boardRight, height+1, defaultStyle.Foreground(RgbBorder))

	for row, line := range s.Board {
		for col, c := range line {
			if c != blocks.Empty {
				r.drawBoardCell(row, col, blockGlyph, defaultStyle.Foreground(PieceColor(c)))
			}
		}
	}

	if !s.GameOver {
		for _, c := range s.Ghost.Cells() {
			r.drawBoardCell(c.Row, c.Col, ghostGlyph, defaultStyle.Foreground(RgbGhost))
		}
		pieceStyle := defaultStyle.Foreground(PieceColor(s.Current.Color))
		for _, c := range s.Current.Cells() {
			r.drawBoardCell(c.Row, c.Col, blockGlyph, pieceStyle)
		}
	}

	r.drawPanel(boardRight+constants.BlocksPanelGap, s, defaultStyle)

	if paused {
		r.drawPaused((boardRight+1)/2, (height+2)/2, defaultStyle)
	}
	if s.GameOver {
		r.drawCentered((boardRight+1)/2, (height+2)/2, " "+constants.TextGameOver+" ",
			defaultStyle.Foreground(RgbGameOver).Bold(true))
	}

	r.screen.Show()
}

// drawBoardCell draws one board cell inside the frame; rows above the top are hidden
func (r *TerminalRenderer) drawBoardCell(row, col int, glyph rune, style tcell.Style) {
	if row < 0 {
		return
	}
	x := 1 + col*constants.BlocksCellWidth
	for i := 0; i < constants.BlocksCellWidth; i++ {
		r.setCell(x+i, row+1, glyph, style)
	}
}

func (r *TerminalRenderer) drawPanel(x int, s blocks.Snapshot, defaultStyle tcell.Style) {
	keyStyle := defaultStyle.Foreground(RgbPanelKey)
	valStyle := defaultStyle.Foreground(RgbStatusText)

	stats := []struct {
		label string
		value int
	}{
		{"Score: ", s.Score},
		{"Level: ", s.Level},
		{"Lines: ", s.Lines},
	}
	for i, st := range stats {
		r.drawText(x, 1+i, st.label, keyStyle)
		r.drawText(x+len(st.label), 1+i, fmt.Sprint(st.value), valStyle)
	}

	previewY := 2 + len(stats)
	r.drawText(x, previewY, constants.TextNextPiece, keyStyle)
	nextStyle := defaultStyle.Foreground(PieceColor(s.Next.Color))
	for row, line := range s.Next.Shape() {
		if row >= previewRows {
			break
		}
		for col, filled := range line {
			if !filled {
				continue
			}
			px := x + col*constants.BlocksCellWidth
			for i := 0; i < constants.BlocksCellWidth; i++ {
				r.setCell(px+i, previewY+1+row, blockGlyph, nextStyle)
			}
		}
	}
}

func (r *TerminalRenderer) drawPaused(centerX, y int, defaultStyle tcell.Style) {
	style := defaultStyle.Foreground(tcell.ColorBlack).Background(RgbPausedBg).Bold(true)
	r.drawCentered(centerX, y, constants.TextPaused, style)
}

// RenderGameOver clears the screen and shows the final score with an exit hint
func (r *TerminalRenderer) RenderGameOver(score int) {
	r.syncSize()
	r.screen.Clear()
	defaultStyle := tcell.StyleDefault.Background(RgbBackground)
	cx, cy := r.width/2, r.height/2

	r.drawCentered(cx, cy-1, constants.TextGameOver, defaultStyle.Foreground(RgbGameOver).Bold(true))
	r.drawCentered(cx, cy, fmt.Sprintf("Final Score: %d", score), defaultStyle.Foreground(RgbScore))
	r.drawCentered(cx, cy+2, constants.TextExitHint, defaultStyle.Foreground(RgbHintText))

	r.screen.Show()
}
