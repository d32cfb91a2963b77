package tetris

import (
	"fmt"
	"strings"
	"time"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Cell glyphs and walls of the text board.
const (
	wallLeft   = "<!"
	wallRight  = " !>"
	cellEmpty  = " ."
	cellFilled = "[]"
	floorRune  = "="
)

// BoardWidth returns the character width of a formatted board line.
func BoardWidth(cols int) int {
	return len(wallLeft) + cols*len(cellFilled) + len(wallRight)
}

// BoardLines formats a board as text: one line per row framed by walls,
// followed by the floor line.
func BoardLines(b Board) []string {
	lines := make([]string, 0, b.Rows()+1)
	for _, row := range b {
		var sb strings.Builder
		sb.WriteString(wallLeft)
		for _, v := range row {
			if v != 0 {
				sb.WriteString(cellFilled)
			} else {
				sb.WriteString(cellEmpty)
			}
		}
		sb.WriteString(wallRight)
		lines = append(lines, sb.String())
	}
	return append(lines, floorLine(b.Cols()))
}

func floorLine(cols int) string {
	return wallLeft + strings.Repeat(floorRune, cols*2+1) + "!>"
}

// SpeedRating turns a tick interval into the number shown as "speed":
// twice the base interval minus the current one, so it grows as the game
// accelerates.
func SpeedRating(s Settings, speed time.Duration) int {
	return int((2*s.BaseSpeed - speed).Milliseconds())
}

// StatLines returns the score and speed lines printed under the board.
func StatLines(score, rating int) []string {
	return []string{
		fmt.Sprintf("score: %d", score),
		fmt.Sprintf("speed: %d", rating),
	}
}

// FormatFrame renders the full text frame for a board and its stats.
func FormatFrame(view Board, score, rating int) string {
	lines := append(BoardLines(view), StatLines(score, rating)...)
	return strings.Join(lines, "\n") + "\n"
}

// Frame returns the engine's current text frame.
func (e *Engine) Frame() string {
	return FormatFrame(e.view, e.score, SpeedRating(e.settings, e.Speed()))
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	view := g.engine.View()
	settled := g.engine.Board()
	width := BoardWidth(view.Cols())
	height := view.Rows() + 1 + 3 // floor, blank, score, speed

	if dst.Width() < width || dst.Height() < height {
		g.renderTooSmall(dst)
		return
	}

	area := dst.Bounds().Centered(width, height)
	g.renderBoard(dst, area, view, settled)

	statsY := area.Y + view.Rows() + 2
	rating := SpeedRating(g.engine.Settings(), g.engine.Speed())
	for i, line := range StatLines(g.engine.Score(), rating) {
		dst.DrawText(area.X, statsY+i, line)
	}
	lines := fmt.Sprintf("lines: %d", g.engine.Lines())
	dst.DrawTextColor(area.Right()-len(lines), statsY, lines, core.ColorGray)

	switch {
	case g.engine.GameOver():
		g.renderOverlay(dst, area, "GAME OVER", "R restart  Q quit", core.ColorRed)
	case g.paused:
		g.renderOverlay(dst, area, "PAUSED", "P resume", core.ColorYellow)
	}
}

// renderBoard draws walls, settled cells and the falling piece.
// Cells present in the view but not in the settled board belong to the
// falling piece.
func (g *Game) renderBoard(dst *core.Screen, area core.Rect, view, settled Board) {
	for r, row := range view {
		y := area.Y + r
		dst.DrawTextColor(area.X, y, wallLeft, core.ColorGray)
		for c, v := range row {
			x := area.X + len(wallLeft) + c*2
			base, _ := settled.At(r, c)
			switch {
			case v == 0:
				dst.DrawText(x, y, cellEmpty)
			case v > 1:
				dst.DrawTextColor(x, y, cellFilled, core.ColorRed)
			case base == 0:
				dst.DrawTextColor(x, y, cellFilled, core.ColorYellow)
			default:
				dst.DrawTextColor(x, y, cellFilled, core.ColorCyan)
			}
		}
		dst.DrawTextColor(area.X+len(wallLeft)+len(row)*2, y, wallRight, core.ColorGray)
	}

	dst.DrawTextColor(area.X, area.Y+view.Rows(), floorLine(view.Cols()), core.ColorGray)
}

// renderOverlay draws a boxed two-line message over the board.
func (g *Game) renderOverlay(dst *core.Screen, area core.Rect, title, hint string, c core.Color) {
	w := max(len(title), len(hint)) + 4
	box := area.Centered(w, 4)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box, c)
	dst.DrawTextColor(box.X+(w-len(title))/2, box.Y+1, title, c)
	dst.DrawText(box.X+(w-len(hint))/2, box.Y+2, hint)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}
