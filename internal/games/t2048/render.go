package t2048

import (
	"fmt"
	"math"
	"strconv"

	"github.com/vovakirdan/tui48/internal/core"
	"github.com/vovakirdan/tui48/internal/engine"
)

const (
	cellWidth  = 7 // Width of each cell (including the left border)
	cellHeight = 2 // Height of each cell (including the top border)
	hudHeight  = 3

	gridColor   = core.ColorGray
	mergedColor = core.ColorHighlight
)

// boardDimensions returns the board size in screen cells, borders included.
func boardDimensions(n int) (int, int) {
	return n*cellWidth + 1, n*cellHeight + 1
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	n := g.size()
	boardW, boardH := boardDimensions(n)
	boardX := (g.screenW - boardW) / 2
	boardY := hudHeight + 1

	g.renderHUD(dst, boardX, boardW)
	g.renderGrid(dst, boardX, boardY, n)

	if g.anim.phase == PhaseSlide {
		g.renderSliding(dst, boardX, boardY)
	} else {
		g.renderTiles(dst, boardX, boardY)
	}

	g.renderOverlays(dst, boardX, boardY, boardW, boardH)
}

// renderTooSmall shows a "window too small" message with the required size.
func (g *Game) renderTooSmall(dst *core.Screen) {
	minW, minH := g.minScreenSize()
	y := g.screenH / 2
	dst.DrawTextCenteredColor(y-1, "Terminal too small", core.ColorBrightRed)
	dst.DrawTextCentered(y, fmt.Sprintf("need %dx%d, have %dx%d", minW, minH, g.screenW, g.screenH))
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderHUD draws the title, score and mode info.
func (g *Game) renderHUD(dst *core.Screen, boardX, boardW int) {
	title := "2048"
	dst.DrawTextColor(boardX+(boardW-len(title))/2, 0, title, core.ColorBrightYellow)

	dst.DrawText(boardX, 1, fmt.Sprintf("Score: %d", g.game.Score()))

	info := fmt.Sprintf("Max: %d", g.game.Board().MaxTile())
	infoX := max(boardX+boardW-len(info), boardX)
	dst.DrawText(infoX, 1, info)

	mode := "Classic"
	if g.mode == ModeEndless {
		mode = "Endless"
	}
	mode = fmt.Sprintf("%s · %s · %d moves", mode, g.cfg.Difficulty.Label(), g.game.Moves())
	dst.DrawTextColor(boardX+(boardW-len([]rune(mode)))/2, 2, mode, core.ColorGray)
}

// renderGrid draws the n×n grid borders.
func (g *Game) renderGrid(dst *core.Screen, boardX, boardY, n int) {
	for y := range n + 1 {
		for x := range n + 1 {
			px := boardX + x*cellWidth
			py := boardY + y*cellHeight

			var corner rune
			switch {
			case y == 0 && x == 0:
				corner = '┌'
			case y == 0 && x == n:
				corner = '┐'
			case y == n && x == 0:
				corner = '└'
			case y == n && x == n:
				corner = '┘'
			case y == 0:
				corner = '┬'
			case y == n:
				corner = '┴'
			case x == 0:
				corner = '├'
			case x == n:
				corner = '┤'
			default:
				corner = '┼'
			}
			dst.SetColor(px, py, corner, gridColor)

			if x < n {
				for i := 1; i < cellWidth; i++ {
					dst.SetColor(px+i, py, '─', gridColor)
				}
			}
			if y < n {
				for i := 1; i < cellHeight; i++ {
					dst.SetColor(px, py+i, '│', gridColor)
				}
			}
		}
	}
}

// renderTiles draws the committed board. During the pop phase merged tiles
// are highlighted and the spawned tile grows in.
func (g *Game) renderTiles(dst *core.Screen, boardX, boardY int) {
	board := g.game.Board()
	popping := g.anim.phase == PhasePop
	for row := range board.Size() {
		for col := range board.Size() {
			p := engine.Pos{Row: row, Col: col}
			v := board.At(p)
			if v.IsEmpty() {
				continue
			}
			x := boardX + col*cellWidth + 1
			y := boardY + row*cellHeight + 1

			switch {
			case popping && g.anim.spawned != nil && g.anim.spawned.Pos == p && g.anim.progress() < 0.5:
				drawCentered(dst, x, y, "·", TileColor(v))
			case popping && g.anim.isMerged(p):
				drawCentered(dst, x, y, strconv.Itoa(int(v)), mergedColor)
			default:
				drawCentered(dst, x, y, strconv.Itoa(int(v)), TileColor(v))
			}
		}
	}
}

// renderSliding draws every pre-move tile between its source and target cell.
func (g *Game) renderSliding(dst *core.Screen, boardX, boardY int) {
	t := easeOutQuad(g.anim.progress())
	for _, m := range g.anim.slides {
		col := core.Lerp(m.From.Col, m.To.Col, t)
		row := core.Lerp(m.From.Row, m.To.Row, t)
		x := boardX + 1 + int(math.Round(col*cellWidth))
		y := boardY + 1 + int(math.Round(row*cellHeight))
		drawCentered(dst, x, y, strconv.Itoa(int(m.Value)), TileColor(m.Value))
	}
}

// drawCentered writes text centered in the cell interior starting at x.
func drawCentered(dst *core.Screen, x, y int, text string, c core.Color) {
	inner := cellWidth - 1
	pad := max((inner-len([]rune(text)))/2, 0)
	dst.DrawTextColor(x+pad, y, text, c)
}

// renderOverlays draws game state overlays.
func (g *Game) renderOverlays(dst *core.Screen, boardX, boardY, boardW, boardH int) {
	centerX := boardX + boardW/2
	centerY := boardY + boardH/2

	if g.paused {
		drawOverlay(dst, centerX, centerY, core.ColorBrightCyan, "PAUSED", "Press P to resume")
		return
	}

	if g.game.Status() == engine.Lost {
		drawOverlay(dst, centerX, centerY, core.ColorBrightRed,
			"GAME OVER",
			fmt.Sprintf("Score: %d", g.game.Score()),
			fmt.Sprintf("Max tile: %d", g.game.Board().MaxTile()),
			"R: restart  Q: quit")
		return
	}

	if g.bannerTicks > 0 {
		drawOverlay(dst, centerX, centerY, core.ColorBrightGreen,
			"YOU WIN!",
			fmt.Sprintf("You reached %d", g.game.Rules().WinTile),
			"Keep going!")
	}
}

// drawOverlay draws a centered boxed text overlay.
func drawOverlay(dst *core.Screen, centerX, centerY int, c core.Color, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len([]rune(line)))
	}

	box := core.Centered(centerX, centerY, maxLen+4, len(lines)+2)
	dst.FillRect(box, ' ', core.ColorDefault)
	dst.DrawBoxColor(box, c)

	for i, line := range lines {
		x := centerX - len([]rune(line))/2
		color := core.ColorDefault
		if i == 0 {
			color = c
		}
		dst.DrawTextColor(x, box.Y+1+i, line, color)
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows/WASD/hjkl: Move | P: Pause | N: New | R: Restart | Q: Quit"
}
