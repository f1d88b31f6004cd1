package pongblast

import (
	"fmt"

	"github.com/vovakirdan/pongblast/internal/core"
)

// Visual characters for rendering
const (
	PaddleChar  = '█'
	BallChar    = '●'
	MidlineChar = '┆'
)

// blockGlyphs is indexed by remaining hit points, capped at the last entry.
var blockGlyphs = []rune{' ', '░', '▒', '▓', '█'}

// Render draws the match, scaling arena units to the screen. Row 0 holds the
// HUD and the last row the prompt line.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	w, h := dst.Width(), dst.Height()
	if w < 3 || h < 3 || g.ball == nil {
		return
	}
	v := newViewport(g.cfg.Arena.Width, g.cfg.Arena.Height, w, h)

	// Dotted midline
	mid := w / 2
	for y := v.top; y < v.top+v.rows; y += 2 {
		dst.SetColored(mid, y, MidlineChar, core.ColorGray)
	}

	for _, grid := range g.grids {
		for _, b := range grid.Blocks() {
			if !b.Alive() {
				continue
			}
			glyph := blockGlyphs[min(b.HP(), len(blockGlyphs)-1)]
			dst.DrawRect(v.rect(b.Box()), glyph, core.SideColor(b.Owner()))
		}
	}

	for _, p := range []*Paddle{g.player, g.enemy} {
		dst.DrawRect(v.rect(p.Box()), PaddleChar, core.ColorBrightWhite)
	}

	bx, by := v.point(g.ball.Position())
	dst.SetColored(bx, by, BallChar, core.ColorYellow)

	hud := g.hud.Line()
	dst.DrawTextColored((w-len(hud))/2, 0, hud, core.ColorWhite)

	if g.ball.State() == BallServing && !g.gameOver {
		prompt := "Space: serve | W/S: move"
		if g.mode == ModeVersus {
			prompt = "Space: serve | W/S vs ↑/↓"
		}
		dst.DrawTextColored((w-len([]rune(prompt)))/2, h-1, prompt, core.ColorGray)
	}

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}

	if g.gameOver {
		msg := "YOU WIN!"
		switch {
		case g.winner == core.SideEnemy && g.mode == ModeVersus:
			msg = "RIGHT PLAYER WINS!"
		case g.winner == core.SideEnemy:
			msg = "CPU WINS!"
		case g.mode == ModeVersus:
			msg = "LEFT PLAYER WINS!"
		}
		t := g.scores.Totals()
		g.drawCenteredMessage(dst, msg, fmt.Sprintf("%d - %d  |  Press R to restart", t.Player, t.Enemy))
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawTextColored(boxX+(boxW-len(title))/2, boxY+1, title, core.ColorYellow)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}

// viewport maps arena units onto the screen rows between the HUD and prompt.
type viewport struct {
	sx, sy float64
	top    int
	rows   int
	cols   int
}

func newViewport(arenaW, arenaH float64, w, h int) viewport {
	rows := max(h-2, 1)
	return viewport{
		sx:   float64(w) / arenaW,
		sy:   float64(rows) / arenaH,
		top:  1,
		rows: rows,
		cols: w,
	}
}

func (v viewport) point(p core.Vec2) (int, int) {
	x := core.Clamp(int(p.X*v.sx), 0, v.cols-1)
	y := core.Clamp(int(p.Y*v.sy), 0, v.rows-1)
	return x, v.top + y
}

// rect converts a box to screen cells, at least one cell in each direction.
func (v viewport) rect(b core.Box) core.Rect {
	x0 := int(b.Left() * v.sx)
	x1 := int(b.Right() * v.sx)
	y0 := int(b.Top() * v.sy)
	y1 := int(b.Bottom() * v.sy)
	return core.NewRect(x0, v.top+y0, max(x1-x0, 1), max(y1-y0, 1))
}
