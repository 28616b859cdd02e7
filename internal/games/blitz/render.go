package blitz

import (
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/shamyl/Brick-Blitz-Vibe-Coding/internal/core"
)

// hudRows is the number of terminal rows above the playfield.
const hudRows = 1

// Render draws the current game state to the screen. The field is scaled
// to fit the rows below the HUD.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.screenTooSmall {
		msg := g.labels.TooSmall
		hint := fmt.Sprintf(g.labels.NeedSize, g.minScreenW, g.minScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, msg)
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}

	g.renderHUD(dst)
	g.renderBricks(dst)
	g.renderPaddle(dst)
	g.renderBall(dst)
	g.renderOverlay(dst)
}

// cellScale returns field-units-to-cells factors for the playfield area.
func (g *Game) cellScale(dst *core.Screen) (sx, sy float64) {
	sx = float64(dst.Width()) / g.cfg.Field.Width
	sy = float64(dst.Height()-hudRows) / g.cfg.Field.Height
	return sx, sy
}

// toCells maps a field rect to a cell rect covering it, at least 1x1.
func (g *Game) toCells(dst *core.Screen, r core.RectF) core.Rect {
	sx, sy := g.cellScale(dst)

	x0 := int(math.Floor(r.X * sx))
	y0 := int(math.Floor(r.Y*sy)) + hudRows
	x1 := int(math.Ceil(r.Right() * sx))
	y1 := int(math.Ceil(r.Bottom()*sy)) + hudRows

	w := core.Max(1, x1-x0)
	h := core.Max(1, y1-y0)
	return core.NewRect(x0, core.Min(y0, dst.Height()-1), w, h)
}

// renderHUD draws score, level and lives on the top row.
func (g *Game) renderHUD(dst *core.Screen) {
	score := fmt.Sprintf("%s: %d", g.labels.Score, g.score)
	dst.DrawText(1, 0, score)

	level := fmt.Sprintf("%s: %d/%d", g.labels.Level, g.levelIndex+1, len(g.levels))
	dst.DrawTextCentered(0, level)

	lives := fmt.Sprintf("%s: %d", g.labels.Lives, g.lives)
	dst.DrawText(dst.Width()-utf8.RuneCountInString(lives)-1, 0, lives)
}

func (g *Game) renderBricks(dst *core.Screen) {
	for _, b := range g.Level().Bricks {
		if b.Hit {
			continue
		}
		cells := g.toCells(dst, b.Rect)
		// Leave a gap on the right so neighbours stay distinct
		if cells.W > 1 {
			cells.W--
		}
		dst.DrawRectColored(cells, BrickChar, b.Color)
	}
}

func (g *Game) renderPaddle(dst *core.Screen) {
	cells := g.toCells(dst, g.paddle.Rect())
	cells.Y = dst.Height() - 1
	cells.H = 1
	dst.DrawRectColored(cells, PaddleChar, core.ColorBlue)
}

func (g *Game) renderBall(dst *core.Screen) {
	sx, sy := g.cellScale(dst)
	x := core.Clamp(int(g.ball.X*sx), 0, dst.Width()-1)
	y := core.Clamp(int(g.ball.Y*sy)+hudRows, hudRows, dst.Height()-1)
	dst.SetColored(x, y, BallChar, core.ColorPurple)
}

// renderOverlay draws phase messages.
func (g *Game) renderOverlay(dst *core.Screen) {
	switch g.state {
	case StateStart:
		lvl := g.Level()
		subtitle := fmt.Sprintf("< %s %d: %s >  %s", g.labels.Level, lvl.Number, lvl.Name, g.labels.PressStart)
		g.drawCenteredBox(dst, g.labels.Title, subtitle)

	case StatePlaying:
		if g.waitTicks > 0 {
			dst.DrawTextCentered(dst.Height()/2, g.labels.GetReady)
		}

	case StatePaused:
		g.drawCenteredBox(dst, g.labels.Paused, "P: "+g.labels.Resume)

	case StateGameOver:
		subtitle := fmt.Sprintf("%s: %d  |  R: %s", g.labels.Score, g.score, g.labels.Restart)
		g.drawCenteredBox(dst, g.labels.GameOver, subtitle)

	case StateWon:
		subtitle := fmt.Sprintf("%s: %d  |  R: %s", g.labels.Score, g.score, g.labels.Restart)
		g.drawCenteredBox(dst, g.labels.Won, subtitle)
	}
}

// drawCenteredBox draws a bordered message box in the middle of the screen.
func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	titleLen := utf8.RuneCountInString(title)
	subLen := utf8.RuneCountInString(subtitle)

	boxW := core.Min(core.Max(titleLen, subLen)+4, w)
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawTextColored(boxX+(boxW-titleLen)/2, boxY+1, title, core.ColorYellow)
	dst.DrawText(core.Max(boxX+1, boxX+(boxW-subLen)/2), boxY+3, subtitle)
}
