package window

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/shamyl/Brick-Blitz-Vibe-Coding/internal/core"
	"github.com/shamyl/Brick-Blitz-Vibe-Coding/internal/games/blitz"
)

var (
	backgroundColor = color.RGBA{0x10, 0x10, 0x18, 0xff}
	paddleColor     = color.RGBA{0x29, 0xab, 0xe2, 0xff}
	ballColor       = color.RGBA{0x8e, 0x2d, 0xe2, 0xff}
	overlayColor    = color.RGBA{0x00, 0x00, 0x00, 0xb0}
	flashColor      = color.RGBA{0xff, 0x50, 0x50, 0xff}
)

// brickColors maps cell colours to canvas colours.
var brickColors = map[core.Color]color.RGBA{
	core.ColorRed:    {0xff, 0x00, 0x00, 0xff},
	core.ColorGreen:  {0x00, 0x80, 0x00, 0xff},
	core.ColorYellow: {0xff, 0xff, 0x00, 0xff},
	core.ColorOrange: {0xff, 0xa5, 0x00, 0xff},
	core.ColorBlue:   {0x29, 0xab, 0xe2, 0xff},
	core.ColorPurple: {0x8e, 0x2d, 0xe2, 0xff},
	core.ColorWhite:  {0xff, 0xff, 0xff, 0xff},
	core.ColorGray:   {0x80, 0x80, 0x80, 0xff},
}

// BrickColor returns the canvas colour for a brick.
func BrickColor(c core.Color) color.RGBA {
	if rgba, ok := brickColors[c]; ok {
		return rgba
	}
	return brickColors[core.ColorWhite]
}

var hudFace = text.NewGoXFace(basicfont.Face7x13)

// glyphH is the basicfont line height.
const glyphH = 13

// drawText draws s with its baseline at y.
func drawText(img *ebiten.Image, s string, x, y int, col color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y)-hudFace.Metrics().HAscent)
	op.ColorScale.ScaleWithColor(col)
	text.Draw(img, s, hudFace, op)
}

func textWidth(s string) int {
	return int(text.Advance(s, hudFace))
}

func drawTextCentered(img *ebiten.Image, s string, y int, width float64, col color.Color) {
	drawText(img, s, (int(width)-textWidth(s))/2, y, col)
}

// drawFrame renders one view onto the canvas.
func drawFrame(screen *ebiten.Image, v blitz.View, flash string) {
	screen.Fill(backgroundColor)

	for _, b := range v.Bricks {
		vector.DrawFilledRect(screen,
			float32(b.Rect.X), float32(b.Rect.Y), float32(b.Rect.W), float32(b.Rect.H),
			BrickColor(b.Color), false)
	}

	vector.DrawFilledRect(screen,
		float32(v.Paddle.X), float32(v.Paddle.Y), float32(v.Paddle.W), float32(v.Paddle.H),
		paddleColor, false)
	vector.DrawFilledCircle(screen, float32(v.Ball.X), float32(v.Ball.Y), float32(v.Ball.R), ballColor, true)

	drawHUD(screen, v)
	drawOverlay(screen, v)

	if flash != "" {
		drawTextCentered(screen, flash, int(v.FieldH)-40, v.FieldW, flashColor)
	}
}

func drawHUD(screen *ebiten.Image, v blitz.View) {
	l := v.Labels
	drawText(screen, fmt.Sprintf("%s: %d", l.Score, v.Score), 8, 20, color.White)

	level := fmt.Sprintf("%s %d/%d", l.Level, v.Level, v.LevelCount)
	drawTextCentered(screen, level, 20, v.FieldW, color.White)

	lives := fmt.Sprintf("%s: %d", l.Lives, v.Lives)
	drawText(screen, lives, int(v.FieldW)-8-textWidth(lives), 20, color.White)
}

func drawOverlay(screen *ebiten.Image, v blitz.View) {
	l := v.Labels

	var title, subtitle string
	switch v.Phase {
	case blitz.StateStart:
		title = l.Title
		subtitle = fmt.Sprintf("< %s %d: %s >   %s", l.Level, v.Level, v.LevelName, l.PressStart)
	case blitz.StatePaused:
		title = l.Paused
		subtitle = "P: " + l.Resume
	case blitz.StateGameOver:
		title = l.GameOver
		subtitle = fmt.Sprintf("%s: %d   R: %s", l.Score, v.Score, l.Restart)
	case blitz.StateWon:
		title = l.Won
		subtitle = fmt.Sprintf("%s: %d   R: %s", l.Score, v.Score, l.Restart)
	case blitz.StatePlaying:
		if v.Waiting {
			drawTextCentered(screen, l.GetReady, int(v.FieldH/2), v.FieldW, color.White)
		}
		return
	}

	boxH := float32(4 * glyphH)
	boxY := float32(v.FieldH/2) - boxH/2
	vector.DrawFilledRect(screen, 0, boxY, float32(v.FieldW), boxH, overlayColor, false)

	drawTextCentered(screen, title, int(boxY)+glyphH+4, v.FieldW, color.White)
	drawTextCentered(screen, subtitle, int(boxY)+3*glyphH, v.FieldW, color.White)
}
