package blitz

import "github.com/shamyl/Brick-Blitz-Vibe-Coding/internal/config"

// View is a read-only copy of everything a pixel frontend needs to draw
// one frame. Geometry is in field units.
type View struct {
	FieldW, FieldH float64

	Phase      string
	Score      int
	Lives      int
	Level      int // 1-based
	LevelCount int
	LevelName  string
	Waiting    bool

	Paddle PaddleView
	Ball   BallView
	Bricks []Brick // Standing bricks only

	Labels config.Labels
}

// PaddleView is the paddle's box.
type PaddleView struct {
	X, Y, W, H float64
}

// BallView is the ball's centre and radius.
type BallView struct {
	X, Y, R float64
}

// View returns a copy of the current frame.
func (g *Game) View() View {
	lvl := g.Level()

	bricks := make([]Brick, 0, len(lvl.Bricks))
	for _, b := range lvl.Bricks {
		if !b.Hit {
			bricks = append(bricks, b)
		}
	}

	return View{
		FieldW:     g.cfg.Field.Width,
		FieldH:     g.cfg.Field.Height,
		Phase:      g.state,
		Score:      g.score,
		Lives:      g.lives,
		Level:      lvl.Number,
		LevelCount: len(g.levels),
		LevelName:  lvl.Name,
		Waiting:    g.waitTicks > 0,
		Paddle:     PaddleView{X: g.paddle.X, Y: g.paddle.Y, W: g.paddle.Width, H: g.paddle.Height},
		Ball:       BallView{X: g.ball.X, Y: g.ball.Y, R: g.ball.Radius},
		Bricks:     bricks,
		Labels:     g.labels,
	}
}
