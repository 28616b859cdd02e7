package blitz

import (
	"math"

	"github.com/shamyl/Brick-Blitz-Vibe-Coding/internal/core"
)

// Ball is the moving point. It travels at a constant speed along Angle,
// measured in radians with y growing downward.
type Ball struct {
	X, Y   float64
	Radius float64
	Speed  float64
	Angle  float64
}

// Box returns the ball's bounding box.
func (b *Ball) Box() core.RectF {
	return core.BoxAround(b.X, b.Y, b.Radius)
}

// Advance moves the ball one tick along its angle.
func (b *Ball) Advance() {
	b.X += b.Speed * math.Cos(b.Angle)
	b.Y += b.Speed * math.Sin(b.Angle)
}

// ReflectHorizontal mirrors the horizontal component (side walls).
func (b *Ball) ReflectHorizontal() {
	b.Angle = NormalizeAngle(math.Pi - b.Angle)
}

// ReflectVertical mirrors the vertical component (top wall, brick faces).
func (b *Ball) ReflectVertical() {
	b.Angle = NormalizeAngle(-b.Angle)
}

// MovingDown reports whether the ball is heading toward the paddle.
func (b *Ball) MovingDown() bool {
	return math.Sin(b.Angle) > 0
}

// MovingRight reports whether the ball is heading right.
func (b *Ball) MovingRight() bool {
	return math.Cos(b.Angle) > 0
}

// NormalizeAngle maps an angle into (-π, π].
func NormalizeAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a <= -math.Pi {
		a += 2 * math.Pi
	} else if a > math.Pi {
		a -= 2 * math.Pi
	}
	return a
}

// Paddle is the player's bar along the bottom edge.
type Paddle struct {
	X      float64 // Left edge
	Y      float64 // Top edge
	Width  float64
	Height float64
	Speed  float64
}

// Rect returns the paddle's box.
func (p *Paddle) Rect() core.RectF {
	return core.NewRectF(p.X, p.Y, p.Width, p.Height)
}

// CenterX returns the horizontal centre of the paddle.
func (p *Paddle) CenterX() float64 {
	return p.X + p.Width/2
}

// Move applies one tick of input. A pointer, when present, pulls the paddle
// centre toward it; otherwise the held direction moves it by Speed.
// The paddle is always left inside [0, fieldW-Width].
func (p *Paddle) Move(in core.InputFrame, fieldW float64) {
	maxX := fieldW - p.Width

	if px, ok := in.Pointer(); ok {
		delta := core.ClampF(px-p.CenterX(), -p.Speed, p.Speed)
		p.X += delta
	} else if in.Has(core.ActionRight) && p.X < maxX {
		p.X += p.Speed
	} else if in.Has(core.ActionLeft) && p.X > 0 {
		p.X -= p.Speed
	}

	p.X = core.ClampF(p.X, 0, maxX)
}

// BounceWalls reflects the ball off the left, right and top walls.
// It returns how many walls were hit this tick (0, 1 or 2 in a corner).
func BounceWalls(b *Ball, fieldW float64) int {
	hits := 0

	switch {
	case b.X-b.Radius < 0:
		b.X = b.Radius
		if !b.MovingRight() {
			b.ReflectHorizontal()
			hits++
		}
	case b.X+b.Radius > fieldW:
		b.X = fieldW - b.Radius
		if b.MovingRight() {
			b.ReflectHorizontal()
			hits++
		}
	}

	if b.Y-b.Radius < 0 {
		b.Y = b.Radius
		if !b.MovingDown() {
			b.ReflectVertical()
			hits++
		}
	}

	return hits
}

// BouncePaddle handles a downward ball touching the paddle. The outgoing
// angle is recomputed from where the ball struck: straight up at the
// centre, tilting up to maxBounce radians toward either edge.
func BouncePaddle(b *Ball, p *Paddle, maxBounce float64) bool {
	if !b.MovingDown() || !b.Box().Intersects(p.Rect()) {
		return false
	}

	offset := core.ClampF((b.X-p.CenterX())/(p.Width/2), -1, 1)
	b.Angle = NormalizeAngle(-math.Pi/2 + offset*maxBounce)
	b.Y = p.Y - b.Radius
	return true
}

// BounceBrick finds the first standing brick the ball overlaps, marks it
// hit and reflects the ball off the face with the shallower penetration.
// It returns the brick index, or -1 when nothing was hit.
func BounceBrick(b *Ball, bricks []Brick) int {
	box := b.Box()

	for i := range bricks {
		brick := &bricks[i]
		if brick.Hit {
			continue
		}
		dx, dy := box.Overlap(brick.Rect)
		if dx == 0 && dy == 0 {
			continue
		}

		brick.Hit = true

		cx, cy := brick.Rect.Center()
		towardX := (b.X < cx) == b.MovingRight()
		towardY := (b.Y < cy) == b.MovingDown()

		if dx < dy {
			if towardX {
				b.ReflectHorizontal()
			} else {
				b.ReflectVertical()
			}
		} else {
			if towardY {
				b.ReflectVertical()
			} else {
				b.ReflectHorizontal()
			}
		}
		return i
	}
	return -1
}
