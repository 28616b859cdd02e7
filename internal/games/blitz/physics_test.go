package blitz

import (
	"math"
	"testing"

	"github.com/shamyl/Brick-Blitz-Vibe-Coding/internal/core"
)

const eps = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < eps
}

func TestNormalizeAngle(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{math.Pi, math.Pi},
		{-math.Pi, math.Pi},
		{3 * math.Pi / 2, -math.Pi / 2},
		{-3 * math.Pi / 2, math.Pi / 2},
		{2 * math.Pi, 0},
		{math.Pi / 6, math.Pi / 6},
	}

	for _, tt := range tests {
		if got := NormalizeAngle(tt.in); !almostEqual(got, tt.want) {
			t.Errorf("NormalizeAngle(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestBallAdvance(t *testing.T) {
	b := &Ball{X: 100, Y: 100, Speed: 10, Angle: 0}
	b.Advance()
	if !almostEqual(b.X, 110) || !almostEqual(b.Y, 100) {
		t.Errorf("Advance at angle 0 = (%v, %v), want (110, 100)", b.X, b.Y)
	}

	b = &Ball{X: 100, Y: 100, Speed: 10, Angle: math.Pi / 2}
	b.Advance()
	if math.Abs(b.X-100) > 1e-6 || !almostEqual(b.Y, 110) {
		t.Errorf("Advance at angle π/2 = (%v, %v), want (100, 110)", b.X, b.Y)
	}
}

func TestBounceWalls(t *testing.T) {
	tests := []struct {
		name      string
		ball      Ball
		wantX     float64
		wantY     float64
		wantAngle float64
		wantHits  int
	}{
		{
			name:      "left wall",
			ball:      Ball{X: 5, Y: 200, Radius: 10, Angle: 5 * math.Pi / 6},
			wantX:     10,
			wantY:     200,
			wantAngle: math.Pi / 6,
			wantHits:  1,
		},
		{
			name:      "right wall",
			ball:      Ball{X: 635, Y: 200, Radius: 10, Angle: math.Pi / 6},
			wantX:     630,
			wantY:     200,
			wantAngle: 5 * math.Pi / 6,
			wantHits:  1,
		},
		{
			name:      "top wall",
			ball:      Ball{X: 300, Y: 5, Radius: 10, Angle: -math.Pi / 3},
			wantX:     300,
			wantY:     10,
			wantAngle: math.Pi / 3,
			wantHits:  1,
		},
		{
			name:      "top left corner",
			ball:      Ball{X: 5, Y: 5, Radius: 10, Angle: -5 * math.Pi / 6},
			wantX:     10,
			wantY:     10,
			wantAngle: math.Pi / 6,
			wantHits:  2,
		},
		{
			name:      "already leaving left wall",
			ball:      Ball{X: 5, Y: 200, Radius: 10, Angle: math.Pi / 6},
			wantX:     10,
			wantY:     200,
			wantAngle: math.Pi / 6,
			wantHits:  0,
		},
		{
			name:      "open field",
			ball:      Ball{X: 300, Y: 200, Radius: 10, Angle: math.Pi / 6},
			wantX:     300,
			wantY:     200,
			wantAngle: math.Pi / 6,
			wantHits:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := tt.ball
			hits := BounceWalls(&b, 640)
			if hits != tt.wantHits {
				t.Errorf("hits = %d, want %d", hits, tt.wantHits)
			}
			if !almostEqual(b.X, tt.wantX) || !almostEqual(b.Y, tt.wantY) {
				t.Errorf("position = (%v, %v), want (%v, %v)", b.X, b.Y, tt.wantX, tt.wantY)
			}
			if !almostEqual(b.Angle, tt.wantAngle) {
				t.Errorf("angle = %v, want %v", b.Angle, tt.wantAngle)
			}
		})
	}
}

func TestBouncePaddle(t *testing.T) {
	maxBounce := math.Pi / 3

	tests := []struct {
		name      string
		ball      Ball
		wantHit   bool
		wantAngle float64
	}{
		{"centre sends straight up", Ball{X: 320, Y: 463, Radius: 10, Angle: math.Pi / 2}, true, -math.Pi / 2},
		{"right edge tilts right", Ball{X: 360, Y: 463, Radius: 10, Angle: math.Pi / 2}, true, -math.Pi / 6},
		{"left edge tilts left", Ball{X: 280, Y: 463, Radius: 10, Angle: math.Pi / 2}, true, -5 * math.Pi / 6},
		{"moving up is ignored", Ball{X: 320, Y: 463, Radius: 10, Angle: -math.Pi / 2}, false, -math.Pi / 2},
		{"missed paddle", Ball{X: 100, Y: 463, Radius: 10, Angle: math.Pi / 2}, false, math.Pi / 2},
		{"touching is not a hit", Ball{X: 320, Y: 460, Radius: 10, Angle: math.Pi / 2}, false, math.Pi / 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &Paddle{X: 280, Y: 470, Width: 80, Height: 10, Speed: 10}
			b := tt.ball
			hit := BouncePaddle(&b, p, maxBounce)
			if hit != tt.wantHit {
				t.Fatalf("hit = %v, want %v", hit, tt.wantHit)
			}
			if !almostEqual(b.Angle, tt.wantAngle) {
				t.Errorf("angle = %v, want %v", b.Angle, tt.wantAngle)
			}
			if hit && !almostEqual(b.Y, p.Y-b.Radius) {
				t.Errorf("ball Y = %v, want %v (resting on paddle)", b.Y, p.Y-b.Radius)
			}
		})
	}
}

func TestBounceBrickFromBelow(t *testing.T) {
	bricks := []Brick{
		{Rect: core.NewRectF(100, 100, 60, 20), Points: 10},
	}
	b := &Ball{X: 130, Y: 128, Radius: 10, Angle: -math.Pi / 2}

	idx := BounceBrick(b, bricks)
	if idx != 0 {
		t.Fatalf("BounceBrick = %d, want 0", idx)
	}
	if !bricks[0].Hit {
		t.Error("brick should be marked hit")
	}
	if !almostEqual(b.Angle, math.Pi/2) {
		t.Errorf("angle = %v, want π/2 after bottom face hit", b.Angle)
	}
}

func TestBounceBrickFromSide(t *testing.T) {
	bricks := []Brick{
		{Rect: core.NewRectF(100, 100, 60, 20), Points: 10},
	}
	// Ball box overlaps the left face by 2 units
	b := &Ball{X: 92, Y: 110, Radius: 10, Angle: math.Pi / 6}

	if idx := BounceBrick(b, bricks); idx != 0 {
		t.Fatalf("BounceBrick = %d, want 0", idx)
	}
	if !almostEqual(b.Angle, 5*math.Pi/6) {
		t.Errorf("angle = %v, want 5π/6 after side hit", b.Angle)
	}
}

func TestBounceBrickSkipsHitBricks(t *testing.T) {
	bricks := []Brick{
		{Rect: core.NewRectF(100, 100, 60, 20), Hit: true},
	}
	b := &Ball{X: 130, Y: 128, Radius: 10, Angle: -math.Pi / 2}

	if idx := BounceBrick(b, bricks); idx != -1 {
		t.Errorf("BounceBrick = %d, want -1", idx)
	}
	if !almostEqual(b.Angle, -math.Pi/2) {
		t.Error("angle should be unchanged")
	}
}

func TestBounceBrickOnePerFrame(t *testing.T) {
	bricks := []Brick{
		{Rect: core.NewRectF(100, 100, 60, 20)},
		{Rect: core.NewRectF(100, 125, 60, 20)},
	}
	b := &Ball{X: 130, Y: 122, Radius: 10, Angle: -math.Pi / 2}

	if idx := BounceBrick(b, bricks); idx != 0 {
		t.Fatalf("BounceBrick = %d, want 0", idx)
	}
	if bricks[1].Hit {
		t.Error("only one brick may break per frame")
	}
}

func TestPaddleMove(t *testing.T) {
	tests := []struct {
		name    string
		startX  float64
		actions []core.Action
		pointer float64
		usePtr  bool
		wantX   float64
	}{
		{"right", 280, []core.Action{core.ActionRight}, 0, false, 290},
		{"left", 280, []core.Action{core.ActionLeft}, 0, false, 270},
		{"right wins over left", 280, []core.Action{core.ActionLeft, core.ActionRight}, 0, false, 290},
		{"clamped at right edge", 555, []core.Action{core.ActionRight}, 0, false, 560},
		{"clamped at left edge", 4, []core.Action{core.ActionLeft}, 0, false, 0},
		{"idle", 280, nil, 0, false, 280},
		{"pointer far right moves by speed", 280, nil, 400, true, 290},
		{"pointer near centre moves exactly", 280, nil, 322, true, 282},
		{"pointer beats keys", 280, []core.Action{core.ActionRight}, 100, true, 270},
		{"pointer beyond field clamps", 555, nil, 1000, true, 560},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &Paddle{X: tt.startX, Width: 80, Speed: 10}
			in := core.NewInputFrame()
			for _, a := range tt.actions {
				in.Set(a)
			}
			if tt.usePtr {
				in.SetPointer(tt.pointer)
			}
			p.Move(in, 640)
			if !almostEqual(p.X, tt.wantX) {
				t.Errorf("X = %v, want %v", p.X, tt.wantX)
			}
		})
	}
}
