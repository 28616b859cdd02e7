package blitz

import "math"

// Snapshot is a flat copy of the game state used for determinism checks
// and debug dumps. Positions are stored in thousandths of a field unit.
type Snapshot struct {
	Tick       uint64
	State      string
	Score      int
	Lives      int
	LevelIndex int
	WaitTicks  int

	PaddleX int
	BallX   int
	BallY   int
	Angle   int // Milliradians

	// One entry per brick of the current level, 1 when still standing
	Bricks []int
}

func milli(v float64) int {
	return int(math.Round(v * 1000))
}

// Snapshot returns the current game state.
func (g *Game) Snapshot() Snapshot {
	lvl := g.Level()
	bricks := make([]int, len(lvl.Bricks))
	for i, b := range lvl.Bricks {
		if !b.Hit {
			bricks[i] = 1
		}
	}

	return Snapshot{
		Tick:       uint64(g.tickCount), //#nosec G115 -- tick count is always positive
		State:      g.state,
		Score:      g.score,
		Lives:      g.lives,
		LevelIndex: g.levelIndex,
		WaitTicks:  g.waitTicks,
		PaddleX:    milli(g.paddle.X),
		BallX:      milli(g.ball.X),
		BallY:      milli(g.ball.Y),
		Angle:      milli(g.ball.Angle),
		Bricks:     bricks,
	}
}

// Hash returns a simple hash of the snapshot.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	for _, c := range snap.State {
		h = h*31 + uint64(c) //#nosec G115 -- hash computation
	}
	h = h*31 + uint64(snap.Score)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.LevelIndex) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.WaitTicks)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PaddleX)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BallX)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BallY)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Angle)      //#nosec G115 -- hash computation
	for _, b := range snap.Bricks {
		h = h*31 + uint64(b) //#nosec G115 -- hash computation
	}
	return h
}
