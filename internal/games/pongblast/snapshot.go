package pongblast

// Snapshot captures the match state with primitive types for determinism
// checks. Floats are scaled by 1000 and truncated.
type Snapshot struct {
	Tick          uint64
	BallX         int
	BallY         int
	BallVX        int
	BallVY        int
	Spin          int
	BallState     int
	LastHitBy     int
	RallyEligible bool
	PlayerY       int
	EnemyY        int
	PlayerScore   int
	EnemyScore    int
	Rally         int
	GameOver      bool
	Winner        int

	// Remaining hit points, player grid then enemy grid, row-major
	BlockHP []int
}

// Snapshot returns the current match state.
func (g *Game) Snapshot() Snapshot {
	pos, vel := g.ball.Position(), g.ball.Velocity()
	t := g.scores.Totals()

	var hp []int
	for _, grid := range g.grids {
		for _, b := range grid.Blocks() {
			hp = append(hp, b.HP())
		}
	}

	return Snapshot{
		Tick:          uint64(max(0, g.tickCount)), //#nosec G115 -- tick count is always positive
		BallX:         int(pos.X * 1000),
		BallY:         int(pos.Y * 1000),
		BallVX:        int(vel.X * 1000),
		BallVY:        int(vel.Y * 1000),
		Spin:          int(g.ball.Spin() * 1000),
		BallState:     int(g.ball.State()),
		LastHitBy:     int(g.ball.LastHitBy()),
		RallyEligible: g.ball.RallyEligible(),
		PlayerY:       int(g.player.Position().Y * 1000),
		EnemyY:        int(g.enemy.Position().Y * 1000),
		PlayerScore:   t.Player,
		EnemyScore:    t.Enemy,
		Rally:         t.Rally,
		GameOver:      g.gameOver,
		Winner:        int(g.winner),
		BlockHP:       hp,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	for _, v := range []int{
		snap.BallX, snap.BallY, snap.BallVX, snap.BallVY, snap.Spin,
		snap.BallState, snap.LastHitBy, boolInt(snap.RallyEligible),
		snap.PlayerY, snap.EnemyY,
		snap.PlayerScore, snap.EnemyScore, snap.Rally,
		boolInt(snap.GameOver), snap.Winner,
	} {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	for _, v := range snap.BlockHP {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	return h
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
