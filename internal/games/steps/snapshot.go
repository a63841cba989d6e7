package steps

// Snapshot captures the observable game state for determinism testing.
type Snapshot struct {
	Tick        uint64
	State       State
	Score       int
	Best        int
	MoveIndex   int
	Jumping     bool
	InputActive bool
	Seed        int64
	Road        string
	Blocks      int
	StepsText   string
	OverText    string
	MenuVisible bool
	Controls    bool
	Paused      bool
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:        g.tick,
		State:       g.manager.State(),
		Score:       g.manager.Score(),
		Best:        g.best,
		MoveIndex:   g.player.MoveIndex(),
		Jumping:     g.player.Jumping(),
		InputActive: g.player.InputActive(),
		Seed:        g.manager.Seed(),
		Road:        g.manager.Track().String(),
		Blocks:      len(g.scene.blocks),
		StepsText:   g.stepsLabel.text,
		OverText:    g.overLabel.text,
		MenuVisible: g.startMenu.active,
		Controls:    g.controls.active,
		Paused:      g.paused,
	}
}
