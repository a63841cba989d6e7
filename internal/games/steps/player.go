package steps

// Player hops along the road one or two tiles at a time.
// A jump takes a fixed number of ticks; input is ignored mid-air and
// while the controller has input disabled.
type Player struct {
	inputActive bool
	jumping     bool
	jumpStep    int
	jumpTick    int
	jumpTicks   int
	duration    int // ticks of the jump in flight
	moveIndex   int
	onJumpEnd   func(moveIndex int)
}

// NewPlayer creates a player whose jumps last jumpTicks ticks.
func NewPlayer(jumpTicks int) *Player {
	p := &Player{}
	p.SetJumpTicks(jumpTicks)
	return p
}

// SetInputActive enables or disables jump input.
func (p *Player) SetInputActive(active bool) {
	p.inputActive = active
}

// InputActive reports whether jump input is accepted.
func (p *Player) InputActive() bool {
	return p.inputActive
}

// SetJumpTicks changes the duration of the next jump. A jump already in
// the air keeps its duration.
func (p *Player) SetJumpTicks(ticks int) {
	if ticks < 1 {
		ticks = 1
	}
	p.jumpTicks = ticks
}

// OnJumpEnd registers the callback fired with the landing index.
func (p *Player) OnJumpEnd(fn func(moveIndex int)) {
	p.onJumpEnd = fn
}

// Reset puts the player back on the start tile.
func (p *Player) Reset() {
	p.jumping = false
	p.jumpStep = 0
	p.jumpTick = 0
	p.moveIndex = 0
}

// Jump starts a jump of step tiles. Returns false if the jump was ignored.
func (p *Player) Jump(step int) bool {
	if !p.inputActive || p.jumping || step < 1 {
		return false
	}
	p.jumping = true
	p.jumpStep = step
	p.jumpTick = 0
	p.duration = p.jumpTicks
	return true
}

// Update advances an in-flight jump by one tick and lands it when done.
func (p *Player) Update() {
	if !p.jumping {
		return
	}

	p.jumpTick++
	if p.jumpTick < p.duration {
		return
	}

	p.jumping = false
	p.moveIndex += p.jumpStep
	p.jumpStep = 0
	p.jumpTick = 0
	if p.onJumpEnd != nil {
		p.onJumpEnd(p.moveIndex)
	}
}

// MoveIndex returns the tile the player last landed on.
func (p *Player) MoveIndex() int {
	return p.moveIndex
}

// Jumping reports whether the player is in the air.
func (p *Player) Jumping() bool {
	return p.jumping
}

// progress is the fraction of the current jump completed, in [0, 1).
func (p *Player) progress() float64 {
	if !p.jumping {
		return 0
	}
	return float64(p.jumpTick) / float64(p.duration)
}

// Position returns the interpolated position in tiles.
func (p *Player) Position() float64 {
	return float64(p.moveIndex) + float64(p.jumpStep)*p.progress()
}

// Height returns the jump height in [0, 1]; longer jumps peak at 1.
func (p *Player) Height() float64 {
	t := p.progress()
	peak := 0.6
	if p.jumpStep > 1 {
		peak = 1.0
	}
	return 4 * t * (1 - t) * peak
}
