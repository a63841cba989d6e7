package steps

import "testing"

func TestPlayerIgnoresInputWhenInactive(t *testing.T) {
	p := NewPlayer(3)
	if p.Jump(1) {
		t.Fatal("jump should be ignored while input is inactive")
	}

	p.SetInputActive(true)
	if !p.Jump(1) {
		t.Fatal("jump should start once input is active")
	}
	if p.Jump(2) {
		t.Error("second jump mid-air should be ignored")
	}
}

func TestPlayerLandsAfterJumpTicks(t *testing.T) {
	p := NewPlayer(3)
	p.SetInputActive(true)

	var landed []int
	p.OnJumpEnd(func(i int) { landed = append(landed, i) })

	p.Jump(2)
	p.Update()
	p.Update()
	if len(landed) != 0 || !p.Jumping() {
		t.Fatalf("player landed early: %v", landed)
	}
	p.Update()

	if len(landed) != 1 || landed[0] != 2 {
		t.Fatalf("landings = %v, expected [2]", landed)
	}
	if p.Jumping() {
		t.Error("player should be on the ground after landing")
	}

	p.Jump(1)
	for i := 0; i < 3; i++ {
		p.Update()
	}
	if p.MoveIndex() != 3 || landed[len(landed)-1] != 3 {
		t.Errorf("MoveIndex = %d, landings = %v", p.MoveIndex(), landed)
	}
}

func TestPlayerJumpKeepsDurationInFlight(t *testing.T) {
	p := NewPlayer(4)
	p.SetInputActive(true)
	landed := false
	p.OnJumpEnd(func(int) { landed = true })

	p.Jump(1)
	p.SetJumpTicks(1)
	p.Update()
	if landed {
		t.Fatal("changing jump ticks mid-air should not shorten the current jump")
	}
	for i := 0; i < 3; i++ {
		p.Update()
	}
	if !landed {
		t.Error("jump should land after its original duration")
	}
}

func TestPlayerPositionInterpolates(t *testing.T) {
	p := NewPlayer(4)
	p.SetInputActive(true)
	p.Jump(2)
	p.Update()
	p.Update()

	if got := p.Position(); got != 1.0 {
		t.Errorf("Position() halfway through a 2-step jump = %f, expected 1.0", got)
	}
	if p.Height() <= 0 {
		t.Error("Height() should be positive mid-jump")
	}
}

func TestPlayerReset(t *testing.T) {
	p := NewPlayer(1)
	p.SetInputActive(true)
	p.Jump(2)
	p.Update()
	p.Jump(1)

	p.Reset()
	if p.MoveIndex() != 0 || p.Jumping() || p.Position() != 0 || p.Height() != 0 {
		t.Errorf("Reset left state behind: index=%d jumping=%v", p.MoveIndex(), p.Jumping())
	}
}

func TestPlayerRejectsNonPositiveStep(t *testing.T) {
	p := NewPlayer(1)
	p.SetInputActive(true)
	if p.Jump(0) || p.Jump(-1) {
		t.Error("non-positive steps should be ignored")
	}
}
