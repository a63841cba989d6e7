package steps

import (
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/vovakirdan/tui-steps/internal/core"
)

// Visual characters for rendering
const (
	BlockChar  = '█'
	PlayerChar = '●'
	FinishChar = '▌'
)

const (
	minScreenW = 24
	minScreenH = 10
	jumpRows   = 3 // rows of the highest jump arc
)

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	w, h := dst.Width(), dst.Height()
	bh := g.cfg.Player.BlockHeight
	if w < minScreenW || h < minScreenH+bh {
		drawCentered(dst, h/2-1, "Too small", core.ColorYellow)
		drawCentered(dst, h/2, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH+bh), core.ColorGray)
		return
	}

	bw := g.cfg.Player.BlockWidth
	groundTop := h - 3 - bh
	playerCol := w / 4
	camX := int(math.Round(g.player.Position()*float64(bw))) - playerCol

	g.drawRoad(dst, camX, groundTop)
	g.drawPlayer(dst, playerCol, groundTop)
	g.drawHUD(dst)

	if g.startMenu.active {
		drawBox(dst, []string{
			"MIND YOUR STEP",
			"",
			"Enter/Space  start",
			"Left/A  1 step   Right/D  2 steps",
			"Q  quit",
		})
	}
	if g.controls.active {
		drawCentered(dst, h-1, "Left/A: 1 step   Right/D: 2 steps   P: pause", core.ColorGray)
	}
	if g.paused {
		drawBox(dst, []string{"PAUSED", "", "Press P to resume"})
	}
}

// drawRoad draws the visible blocks, tile markers and the finish line.
func (g *Game) drawRoad(dst *core.Screen, camX, groundTop int) {
	bw := g.cfg.Player.BlockWidth
	bh := g.cfg.Player.BlockHeight
	from := camX/bw - 1
	to := (camX+dst.Width())/bw + 2

	for _, idx := range g.scene.Range(from, to) {
		x := idx*bw - camX
		color := core.ColorCyan
		if idx == 0 {
			color = core.ColorGreen
		}
		dst.DrawRect(core.NewRect(x, groundTop, core.Max(bw-1, 1), bh), BlockChar, color)

		if idx > 0 && idx%10 == 0 {
			dst.DrawTextColored(x, groundTop+bh, fmt.Sprintf("%d", idx), core.ColorGray)
		}
	}

	end := g.manager.Track().Len()
	if end > 0 {
		x := end*bw - camX
		for y := groundTop - jumpRows; y < groundTop+bh; y++ {
			dst.SetColored(x, y, FinishChar, core.ColorOrange)
		}
	}
}

// drawPlayer draws the player above its interpolated position.
func (g *Game) drawPlayer(dst *core.Screen, playerCol, groundTop int) {
	bw := g.cfg.Player.BlockWidth
	x := playerCol + (bw-1)/2
	y := groundTop - 1 - int(math.Round(g.player.Height()*jumpRows))
	dst.SetColored(x, y, PlayerChar, core.ColorBrightYellow)
}

// drawHUD draws the score labels, best score and jump speed.
func (g *Game) drawHUD(dst *core.Screen) {
	dst.DrawTextColored(2, 0, g.stepsLabel.text, core.ColorWhite)

	right := fmt.Sprintf("Best: %d", g.best)
	if g.difficulty.IsEnabled() {
		ticks := g.difficulty.JumpTicks(g.cfg.Player.JumpTicks, g.manager.Score(), g.manager.PlayTicks())
		right = fmt.Sprintf("Jump: %dt  %s", ticks, right)
	}
	dst.DrawTextColored(dst.Width()-utf8.RuneCountInString(right)-2, 0, right, core.ColorGray)

	if g.overLabel.text != "" {
		drawCentered(dst, 2, g.overLabel.text, core.ColorRed)
	}
}

// drawCentered draws one colored line centered horizontally. Text wider
// than the screen is cut at the right edge.
func drawCentered(dst *core.Screen, y int, text string, c core.Color) {
	if r := []rune(text); len(r) > dst.Width() {
		text = string(r[:core.Max(dst.Width(), 0)])
	}
	x := core.Max((dst.Width()-utf8.RuneCountInString(text))/2, 0)
	dst.DrawTextColored(x, y, text, c)
}

// drawBox draws lines inside a bordered box in the middle of the screen.
func drawBox(dst *core.Screen, lines []string) {
	width := 0
	for _, l := range lines {
		width = core.Max(width, utf8.RuneCountInString(l))
	}

	screen := core.NewRect(0, 0, dst.Width(), dst.Height())
	box := screen.Centered(width+4, len(lines)+2)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorWhite)
	for i, l := range lines {
		x := box.X + (box.W-utf8.RuneCountInString(l))/2
		dst.DrawText(x, box.Y+1+i, l)
	}
}
