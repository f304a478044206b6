package tui

import (
	"fmt"

	"github.com/mcschied/bumblebees/internal/core"
	"github.com/mcschied/bumblebees/internal/sim"
)

// Entity glyphs. The simulation runs in virtual coordinates; these are what
// the projected positions render as.
const (
	PlayerChar  = '▲'
	BulletChar  = '│'
	LineChar    = '·'
	TankDamaged = '▓'
)

// enemyGlyph returns the rune and color for an enemy type.
func enemyGlyph(e sim.Enemy) (rune, core.Color) {
	switch e.Type {
	case sim.EnemyFast:
		return '◆', core.ColorCyan
	case sim.EnemyTank:
		if e.Health < e.Type.MaxHealth() {
			return TankDamaged, core.ColorBrightRed
		}
		return '█', core.ColorRed
	case sim.EnemySwooper:
		return '∿', core.ColorMagenta
	default:
		return '▼', core.ColorGreen
	}
}

// renderWorld draws the simulation state onto the screen buffer, projecting
// virtual world coordinates onto terminal cells.
func renderWorld(w *sim.World, dst *core.Screen, paused bool) {
	dst.Clear()

	cfg := w.Config()
	if cfg.World.Width <= 0 || cfg.World.Height <= 0 || dst.Width() == 0 || dst.Height() == 0 {
		return
	}

	projectX := func(x float64) int {
		return int(x / cfg.World.Width * float64(dst.Width()))
	}
	projectY := func(y float64) int {
		return int(y / cfg.World.Height * float64(dst.Height()))
	}

	// Defender line
	lineY := projectY(cfg.World.Height - cfg.World.DefenderLineOffset)
	for x := 0; x < dst.Width(); x++ {
		dst.SetColored(x, lineY, LineChar, core.ColorGray)
	}

	for _, e := range w.Enemies() {
		r, c := enemyGlyph(e)
		dst.SetColored(projectX(e.X), projectY(e.Y), r, c)
	}

	for _, b := range w.Bullets() {
		dst.SetColored(projectX(b.X), projectY(b.Y), BulletChar, core.ColorYellow)
	}

	p := w.Player()
	dst.SetColored(projectX(p.X), projectY(cfg.Player.Y), PlayerChar, core.ColorBrightWhite)

	// HUD
	dst.DrawText(2, 0, fmt.Sprintf(" Score: %d ", w.Score()))
	waveText := fmt.Sprintf(" Wave: %d ", w.Wave())
	dst.DrawText(dst.Width()-len(waveText)-2, 0, waveText)

	if paused {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}

	if w.State() == sim.StateGameOver {
		drawCenteredMessage(dst, "GAME OVER",
			fmt.Sprintf("Score: %d  |  Press R to restart", w.Score()))
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	titleX := boxX + (boxW-len(title))/2
	dst.DrawText(titleX, boxY+1, title)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}
