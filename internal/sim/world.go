package sim

import "github.com/mcschied/bumblebees/internal/config"

// State is the game-session state tag.
type State int

const (
	StatePlaying State = iota
	StateGameOver
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StatePlaying:
		return "Playing"
	case StateGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Input is the snapshot of player intent for one tick. Left and Right
// reflect movement keys active this frame; Fire and the platform-level
// reset are edge-triggered, once per press.
type Input struct {
	Left  bool
	Right bool
	Fire  bool
}

// World is the single mutable root of the simulation: the player, the live
// enemy and bullet collections, the shared formation state, and the session
// score and state tag. It is constructed once per session and mutated only
// by Tick on the calling goroutine; the host may read it for drawing
// between ticks.
type World struct {
	cfg config.GameConfig

	player    Player
	enemies   []Enemy
	bullets   []Bullet
	direction float64 // Shared formation direction, 1 = right
	baseSpeed float64 // Shared formation base speed, escalates per wave
	wave      int
	score     int
	state     State
}

// NewWorld creates a world at wave-1 defaults using the given tuning.
func NewWorld(cfg config.GameConfig) *World {
	w := &World{cfg: cfg}
	w.Reset()
	return w
}

// Reset returns the session to its initial values without reallocating the
// world: score 0, initial formation speed, player centered, a fresh wave-1
// grid, no bullets, state Playing. This is the only way out of GameOver.
func (w *World) Reset() {
	w.player = Player{X: w.cfg.World.Width / 2}
	w.direction = 1.0
	w.baseSpeed = w.cfg.Enemies.InitialSpeed
	w.wave = 1
	w.score = 0
	w.state = StatePlaying
	w.enemies = GenerateWave(1, w.cfg.Waves)
	w.bullets = w.bullets[:0]
}

// Tick advances the simulation by one frame. dt is the host-supplied frame
// delta in seconds; dt == 0 moves nothing and causes no transitions, and
// arbitrarily large dt is tolerated (fast bullets may tunnel, accepted).
// Returns the ordered events of this frame.
//
// The per-frame order is fixed: apply input, move player, spawn bullet on
// fire, move enemies, edge reversal and drop, move bullets, cull
// out-of-bounds bullets, resolve collisions, check the defender line,
// check wave clear. In GameOver the world refuses all simulation work
// (firing included) until Reset.
func (w *World) Tick(in Input, dt float64) []Event {
	if w.state != StatePlaying {
		return nil
	}

	var events []Event

	w.player.Move(in.Left, in.Right, w.cfg.Player.Speed, dt, w.cfg.World.Width, w.cfg.Player.Width)

	if in.Fire {
		b := NewBullet(w.player.X, w.cfg.Player.Y)
		w.bullets = append(w.bullets, b)
		events = append(events, ShotFiredEvent{X: b.X, Y: b.Y})
	}

	// Formation sweep, then a single post-move edge check. The check uses
	// post-move positions, so enemies can overshoot the margin before the
	// reversal applies; accepted approximation.
	for i := range w.enemies {
		w.enemies[i].Update(w.baseSpeed, dt)
	}
	if w.formationAtEdge() {
		w.direction = -w.direction
		for i := range w.enemies {
			w.enemies[i].Direction = w.direction
			w.enemies[i].Y += w.cfg.Enemies.DropDistance
		}
	}

	liveBullets := w.bullets[:0]
	for i := range w.bullets {
		w.bullets[i].Update(w.cfg.Bullet.Speed, dt)
		if !w.bullets[i].OutOfBounds() {
			liveBullets = append(liveBullets, w.bullets[i])
		}
	}
	w.bullets = liveBullets

	var hits []Hit
	w.enemies, w.bullets, hits = ProcessCollisions(w.enemies, w.bullets, w.cfg.Bullet.CollisionRadius)
	for _, h := range hits {
		if h.Destroyed {
			w.score += h.Points()
			events = append(events, EnemyDestroyedEvent{X: h.X, Y: h.Y, Points: h.Points()})
		} else {
			events = append(events, EnemyDamagedEvent{X: h.X, Y: h.Y, Type: h.Type})
		}
	}

	// Breach wins over wave clear when both apply in the same frame: the
	// session ends and no new wave is spawned.
	if w.breached() {
		w.state = StateGameOver
		events = append(events, GameOverEvent{Score: w.score, Wave: w.wave})
		return events
	}

	if len(w.enemies) == 0 {
		cleared := w.wave
		w.wave++
		w.baseSpeed += w.cfg.Enemies.SpeedIncrement
		w.direction = 1.0
		w.enemies = GenerateWave(w.wave, w.cfg.Waves)
		events = append(events, WaveClearedEvent{Cleared: cleared, Next: w.wave})
	}

	return events
}

// formationAtEdge reports whether any live enemy has crossed the margin on
// the side the formation is moving toward. Checking the travel side keeps a
// single reversal per edge contact instead of re-triggering every frame
// while an overshooting enemy returns inside the margin.
func (w *World) formationAtEdge() bool {
	left := w.cfg.Enemies.LeftMargin
	right := w.cfg.World.Width - w.cfg.Enemies.RightMargin

	for i := range w.enemies {
		if w.direction > 0 && w.enemies[i].X > right {
			return true
		}
		if w.direction < 0 && w.enemies[i].X < left {
			return true
		}
	}
	return false
}

// breached reports whether any live enemy has crossed the defender line.
func (w *World) breached() bool {
	for i := range w.enemies {
		if w.enemies[i].HasBreachedDefenderLine(w.cfg.World.Height, w.cfg.World.DefenderLineOffset) {
			return true
		}
	}
	return false
}

// Player returns the player ship state.
func (w *World) Player() Player {
	return w.player
}

// Enemies returns the live enemy collection. Read-only, between ticks.
func (w *World) Enemies() []Enemy {
	return w.enemies
}

// Bullets returns the live bullet collection. Read-only, between ticks.
func (w *World) Bullets() []Bullet {
	return w.bullets
}

// Score returns the session score.
func (w *World) Score() int {
	return w.score
}

// Wave returns the current wave number.
func (w *World) Wave() int {
	return w.wave
}

// BaseSpeed returns the current shared formation base speed.
func (w *World) BaseSpeed() float64 {
	return w.baseSpeed
}

// State returns the session state tag.
func (w *World) State() State {
	return w.state
}

// Config returns the tuning the world was created with.
func (w *World) Config() config.GameConfig {
	return w.cfg
}
