// Package sim implements the gameplay simulation core: entity state,
// per-frame movement, collision resolution and wave progression.
//
// The package is pure and single-threaded. One Tick call advances the world
// by one frame; nothing here blocks, spawns goroutines, reads clocks or does
// I/O. The host supplies the input snapshot and frame delta, and consumes
// the emitted events. State may be read for drawing only between ticks.
package sim

// EnemyType determines behavior, health and point value. The set is closed;
// every lookup is a total function over the four variants.
type EnemyType int

const (
	EnemyStandard EnemyType = iota // 1 hit, normal speed, 10 points
	EnemyFast                      // 1 hit, 1.5x speed, 20 points
	EnemyTank                      // 3 hits, 0.7x speed, 50 points
	EnemySwooper                   // 1 hit, normal speed, 30 points
)

// MaxHealth returns the starting health for this enemy type.
func (t EnemyType) MaxHealth() int {
	switch t {
	case EnemyTank:
		return 3
	default:
		return 1
	}
}

// SpeedMultiplier returns the per-type factor applied to the shared
// formation base speed.
func (t EnemyType) SpeedMultiplier() float64 {
	switch t {
	case EnemyFast:
		return 1.5
	case EnemyTank:
		return 0.7
	default:
		return 1.0
	}
}

// Points returns the score value for destroying this enemy type.
func (t EnemyType) Points() int {
	switch t {
	case EnemyFast:
		return 20
	case EnemyTank:
		return 50
	case EnemySwooper:
		return 30
	default:
		return 10
	}
}

// String returns a human-readable name for the enemy type.
func (t EnemyType) String() string {
	switch t {
	case EnemyStandard:
		return "Standard"
	case EnemyFast:
		return "Fast"
	case EnemyTank:
		return "Tank"
	case EnemySwooper:
		return "Swooper"
	default:
		return "Unknown"
	}
}

// Enemy is a member of the wave formation. Enemies sweep horizontally in
// lockstep, drop together on edge reversal, and end the session if they
// reach the defender line.
type Enemy struct {
	X, Y      float64
	Direction float64 // 1 = right, -1 = left; shared by the whole formation
	Type      EnemyType
	Health    int // 0 means destroyed and eligible for removal this frame
}

// NewEnemy creates an enemy at the given position with health initialized
// to the type's maximum.
func NewEnemy(x, y, direction float64, t EnemyType) Enemy {
	return Enemy{
		X:         x,
		Y:         y,
		Direction: direction,
		Type:      t,
		Health:    t.MaxHealth(),
	}
}

// Update integrates the enemy's horizontal position for one frame using the
// shared formation base speed and the type's multiplier.
func (e *Enemy) Update(baseSpeed, dt float64) {
	e.X += e.Direction * baseSpeed * e.Type.SpeedMultiplier() * dt
}

// TakeDamage reduces health by 1, flooring at 0. Calling it on an already
// destroyed enemy is a no-op. Returns true when health is 0 after the call.
func (e *Enemy) TakeDamage() bool {
	if e.Health > 0 {
		e.Health--
	}
	return e.Health == 0
}

// IsDestroyed reports whether health has reached 0.
func (e *Enemy) IsDestroyed() bool {
	return e.Health == 0
}

// HasBreachedDefenderLine reports whether the enemy has crossed the
// defender line near the bottom of the field, which ends the session.
func (e *Enemy) HasBreachedDefenderLine(fieldHeight, lineOffset float64) bool {
	return e.Y > fieldHeight-lineOffset
}

// Bullet is a player shot. Bullets travel straight up at constant speed
// until they leave the field or are consumed by a collision.
type Bullet struct {
	X, Y float64
}

// NewBullet creates a bullet at the given position.
func NewBullet(x, y float64) Bullet {
	return Bullet{X: x, Y: y}
}

// Update integrates the bullet's position for one frame. Up is negative y.
func (b *Bullet) Update(speed, dt float64) {
	b.Y -= speed * dt
}

// OutOfBounds reports whether the bullet has left the top of the field.
func (b *Bullet) OutOfBounds() bool {
	return b.Y < 0
}

// Player is the defender ship. Only the horizontal position is simulated;
// the vertical position is a fixed field constant.
type Player struct {
	X float64
}

// Move applies held movement input for one frame and clamps the result to
// the playable width. Left is applied before right, so opposing inputs
// cancel to zero net velocity.
func (p *Player) Move(left, right bool, speed, dt, fieldWidth, shipWidth float64) {
	var vx float64
	if left {
		vx -= speed
	}
	if right {
		vx += speed
	}
	p.X += vx * dt

	half := shipWidth / 2
	if p.X < half {
		p.X = half
	}
	if p.X > fieldWidth-half {
		p.X = fieldWidth - half
	}
}
