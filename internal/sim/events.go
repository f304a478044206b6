package sim

// Event is a discrete occurrence emitted by one simulation tick, consumed
// by the platform for sound cues, score persistence and effects. Events are
// returned in the order they happened within the tick, never polled.
type Event interface {
	simEvent()
}

// ShotFiredEvent is emitted when the player fires a bullet.
type ShotFiredEvent struct {
	X, Y float64
}

func (ShotFiredEvent) simEvent() {}

// EnemyDamagedEvent is emitted when a bullet damages an enemy that
// survives the hit.
type EnemyDamagedEvent struct {
	X, Y float64
	Type EnemyType
}

func (EnemyDamagedEvent) simEvent() {}

// EnemyDestroyedEvent is emitted when a bullet destroys an enemy. Position
// and point value are captured at the time of destruction, for score and
// explosion effects.
type EnemyDestroyedEvent struct {
	X, Y   float64
	Points int
}

func (EnemyDestroyedEvent) simEvent() {}

// WaveClearedEvent is emitted when the last enemy of a wave is destroyed
// and the next wave has been spawned.
type WaveClearedEvent struct {
	Cleared int // Wave that was just cleared
	Next    int // Wave that was spawned
}

func (WaveClearedEvent) simEvent() {}

// GameOverEvent is emitted exactly once, when an enemy breaches the
// defender line. Carries the final score for highscore recording.
type GameOverEvent struct {
	Score int
	Wave  int
}

func (GameOverEvent) simEvent() {}
