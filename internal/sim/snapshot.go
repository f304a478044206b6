package sim

import "math"

// Snapshot is a primitive-typed copy of the complete world state, used for
// determinism testing. Collections are flattened in their iteration order.
type Snapshot struct {
	PlayerX   float64
	Direction float64
	BaseSpeed float64
	Wave      int
	Score     int
	State     int

	// Enemy state, 4 values each: x, y, type, health
	EnemyCount int
	EnemyData  []float64

	// Bullet state, 2 values each: x, y
	BulletCount int
	BulletData  []float64
}

// Snapshot returns the current world state as a Snapshot.
func (w *World) Snapshot() Snapshot {
	enemyData := make([]float64, 0, len(w.enemies)*4)
	for _, e := range w.enemies {
		enemyData = append(enemyData, e.X, e.Y, float64(e.Type), float64(e.Health))
	}

	bulletData := make([]float64, 0, len(w.bullets)*2)
	for _, b := range w.bullets {
		bulletData = append(bulletData, b.X, b.Y)
	}

	return Snapshot{
		PlayerX:     w.player.X,
		Direction:   w.direction,
		BaseSpeed:   w.baseSpeed,
		Wave:        w.wave,
		Score:       w.score,
		State:       int(w.state),
		EnemyCount:  len(w.enemies),
		EnemyData:   enemyData,
		BulletCount: len(w.bullets),
		BulletData:  bulletData,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (s *Snapshot) Hash() uint64 {
	h := math.Float64bits(s.PlayerX)
	h = h*31 + math.Float64bits(s.Direction)
	h = h*31 + math.Float64bits(s.BaseSpeed)
	h = h*31 + uint64(s.Wave)
	h = h*31 + uint64(s.Score)
	h = h*31 + uint64(s.State)
	h = h*31 + uint64(s.EnemyCount)
	h = h*31 + uint64(s.BulletCount)

	for _, v := range s.EnemyData {
		h = h*31 + math.Float64bits(v)
	}
	for _, v := range s.BulletData {
		h = h*31 + math.Float64bits(v)
	}

	return h
}
