package sim

import "math"

// CheckCollision reports whether a bullet hits an enemy, using circle
// collision with a single global radius shared by all enemy types.
func CheckCollision(b Bullet, e Enemy, radius float64) bool {
	dx := e.X - b.X
	dy := e.Y - b.Y
	return math.Sqrt(dx*dx+dy*dy) < radius
}

// Hit records a bullet striking an enemy during one frame.
type Hit struct {
	X, Y      float64 // Enemy position at the time of the hit
	Type      EnemyType
	Destroyed bool // Whether this hit brought the enemy to 0 health
}

// Points returns the score value of the hit. Zero unless the hit destroyed
// the enemy.
func (h Hit) Points() int {
	if !h.Destroyed {
		return 0
	}
	return h.Type.Points()
}

// ProcessCollisions resolves all bullet/enemy collisions for one frame.
//
// For each live enemy in collection order, the first live unspent bullet in
// collection order within the radius is the one that hits: it applies one
// damage point and is spent even if the enemy survives. At most one bullet
// resolves per enemy per frame, and a spent bullet cannot hit a second
// enemy. The scan is O(enemies * bullets), which is the contract for the
// entity counts of an arcade session.
//
// Destroyed enemies and spent bullets are compacted out in a single pass
// that preserves collection order, so removal can never skip or duplicate
// an element. Returns the surviving collections and the ordered hits.
func ProcessCollisions(enemies []Enemy, bullets []Bullet, radius float64) ([]Enemy, []Bullet, []Hit) {
	var hits []Hit
	spent := make([]bool, len(bullets))

	for i := range enemies {
		for j := range bullets {
			if spent[j] || !CheckCollision(bullets[j], enemies[i], radius) {
				continue
			}

			destroyed := enemies[i].TakeDamage()
			spent[j] = true
			hits = append(hits, Hit{
				X:         enemies[i].X,
				Y:         enemies[i].Y,
				Type:      enemies[i].Type,
				Destroyed: destroyed,
			})
			break // one bullet per enemy per frame
		}
	}

	liveEnemies := enemies[:0]
	for _, e := range enemies {
		if !e.IsDestroyed() {
			liveEnemies = append(liveEnemies, e)
		}
	}

	liveBullets := bullets[:0]
	for j, b := range bullets {
		if !spent[j] {
			liveBullets = append(liveBullets, b)
		}
	}

	return liveEnemies, liveBullets, hits
}
