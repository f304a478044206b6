package sim

import "testing"

func TestEnemyTypeTables(t *testing.T) {
	cases := []struct {
		typ        EnemyType
		health     int
		multiplier float64
		points     int
	}{
		{EnemyStandard, 1, 1.0, 10},
		{EnemyFast, 1, 1.5, 20},
		{EnemyTank, 3, 0.7, 50},
		{EnemySwooper, 1, 1.0, 30},
	}

	for _, c := range cases {
		if got := c.typ.MaxHealth(); got != c.health {
			t.Errorf("%v.MaxHealth() = %d, want %d", c.typ, got, c.health)
		}
		if got := c.typ.SpeedMultiplier(); got != c.multiplier {
			t.Errorf("%v.SpeedMultiplier() = %v, want %v", c.typ, got, c.multiplier)
		}
		if got := c.typ.Points(); got != c.points {
			t.Errorf("%v.Points() = %d, want %d", c.typ, got, c.points)
		}
	}
}

func TestNewEnemyStartsAtMaxHealth(t *testing.T) {
	for _, typ := range []EnemyType{EnemyStandard, EnemyFast, EnemyTank, EnemySwooper} {
		e := NewEnemy(100, 100, 1.0, typ)
		if e.Health != typ.MaxHealth() {
			t.Errorf("NewEnemy(%v).Health = %d, want %d", typ, e.Health, typ.MaxHealth())
		}
		if e.IsDestroyed() {
			t.Errorf("fresh %v enemy should not be destroyed", typ)
		}
	}
}

func TestTakeDamageSequence(t *testing.T) {
	e := NewEnemy(100, 100, 1.0, EnemyTank)

	if e.TakeDamage() {
		t.Error("first hit on a Tank should not destroy it")
	}
	if e.Health != 2 {
		t.Errorf("health after first hit = %d, want 2", e.Health)
	}

	if e.TakeDamage() {
		t.Error("second hit on a Tank should not destroy it")
	}

	if !e.TakeDamage() {
		t.Error("third hit on a Tank should destroy it")
	}
	if !e.IsDestroyed() {
		t.Error("enemy should be destroyed at 0 health")
	}

	// A fourth hit is a no-op: health floors at 0 and stays destroyed.
	if !e.TakeDamage() {
		t.Error("hit on a destroyed enemy should still report destroyed")
	}
	if e.Health != 0 {
		t.Errorf("health after extra hit = %d, want 0", e.Health)
	}
}

func TestEnemyUpdateUsesTypeMultiplier(t *testing.T) {
	base := 100.0
	dt := 0.5

	fast := NewEnemy(0, 0, 1.0, EnemyFast)
	fast.Update(base, dt)
	if fast.X != 75.0 {
		t.Errorf("Fast enemy x = %v, want 75", fast.X)
	}

	tank := NewEnemy(0, 0, -1.0, EnemyTank)
	tank.Update(base, dt)
	if tank.X != -35.0 {
		t.Errorf("Tank enemy x = %v, want -35", tank.X)
	}
}

func TestDefenderLineBreach(t *testing.T) {
	const height, offset = 600.0, 100.0

	above := NewEnemy(100, height-offset-10, 1.0, EnemyStandard)
	if above.HasBreachedDefenderLine(height, offset) {
		t.Error("enemy above the defender line should not breach")
	}

	below := NewEnemy(100, height-offset+10, 1.0, EnemyStandard)
	if !below.HasBreachedDefenderLine(height, offset) {
		t.Error("enemy below the defender line should breach")
	}
}

func TestBulletOutOfBounds(t *testing.T) {
	in := NewBullet(100, 100)
	if in.OutOfBounds() {
		t.Error("bullet inside the field should not be out of bounds")
	}

	out := NewBullet(100, -10)
	if !out.OutOfBounds() {
		t.Error("bullet above the field should be out of bounds")
	}
}

func TestBulletUpdateMovesUp(t *testing.T) {
	b := NewBullet(100, 100)
	b.Update(400, 0.1)
	if b.Y != 60.0 {
		t.Errorf("bullet y = %v, want 60", b.Y)
	}
}

func TestPlayerMoveClampsToField(t *testing.T) {
	const width, ship = 800.0, 50.0

	p := Player{X: 30}
	p.Move(true, false, 300, 1.0, width, ship)
	if p.X != ship/2 {
		t.Errorf("player clamped left at x = %v, want %v", p.X, ship/2)
	}

	p = Player{X: 790}
	p.Move(false, true, 300, 1.0, width, ship)
	if p.X != width-ship/2 {
		t.Errorf("player clamped right at x = %v, want %v", p.X, width-ship/2)
	}
}

func TestPlayerOpposingInputsCancel(t *testing.T) {
	p := Player{X: 400}
	p.Move(true, true, 300, 0.5, 800, 50)
	if p.X != 400 {
		t.Errorf("opposing inputs should cancel, player moved to %v", p.X)
	}
}
