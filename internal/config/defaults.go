package config

import (
	_ "embed"
)

//go:embed defaults/bumblebees.yaml
var defaultGameYAML []byte

// DefaultGameConfig returns the default gameplay configuration.
// These values are the behavior contract: the wave grid formula, collision
// radius, defender line and per-second speeds that tests rely on.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		World: WorldConfig{
			Width:              800,
			Height:             600,
			DefenderLineOffset: 100,
		},
		Player: PlayerConfig{
			Speed: 300,
			Width: 50,
			Y:     550,
		},
		Bullet: BulletConfig{
			Speed:           400,
			CollisionRadius: 20,
		},
		Enemies: EnemyConfig{
			InitialSpeed:   50,
			SpeedIncrement: 10,
			DropDistance:   20,
			LeftMargin:     20,
			RightMargin:    20,
		},
		Waves: WaveConfig{
			Columns:       10,
			BaseRows:      2,
			OriginX:       50,
			OriginY:       100,
			ColumnSpacing: 60,
			RowSpacing:    50,
		},
	}
}
