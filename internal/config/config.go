// Package config provides YAML-based gameplay tuning with embedded defaults
// and difficulty presets.
package config

// GameConfig contains every tunable constant of the simulation. The
// defaults are part of the observable behavior contract; a custom config
// file can override them for experimentation.
type GameConfig struct {
	World   WorldConfig  `yaml:"world"`
	Player  PlayerConfig `yaml:"player"`
	Bullet  BulletConfig `yaml:"bullet"`
	Enemies EnemyConfig  `yaml:"enemies"`
	Waves   WaveConfig   `yaml:"waves"`
}

// WorldConfig defines the virtual play field. The simulation runs in this
// coordinate space regardless of terminal size; the renderer projects it.
type WorldConfig struct {
	Width              float64 `yaml:"width"`
	Height             float64 `yaml:"height"`
	DefenderLineOffset float64 `yaml:"defender_line_offset"` // Distance of the defender line from the bottom
}

// PlayerConfig defines player ship parameters.
type PlayerConfig struct {
	Speed float64 `yaml:"speed"` // Horizontal speed in units per second
	Width float64 `yaml:"width"` // Ship width, used for movement clamping
	Y     float64 `yaml:"y"`     // Fixed vertical position of the ship (and bullet spawn)
}

// BulletConfig defines bullet parameters.
type BulletConfig struct {
	Speed           float64 `yaml:"speed"`            // Upward speed in units per second
	CollisionRadius float64 `yaml:"collision_radius"` // Single global hit radius
}

// EnemyConfig defines formation movement and escalation parameters.
type EnemyConfig struct {
	InitialSpeed   float64 `yaml:"initial_speed"`   // Base formation speed at wave 1
	SpeedIncrement float64 `yaml:"speed_increment"` // Added to base speed once per cleared wave, uncapped
	DropDistance   float64 `yaml:"drop_distance"`   // Vertical drop applied on edge reversal
	LeftMargin     float64 `yaml:"left_margin"`
	RightMargin    float64 `yaml:"right_margin"`
}

// WaveConfig defines the wave grid formula: base_rows + wave rows of
// columns enemies, column i at origin_x + i*column_spacing, row j at
// origin_y + j*row_spacing.
type WaveConfig struct {
	Columns       int     `yaml:"columns"`
	BaseRows      int     `yaml:"base_rows"`
	OriginX       float64 `yaml:"origin_x"`
	OriginY       float64 `yaml:"origin_y"`
	ColumnSpacing float64 `yaml:"column_spacing"`
	RowSpacing    float64 `yaml:"row_spacing"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ApplyPreset adjusts escalation parameters for a difficulty preset.
// "normal" (or empty) leaves the contract defaults untouched; "fixed"
// disables per-wave speed escalation entirely.
func ApplyPreset(cfg *GameConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Enemies.InitialSpeed *= 0.8
		cfg.Enemies.SpeedIncrement *= 0.75
	case DifficultyHard:
		cfg.Enemies.InitialSpeed *= 1.3
		cfg.Enemies.SpeedIncrement *= 1.5
	case DifficultyFixed:
		cfg.Enemies.SpeedIncrement = 0
	}
}
