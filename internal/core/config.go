package core

// RuntimeConfig contains configuration passed from the host to the platform.
// The simulation runs in its own virtual coordinate space; the screen
// dimensions here only describe the terminal the result is projected onto.
type RuntimeConfig struct {
	ScreenW  int // Terminal width in characters
	ScreenH  int // Terminal height in characters
	TickRate int // Simulation ticks per second (default 60)
}

// DefaultRuntimeConfig returns a RuntimeConfig with sensible defaults.
func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}
