package core

// RuntimeConfig contains per-session settings handed to the platform layer.
type RuntimeConfig struct {
	ScreenW      int    // Screen width in characters
	ScreenH      int    // Screen height in characters
	ReverseMoves bool   // Start with the move list newest-first
	Source       string // Recorded with finished games, e.g. "local" or "ssh:alice"
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		Source:  "local",
	}
}
