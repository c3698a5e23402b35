package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed, 0 means the platform picks one
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0,
	}
}

// TickSeconds returns the length of one tick in seconds.
func (c RuntimeConfig) TickSeconds() float64 {
	if c.TickRate <= 0 {
		return 1.0 / 60
	}
	return 1.0 / float64(c.TickRate)
}

// GameState represents the current state of a game.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game has ended
	Won      bool // Whether it ended with the table cleared
	Paused   bool // Whether the game is paused

	Shots     int // Strokes taken this rack
	Scratches int // Cue balls pocketed this rack
}

// NoticeLevel is the severity of a Notice.
type NoticeLevel int

const (
	NoticeDebug NoticeLevel = iota
	NoticeInfo
	NoticeWarn
)

// Notice is something a game wants the platform to log.
// Fields are alternating key/value pairs.
type Notice struct {
	Level   NoticeLevel
	Message string
	Fields  []any
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State   GameState
	Notices []Notice
}
