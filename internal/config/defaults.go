package config

import (
	_ "embed"
)

//go:embed defaults/pool.yaml
var defaultPoolYAML []byte

// DefaultPoolConfig returns the default pool configuration.
// Mirrors defaults/pool.yaml and is used if the embedded file cannot be parsed.
func DefaultPoolConfig() PoolConfig {
	return PoolConfig{
		Table: PoolTable{
			Width:        640,
			Height:       320,
			Margin:       8,
			Cushion:      16,
			PocketRadius: 18,
			ScratchParkX: -64,
			ScratchParkY: -64,
		},
		Balls: PoolBalls{
			Radius:  8,
			Mass:    1,
			CueMass: 1,
			RackGap: 0.5,
		},
		Physics: PoolPhysics{
			Friction:     0.02,
			RestEpsilon:  4,
			SweepStep:    0.2,
			SweepFloor:   -2,
			FallbackTime: 5,
		},
		Shot: PoolShot{
			PowerMin:     5,
			PowerMax:     100,
			PowerPerUnit: 0.5,
			ShotScale:    8,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "pool", "pool_practice":
		return defaultPoolYAML
	default:
		return nil
	}
}
