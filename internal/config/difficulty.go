package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// presetScaling holds the multipliers a preset applies to the loaded config.
type presetScaling struct {
	friction float64
	pocket   float64
	maxPower float64
}

var presets = map[DifficultyPreset]presetScaling{
	DifficultyEasy:   {friction: 0.75, pocket: 1.25, maxPower: 1.2},
	DifficultyNormal: {friction: 1, pocket: 1, maxPower: 1},
	DifficultyHard:   {friction: 1.25, pocket: 0.85, maxPower: 0.9},
}

// ParsePreset converts a CLI value to a preset. Empty means no preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	if s == "" {
		return "", nil
	}
	p := DifficultyPreset(s)
	if _, ok := presets[p]; !ok {
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
	return p, nil
}

// ApplyPoolPreset scales friction, pocket size and maximum power.
// Pockets never shrink to the ball size or below. Unknown presets are ignored.
func ApplyPoolPreset(cfg *PoolConfig, preset DifficultyPreset) {
	sc, ok := presets[preset]
	if !ok {
		return
	}

	cfg.Physics.Friction *= sc.friction
	cfg.Shot.PowerMax *= sc.maxPower
	if cfg.Shot.PowerMax < cfg.Shot.PowerMin {
		cfg.Shot.PowerMax = cfg.Shot.PowerMin
	}

	pocket := cfg.Table.PocketRadius * sc.pocket
	if floor := cfg.Balls.Radius * 1.1; pocket < floor {
		pocket = floor
	}
	cfg.Table.PocketRadius = pocket
}
