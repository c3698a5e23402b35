// Package config provides YAML-based configuration for the billiards table:
// geometry, balls, physics tuning and shot mapping, plus difficulty presets.
package config

// PoolConfig contains all configuration for a game of pool.
type PoolConfig struct {
	Table   PoolTable   `yaml:"table"`
	Balls   PoolBalls   `yaml:"balls"`
	Physics PoolPhysics `yaml:"physics"`
	Shot    PoolShot    `yaml:"shot"`
}

// PoolTable defines the table geometry in simulation units.
// The play area spans [0, Width] x [0, Height] with Y growing downward.
type PoolTable struct {
	Width        float64 `yaml:"width"`         // play area width
	Height       float64 `yaml:"height"`        // play area height
	Margin       float64 `yaml:"margin"`        // gap between play area edge and cushions
	Cushion      float64 `yaml:"cushion"`       // wall thickness
	PocketRadius float64 `yaml:"pocket_radius"` // must exceed the ball radius
	ScratchParkX float64 `yaml:"scratch_park_x"`
	ScratchParkY float64 `yaml:"scratch_park_y"`
}

// PoolBalls defines ball dimensions and the rack spacing.
type PoolBalls struct {
	Radius  float64 `yaml:"radius"`
	Mass    float64 `yaml:"mass"`
	CueMass float64 `yaml:"cue_mass"`
	RackGap float64 `yaml:"rack_gap"` // spacing between racked balls
}

// PoolPhysics tunes the collision engine.
type PoolPhysics struct {
	Friction     float64 `yaml:"friction"`      // damping force per unit velocity, applied every tick
	RestEpsilon  float64 `yaml:"rest_epsilon"`  // squared speed below which a ball stops
	SweepStep    float64 `yaml:"sweep_step"`    // fraction of a tick per sweep sample
	SweepFloor   float64 `yaml:"sweep_floor"`   // earliest sweep time in ticks (negative)
	FallbackTime float64 `yaml:"fallback_time"` // resolution time in ticks when the sweep fails
}

// PoolShot maps the drag gesture to cue velocity.
type PoolShot struct {
	PowerMin     float64 `yaml:"power_min"`
	PowerMax     float64 `yaml:"power_max"`
	PowerPerUnit float64 `yaml:"power_per_unit"` // power gained per unit of drag along the aim
	ShotScale    float64 `yaml:"shot_scale"`     // velocity per unit of power
}

// PlayArea returns the play area size.
func (c PoolConfig) PlayArea() (float64, float64) {
	return c.Table.Width, c.Table.Height
}
