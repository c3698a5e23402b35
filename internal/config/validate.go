package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid pool config")

// Validate checks the configuration for values the simulation cannot run with.
func (c PoolConfig) Validate() error {
	t, b, p, s := c.Table, c.Balls, c.Physics, c.Shot

	switch {
	case t.Width <= 0 || t.Height <= 0:
		return fmt.Errorf("%w: play area %vx%v must be positive", ErrInvalidConfig, t.Width, t.Height)
	case t.Margin < 0 || t.Cushion <= 0:
		return fmt.Errorf("%w: margin %v and cushion %v", ErrInvalidConfig, t.Margin, t.Cushion)
	case 2*(t.Margin+t.Cushion) >= t.Width || 2*(t.Margin+t.Cushion) >= t.Height:
		return fmt.Errorf("%w: cushions leave no room for the bed", ErrInvalidConfig)
	case b.Radius <= 0:
		return fmt.Errorf("%w: ball radius %v must be positive", ErrInvalidConfig, b.Radius)
	case b.Mass <= 0 || b.CueMass <= 0:
		return fmt.Errorf("%w: ball mass %v and cue mass %v must be positive", ErrInvalidConfig, b.Mass, b.CueMass)
	case b.RackGap < 0:
		return fmt.Errorf("%w: rack gap %v is negative", ErrInvalidConfig, b.RackGap)
	case t.PocketRadius <= b.Radius:
		return fmt.Errorf("%w: pocket radius %v must exceed ball radius %v", ErrInvalidConfig, t.PocketRadius, b.Radius)
	case p.Friction < 0 || p.RestEpsilon < 0:
		return fmt.Errorf("%w: friction %v and rest epsilon %v must not be negative", ErrInvalidConfig, p.Friction, p.RestEpsilon)
	case p.SweepStep <= 0 || p.SweepFloor >= 1:
		return fmt.Errorf("%w: sweep step %v, floor %v", ErrInvalidConfig, p.SweepStep, p.SweepFloor)
	case s.PowerMin < 0 || s.PowerMin > s.PowerMax:
		return fmt.Errorf("%w: power range [%v, %v]", ErrInvalidConfig, s.PowerMin, s.PowerMax)
	case s.PowerPerUnit <= 0 || s.ShotScale <= 0:
		return fmt.Errorf("%w: power per unit %v and shot scale %v must be positive", ErrInvalidConfig, s.PowerPerUnit, s.ShotScale)
	}
	return nil
}
