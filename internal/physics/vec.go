// Package physics implements the rigid-body layer of the billiards table:
// circular bodies with damped integration, static walls, pockets and the
// pairwise collision engine. It has no rendering or input dependencies and
// never logs; anomalies are returned to the caller as diagnostics.
package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Vec2 is the 2-D vector used throughout the simulation.
type Vec2 = mgl64.Vec2

// normalizeEpsilon is the squared length below which a vector has no direction.
const normalizeEpsilon = 1e-18

// V builds a vector from components.
func V(x, y float64) Vec2 {
	return Vec2{x, y}
}

// LenSq returns the squared length of v.
func LenSq(v Vec2) float64 {
	return v.Dot(v)
}

// DistSq returns the squared distance between a and b.
func DistSq(a, b Vec2) float64 {
	return LenSq(a.Sub(b))
}

// SafeNormalize returns the unit vector along v.
// Reports false for a zero (or vanishing) vector instead of producing NaN.
func SafeNormalize(v Vec2) (Vec2, bool) {
	l2 := LenSq(v)
	if l2 < normalizeEpsilon || math.IsNaN(l2) || math.IsInf(l2, 0) {
		return Vec2{}, false
	}
	return v.Mul(1 / math.Sqrt(l2)), true
}

// Perp returns v rotated a quarter turn counter-clockwise.
func Perp(v Vec2) Vec2 {
	return Vec2{-v.Y(), v.X()}
}
