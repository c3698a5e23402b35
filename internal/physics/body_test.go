package physics

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBodyRejectsInvalidShape(t *testing.T) {
	tests := []struct {
		name   string
		radius float64
		mass   float64
	}{
		{"zero radius", 0, 1},
		{"negative radius", -3, 1},
		{"zero mass", 8, 0},
		{"negative mass", 8, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewBody(1, KindObject, V(0, 0), tt.radius, tt.mass)
			if !errors.Is(err, ErrInvalidBody) {
				t.Errorf("NewBody() error = %v, expected ErrInvalidBody", err)
			}
		})
	}
}

func TestIntegrateWithoutForces(t *testing.T) {
	b, err := NewBody(1, KindObject, V(10, 20), 8, 1)
	require.NoError(t, err)
	b.Velocity = V(60, -30)

	b.Integrate(0.5, 0, 1e-6)

	assert.InDelta(t, 40.0, b.Position.X(), 1e-9)
	assert.InDelta(t, 5.0, b.Position.Y(), 1e-9)
	assert.InDelta(t, 60.0, b.Velocity.X(), 1e-9)
}

func TestIntegrateSumsForcesOverMass(t *testing.T) {
	b, err := NewBody(1, KindObject, V(0, 0), 8, 2)
	require.NoError(t, err)

	b.ApplyForce(V(4, 0))
	b.ApplyForce(V(0, -2))
	require.Equal(t, 2, b.PendingForces())

	b.Integrate(1, 0, 1e-6)

	assert.InDelta(t, 2.0, b.Velocity.X(), 1e-9)
	assert.InDelta(t, -1.0, b.Velocity.Y(), 1e-9)
	assert.Equal(t, 0, b.PendingForces(), "forces must be cleared after integration")
}

func TestIntegrateDampsVelocity(t *testing.T) {
	b, err := NewBody(1, KindCue, V(0, 0), 8, 1)
	require.NoError(t, err)
	b.Velocity = V(100, 0)

	b.Integrate(1.0/60, 0.02, 1e-6)

	assert.InDelta(t, 98.0, b.Velocity.X(), 1e-9)
}

func TestIntegrateComesToRest(t *testing.T) {
	b, err := NewBody(1, KindObject, V(0, 0), 8, 1)
	require.NoError(t, err)
	b.Velocity = V(50, 25)

	for i := 0; i < 5000 && b.Moving(0.01); i++ {
		b.Integrate(1.0/60, 0.02, 0.01)
	}

	if b.Moving(0.01) {
		t.Fatalf("body still moving with velocity %v", b.Velocity)
	}
	assert.Equal(t, V(0, 0), b.Velocity)
}

func TestRestThresholdBoundary(t *testing.T) {
	const eps = 0.25

	tests := []struct {
		name       string
		speed      float64
		wantMoving bool
	}{
		{"exactly epsilon is moving", 0.5, true},
		{"just below epsilon rests", 0.4999, false},
		{"above epsilon", 0.6, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := NewBody(1, KindObject, V(0, 0), 8, 1)
			require.NoError(t, err)
			b.Velocity = V(tt.speed, 0)

			if got := b.Moving(eps); got != tt.wantMoving {
				t.Errorf("Moving() = %v, expected %v", got, tt.wantMoving)
			}

			b.Integrate(1.0/60, 0, eps)
			if tt.wantMoving {
				assert.InDelta(t, tt.speed, b.Velocity.X(), 1e-12)
			} else {
				assert.Equal(t, 0.0, b.Velocity.X())
			}
		})
	}
}

func TestTeleportStopsBody(t *testing.T) {
	b, err := NewBody(1, KindCue, V(0, 0), 8, 1)
	require.NoError(t, err)
	b.Velocity = V(5, 5)
	b.ApplyForce(V(1, 1))

	b.Teleport(V(300, 200))

	assert.Equal(t, V(300, 200), b.Position)
	assert.Equal(t, V(0, 0), b.Velocity)
	assert.Equal(t, 0, b.PendingForces())
}

func TestApplyImpulse(t *testing.T) {
	b, err := NewBody(1, KindCue, V(0, 0), 8, 4)
	require.NoError(t, err)

	b.ApplyImpulse(V(8, -4))

	assert.InDelta(t, 2.0, b.Velocity.X(), 1e-12)
	assert.InDelta(t, -1.0, b.Velocity.Y(), 1e-12)
}

func TestSafeNormalize(t *testing.T) {
	if _, ok := SafeNormalize(V(0, 0)); ok {
		t.Error("SafeNormalize(0,0) should report no direction")
	}

	n, ok := SafeNormalize(V(3, 4))
	require.True(t, ok)
	assert.InDelta(t, 0.6, n.X(), 1e-12)
	assert.InDelta(t, 0.8, n.Y(), 1e-12)

	p := Perp(V(1, 0))
	assert.Equal(t, V(0, 1), p)
}
