// internal/system/physics_test.go
package system

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"go-price-particles/internal/component"
)

func particle(c component.Category) component.Particle {
	return component.Particle{
		Velocity:      component.Vec2{X: 10, Y: 0},
		Life:          1,
		MaxLife:       3,
		RotationSpeed: 100,
		Scale:         1,
		ScaleSpeed:    -0.5,
		Category:      c,
		Magnitude:     1,
	}
}

func TestStepDefaultGravityAndDrag(t *testing.T) {
	s := NewPhysicsSystem()
	p := particle(component.CategoryStandard)
	s.Step(&p, 0.5, 0)

	assert.InDelta(t, 5, p.Position.X, 1e-12)
	assert.InDelta(t, 0, p.Position.Y, 1e-12)
	assert.InDelta(t, 9.8, p.Velocity.X, 1e-12)
	assert.InDelta(t, 10, p.Velocity.Y, 1e-12)
	assert.InDelta(t, 50, p.Rotation, 1e-12)
	assert.InDelta(t, 0.75, p.Scale, 1e-12)
	assert.InDelta(t, 0.9, p.Opacity, 1e-12)
}

func TestStepBurstUsesDefaultPhysics(t *testing.T) {
	s := NewPhysicsSystem()
	a, b := particle(component.CategoryBurst), particle(component.CategoryStandard)
	s.Step(&a, 0.1, 0)
	s.Step(&b, 0.1, 0)
	assert.Equal(t, b.Position, a.Position)
	assert.Equal(t, b.Velocity, a.Velocity)
}

func TestStepStream(t *testing.T) {
	s := NewPhysicsSystem()
	p := particle(component.CategoryStream)
	p.Velocity.Y = -100
	s.Step(&p, 0.5, 0)

	assert.InDelta(t, 9.95, p.Velocity.X, 1e-12)
	assert.InDelta(t, -95, p.Velocity.Y, 1e-12)
	assert.InDelta(t, -50, p.Position.Y, 1e-12)
}

func TestStepExplosionSpinsUp(t *testing.T) {
	s := NewPhysicsSystem()
	p := particle(component.CategoryExplosion)
	s.Step(&p, 0.5, 0)

	assert.InDelta(t, 9.2, p.Velocity.X, 1e-12)
	assert.InDelta(t, 25, p.Velocity.Y, 1e-12)
	assert.InDelta(t, 102, p.RotationSpeed, 1e-12)
	// Поворот считается по скорости после раскрутки
	assert.InDelta(t, 51, p.Rotation, 1e-12)
}

func TestStepWarningFloatsAndPulses(t *testing.T) {
	s := NewPhysicsSystem()
	p := particle(component.CategoryWarning)
	p.ScaleSpeed = 0.1

	// sin(0) = 0: ни всплытия, ни колебания масштаба
	s.Step(&p, 1, 0)
	assert.InDelta(t, 0, p.Velocity.Y, 1e-12)
	assert.InDelta(t, 10, p.Velocity.X, 1e-12)
	assert.InDelta(t, 1.1, p.Scale, 1e-12)
	assert.InDelta(t, 0.9*0.7, p.Opacity, 1e-12)

	q := particle(component.CategoryWarning)
	q.ScaleSpeed = 0.1
	ms := math.Pi / 2 / 0.01
	s.Step(&q, 1, ms)
	assert.InDelta(t, 5, q.Velocity.Y, 1e-9)
	osc := 1 + 0.5*math.Sin(ms*0.015)
	assert.InDelta(t, 1+0.1*osc, q.Scale, 1e-9)
}

func TestStepScaleFloor(t *testing.T) {
	s := NewPhysicsSystem()
	p := particle(component.CategoryStandard)
	p.ScaleSpeed = -10
	s.Step(&p, 1, 0)
	assert.Equal(t, 0.1, p.Scale)
}

func TestRefreshClampsOpacity(t *testing.T) {
	p := particle(component.CategoryStandard)
	p.Life = -0.2
	Refresh(&p, 0)
	assert.Equal(t, 0.0, p.Opacity)
}
