// internal/system/physics.go
package system

import (
	"math"

	"go-price-particles/internal/component"
)

// Коэффициенты движения по категориям (на тик или в секунду, как указано).
const (
	streamDrag      = 0.995 // на тик
	streamGravity   = 10.0
	explosionDrag   = 0.92
	explosionFall   = 50.0
	explosionSpinUp = 1.02
	warningFloat    = 5.0
	defaultGravity  = 20.0
	defaultDrag     = 0.98
	minScale        = 0.1
)

// PhysicsSystem продвигает частицы на один шаг.
// Частицы не взаимодействуют ни друг с другом, ни со сценой.
type PhysicsSystem struct{}

// NewPhysicsSystem создаёт систему физики.
func NewPhysicsSystem() *PhysicsSystem {
	return &PhysicsSystem{}
}

// Step продвигает частицу на dt секунд.
// elapsedMillis — время движка, задаёт фазу колебаний предупреждений.
func (s *PhysicsSystem) Step(p *component.Particle, dt, elapsedMillis float64) {
	// Позиция
	p.Position = p.Position.Add(p.Velocity.Scale(dt))

	// Скорость по категории
	switch p.Category {
	case component.CategoryStream:
		p.Velocity.X *= streamDrag
		p.Velocity.Y += streamGravity * dt
	case component.CategoryExplosion:
		p.Velocity.X *= explosionDrag
		p.Velocity.Y += explosionFall * dt
		// Раскрутка ограничена только смертью частицы
		p.RotationSpeed *= explosionSpinUp
	case component.CategoryWarning:
		p.Velocity.Y += math.Sin(elapsedMillis*0.01) * warningFloat * dt
	default:
		p.Velocity.Y += defaultGravity * dt
		p.Velocity.X *= defaultDrag
	}

	p.Rotation += p.RotationSpeed * dt

	oscillation := 1.0
	if p.Category == component.CategoryWarning && p.ScaleSpeed > 0 {
		oscillation = 1 + 0.5*math.Sin(elapsedMillis*0.015)
	}
	p.Scale = math.Max(minScale, p.Scale+p.ScaleSpeed*dt*oscillation)

	Refresh(p, elapsedMillis)
}
