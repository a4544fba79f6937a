// internal/system/emission.go
package system

import (
	"math"

	"go-price-particles/internal/component"
	"go-price-particles/internal/config"
	"go-price-particles/internal/entity"
	"go-price-particles/internal/signal"
	"go-price-particles/internal/utils"
)

// EmissionSettings — параметры, читаемые при каждой эмиссии.
type EmissionSettings struct {
	Intensity    float64
	EmissionRate float64
	BaseLifetime float64
	Mode         component.EmissionMode
	MaxBase      int // потолок базового числа частиц
}

// DefaultEmissionSettings возвращает параметры по умолчанию.
func DefaultEmissionSettings() EmissionSettings {
	return EmissionSettings{
		Intensity:    config.DefaultIntensity,
		EmissionRate: config.DefaultEmissionRate,
		BaseLifetime: config.DefaultBaseLifetime,
		Mode:         component.ModeMixed,
		MaxBase:      config.MaxBaseEmission,
	}
}

// EmissionReport описывает одну эмиссию.
type EmissionReport struct {
	Mode       component.EmissionMode
	Magnitude  float64
	IsPositive bool
	BaseCount  int // рассчитанное базовое число до множителя режима
	Spawned    int // частиц основного канала
	Warnings   int
}

// Total возвращает общее число созданных частиц.
func (r EmissionReport) Total() int {
	return r.Spawned + r.Warnings
}

// EmissionSystem создаёт частицы в ответ на сигнал.
type EmissionSystem struct {
	store      *entity.Store
	appearance *AppearanceSystem
	rng        utils.Random
	onSpawn    func(p *component.Particle)
}

// NewEmissionSystem создаёт систему эмиссии.
// onSpawn вызывается для каждой новой частицы сразу после вставки.
func NewEmissionSystem(store *entity.Store, rng utils.Random, onSpawn func(p *component.Particle)) *EmissionSystem {
	return &EmissionSystem{
		store:      store,
		appearance: NewAppearanceSystem(rng),
		rng:        rng,
		onSpawn:    onSpawn,
	}
}

// BaseCount возвращает min(maxBase, floor(magnitude*15*intensity*rate)).
func BaseCount(magnitude, intensity, rate float64, maxBase int) int {
	v := math.Floor(magnitude * config.EmissionPerChange * intensity * rate)
	if math.IsNaN(v) || v <= 0 {
		return 0
	}
	if v >= float64(maxBase) {
		return maxBase
	}
	return int(v)
}

// Emit создаёт частицы для сигнала; viewport — размер окна (X — ширина, Y — высота).
func (s *EmissionSystem) Emit(sig signal.Signal, cfg EmissionSettings, viewport component.Vec2) EmissionReport {
	count := BaseCount(sig.Magnitude, cfg.Intensity, cfg.EmissionRate, cfg.MaxBase)
	report := EmissionReport{
		Mode:       cfg.Mode,
		Magnitude:  sig.Magnitude,
		IsPositive: sig.IsPositive,
		BaseCount:  count,
	}

	switch cfg.Mode {
	case component.ModeBurst:
		report.Spawned = s.emitBurst(sig, cfg, viewport, count)
	case component.ModeStream:
		report.Spawned = s.emitStream(sig, cfg, viewport, count/3)
	case component.ModeExplosion:
		report.Spawned = s.emitExplosion(sig, cfg, viewport, count*2)
	default:
		report.Spawned = s.emitMixed(sig, cfg, viewport, count)
	}

	if sig.Magnitude > config.WarningThreshold {
		report.Warnings = s.emitWarnings(sig, cfg, viewport)
	}
	return report
}

func (s *EmissionSystem) emitBurst(sig signal.Signal, cfg EmissionSettings, vp component.Vec2, count int) int {
	center := vp.Scale(0.5)
	speed := config.BurstBaseSpeed + sig.Magnitude*config.BurstSpeedFactor
	for i := 0; i < count; i++ {
		angle := 2 * math.Pi * float64(i) / float64(count)
		vel := component.Vec2{X: math.Cos(angle) * speed, Y: math.Sin(angle) * speed}
		s.spawn(component.CategoryBurst, sig, cfg, center, vel)
	}
	return count
}

func (s *EmissionSystem) emitStream(sig signal.Signal, cfg EmissionSettings, vp component.Vec2, count int) int {
	speed := config.StreamBaseSpeed + sig.Magnitude*config.StreamSpeedFactor
	y, vy := 0.0, speed
	if sig.IsPositive {
		// Рост поднимается от нижнего края
		y, vy = vp.Y, -speed
	}
	for i := 0; i < count; i++ {
		pos := component.Vec2{X: s.rng.Float64() * vp.X, Y: y}
		vel := component.Vec2{X: utils.Spread(s.rng, config.StreamJitter), Y: vy}
		s.spawn(component.CategoryStream, sig, cfg, pos, vel)
	}
	return count
}

func (s *EmissionSystem) emitExplosion(sig signal.Signal, cfg EmissionSettings, vp component.Vec2, count int) int {
	center := vp.Scale(0.5)
	for i := 0; i < count; i++ {
		pos := component.Vec2{
			X: center.X + utils.Spread(s.rng, config.ExplosionJitter),
			Y: center.Y + utils.Spread(s.rng, config.ExplosionJitter),
		}
		angle := s.rng.Float64() * 2 * math.Pi
		speed := config.ExplosionBaseSpeed + s.rng.Float64()*sig.Magnitude*config.ExplosionSpeedRand
		vel := component.Vec2{X: math.Cos(angle) * speed, Y: math.Sin(angle) * speed}
		s.spawn(component.CategoryExplosion, sig, cfg, pos, vel)
	}
	return count
}

func (s *EmissionSystem) emitMixed(sig signal.Signal, cfg EmissionSettings, vp component.Vec2, count int) int {
	for i := 0; i < count; i++ {
		pos := component.Vec2{X: s.rng.Float64() * vp.X, Y: s.rng.Float64() * vp.Y}
		vel := component.Vec2{
			X: utils.Spread(s.rng, config.MixedVelocity),
			Y: utils.Spread(s.rng, config.MixedVelocity),
		}
		s.spawn(component.CategoryStandard, sig, cfg, pos, vel)
	}
	return count
}

// emitWarnings добавляет индикаторы резкого движения независимо от режима.
func (s *EmissionSystem) emitWarnings(sig signal.Signal, cfg EmissionSettings, vp component.Vec2) int {
	for i := 0; i < config.WarningCount; i++ {
		pos := component.Vec2{X: s.rng.Float64() * vp.X, Y: s.rng.Float64() * vp.Y}
		vel := component.Vec2{
			X: utils.Spread(s.rng, config.WarningDrift),
			Y: utils.Spread(s.rng, config.WarningDrift),
		}
		s.spawn(component.CategoryWarning, sig, cfg, pos, vel)
	}
	return config.WarningCount
}

func (s *EmissionSystem) spawn(c component.Category, sig signal.Signal, cfg EmissionSettings, pos, vel component.Vec2) {
	p := component.Particle{
		Position:      pos,
		Velocity:      vel,
		Life:          1,
		MaxLife:       cfg.BaseLifetime + sig.Magnitude/10,
		Rotation:      s.rng.Float64() * 360,
		RotationSpeed: utils.Spread(s.rng, config.MaxRotationSpeed),
		Scale:         1,
		ScaleSpeed:    -0.3 - sig.Magnitude*0.05,
		Category:      c,
		Magnitude:     sig.Magnitude,
		IsPositive:    sig.IsPositive,
	}
	if c == component.CategoryWarning {
		p.MaxLife = 2*cfg.BaseLifetime + sig.Magnitude/10
		p.ScaleSpeed = config.WarningScaleSpeed
	}
	s.appearance.Resolve(&p)
	s.store.Add(p)
	if s.onSpawn != nil {
		s.onSpawn(s.store.At(s.store.Len() - 1))
	}
}
