// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth       = 1200
	ScreenHeight      = 900
	MaxDeltaTime      = 0.06
	TimeStep          = 1.0 / 60.0 // логический шаг симуляции, секунды
	MaxStepsPerUpdate = 4

	DefaultIntensity    = 1.0
	DefaultEmissionRate = 1.0
	DefaultBaseLifetime = 3.0

	MaxBaseEmission   = 30   // потолок базового числа частиц за одно событие
	EmissionPerChange = 15.0 // частиц на процент изменения
	OutOfBoundsMargin = 50.0 // запас за краями окна до отсечения частицы
	LifeEpsilon       = 1e-9

	WarningThreshold  = 10.0 // процент изменения, после которого идут предупреждения
	WarningCount      = 3
	WarningDrift      = 10.0
	WarningScaleSpeed = 0.1
	GlowThreshold     = 3.0

	BurstBaseSpeed     = 80.0
	BurstSpeedFactor   = 5.0
	StreamBaseSpeed    = 120.0
	StreamSpeedFactor  = 3.0
	StreamJitter       = 15.0
	ExplosionBaseSpeed = 150.0
	ExplosionSpeedRand = 10.0
	ExplosionJitter    = 20.0
	MixedVelocity      = 50.0
	MaxRotationSpeed   = 180.0 // градусы в секунду

	StandardMaxSize = 12.0
	StandardMinSize = 2.0
	WarningMinSize  = 15.0
	MaxGlowBlur     = 20.0

	IndicatorOffsetX = 30
	IndicatorRadius  = 10.0
	HUDLineHeight    = 16
)

var (
	BackgroundColor = color.RGBA{20, 20, 30, 255}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	ActiveColor     = color.RGBA{50, 205, 50, 220}
	InactiveColor   = color.RGBA{150, 70, 70, 220}
	IndicatorStroke = color.RGBA{240, 240, 240, 255}

	WarningFill     = color.RGBA{255, 215, 0, 255}  // золотой
	WarningPositive = color.RGBA{0, 255, 0, 255}    // лайм
	WarningNegative = color.RGBA{255, 0, 0, 255}    // красный
	GlowPositive    = color.RGBA{50, 205, 50, 255}  // лайм
	GlowNegative    = color.RGBA{255, 69, 0, 255}   // оранжево-красный
	WarningStroke   = 2.0
)
