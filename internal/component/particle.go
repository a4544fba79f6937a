// internal/component/particle.go
package component

import (
	"fmt"
	"strings"

	"go-price-particles/internal/types"
)

// Vec2 — двумерный вектор (позиция или скорость).
type Vec2 struct {
	X, Y float64
}

// Add возвращает сумму векторов.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Scale умножает вектор на скаляр.
func (v Vec2) Scale(k float64) Vec2 {
	return Vec2{X: v.X * k, Y: v.Y * k}
}

// Category — поведенческий профиль частицы: физика, форма и цвет.
type Category uint8

const (
	CategoryStandard Category = iota
	CategoryBurst
	CategoryStream
	CategoryExplosion
	CategoryWarning
)

func (c Category) String() string {
	switch c {
	case CategoryStandard:
		return "standard"
	case CategoryBurst:
		return "burst"
	case CategoryStream:
		return "stream"
	case CategoryExplosion:
		return "explosion"
	case CategoryWarning:
		return "warning"
	}
	return fmt.Sprintf("category(%d)", uint8(c))
}

// EmissionMode — настроенный режим эмиссии.
// Mixed порождает частицы категории Standard со случайной формой.
type EmissionMode uint8

const (
	ModeMixed EmissionMode = iota
	ModeBurst
	ModeStream
	ModeExplosion
)

// Modes перечисляет режимы в порядке переключения.
var Modes = []EmissionMode{ModeMixed, ModeBurst, ModeStream, ModeExplosion}

func (m EmissionMode) String() string {
	switch m {
	case ModeMixed:
		return "mixed"
	case ModeBurst:
		return "burst"
	case ModeStream:
		return "stream"
	case ModeExplosion:
		return "explosion"
	}
	return fmt.Sprintf("mode(%d)", uint8(m))
}

// Next возвращает следующий режим по кругу.
func (m EmissionMode) Next() EmissionMode {
	return Modes[(int(m)+1)%len(Modes)]
}

// ParseEmissionMode разбирает имя режима (регистр не важен).
// Пустая строка означает режим по умолчанию.
func ParseEmissionMode(s string) (EmissionMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "mixed":
		return ModeMixed, nil
	case "burst":
		return ModeBurst, nil
	case "stream":
		return ModeStream, nil
	case "explosion":
		return ModeExplosion, nil
	}
	return ModeMixed, fmt.Errorf("unknown emission mode %q", s)
}

// Particle — короткоживущая визуальная частица.
type Particle struct {
	ID       types.ParticleID
	Position Vec2
	Velocity Vec2

	Life    float64 // убывает от 1 до 0
	MaxLife float64 // время жизни в секундах

	Rotation      float64 // градусы
	RotationSpeed float64 // градусы в секунду
	Scale         float64
	ScaleSpeed    float64
	Opacity       float64

	Category   Category
	Magnitude  float64
	IsPositive bool

	Look Appearance
}
