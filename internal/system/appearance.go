// internal/system/appearance.go
package system

import (
	"image/color"
	"math"

	"go-price-particles/internal/component"
	"go-price-particles/internal/config"
	"go-price-particles/internal/utils"
)

// AppearanceSystem вычисляет форму, цвет и свечение частицы при создании.
type AppearanceSystem struct {
	rng utils.Random
}

// NewAppearanceSystem создаёт систему внешнего вида.
func NewAppearanceSystem(rng utils.Random) *AppearanceSystem {
	return &AppearanceSystem{rng: rng}
}

// Resolve полностью вычисляет внешний вид частицы.
// Категория, знак и величина частицы должны быть уже заданы.
func (s *AppearanceSystem) Resolve(p *component.Particle) {
	kind := s.shapeKind(p.Category)
	p.Look = component.Appearance{
		Shape: BuildShape(kind, p.IsPositive, s.rng),
		Size:  ParticleSize(p.Category, p.Magnitude),
		Fill:  ResolveFill(p.Category, p.IsPositive, p.Magnitude),
		Glow:  ResolveGlow(p.IsPositive, p.Magnitude),
	}
	Refresh(p, 0)
}

func (s *AppearanceSystem) shapeKind(c component.Category) component.ShapeKind {
	switch c {
	case component.CategoryBurst:
		return component.ShapeStarBurst
	case component.CategoryStream:
		return component.ShapeTeardrop
	case component.CategoryExplosion:
		return component.ShapeShard
	case component.CategoryWarning:
		return component.ShapeTriangle
	}
	return component.StandardShapes[s.rng.Intn(len(component.StandardShapes))]
}

// ParticleSize возвращает базовый размер частицы в пикселях.
func ParticleSize(c component.Category, magnitude float64) float64 {
	if c == component.CategoryWarning {
		return config.WarningMinSize + magnitude
	}
	return math.Min(config.StandardMaxSize, config.StandardMinSize+magnitude/2)
}

// BuildShape строит геометрию формы единичного радиуса.
// Ось Y направлена вниз, как на экране.
func BuildShape(kind component.ShapeKind, positive bool, rng utils.Random) component.Shape {
	shape := component.Shape{Kind: kind, Radius: 1}
	switch kind {
	case component.ShapeCircle:
		return shape
	case component.ShapeStarBurst:
		shape.Points = starPoints(8, 1, 0.4)
	case component.ShapeTeardrop:
		shape.Points = orient(teardropPoints(), positive)
	case component.ShapeShard:
		shape.Points = shardPoints(rng)
	case component.ShapeTriangle:
		shape.Points = regularPolygon(3, -math.Pi/2, 1)
	case component.ShapeArrow:
		shape.Points = orient([]component.Vec2{
			{X: 0, Y: -1}, {X: 0.8, Y: -0.1}, {X: 0.3, Y: -0.1}, {X: 0.3, Y: 1},
			{X: -0.3, Y: 1}, {X: -0.3, Y: -0.1}, {X: -0.8, Y: -0.1},
		}, positive)
	case component.ShapeDiamond:
		shape.Points = []component.Vec2{{X: 0, Y: -1}, {X: 0.7, Y: 0}, {X: 0, Y: 1}, {X: -0.7, Y: 0}}
	case component.ShapeHexagon:
		shape.Points = regularPolygon(6, math.Pi/6, 1)
	}
	return shape
}

func regularPolygon(n int, phase, radius float64) []component.Vec2 {
	pts := make([]component.Vec2, n)
	for i := 0; i < n; i++ {
		angle := 2*math.Pi/float64(n)*float64(i) + phase
		pts[i] = component.Vec2{X: radius * math.Cos(angle), Y: radius * math.Sin(angle)}
	}
	return pts
}

func starPoints(rays int, outer, inner float64) []component.Vec2 {
	pts := make([]component.Vec2, rays*2)
	step := math.Pi / float64(rays)
	for i := range pts {
		r := outer
		if i%2 == 1 {
			r = inner
		}
		angle := step*float64(i) - math.Pi/2
		pts[i] = component.Vec2{X: r * math.Cos(angle), Y: r * math.Sin(angle)}
	}
	return pts
}

// teardropPoints — капля остриём вверх.
func teardropPoints() []component.Vec2 {
	const (
		segments = 10
		radius   = 0.7
		centerY  = 0.3
	)
	pts := make([]component.Vec2, 0, segments+2)
	pts = append(pts, component.Vec2{X: 0, Y: -1.3})
	from, to := -math.Pi/6, 7*math.Pi/6
	for i := 0; i <= segments; i++ {
		a := from + (to-from)*float64(i)/segments
		pts = append(pts, component.Vec2{X: radius * math.Cos(a), Y: centerY + radius*math.Sin(a)})
	}
	return pts
}

// shardPoints — неправильный многоугольник из 5–7 вершин.
func shardPoints(rng utils.Random) []component.Vec2 {
	n := 5 + rng.Intn(3)
	pts := make([]component.Vec2, n)
	slice := 2 * math.Pi / float64(n)
	for i := range pts {
		angle := slice*float64(i) + utils.Spread(rng, slice*0.4)
		r := utils.RangeF(rng, 0.7, 1.3)
		pts[i] = component.Vec2{X: r * math.Cos(angle), Y: r * math.Sin(angle)}
	}
	return pts
}

// orient переворачивает форму остриём вниз для падения цены.
func orient(pts []component.Vec2, positive bool) []component.Vec2 {
	if positive {
		return pts
	}
	for i := range pts {
		pts[i].Y = -pts[i].Y
	}
	return pts
}

// channel — яркость основного канала цвета.
func channel(magnitude float64) uint8 {
	return uint8(math.Min(255, 150+magnitude*8))
}

// BaseColor возвращает непрозрачный цвет категории и знака.
// Рост — зелёно-голубая гамма, падение — красно-оранжевая.
func BaseColor(c component.Category, positive bool, magnitude float64) color.RGBA {
	i := channel(magnitude)
	if positive {
		switch c {
		case component.CategoryBurst:
			return color.RGBA{0, i, i, 255}
		case component.CategoryStream:
			return color.RGBA{64, i, 160, 255}
		case component.CategoryExplosion:
			return color.RGBA{160, i, 0, 255}
		}
		return color.RGBA{0, i, 80, 255}
	}
	switch c {
	case component.CategoryBurst:
		return color.RGBA{i, i / 2, 0, 255}
	case component.CategoryStream:
		return color.RGBA{i, 60, 120, 255}
	case component.CategoryExplosion:
		return color.RGBA{i, 80, 0, 255}
	}
	return color.RGBA{i, 40, 40, 255}
}

// ResolveFill возвращает заливку частицы.
func ResolveFill(c component.Category, positive bool, magnitude float64) component.Fill {
	if c == component.CategoryWarning {
		stroke := config.WarningNegative
		if positive {
			stroke = config.WarningPositive
		}
		return component.Fill{
			Center:      config.WarningFill,
			Edge:        config.WarningFill,
			Stroke:      stroke,
			StrokeWidth: config.WarningStroke,
		}
	}
	center := BaseColor(c, positive, magnitude)
	edge := center
	edge.A = 0
	return component.Fill{Center: center, Edge: edge}
}

// ResolveGlow возвращает свечение или nil, если изменение слишком мало.
func ResolveGlow(positive bool, magnitude float64) *component.Glow {
	if magnitude <= config.GlowThreshold {
		return nil
	}
	glowColor := config.GlowNegative
	if positive {
		glowColor = config.GlowPositive
	}
	return &component.Glow{
		Color:      glowColor,
		BlurRadius: math.Min(config.MaxGlowBlur, 5+magnitude*1.5),
		Opacity:    0.6 + math.Min(0.4, magnitude*0.05),
		Intensity:  glowIntensity(1, magnitude),
	}
}

func glowIntensity(life, magnitude float64) float64 {
	return math.Max(0.1, life*(0.5+magnitude*0.05))
}

// Refresh обновляет прозрачность и свечение частицы.
// Предупреждения пульсируют от elapsedMillis.
func Refresh(p *component.Particle, elapsedMillis float64) {
	opacity := p.Life * 0.9
	if p.Category == component.CategoryWarning {
		opacity *= 0.7 + 0.3*math.Sin(elapsedMillis*0.02)
	}
	p.Opacity = math.Max(0, opacity)
	if p.Look.Glow != nil {
		p.Look.Glow.Intensity = glowIntensity(p.Life, p.Magnitude)
	}
}
