// internal/component/appearance.go
package component

import (
	"image/color"

	"go-price-particles/internal/types"
)

// ShapeKind — вид формы частицы.
type ShapeKind uint8

const (
	ShapeCircle ShapeKind = iota
	ShapeArrow
	ShapeDiamond
	ShapeHexagon
	ShapeStarBurst
	ShapeTeardrop
	ShapeShard // неправильный многоугольник
	ShapeTriangle
)

// StandardShapes — формы, из которых выбирается частица режима Mixed.
var StandardShapes = []ShapeKind{ShapeArrow, ShapeDiamond, ShapeHexagon, ShapeCircle}

// Shape — геометрия в локальных координатах (центр в нуле, масштаб 1).
// Для круга Points пуст, используется Radius.
type Shape struct {
	Kind   ShapeKind
	Points []Vec2
	Radius float64
}

// Fill — радиальный градиент от Center к Edge, опционально с обводкой.
type Fill struct {
	Center      color.RGBA
	Edge        color.RGBA
	Stroke      color.RGBA
	StrokeWidth float64 // 0 — без обводки
}

// Glow — вторичный эффект свечения.
type Glow struct {
	Color      color.RGBA
	BlurRadius float64
	Opacity    float64
	Intensity  float64 // обновляется каждый тик
}

// Appearance — внешний вид частицы, вычисляется при создании.
type Appearance struct {
	Shape Shape
	Size  float64
	Fill  Fill
	Glow  *Glow
}

// Sprite — кадр отрисовки одной частицы для хоста.
type Sprite struct {
	ID       types.ParticleID
	Category Category
	Shape    *Shape
	X, Y     float64
	Rotation float64
	Scale    float64
	Size     float64
	Opacity  float64
	Fill     Fill
	Glow     *Glow
}
