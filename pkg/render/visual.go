// pkg/render/visual.go
package render

import (
	"go-price-particles/internal/component"
	"go-price-particles/internal/types"
	"go-price-particles/pkg/utils"
)

// CircleSegments is the rim resolution used for circles.
const CircleSegments = 20

// Visual is the host-side drawable of one particle: its rim in local coordinates.
type Visual struct {
	Rim [][2]float64
}

// NewVisual builds the drawable for a shape.
func NewVisual(shape component.Shape) *Visual {
	if shape.Kind == component.ShapeCircle || len(shape.Points) == 0 {
		rim := utils.CirclePoints(CircleSegments)
		for i := range rim {
			rim[i][0] *= shape.Radius
			rim[i][1] *= shape.Radius
		}
		return &Visual{Rim: rim}
	}
	rim := make([][2]float64, len(shape.Points))
	for i, p := range shape.Points {
		rim[i] = [2]float64{p.X, p.Y}
	}
	return &Visual{Rim: rim}
}

// Visuals tracks the drawables the engine asked for. Embed it in a renderer
// to satisfy app.Sink.
type Visuals struct {
	items map[types.ParticleID]*Visual
}

// NewVisuals creates an empty set.
func NewVisuals() Visuals {
	return Visuals{items: make(map[types.ParticleID]*Visual)}
}

// Get returns the drawable for id.
func (s *Visuals) Get(id types.ParticleID) (*Visual, bool) {
	v, ok := s.items[id]
	return v, ok
}

// Attach implements app.Sink.
func (s *Visuals) Attach(p *component.Particle) {
	s.items[p.ID] = NewVisual(p.Look.Shape)
}

// Detach implements app.Sink. It reports false for handles already dropped by Reset.
func (s *Visuals) Detach(id types.ParticleID) bool {
	if _, ok := s.items[id]; !ok {
		return false
	}
	delete(s.items, id)
	return true
}

// Reset drops every drawable on the host side, e.g. after a scene clear.
func (s *Visuals) Reset() {
	for id := range s.items {
		delete(s.items, id)
	}
}

// Len returns the number of attached drawables.
func (s *Visuals) Len() int {
	return len(s.items)
}
