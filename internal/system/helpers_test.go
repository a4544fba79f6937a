// internal/system/helpers_test.go
package system

import (
	"go-price-particles/internal/component"
	"go-price-particles/internal/entity"
)

// fixedRandom всегда возвращает одни и те же значения.
type fixedRandom struct {
	f float64
	n int
}

func (r fixedRandom) Intn(n int) int { return r.n % n }
func (r fixedRandom) Float64() float64 { return r.f }

var viewport = component.Vec2{X: 800, Y: 600}

func collect(s *entity.Store) []component.Particle {
	out := make([]component.Particle, 0, s.Len())
	s.Each(func(p *component.Particle) { out = append(out, *p) })
	return out
}

func countCategory(ps []component.Particle, c component.Category) int {
	n := 0
	for _, p := range ps {
		if p.Category == c {
			n++
		}
	}
	return n
}
