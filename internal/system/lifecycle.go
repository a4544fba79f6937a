// internal/system/lifecycle.go
package system

import (
	"go-price-particles/internal/component"
	"go-price-particles/internal/config"
	"go-price-particles/internal/entity"
)

// RetireReason — причина удаления частицы.
type RetireReason uint8

const (
	RetireExpired RetireReason = iota
	RetireOutOfBounds
	RetireCleared
)

func (r RetireReason) String() string {
	switch r {
	case RetireExpired:
		return "expired"
	case RetireOutOfBounds:
		return "out_of_bounds"
	case RetireCleared:
		return "cleared"
	}
	return "unknown"
}

// RetireFunc вызывается для каждой удаляемой частицы до её удаления из хранилища.
type RetireFunc func(p *component.Particle, reason RetireReason)

// LifecycleSystem старит частицы и убирает умершие и улетевшие за край.
type LifecycleSystem struct {
	store    *entity.Store
	margin   float64
	width    float64
	height   float64
	onRetire RetireFunc
}

// NewLifecycleSystem создаёт систему жизненного цикла.
func NewLifecycleSystem(store *entity.Store, margin float64, onRetire RetireFunc) *LifecycleSystem {
	return &LifecycleSystem{
		store:    store,
		margin:   margin,
		width:    config.ScreenWidth,
		height:   config.ScreenHeight,
		onRetire: onRetire,
	}
}

// SetViewport задаёт границы области отсечения.
func (s *LifecycleSystem) SetViewport(width, height float64) {
	s.width, s.height = width, height
}

// SetMargin задаёт запас за краями окна.
func (s *LifecycleSystem) SetMargin(margin float64) {
	s.margin = margin
}

// Update обрабатывает каждую частицу, живую на момент вызова, ровно один раз.
// integrate (если не nil) вызывается перед старением частицы.
func (s *LifecycleSystem) Update(dt float64, integrate func(p *component.Particle)) {
	// Обход с конца: перестановка при удалении затрагивает только уже обработанные
	for i := s.store.Len() - 1; i >= 0; i-- {
		p := s.store.At(i)
		if integrate != nil {
			integrate(p)
		}
		if s.Expire(p, dt) {
			s.retire(i, RetireExpired)
			continue
		}
		if s.OutOfBounds(p) {
			s.retire(i, RetireOutOfBounds)
		}
	}
}

// Expire уменьшает остаток жизни и сообщает, умерла ли частица.
func (s *LifecycleSystem) Expire(p *component.Particle, dt float64) bool {
	p.Life -= dt / p.MaxLife
	return p.Life <= config.LifeEpsilon
}

// OutOfBounds сообщает, вышла ли частица за запас от краёв окна.
func (s *LifecycleSystem) OutOfBounds(p *component.Particle) bool {
	x, y := p.Position.X, p.Position.Y
	return x < -s.margin || x > s.width+s.margin || y < -s.margin || y > s.height+s.margin
}

// Clear немедленно удаляет все частицы.
func (s *LifecycleSystem) Clear() int {
	if s.onRetire != nil {
		s.store.Each(func(p *component.Particle) {
			s.onRetire(p, RetireCleared)
		})
	}
	return len(s.store.Clear())
}

func (s *LifecycleSystem) retire(i int, reason RetireReason) {
	if s.onRetire != nil {
		s.onRetire(s.store.At(i), reason)
	}
	s.store.RemoveAt(i)
}
