// internal/entity/store.go
package entity

import (
	"go-price-particles/internal/component"
	"go-price-particles/internal/types"
)

// Store — живая популяция частиц.
// Порядок вставки сохраняется до первого удаления; удаление переставляет
// последнюю частицу на место удалённой.
type Store struct {
	NextID    types.ParticleID
	particles []component.Particle
}

// NewStore создаёт пустое хранилище с заданной начальной ёмкостью.
func NewStore(capacity int) *Store {
	if capacity < 0 {
		capacity = 0
	}
	return &Store{
		NextID:    types.NoParticle + 1,
		particles: make([]component.Particle, 0, capacity),
	}
}

// Add вставляет частицу, присваивает ей ID и возвращает его.
func (s *Store) Add(p component.Particle) types.ParticleID {
	p.ID = s.NextID
	s.NextID++
	s.particles = append(s.particles, p)
	return p.ID
}

// Len возвращает число живых частиц.
func (s *Store) Len() int {
	return len(s.particles)
}

// At возвращает указатель на частицу по индексу.
// Указатель действителен до следующего Add или RemoveAt.
func (s *Store) At(i int) *component.Particle {
	return &s.particles[i]
}

// RemoveAt удаляет частицу по индексу перестановкой последней на её место.
// При обходе с конца все ещё не посещённые частицы остаются на своих местах.
func (s *Store) RemoveAt(i int) component.Particle {
	last := len(s.particles) - 1
	removed := s.particles[i]
	s.particles[i] = s.particles[last]
	s.particles[last] = component.Particle{}
	s.particles = s.particles[:last]
	return removed
}

// Each вызывает fn для каждой частицы.
func (s *Store) Each(fn func(p *component.Particle)) {
	for i := range s.particles {
		fn(&s.particles[i])
	}
}

// Clear удаляет все частицы и возвращает их ID.
// Память слайса переиспользуется.
func (s *Store) Clear() []types.ParticleID {
	ids := make([]types.ParticleID, len(s.particles))
	for i := range s.particles {
		ids[i] = s.particles[i].ID
		s.particles[i] = component.Particle{}
	}
	s.particles = s.particles[:0]
	return ids
}
