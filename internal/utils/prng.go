// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"
)

// Random — источник случайных чисел для эмиссии.
// Позволяет подменить генератор в тестах.
type Random interface {
	Intn(n int) int
	Float64() float64
}

// PRNGService — это обертка над стандартным генератором случайных чисел Go,
// которая позволяет использовать предсказуемый (seeded) рандом во всём движке.
type PRNGService struct {
	rng *rand.Rand
}

// NewPRNGService создает новый экземпляр сервиса с указанным сидом.
// Если сид равен 0, используется текущее время.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	source := rand.NewSource(seed)
	return &PRNGService{
		rng: rand.New(source),
	}
}

// Intn возвращает случайное целое число в диапазоне [0, n).
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// Float64 возвращает случайное число с плавающей точкой в диапазоне [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// RangeF возвращает случайное число в диапазоне [lo, hi).
func RangeF(r Random, lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}

// Spread возвращает случайное число в диапазоне [-d, d).
func Spread(r Random, d float64) float64 {
	return RangeF(r, -d, d)
}
