// internal/utils/prng.go
package utils

import (
	"math"
	"math/rand"
	"time"
)

// PRNGService — это обертка над стандартным генератором случайных чисел Go,
// которая позволяет использовать предсказуемый (seeded) рандом во всей игре.
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
	if n <= 0 {
		return 0
	}
	return s.rng.Intn(n)
}

// Float64 возвращает случайное число с плавающей точкой в диапазоне [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// Range возвращает случайное число в диапазоне [min, max).
func (s *PRNGService) Range(min, max float64) float64 {
	if max <= min {
		return min
	}
	return min + s.rng.Float64()*(max-min)
}

// RangeInt возвращает случайное целое в диапазоне [min, max] включительно.
func (s *PRNGService) RangeInt(min, max int) int {
	if max <= min {
		return min
	}
	return min + s.rng.Intn(max-min+1)
}

// Chance возвращает true с вероятностью p.
func (s *PRNGService) Chance(p float64) bool {
	return s.rng.Float64() < p
}

// Phase возвращает случайную фазу в диапазоне [0, 2π).
func (s *PRNGService) Phase() float64 {
	return s.rng.Float64() * 2 * math.Pi
}
