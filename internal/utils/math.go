// internal/utils/math.go
package utils

import "math"

// NormalizeAngle нормализует угол в диапазон [-π, π]
func NormalizeAngle(angle float64) float64 {
	for angle > math.Pi {
		angle -= 2 * math.Pi
	}
	for angle < -math.Pi {
		angle += 2 * math.Pi
	}
	return angle
}

// HeadingOf возвращает угол поворота спрайта, смотрящего по направлению (dx, dy).
// Спрайты нарисованы «носом вниз», поэтому 0 соответствует движению вниз.
func HeadingOf(dx, dy float64) float64 {
	if dx == 0 && dy == 0 {
		return 0
	}
	return NormalizeAngle(math.Atan2(dy, dx) + math.Pi/2)
}
