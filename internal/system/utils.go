// internal/system/utils.go
package system

import (
	"math"

	vec "go-shmup/pkg/utils"
)

// overlaps проверяет пересечение двух окружностей.
func overlaps(a vec.Vec2, ra float64, b vec.Vec2, rb float64) bool {
	d := a.Sub(b)
	r := ra + rb
	return d.X*d.X+d.Y*d.Y <= r*r
}

// fan возвращает n направлений, равномерно распределённых в секторе spread
// (радианы) вокруг направления around.
func fan(around vec.Vec2, n int, spread float64) []vec.Vec2 {
	if n <= 0 {
		return nil
	}
	base := math.Atan2(around.Y, around.X)
	if n == 1 {
		return []vec.Vec2{vec.FromAngle(base)}
	}
	dirs := make([]vec.Vec2, 0, n)
	step := spread / float64(n-1)
	for i := 0; i < n; i++ {
		dirs = append(dirs, vec.FromAngle(base-spread/2+step*float64(i)))
	}
	return dirs
}
