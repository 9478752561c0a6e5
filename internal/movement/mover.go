// internal/movement/mover.go
package movement

import (
	"fmt"
	"math"

	"go-shmup/internal/utils"
	vec "go-shmup/pkg/utils"
)

// Mover ведёт одного врага по его Descriptor. Нулевое значение неподвижно.
type Mover struct {
	desc    Descriptor
	elapsed float64
	origin  vec.Vec2

	// пике
	dived   bool
	diveDir vec.Vec2

	// дуга
	angle float64
	swept float64

	done bool
}

// Configure назначает движение на текущую жизнь. Некорректные дескрипторы
// отклоняются, mover остаётся неподвижным.
func (m *Mover) Configure(d Descriptor, spawn vec.Vec2) error {
	m.Reset()
	if d == nil {
		return fmt.Errorf("no motion descriptor")
	}
	if err := d.validate(); err != nil {
		return err
	}
	m.desc = d
	m.origin = spawn
	if a, ok := d.(Arc); ok {
		m.angle = a.StartAngle
	}
	return nil
}

// Reset очищает mover перед следующей жизнью.
func (m *Mover) Reset() {
	*m = Mover{}
}

func (m *Mover) Descriptor() Descriptor { return m.desc }

// Configured сообщает, назначен ли дескриптор.
func (m *Mover) Configured() bool { return m.desc != nil }

// InFormation сообщает, что жизненным циклом владеет строй,
// а не проверка границ поля.
func (m *Mover) InFormation() bool {
	_, ok := m.desc.(InFormation)
	return ok
}

// Dived сообщает, зафиксировал ли Dive направление.
func (m *Mover) Dived() bool { return m.dived }

// DiveDirection это зафиксированное единичное направление пике, до пике ноль.
func (m *Mover) DiveDirection() vec.Vec2 { return m.diveDir }

// Done сообщает, что траектория закончилась, как у Arc после прохода.
func (m *Mover) Done() bool { return m.done }

// Step сдвигает актора из pos на dt секунд и возвращает новую позицию
// вместе с углом поворота спрайта.
func (m *Mover) Step(pos vec.Vec2, dt float64) (vec.Vec2, float64) {
	m.elapsed += dt
	switch d := m.desc.(type) {
	case StraightDown:
		return vec.V(pos.X, pos.Y-d.Speed*dt), 0

	case Sine:
		x := m.origin.X + d.Amplitude*math.Sin(d.Frequency*m.elapsed+d.Phase)
		y := pos.Y - d.Speed*dt
		return vec.V(x, y), utils.HeadingOf(x-pos.X, y-pos.Y)

	case Dive:
		if !m.dived && m.elapsed >= d.Delay && d.Target != nil {
			if target, ok := d.Target.PlayerPosition(); ok {
				m.dived = true
				m.diveDir = target.Sub(pos).Normalized()
				if m.diveDir == (vec.Vec2{}) {
					m.diveDir = vec.V(0, -1)
				}
			}
		}
		if m.dived {
			return pos.Add(m.diveDir.Scale(d.DiveSpeed * dt)), utils.HeadingOf(m.diveDir.X, m.diveDir.Y)
		}
		return vec.V(pos.X, pos.Y-d.ApproachSpeed*dt), 0

	case Arc:
		sign := 1.0
		if d.Clockwise {
			sign = -1
		}
		delta := d.LinearSpeed / d.Radius * dt
		m.angle = utils.NormalizeAngle(m.angle + sign*delta)
		m.swept += delta
		sweep := d.Sweep
		if sweep <= 0 {
			sweep = math.Pi
		}
		if m.swept >= sweep {
			m.done = true
		}
		next := d.Center.Add(vec.FromAngle(m.angle).Scale(d.Radius))
		return next, utils.HeadingOf(next.X-pos.X, next.Y-pos.Y)

	case InFormation:
		return d.Center.Position().Add(d.Offset), 0
	}
	return pos, 0
}
