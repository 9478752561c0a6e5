// internal/movement/formation.go
package movement

import (
	"math"

	"go-shmup/pkg/utils"
)

// FormationCenter это общая опорная точка строя. Планировщик волн двигает её
// до шага участников, поэтому в пределах тика все читают
// одну и ту же позицию.
type FormationCenter struct {
	position utils.Vec2
	velocity utils.Vec2
	sway     float64 // амплитуда качания по горизонтали
	swayFreq float64
	origin   utils.Vec2
	elapsed  float64
}

// NewFormationCenter создаёт центр в origin, дрейфующий со скоростью velocity
// и качающийся вбок на sway единиц мира.
func NewFormationCenter(origin, velocity utils.Vec2, sway, swayFreq float64) *FormationCenter {
	return &FormationCenter{position: origin, origin: origin, velocity: velocity, sway: sway, swayFreq: swayFreq}
}

// Advance сдвигает центр на один тик.
func (c *FormationCenter) Advance(dt float64) {
	c.elapsed += dt
	c.position = c.origin.Add(c.velocity.Scale(c.elapsed))
	if c.sway != 0 {
		c.position.X += c.sway * math.Sin(c.swayFreq*c.elapsed)
	}
}

// Velocity это дрейф центра без качания.
func (c *FormationCenter) Velocity() utils.Vec2 { return c.velocity }

// Position это текущий транслируемый центр.
func (c *FormationCenter) Position() utils.Vec2 { return c.position }
