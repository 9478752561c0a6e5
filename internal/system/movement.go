// internal/system/movement.go
package system

import (
	"go-shmup/internal/actor"
	"go-shmup/internal/camera"
)

// MovementSystem ведёт живых врагов по траекториям и возвращает в пул тех,
// кто покинул поле или закончил путь. Участников строя
// возвращает планировщик волн.
type MovementSystem struct {
	pools    *actor.PoolManager
	viewport camera.Viewport
	buf      []*actor.Enemy
}

func NewMovementSystem(pools *actor.PoolManager, viewport camera.Viewport) *MovementSystem {
	return &MovementSystem{pools: pools, viewport: viewport}
}

func (s *MovementSystem) Phase() Phase { return PhaseMove }

func (s *MovementSystem) Update(dt float64) {
	s.buf = s.pools.ActiveEnemies(s.buf[:0])
	for _, e := range s.buf {
		if !e.Mover.Configured() {
			continue
		}
		e.Advance(dt)
		if e.Mover.InFormation() {
			continue
		}
		if e.Mover.Done() || camera.OutOfPlayField(s.viewport, e.Position) {
			s.pools.ReleaseEnemy(e)
		}
	}
}
