// internal/system/visual_effect.go
package system

import "go-shmup/internal/actor"

// VisualEffectSystem управляет визуальными эффектами, такими как вспышки урона.
type VisualEffectSystem struct {
	pools  *actor.PoolManager
	bosses BossSource
	buf    []*actor.Enemy
}

// NewVisualEffectSystem создает новую систему визуальных эффектов.
func NewVisualEffectSystem(pools *actor.PoolManager, bosses BossSource) *VisualEffectSystem {
	return &VisualEffectSystem{pools: pools, bosses: bosses}
}

func (s *VisualEffectSystem) Phase() Phase { return PhaseCleanup }

// Update обновляет таймеры вспышек урона.
func (s *VisualEffectSystem) Update(deltaTime float64) {
	s.buf = s.pools.ActiveEnemies(s.buf[:0])
	for _, e := range s.buf {
		e.Flash.Tick(deltaTime)
	}
	if s.bosses == nil {
		return
	}
	if b := s.bosses.Boss(); b != nil {
		b.Flash.Tick(deltaTime)
	}
}
