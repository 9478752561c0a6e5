// internal/system/projectile.go
package system

import (
	"go-shmup/internal/actor"
	"go-shmup/internal/camera"
	vec "go-shmup/pkg/utils"
)

// пули игрока убираются, пройдя эту высоту вьюпорта
const bulletCeiling = 1.1

// ProjectileSystem двигает пули обеих сторон и возвращает отработавшие в пулы.
type ProjectileSystem struct {
	pools    *actor.PoolManager
	viewport camera.Viewport
	own      []*actor.PlayerBullet
	hostile  []*actor.EnemyBullet
}

func NewProjectileSystem(pools *actor.PoolManager, viewport camera.Viewport) *ProjectileSystem {
	return &ProjectileSystem{pools: pools, viewport: viewport}
}

func (s *ProjectileSystem) Phase() Phase { return PhaseMove }

func (s *ProjectileSystem) Update(dt float64) {
	s.own = s.pools.ActivePlayerBullets(s.own[:0])
	for _, b := range s.own {
		expired := b.Advance(dt)
		if expired || s.viewport.WorldToViewport(b.Position).Y > bulletCeiling {
			s.pools.ReleasePlayerBullet(b)
		}
	}

	s.hostile = s.pools.ActiveEnemyBullets(s.hostile[:0])
	for _, b := range s.hostile {
		expired := b.Advance(dt)
		if expired || camera.OutOfPlayField(s.viewport, b.Position) {
			s.pools.ReleaseEnemyBullet(b)
		}
	}
}

// ClearEnemyBullets возвращает в пул все вражеские пули на экране.
func (s *ProjectileSystem) ClearEnemyBullets() int {
	s.hostile = s.pools.ActiveEnemyBullets(s.hostile[:0])
	n := 0
	for _, b := range s.hostile {
		if s.pools.ReleaseEnemyBullet(b) {
			n++
		}
	}
	return n
}

// FireEnemyBullet выпускает вражескую пулю в pos по направлению dir.
func FireEnemyBullet(pools *actor.PoolManager, pos, dir vec.Vec2) bool {
	b, ok := pools.AcquireEnemyBullet(pos)
	if !ok {
		return false
	}
	b.Aim(dir)
	return true
}
