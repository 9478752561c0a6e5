// internal/system/weapons.go
package system

import (
	"math"

	"go-shmup/internal/actor"
	"go-shmup/internal/movement"
	vec "go-shmup/pkg/utils"
)

// залпы босса покрывают эту дугу под ним
const bossSpread = math.Pi / 3

// BossSource отдаёт босса текущей волны, если он есть.
type BossSource interface {
	Boss() *actor.Boss
}

// WeaponSystem тикает таймеры выстрелов врагов и двигает босса, стреляя его залпами.
type WeaponSystem struct {
	pools  *actor.PoolManager
	player movement.PlayerLocator
	bosses BossSource
	shots  int // размер залпа босса
	buf    []*actor.Enemy
}

func NewWeaponSystem(pools *actor.PoolManager, player movement.PlayerLocator, bosses BossSource, volley int) *WeaponSystem {
	return &WeaponSystem{pools: pools, player: player, bosses: bosses, shots: volley}
}

func (s *WeaponSystem) Phase() Phase { return PhaseMove }

func (s *WeaponSystem) Update(dt float64) {
	s.buf = s.pools.ActiveEnemies(s.buf[:0])
	for _, e := range s.buf {
		if e.ReadyToFire(dt) {
			FireEnemyBullet(s.pools, e.Position, s.aimFrom(e.Position))
		}
	}

	if s.bosses == nil {
		return
	}
	b := s.bosses.Boss()
	if b == nil || !b.Active() {
		return
	}
	if b.Update(dt) {
		for _, dir := range fan(s.aimFrom(b.Position), s.shots, bossSpread) {
			FireEnemyBullet(s.pools, b.Position, dir)
		}
	}
}

// aimFrom целится в игрока или прямо вниз, если игрока нет.
func (s *WeaponSystem) aimFrom(pos vec.Vec2) vec.Vec2 {
	if s.player != nil {
		if target, ok := s.player.PlayerPosition(); ok {
			if dir := target.Sub(pos).Normalized(); dir != (vec.Vec2{}) {
				return dir
			}
		}
	}
	return vec.V(0, -1)
}
