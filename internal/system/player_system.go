// internal/system/player_system.go
package system

import (
	"go-shmup/internal/actor"
	"go-shmup/internal/camera"
	"go-shmup/internal/config"
	vec "go-shmup/pkg/utils"
)

// BombStock тратит бомбу из запаса игрока и возвращает её, если запуск не удался.
type BombStock interface {
	UseBomb() bool
	RefundBomb()
}

// BombLauncher вводит запущенную бомбу в игру.
type BombLauncher interface {
	LaunchBomb(from vec.Vec2) bool
}

// PlayerSystem применяет к кораблю ввод текущего тика.
type PlayerSystem struct {
	player   *actor.Player
	pools    *actor.PoolManager
	viewport camera.Viewport
	stock    BombStock
	launcher BombLauncher
	cfg      config.PlayerConfig

	move vec.Vec2
	fire bool
	bomb bool
}

func NewPlayerSystem(player *actor.Player, pools *actor.PoolManager, viewport camera.Viewport,
	stock BombStock, launcher BombLauncher, cfg config.PlayerConfig) *PlayerSystem {
	return &PlayerSystem{player: player, pools: pools, viewport: viewport, stock: stock, launcher: launcher, cfg: cfg}
}

func (s *PlayerSystem) Phase() Phase { return PhaseMove }

// SetInput запоминает, что игрок попросил на этом тике.
func (s *PlayerSystem) SetInput(move vec.Vec2, fire, bomb bool) {
	s.move, s.fire, s.bomb = move, fire, bomb
}

func (s *PlayerSystem) Update(dt float64) {
	p := s.player
	p.Update(dt)
	if !p.Alive() {
		s.SetInput(vec.Vec2{}, false, false)
		return
	}
	p.Move(s.move, s.cfg.Speed, dt, s.viewport)

	if s.fire && p.TryFire(s.cfg.FireInterval) {
		s.pools.AcquirePlayerBullet(p.Position.Add(vec.V(0, p.Radius)))
	}
	if s.bomb && s.stock != nil && s.launcher != nil && s.stock.UseBomb() {
		if !s.launcher.LaunchBomb(p.Position) {
			s.stock.RefundBomb()
		}
	}
	s.bomb = false
}
