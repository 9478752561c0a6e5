// internal/system/combat.go
package system

import (
	"go-shmup/internal/actor"
	"go-shmup/internal/config"
	"go-shmup/internal/event"

	"go.uber.org/zap"
)

// PlayerHealth это часть игры, которой боевая система сообщает о попаданиях в игрока.
type PlayerHealth interface {
	DamagePlayer()
}

// CombatSystem обрабатывает попадания между пулями, врагами, боссом и игроком.
type CombatSystem struct {
	pools      *actor.PoolManager
	player     *actor.Player
	health     PlayerHealth
	bosses     BossSource
	dispatcher *event.Dispatcher
	shield     float64
	logger     *zap.Logger

	enemies []*actor.Enemy
	own     []*actor.PlayerBullet
	hostile []*actor.EnemyBullet
}

func NewCombatSystem(pools *actor.PoolManager, player *actor.Player, health PlayerHealth, bosses BossSource,
	dispatcher *event.Dispatcher, shield float64, logger *zap.Logger) *CombatSystem {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CombatSystem{
		pools:      pools,
		player:     player,
		health:     health,
		bosses:     bosses,
		dispatcher: dispatcher,
		shield:     shield,
		logger:     logger.Named("combat"),
	}
}

func (s *CombatSystem) Phase() Phase { return PhaseCollide }

func (s *CombatSystem) Update(dt float64) {
	s.playerBulletHits()
	s.hitsOnPlayer()
}

func (s *CombatSystem) playerBulletHits() {
	var boss *actor.Boss
	if s.bosses != nil {
		boss = s.bosses.Boss()
	}

	s.own = s.pools.ActivePlayerBullets(s.own[:0])
	s.enemies = s.pools.ActiveEnemies(s.enemies[:0])
	for _, b := range s.own {
		if boss != nil && boss.Active() && overlaps(b.Position, b.Radius, boss.Position, boss.Radius) {
			boss.Flash.Remaining = config.DamageFlashDuration
			boss.TakeDamage(b.Damage)
			s.pools.ReleasePlayerBullet(b)
			continue
		}
		for _, e := range s.enemies {
			if !e.Active() || !overlaps(b.Position, b.Radius, e.Position, e.Radius) {
				continue
			}
			if e.TakeDamage(b.Damage) {
				s.KillEnemy(e)
			} else {
				e.Flash.Remaining = config.DamageFlashDuration
			}
			s.pools.ReleasePlayerBullet(b)
			break
		}
	}
}

func (s *CombatSystem) hitsOnPlayer() {
	if s.player == nil || !s.player.Alive() {
		return
	}
	p := s.player

	s.hostile = s.pools.ActiveEnemyBullets(s.hostile[:0])
	for _, b := range s.hostile {
		if overlaps(b.Position, b.Radius, p.Position, p.Radius) {
			s.pools.ReleaseEnemyBullet(b)
			s.hitPlayer()
		}
	}

	s.enemies = s.pools.ActiveEnemies(s.enemies[:0])
	for _, e := range s.enemies {
		if overlaps(e.Position, e.Radius, p.Position, p.Radius) {
			// таран уничтожает врага без очков
			s.pools.ReleaseEnemy(e)
			s.hitPlayer()
		}
	}
}

func (s *CombatSystem) hitPlayer() {
	if !s.player.Hit(s.shield) {
		return
	}
	s.logger.Debug("player hit")
	if s.health != nil {
		s.health.DamagePlayer()
	}
}

// KillEnemy убирает уничтоженного врага и объявляет об убийстве.
func (s *CombatSystem) KillEnemy(e *actor.Enemy) {
	pos, score := e.Position, e.ScoreValue()
	if !s.pools.ReleaseEnemy(e) {
		return
	}
	if s.dispatcher != nil {
		s.dispatcher.Dispatch(event.Event{Type: event.EnemyKilled, Data: event.Kill{Position: pos, Score: score}})
	}
}
