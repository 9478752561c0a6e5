// internal/system/pickup.go
package system

import (
	"go-shmup/internal/actor"
	"go-shmup/internal/camera"
	"go-shmup/internal/config"
	"go-shmup/internal/event"
	"go-shmup/internal/utils"
	vec "go-shmup/pkg/utils"

	"go.uber.org/zap"
)

// EnemyKiller убирает врага, уничтоженного не пулей.
type EnemyKiller interface {
	KillEnemy(e *actor.Enemy)
}

// BulletSweeper очищает вражеский огонь.
type BulletSweeper interface {
	ClearEnemyBullets() int
}

// PickupSystem роняет еду из сбитых врагов, двигает и собирает её, ведёт бомбы.
type PickupSystem struct {
	pools      *actor.PoolManager
	viewport   camera.Viewport
	player     *actor.Player
	dispatcher *event.Dispatcher
	killer     EnemyKiller
	sweeper    BulletSweeper
	cfg        config.PickupsConfig
	enemyCfg   config.EnemyConfig
	bossCfg    config.BossConfig
	rng        *utils.PRNGService
	logger     *zap.Logger

	powerUps int // улучшения, выпавшие в текущей волне

	food    []*actor.Food
	bombs   []*actor.Bomb
	enemies []*actor.Enemy
}

// PickupDeps это зависимости PickupSystem.
type PickupDeps struct {
	Pools      *actor.PoolManager
	Viewport   camera.Viewport
	Player     *actor.Player
	Dispatcher *event.Dispatcher
	Killer     EnemyKiller
	Sweeper    BulletSweeper
	Config     *config.Config
	Rng        *utils.PRNGService
	Logger     *zap.Logger
}

func NewPickupSystem(d PickupDeps) *PickupSystem {
	if d.Logger == nil {
		d.Logger = zap.NewNop()
	}
	if d.Rng == nil {
		d.Rng = utils.NewPRNGService(0)
	}
	s := &PickupSystem{
		pools:      d.Pools,
		viewport:   d.Viewport,
		player:     d.Player,
		dispatcher: d.Dispatcher,
		killer:     d.Killer,
		sweeper:    d.Sweeper,
		cfg:        d.Config.Pickups,
		enemyCfg:   d.Config.Enemy,
		bossCfg:    d.Config.Boss,
		rng:        d.Rng,
		logger:     d.Logger.Named("pickups"),
	}
	if s.dispatcher != nil {
		s.dispatcher.Subscribe(event.EnemyKilled, s)
		s.dispatcher.Subscribe(event.BossDefeated, s)
		s.dispatcher.Subscribe(event.WaveStarted, s)
	}
	return s
}

func (s *PickupSystem) Phase() Phase { return PhaseMove }

func (s *PickupSystem) OnEvent(e event.Event) {
	switch e.Type {
	case event.WaveStarted:
		s.powerUps = 0
	case event.EnemyKilled:
		kill, ok := e.Data.(event.Kill)
		if !ok {
			return
		}
		if s.rng.Chance(s.enemyCfg.FoodDropChance) {
			s.DropFood(kill.Position, 1)
		}
		if s.powerUps < s.cfg.PowerUpPerWave && s.rng.Chance(s.enemyCfg.PowerUpChance) {
			s.powerUps++
			s.dispatch(event.PowerUpDropped, kill)
		}
	case event.BossDefeated:
		kill, ok := e.Data.(event.Kill)
		if !ok {
			return
		}
		s.DropFood(kill.Position, s.rng.RangeInt(s.bossCfg.MinFood, s.bossCfg.MaxFood))
	}
}

// DropFood выбрасывает n кусков еды в pos и возвращает, сколько выдал пул.
func (s *PickupSystem) DropFood(pos vec.Vec2, n int) int {
	dropped := 0
	for i := 0; i < n; i++ {
		if _, ok := s.pools.AcquireFood(pos); !ok {
			s.logger.Warn("food pool returned nothing")
			break
		}
		dropped++
	}
	return dropped
}

// LaunchBomb отправляет бомбу из pos в середину экрана.
func (s *PickupSystem) LaunchBomb(from vec.Vec2) bool {
	b, ok := s.pools.AcquireBomb(from)
	if !ok {
		return false
	}
	b.Launch(s.viewport.ViewportToWorld(vec.V(0.5, 0.5)))
	return true
}

func (s *PickupSystem) Update(dt float64) {
	s.updateFood(dt)
	s.updateBombs(dt)
}

func (s *PickupSystem) updateFood(dt float64) {
	ground := s.viewport.ViewportToWorld(vec.V(0, s.cfg.GroundY)).Y
	s.food = s.pools.ActiveFood(s.food[:0])
	for _, f := range s.food {
		f.Advance(dt, ground)
		if s.player != nil && s.player.Alive() && overlaps(f.Position, f.Radius, s.player.Position, s.player.Radius) {
			s.pools.ReleaseFood(f)
			s.dispatch(event.FoodCollected, event.Kill{Position: f.Position, Score: s.cfg.FoodScore})
			continue
		}
		if camera.OutOfPlayField(s.viewport, f.Position) {
			s.pools.ReleaseFood(f)
		}
	}
}

func (s *PickupSystem) updateBombs(dt float64) {
	s.bombs = s.pools.ActiveBombs(s.bombs[:0])
	for _, b := range s.bombs {
		detonated, finished := b.Advance(dt)
		if detonated {
			s.detonate()
		}
		if finished {
			s.pools.ReleaseBomb(b)
		}
	}
}

// detonate поражает всех врагов на экране и стирает вражеский огонь. Босса не задевает.
func (s *PickupSystem) detonate() {
	killed := 0
	s.enemies = s.pools.ActiveEnemies(s.enemies[:0])
	for _, e := range s.enemies {
		if !e.TakeDamage(s.cfg.BombDamage) {
			continue
		}
		killed++
		if s.killer != nil {
			s.killer.KillEnemy(e)
		} else {
			s.pools.ReleaseEnemy(e)
		}
	}
	cleared := 0
	if s.sweeper != nil {
		cleared = s.sweeper.ClearEnemyBullets()
	}
	s.logger.Debug("bomb detonated", zap.Int("killed", killed), zap.Int("bullets", cleared))
	s.dispatch(event.BombDetonated, killed)
}

func (s *PickupSystem) dispatch(t event.EventType, data interface{}) {
	if s.dispatcher == nil {
		return
	}
	s.dispatcher.Dispatch(event.Event{Type: t, Data: data})
}
