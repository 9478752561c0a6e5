// internal/actor/pools.go
package actor

import (
	"go-shmup/internal/config"
	"go-shmup/internal/pool"
	"go-shmup/internal/utils"
	vec "go-shmup/pkg/utils"

	"go.uber.org/zap"
)

// Factories создаёт новые экземпляры для каждого пула. Пустая фабрика делает
// пул непригодным, пул сообщает об этом один раз при старте.
type Factories struct {
	Enemy        func() *Enemy
	PlayerBullet func() *PlayerBullet
	EnemyBullet  func() *EnemyBullet
	Food         func() *Food
	Bomb         func() *Bomb
	HUDIcon      func() *HUDIcon
}

// DefaultFactories связывает все виды акторов с cfg. Враги берут уровень из tiers.
func DefaultFactories(cfg *config.Config, tiers TierSource, rng *utils.PRNGService) Factories {
	return Factories{
		Enemy:        func() *Enemy { return NewEnemy(cfg.Enemy, tiers, rng) },
		PlayerBullet: func() *PlayerBullet { return NewPlayerBullet(cfg.Player) },
		EnemyBullet:  func() *EnemyBullet { return NewEnemyBullet(cfg.Enemy, rng) },
		Food:         func() *Food { return NewFood(cfg.Pickups, rng) },
		Bomb:         func() *Bomb { return NewBomb(cfg.Pickups) },
		HUDIcon:      NewHUDIcon,
	}
}

// PoolManager владеет одним пулом на каждый вид акторов.
type PoolManager struct {
	enemies       *pool.Pool[*Enemy]
	playerBullets *pool.Pool[*PlayerBullet]
	enemyBullets  *pool.Pool[*EnemyBullet]
	food          *pool.Pool[*Food]
	bombs         *pool.Pool[*Bomb]
	hudIcons      *pool.Pool[*HUDIcon]
	logger        *zap.Logger
}

// NewPoolManager создаёт и прогревает все пулы.
func NewPoolManager(sizes config.PoolsConfig, f Factories, logger *zap.Logger) *PoolManager {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.Named("pool")
	m := &PoolManager{
		enemies:       pool.New(KindEnemy, factory(f.Enemy), sizes.Enemy, logger),
		playerBullets: pool.New(KindPlayerBullet, factory(f.PlayerBullet), sizes.PlayerBullet, logger),
		enemyBullets:  pool.New(KindEnemyBullet, factory(f.EnemyBullet), sizes.EnemyBullet, logger),
		food:          pool.New(KindFood, factory(f.Food), sizes.Food, logger),
		bombs:         pool.New(KindBomb, factory(f.Bomb), sizes.Bomb, logger),
		hudIcons:      pool.New(KindHUDIcon, factory(f.HUDIcon), sizes.HUDIcon, logger),
		logger:        logger,
	}
	m.logger.Info("pools ready", m.statFields()...)
	return m
}

// Имена пулов для логов и событий нехватки.
const (
	KindEnemy        = "enemy"
	KindPlayerBullet = "player_bullet"
	KindEnemyBullet  = "enemy_bullet"
	KindFood         = "food"
	KindBomb         = "bomb"
	KindHUDIcon      = "hud_icon"
)

// factory оставляет nil-конструктор nil, не оборачивая его.
func factory[T pool.Poolable](fn func() T) pool.Factory[T] {
	if fn == nil {
		return nil
	}
	return fn
}

func (m *PoolManager) AcquireEnemy(pos vec.Vec2) (*Enemy, bool) {
	return m.enemies.Acquire(pos, 0)
}

func (m *PoolManager) ReleaseEnemy(e *Enemy) bool {
	if e == nil {
		return false
	}
	return m.enemies.Release(e)
}

func (m *PoolManager) AcquirePlayerBullet(pos vec.Vec2) (*PlayerBullet, bool) {
	return m.playerBullets.Acquire(pos, 0)
}

func (m *PoolManager) ReleasePlayerBullet(b *PlayerBullet) bool {
	if b == nil {
		return false
	}
	return m.playerBullets.Release(b)
}

func (m *PoolManager) AcquireEnemyBullet(pos vec.Vec2) (*EnemyBullet, bool) {
	return m.enemyBullets.Acquire(pos, 0)
}

func (m *PoolManager) ReleaseEnemyBullet(b *EnemyBullet) bool {
	if b == nil {
		return false
	}
	return m.enemyBullets.Release(b)
}

func (m *PoolManager) AcquireFood(pos vec.Vec2) (*Food, bool) {
	return m.food.Acquire(pos, 0)
}

func (m *PoolManager) ReleaseFood(f *Food) bool {
	if f == nil {
		return false
	}
	return m.food.Release(f)
}

func (m *PoolManager) AcquireBomb(pos vec.Vec2) (*Bomb, bool) {
	return m.bombs.Acquire(pos, 0)
}

func (m *PoolManager) ReleaseBomb(b *Bomb) bool {
	if b == nil {
		return false
	}
	return m.bombs.Release(b)
}

func (m *PoolManager) AcquireHUDIcon(pos vec.Vec2) (*HUDIcon, bool) {
	return m.hudIcons.Acquire(pos, 0)
}

func (m *PoolManager) ReleaseHUDIcon(h *HUDIcon) bool {
	if h == nil {
		return false
	}
	return m.hudIcons.Release(h)
}

// AvailableEnemyCount это сколько врагов можно выдать, не расширяя пул.
func (m *PoolManager) AvailableEnemyCount() int {
	return m.enemies.FreeCount()
}

// HasEnoughEnemies сообщает, можно ли выдать n врагов без роста пула.
func (m *PoolManager) HasEnoughEnemies(n int) bool {
	return m.AvailableEnemyCount() >= n
}

// Active*-хелперы дописывают живые экземпляры в dst, чтобы переиспользовать буфер.

func (m *PoolManager) ActiveEnemies(dst []*Enemy) []*Enemy { return m.enemies.Snapshot(dst) }

func (m *PoolManager) ActivePlayerBullets(dst []*PlayerBullet) []*PlayerBullet {
	return m.playerBullets.Snapshot(dst)
}

func (m *PoolManager) ActiveEnemyBullets(dst []*EnemyBullet) []*EnemyBullet {
	return m.enemyBullets.Snapshot(dst)
}

func (m *PoolManager) ActiveFood(dst []*Food) []*Food { return m.food.Snapshot(dst) }

func (m *PoolManager) ActiveBombs(dst []*Bomb) []*Bomb { return m.bombs.Snapshot(dst) }

func (m *PoolManager) ActiveHUDIcons(dst []*HUDIcon) []*HUDIcon { return m.hudIcons.Snapshot(dst) }

// ResetAll возвращает в пулы все выданные экземпляры всех видов.
func (m *PoolManager) ResetAll() {
	released := m.enemies.ReleaseAll() +
		m.playerBullets.ReleaseAll() +
		m.enemyBullets.ReleaseAll() +
		m.food.ReleaseAll() +
		m.bombs.ReleaseAll() +
		m.hudIcons.ReleaseAll()
	m.logger.Debug("pools reset", zap.Int("released", released))
}

// Stats возвращает снимок всех пулов.
func (m *PoolManager) Stats() []pool.Stats {
	return []pool.Stats{
		m.enemies.Stats(),
		m.playerBullets.Stats(),
		m.enemyBullets.Stats(),
		m.food.Stats(),
		m.bombs.Stats(),
		m.hudIcons.Stats(),
	}
}

func (m *PoolManager) statFields() []zap.Field {
	stats := m.Stats()
	fields := make([]zap.Field, 0, len(stats))
	for _, s := range stats {
		fields = append(fields, s.Field())
	}
	return fields
}

// LogStats пишет текущую загрузку пулов на уровне debug.
func (m *PoolManager) LogStats() {
	m.logger.Debug("pool stats", m.statFields()...)
}
