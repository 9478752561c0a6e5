// internal/actor/bullet.go
package actor

import (
	"go-shmup/internal/config"
	"go-shmup/internal/pool"
	"go-shmup/internal/utils"
	vec "go-shmup/pkg/utils"
)

// PlayerBullet летит вверх, пока не попадёт во что-нибудь или не истечёт время жизни.
type PlayerBullet struct {
	pool.Base
	Direction vec.Vec2
	Speed     float64
	Damage    int
	Radius    float64

	cfg  config.PlayerConfig
	life float64
}

func NewPlayerBullet(cfg config.PlayerConfig) *PlayerBullet {
	return &PlayerBullet{Radius: config.BulletRadius, cfg: cfg}
}

func (b *PlayerBullet) OnAcquire() {
	b.Direction = vec.V(0, 1)
	b.Speed = b.cfg.BulletSpeed
	b.Damage = b.cfg.BulletDamage
	b.life = b.cfg.BulletLifetime
}

func (b *PlayerBullet) OnRelease() {
	b.life = 0
}

// Advance двигает пулю и сообщает, истекло ли время жизни.
func (b *PlayerBullet) Advance(dt float64) bool {
	b.Position = b.Position.Add(b.Direction.Scale(b.Speed * dt))
	b.life -= dt
	return b.life <= 0
}

// EnemyBullet выпускают враги и босс. Скорость заново выбирается
// при каждой выдаче из пула.
type EnemyBullet struct {
	pool.Base
	Direction vec.Vec2
	Speed     float64
	Radius    float64

	cfg  config.EnemyConfig
	rng  *utils.PRNGService
	life float64
}

func NewEnemyBullet(cfg config.EnemyConfig, rng *utils.PRNGService) *EnemyBullet {
	if rng == nil {
		rng = utils.NewPRNGService(0)
	}
	return &EnemyBullet{Radius: config.EnemyBulletRadius, cfg: cfg, rng: rng}
}

func (b *EnemyBullet) OnAcquire() {
	b.Direction = vec.V(0, -1)
	b.Speed = b.rng.Range(b.cfg.BulletMinSpeed, b.cfg.BulletMaxSpeed)
	b.life = b.cfg.BulletLifetime
}

func (b *EnemyBullet) OnRelease() {
	b.life = 0
}

// Aim направляет пулю вдоль dir; при нулевом dir пуля падает вертикально.
func (b *EnemyBullet) Aim(dir vec.Vec2) {
	if d := dir.Normalized(); d != (vec.Vec2{}) {
		b.Direction = d
	}
	b.Orientation = utils.HeadingOf(b.Direction.X, b.Direction.Y)
}

// Advance двигает пулю и сообщает, истекло ли время жизни.
func (b *EnemyBullet) Advance(dt float64) bool {
	b.Position = b.Position.Add(b.Direction.Scale(b.Speed * dt))
	b.life -= dt
	return b.life <= 0
}
