// internal/actor/enemy.go
package actor

import (
	"go-shmup/internal/component"
	"go-shmup/internal/config"
	"go-shmup/internal/movement"
	"go-shmup/internal/pool"
	"go-shmup/internal/utils"
)

// TierSource отдаёт уровень сложности, по которому враги считают здоровье.
type TierSource interface {
	DifficultyTier() int
}

// Enemy это враг волны из пула. Движение задаёт Mover, который настраивает
// планировщик волн сразу после выдачи.
type Enemy struct {
	pool.Base
	Mover  movement.Mover
	Health component.Health
	Flash  component.Cooldown // вспышка после попадания
	Radius float64

	cfg   config.EnemyConfig
	tiers TierSource
	rng   *utils.PRNGService
	shoot component.Cooldown
	tier  int
}

func NewEnemy(cfg config.EnemyConfig, tiers TierSource, rng *utils.PRNGService) *Enemy {
	if rng == nil {
		rng = utils.NewPRNGService(0)
	}
	return &Enemy{Radius: config.EnemyRadius, cfg: cfg, tiers: tiers, rng: rng}
}

// OnAcquire читает текущий уровень и восстанавливает здоровье под него.
func (e *Enemy) OnAcquire() {
	e.tier = 1
	if e.tiers != nil {
		if t := e.tiers.DifficultyTier(); t > 1 {
			e.tier = t
		}
	}
	e.Health.Reset(e.cfg.BaseHP + (e.tier-1)*e.cfg.HPPerTier)
	e.Mover.Reset()
	e.shoot.Remaining = e.rng.Range(e.cfg.MinShootInterval, e.cfg.MaxShootInterval)
}

func (e *Enemy) OnRelease() {
	e.Mover.Reset()
	e.Health.Value = 0
	e.shoot = component.Cooldown{}
	e.Flash = component.Cooldown{}
}

// Tier это уровень сложности на момент последней выдачи.
func (e *Enemy) Tier() int { return e.tier }

func (e *Enemy) ScoreValue() int { return e.cfg.Score }

// TakeDamage сообщает, убило ли попадание врага.
func (e *Enemy) TakeDamage(amount int) bool {
	if !e.Active() {
		return false
	}
	return e.Health.Damage(amount)
}

// Advance продвигает врага на один тик по траектории.
func (e *Enemy) Advance(dt float64) {
	e.Position, e.Orientation = e.Mover.Step(e.Position, dt)
}

// ReadyToFire тикает таймер выстрела и перезаряжает его, когда выстрел готов.
func (e *Enemy) ReadyToFire(dt float64) bool {
	if !e.shoot.Tick(dt) {
		return false
	}
	e.shoot.Remaining = e.rng.Range(e.cfg.MinShootInterval, e.cfg.MaxShootInterval)
	return true
}
