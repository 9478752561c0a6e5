// internal/actor/boss.go
package actor

import (
	"go-shmup/internal/camera"
	"go-shmup/internal/component"
	"go-shmup/internal/config"
	"go-shmup/internal/utils"
	vec "go-shmup/pkg/utils"
)

// BossPhase: фаза поведения босса
type BossPhase int

const (
	BossEntrance BossPhase = iota // Выход сверху на позицию
	BossCombat                    // Блуждание по верхней части экрана
)

// Boss создаётся на каждую босс-волну и не хранится в пуле. О его гибели
// сообщается ровно один раз через колбэк, переданный в NewBoss.
type Boss struct {
	Position vec.Vec2
	Health   component.Health
	Flash    component.Cooldown
	Radius   float64

	cfg        config.BossConfig
	tier       int
	vp         camera.Viewport
	rng        *utils.PRNGService
	onDefeated func(*Boss)

	phase  BossPhase
	target vec.Vec2
	dir    vec.Vec2
	turn   component.Cooldown
	fire   component.Cooldown
	active bool
}

// NewBoss ставит босса над верхним краем, здоровье масштабируется по уровню.
func NewBoss(cfg config.BossConfig, tier int, vp camera.Viewport, rng *utils.PRNGService, onDefeated func(*Boss)) *Boss {
	if tier < 1 {
		tier = 1
	}
	if rng == nil {
		rng = utils.NewPRNGService(0)
	}
	b := &Boss{
		Radius:     config.BossRadius,
		cfg:        cfg,
		tier:       tier,
		vp:         vp,
		rng:        rng,
		onDefeated: onDefeated,
		phase:      BossEntrance,
		active:     true,
	}
	b.Health.Reset(cfg.BaseHP + (tier-1)*cfg.HPPerTier)
	b.Position = vp.ViewportToWorld(vec.V(0.5, 1.2))
	b.target = vp.ViewportToWorld(vec.V(0.5, 0.7))
	b.fire.Remaining = cfg.FireInterval
	return b
}

func (b *Boss) Active() bool { return b.active }

func (b *Boss) Tier() int { return b.tier }

func (b *Boss) Phase() BossPhase { return b.phase }

func (b *Boss) ScoreValue() int { return b.cfg.Score }

// TakeDamage применяет попадание. Колбэк гибели срабатывает только на смертельном.
func (b *Boss) TakeDamage(amount int) {
	if !b.active {
		return
	}
	if b.Health.Damage(amount) {
		b.active = false
		if b.onDefeated != nil {
			b.onDefeated(b)
		}
	}
}

// Deactivate убирает босса без сообщения о гибели (отмена забега).
func (b *Boss) Deactivate() {
	b.active = false
}

// Update двигает босса и сообщает, пора ли дать залп.
func (b *Boss) Update(dt float64) bool {
	if !b.active {
		return false
	}
	switch b.phase {
	case BossEntrance:
		step := b.cfg.EntranceSpeed * dt
		to := b.target.Sub(b.Position)
		if to.Len() <= step {
			b.Position = b.target
			b.phase = BossCombat
			b.chooseDirection()
			return false
		}
		b.Position = b.Position.Add(to.Normalized().Scale(step))
		return false

	case BossCombat:
		if b.turn.Tick(dt) {
			b.chooseDirection()
		}
		b.Position = b.Position.Add(b.dir.Scale(b.cfg.CombatSpeed * dt))
		b.keepInArena()
		if b.fire.Tick(dt) {
			b.fire.Remaining = b.cfg.FireInterval
			return true
		}
	}
	return false
}

func (b *Boss) chooseDirection() {
	b.dir = vec.FromAngle(b.rng.Phase())
	b.turn.Remaining = b.cfg.DirectionInterval + b.rng.Range(-b.cfg.DirectionJitter, b.cfg.DirectionJitter)
}

// keepInArena держит босса в его полосе экрана и разворачивает
// внутрь при касании края.
func (b *Boss) keepInArena() {
	low := b.vp.ViewportToWorld(vec.V(0, 0.3))
	high := b.vp.ViewportToWorld(vec.V(1, 0.9))
	minX, maxX := low.X+b.cfg.ScreenPadding, high.X-b.cfg.ScreenPadding

	hit := false
	if b.Position.X < minX {
		b.Position.X = minX
		hit = true
	} else if b.Position.X > maxX {
		b.Position.X = maxX
		hit = true
	}
	if b.Position.Y < low.Y {
		b.Position.Y = low.Y
		hit = true
	} else if b.Position.Y > high.Y {
		b.Position.Y = high.Y
		hit = true
	}
	if !hit {
		return
	}
	b.chooseDirection()
	if b.Position.X <= minX && b.dir.X < 0 || b.Position.X >= maxX && b.dir.X > 0 {
		b.dir.X = -b.dir.X
	}
	if b.Position.Y <= low.Y && b.dir.Y < 0 || b.Position.Y >= high.Y && b.dir.Y > 0 {
		b.dir.Y = -b.dir.Y
	}
}
