// internal/actor/player.go
package actor

import (
	"go-shmup/internal/camera"
	"go-shmup/internal/component"
	"go-shmup/internal/config"
	vec "go-shmup/pkg/utils"
)

// Player это корабль игрока, в него целятся пикирующие враги.
type Player struct {
	Position vec.Vec2
	Radius   float64

	alive        bool
	invulnerable float64
	gun          component.Cooldown
}

func NewPlayer(pos vec.Vec2) *Player {
	return &Player{Position: pos, Radius: config.PlayerRadius, alive: true}
}

// PlayerPosition отдаёт точку прицеливания; ok == false, пока игрок мёртв.
func (p *Player) PlayerPosition() (vec.Vec2, bool) {
	return p.Position, p.alive
}

func (p *Player) Alive() bool { return p.alive }

func (p *Player) SetAlive(alive bool) { p.alive = alive }

// Respawn возвращает игрока в pos со свежим щитом.
func (p *Player) Respawn(pos vec.Vec2, shield float64) {
	p.Position = pos
	p.alive = true
	p.invulnerable = shield
	p.gun = component.Cooldown{}
}

func (p *Player) Invulnerable() bool { return p.invulnerable > 0 }

// Hit сообщает, прошло ли попадание; игрок под щитом его игнорирует.
func (p *Player) Hit(shield float64) bool {
	if !p.alive || p.invulnerable > 0 {
		return false
	}
	p.invulnerable = shield
	return true
}

// Move ведёт игрока по dir в пределах видимого экрана.
func (p *Player) Move(dir vec.Vec2, speed, dt float64, vp camera.Viewport) {
	if !p.alive {
		return
	}
	next := p.Position.Add(dir.Normalized().Scale(speed * dt))
	v := vp.WorldToViewport(next)
	v.X = clamp01(v.X)
	v.Y = clamp01(v.Y)
	p.Position = vp.ViewportToWorld(v)
}

// Update тикает щит и пушку.
func (p *Player) Update(dt float64) {
	if p.invulnerable > 0 {
		p.invulnerable -= dt
	}
	p.gun.Tick(dt)
}

// TryFire сообщает, готова ли пушка, и перезаряжает её на interval секунд.
func (p *Player) TryFire(interval float64) bool {
	if !p.alive || p.gun.Remaining > 0 {
		return false
	}
	p.gun.Remaining = interval
	return true
}

func clamp01(v float64) float64 {
	return vec.Clamp(v, 0, 1)
}
