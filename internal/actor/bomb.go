// internal/actor/bomb.go
package actor

import (
	"go-shmup/internal/config"
	"go-shmup/internal/pool"
	vec "go-shmup/pkg/utils"
)

// Bomb летит к точке цели, взрывается там и остаётся на экране,
// пока проигрывается взрыв.
type Bomb struct {
	pool.Base
	Speed  float64
	Radius float64

	cfg       config.PickupsConfig
	target    vec.Vec2
	exploding bool
	remaining float64
}

func NewBomb(cfg config.PickupsConfig) *Bomb {
	return &Bomb{Radius: config.BombRadius, cfg: cfg}
}

func (b *Bomb) OnAcquire() {
	b.Speed = b.cfg.BombSpeed
	b.target = b.Position
	b.exploding = false
	b.remaining = 0
}

func (b *Bomb) OnRelease() {
	b.exploding = false
}

// Launch задаёт точку, в которой бомба взорвётся.
func (b *Bomb) Launch(target vec.Vec2) {
	b.target = target
}

func (b *Bomb) Exploding() bool { return b.exploding }

// ExplosionProgress растёт от 0 в момент взрыва до 1, когда взрыв закончился.
func (b *Bomb) ExplosionProgress() float64 {
	if !b.exploding || b.cfg.ExplosionTime <= 0 {
		return 0
	}
	return 1 - b.remaining/b.cfg.ExplosionTime
}

// Advance сообщает detonated на тике, когда бомба достигла цели,
// и finished, когда взрыв отыграл.
func (b *Bomb) Advance(dt float64) (detonated, finished bool) {
	if b.exploding {
		b.remaining -= dt
		return false, b.remaining <= 0
	}
	to := b.target.Sub(b.Position)
	step := b.Speed * dt
	if to.Len() > step {
		b.Position = b.Position.Add(to.Normalized().Scale(step))
		return false, false
	}
	b.Position = b.target
	b.exploding = true
	b.remaining = b.cfg.ExplosionTime
	return true, false
}
