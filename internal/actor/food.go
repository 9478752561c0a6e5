// internal/actor/food.go
package actor

import (
	"math"

	"go-shmup/internal/config"
	"go-shmup/internal/pool"
	"go-shmup/internal/utils"
	vec "go-shmup/pkg/utils"
)

// FoodState: стадия движения еды
type FoodState int

const (
	FoodBouncing FoodState = iota // Вылетела и прыгает по «земле»
	FoodFalling                   // Успокоилась и медленно уходит вниз
)

// Food вылетает из сбитых врагов, отскакивает от линии земли
// и затем уплывает за нижний край экрана.
type Food struct {
	pool.Base
	Velocity vec.Vec2
	Radius   float64

	cfg   config.PickupsConfig
	rng   *utils.PRNGService
	state FoodState
}

func NewFood(cfg config.PickupsConfig, rng *utils.PRNGService) *Food {
	if rng == nil {
		rng = utils.NewPRNGService(0)
	}
	return &Food{Radius: config.FoodRadius, cfg: cfg, rng: rng}
}

// OnAcquire подбрасывает еду вверх под случайным углом от вертикали.
func (f *Food) OnAcquire() {
	angle := f.rng.Range(-f.cfg.EjectAngle, f.cfg.EjectAngle) * math.Pi / 180
	force := f.rng.Range(f.cfg.EjectForceMin, f.cfg.EjectForceMax)
	f.Velocity = vec.V(math.Sin(angle), math.Cos(angle)).Scale(force)
	f.state = FoodBouncing
}

func (f *Food) OnRelease() {
	f.Velocity = vec.Vec2{}
}

func (f *Food) State() FoodState { return f.state }

// Advance интегрирует один тик движения относительно линии земли groundY.
func (f *Food) Advance(dt, groundY float64) {
	if f.state == FoodFalling {
		f.Position.Y -= f.cfg.FallSpeed * dt
		return
	}

	f.Velocity.Y += f.cfg.Gravity * dt
	f.Position = f.Position.Add(f.Velocity.Scale(dt))
	if f.Position.Y > groundY || f.Velocity.Y >= 0 {
		return
	}

	f.Position.Y = groundY
	f.Velocity.Y = -f.Velocity.Y * f.cfg.Bounce
	f.Velocity.X *= f.cfg.Bounce
	if f.Velocity.Y < f.cfg.SettleSpeed {
		f.state = FoodFalling
		f.Velocity = vec.V(0, -f.cfg.FallSpeed)
	}
}
