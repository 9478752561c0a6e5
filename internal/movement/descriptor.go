// internal/movement/descriptor.go
package movement

import (
	"fmt"

	"go-shmup/pkg/utils"
)

// PlayerLocator отдаёт точку, в которую целятся враги.
// ok == false, пока целиться не в кого.
type PlayerLocator interface {
	PlayerPosition() (pos utils.Vec2, ok bool)
}

// Descriptor это движение врага на всю его жизнь. Одно из
// StraightDown, Sine, Dive, Arc или InFormation.
type Descriptor interface {
	validate() error
}

// StraightDown движется к нижнему краю экрана со скоростью Speed.
type StraightDown struct {
	Speed float64
}

// Sine снижается со скоростью Speed и качается по горизонтали:
// x(t) = x0 + Amplitude*sin(Frequency*t + Phase).
type Sine struct {
	Speed     float64
	Amplitude float64
	Frequency float64
	Phase     float64
}

// Dive снижается со скоростью ApproachSpeed Delay секунд, затем запоминает
// позицию игрока в этот момент и летит прямо к ней со скоростью DiveSpeed.
type Dive struct {
	ApproachSpeed float64
	DiveSpeed     float64
	Delay         float64
	Target        PlayerLocator
}

// Arc движется по окружности вокруг Center. Sweep ограничивает пройденный
// угол; ноль означает половину окружности.
type Arc struct {
	Center      utils.Vec2
	Radius      float64
	Clockwise   bool
	StartAngle  float64
	LinearSpeed float64
	Sweep       float64
}

// InFormation держит постоянное смещение от общего движущегося центра.
type InFormation struct {
	Offset utils.Vec2
	Center *FormationCenter
}

func (d StraightDown) validate() error {
	if d.Speed < 0 {
		return fmt.Errorf("straight down: negative speed %v", d.Speed)
	}
	return nil
}

func (d Sine) validate() error {
	if d.Speed < 0 {
		return fmt.Errorf("sine: negative speed %v", d.Speed)
	}
	return nil
}

func (d Dive) validate() error {
	if d.ApproachSpeed < 0 || d.DiveSpeed < 0 || d.Delay < 0 {
		return fmt.Errorf("dive: negative parameter (approach %v, dive %v, delay %v)", d.ApproachSpeed, d.DiveSpeed, d.Delay)
	}
	return nil
}

func (d Arc) validate() error {
	if d.Radius <= 0 {
		return fmt.Errorf("arc: radius must be positive, got %v", d.Radius)
	}
	if d.LinearSpeed < 0 {
		return fmt.Errorf("arc: negative speed %v", d.LinearSpeed)
	}
	return nil
}

func (d InFormation) validate() error {
	if d.Center == nil {
		return fmt.Errorf("formation: no center to follow")
	}
	return nil
}
