// internal/system/background.go
package system

import (
	"go-shmup/internal/component"
	"go-shmup/internal/config"
	"go-shmup/internal/event"
	vec "go-shmup/pkg/utils"
)

// BackgroundSystem прокручивает звёзды и плавно входит в световую скорость и выходит из неё.
type BackgroundSystem struct {
	cfg    config.BackgroundConfig
	offset float64
	from   float64 // множитель в начале текущего перехода
	to     float64
	t      float64 // прогресс перехода 0..1
}

func NewBackgroundSystem(cfg config.BackgroundConfig, dispatcher *event.Dispatcher) *BackgroundSystem {
	s := &BackgroundSystem{cfg: cfg, from: 1, to: 1, t: 1}
	if dispatcher != nil {
		dispatcher.Subscribe(event.LightSpeedStarted, s)
		dispatcher.Subscribe(event.LightSpeedEnded, s)
		dispatcher.Subscribe(event.GameStateChanged, s)
	}
	return s
}

func (s *BackgroundSystem) Phase() Phase { return PhaseMove }

func (s *BackgroundSystem) OnEvent(e event.Event) {
	switch e.Type {
	case event.LightSpeedStarted:
		s.transitionTo(s.cfg.LightSpeedMultiplier)
	case event.LightSpeedEnded:
		s.transitionTo(1)
	case event.GameStateChanged:
		if change, ok := e.Data.(event.StateChange); ok && change.To == component.Menu {
			s.from, s.to, s.t = 1, 1, 1
		}
	}
}

func (s *BackgroundSystem) transitionTo(multiplier float64) {
	s.from = s.Multiplier()
	s.to = multiplier
	s.t = 0
	if s.cfg.TransitionTime <= 0 {
		s.t = 1
	}
}

// Multiplier это текущий множитель скорости прокрутки.
func (s *BackgroundSystem) Multiplier() float64 {
	return vec.Lerp(s.from, s.to, vec.SmoothStep(s.t))
}

func (s *BackgroundSystem) Update(dt float64) {
	if s.t < 1 {
		s.t += dt / s.cfg.TransitionTime
		if s.t > 1 {
			s.t = 1
		}
	}
	s.offset += s.cfg.ScrollSpeed * s.Multiplier() * dt
}

// Offset это на сколько прокрутились звёзды, в единицах мира.
func (s *BackgroundSystem) Offset() float64 { return s.offset }
