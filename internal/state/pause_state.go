// internal/state/pause_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-shmup/internal/config"
	"go-shmup/internal/ui"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState рисует замороженную игру под затемнением. Таймеры планировщика
// стоят, пока сессия не вернётся в Playing.
type PauseState struct {
	sm            *StateMachine
	previousState State
}

func NewPauseState(sm *StateMachine, prevState State) *PauseState {
	return &PauseState{sm: sm, previousState: prevState}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(deltaTime float64) {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		s.sm.game.Resume()
		s.sm.SetState(s.previousState)
	case inpututil.IsKeyJustPressed(ebiten.KeyM):
		s.sm.SetState(NewMenuState(s.sm))
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	if s.previousState != nil {
		s.previousState.Draw(screen)
	}
	s.sm.view.DrawOverlay(screen)
	ui.DrawCentered(screen, s.sm.view.Face, config.ScreenHeight/2-20,
		"PAUSED",
		"",
		"ESC - resume   M - menu")
}

func (s *PauseState) Exit() {}
