// internal/state/menu_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-shmup/internal/component"
	"go-shmup/internal/config"
	"go-shmup/internal/ui"
)

// MenuState: главное меню. Звёзды продолжают лететь на фоне.
type MenuState struct {
	sm *StateMachine
}

func NewMenuState(sm *StateMachine) *MenuState {
	return &MenuState{sm: sm}
}

func (m *MenuState) Enter() {
	if m.sm.game.State() != component.Menu {
		m.sm.game.ReturnToMenu()
	}
}

func (m *MenuState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		m.sm.game.StartNewGame()
		m.sm.SetState(NewPlayState(m.sm))
		return
	}
	m.sm.game.Update(deltaTime)
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	m.sm.view.World.Draw(screen, m.sm.game)
	ui.DrawCentered(screen, m.sm.view.Face, config.ScreenHeight/3,
		"S H M U P",
		"",
		"SPACE - start",
		"ARROWS - move   Z - fire   X - bomb",
		"ESC - pause")
}

func (m *MenuState) Exit() {}
