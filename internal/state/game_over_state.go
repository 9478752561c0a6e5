package state

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-shmup/internal/config"
	"go-shmup/internal/ui"
)

// GameOverState показывает итоговый счёт поверх замершего поля.
type GameOverState struct {
	sm *StateMachine
}

func NewGameOverState(sm *StateMachine) *GameOverState {
	return &GameOverState{sm: sm}
}

func (s *GameOverState) Enter() {}

func (s *GameOverState) Update(deltaTime float64) {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		s.sm.game.StartNewGame()
		s.sm.SetState(NewPlayState(s.sm))
		return
	case inpututil.IsKeyJustPressed(ebiten.KeyM):
		s.sm.SetState(NewMenuState(s.sm))
		return
	}
	s.sm.game.Update(deltaTime)
}

func (s *GameOverState) Draw(screen *ebiten.Image) {
	g := s.sm.game
	s.sm.view.DrawPlayField(screen, g)
	s.sm.view.DrawOverlay(screen)
	ui.DrawCentered(screen, s.sm.view.Face, config.ScreenHeight/2-30,
		"GAME OVER",
		"",
		fmt.Sprintf("SCORE %d   WAVE %d", g.Score(), g.LastWave()),
		"",
		"SPACE - play again   M - menu")
}

func (s *GameOverState) Exit() {}
