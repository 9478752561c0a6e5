// internal/state/play_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-shmup/internal/component"
	vec "go-shmup/pkg/utils"
)

// Убеждаемся, что PlayState соответствует интерфейсу State
var _ State = (*PlayState)(nil)

// PlayState: основной игровой экран: читает ввод и двигает сессию.
type PlayState struct {
	sm *StateMachine
}

func NewPlayState(sm *StateMachine) *PlayState {
	return &PlayState{sm: sm}
}

func (s *PlayState) Enter() {
	s.sm.game.Resume()
}

func (s *PlayState) Update(deltaTime float64) {
	g := s.sm.game
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.Pause()
		s.sm.SetState(NewPauseState(s.sm, s))
		return
	}

	g.SetInput(readMove(), ebiten.IsKeyPressed(ebiten.KeyZ), inpututil.IsKeyJustPressed(ebiten.KeyX))
	g.Update(deltaTime)
	s.sm.view.Banner.Update(deltaTime)

	if g.State() == component.GameOver {
		s.sm.SetState(NewGameOverState(s.sm))
	}
}

// readMove собирает направление движения со стрелок.
func readMove() vec.Vec2 {
	var dir vec.Vec2
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		dir.X--
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		dir.X++
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		dir.Y++
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		dir.Y--
	}
	return dir
}

func (s *PlayState) Draw(screen *ebiten.Image) {
	s.sm.view.DrawPlayField(screen, s.sm.game)
}

func (s *PlayState) Exit() {}
