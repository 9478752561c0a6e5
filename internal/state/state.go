// internal/state/state.go
package state

import (
	"go-shmup/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
)

// State — интерфейс для всех экранов
type State interface {
	Enter()
	Update(deltaTime float64)
	Draw(screen *ebiten.Image)
	Exit()
}

// StateMachine переключает экраны поверх одной игровой сессии.
type StateMachine struct {
	current State
	game    *app.Game
	view    *View
}

// NewStateMachine создаёт машину состояний без начального состояния
func NewStateMachine(game *app.Game, view *View) *StateMachine {
	return &StateMachine{game: game, view: view}
}

// SetState устанавливает новое состояние
func (sm *StateMachine) SetState(newState State) {
	if sm.current != nil {
		sm.current.Exit() // Выход из текущего состояния, если оно есть
	}
	sm.current = newState
	if sm.current != nil {
		sm.current.Enter()
	}
}

func (sm *StateMachine) Current() State { return sm.current }

func (sm *StateMachine) Update(deltaTime float64) {
	if sm.current != nil {
		sm.current.Update(deltaTime)
	}
}

func (sm *StateMachine) Draw(screen *ebiten.Image) {
	if sm.current != nil {
		sm.current.Draw(screen)
	}
}
