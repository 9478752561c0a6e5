package component

// GameState: состояние игровой сессии (владелец app.Game)
type GameState int

const (
	Menu GameState = iota
	Playing
	Paused
	GameOver
)

func (s GameState) String() string {
	switch s {
	case Menu:
		return "Menu"
	case Playing:
		return "Playing"
	case Paused:
		return "Paused"
	case GameOver:
		return "GameOver"
	}
	return "Unknown"
}
