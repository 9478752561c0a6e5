// internal/component/player.go
package component

// PlayerStateComponent хранит счёт игрока и его ресурсы в текущей сессии.
type PlayerStateComponent struct {
	Score    int
	Lives    int
	Bombs    int
	NextBomb int // Порог счёта, на котором выдаётся следующая бомба
	NextLife int // Порог счёта, на котором выдаётся следующая жизнь
}
