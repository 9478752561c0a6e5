// internal/event/payloads.go
package event

import (
	"go-shmup/internal/component"
	"go-shmup/pkg/utils"
)

// StateChange передаётся с GameStateChanged.
type StateChange struct {
	From, To component.GameState
}

// WaveInfo передаётся с событиями жизненного цикла волны.
type WaveInfo struct {
	Wave int
	Tier int
	Boss bool
}

// Shortage передаётся с PoolShortage.
type Shortage struct {
	Pool      string
	Requested int
	Available int
}

// Kill передаётся с EnemyKilled, BossDefeated и PowerUpDropped.
type Kill struct {
	Position utils.Vec2
	Score    int
}
