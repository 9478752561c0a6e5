// internal/actor/hud_icon.go
package actor

import "go-shmup/internal/pool"

// IconKind: что показывает иконка HUD
type IconKind int

const (
	IconLife IconKind = iota
	IconBomb
)

// HUDIcon это значок жизни или бомбы из пула. Position задаётся в пикселях экрана.
type HUDIcon struct {
	pool.Base
	Kind IconKind
	Slot int
}

func NewHUDIcon() *HUDIcon { return &HUDIcon{} }

func (h *HUDIcon) OnAcquire() {}

func (h *HUDIcon) OnRelease() {
	h.Kind = IconLife
	h.Slot = 0
}
