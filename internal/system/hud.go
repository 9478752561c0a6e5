// internal/system/hud.go
package system

import (
	"go-shmup/internal/actor"
	"go-shmup/internal/config"
	vec "go-shmup/pkg/utils"
)

// Resources отдаёт счётчики, показанные значками HUD.
type Resources interface {
	Lives() int
	Bombs() int
}

// HUDSystem держит по одному значку из пула на каждую жизнь и бомбу.
type HUDSystem struct {
	pools     *actor.PoolManager
	resources Resources
	lives     int
	bombs     int
	synced    bool
	buf       []*actor.HUDIcon
}

func NewHUDSystem(pools *actor.PoolManager, resources Resources) *HUDSystem {
	return &HUDSystem{pools: pools, resources: resources}
}

func (s *HUDSystem) Phase() Phase { return PhaseCleanup }

func (s *HUDSystem) Update(dt float64) {
	lives, bombs := s.resources.Lives(), s.resources.Bombs()
	if s.synced && lives == s.lives && bombs == s.bombs {
		return
	}
	s.Resync(lives, bombs)
}

// Resync перестраивает все значки под заданные количества.
func (s *HUDSystem) Resync(lives, bombs int) {
	s.buf = s.pools.ActiveHUDIcons(s.buf[:0])
	for _, icon := range s.buf {
		s.pools.ReleaseHUDIcon(icon)
	}
	s.place(actor.IconLife, lives, config.HUDMargin)
	s.place(actor.IconBomb, bombs, config.HUDMargin+config.HUDIconSpacing)
	s.lives, s.bombs, s.synced = lives, bombs, true
}

func (s *HUDSystem) place(kind actor.IconKind, n int, y float64) {
	for i := 0; i < n; i++ {
		x := float64(config.ScreenWidth) - config.HUDMargin - config.HUDIconSize - float64(i)*config.HUDIconSpacing
		icon, ok := s.pools.AcquireHUDIcon(vec.V(x, y))
		if !ok {
			return
		}
		icon.Kind = kind
		icon.Slot = i
	}
}
