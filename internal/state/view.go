package state

import (
	"go-shmup/internal/app"
	"go-shmup/internal/config"
	"go-shmup/internal/ui"
	"go-shmup/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// View хранит всё, чем рисуют экраны.
type View struct {
	Face   font.Face
	World  *render.WorldRenderer
	Score  *ui.ScorePanel
	Banner *ui.Banner
}

func NewView(g *app.Game) *View {
	face := basicfont.Face7x13
	return &View{
		Face:   face,
		World:  render.NewWorldRenderer(g.Viewport, render.DefaultPalette(), config.ScreenWidth, config.ScreenHeight, g.Rng),
		Score:  ui.NewScorePanel(face),
		Banner: ui.NewBanner(face, g.Dispatcher),
	}
}

// DrawPlayField рисует мир, HUD и баннер волны.
func (v *View) DrawPlayField(screen *ebiten.Image, g *app.Game) {
	v.World.Draw(screen, g)
	v.Score.Draw(screen, g.Score(), g.Wave())
	v.Banner.Draw(screen)
}

// DrawOverlay затемняет экран под меню.
func (v *View) DrawOverlay(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, 0, float32(config.ScreenWidth), float32(config.ScreenHeight), config.OverlayColor, false)
}
