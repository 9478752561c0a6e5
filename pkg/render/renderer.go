package render

import (
	"image/color"
	"math"

	"go-shmup/internal/actor"
	"go-shmup/internal/app"
	"go-shmup/internal/camera"
	"go-shmup/internal/config"
	"go-shmup/internal/utils"
	vec "go-shmup/pkg/utils"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

type star struct {
	x, y  float32 // pixels, y before scrolling
	depth float32 // 0.3..1, nearer stars move faster and look brighter
}

// WorldRenderer draws the star field and every active actor with vector shapes.
type WorldRenderer struct {
	viewport *camera.Ortho
	palette  Palette
	width    int
	height   int
	ppu      float32 // pixels per world unit
	stars    []star

	enemies []*actor.Enemy
	own     []*actor.PlayerBullet
	hostile []*actor.EnemyBullet
	food    []*actor.Food
	bombs   []*actor.Bomb
	icons   []*actor.HUDIcon
}

func NewWorldRenderer(viewport *camera.Ortho, palette Palette, screenWidth, screenHeight int, rng *utils.PRNGService) *WorldRenderer {
	r := &WorldRenderer{
		viewport: viewport,
		palette:  palette,
		width:    screenWidth,
		height:   screenHeight,
		ppu:      float32(viewport.PixelsPerUnit(screenHeight)),
		stars:    make([]star, config.StarCount),
	}
	for i := range r.stars {
		r.stars[i] = star{
			x:     float32(rng.Range(0, float64(screenWidth))),
			y:     float32(rng.Range(0, float64(screenHeight))),
			depth: float32(rng.Range(0.3, 1)),
		}
	}
	return r
}

// Draw renders the whole play field of g.
func (r *WorldRenderer) Draw(screen *ebiten.Image, g *app.Game) {
	screen.Fill(r.palette.Background)
	r.drawStars(screen, g.BackgroundSystem.Offset(), g.BackgroundSystem.Multiplier())

	r.food = g.Pools.ActiveFood(r.food[:0])
	for _, f := range r.food {
		r.circle(screen, f.Position, f.Radius, r.palette.Food)
	}

	r.enemies = g.Pools.ActiveEnemies(r.enemies[:0])
	for _, e := range r.enemies {
		c := r.palette.Enemy
		if e.Flash.Remaining > 0 {
			c = r.palette.Flash
		}
		r.drawShip(screen, e.Position, e.Radius, e.Orientation, c)
	}

	if boss := g.Waves.Boss(); boss != nil && boss.Active() {
		c := r.palette.Boss
		if boss.Health.Max > 0 && boss.Health.Value*4 < boss.Health.Max {
			c = DarkenColor(c)
		}
		if boss.Flash.Remaining > 0 {
			c = r.palette.Flash
		}
		r.circle(screen, boss.Position, boss.Radius, c)
		r.drawBossHealth(screen, boss)
	}

	r.own = g.Pools.ActivePlayerBullets(r.own[:0])
	for _, b := range r.own {
		r.circle(screen, b.Position, b.Radius, r.palette.PlayerBullet)
	}
	r.hostile = g.Pools.ActiveEnemyBullets(r.hostile[:0])
	for _, b := range r.hostile {
		r.circle(screen, b.Position, b.Radius, r.palette.EnemyBullet)
	}

	r.bombs = g.Pools.ActiveBombs(r.bombs[:0])
	for _, b := range r.bombs {
		if b.Exploding() {
			k := b.ExplosionProgress()
			r.circle(screen, b.Position, config.BombBlastRadius*k, FadeColor(r.palette.Explosion, 1-k))
			continue
		}
		r.circle(screen, b.Position, b.Radius, r.palette.Bomb)
	}

	if p := g.Player; p.Alive() {
		// blink while invulnerable
		if !p.Invulnerable() || int(g.GameTime()*10)%2 == 0 {
			r.drawShip(screen, p.Position, p.Radius, math.Pi, r.palette.Player)
		}
	}

	r.icons = g.Pools.ActiveHUDIcons(r.icons[:0])
	for _, icon := range r.icons {
		c := r.palette.LifeIcon
		if icon.Kind == actor.IconBomb {
			c = r.palette.BombIcon
		}
		half := float32(config.HUDIconSize / 2)
		vector.DrawFilledCircle(screen, float32(icon.Position.X)+half, float32(icon.Position.Y)+half, half-1, c, true)
	}
}

// drawStars scrolls the field downward; at light speed stars stretch into streaks.
func (r *WorldRenderer) drawStars(screen *ebiten.Image, offset, multiplier float64) {
	h := float32(r.height)
	shift := float32(offset) * r.ppu
	streak := float32(multiplier-1) * 2
	for _, s := range r.stars {
		y := float32(math.Mod(float64(s.y+shift*s.depth), float64(h)))
		c := FadeColor(r.palette.Star, float64(s.depth))
		if streak > 0.5 {
			vector.StrokeLine(screen, s.x, y, s.x, y-streak*s.depth, 1, c, false)
			continue
		}
		vector.DrawFilledRect(screen, s.x, y, 1.5*s.depth+0.5, 1.5*s.depth+0.5, c, false)
	}
}

func (r *WorldRenderer) circle(screen *ebiten.Image, pos vec.Vec2, radius float64, c color.Color) {
	x, y := r.viewport.WorldToScreen(pos, r.width, r.height)
	vector.DrawFilledCircle(screen, x, y, float32(radius)*r.ppu, c, true)
}

// drawShip draws a circle with a nose line along heading; 0 points down the screen.
func (r *WorldRenderer) drawShip(screen *ebiten.Image, pos vec.Vec2, radius, heading float64, c color.Color) {
	x, y := r.viewport.WorldToScreen(pos, r.width, r.height)
	rad := float32(radius) * r.ppu
	vector.DrawFilledCircle(screen, x, y, rad, c, true)
	nx := x + float32(math.Sin(heading))*rad*1.3
	ny := y + float32(math.Cos(heading))*rad*1.3
	vector.StrokeLine(screen, x, y, nx, ny, r.palette.StrokeWidth, c, true)
}

func (r *WorldRenderer) drawBossHealth(screen *ebiten.Image, boss *actor.Boss) {
	if boss.Health.Max <= 0 {
		return
	}
	const barH = 6
	w := float32(r.width) * 0.8
	x := (float32(r.width) - w) / 2
	y := float32(config.HUDMargin + 2*config.HUDIconSpacing)
	k := float32(boss.Health.Value) / float32(boss.Health.Max)
	vector.DrawFilledRect(screen, x, y, w, barH, DarkenColor(r.palette.Boss), false)
	vector.DrawFilledRect(screen, x, y, w*k, barH, r.palette.Boss, false)
}
