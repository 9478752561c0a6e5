// pkg/render/color.go
package render

import (
	"image/color"

	"go-shmup/internal/config"
)

// Palette holds the colors the world renderer draws with.
type Palette struct {
	Background   color.RGBA
	Star         color.RGBA
	Player       color.RGBA
	PlayerBullet color.RGBA
	Enemy        color.RGBA
	EnemyBullet  color.RGBA
	Boss         color.RGBA
	Food         color.RGBA
	Bomb         color.RGBA
	Explosion    color.RGBA
	LifeIcon     color.RGBA
	BombIcon     color.RGBA
	Flash        color.RGBA
	StrokeWidth  float32
}

// DefaultPalette takes every color from the config package.
func DefaultPalette() Palette {
	return Palette{
		Background:   config.BackgroundColor,
		Star:         config.StarColor,
		Player:       config.PlayerColor,
		PlayerBullet: config.PlayerBulletColor,
		Enemy:        config.EnemyColor,
		EnemyBullet:  config.EnemyBulletColor,
		Boss:         config.BossColor,
		Food:         config.FoodColor,
		Bomb:         config.BombColor,
		Explosion:    config.ExplosionColor,
		LifeIcon:     config.LifeIconColor,
		BombIcon:     config.BombIconColor,
		Flash:        config.FlashColor,
		StrokeWidth:  float32(config.StrokeWidth),
	}
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// FadeColor scales the alpha of c by k in [0, 1].
func FadeColor(c color.RGBA, k float64) color.RGBA {
	if k < 0 {
		k = 0
	} else if k > 1 {
		k = 1
	}
	return color.RGBA{
		R: uint8(float64(c.R) * k),
		G: uint8(float64(c.G) * k),
		B: uint8(float64(c.B) * k),
		A: uint8(float64(c.A) * k),
	}
}
