// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth     = 540
	ScreenHeight    = 960
	MaxDeltaTime    = 0.06
	WorldHalfHeight = 5.0 // Половина высоты видимого мира в игровых единицах

	PlayerRadius      = 0.35
	PlayerStartY      = 0.15 // В долях экрана
	EnemyRadius       = 0.4
	BossRadius        = 1.2
	BulletRadius      = 0.12
	EnemyBulletRadius = 0.15
	FoodRadius        = 0.2
	BombRadius        = 0.25
	BombBlastRadius   = 3.0

	HUDIconSize    = 18.0 // пиксели
	HUDIconSpacing = 22.0
	HUDMargin      = 12.0

	TextCharWidth = 7
	TextOffsetY   = 4

	DamageFlashDuration = 0.1

	BannerDuration     = 2.0
	BossBannerDuration = 3.0

	StarCount = 80
)

var (
	BackgroundColor   = color.RGBA{8, 8, 20, 255}
	StarColor         = color.RGBA{200, 200, 255, 200}
	TextLightColor    = color.RGBA{240, 240, 240, 255}
	TextDarkColor     = color.RGBA{20, 20, 30, 255}
	PlayerColor       = color.RGBA{80, 200, 255, 255}
	PlayerBulletColor = color.RGBA{255, 255, 120, 255}
	EnemyColor        = color.RGBA{220, 60, 60, 255}
	EnemyBulletColor  = color.RGBA{255, 120, 40, 255}
	BossColor         = color.RGBA{180, 50, 230, 255}
	FoodColor         = color.RGBA{50, 205, 50, 255}
	BombColor         = color.RGBA{255, 215, 0, 255}
	ExplosionColor    = color.RGBA{255, 200, 80, 120}
	LifeIconColor     = color.RGBA{80, 200, 255, 255}
	BombIconColor     = color.RGBA{255, 215, 0, 255}
	FlashColor        = color.RGBA{255, 255, 255, 255}
	OverlayColor      = color.RGBA{0, 0, 0, 160}
	StrokeWidth       = 2.0
)
