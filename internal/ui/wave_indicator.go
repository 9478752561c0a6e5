package ui

import (
	"image/color"
	"strings"

	"go-shmup/internal/config"
	"go-shmup/internal/system"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// WaveIndicator отображает номер текущей волны римскими цифрами.
type WaveIndicator struct {
	X, Y             int
	Color            color.RGBA
	BossColor        color.RGBA
	OutlineColor     color.RGBA
	OutlineThickness int
}

// NewWaveIndicator создает новый индикатор волны, центрированный по x.
func NewWaveIndicator(x, y int) *WaveIndicator {
	return &WaveIndicator{
		X:                x,
		Y:                y,
		Color:            config.TextLightColor,
		BossColor:        config.BossColor,
		OutlineColor:     config.TextDarkColor,
		OutlineThickness: 1,
	}
}

// toRoman конвертирует целое число в римское.
func toRoman(num int) string {
	if num <= 0 {
		return ""
	}
	val := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	syb := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}

	var roman strings.Builder
	for i := 0; i < len(val); i++ {
		for num >= val[i] {
			roman.WriteString(syb[i])
			num -= val[i]
		}
	}
	return roman.String()
}

// Draw отрисовывает индикатор на экране.
func (i *WaveIndicator) Draw(screen *ebiten.Image, waveNumber int, face font.Face) {
	if waveNumber <= 0 {
		return
	}
	label := toRoman(waveNumber)

	textColor := i.Color
	if system.PatternFor(waveNumber) == system.PatternBoss {
		textColor = i.BossColor // Красный для босс-волн
	}

	x := i.X - len(label)*config.TextCharWidth/2
	drawOutlined(screen, label, face, x, i.Y, textColor, i.OutlineColor, i.OutlineThickness)
}

// drawOutlined рисует текст с обводкой толщиной t пикселей.
func drawOutlined(screen *ebiten.Image, s string, face font.Face, x, y int, fill, outline color.Color, t int) {
	for dy := -t; dy <= t; dy++ {
		for dx := -t; dx <= t; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			text.Draw(screen, s, face, x+dx, y+dy, outline)
		}
	}
	text.Draw(screen, s, face, x, y, fill)
}
