package ui

import (
	"fmt"

	"go-shmup/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// ScorePanel показывает счёт в левом верхнем углу и номер волны
// сверху посередине. Жизни и бомбы рисуются значками HUD из пула.
type ScorePanel struct {
	face font.Face
	wave *WaveIndicator
}

func NewScorePanel(face font.Face) *ScorePanel {
	return &ScorePanel{
		face: face,
		wave: NewWaveIndicator(config.ScreenWidth/2, int(config.HUDMargin)+13),
	}
}

func (p *ScorePanel) Draw(screen *ebiten.Image, score, wave int) {
	text.Draw(screen, fmt.Sprintf("SCORE %07d", score), p.face,
		int(config.HUDMargin), int(config.HUDMargin)+13, config.TextLightColor)
	p.wave.Draw(screen, wave, p.face)
}

// DrawCentered рисует строки текста по центру, начиная с y.
func DrawCentered(screen *ebiten.Image, face font.Face, y int, lines ...string) {
	const lineHeight = 20
	for i, line := range lines {
		x := (config.ScreenWidth - len(line)*config.TextCharWidth) / 2
		drawOutlined(screen, line, face, x, y+i*lineHeight+config.TextOffsetY, config.TextLightColor, config.TextDarkColor, 1)
	}
}
