package ui

import (
	"fmt"

	"go-shmup/internal/component"
	"go-shmup/internal/config"
	"go-shmup/internal/event"
	"go-shmup/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
)

// Banner объявляет следующую волну посреди экрана.
type Banner struct {
	face      font.Face
	label     string
	remaining float64
	duration  float64
}

// NewBanner подписывает баннер на уведомления WaveBanner.
func NewBanner(face font.Face, dispatcher *event.Dispatcher) *Banner {
	b := &Banner{face: face}
	if dispatcher != nil {
		dispatcher.Subscribe(event.WaveBanner, b)
		dispatcher.Subscribe(event.GameStateChanged, b)
	}
	return b
}

func (b *Banner) OnEvent(e event.Event) {
	switch e.Type {
	case event.WaveBanner:
		if info, ok := e.Data.(event.WaveInfo); ok {
			b.Show(info)
		}
	case event.GameStateChanged:
		if change, ok := e.Data.(event.StateChange); ok && (change.To == component.Menu || change.To == component.GameOver) {
			b.remaining = 0
		}
	}
}

// Show запускает баннер волны; босс-волны держатся дольше.
func (b *Banner) Show(info event.WaveInfo) {
	b.label = fmt.Sprintf("WAVE %d", info.Wave)
	b.duration = config.BannerDuration
	if info.Boss {
		b.label += " - BOSS"
		b.duration = config.BossBannerDuration
	}
	b.remaining = b.duration
}

func (b *Banner) Visible() bool { return b.remaining > 0 }

func (b *Banner) Update(dt float64) {
	if b.remaining > 0 {
		b.remaining -= dt
	}
}

func (b *Banner) Draw(screen *ebiten.Image) {
	if !b.Visible() {
		return
	}
	// плавное появление и исчезновение по 0.3 с
	alpha := 1.0
	if elapsed := b.duration - b.remaining; elapsed < 0.3 {
		alpha = elapsed / 0.3
	} else if b.remaining < 0.3 {
		alpha = b.remaining / 0.3
	}
	c := render.FadeColor(config.TextLightColor, alpha)

	x := (config.ScreenWidth - len(b.label)*config.TextCharWidth) / 2
	y := config.ScreenHeight / 3
	drawOutlined(screen, b.label, b.face, x, y, c, render.FadeColor(config.TextDarkColor, alpha), 1)
}
