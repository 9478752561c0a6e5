// internal/camera/viewport.go
package camera

import "go-shmup/pkg/utils"

// Viewport переводит нормированные доли экрана (0..1, начало в левом
// нижнем углу) в мировые координаты и обратно.
type Viewport interface {
	ViewportToWorld(v utils.Vec2) utils.Vec2
	WorldToViewport(w utils.Vec2) utils.Vec2
}

// Ortho это ортографическая камера, смотрящая на Center, ось y вверх.
type Ortho struct {
	Center     utils.Vec2
	HalfHeight float64
	Aspect     float64 // ширина / высота
}

// NewOrtho возвращает камеру с центром в начале координат мира.
func NewOrtho(halfHeight, aspect float64) *Ortho {
	return &Ortho{HalfHeight: halfHeight, Aspect: aspect}
}

func (o *Ortho) HalfWidth() float64 {
	return o.HalfHeight * o.Aspect
}

func (o *Ortho) ViewportToWorld(v utils.Vec2) utils.Vec2 {
	return utils.Vec2{
		X: o.Center.X + (v.X-0.5)*2*o.HalfWidth(),
		Y: o.Center.Y + (v.Y-0.5)*2*o.HalfHeight,
	}
}

func (o *Ortho) WorldToViewport(w utils.Vec2) utils.Vec2 {
	return utils.Vec2{
		X: (w.X-o.Center.X)/(2*o.HalfWidth()) + 0.5,
		Y: (w.Y-o.Center.Y)/(2*o.HalfHeight) + 0.5,
	}
}

// WorldToScreen переводит точку мира в пиксели, ось y направлена вниз.
func (o *Ortho) WorldToScreen(w utils.Vec2, screenW, screenH int) (float32, float32) {
	v := o.WorldToViewport(w)
	return float32(v.X * float64(screenW)), float32((1 - v.Y) * float64(screenH))
}

// PixelsPerUnit это сколько пикселей экрана занимает единица мира по вертикали.
func (o *Ortho) PixelsPerUnit(screenH int) float64 {
	return float64(screenH) / (2 * o.HalfHeight)
}

// Горизонтальные границы широкие: синусоиды и дуги выходят за края
// экрана и возвращаются.
const (
	exitBottom = -0.15
	exitLeft   = -1.0
	exitRight  = 2.0
)

// OutOfPlayField сообщает, покинул ли pos область, из которой акторы возвращаются.
// Всё выше верхнего края считается внутри, там акторы появляются.
func OutOfPlayField(vp Viewport, pos utils.Vec2) bool {
	v := vp.WorldToViewport(pos)
	return v.Y < exitBottom || v.X < exitLeft || v.X > exitRight
}
