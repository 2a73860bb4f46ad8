package gui

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/atomlab/internal/render"
)

// Surface draws render commands into a rectangle of the raylib window.
// Logical coordinates are scaled uniformly and centred in the rectangle.
type Surface struct {
	font     rl.Font
	bg       rl.Color
	x, y     float32
	scale    float32
	w, h     float64
	fontSize float32
}

func NewSurface(font rl.Font, bg rl.Color, x, y, width, height float32) *Surface {
	scale := min(width/render.LogicalWidth, height/render.LogicalHeight)
	return &Surface{
		font:     font,
		bg:       bg,
		x:        x + (width-render.LogicalWidth*scale)/2,
		y:        y + (height-render.LogicalHeight*scale)/2,
		scale:    scale,
		w:        render.LogicalWidth,
		h:        render.LogicalHeight,
		fontSize: 16 * scale,
	}
}

func (s *Surface) Size() (float64, float64) { return s.w, s.h }

func (s *Surface) Clear() {
	rl.DrawRectangleV(
		rl.NewVector2(s.x, s.y),
		rl.NewVector2(float32(s.w)*s.scale, float32(s.h)*s.scale),
		s.bg,
	)
}

func (s *Surface) point(x, y float64) rl.Vector2 {
	return rl.NewVector2(s.x+float32(x)*s.scale, s.y+float32(y)*s.scale)
}

func (s *Surface) FillCircle(x, y, r float64, c color.NRGBA) {
	rl.DrawCircleV(s.point(x, y), float32(r)*s.scale, toColor(c))
}

func (s *Surface) StrokeCircle(x, y, r float64, c color.NRGBA) {
	p := s.point(x, y)
	rad := float32(r) * s.scale
	rl.DrawRing(p, rad-1, rad+1, 0, 360, 64, toColor(c))
}

func (s *Surface) Text(x, y float64, str string, c color.NRGBA) {
	size := rl.MeasureTextEx(s.font, str, s.fontSize, 1)
	p := s.point(x, y)
	p.X -= size.X / 2
	p.Y -= size.Y / 2
	rl.DrawTextEx(s.font, str, p, s.fontSize, 1, toColor(c))
}

func toColor(c color.NRGBA) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}
