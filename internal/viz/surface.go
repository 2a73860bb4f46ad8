package viz

import (
	"image/color"
	"math"
	"unicode/utf8"

	"github.com/san-kum/atomlab/internal/render"
)

// faintOpacity is the alpha below which fills and rings are stippled.
const faintOpacity = 0.5

// Surface draws render commands onto a braille Canvas, scaling the logical
// layout space uniformly and centring it.
type Surface struct {
	canvas     *Canvas
	w, h       float64
	scale      float64
	offX, offY float64
}

func NewSurface(c *Canvas) *Surface {
	return NewSurfaceSize(c, render.LogicalWidth, render.LogicalHeight)
}

func NewSurfaceSize(c *Canvas, w, h float64) *Surface {
	sw, sh := c.SubSize()
	scale := math.Min(float64(sw)/w, float64(sh)/h)
	return &Surface{
		canvas: c,
		w:      w,
		h:      h,
		scale:  scale,
		offX:   (float64(sw) - w*scale) / 2,
		offY:   (float64(sh) - h*scale) / 2,
	}
}

func (s *Surface) Canvas() *Canvas { return s.canvas }

func (s *Surface) Scale() float64 { return s.scale }

func (s *Surface) Size() (float64, float64) { return s.w, s.h }

func (s *Surface) Clear() { s.canvas.Clear() }

func (s *Surface) project(x, y float64) (float64, float64) {
	return x*s.scale + s.offX, y*s.scale + s.offY
}

func (s *Surface) FillCircle(x, y, r float64, c color.NRGBA) {
	px, py := s.project(x, y)
	s.canvas.FillCircle(px, py, math.Max(r*s.scale, 0.5), render.Hex(c), render.Opacity(c) < faintOpacity)
}

func (s *Surface) StrokeCircle(x, y, r float64, c color.NRGBA) {
	px, py := s.project(x, y)
	pr := r * s.scale
	hex := render.Hex(c)
	faint := render.Opacity(c) < faintOpacity

	steps := max(int(2*math.Pi*pr), 8)
	for i := 0; i < steps; i++ {
		if faint && i%2 != 0 {
			continue
		}
		a := 2 * math.Pi * float64(i) / float64(steps)
		s.canvas.SetColor(int(math.Round(px+math.Cos(a)*pr)), int(math.Round(py+math.Sin(a)*pr)), hex)
	}
}

// Text centres s horizontally on x, matching the layout's centred hint.
func (s *Surface) Text(x, y float64, str string, c color.NRGBA) {
	px, py := s.project(x, y)
	col := int(px)/2 - utf8.RuneCountInString(str)/2
	s.canvas.PutText(col, int(py)/4, str, render.Hex(c))
}
