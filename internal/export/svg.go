package export

import (
	"encoding/xml"
	"fmt"
	"image/color"
	"io"
	"strings"

	"github.com/san-kum/atomlab/internal/render"
)

const fontSize = 16

// SVG is a render.Surface that accumulates an SVG document.
type SVG struct {
	w, h       float64
	scale      float64
	background color.NRGBA
	body       strings.Builder
}

func NewSVG(opts Options) *SVG {
	return &SVG{
		w:          render.LogicalWidth,
		h:          render.LogicalHeight,
		scale:      opts.Scale,
		background: opts.Background,
	}
}

func (s *SVG) Size() (float64, float64) { return s.w, s.h }

func (s *SVG) Clear() { s.body.Reset() }

func (s *SVG) FillCircle(x, y, r float64, c color.NRGBA) {
	s.body.WriteString(fmt.Sprintf(`<circle cx="%.2f" cy="%.2f" r="%.2f" fill="%s" fill-opacity="%.2f"/>
`, x, y, r, render.Hex(c), render.Opacity(c)))
}

func (s *SVG) StrokeCircle(x, y, r float64, c color.NRGBA) {
	s.body.WriteString(fmt.Sprintf(`<circle cx="%.2f" cy="%.2f" r="%.2f" fill="none" stroke="%s" stroke-opacity="%.2f" stroke-width="1"/>
`, x, y, r, render.Hex(c), render.Opacity(c)))
}

func (s *SVG) Text(x, y float64, str string, c color.NRGBA) {
	var esc strings.Builder
	if err := xml.EscapeText(&esc, []byte(str)); err != nil {
		return
	}
	s.body.WriteString(fmt.Sprintf(`<text x="%.2f" y="%.2f" text-anchor="middle" font-family="Arial, sans-serif" font-size="%d" fill="%s">%s</text>
`, x, y, fontSize, render.Hex(c), esc.String()))
}

// String returns the complete document.
func (s *SVG) String() string {
	var sb strings.Builder

	width, height := s.w*s.scale, s.h*s.scale
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
`, width, height, s.w, s.h))
	if s.background.A > 0 {
		sb.WriteString(fmt.Sprintf(`<rect width="100%%" height="100%%" fill="%s" fill-opacity="%.2f"/>
`, render.Hex(s.background), render.Opacity(s.background)))
	}
	sb.WriteString(s.body.String())
	sb.WriteString("</svg>\n")
	return sb.String()
}

func (s *SVG) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, s.String())
	return int64(n), err
}
