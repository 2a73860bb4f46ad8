package export

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/san-kum/atomlab/internal/render"
)

// supersample is the oversampling factor; frames are drawn large and
// downsampled for smooth edges.
const supersample = 4

// PNG is a raster render.Surface.
type PNG struct {
	w, h       float64
	k          float64 // logical unit -> large-image pixel
	width      int
	height     int
	background color.NRGBA
	img        *image.RGBA
	face       font.Face
}

func NewPNG(opts Options) (*PNG, error) {
	if opts.Scale <= 0 {
		return nil, fmt.Errorf("export: scale must be positive, got %v", opts.Scale)
	}
	k := opts.Scale * supersample
	width := int(math.Round(render.LogicalWidth * opts.Scale))
	height := int(math.Round(render.LogicalHeight * opts.Scale))

	fnt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("export: parse font: %w", err)
	}
	face, err := opentype.NewFace(fnt, &opentype.FaceOptions{
		Size:    fontSize * k,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("export: font face: %w", err)
	}

	p := &PNG{
		w:          render.LogicalWidth,
		h:          render.LogicalHeight,
		k:          k,
		width:      width,
		height:     height,
		background: opts.Background,
		img:        image.NewRGBA(image.Rect(0, 0, width*supersample, height*supersample)),
		face:       face,
	}
	p.Clear()
	return p, nil
}

func (p *PNG) Size() (float64, float64) { return p.w, p.h }

func (p *PNG) Clear() {
	draw.Draw(p.img, p.img.Bounds(), image.NewUniform(p.background), image.Point{}, draw.Src)
}

func (p *PNG) FillCircle(x, y, r float64, c color.NRGBA) {
	p.paint(ring{cx: x * p.k, cy: y * p.k, outer: r * p.k}, c)
}

func (p *PNG) StrokeCircle(x, y, r float64, c color.NRGBA) {
	half := p.k / 2
	p.paint(ring{cx: x * p.k, cy: y * p.k, outer: r*p.k + half, inner: r*p.k - half}, c)
}

func (p *PNG) paint(mask ring, c color.NRGBA) {
	bounds := mask.Bounds().Intersect(p.img.Bounds())
	if bounds.Empty() {
		return
	}
	draw.DrawMask(p.img, bounds, image.NewUniform(c), image.Point{}, mask, bounds.Min, draw.Over)
}

// Text centres s on x with its baseline at y.
func (p *PNG) Text(x, y float64, s string, c color.NRGBA) {
	d := &font.Drawer{
		Dst:  p.img,
		Src:  image.NewUniform(c),
		Face: p.face,
	}
	width := d.MeasureString(s)
	d.Dot = fixed.Point26_6{
		X: fixed.Int26_6(x*p.k*64) - width/2,
		Y: fixed.Int26_6(y * p.k * 64),
	}
	d.DrawString(s)
}

// Image returns the frame downsampled to the output size.
func (p *PNG) Image() *image.RGBA {
	out := image.NewRGBA(image.Rect(0, 0, p.width, p.height))
	draw.CatmullRom.Scale(out, out.Bounds(), p.img, p.img.Bounds(), draw.Over, nil)
	return out
}

func (p *PNG) Encode(w io.Writer) error {
	return png.Encode(w, p.Image())
}

// ring is an alpha mask covering inner < d <= outer around (cx, cy). A zero
// inner radius makes it a disc.
type ring struct {
	cx, cy       float64
	outer, inner float64
}

func (m ring) ColorModel() color.Model { return color.AlphaModel }

func (m ring) Bounds() image.Rectangle {
	return image.Rect(
		int(math.Floor(m.cx-m.outer)), int(math.Floor(m.cy-m.outer)),
		int(math.Ceil(m.cx+m.outer))+1, int(math.Ceil(m.cy+m.outer))+1,
	)
}

func (m ring) At(x, y int) color.Color {
	dx, dy := float64(x)+0.5-m.cx, float64(y)+0.5-m.cy
	d2 := dx*dx + dy*dy
	if d2 <= m.outer*m.outer && (m.inner <= 0 || d2 > m.inner*m.inner) {
		return color.Alpha{A: 255}
	}
	return color.Alpha{}
}
