package export

import (
	"fmt"
	"image"
	"image/color/palette"
	"image/gif"
	"io"

	"golang.org/x/image/draw"

	"github.com/san-kum/atomlab/internal/atom"
	"github.com/san-kum/atomlab/internal/render"
)

const captionMargin = 14

// Slide is one GIF frame: the atom to draw and an optional caption along the
// bottom edge.
type Slide struct {
	Counts  atom.Counts
	Caption string
}

// CatalogSlides makes one slide per catalog element, in catalog order.
func CatalogSlides(c *atom.Catalog) []Slide {
	slides := make([]Slide, 0, c.Len())
	for _, e := range c.Elements() {
		slides = append(slides, Slide{Counts: e.Counts(), Caption: e.Label()})
	}
	return slides
}

// EncodeGIF renders each slide through r and writes a looping animation.
func EncodeGIF(w io.Writer, r *render.Renderer, slides []Slide, opts Options) error {
	if len(slides) == 0 {
		return fmt.Errorf("export: no frames to encode")
	}
	surface, err := NewPNG(opts)
	if err != nil {
		return err
	}

	anim := gif.GIF{LoopCount: 0}
	captionColor := r.Options().Palette.Hint
	for _, slide := range slides {
		r.Draw(surface, slide.Counts)
		if slide.Caption != "" {
			sw, sh := surface.Size()
			surface.Text(sw/2, sh-captionMargin, slide.Caption, captionColor)
		}
		img := surface.Image()
		frame := image.NewPaletted(img.Bounds(), palette.Plan9)
		draw.FloydSteinberg.Draw(frame, img.Bounds(), img, image.Point{})
		anim.Image = append(anim.Image, frame)
		anim.Delay = append(anim.Delay, opts.FrameDelay)
	}
	return gif.EncodeAll(w, &anim)
}
