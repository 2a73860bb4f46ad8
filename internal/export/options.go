package export

import (
	"fmt"
	"image/color"
	"strings"
)

type Format string

const (
	FormatSVG Format = "svg"
	FormatPNG Format = "png"
	FormatGIF Format = "gif"
)

var Formats = []Format{FormatSVG, FormatPNG, FormatGIF}

func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimPrefix(s, ".")))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("export: unknown format %q (available: svg, png, gif)", s)
}

type Options struct {
	// Scale multiplies the 500x350 layout size to get output pixels.
	Scale      float64
	Background color.NRGBA
	// FrameDelay is the GIF frame delay in 100ths of a second.
	FrameDelay int
}

func DefaultOptions() Options {
	return Options{
		Scale:      1,
		Background: color.NRGBA{R: 255, G: 255, B: 255, A: 255},
		FrameDelay: 150,
	}
}
