package render

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

type Palette struct {
	Nucleus  color.NRGBA
	Proton   color.NRGBA
	Neutron  color.NRGBA
	Electron color.NRGBA
	Ring     color.NRGBA
	Hint     color.NRGBA
}

const (
	nucleusAlpha      = 0.7
	emptyNucleusAlpha = 0.3
	ringAlpha         = 0.3
)

var DefaultPalette = Palette{
	Nucleus:  rgba(100, 100, 200, nucleusAlpha),
	Proton:   MustHex("#e74c3c"),
	Neutron:  MustHex("#3498db"),
	Electron: MustHex("#2ecc71"),
	Ring:     rgba(46, 204, 113, ringAlpha),
	Hint:     MustHex("#3949ab"),
}

func rgba(r, g, b uint8, a float64) color.NRGBA {
	return color.NRGBA{R: r, G: g, B: b, A: uint8(a*255 + 0.5)}
}

// WithAlpha returns c with its opacity replaced.
func WithAlpha(c color.NRGBA, a float64) color.NRGBA {
	return rgba(c.R, c.G, c.B, a)
}

// Opacity reports c's alpha as a 0..1 fraction.
func Opacity(c color.NRGBA) float64 {
	return float64(c.A) / 255
}

// ParseHex accepts "#rrggbb" or "#rrggbbaa".
func ParseHex(s string) (color.NRGBA, error) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 && len(s) != 8 {
		return color.NRGBA{}, fmt.Errorf("render: bad hex color %q", s)
	}
	var ch [4]uint8
	ch[3] = 255
	for i := 0; i < len(s)/2; i++ {
		v, err := strconv.ParseUint(s[i*2:i*2+2], 16, 8)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("render: bad hex color %q: %w", s, err)
		}
		ch[i] = uint8(v)
	}
	return color.NRGBA{R: ch[0], G: ch[1], B: ch[2], A: ch[3]}, nil
}

func MustHex(s string) color.NRGBA {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Hex formats c as "#rrggbb", dropping alpha.
func Hex(c color.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
