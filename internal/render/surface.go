package render

import "image/color"

// Surface is an immediate-mode 2D target. Coordinates are in the surface's
// logical space; implementations scale to their own resolution.
type Surface interface {
	Size() (w, h float64)
	Clear()
	FillCircle(x, y, r float64, c color.NRGBA)
	StrokeCircle(x, y, r float64, c color.NRGBA)
	Text(x, y float64, s string, c color.NRGBA)
}

// LogicalWidth and LogicalHeight are the layout units every surface maps from.
const (
	LogicalWidth  = 500
	LogicalHeight = 350
)
