package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

const blank = 0x2800

// Canvas is a braille dot grid with one foreground color per cell.
type Canvas struct {
	Width, Height int
	Grid          [][]rune
	Colors        [][]string
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
		Colors: make([][]string, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		c.Colors[i] = make([]string, w)
	}
	c.Clear()
	return c
}

// SubSize is the canvas size in dots.
func (c *Canvas) SubSize() (int, int) {
	return c.Width * 2, c.Height * 4
}

// SetColor sets a dot at (x, y) in sub-pixel coordinates and paints its
// cell. The canvas size in sub-pixels is (Width*2) x (Height*4). An empty
// color keeps the cell's current one.
func (c *Canvas) SetColor(x, y int, color string) {
	if x < 0 || y < 0 {
		return
	}

	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return
	}

	if c.Grid[row][col] < blank || c.Grid[row][col] > blank+0xff {
		c.Grid[row][col] = blank
	}
	c.Grid[row][col] |= rune(pixelMap[y%4][x%2])
	if color != "" {
		c.Colors[row][col] = color
	}
}

// IsSet reports whether the dot at (x, y) is lit.
func (c *Canvas) IsSet(x, y int) bool {
	if x < 0 || y < 0 || x/2 >= c.Width || y/4 >= c.Height {
		return false
	}
	r := c.Grid[y/4][x/2]
	if r < blank || r > blank+0xff {
		return false
	}
	return r&rune(pixelMap[y%4][x%2]) != 0
}

// Clear resets the canvas
func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = blank
			c.Colors[i][j] = ""
		}
	}
}

// FillCircle lights every dot within r of (cx, cy). Sparse fills every other
// dot in a checkerboard, which reads as a faded area.
func (c *Canvas) FillCircle(cx, cy, r float64, color string, sparse bool) {
	sw, sh := c.SubSize()
	minX, maxX := max(int(cx-r), 0), min(int(cx+r+1), sw-1)
	minY, maxY := max(int(cy-r), 0), min(int(cy+r+1), sh-1)
	r2 := r * r
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			if sparse && (x+y)%2 != 0 {
				continue
			}
			dx, dy := float64(x)-cx, float64(y)-cy
			if dx*dx+dy*dy <= r2 {
				c.SetColor(x, y, color)
			}
		}
	}
	if !sparse {
		// always mark the center so tiny particles stay visible
		c.SetColor(int(cx+0.5), int(cy+0.5), color)
	}
}

// PutText writes s into cells starting at (col, row), replacing any dots.
func (c *Canvas) PutText(col, row int, s, color string) {
	if row < 0 || row >= c.Height {
		return
	}
	for _, ch := range s {
		if col >= 0 && col < c.Width {
			c.Grid[row][col] = ch
			c.Colors[row][col] = color
		}
		col++
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row) + "\n")
	}
	return b.String()
}

// Render is String with cell colors applied. Runs of equal color share one
// style call.
func (c *Canvas) Render() string {
	var b strings.Builder
	for i, row := range c.Grid {
		start := 0
		for j := 1; j <= len(row); j++ {
			if j < len(row) && c.Colors[i][j] == c.Colors[i][start] {
				continue
			}
			run := string(row[start:j])
			if col := c.Colors[i][start]; col != "" {
				run = lipgloss.NewStyle().Foreground(lipgloss.Color(col)).Render(run)
			}
			b.WriteString(run)
			start = j
		}
		b.WriteString("\n")
	}
	return b.String()
}
