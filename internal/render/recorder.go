package render

import (
	"fmt"
	"image/color"
	"io"
)

type Op int

const (
	OpClear Op = iota
	OpFill
	OpStroke
	OpText
)

func (o Op) String() string {
	switch o {
	case OpClear:
		return "clear"
	case OpFill:
		return "fill"
	case OpStroke:
		return "stroke"
	case OpText:
		return "text"
	}
	return "?"
}

type Command struct {
	Op      Op
	X, Y, R float64
	Text    string
	Color   color.NRGBA
}

// Recorder is a Surface that keeps the command stream instead of drawing.
type Recorder struct {
	W, H     float64
	Commands []Command
}

func NewRecorder() *Recorder {
	return &Recorder{W: LogicalWidth, H: LogicalHeight}
}

func (r *Recorder) Size() (float64, float64) { return r.W, r.H }

// Clear starts a fresh command list; slices taken from earlier frames stay
// intact.
func (r *Recorder) Clear() {
	r.Commands = []Command{{Op: OpClear}}
}

func (r *Recorder) FillCircle(x, y, rad float64, c color.NRGBA) {
	r.Commands = append(r.Commands, Command{Op: OpFill, X: x, Y: y, R: rad, Color: c})
}

func (r *Recorder) StrokeCircle(x, y, rad float64, c color.NRGBA) {
	r.Commands = append(r.Commands, Command{Op: OpStroke, X: x, Y: y, R: rad, Color: c})
}

func (r *Recorder) Text(x, y float64, s string, c color.NRGBA) {
	r.Commands = append(r.Commands, Command{Op: OpText, X: x, Y: y, Text: s, Color: c})
}

func (r *Recorder) Count(op Op) int {
	n := 0
	for _, c := range r.Commands {
		if c.Op == op {
			n++
		}
	}
	return n
}

// WriteTo dumps the command stream one command per line.
func (r *Recorder) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for _, c := range r.Commands {
		var n int
		var err error
		switch c.Op {
		case OpClear:
			n, err = fmt.Fprintln(w, "clear")
		case OpText:
			n, err = fmt.Fprintf(w, "text   %7.2f %7.2f %q %s\n", c.X, c.Y, c.Text, Hex(c.Color))
		default:
			n, err = fmt.Fprintf(w, "%-6s %7.2f %7.2f r=%6.2f %s a=%.2f\n", c.Op, c.X, c.Y, c.R, Hex(c.Color), Opacity(c.Color))
		}
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}
