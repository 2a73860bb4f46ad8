package render

import (
	"github.com/san-kum/atomlab/internal/atom"
)

type View int

const (
	// StructureView shows a catalog element.
	StructureView View = iota
	// BuildView shows the user-assembled atom and may be empty.
	BuildView
)

func (v View) String() string {
	if v == BuildView {
		return "build"
	}
	return "structure"
}

const (
	NucleonRadius  = 5.0
	ElectronRadius = 4.0
	HintY          = 30.0
	DefaultHint    = "Use buttons to add particles"
)

// Per-shell angular offsets. The structure view staggers its rings; the build
// view keeps every ring at offset zero.
var (
	StaggeredOffsets = []int{0, 2, 10}
	UniformOffsets   = []int{0, 0, 0}
)

type Options struct {
	View    View
	Offsets []int
	Hint    string
	Palette Palette
}

func StructureOptions() Options {
	return Options{View: StructureView, Offsets: StaggeredOffsets, Palette: DefaultPalette}
}

func BuildOptions() Options {
	return Options{View: BuildView, Offsets: UniformOffsets, Hint: DefaultHint, Palette: DefaultPalette}
}

type ShellFrame struct {
	atom.Shell
	Offset    int
	Ring      bool
	Electrons []atom.ParticlePosition
}

// Frame is the computed geometry for one draw.
type Frame struct {
	Center   atom.Point
	Nucleus  atom.Nucleus
	Shells   []ShellFrame
	ShowHint bool
}

// Particles flattens nucleus and shell positions in draw order.
func (f Frame) Particles() []atom.ParticlePosition {
	out := make([]atom.ParticlePosition, 0, len(f.Nucleus.Particles))
	out = append(out, f.Nucleus.Particles...)
	for _, s := range f.Shells {
		out = append(out, s.Electrons...)
	}
	return out
}

type Renderer struct {
	opts Options
}

func New(opts Options) *Renderer {
	if opts.View == BuildView && opts.Hint == "" {
		opts.Hint = DefaultHint
	}
	return &Renderer{opts: opts}
}

func (r *Renderer) Options() Options { return r.opts }

func (r *Renderer) offset(shell int) int {
	if shell < len(r.opts.Offsets) {
		return r.opts.Offsets[shell]
	}
	return 0
}

// Layout computes a frame for a surface of the given size. It does not draw.
func (r *Renderer) Layout(c atom.Counts, width, height float64) Frame {
	center := atom.Point{X: width / 2, Y: height / 2}
	f := Frame{
		Center:  center,
		Nucleus: atom.LayoutNucleus(c.Protons, c.Neutrons, center),
	}
	for i, shell := range atom.Partition(c.Electrons) {
		off := r.offset(i)
		electrons, ring := atom.LayoutShell(shell, off, center)
		if !ring {
			continue
		}
		f.Shells = append(f.Shells, ShellFrame{Shell: shell, Offset: off, Ring: ring, Electrons: electrons})
	}
	f.ShowHint = r.opts.View == BuildView && c.IsZero()
	return f
}

// Draw clears s and redraws the atom for c. Callers invoke it once per state
// change.
func (r *Renderer) Draw(s Surface, c atom.Counts) Frame {
	w, h := s.Size()
	f := r.Layout(c, w, h)
	r.DrawFrame(s, f)
	return f
}

func (r *Renderer) DrawFrame(s Surface, f Frame) {
	p := r.opts.Palette
	s.Clear()

	nucleus := p.Nucleus
	if f.Nucleus.Empty && r.opts.View == BuildView {
		nucleus = WithAlpha(nucleus, emptyNucleusAlpha)
	}
	s.FillCircle(f.Center.X, f.Center.Y, f.Nucleus.Radius, nucleus)

	for _, part := range f.Nucleus.Particles {
		col := p.Neutron
		if part.Kind == atom.Proton {
			col = p.Proton
		}
		s.FillCircle(part.X, part.Y, NucleonRadius, col)
	}

	for _, shell := range f.Shells {
		s.StrokeCircle(f.Center.X, f.Center.Y, shell.Radius, p.Ring)
		for _, e := range shell.Electrons {
			s.FillCircle(e.X, e.Y, ElectronRadius, p.Electron)
		}
	}

	if f.ShowHint {
		s.Text(f.Center.X, HintY, r.opts.Hint, p.Hint)
	}
}
