package viz

import (
	"strings"
	"testing"
	"time"

	"github.com/san-kum/atomlab/internal/atom"
	"github.com/san-kum/atomlab/internal/render"
)

func TestSurfaceScalesLayoutSpace(t *testing.T) {
	s := NewSurface(NewCanvas(64, 22))
	w, h := s.Size()
	if w != render.LogicalWidth || h != render.LogicalHeight {
		t.Errorf("unexpected logical size %fx%f", w, h)
	}
	if s.Scale() <= 0 || s.Scale() > 1 {
		t.Errorf("unexpected scale %f", s.Scale())
	}
}

func TestSurfaceDrawsEmptyBuildHint(t *testing.T) {
	c := NewCanvas(64, 22)
	render.New(render.BuildOptions()).Draw(NewSurface(c), atom.Counts{})
	if !strings.Contains(c.String(), render.DefaultHint) {
		t.Errorf("hint missing from canvas:\n%s", c.String())
	}
}

func TestSurfaceDrawsAtom(t *testing.T) {
	c := NewCanvas(64, 22)
	na, _ := atom.DefaultCatalog().Lookup("sodium")
	render.New(render.StructureOptions()).Draw(NewSurface(c), na.Counts())

	colors := map[string]bool{}
	for _, row := range c.Colors {
		for _, col := range row {
			colors[col] = true
		}
	}
	p := render.DefaultPalette
	for _, hex := range []string{render.Hex(p.Proton), render.Hex(p.Neutron), render.Hex(p.Electron)} {
		if !colors[hex] {
			t.Errorf("expected %s on canvas", hex)
		}
	}
	if strings.Contains(c.String(), render.DefaultHint) {
		t.Error("structure view should not show the hint")
	}
}

func TestSurfaceRedrawClears(t *testing.T) {
	c := NewCanvas(64, 22)
	s := NewSurface(c)
	r := render.New(render.BuildOptions())
	r.Draw(s, atom.Counts{})
	r.Draw(s, atom.Counts{Protons: 1, Electrons: 1})
	if strings.Contains(c.String(), render.DefaultHint) {
		t.Error("hint should disappear after redraw")
	}
}

func TestThemes(t *testing.T) {
	defer SetTheme("classic")

	if GetTheme("nope").Name != "classic" {
		t.Error("unknown theme should fall back to classic")
	}
	SetTheme("ocean")
	if CurrentTheme.Name != "ocean" {
		t.Errorf("expected ocean, got %s", CurrentTheme.Name)
	}
	seen := map[string]bool{}
	for range Themes {
		seen[NextTheme().Name] = true
	}
	if len(seen) != len(Themes) {
		t.Errorf("NextTheme should visit every theme, saw %v", seen)
	}
}

func TestProgressBarWidth(t *testing.T) {
	for _, p := range []float64{-1, 0, 0.5, 1, 2} {
		bar := ProgressBar(p, 8)
		if n := strings.Count(bar, "█") + strings.Count(bar, "░"); n != 8 {
			t.Errorf("ProgressBar(%f) has %d cells", p, n)
		}
	}
}

func TestSurfaceLargeBuildStaysFast(t *testing.T) {
	r := render.New(render.BuildOptions())
	for _, p := range []int{1000, 10000, 40000} {
		c := NewCanvas(64, 22)
		start := time.Now()
		r.Draw(NewSurface(c), atom.Counts{Protons: p, Neutrons: p, Electrons: p})
		if elapsed := time.Since(start); elapsed > 2*time.Second {
			t.Errorf("protons=%d: draw took %v", p, elapsed)
		}
	}
}
