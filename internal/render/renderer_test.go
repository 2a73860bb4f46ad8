package render

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/san-kum/atomlab/internal/atom"
)

func near(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestDraw_Hydrogen(t *testing.T) {
	rec := NewRecorder()
	h, _ := atom.DefaultCatalog().Lookup("hydrogen")
	f := New(StructureOptions()).Draw(rec, h.Counts())

	if f.Nucleus.Radius != 12 {
		t.Errorf("expected nucleus radius 12, got %f", f.Nucleus.Radius)
	}
	if len(f.Shells) != 1 || f.Shells[0].Radius != 70 || len(f.Shells[0].Electrons) != 1 {
		t.Fatalf("unexpected shells: %+v", f.Shells)
	}

	want := []Op{OpClear, OpFill, OpFill, OpStroke, OpFill}
	if len(rec.Commands) != len(want) {
		t.Fatalf("expected %d commands, got %d", len(want), len(rec.Commands))
	}
	for i, op := range want {
		if rec.Commands[i].Op != op {
			t.Errorf("command %d: expected %s, got %s", i, op, rec.Commands[i].Op)
		}
	}

	proton := rec.Commands[2]
	if proton.Color != DefaultPalette.Proton || !near(proton.X, 250+7.2) || !near(proton.Y, 175) {
		t.Errorf("unexpected proton command %+v", proton)
	}
	electron := rec.Commands[4]
	if electron.Color != DefaultPalette.Electron || !near(electron.X, 320) || electron.R != ElectronRadius {
		t.Errorf("unexpected electron command %+v", electron)
	}
}

func TestDraw_Sodium(t *testing.T) {
	rec := NewRecorder()
	na, _ := atom.DefaultCatalog().Lookup("sodium")
	f := New(StructureOptions()).Draw(rec, na.Counts())

	if f.Nucleus.Radius != 56 {
		t.Errorf("expected nucleus radius 56, got %f", f.Nucleus.Radius)
	}
	wantShells := []atom.Shell{{Radius: 70, Electrons: 2}, {Radius: 100, Electrons: 8}, {Radius: 130, Electrons: 1}}
	for i, s := range f.Shells {
		if s.Shell != wantShells[i] {
			t.Errorf("shell %d: expected %+v, got %+v", i, wantShells[i], s.Shell)
		}
	}
	if got := rec.Count(OpFill); got != 1+23+11 {
		t.Errorf("expected 35 fills, got %d", got)
	}
	if got := rec.Count(OpStroke); got != 3 {
		t.Errorf("expected 3 rings, got %d", got)
	}
	if got := rec.Count(OpText); got != 0 {
		t.Errorf("structure view should not draw the hint, got %d", got)
	}

	protons, neutrons := 0, 0
	for _, c := range rec.Commands {
		switch c.Color {
		case DefaultPalette.Proton:
			protons++
		case DefaultPalette.Neutron:
			neutrons++
		}
	}
	if protons != 11 || neutrons != 12 {
		t.Errorf("expected 11 protons and 12 neutrons, got %d and %d", protons, neutrons)
	}
}

func TestDraw_EmptyBuildShowsHint(t *testing.T) {
	rec := NewRecorder()
	f := New(BuildOptions()).Draw(rec, atom.Counts{})

	if !f.ShowHint {
		t.Fatal("expected hint for an empty build")
	}
	if len(rec.Commands) != 3 {
		t.Fatalf("expected clear, nucleus, text; got %d commands", len(rec.Commands))
	}
	nucleus := rec.Commands[1]
	if nucleus.R != atom.MinNucleusRadius {
		t.Errorf("expected minimum radius, got %f", nucleus.R)
	}
	if nucleus.Color.A != WithAlpha(DefaultPalette.Nucleus, emptyNucleusAlpha).A {
		t.Errorf("expected faded nucleus, got alpha %d", nucleus.Color.A)
	}
	hint := rec.Commands[2]
	if hint.Op != OpText || hint.Text != DefaultHint || hint.Y != HintY || hint.X != 250 {
		t.Errorf("unexpected hint command %+v", hint)
	}
}

func TestDraw_BuildResetRedrawsFromScratch(t *testing.T) {
	rec := NewRecorder()
	r := New(BuildOptions())
	b := atom.NewBuild()
	b.AddProton()
	b.AddElectron()
	r.Draw(rec, b.Counts())
	if rec.Count(OpText) != 0 {
		t.Fatal("hint drawn for a non-empty build")
	}

	b.Reset()
	r.Draw(rec, b.Counts())
	if rec.Commands[0].Op != OpClear {
		t.Error("frame should start with clear")
	}
	if rec.Count(OpText) != 1 || rec.Count(OpStroke) != 0 {
		t.Errorf("expected hint-only frame, got %d commands", len(rec.Commands))
	}
}

func TestDraw_BuildOnlyElectronsNoHint(t *testing.T) {
	rec := NewRecorder()
	f := New(BuildOptions()).Draw(rec, atom.Counts{Electrons: 1})
	if f.ShowHint {
		t.Error("hint shown although an electron was added")
	}
	if !f.Nucleus.Empty {
		t.Error("expected empty nucleus")
	}
}

func TestDraw_StructureEmptyNucleusNotFaded(t *testing.T) {
	rec := NewRecorder()
	New(StructureOptions()).Draw(rec, atom.Counts{})
	if rec.Commands[1].Color != DefaultPalette.Nucleus {
		t.Errorf("structure view should keep full nucleus opacity")
	}
}

func TestLayout_OverflowDropsElectrons(t *testing.T) {
	f := New(BuildOptions()).Layout(atom.Counts{Protons: 20, Electrons: 25}, LogicalWidth, LogicalHeight)
	placed := 0
	for _, s := range f.Shells {
		placed += len(s.Electrons)
	}
	if placed != atom.MaxElectrons || len(f.Shells) != 3 {
		t.Errorf("expected 18 electrons in 3 shells, got %d in %d", placed, len(f.Shells))
	}
}

func TestLayout_OffsetPolicies(t *testing.T) {
	c := atom.Counts{Protons: 11, Neutrons: 12, Electrons: 11}

	uniform := New(BuildOptions()).Layout(c, LogicalWidth, LogicalHeight)
	first := uniform.Shells[1].Electrons[0]
	if !near(first.X, 350) || !near(first.Y, 175) {
		t.Errorf("uniform offset should start at angle 0, got (%f, %f)", first.X, first.Y)
	}

	staggered := New(StructureOptions()).Layout(c, LogicalWidth, LogicalHeight)
	first = staggered.Shells[1].Electrons[0]
	angle := 2 * math.Pi * 2 / 10
	if !near(first.X, 250+100*math.Cos(angle)) || !near(first.Y, 175+100*math.Sin(angle)) {
		t.Errorf("staggered offset mismatch, got (%f, %f)", first.X, first.Y)
	}
	if staggered.Shells[2].Offset != 10 {
		t.Errorf("expected third shell offset 10, got %d", staggered.Shells[2].Offset)
	}
}

func TestFrameParticles(t *testing.T) {
	f := New(StructureOptions()).Layout(atom.Counts{Protons: 3, Neutrons: 4, Electrons: 3}, LogicalWidth, LogicalHeight)
	if got := len(f.Particles()); got != 10 {
		t.Errorf("expected 10 particles, got %d", got)
	}
}

func TestRecorderWriteTo(t *testing.T) {
	rec := NewRecorder()
	New(BuildOptions()).Draw(rec, atom.Counts{})
	var buf bytes.Buffer
	if _, err := rec.WriteTo(&buf); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "clear\n") || !strings.Contains(out, DefaultHint) {
		t.Errorf("unexpected dump:\n%s", out)
	}
}

func TestParseHex(t *testing.T) {
	c, err := ParseHex("#e74c3c")
	if err != nil {
		t.Fatal(err)
	}
	if c.R != 0xe7 || c.G != 0x4c || c.B != 0x3c || c.A != 255 {
		t.Errorf("unexpected color %+v", c)
	}
	if _, err := ParseHex("#zzz"); err == nil {
		t.Error("expected error for bad hex")
	}
	if Hex(c) != "#e74c3c" {
		t.Errorf("Hex round trip failed: %s", Hex(c))
	}
}

func TestRecorderKeepsEarlierFrames(t *testing.T) {
	rec := NewRecorder()
	r := New(StructureOptions())

	r.Draw(rec, atom.Counts{Protons: 8, Neutrons: 8, Electrons: 8})
	first := rec.Commands
	firstLen := len(first)
	firstFill := first[1]

	r.Draw(rec, atom.Counts{Protons: 1, Electrons: 1})
	if len(first) != firstLen || first[1] != firstFill {
		t.Error("redraw overwrote the previous frame's commands")
	}
	if len(rec.Commands) != 5 {
		t.Errorf("expected 5 commands for hydrogen, got %d", len(rec.Commands))
	}
}
