package gui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/atomlab/internal/atom"
	"github.com/san-kum/atomlab/internal/config"
	"github.com/san-kum/atomlab/internal/lesson"
	"github.com/san-kum/atomlab/internal/logging"
	"github.com/san-kum/atomlab/internal/render"
	"github.com/san-kum/atomlab/internal/viz"
)

const (
	windowWidth  = 1280
	windowHeight = 720
	fontPath     = "/usr/share/fonts/liberation/LiberationMono-Regular.ttf"
)

var (
	ColBg      = rl.NewColor(248, 249, 250, 255)
	ColPanel   = rl.NewColor(255, 255, 255, 255)
	ColTitle   = rl.NewColor(57, 73, 171, 255)
	ColText    = rl.NewColor(60, 60, 60, 255)
	ColTextDim = rl.NewColor(140, 140, 140, 255)
)

type App struct {
	cfg     *config.Config
	log     logging.Logger
	catalog *atom.Catalog
	font    rl.Font

	Section lesson.Section
	Element int
	Build   *atom.Build

	structure *render.Renderer
	builder   *render.Renderer
	surface   *Surface

	// recomputed on every state change, drawn every frame
	structureFrame render.Frame
	buildFrame     render.Frame
}

func initWindow() {
	rl.InitWindow(windowWidth, windowHeight, lesson.Title)
	rl.SetTargetFPS(60)
	rl.SetExitKey(0)
}

func loadFont() rl.Font {
	if !rl.FileExists(fontPath) {
		return rl.GetFontDefault()
	}
	font := rl.LoadFontEx(fontPath, 32, nil, 0)
	rl.SetTextureFilter(font.Texture, rl.FilterBilinear)
	return font
}

// NewApp needs an open window for its font. Callers resolve the element
// first so a bad name fails before the window appears.
func NewApp(cfg *config.Config, log logging.Logger, element int) *App {
	catalog := atom.DefaultCatalog()
	font := loadFont()
	palette := viz.GetTheme(cfg.Theme).Palette
	app := &App{
		cfg:       cfg,
		log:       log,
		catalog:   catalog,
		font:      font,
		Section:   lesson.Structure,
		Element:   element,
		Build:     atom.NewBuild(),
		structure: render.New(cfg.StructureOptions(palette)),
		builder:   render.New(cfg.BuildOptions(palette)),
		surface:   NewSurface(font, ColPanel, 40, 110, 800, 560),
	}
	app.relayout()
	return app
}

// Run opens the window on the structure view and blocks until it is closed.
func Run(cfg *config.Config, log logging.Logger, element string) error {
	if element == "" {
		element = cfg.DefaultElement
	}
	index, err := atom.DefaultCatalog().Resolve(element)
	if err != nil {
		return err
	}

	initWindow()
	defer rl.CloseWindow()

	app := NewApp(cfg, log, index)
	log.Infof("gui started on %s", app.catalog.At(app.Element).Name)
	app.RunLoop()
	return nil
}

func (a *App) RunLoop() {
	for !rl.WindowShouldClose() {
		if a.Update() {
			return
		}
		a.Draw()
	}
}

func (a *App) relayout() {
	w, h := a.surface.Size()
	a.structureFrame = a.structure.Layout(a.catalog.At(a.Element).Counts(), w, h)
	a.buildFrame = a.builder.Layout(a.Build.Counts(), w, h)
}

// Update handles one frame of input and reports whether the app should quit.
func (a *App) Update() bool {
	if rl.IsKeyPressed(rl.KeyQ) {
		return true
	}

	changed := false
	if rl.IsKeyPressed(rl.KeyTab) {
		if a.Section == lesson.Structure {
			a.Section = lesson.Build
		} else {
			a.Section = lesson.Structure
		}
	}

	switch a.Section {
	case lesson.Structure:
		n := a.catalog.Len()
		if rl.IsKeyPressed(rl.KeyDown) || rl.IsKeyPressed(rl.KeyJ) {
			a.Element = (a.Element + 1) % n
			changed = true
		}
		if rl.IsKeyPressed(rl.KeyUp) || rl.IsKeyPressed(rl.KeyK) {
			a.Element = (a.Element + n - 1) % n
			changed = true
		}
	case lesson.Build:
		for key, kind := range map[int32]atom.Kind{rl.KeyP: atom.Proton, rl.KeyN: atom.Neutron, rl.KeyE: atom.Electron} {
			if rl.IsKeyPressed(key) {
				a.Build.Add(kind)
				changed = true
			}
		}
		if rl.IsKeyPressed(rl.KeyR) {
			a.Build.Reset()
			changed = true
		}
	}

	if changed {
		a.relayout()
	}
	return false
}

func (a *App) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(ColBg)

	a.drawText(lesson.Title, 40, 30, 32, ColTitle)
	a.drawText(a.Section.Heading(), 40, 72, 18, ColText)

	if a.Section == lesson.Build {
		a.builder.DrawFrame(a.surface, a.buildFrame)
		a.drawBuildPanel()
		a.drawText("[P] PROTON  [N] NEUTRON  [E] ELECTRON  [R] RESET  [TAB] STRUCTURE  [Q] QUIT", 40, 685, 14, ColTextDim)
	} else {
		a.structure.DrawFrame(a.surface, a.structureFrame)
		a.drawStructurePanel()
		a.drawText("[J/K] ELEMENT  [TAB] BUILD  [Q] QUIT", 40, 685, 14, ColTextDim)
	}

	rl.EndDrawing()
}

func (a *App) drawStructurePanel() {
	e := a.catalog.At(a.Element)
	props := atom.Describe(e.Counts())

	x, y := 880, 110
	a.drawText(e.Label(), x, y, 24, ColTitle)
	a.drawText(fmt.Sprintf("Atomic Number: %d", props.AtomicNumber), x, y+50, 18, ColText)
	a.drawText(fmt.Sprintf("Mass Number: %d", props.MassNumber), x, y+80, 18, ColText)
	a.drawText(fmt.Sprintf("Electron Shells: %d", props.ShellCount), x, y+110, 18, ColText)

	y += 170
	for i, el := range a.catalog.Elements() {
		col := ColTextDim
		prefix := "  "
		if i == a.Element {
			col, prefix = ColTitle, "> "
		}
		a.drawText(prefix+el.Label(), x, y, 18, col)
		y += 28
	}
}

func (a *App) drawBuildPanel() {
	c := a.Build.Counts()
	x, y := 880, 110
	a.drawText("Your Atom", x, y, 24, ColTitle)
	a.drawText(fmt.Sprintf("Protons: %d", c.Protons), x, y+50, 18, ColText)
	a.drawText(fmt.Sprintf("Neutrons: %d", c.Neutrons), x, y+80, 18, ColText)
	a.drawText(fmt.Sprintf("Electrons: %d", c.Electrons), x, y+110, 18, ColText)
	a.drawText("Atom Name: "+a.Build.Name(a.catalog), x, y+160, 18, ColText)
	a.drawText("Charge: "+a.Build.Charge(), x, y+190, 18, ColText)
}

func (a *App) drawText(text string, x, y int, size int, color rl.Color) {
	rl.DrawTextEx(a.font, text, rl.NewVector2(float32(x), float32(y)), float32(size), 1, color)
}
