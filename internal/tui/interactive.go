package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/atomlab/internal/atom"
	"github.com/san-kum/atomlab/internal/config"
	"github.com/san-kum/atomlab/internal/lesson"
	"github.com/san-kum/atomlab/internal/logging"
	"github.com/san-kum/atomlab/internal/quiz"
	"github.com/san-kum/atomlab/internal/render"
	"github.com/san-kum/atomlab/internal/viz"
)

var (
	white  = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	dimmer = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	green  = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	red    = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	yellow = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
)

const barWidth = 16

type model struct {
	cfg     *config.Config
	log     logging.Logger
	catalog *atom.Catalog

	section lesson.Section
	element int

	build   *atom.Build
	presets []string
	preset  int

	quiz       *quiz.Session
	quizCursor int
	quizNote   string

	structure *render.Renderer
	builder   *render.Renderer

	structureDiagram string
	buildDiagram     string

	width  int
	height int
}

func newModel(cfg *config.Config, log logging.Logger) model {
	if log == nil {
		log = logging.NoOp{}
	}
	viz.SetTheme(cfg.Theme)

	catalog := atom.DefaultCatalog()
	element, err := catalog.Resolve(cfg.DefaultElement)
	if err != nil {
		log.Warnf("default element: %v", err)
		element = 0
	}

	q, _ := quiz.Get(0)
	m := model{
		cfg:     cfg,
		log:     log,
		catalog: catalog,
		section: lesson.Intro,
		element: element,
		build:   atom.NewBuild(),
		presets: config.ListPresets(),
		preset:  -1,
		quiz:    quiz.NewSession(q),
		width:   80,
		height:  24,
	}
	m.applyTheme()
	return m
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "tab":
		m.section = m.section.Next()
		return m, nil
	case "shift+tab":
		m.section = m.section.Prev()
		return m, nil
	case "1", "2", "3", "4":
		if s, ok := lesson.ParseSection(int(msg.String()[0] - '0')); ok {
			m.section = s
		}
		return m, nil
	case "t":
		viz.NextTheme()
		m.applyTheme()
		m.log.Debugf("theme %s", viz.CurrentTheme.Name)
		return m, nil
	}

	switch m.section {
	case lesson.Structure:
		return m.structureKey(msg)
	case lesson.Build:
		return m.buildKey(msg)
	case lesson.Quiz:
		return m.quizKey(msg)
	}
	return m, nil
}

func (m model) structureKey(msg tea.KeyMsg) (model, tea.Cmd) {
	n := m.catalog.Len()
	switch msg.String() {
	case "down", "j":
		m.element = (m.element + 1) % n
	case "up", "k":
		m.element = (m.element + n - 1) % n
	default:
		return m, nil
	}
	m.redrawStructure()
	return m, nil
}

func (m model) buildKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.String() {
	case "p":
		m.build.AddProton()
	case "n":
		m.build.AddNeutron()
	case "e":
		m.build.AddElectron()
	case "r":
		m.build.Reset()
		m.preset = -1
	case "l":
		m.preset = (m.preset + 1) % len(m.presets)
		c, _ := config.GetPreset(m.presets[m.preset])
		m.build = atom.FromCounts(c)
	default:
		return m, nil
	}
	m.redrawBuild()
	return m, nil
}

func (m model) quizKey(msg tea.KeyMsg) (model, tea.Cmd) {
	options := m.quiz.Question.Options
	switch msg.String() {
	case "down", "j":
		if m.quizCursor < len(options)-1 {
			m.quizCursor++
		}
	case "up", "k":
		if m.quizCursor > 0 {
			m.quizCursor--
		}
	case "enter", " ":
		if _, err := m.quiz.Submit(options[m.quizCursor]); err != nil {
			m.quizNote = err.Error()
		}
	}
	return m, nil
}

// applyTheme rebuilds both renderers with the current palette and redraws.
func (m *model) applyTheme() {
	palette := viz.CurrentTheme.Palette
	m.structure = render.New(m.cfg.StructureOptions(palette))
	m.builder = render.New(m.cfg.BuildOptions(palette))
	m.redrawStructure()
	m.redrawBuild()
}

func (m *model) redrawStructure() {
	m.structureDiagram = m.draw(m.structure, m.catalog.At(m.element).Counts())
}

func (m *model) redrawBuild() {
	m.buildDiagram = m.draw(m.builder, m.build.Counts())
}

func (m *model) draw(r *render.Renderer, c atom.Counts) string {
	canvas := viz.NewCanvas(m.cfg.Terminal.Cols, m.cfg.Terminal.Rows)
	r.Draw(viz.NewSurface(canvas), c)
	return canvas.Render()
}

func (m model) View() string {
	var b strings.Builder
	b.WriteString(m.viewHeader())
	b.WriteString("\n")
	b.WriteString(m.viewNav())
	b.WriteString("\n\n")

	switch m.section {
	case lesson.Intro:
		b.WriteString(m.viewIntro())
	case lesson.Structure:
		b.WriteString(m.viewStructure())
	case lesson.Build:
		b.WriteString(m.viewBuild())
	case lesson.Quiz:
		b.WriteString(m.viewQuiz())
	}

	b.WriteString("\n" + dimmer.Render(lesson.Footer) + "\n")
	return b.String()
}

func (m model) viewHeader() string {
	theme := viz.CurrentTheme
	title := viz.GradientText(lesson.Title, theme.Primary, theme.Secondary)
	return viz.HeaderStyle.Render(title+"  "+dim.Render(lesson.Subtitle)) + "\n"
}

func (m model) viewNav() string {
	active := lipgloss.NewStyle().Bold(true).Foreground(viz.CurrentTheme.Accent)
	parts := make([]string, len(lesson.Sections))
	for i, s := range lesson.Sections {
		label := fmt.Sprintf("%d %s", i+1, s.Title())
		if s == m.section {
			parts[i] = active.Render("[" + label + "]")
		} else {
			parts[i] = dim.Render(" " + label + " ")
		}
	}
	return strings.Join(parts, " ")
}

func (m model) viewHeading() string {
	heading := lipgloss.NewStyle().Bold(true).Foreground(viz.CurrentTheme.Primary)
	return heading.Render(m.section.Heading()) + "\n" + white.Render(m.section.Lead()) + "\n\n"
}

func (m model) viewIntro() string {
	var b strings.Builder
	b.WriteString(m.viewHeading())

	fact := lesson.DidYouKnow.Heading + "\n" + lesson.DidYouKnow.Body
	b.WriteString(viz.GlassPanel.Width(min(m.width-4, 72)).Render(fact))
	b.WriteString("\n\n")

	b.WriteString(white.Render("The three main components of an atom are:") + "\n")
	for _, c := range lesson.Components {
		b.WriteString(fmt.Sprintf("  • %s: %s\n", viz.MetricValue.Render(c.Name), c.Description))
	}
	b.WriteString("\n" + dim.Render(lesson.IntroOutro) + "\n")
	b.WriteString("\n" + viz.KeyHint.Render("tab/1-4 section  t theme  q quit") + "\n")
	return b.String()
}

func (m model) viewStructure() string {
	var b strings.Builder
	b.WriteString(m.viewHeading())

	e := m.catalog.At(m.element)
	props := atom.Describe(e.Counts())
	shells := atom.Partition(e.Electrons)

	var info strings.Builder
	info.WriteString(viz.MetricLabel.Render("Atomic Number") + viz.MetricValue.Render(fmt.Sprint(props.AtomicNumber)) + "\n")
	info.WriteString(viz.MetricLabel.Render("Mass Number") + viz.MetricValue.Render(fmt.Sprint(props.MassNumber)) + "\n")
	info.WriteString(viz.MetricLabel.Render("Electron Shells") + viz.MetricValue.Render(fmt.Sprint(props.ShellCount)) + "\n")
	info.WriteString(viz.MetricLabel.Render("Charge") + viz.MetricValue.Render(props.ChargeLabel()) + "\n\n")
	for i, capacity := range atom.ShellCapacities {
		n := 0
		if i < len(shells) {
			n = shells[i].Electrons
		}
		info.WriteString(fmt.Sprintf("%s %s %d/%d\n",
			dim.Render(fmt.Sprintf("shell %d", i+1)),
			viz.ProgressBar(float64(n)/float64(capacity), barWidth),
			n, capacity))
	}

	picker := m.viewPicker()
	box := viz.BoxWithTitle(e.Label(), info.String(), 36)
	side := lipgloss.JoinVertical(lipgloss.Left, box, "", picker)

	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.structureDiagram, "  ", side))
	b.WriteString("\n\n" + viz.KeyHint.Render("j/k element  tab section  t theme  q quit") + "\n")
	return b.String()
}

func (m model) viewPicker() string {
	var b strings.Builder
	cursor := lipgloss.NewStyle().Foreground(viz.CurrentTheme.Accent)
	for i, e := range m.catalog.Elements() {
		if i == m.element {
			b.WriteString(cursor.Render("▸ "+e.Label()) + "\n")
		} else {
			b.WriteString(dim.Render("  "+e.Label()) + "\n")
		}
	}
	return b.String()
}

func (m model) viewBuild() string {
	var b strings.Builder
	b.WriteString(m.viewHeading())

	c := m.build.Counts()
	var info strings.Builder
	info.WriteString(viz.MetricLabel.Render("Protons") + viz.MetricValue.Render(fmt.Sprint(c.Protons)) + "\n")
	info.WriteString(viz.MetricLabel.Render("Neutrons") + viz.MetricValue.Render(fmt.Sprint(c.Neutrons)) + "\n")
	info.WriteString(viz.MetricLabel.Render("Electrons") + viz.MetricValue.Render(fmt.Sprint(c.Electrons)) + "\n\n")
	info.WriteString(viz.MetricLabel.Render("Atom Name") + white.Render(m.build.Name(m.catalog)) + "\n")
	info.WriteString(viz.MetricLabel.Render("Charge") + white.Render(m.build.Charge()) + "\n")
	if c.Electrons > atom.MaxElectrons {
		info.WriteString("\n" + yellow.Render(fmt.Sprintf("only %d electrons fit in 3 shells", atom.MaxElectrons)) + "\n")
	}
	if m.preset >= 0 {
		info.WriteString("\n" + dim.Render("preset "+m.presets[m.preset]) + "\n")
	}

	box := viz.BoxWithTitle("Your Atom", info.String(), 36)
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.buildDiagram, "  ", box))
	b.WriteString("\n\n" + viz.KeyHint.Render("p proton  n neutron  e electron  r reset  l preset  q quit") + "\n")
	return b.String()
}

func (m model) viewQuiz() string {
	var b strings.Builder
	b.WriteString(m.viewHeading())

	q := m.quiz.Question
	b.WriteString(white.Bold(true).Render(q.Prompt) + "\n\n")
	for i, o := range q.Options {
		pointer := "  "
		if i == m.quizCursor {
			pointer = "▸ "
		}
		line := pointer + o
		switch m.quiz.Mark(o) {
		case quiz.Correct:
			b.WriteString(green.Render(line+"  ✓") + "\n")
		case quiz.Incorrect:
			b.WriteString(red.Render(line+"  ✗") + "\n")
		default:
			if i == m.quizCursor {
				b.WriteString(white.Render(line) + "\n")
			} else {
				b.WriteString(dim.Render(line) + "\n")
			}
		}
	}

	if m.quiz.Answered() {
		style := red
		if m.quiz.IsCorrect() {
			style = green
		}
		b.WriteString("\n" + dim.Render("You answered: "+m.quiz.Selected()) + "\n")
		b.WriteString(viz.GlassPanel.Render(style.Render(m.quiz.Feedback())) + "\n")
	}
	if m.quizNote != "" {
		b.WriteString(dimmer.Render(m.quizNote) + "\n")
	}
	b.WriteString("\n" + viz.KeyHint.Render("j/k move  enter submit  tab section  q quit") + "\n")
	return b.String()
}

func RunInteractive(cfg *config.Config, log logging.Logger) error {
	p := tea.NewProgram(newModel(cfg, log), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
