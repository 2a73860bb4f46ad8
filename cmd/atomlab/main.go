package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/atomlab/internal/atom"
	"github.com/san-kum/atomlab/internal/config"
	"github.com/san-kum/atomlab/internal/export"
	"github.com/san-kum/atomlab/internal/gui"
	"github.com/san-kum/atomlab/internal/lesson"
	"github.com/san-kum/atomlab/internal/logging"
	"github.com/san-kum/atomlab/internal/quiz"
	"github.com/san-kum/atomlab/internal/render"
	"github.com/san-kum/atomlab/internal/storage"
	"github.com/san-kum/atomlab/internal/tui"
	"github.com/san-kum/atomlab/internal/viz"
	"github.com/spf13/cobra"
)

var (
	configFile string
	dataDir    string
	logLevel   string

	protons   int
	neutrons  int
	electrons int
	preset    string

	format  string
	outFile string
	trace   bool
	asJSON  bool

	answer   string
	question int

	writePath string

	cfg    *config.Config
	logger logging.Logger = logging.NoOp{}
)

func main() {
	rootCmd := &cobra.Command{
		Use:               "atomlab",
		Short:             "atomic structure explorer",
		SilenceUsage:      true,
		PersistentPreRunE: setup,
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.RunInteractive(cfg, logger)
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", config.DefaultDataDir, "data directory")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "debug, info, warn or error")

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "interactive terminal lesson",
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.RunInteractive(cfg, logger)
		},
	}

	guiCmd := &cobra.Command{
		Use:   "gui [element]",
		Short: "open the atom viewer window",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return gui.Run(cfg, logger, argOr(args, ""))
		},
	}

	elementsCmd := &cobra.Command{
		Use:   "elements",
		Short: "list the element catalog",
		RunE:  listElements,
	}

	showCmd := &cobra.Command{
		Use:   "show [element]",
		Short: "draw an element and its properties",
		Args:  cobra.MaximumNArgs(1),
		RunE:  showElement,
	}
	showCmd.Flags().BoolVar(&trace, "trace", false, "print the draw commands instead of the diagram")

	buildCmd := &cobra.Command{
		Use:   "build",
		Short: "build an atom from particle counts",
		RunE:  buildAtom,
	}
	addCountFlags(buildCmd)

	exportCmd := &cobra.Command{
		Use:   "export [element]",
		Short: "export a diagram as svg, png or gif",
		Long:  "Export a diagram. The gif format cycles through the whole catalog.",
		Args:  cobra.MaximumNArgs(1),
		RunE:  exportDiagram,
	}
	exportCmd.Flags().StringVar(&format, "format", "svg", "svg, png or gif")
	exportCmd.Flags().StringVarP(&outFile, "out", "o", "", "also write the diagram to this path")
	exportCmd.Flags().StringVar(&preset, "preset", "", "export a build preset instead of an element")

	exportsCmd := &cobra.Command{
		Use:   "exports",
		Short: "list recorded exports",
		RunE:  listExports,
	}
	exportsCmd.Flags().BoolVar(&asJSON, "json", false, "print as JSON")

	chartCmd := &cobra.Command{
		Use:   "chart",
		Short: "plot atomic and mass numbers across the catalog",
		RunE:  chartCatalog,
	}

	quizCmd := &cobra.Command{
		Use:   "quiz",
		Short: "ask a quiz question and check an answer",
		RunE:  runQuiz,
	}
	quizCmd.Flags().StringVar(&answer, "answer", "", "option text or number")
	quizCmd.Flags().IntVar(&question, "question", 1, "question number")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list build presets",
		RunE:  listPresets,
	}

	introCmd := &cobra.Command{
		Use:   "intro",
		Short: "print the introduction",
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeIntro(cmd.OutOrStdout())
		},
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "print the effective config or write it to a file",
		RunE:  showConfig,
	}
	configCmd.Flags().StringVar(&writePath, "write", "", "save the effective config to this path")

	rootCmd.AddCommand(tuiCmd, guiCmd, elementsCmd, showCmd, buildCmd, exportCmd, exportsCmd, chartCmd, quizCmd, presetsCmd, introCmd, configCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addCountFlags(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&protons, "protons", "p", 0, "number of protons")
	cmd.Flags().IntVarP(&neutrons, "neutrons", "n", 0, "number of neutrons")
	cmd.Flags().IntVarP(&electrons, "electrons", "e", 0, "number of electrons")
	cmd.Flags().StringVar(&preset, "preset", "", "start from a named preset")
}

func setup(cmd *cobra.Command, args []string) error {
	loaded := config.DefaultConfig()
	if configFile != "" {
		var err error
		if loaded, err = config.Load(configFile); err != nil {
			return err
		}
	}
	if cmd.Flags().Changed("data") || configFile == "" {
		loaded.DataDir = dataDir
	}
	if logLevel != "" {
		loaded.LogLevel = logLevel
	}

	cfg = loaded
	logger = logging.New(os.Stderr, cfg.LogLevel)
	viz.SetTheme(cfg.Theme)
	logger.Debugf("config loaded (theme %s, data %s)", cfg.Theme, cfg.DataDir)
	return nil
}

func argOr(args []string, def string) string {
	if len(args) > 0 {
		return args[0]
	}
	return def
}

func lookupElement(args []string) (atom.Element, error) {
	return atom.DefaultCatalog().Lookup(argOr(args, cfg.DefaultElement))
}

func palette() render.Palette {
	return viz.CurrentTheme.Palette
}

// resolveCounts applies a preset first and lets explicit flags override it.
func resolveCounts(cmd *cobra.Command) (atom.Counts, error) {
	var c atom.Counts
	if preset != "" {
		p, ok := config.GetPreset(preset)
		if !ok {
			return c, fmt.Errorf("unknown preset: %s (available: %s)", preset, strings.Join(config.ListPresets(), ", "))
		}
		c = p
	}
	if cmd.Flags().Changed("protons") {
		c.Protons = protons
	}
	if cmd.Flags().Changed("neutrons") {
		c.Neutrons = neutrons
	}
	if cmd.Flags().Changed("electrons") {
		c.Electrons = electrons
	}
	return atom.FromCounts(c).Counts(), nil
}

func diagram(r *render.Renderer, c atom.Counts) string {
	canvas := viz.NewCanvas(cfg.Terminal.Cols, cfg.Terminal.Rows)
	r.Draw(viz.NewSurface(canvas), c)
	return canvas.Render()
}

func listElements(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tSYMBOL\tPROTONS\tNEUTRONS\tELECTRONS\tMASS\tSHELLS")
	for _, e := range atom.DefaultCatalog().Elements() {
		p := atom.Describe(e.Counts())
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%d\t%d\t%d\n",
			e.ID, e.Name, e.Symbol, e.Protons, e.Neutrons, e.Electrons, p.MassNumber, p.ShellCount)
	}
	return w.Flush()
}

func showElement(cmd *cobra.Command, args []string) error {
	e, err := lookupElement(args)
	if err != nil {
		return err
	}
	r := render.New(cfg.StructureOptions(palette()))
	out := cmd.OutOrStdout()

	if trace {
		rec := render.NewRecorder()
		r.Draw(rec, e.Counts())
		_, err := rec.WriteTo(out)
		return err
	}

	p := atom.Describe(e.Counts())
	fmt.Fprintln(out, diagram(r, e.Counts()))
	fmt.Fprintln(out, viz.HeaderStyle.Render(e.Label()))
	fmt.Fprintf(out, "%s%d\n", viz.MetricLabel.Render("atomic number"), p.AtomicNumber)
	fmt.Fprintf(out, "%s%d\n", viz.MetricLabel.Render("mass number"), p.MassNumber)
	fmt.Fprintf(out, "%s%d\n", viz.MetricLabel.Render("shells"), p.ShellCount)
	fmt.Fprintf(out, "%s%s\n", viz.MetricLabel.Render("charge"), p.ChargeLabel())
	return nil
}

func buildAtom(cmd *cobra.Command, args []string) error {
	c, err := resolveCounts(cmd)
	if err != nil {
		return err
	}
	b := atom.FromCounts(c)
	r := render.New(cfg.BuildOptions(palette()))
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, diagram(r, c))
	fmt.Fprintf(out, "%s%s\n", viz.MetricLabel.Render("counts"), c)
	fmt.Fprintf(out, "%s%s\n", viz.MetricLabel.Render("atom name"), b.Name(atom.DefaultCatalog()))
	fmt.Fprintf(out, "%s%s\n", viz.MetricLabel.Render("charge"), b.Charge())
	if c.Electrons > atom.MaxElectrons {
		logger.Warnf("%d electrons drawn, %d do not fit in three shells", atom.MaxElectrons, c.Electrons-atom.MaxElectrons)
	}
	return nil
}

func exportOptions() export.Options {
	opts := export.DefaultOptions()
	opts.Scale = cfg.Export.Scale
	opts.FrameDelay = cfg.Export.FrameDelay
	return opts
}

// renderExport encodes the diagram for c in format f. GIF ignores c and cycles
// the catalog.
func renderExport(f export.Format, c atom.Counts, r *render.Renderer, opts export.Options) ([]byte, error) {
	var buf bytes.Buffer
	switch f {
	case export.FormatSVG:
		s := export.NewSVG(opts)
		r.Draw(s, c)
		if _, err := s.WriteTo(&buf); err != nil {
			return nil, err
		}
	case export.FormatPNG:
		p, err := export.NewPNG(opts)
		if err != nil {
			return nil, err
		}
		r.Draw(p, c)
		if err := p.Encode(&buf); err != nil {
			return nil, err
		}
	case export.FormatGIF:
		slides := export.CatalogSlides(atom.DefaultCatalog())
		if err := export.EncodeGIF(&buf, r, slides, opts); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("export: unsupported format %q", f)
	}
	return buf.Bytes(), nil
}

func exportDiagram(cmd *cobra.Command, args []string) error {
	f, err := export.ParseFormat(format)
	if err != nil {
		return err
	}
	if f == export.FormatGIF && (preset != "" || len(args) > 0) {
		return fmt.Errorf("export: gif always cycles the catalog; drop the element and --preset")
	}

	var (
		subject string
		counts  atom.Counts
		r       *render.Renderer
	)
	switch {
	case f == export.FormatGIF:
		subject = "catalog"
		r = render.New(cfg.StructureOptions(palette()))
	case preset != "":
		if counts, err = resolveCounts(cmd); err != nil {
			return err
		}
		subject = preset
		r = render.New(cfg.BuildOptions(palette()))
	default:
		e, err := lookupElement(args)
		if err != nil {
			return err
		}
		subject, counts = e.Name, e.Counts()
		r = render.New(cfg.StructureOptions(palette()))
	}

	data, err := renderExport(f, counts, r, exportOptions())
	if err != nil {
		return err
	}

	st := storage.New(cfg.DataDir).WithLogger(logger)
	if err := st.Init(); err != nil {
		return fmt.Errorf("init store: %w", err)
	}
	id, err := st.Save(subject, string(f), counts, data)
	if err != nil {
		return fmt.Errorf("save export: %w", err)
	}

	if outFile != "" {
		if err := os.WriteFile(outFile, data, 0644); err != nil {
			return fmt.Errorf("write %s: %w", outFile, err)
		}
		logger.Infof("wrote %s", outFile)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "export: %s (%d bytes)\n", id, len(data))
	return nil
}

func listExports(cmd *cobra.Command, args []string) error {
	st := storage.New(cfg.DataDir).WithLogger(logger)
	exports, err := st.List()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	if asJSON {
		return storage.ExportJSON(out, exports)
	}
	if len(exports) == 0 {
		fmt.Fprintln(out, "no exports found")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSUBJECT\tFORMAT\tTIME\tBYTES\tPATH")
	for i := range exports {
		e := &exports[i]
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%s\n",
			e.ID,
			e.Subject,
			e.Format,
			e.Timestamp.Format("2006-01-02 15:04:05"),
			e.Bytes,
			st.Path(e),
		)
	}
	return w.Flush()
}

func chartCatalog(cmd *cobra.Command, args []string) error {
	elements := atom.DefaultCatalog().Elements()
	atomic := make([]float64, len(elements))
	mass := make([]float64, len(elements))
	symbols := make([]string, len(elements))
	for i, e := range elements {
		p := atom.Describe(e.Counts())
		atomic[i] = float64(p.AtomicNumber)
		mass[i] = float64(p.MassNumber)
		symbols[i] = e.Symbol
	}

	graph := asciigraph.PlotMany([][]float64{atomic, mass},
		asciigraph.Height(12),
		asciigraph.Width(60),
		asciigraph.SeriesColors(asciigraph.Red, asciigraph.Blue),
		asciigraph.Caption("atomic number (red) and mass number (blue): "+strings.Join(symbols, " ")),
	)
	fmt.Fprintln(cmd.OutOrStdout(), graph)
	return nil
}

func runQuiz(cmd *cobra.Command, args []string) error {
	q, err := quiz.Get(question - 1)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, q.Prompt)
	for i, o := range q.Options {
		fmt.Fprintf(out, "  %d. %s\n", i+1, o)
	}
	if answer == "" {
		fmt.Fprintln(out, viz.KeyHint.Render("answer with --answer <option or number>"))
		return nil
	}

	s := quiz.NewSession(q)
	if _, err := s.Submit(answer); err != nil {
		return err
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, s.Feedback())
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	catalog := atom.DefaultCatalog()
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PRESET\tPROTONS\tNEUTRONS\tELECTRONS\tNAME\tCHARGE")
	for _, name := range config.ListPresets() {
		c, _ := config.GetPreset(name)
		b := atom.FromCounts(c)
		fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%s\t%s\n", name, c.Protons, c.Neutrons, c.Electrons, b.Name(catalog), b.Charge())
	}
	return w.Flush()
}

func showConfig(cmd *cobra.Command, args []string) error {
	if writePath == "" {
		return config.Encode(cmd.OutOrStdout(), cfg)
	}
	if err := config.Save(writePath, cfg); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "config: %s\n", writePath)
	return nil
}

func writeIntro(w io.Writer) error {
	var b strings.Builder
	b.WriteString(lesson.Title + "\n" + lesson.Subtitle + "\n\n")
	b.WriteString(lesson.Intro.Heading() + "\n" + lesson.Intro.Lead() + "\n\n")
	b.WriteString(lesson.DidYouKnow.Heading + " " + lesson.DidYouKnow.Body + "\n\n")
	b.WriteString("The three main components of an atom are:\n")
	for _, c := range lesson.Components {
		b.WriteString(fmt.Sprintf("  - %s: %s\n", c.Name, c.Description))
	}
	b.WriteString("\n" + lesson.IntroOutro + "\n")
	_, err := io.WriteString(w, b.String())
	return err
}
