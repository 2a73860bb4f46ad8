package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/atomlab/internal/render"
	"github.com/san-kum/atomlab/internal/viz"
)

const (
	DefaultTheme      = "classic"
	DefaultLogLevel   = "info"
	DefaultDataDir    = ".atomlab"
	DefaultElement    = "hydrogen"
	DefaultCols       = 64
	DefaultRows       = 22
	DefaultScale      = 1.0
	DefaultFrameDelay = 150

	OffsetsUniform   = "uniform"
	OffsetsStaggered = "staggered"
)

var ErrInvalidConfig = errors.New("config: invalid configuration")

type Config struct {
	Theme          string         `yaml:"theme"`
	LogLevel       string         `yaml:"log_level"`
	DataDir        string         `yaml:"data_dir"`
	DefaultElement string         `yaml:"default_element"`
	BuildOffsets   string         `yaml:"build_offsets"`
	Hint           string         `yaml:"hint"`
	Terminal       TerminalConfig `yaml:"terminal"`
	Export         ExportConfig   `yaml:"export"`
}

type TerminalConfig struct {
	Cols int `yaml:"cols"`
	Rows int `yaml:"rows"`
}

type ExportConfig struct {
	Scale      float64 `yaml:"scale"`
	FrameDelay int     `yaml:"frame_delay"`
}

func DefaultConfig() *Config {
	return &Config{
		Theme:          DefaultTheme,
		LogLevel:       DefaultLogLevel,
		DataDir:        DefaultDataDir,
		DefaultElement: DefaultElement,
		BuildOffsets:   OffsetsUniform,
		Hint:           render.DefaultHint,
		Terminal: TerminalConfig{
			Cols: DefaultCols,
			Rows: DefaultRows,
		},
		Export: ExportConfig{
			Scale:      DefaultScale,
			FrameDelay: DefaultFrameDelay,
		},
	}
}

// Load overlays the file at path on the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Encode writes cfg as YAML.
func Encode(w io.Writer, cfg *Config) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return err
	}
	return enc.Close()
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	switch {
	case !viz.HasTheme(c.Theme):
		return fmt.Errorf("%w: theme %q (available: %s)", ErrInvalidConfig, c.Theme, strings.Join(viz.ThemeNames(), ", "))
	case c.Terminal.Cols <= 0 || c.Terminal.Rows <= 0:
		return fmt.Errorf("%w: terminal size %dx%d", ErrInvalidConfig, c.Terminal.Cols, c.Terminal.Rows)
	case c.Export.Scale <= 0:
		return fmt.Errorf("%w: export scale %v", ErrInvalidConfig, c.Export.Scale)
	case c.Export.FrameDelay < 0:
		return fmt.Errorf("%w: frame delay %d", ErrInvalidConfig, c.Export.FrameDelay)
	case c.BuildOffsets != OffsetsUniform && c.BuildOffsets != OffsetsStaggered:
		return fmt.Errorf("%w: build_offsets %q (want %s or %s)", ErrInvalidConfig, c.BuildOffsets, OffsetsUniform, OffsetsStaggered)
	}
	return nil
}

// StructureOptions returns renderer options for the element view.
func (c *Config) StructureOptions(p render.Palette) render.Options {
	opts := render.StructureOptions()
	opts.Palette = p
	return opts
}

// BuildOptions returns renderer options for the build view, honouring the
// configured offset policy and hint.
func (c *Config) BuildOptions(p render.Palette) render.Options {
	opts := render.BuildOptions()
	opts.Palette = p
	if c.BuildOffsets == OffsetsStaggered {
		opts.Offsets = render.StaggeredOffsets
	}
	if c.Hint != "" {
		opts.Hint = c.Hint
	}
	return opts
}
