package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gonum.org/v1/plot/vg"
	"gopkg.in/yaml.v3"

	"edakit/pkg/analysis"
	"edakit/pkg/data"
)

// Global configuration structure.
type Global struct {
	// Loading
	MissingTokens   []string `mapstructure:"missing_tokens" yaml:"missing_tokens"`
	DateLayouts     []string `mapstructure:"date_layouts" yaml:"date_layouts"`
	InferSampleSize int      `mapstructure:"infer_sample_size" yaml:"infer_sample_size"`
	Strict          bool     `mapstructure:"strict" yaml:"strict"`
	TypeRow         bool     `mapstructure:"type_row" yaml:"type_row"`

	// Figures
	OutputDir      string  `mapstructure:"output_dir" yaml:"output_dir"`
	Format         string  `mapstructure:"format" yaml:"format"`
	FigureWidthIn  float64 `mapstructure:"figure_width_in" yaml:"figure_width_in"`
	FigureHeightIn float64 `mapstructure:"figure_height_in" yaml:"figure_height_in"`
	PairCellIn     float64 `mapstructure:"pair_cell_in" yaml:"pair_cell_in"`
	HistBins       int     `mapstructure:"hist_bins" yaml:"hist_bins"`
	DropMissing    bool    `mapstructure:"drop_missing" yaml:"drop_missing"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("missing_tokens", data.DefaultMissingTokens)
	v.SetDefault("date_layouts", data.DefaultDateLayouts)
	v.SetDefault("infer_sample_size", data.DefaultSampleSize)
	v.SetDefault("strict", false)
	v.SetDefault("type_row", true)
	v.SetDefault("output_dir", "figures")
	v.SetDefault("format", "png")
	v.SetDefault("figure_width_in", 6.0)
	v.SetDefault("figure_height_in", 4.0)
	v.SetDefault("pair_cell_in", 3.0)
	v.SetDefault("hist_bins", 10)
	v.SetDefault("drop_missing", false)
}

// DefaultPath returns ~/.edakit/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, ".edakit", "config.yaml"), nil
}

// Load loads configuration from file, env, and defaults.
// Precedence: env > config file > defaults. A missing config file is not an
// error; a malformed one is.
func Load(cfgFile string) (*Global, error) {
	v := viper.New()
	v.SetEnvPrefix("EDAKIT")
	v.AutomaticEnv()
	setDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	} else if path, err := DefaultPath(); err == nil {
		v.AddConfigPath(filepath.Dir(path))
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		// optional read
		_ = v.ReadInConfig()
	}

	var c Global
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &c, nil
}

// Save writes c as yaml to path, creating the directory if necessary.
func Save(c *Global, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// LoadOptions maps the configuration onto loader options.
func (c *Global) LoadOptions(logger *slog.Logger) []data.Option {
	return []data.Option{
		data.WithMissingTokens(c.MissingTokens...),
		data.WithDateLayouts(c.DateLayouts...),
		data.WithSampleSize(c.InferSampleSize),
		data.WithStrict(c.Strict),
		data.WithTypeRow(c.TypeRow),
		data.WithLogger(logger),
	}
}

// AnalysisOptions maps the configuration onto analysis options, rendering
// figures to files in OutputDir.
func (c *Global) AnalysisOptions(logger *slog.Logger) []analysis.Option {
	return []analysis.Option{
		analysis.WithRenderer(&analysis.FileRenderer{Dir: c.OutputDir, Format: c.Format}),
		analysis.WithLogger(logger),
		analysis.WithDropMissing(c.DropMissing),
		analysis.WithFigureSize(vg.Length(c.FigureWidthIn)*vg.Inch, vg.Length(c.FigureHeightIn)*vg.Inch),
		analysis.WithPairCell(vg.Length(c.PairCellIn) * vg.Inch),
		analysis.WithHistBins(c.HistBins),
	}
}
