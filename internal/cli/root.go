package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	cfgpkg "edakit/internal/config"
	"edakit/pkg/analysis"
	"edakit/pkg/data"
)

var (
	// Global flags
	cfgFile    string
	debug      bool
	flagOutDir string
	flagFormat string
	flagStrict bool

	// Loaded configuration
	cfg    *cfgpkg.Global
	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "edakit",
	Short: "edakit: descriptive statistics and plots for CSV datasets",
	Long: `edakit loads a CSV file into typed columns, prints descriptive statistics
of its numeric columns and renders scatter and pair plots to image files.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

// Execute is the entry point called by main.main()
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "✗ Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.edakit/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&flagOutDir, "out-dir", "", "directory for rendered figures (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagFormat, "format", "", "figure format: png, svg, pdf, jpg (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&flagStrict, "strict", false, "fail on unparseable numeric or date cells (overrides config)")
}

func setup(cmd *cobra.Command, _ []string) error {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		return err
	}
	cfg = c

	// Apply CLI overrides if provided
	f := cmd.Flags()
	if f.Changed("out-dir") {
		cfg.OutputDir = flagOutDir
	}
	if f.Changed("format") {
		cfg.Format = flagFormat
	}
	if f.Changed("strict") {
		cfg.Strict = flagStrict
	}
	logger.Debug("configuration loaded", "output_dir", cfg.OutputDir, "format", cfg.Format, "strict", cfg.Strict)
	return nil
}

// open loads the dataset at path and wraps it in an Analysis configured from cfg.
func open(path string) (*data.Dataset, *analysis.Analysis, error) {
	ds, err := data.Load(path, cfg.LoadOptions(logger)...)
	if err != nil {
		return nil, nil, err
	}
	return ds, analysis.New(ds, cfg.AnalysisOptions(logger)...), nil
}

// show renders the pending figures and reports where they went.
func show(out io.Writer, a *analysis.Analysis) error {
	pending := a.PendingCount()
	if err := a.Show(); err != nil {
		return err
	}
	fmt.Fprintf(out, "✓ Rendered %d figure(s) to %s\n", pending, cfg.OutputDir)
	return nil
}
