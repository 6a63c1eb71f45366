// Package main provides the CLI entry point for omplot.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/ukaji3/omplot-go/internal/config"
	"github.com/ukaji3/omplot-go/pkg/omplot"
	"github.com/ukaji3/omplot-go/pkg/omplot/output"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	configPath string
	inputPath  string
	outputDir  string
	backend    string
	dpi        int
	verbose    bool
	pretty     bool
	xlsxPath   string

	cfg    *config.Config
	logger *zap.Logger
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "omplot",
		Short: "Plot OpenModelica simulation results",
		Long: `omplot reads an OpenModelica result file (MATLAB level-4 .mat) and renders
the gas turbine trend report: load, net power, efficiency, fuel flow and
exhaust temperature charts plus a turbine/compressor/net power comparison.

Run without arguments to read ../results/BraytonCycle_Dynamic_res.mat and
write the charts to ../plots.`,
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		PersistentPreRunE: setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
		RunE: runReport,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "Config file (default: ./omplot.yaml when present)")
	flags.StringVarP(&inputPath, "input", "i", "", "Result file path (default: "+omplot.DefaultInputPath+")")
	flags.StringVarP(&outputDir, "output-dir", "o", "", "Output directory (default: "+omplot.DefaultOutputDir+")")
	flags.StringVar(&backend, "backend", "", "Render backend: gonum or gochart")
	flags.IntVar(&dpi, "dpi", 0, "Output resolution (default: 300)")
	flags.BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	infoCmd := &cobra.Command{
		Use:   "info",
		Short: "Print variable statistics of a result file as JSON",
		Args:  cobra.NoArgs,
		RunE:  runInfo,
	}
	infoCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Write the report series and charts to an Excel workbook",
		Args:  cobra.NoArgs,
		RunE:  runExport,
	}
	exportCmd.Flags().StringVar(&xlsxPath, "xlsx", "", "Workbook path (default: <output-dir>/Report.xlsx)")

	rootCmd.AddCommand(infoCmd, exportCmd)
	return rootCmd
}

// setup resolves the configuration and builds the logger.
func setup(cmd *cobra.Command, args []string) error {
	c, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if inputPath != "" {
		c.Input = inputPath
	}
	if outputDir != "" {
		c.OutputDir = outputDir
	}
	if backend != "" {
		c.Render.Backend = backend
	}
	if dpi != 0 {
		c.Render.DPI = dpi
	}
	if verbose {
		c.Logging.Level = "debug"
	}
	if err := c.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	cfg = c

	logger, err = newLogger(c.Logging.Level)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	return nil
}

func newLogger(level string) (*zap.Logger, error) {
	lvl := zapcore.InfoLevel
	if level != "" {
		parsed, err := zapcore.ParseLevel(strings.ToLower(level))
		if err != nil {
			return nil, err
		}
		lvl = parsed
	}

	zc := zap.NewProductionConfig()
	zc.Encoding = "console"
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zc.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	zc.DisableStacktrace = true
	zc.Level = zap.NewAtomicLevelAt(lvl)
	return zc.Build()
}

func options() (omplot.Options, error) {
	opts, err := cfg.Options()
	if err != nil {
		return opts, err
	}
	opts.Logger = logger
	return opts, nil
}

func runReport(cmd *cobra.Command, args []string) error {
	opts, err := options()
	if err != nil {
		return err
	}

	logger.Info("loading simulation results", zap.String("file", cfg.Input))
	data, err := omplot.Load(cfg.Input, opts)
	if err != nil {
		return fmt.Errorf("loading results failed: %w", err)
	}

	written, err := omplot.Render(data, opts)
	if err != nil {
		return fmt.Errorf("rendering failed: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "All %d plots created in %s\n", len(written), cfg.OutputDir)
	return nil
}

func runInfo(cmd *cobra.Command, args []string) error {
	opts, err := options()
	if err != nil {
		return err
	}

	data, err := omplot.Load(cfg.Input, opts)
	if err != nil {
		return fmt.Errorf("loading results failed: %w", err)
	}

	jsonData, err := output.ToJSON(omplot.Summarize(data), pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(jsonData))
	return nil
}

func runExport(cmd *cobra.Command, args []string) error {
	opts, err := options()
	if err != nil {
		return err
	}

	data, err := omplot.Load(cfg.Input, opts)
	if err != nil {
		return fmt.Errorf("loading results failed: %w", err)
	}
	report, err := omplot.BuildReport(data)
	if err != nil {
		return err
	}

	path := xlsxPath
	if path == "" {
		path = filepath.Join(cfg.OutputDir, "Report.xlsx")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return &omplot.IOError{Op: "create", Path: filepath.Dir(path), Err: err}
	}
	if err := output.WriteWorkbook(path, report); err != nil {
		return &omplot.IOError{Op: "write", Path: path, Err: err}
	}

	logger.Info("created workbook", zap.String("file", path))
	fmt.Fprintf(cmd.OutOrStdout(), "Workbook written to %s\n", path)
	return nil
}
