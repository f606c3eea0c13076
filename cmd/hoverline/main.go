// Package main provides the hoverline command line tool.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/arloliu/hoverline/config"
	"github.com/arloliu/hoverline/dataset"
	"github.com/arloliu/hoverline/errs"
	"github.com/arloliu/hoverline/format"
	"github.com/arloliu/hoverline/internal/viewer"
	"github.com/arloliu/hoverline/tooltip"
)

var (
	configPath    string
	logLevel      string
	logFile       string
	mergeName     string
	markerY       bool
	followMaxLine bool
	outputPath    string
	compression   string
	probeX        float64
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "hoverline",
		Short: "Inspect line chart datasets with a hover tooltip",
		Long: `hoverline plots CSV, XLSX and YAML datasets in the terminal and shows the
values of every series under the mouse pointer. Data files may be compressed
with zstd, s2 or lz4 (e.g. cpu.csv.zst).`,
		SilenceUsage: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&configPath, "config", "c", "", "YAML configuration file")
	flags.StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")
	flags.StringVar(&logFile, "log-file", "", "Write logs to this file instead of stderr")
	flags.StringVar(&mergeName, "merge", "", "Merge policy: left, right, nearest, interpolate (overrides config)")
	flags.BoolVar(&markerY, "marker-y", false, "Draw the horizontal crosshair")
	flags.BoolVar(&followMaxLine, "follow-max-line", false, "Pin the horizontal crosshair to the topmost value")

	rootCmd.AddCommand(newViewCmd(), newExportCmd(), newProbeCmd())

	return rootCmd
}

func newViewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "view [data file]",
		Short: "Show a dataset interactively",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, closeLog, err := setup(true)
			if err != nil {
				return err
			}
			defer closeLog()

			ds, err := dataset.Load(args[0])
			if err != nil {
				return err
			}

			m, err := viewer.New(ds, viewerConfig(cfg, logger))
			if err != nil {
				return err
			}

			logger.Info("starting viewer", "dataset", ds.Name, "series", len(ds.Series))
			_, err = tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion()).Run()

			return err
		},
	}
}

func newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export [data file]",
		Short: "Convert a dataset to compressed CSV",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, closeLog, err := setup(false)
			if err != nil {
				return err
			}
			defer closeLog()

			if compression != "" {
				cfg.Export.Compression = compression
			}
			ct, err := cfg.Compression()
			if err != nil {
				return err
			}

			ds, err := dataset.Load(args[0])
			if err != nil {
				return err
			}

			return export(cmd.OutOrStdout(), ds, ct, outputPath, logger)
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", `Output file path, "-" for stdout (default: <name>.csv<ext>)`)
	cmd.Flags().StringVar(&compression, "compression", "", "Compression: none, zstd, s2, lz4 (overrides config)")

	return cmd
}

func newProbeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "probe [data file]",
		Short: "Print the tooltip shown at a data x value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, closeLog, err := setup(false)
			if err != nil {
				return err
			}
			defer closeLog()

			ds, err := dataset.Load(args[0])
			if err != nil {
				return err
			}

			text, err := viewer.Probe(ds, probeX, viewerConfig(cfg, logger))
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), text)

			return err
		},
	}

	cmd.Flags().Float64Var(&probeX, "x", 0, "Data x value to hover")

	return cmd
}

func export(stdout io.Writer, ds *dataset.Dataset, ct format.CompressionType, path string, logger *slog.Logger) error {
	if path == "-" {
		return dataset.Export(stdout, ds.Series, ct)
	}
	if path == "" {
		path = dataset.ExportName(ds.Name, ct)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output: %w", err)
	}

	if err := dataset.Export(f, ds.Series, ct); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	logger.Info("dataset exported", "path", path, "compression", ct, "series", len(ds.Series))

	return nil
}

// setup loads the configuration, applies flag overrides and creates the
// logger. Interactive commands log nowhere unless a log file is given, since
// stderr shares the terminal with the UI.
func setup(interactive bool) (*config.File, *slog.Logger, func(), error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, nil, err
	}

	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if mergeName != "" {
		if _, ok := format.ParseMergeType(mergeName); !ok {
			return nil, nil, nil, fmt.Errorf("--merge: %w %q", errs.ErrUnknownMergePolicy, mergeName)
		}
		cfg.Tooltip.MergeFnc = mergeName
	}
	cfg.Tooltip.MarkerY = cfg.Tooltip.MarkerY || markerY
	cfg.Tooltip.FollowMaxLine = cfg.Tooltip.FollowMaxLine || followMaxLine

	level, err := cfg.Level()
	if err != nil {
		return nil, nil, nil, err
	}

	var (
		w        io.Writer = os.Stderr
		closeLog           = func() {}
	)
	switch {
	case logFile != "":
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		w = f
		closeLog = func() { _ = f.Close() }
	case interactive:
		w = io.Discard
	}

	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))

	return cfg, logger, closeLog, nil
}

func viewerConfig(cfg *config.File, logger *slog.Logger) viewer.Config {
	opts := cfg.Tooltip.Options()
	if cfg.Tooltip.Precision == nil {
		opts = append(opts, tooltip.WithFormatY(func(v float64) string {
			return strconv.FormatFloat(v, 'g', 6, 64)
		}))
	}

	return viewer.Config{
		Width:   cfg.View.Width,
		Height:  cfg.View.Height,
		FPS:     cfg.View.FPS,
		Options: opts,
		Logger:  logger,
	}
}
