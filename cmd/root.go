// Package cmd implements the graphview command line.
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/quantboard/graphview/app"
	"github.com/quantboard/graphview/config"
)

var (
	flagConfig  string
	flagDataset string
	flagDark    bool
	flagGap     float64
)

var rootCmd = &cobra.Command{
	Use:   "graphview",
	Short: "Interactive dependency graph for indicator and strategy records",
	Long: `graphview renders the dependency graph of a dashboard's indicator and
strategy records with a force-directed layout. Drag nodes to rearrange,
click to select; keys: D dark mode, L labels, I overlay, R reheat,
N add node, X delete selection, Space pause.`,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().StringVarP(&flagConfig, "config", "c", "", "path to YAML config file")
	rootCmd.Flags().StringVarP(&flagDataset, "dataset", "f", "", "path to YAML dataset (metrics/rules)")
	rootCmd.Flags().BoolVar(&flagDark, "dark", true, "start in dark mode")
	rootCmd.Flags().Float64Var(&flagGap, "gap", 0, "node gap override (pixels)")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg := config.Default()
	if flagConfig != "" {
		var err error
		if cfg, err = config.Load(flagConfig); err != nil {
			return err
		}
	}
	if cmd.Flags().Changed("dark") {
		cfg.Dark = flagDark
	}
	if flagGap > 0 {
		cfg.NodeGap = flagGap
	}
	if flagDataset != "" {
		cfg.Dataset = flagDataset
	}

	setupLogging(cfg.LogLevel)

	ds := config.Sample()
	if cfg.Dataset != "" {
		var err error
		if ds, err = config.LoadDataset(cfg.Dataset); err != nil {
			return err
		}
	}
	metrics, rules := ds.Records()

	state := app.NewSimulationState(metrics, rules,
		cfg.NodeGap, float64(cfg.WindowWidth), float64(cfg.WindowHeight), slog.Default())

	hooks := app.Hooks{
		OnSelect: func(id string) { slog.Debug("selection changed", "id", id) },
		OnEdit:   func(id string) { slog.Info("edit requested", "id", id) },
		OnDelete: func(id string) { slog.Info("delete requested", "id", id) },
	}
	game := app.NewGame(state, hooks, cfg.Dark)

	ebiten.SetWindowSize(cfg.WindowWidth, cfg.WindowHeight)
	ebiten.SetWindowTitle("graphview")
	ebiten.SetTPS(60)

	if err := ebiten.RunGame(game); err != nil {
		return fmt.Errorf("run viewer: %w", err)
	}
	return nil
}

func setupLogging(level string) {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn", "warning":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})
	slog.SetDefault(slog.New(handler))
}
