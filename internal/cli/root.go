// Package cli wires the weightmap commands: one subcommand per data
// source, each launching the interactive treemap over the loaded tree.
package cli

import (
	"context"
	"fmt"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/lumipallolabs/weightmap/internal/config"
	"github.com/lumipallolabs/weightmap/internal/logging"
	"github.com/lumipallolabs/weightmap/internal/model"
	"github.com/lumipallolabs/weightmap/internal/scanner"
	"github.com/lumipallolabs/weightmap/internal/stats"
	"github.com/lumipallolabs/weightmap/internal/ui"
	"github.com/lumipallolabs/weightmap/internal/worldbank"
)

// Execute runs the weightmap CLI
func Execute() error {
	return newRootCmd().ExecuteContext(context.Background())
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "weightmap",
		Short:        "Weightmap renders weighted hierarchies as interactive treemaps",
		Long:         "Weightmap visualizes weighted hierarchies as treemaps in the terminal.\nEach leaf gets a rectangle proportional to its share of the total weight;\nclick or arrow-select a tile to inspect, delete or resize it.",
		SilenceUsage: true,
	}
	root.AddCommand(newFSCmd())
	root.AddCommand(newWorldCmd())
	return root
}

func newFSCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fs [path]",
		Short: "Visualize disk usage under a directory",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) == 1 {
				path = args[0]
			}
			abs, err := filepath.Abs(path)
			if err != nil {
				return err
			}

			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			walker := scanner.NewWalker(cfg.Scan.Workers)
			return runProgram(ui.Options{
				Title: abs,
				Load: func(ctx context.Context) (*model.Tree, error) {
					return walker.Scan(ctx, abs)
				},
				Scanner: walker,
				FSRoot:  abs,
				Format:  ui.FormatSize,
				Stats:   loadStats(),
			})
		},
	}
}

func newWorldCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "world",
		Short: "Visualize world population from the World Bank",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			client := worldbank.NewClient(cfg.WorldBank.BaseURL, cfg.WorldBank.Year)
			return runProgram(ui.Options{
				Title:  "world population",
				Load:   client.Load,
				Format: ui.FormatCount,
				Stats:  loadStats(),
			})
		},
	}
}

// loadStats loads persistent stats; a failed load starts from zero
func loadStats() *stats.Manager {
	m := stats.NewManager()
	if err := m.Load(); err != nil {
		logging.Debug.Debugf("failed to load stats: %v", err)
	}
	return m
}

func runProgram(opts ui.Options) error {
	p := tea.NewProgram(
		ui.NewApp(opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err := p.Run()
	return err
}
