package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/otifyhq/console/internal/cmd"
	"github.com/otifyhq/console/internal/config"
	"github.com/otifyhq/console/internal/dashboard"
	"github.com/otifyhq/console/internal/logging"
	"github.com/otifyhq/console/internal/snapshot"
	"github.com/otifyhq/console/internal/store"
	"github.com/otifyhq/console/internal/ui"
)

func main() {
	var dataPath string

	root := &cobra.Command{
		Use:   "otify",
		Short: "Otify - hospital admin console",
		Long:  "Otify console: manage services, hospitals, doctors, departments, users and packages.",
		RunE: func(_ *cobra.Command, _ []string) error {
			return runTUI(dataPath)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.Flags().StringVar(&dataPath, "data", "", "snapshot file to load on start")

	root.AddCommand(cmd.SchemaCmd())
	root.AddCommand(cmd.CheckCmd())
	root.AddCommand(cmd.VersionCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	// Force truecolor so hex colors render correctly
	// Must be set before any lipgloss style initialization
	os.Setenv("COLORTERM", "truecolor")
}

func runTUI(dataPath string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logging.Init(logging.Options{Level: cfg.LogLevel, File: cfg.LogFile})
	log := logging.WithComponent("main")

	stores := store.NewSet()
	if dataPath != "" {
		n, err := snapshot.ImportFile(stores, dataPath)
		if err != nil {
			return fmt.Errorf("load %s: %w", dataPath, err)
		}
		log.Info("snapshot loaded", "path", dataPath, "records", n)
	}

	ctrl := dashboard.NewController(stores, logging.WithComponent("dashboard"))
	app := ui.NewApp(ctrl, stores, cfg, logging.WithComponent("ui"))

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui error: %w", err)
	}
	return nil
}
