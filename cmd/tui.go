package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/theirongolddev/goalchaser/internal/config"
	"github.com/theirongolddev/goalchaser/internal/rewards"
	"github.com/theirongolddev/goalchaser/internal/tui"
	"github.com/theirongolddev/goalchaser/internal/tui/theme"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive goal screen",
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(_ *cobra.Command, _ []string) error {
	firstRun := !config.Exists()

	// Stderr would draw over the alt screen, so logs only go to the file.
	s, err := openSession(nil)
	if err != nil {
		return err
	}
	defer s.close()

	theme.SetActive(config.GetTheme(s.cfg))

	// Force TrueColor profile so all background styling produces ANSI codes
	lipgloss.SetColorProfile(termenv.TrueColor)

	app := tui.NewApp(tui.Options{
		Store:       s.goals,
		Catalogue:   rewards.Default(),
		Logger:      s.log,
		DefaultDays: s.cfg.General.DefaultDays,
		FirstRun:    firstRun,
	})
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
