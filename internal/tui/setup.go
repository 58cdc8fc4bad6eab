package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/theirongolddev/goalchaser/internal/config"
	"github.com/theirongolddev/goalchaser/internal/goals"
	"github.com/theirongolddev/goalchaser/internal/tui/theme"
)

// SetupValues are the answers collected by the setup form.
type SetupValues struct {
	Theme       string
	DefaultDays int
	LogLevel    string
}

// SetupValuesFrom seeds the form with the current config.
func SetupValuesFrom(cfg config.Config) SetupValues {
	return SetupValues{
		Theme:       cfg.Appearance.Theme,
		DefaultDays: cfg.General.DefaultDays,
		LogLevel:    cfg.Log.Level,
	}
}

// Apply copies the answers onto cfg.
func (v SetupValues) Apply(cfg config.Config) config.Config {
	cfg.Appearance.Theme = theme.ByName(v.Theme).Name
	if v.DefaultDays >= 1 && v.DefaultDays <= goals.MaxDays {
		cfg.General.DefaultDays = v.DefaultDays
	}
	if v.LogLevel != "" {
		cfg.Log.Level = v.LogLevel
	}
	return cfg
}

var daysOptions = []int{3, 7, 14, 21, 30}

// NewSetupForm builds the first-run form. Answers are written into vals.
func NewSetupForm(vals *SetupValues) *huh.Form {
	themeOpts := make([]huh.Option[string], 0, len(theme.All))
	for _, name := range theme.Names() {
		themeOpts = append(themeOpts, huh.NewOption(name, name))
	}

	dayOpts := make([]huh.Option[int], 0, len(daysOptions)+1)
	seen := false
	for _, d := range daysOptions {
		dayOpts = append(dayOpts, huh.NewOption(fmt.Sprintf("%d days", d), d))
		seen = seen || d == vals.DefaultDays
	}
	if !seen && vals.DefaultDays >= 1 && vals.DefaultDays <= goals.MaxDays {
		dayOpts = append(dayOpts, huh.NewOption(fmt.Sprintf("%d days (current)", vals.DefaultDays), vals.DefaultDays))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Welcome to goalchaser").
				Description("Pick up to 5 goals, tap once a day, collect rewards."),
			huh.NewSelect[string]().
				Title("Color theme").
				Options(themeOpts...).
				Value(&vals.Theme),
			huh.NewSelect[int]().
				Title("Default target for new goals").
				Options(dayOpts...).
				Value(&vals.DefaultDays),
			huh.NewSelect[string]().
				Title("Diagnostic log level").
				Options(
					huh.NewOption("warn", "warn"),
					huh.NewOption("info", "info"),
					huh.NewOption("debug", "debug"),
				).
				Value(&vals.LogLevel),
		),
	)
}

func (a App) updateSetupForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.setupForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.setupForm = f
	}

	switch a.setupForm.State {
	case huh.StateCompleted:
		if err := a.saveSetupConfig(); err != nil {
			a.log.Warn("saving setup config failed", "err", err)
		}
		a.setupForm = nil
		return a, nil
	case huh.StateAborted:
		a.setupForm = nil
		return a, nil
	}
	return a, cmd
}

// saveSetupConfig persists the form answers and applies them to the
// running app.
func (a *App) saveSetupConfig() error {
	cfg, err := config.Load()
	if err != nil {
		cfg = config.DefaultConfig()
	}
	cfg = a.setupVals.Apply(cfg)

	theme.SetActive(cfg.Appearance.Theme)
	a.defaultDays = cfg.General.DefaultDays
	a.editor.days = cfg.General.DefaultDays

	return config.Save(cfg)
}
