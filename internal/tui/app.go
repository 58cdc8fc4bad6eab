// Package tui provides the interactive Bubble Tea screens for goalchaser.
package tui

import (
	"log/slog"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/goalchaser/internal/goals"
	"github.com/theirongolddev/goalchaser/internal/rewards"
	"github.com/theirongolddev/goalchaser/internal/tui/components"
	"github.com/theirongolddev/goalchaser/internal/tui/theme"
)

const (
	tabGoals = iota
	tabEditor
	tabRewards
)

const (
	minTerminalWidth = 50
	maxContentWidth  = 100
	minContentHeight = 5
	blocksPerRow     = 5
)

// Options configures NewApp.
type Options struct {
	Store       *goals.Store
	Catalogue   rewards.Catalogue
	Rand        *rand.Rand // nil uses the package source
	Logger      *slog.Logger
	DefaultDays int  // preselected target in the editor
	FirstRun    bool // show the setup form before anything else
}

type celebration struct {
	heading string
	body    string
}

// App is the root Bubble Tea model.
type App struct {
	store     *goals.Store
	catalogue rewards.Catalogue
	rng       *rand.Rand
	now       func() time.Time // the store's clock
	log       *slog.Logger

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool
	keys      keyMap
	help      help.Model

	// Goals tab: index into the active list
	selected    int
	celebration *celebration

	// Per-tab state
	defaultDays int
	editor      editorState
	rewards     rewardsState

	// First-run setup (huh form)
	setupForm *huh.Form
	setupVals *SetupValues
}

// NewApp creates a new TUI app model.
func NewApp(opts Options) App {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.DefaultDays < 1 || opts.DefaultDays > goals.MaxDays {
		opts.DefaultDays = goals.DefaultDays
	}

	a := App{
		store:       opts.Store,
		catalogue:   opts.Catalogue,
		rng:         opts.Rand,
		now:         opts.Store.Now,
		log:         opts.Logger,
		keys:        newKeyMap(),
		help:        help.New(),
		defaultDays: opts.DefaultDays,
		editor:      newEditorState(opts.DefaultDays),
	}

	if opts.FirstRun {
		vals := SetupValues{Theme: theme.Active.Name, DefaultDays: opts.DefaultDays, LogLevel: "warn"}
		a.setupVals = &vals
		a.setupForm = NewSetupForm(a.setupVals)
	}

	a.reconcile()
	return a
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	cmds := []tea.Cmd{tea.EnableMouseCellMotion}
	if a.setupForm != nil {
		cmds = append(cmds, a.setupForm.Init())
	}
	return tea.Batch(cmds...)
}

// reconcile clamps every cursor after the goal list changed.
func (a *App) reconcile() {
	active := len(a.store.Active())
	a.selected = goals.Reconcile(a.selected, active)
	a.editor.cursor = goals.Reconcile(a.editor.cursor, active)
	a.rewards.cursor = goals.Reconcile(a.rewards.cursor, len(a.store.Completed()))
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width
		if a.setupForm != nil {
			a.setupForm = a.setupForm.WithWidth(msg.Width).WithHeight(msg.Height)
		}
		return a, nil

	case tea.MouseMsg:
		if a.setupForm != nil || a.showHelp || a.celebration != nil {
			return a, nil
		}
		return a.updateMouse(msg)

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

		if a.setupForm != nil {
			return a.updateSetupForm(msg)
		}

		if a.celebration != nil {
			switch msg.String() {
			case "enter", "esc", " ":
				a.celebration = nil
			}
			return a, nil
		}

		if key.Matches(msg, a.keys.Help) && !a.typing() {
			a.showHelp = !a.showHelp
			return a, nil
		}
		if a.showHelp {
			a.showHelp = false
			return a, nil
		}

		// The title input swallows letters, so tab keys only apply outside it.
		if a.typing() {
			return a.updateTitleInput(msg)
		}

		switch {
		case key.Matches(msg, a.keys.Quit):
			return a, tea.Quit
		case key.Matches(msg, a.keys.Goals):
			return a.switchTab(tabGoals)
		case key.Matches(msg, a.keys.Editor):
			return a.switchTab(tabEditor)
		case key.Matches(msg, a.keys.Rewards):
			return a.switchTab(tabRewards)
		case key.Matches(msg, a.keys.NextTab):
			return a.switchTab((a.activeTab + 1) % len(components.Tabs))
		case key.Matches(msg, a.keys.PrevTab):
			return a.switchTab((a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs))
		}

		switch a.activeTab {
		case tabEditor:
			return a.updateEditor(msg)
		case tabRewards:
			return a.updateRewards(msg)
		default:
			return a.updateGoals(msg)
		}
	}

	// Forward unhandled messages (cursor blinks, etc.)
	if a.setupForm != nil {
		return a.updateSetupForm(msg)
	}
	if a.typing() {
		var cmd tea.Cmd
		a.editor.input, cmd = a.editor.input.Update(msg)
		return a, cmd
	}
	return a, nil
}

func (a App) switchTab(tab int) (tea.Model, tea.Cmd) {
	a.activeTab = tab
	a.reconcile()
	if tab == tabEditor {
		return a, a.editor.setFocus(fieldTitle)
	}
	a.editor.setFocus(fieldList)
	return a, nil
}

// typing reports whether keystrokes belong to the editor's title input.
func (a App) typing() bool {
	return a.activeTab == tabEditor && a.editor.focus == fieldTitle
}

func (a App) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Button {
	case tea.MouseButtonWheelUp, tea.MouseButtonWheelDown:
		delta := 1
		if msg.Button == tea.MouseButtonWheelUp {
			delta = -1
		}
		switch a.activeTab {
		case tabGoals:
			a.selected += delta
		case tabEditor:
			a.editor.cursor += delta
		case tabRewards:
			a.rewards.cursor += delta
		}
		a.reconcile()
		return a, nil

	case tea.MouseButtonLeft:
		if msg.Action != tea.MouseActionPress {
			return a, nil
		}
		if msg.Y == 0 {
			if tab := a.tabAtX(msg.X); tab >= 0 {
				return a.switchTab(tab)
			}
		}
	}
	return a, nil
}

// tabAtX returns the tab index at the given X coordinate, or -1 if none.
// Hitboxes are derived from the same width rules used by RenderTabBar.
func (a App) tabAtX(x int) int {
	pos := 0
	for i, tab := range components.Tabs {
		tabW := components.TabVisualWidth(tab)
		if x >= pos && x < pos+tabW {
			return i
		}
		pos += tabW

		// Separator is one column between tabs.
		if i < len(components.Tabs)-1 {
			pos++
		}
	}
	return -1
}

func (a App) contentWidth() int {
	return min(a.width, maxContentWidth)
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}
	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}
	if a.setupForm != nil {
		return a.setupForm.View()
	}
	if a.showHelp {
		return a.viewHelp()
	}
	if a.celebration != nil {
		return a.viewCelebration()
	}
	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := max(a.height, 5)
	msg := "\n  Terminal too narrow.\n\n  goalchaser needs at least 50 columns.\n"
	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewHelp() string {
	t := theme.Active

	titleStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Background(t.Surface).
		Bold(true)

	body := titleStyle.Render("Keyboard Shortcuts") + "\n\n" +
		a.help.FullHelpView(a.keys.fullHelp())

	card := components.FocusCard("", body, min(a.width, 90))
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewCelebration() string {
	t := theme.Active
	modal := components.Modal(a.celebration.heading, a.celebration.body,
		"Press enter to continue", min(a.width, 64))
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, modal,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	header := components.RenderTabBar(a.activeTab, w)
	hints := a.help.ShortHelpView(a.keys.shortHelp(a.activeTab))
	statusBar := components.RenderStatusBar(w, hints, a.store.Summary())

	contentH := max(h-lipgloss.Height(header)-lipgloss.Height(statusBar), minContentHeight)

	var content string
	switch a.activeTab {
	case tabEditor:
		content = a.renderEditorTab(cw)
	case tabRewards:
		content = a.renderRewardsTab(cw)
	default:
		content = a.renderGoalsTab(cw)
	}

	content = padHeight(truncateHeight(content, contentH), contentH)
	content = fillLinesWithBackground(content, cw, t.Background)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	output := lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)
	return lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, output,
		lipgloss.WithWhitespaceBackground(t.Background))
}

// ─── Helpers ────────────────────────────────────────────────────

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	return s + strings.Repeat("\n", h-len(lines))
}

// fillLinesWithBackground pads each line to width w with background color.
func fillLinesWithBackground(s string, w int, bg lipgloss.Color) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = lipgloss.PlaceHorizontal(w, lipgloss.Left, line,
			lipgloss.WithWhitespaceBackground(bg))
	}
	return strings.Join(lines, "\n")
}
