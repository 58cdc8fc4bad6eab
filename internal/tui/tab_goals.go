package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/goalchaser/internal/cli"
	"github.com/theirongolddev/goalchaser/internal/rewards"
	"github.com/theirongolddev/goalchaser/internal/tui/components"
	"github.com/theirongolddev/goalchaser/internal/tui/theme"
)

const comeBackTomorrow = "Good job! Come back tomorrow!"

func (a App) updateGoals(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	active := a.store.Active()

	switch {
	case key.Matches(msg, a.keys.Left):
		if a.selected > 0 {
			a.selected--
		}
	case key.Matches(msg, a.keys.Right):
		if a.selected < len(active)-1 {
			a.selected++
		}
	case key.Matches(msg, a.keys.Tap):
		return a.tapSelected()
	}
	return a, nil
}

// tapSelected taps the goal under the picker and opens the completion
// modal when that was its last day.
func (a App) tapSelected() (tea.Model, tea.Cmd) {
	active := a.store.Active()
	if len(active) == 0 {
		return a, nil
	}

	res := a.store.Tap(active[a.selected].ID)
	if !res.Tapped {
		a.log.Debug("tap ignored", "id", res.Goal.ID, "reason", res.Denied.String())
		return a, nil
	}
	if res.Completed {
		heading, body := rewards.CompletionMessage(res.Goal.Title)
		a.celebration = &celebration{heading: heading, body: body}
	}
	a.reconcile()
	return a, nil
}

func (a App) renderGoalsTab(cw int) string {
	t := theme.Active

	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	active := a.store.Active()
	if len(active) == 0 {
		body := mutedStyle.Render("No active goals.") + "\n" +
			dimStyle.Render("Press e to add one.")
		return components.ContentCard("Goals", body, cw)
	}

	inner := components.CardInnerWidth(cw)
	segs := make([]components.Segment, len(active))
	for i, g := range active {
		segs[i] = components.Segment{Label: g.Title, Color: t.GoalColor(g.Color)}
	}

	g := active[a.selected]
	daysStyle := lipgloss.NewStyle().
		Foreground(t.GoalColor(g.Color)).
		Background(t.Surface).
		Bold(true)

	var action string
	if a.store.Tappable(g.ID) {
		action = lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true).
			Render("[ space ] Tap for today")
	} else {
		action = lipgloss.NewStyle().Foreground(t.Green).Background(t.Surface).
			Render(comeBackTomorrow)
	}

	body := components.RenderSegmented(segs, a.selected, inner) + "\n\n" +
		components.DayGrid(g.Days, g.Color, blocksPerRow) + "\n\n" +
		daysStyle.Render(cli.FormatDaysLeft(g.Days)) + "\n" +
		dimStyle.Render("Last tap: "+cli.FormatLastTapped(g.LastTapped, a.now())) + "\n\n" +
		action

	return components.ContentCard("Goals", body, cw)
}
