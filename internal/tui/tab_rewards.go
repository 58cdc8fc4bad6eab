package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/goalchaser/internal/cli"
	"github.com/theirongolddev/goalchaser/internal/rewards"
	"github.com/theirongolddev/goalchaser/internal/tui/components"
	"github.com/theirongolddev/goalchaser/internal/tui/theme"
)

// rewardsState tracks the rewards tab.
type rewardsState struct {
	cursor int    // into the completed list
	secret string // last drawn secret reward, empty until asked for
}

func (a App) updateRewards(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	done := a.store.Completed()

	switch {
	case key.Matches(msg, a.keys.Up):
		if a.rewards.cursor > 0 {
			a.rewards.cursor--
		}
	case key.Matches(msg, a.keys.Down):
		if a.rewards.cursor < len(done)-1 {
			a.rewards.cursor++
		}
	case key.Matches(msg, a.keys.Delete):
		if len(done) > 0 {
			a.store.Remove(done[a.rewards.cursor].ID)
			a.reconcile()
		}
	case key.Matches(msg, a.keys.Secret):
		a.rewards.secret = a.catalogue.Pick(a.rng)
	}
	return a, nil
}

func (a App) renderRewardsTab(cw int) string {
	t := theme.Active

	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	focusStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.SurfaceHover).Bold(true)
	checkStyle := lipgloss.NewStyle().Foreground(t.Green).Background(t.Surface)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	sum := a.store.Summary()
	metrics := components.MetricCardRow([]components.Metric{
		{Label: "Completed", Value: strconv.Itoa(sum.Completed)},
		{Label: "Active", Value: strconv.Itoa(sum.Active)},
		{Label: "Free slots", Value: strconv.Itoa(sum.Remaining)},
	}, cw)

	done := a.store.Completed()
	nameW := max(components.CardInnerWidth(cw)-4, 8)

	var list strings.Builder
	if len(done) == 0 {
		list.WriteString(dimStyle.Render("Nothing completed yet. Keep tapping!"))
	}
	for i, g := range done {
		style := valueStyle
		marker := "  "
		if i == a.rewards.cursor {
			style = focusStyle
			marker = "› "
		}
		list.WriteString(checkStyle.Render("✓ "))
		list.WriteString(style.Render(marker + cli.Truncate(g.Title, nameW)))
		if i < len(done)-1 {
			list.WriteString("\n")
		}
	}
	listCard := components.ContentCard(fmt.Sprintf("Rewards (%d)", len(done)), list.String(), cw)

	var secret string
	if a.rewards.secret != "" {
		secret = components.FocusCard(rewards.SecretRewardHeading, valueStyle.Render(a.rewards.secret), cw)
	} else {
		secret = components.ContentCard("Secret Reward", dimStyle.Render("Press s to reveal"), cw)
	}

	return metrics + "\n" + listCard + "\n" + secret
}
