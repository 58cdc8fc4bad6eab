package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/goalchaser/internal/model"
	"github.com/theirongolddev/goalchaser/internal/tui/theme"
)

// ColorForPct returns green/yellow/orange/red as a slot count fills up.
func ColorForPct(pct float64) string {
	t := theme.Active
	switch {
	case pct >= 1:
		return string(t.Red)
	case pct >= 0.8:
		return string(t.Orange)
	case pct >= 0.5:
		return string(t.Yellow)
	default:
		return string(t.Green)
	}
}

// CapacityBar renders how many of the active goal slots are in use.
func CapacityBar(used, limit, width int) string {
	t := theme.Active

	pct := 0.0
	if limit > 0 {
		pct = min(max(float64(used)/float64(limit), 0), 1)
	}

	label := fmt.Sprintf("%d/%d", used, limit)
	barW := max(width-lipgloss.Width(label)-1, 4)

	bar := progress.New(
		progress.WithSolidFill(ColorForPct(pct)),
		progress.WithWidth(barW),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)

	labelStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorForPct(pct))).
		Background(t.Surface).
		Bold(true)
	spaceStyle := lipgloss.NewStyle().Background(t.Surface)

	return bar.ViewAs(pct) + spaceStyle.Render(" ") + labelStyle.Render(label)
}

// DayGrid draws one block per remaining day in the goal's color,
// perRow blocks to a line.
func DayGrid(days int, color model.Color, perRow int) string {
	if days <= 0 {
		return ""
	}
	if perRow < 1 {
		perRow = 5
	}
	t := theme.Active
	block := lipgloss.NewStyle().Foreground(t.GoalColor(color)).Background(t.Surface)
	gap := lipgloss.NewStyle().Background(t.Surface)

	var lines []string
	for left := days; left > 0; left -= perRow {
		n := min(left, perRow)
		cells := make([]string, n)
		for i := range cells {
			cells[i] = block.Render("■")
		}
		lines = append(lines, strings.Join(cells, gap.Render(" ")))
	}
	return strings.Join(lines, "\n")
}
