package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/goalchaser/internal/model"
	"github.com/theirongolddev/goalchaser/internal/tui/theme"
)

// RenderStatusBar renders the bottom status bar: key hints on the left,
// goal counts on the right.
func RenderStatusBar(width int, hints string, sum model.Summary) string {
	t := theme.Active

	style := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface).
		Width(width)

	left := " " + hints
	right := fmt.Sprintf("%d active · %d done · %d free ", sum.Active, sum.Completed, sum.Remaining)

	gap := max(width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	bar := left + fmt.Sprintf("%*s", gap, "") + right

	return style.Render(bar)
}
