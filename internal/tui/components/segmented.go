package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/goalchaser/internal/tui/theme"
)

// Segment is one option in a segmented picker.
type Segment struct {
	Label string
	Color lipgloss.Color
}

// RenderSegmented renders options as a single row of segments with the
// selected one highlighted. Labels are shortened to fit width.
func RenderSegmented(segs []Segment, selected, width int) string {
	if len(segs) == 0 {
		return ""
	}
	t := theme.Active

	sep := lipgloss.NewStyle().Foreground(t.Border).Background(t.Surface).Render("│")
	room := (width - (len(segs) - 1)) / len(segs)
	labelW := max(room-2, 3)

	parts := make([]string, len(segs))
	for i, s := range segs {
		label := shorten(s.Label, labelW)
		style := lipgloss.NewStyle().
			Foreground(t.TextMuted).
			Background(t.Surface).
			Padding(0, 1)
		if i == selected {
			style = style.
				Foreground(s.Color).
				Background(t.SurfaceHover).
				Bold(true)
		}
		parts[i] = style.Render(label)
	}
	return strings.Join(parts, sep)
}

func shorten(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}
