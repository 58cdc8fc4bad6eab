package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/theirongolddev/goalchaser/internal/model"
	"github.com/theirongolddev/goalchaser/internal/tui/theme"
)

func init() {
	// Force TrueColor output so ANSI codes are generated in tests
	lipgloss.SetColorProfile(termenv.TrueColor)
}

func TestCardRowBackgroundFill(t *testing.T) {
	theme.SetActive("flexoki-dark")

	shortCard := ContentCard("Short", "Content", 22)
	tallCard := ContentCard("Tall", "Line 1\nLine 2\nLine 3\nLine 4\nLine 5", 22)

	shortLines := lipgloss.Height(shortCard)
	tallLines := lipgloss.Height(tallCard)
	if shortLines >= tallLines {
		t.Fatal("test setup error: short card should be shorter than tall card")
	}

	lines := strings.Split(CardRow([]string{tallCard, shortCard}), "\n")
	if len(lines) != tallLines {
		t.Fatalf("joined height = %d, want %d", len(lines), tallLines)
	}
	for i := shortLines; i < len(lines); i++ {
		if !strings.Contains(lines[i], "\x1b[") {
			t.Errorf("padding line %d has no ANSI codes: %q", i, lines[i])
		}
	}
}

func TestCardRowWidthConsistency(t *testing.T) {
	theme.SetActive("flexoki-dark")

	shortCard := ContentCard("Short", "A", 30)
	tallCard := ContentCard("Tall", "A\nB\nC\nD\nE\nF", 20)

	lines := strings.Split(CardRow([]string{tallCard, shortCard}), "\n")
	want := lipgloss.Width(tallCard) + lipgloss.Width(shortCard)
	for i, line := range lines {
		if w := lipgloss.Width(line); w != want {
			t.Errorf("line %d width = %d, want %d", i, w, want)
		}
	}
}

func TestLayoutRowSumsToTotal(t *testing.T) {
	tests := []struct{ total, n int }{{80, 3}, {81, 3}, {10, 4}, {7, 7}}
	for _, tt := range tests {
		sum := 0
		for _, w := range LayoutRow(tt.total, tt.n) {
			sum += w
		}
		if sum != tt.total {
			t.Errorf("LayoutRow(%d, %d) sums to %d", tt.total, tt.n, sum)
		}
	}
	if LayoutRow(10, 0) != nil {
		t.Error("LayoutRow(10, 0) should be nil")
	}
}

func TestDayGridRows(t *testing.T) {
	theme.SetActive("flexoki-dark")

	tests := []struct {
		days  int
		lines int
		last  int
	}{
		{days: 1, lines: 1, last: 1},
		{days: 5, lines: 1, last: 5},
		{days: 7, lines: 2, last: 2},
		{days: 31, lines: 7, last: 1},
	}
	for _, tt := range tests {
		rows := strings.Split(DayGrid(tt.days, model.ColorGreen, 5), "\n")
		if len(rows) != tt.lines {
			t.Errorf("DayGrid(%d) rows = %d, want %d", tt.days, len(rows), tt.lines)
			continue
		}
		if n := strings.Count(rows[len(rows)-1], "■"); n != tt.last {
			t.Errorf("DayGrid(%d) last row blocks = %d, want %d", tt.days, n, tt.last)
		}
	}
	if DayGrid(0, model.ColorGreen, 5) != "" {
		t.Error("DayGrid(0) should be empty")
	}
}

func TestRenderSegmentedShortensLabels(t *testing.T) {
	theme.SetActive("flexoki-dark")

	segs := []Segment{
		{Label: "Read a chapter every night", Color: theme.Active.Blue},
		{Label: "Run", Color: theme.Active.Red},
	}
	out := RenderSegmented(segs, 1, 30)
	if w := lipgloss.Width(out); w > 30 {
		t.Fatalf("segmented width = %d, want <= 30: %q", w, out)
	}
	if !strings.Contains(out, "Run") || !strings.Contains(out, "…") {
		t.Fatalf("segmented output = %q", out)
	}
}

func TestCapacityBarLabel(t *testing.T) {
	theme.SetActive("flexoki-dark")

	out := CapacityBar(5, 5, 30)
	if !strings.Contains(out, "5/5") {
		t.Fatalf("capacity bar missing label: %q", out)
	}
	if ColorForPct(1) != string(theme.Active.Red) {
		t.Fatal("full capacity should be red")
	}
	if ColorForPct(0.2) != string(theme.Active.Green) {
		t.Fatal("low capacity should be green")
	}
}
