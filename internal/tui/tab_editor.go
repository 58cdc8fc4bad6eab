package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/goalchaser/internal/cli"
	"github.com/theirongolddev/goalchaser/internal/goals"
	"github.com/theirongolddev/goalchaser/internal/model"
	"github.com/theirongolddev/goalchaser/internal/tui/components"
	"github.com/theirongolddev/goalchaser/internal/tui/theme"
)

const (
	fieldTitle = iota
	fieldDays
	fieldColor
	fieldList
	fieldCount // sentinel
)

// editorState tracks the editor tab: the new-goal form and the active list.
type editorState struct {
	input  textinput.Model
	focus  int
	days   int
	color  model.Color
	cursor int    // into the active list
	err    string // last rejected add
	flash  string // last successful add
}

func newEditorState(days int) editorState {
	ti := textinput.New()
	ti.Placeholder = "Input your goal"
	ti.CharLimit = 64
	ti.Width = 40
	ti.Prompt = "› "

	return editorState{
		input: ti,
		focus: fieldList,
		days:  days,
		color: model.DefaultColor,
	}
}

// setFocus moves focus to field f, wrapping around.
func (e *editorState) setFocus(f int) tea.Cmd {
	e.focus = (f + fieldCount) % fieldCount
	if e.focus == fieldTitle {
		return e.input.Focus()
	}
	e.input.Blur()
	return nil
}

func (a App) updateTitleInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Submit):
		return a.addGoal()
	case key.Matches(msg, a.keys.NextField):
		return a, a.editor.setFocus(fieldDays)
	case key.Matches(msg, a.keys.PrevField), key.Matches(msg, a.keys.Leave):
		return a, a.editor.setFocus(fieldList)
	}

	a.editor.err = ""
	var cmd tea.Cmd
	a.editor.input, cmd = a.editor.input.Update(msg)
	return a, cmd
}

func (a App) updateEditor(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.NextField):
		return a, a.editor.setFocus(a.editor.focus + 1)
	case key.Matches(msg, a.keys.PrevField):
		return a, a.editor.setFocus(a.editor.focus - 1)
	}

	switch a.editor.focus {
	case fieldDays:
		switch {
		case key.Matches(msg, a.keys.Submit):
			return a.addGoal()
		case key.Matches(msg, a.keys.More):
			a.editor.days = min(a.editor.days+1, goals.MaxDays)
		case key.Matches(msg, a.keys.Less):
			a.editor.days = max(a.editor.days-1, 1)
		}

	case fieldColor:
		switch {
		case key.Matches(msg, a.keys.Submit):
			return a.addGoal()
		case key.Matches(msg, a.keys.Color):
			a.editor.color = a.editor.color.Next()
		}

	case fieldList:
		active := a.store.Active()
		switch {
		case key.Matches(msg, a.keys.Up):
			if a.editor.cursor > 0 {
				a.editor.cursor--
			}
		case key.Matches(msg, a.keys.Down):
			if a.editor.cursor < len(active)-1 {
				a.editor.cursor++
			}
		case key.Matches(msg, a.keys.Delete):
			if len(active) > 0 {
				a.store.Remove(active[a.editor.cursor].ID)
				a.editor.flash = ""
				a.reconcile()
			}
		}
	}
	return a, nil
}

// addGoal submits the form. On success the form resets for the next goal.
func (a App) addGoal() (tea.Model, tea.Cmd) {
	_, err := a.store.Add(goals.NewGoal{
		Title: a.editor.input.Value(),
		Days:  a.editor.days,
		Color: a.editor.color,
	})
	if err != nil {
		a.editor.err = goals.Message(err)
		a.editor.flash = ""
		return a, nil
	}

	a.editor.flash = fmt.Sprintf("Added %q", strings.TrimSpace(a.editor.input.Value()))
	a.editor.err = ""
	a.editor.input.Reset()
	a.editor.days = a.defaultDays
	a.editor.color = model.DefaultColor
	a.reconcile()
	return a, nil
}

func (a App) renderEditorTab(cw int) string {
	t := theme.Active
	e := a.editor

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	focusStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.SurfaceHover).Bold(true)
	errStyle := lipgloss.NewStyle().Foreground(t.Red).Background(t.Surface)
	okStyle := lipgloss.NewStyle().Foreground(t.Green).Background(t.Surface)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	field := func(f int, s string) string {
		if e.focus == f {
			return focusStyle.Render(s)
		}
		return valueStyle.Render(s)
	}

	widths := []int{cw}
	if cw >= 80 {
		widths = components.LayoutRow(cw, 2)
	}
	formW := components.CardInnerWidth(widths[0])

	// New goal form
	var form strings.Builder
	form.WriteString(labelStyle.Render("Title"))
	form.WriteString("\n")
	form.WriteString(e.input.View())
	form.WriteString("\n\n")
	form.WriteString(labelStyle.Render("Days  "))
	form.WriteString(field(fieldDays, fmt.Sprintf("‹ %2d ›", e.days)))
	form.WriteString("\n")
	form.WriteString(labelStyle.Render("Color "))
	swatch := lipgloss.NewStyle().Foreground(t.GoalColor(e.color)).Background(t.Surface).Render("●")
	form.WriteString(swatch + valueStyle.Render(" ") + field(fieldColor, string(e.color)))
	form.WriteString("\n\n")

	used := a.store.Summary().Active
	form.WriteString(labelStyle.Render("Slots"))
	form.WriteString("\n")
	form.WriteString(components.CapacityBar(used, goals.MaxActive, formW))
	form.WriteString("\n")

	switch {
	case e.err != "":
		form.WriteString("\n" + errStyle.Render(e.err))
	case e.flash != "":
		form.WriteString("\n" + okStyle.Render(e.flash))
	}

	formCard := components.FocusCard("New goal", form.String(), widths[0])
	if e.focus == fieldList {
		formCard = components.ContentCard("New goal", form.String(), widths[0])
	}

	// Active list
	listW := widths[len(widths)-1]
	nameW := max(components.CardInnerWidth(listW)-16, 8)

	var list strings.Builder
	active := a.store.Active()
	if len(active) == 0 {
		list.WriteString(dimStyle.Render("No active goals."))
	}
	for i, g := range active {
		marker := "  "
		style := valueStyle
		if i == e.cursor && e.focus == fieldList {
			marker = "› "
			style = focusStyle
		}
		dot := lipgloss.NewStyle().Foreground(t.GoalColor(g.Color)).Background(t.Surface).Render("●")
		line := fmt.Sprintf("%s%-*s %s", marker, nameW, cli.Truncate(g.Title, nameW), cli.FormatDaysLeft(g.Days))
		list.WriteString(dot + valueStyle.Render(" ") + style.Render(line))
		if i < len(active)-1 {
			list.WriteString("\n")
		}
	}
	if e.focus == fieldList && len(active) > 0 {
		list.WriteString("\n\n" + dimStyle.Render("d to delete · tab to edit"))
	}

	listCard := components.ContentCard("Active goals", list.String(), listW)

	if len(widths) == 2 {
		return components.CardRow([]string{formCard, listCard})
	}
	return formCard + "\n" + listCard
}
