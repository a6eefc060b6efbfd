package form

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"healthlog/internal/ui/state"
	"healthlog/internal/ui/theme"
)

// SubmitMsg asks the app to save the current values.
type SubmitMsg struct{ Form state.Form }

var labels = map[state.Field]string{
	state.FieldPain:     "Pain (1-5)",
	state.FieldPills:    "Pills (0-2)",
	state.FieldExercise: "Exercise done",
	state.FieldHealthy:  "Feels healthy",
	state.FieldWeather:  "Weather",
	state.FieldActivity: "Activity",
	state.FieldNotes:    "Notes",
}

// Model edits one record. Text fields use textinput; the two yes/no fields are
// toggles switched with space or the arrow keys.
type Model struct {
	inputs  map[state.Field]textinput.Model
	toggles map[state.Field]string
	focus   int
	active  bool
	width   int
}

func New() Model {
	m := Model{
		inputs:  map[state.Field]textinput.Model{},
		toggles: map[state.Field]string{},
	}
	for _, f := range state.Fields {
		if isToggle(f) {
			continue
		}
		ti := textinput.New()
		ti.Prompt = ""
		ti.CharLimit = 256
		switch f {
		case state.FieldPain, state.FieldPills:
			ti.CharLimit = 3
			ti.Placeholder = "0"
		default:
			ti.Placeholder = "optional"
		}
		m.inputs[f] = ti
	}
	m.Reset(state.EmptyForm())
	return m
}

func isToggle(f state.Field) bool {
	return f == state.FieldExercise || f == state.FieldHealthy
}

// Reset loads values into every field.
func (m *Model) Reset(values state.Form) {
	for f, ti := range m.inputs {
		ti.SetValue(values.Get(f))
		m.inputs[f] = ti
	}
	m.toggles[state.FieldExercise] = values.Exercise
	m.toggles[state.FieldHealthy] = values.Healthy
}

// Values reads the form back.
func (m Model) Values() state.Form {
	out := state.EmptyForm()
	for _, f := range state.Fields {
		if isToggle(f) {
			out = out.With(f, m.toggles[f])
			continue
		}
		out = out.With(f, m.inputs[f].Value())
	}
	return out
}

func (m Model) Focused() state.Field { return state.Fields[m.focus] }

// Activate gives the form keyboard focus.
func (m *Model) Activate() tea.Cmd {
	m.active = true
	return m.refocus()
}

func (m *Model) Deactivate() {
	m.active = false
	for f, ti := range m.inputs {
		ti.Blur()
		m.inputs[f] = ti
	}
}

func (m Model) Active() bool { return m.active }

func (m *Model) SetWidth(w int) { m.width = w }

func (m *Model) refocus() tea.Cmd {
	var cmd tea.Cmd
	for f, ti := range m.inputs {
		if f == m.Focused() && m.active {
			cmd = ti.Focus()
		} else {
			ti.Blur()
		}
		m.inputs[f] = ti
	}
	return cmd
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if !m.active {
		return m, nil
	}
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.updateInput(msg)
	}
	switch key.String() {
	case "tab", "down":
		m.focus = (m.focus + 1) % len(state.Fields)
		return m, m.refocus()
	case "shift+tab", "up":
		m.focus = (m.focus + len(state.Fields) - 1) % len(state.Fields)
		return m, m.refocus()
	case "ctrl+s":
		values := m.Values()
		return m, func() tea.Msg { return SubmitMsg{Form: values} }
	case "enter":
		if m.focus == len(state.Fields)-1 {
			values := m.Values()
			return m, func() tea.Msg { return SubmitMsg{Form: values} }
		}
		m.focus++
		return m, m.refocus()
	}
	if f := m.Focused(); isToggle(f) {
		switch key.String() {
		case " ", "left", "right", "h", "l":
			if m.toggles[f] == "yes" {
				m.toggles[f] = "no"
			} else {
				m.toggles[f] = "yes"
			}
		case "y":
			m.toggles[f] = "yes"
		case "n":
			m.toggles[f] = "no"
		}
		return m, nil
	}
	return m.updateInput(msg)
}

func (m Model) updateInput(msg tea.Msg) (Model, tea.Cmd) {
	f := m.Focused()
	ti, ok := m.inputs[f]
	if !ok {
		return m, nil
	}
	var cmd tea.Cmd
	ti, cmd = ti.Update(msg)
	m.inputs[f] = ti
	return m, cmd
}

func (m Model) View() string {
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("New entry") + "\n\n")
	for i, f := range state.Fields {
		marker := "  "
		if m.active && i == m.focus {
			marker = theme.Hot.Render("> ")
		}
		label := lipgloss.NewStyle().Width(15).Render(labels[f])
		sb.WriteString(marker + theme.Muted.Render(label))
		if isToggle(f) {
			sb.WriteString(radio(m.toggles[f]))
		} else {
			sb.WriteString(m.inputs[f].View())
		}
		sb.WriteString("\n")
	}
	sb.WriteString("\n" + theme.Muted.Render("tab: next  space: toggle  ctrl+s: save  esc: chart"))
	style := theme.Pane
	if m.active {
		style = theme.PaneActive
	}
	if m.width > 4 {
		style = style.Width(m.width - 2)
	}
	return style.Render(sb.String())
}

func radio(value string) string {
	yes, no := "( ) yes", "( ) no"
	if value == "yes" {
		yes = theme.Hot.Render("(•) yes")
	} else {
		no = theme.Hot.Render("(•) no")
	}
	return yes + "  " + no
}
