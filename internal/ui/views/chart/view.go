package chart

import (
	"fmt"
	"strings"

	"healthlog/internal/ui/components"
	"healthlog/internal/ui/theme"
)

// Model shows the last rendered chart under the range buttons. It does not
// render charts itself; the app hands it finished output.
type Model struct {
	filters components.FilterBar
	output  string
	variant string
	points  int
	loading bool
	active  bool
	width   int
}

func New(filters components.FilterBar) Model {
	return Model{filters: filters}
}

func (m *Model) SetFilters(f components.FilterBar) { m.filters = f }

func (m *Model) SetOutput(output, variant string, points int) {
	m.output = output
	m.variant = variant
	m.points = points
}

func (m *Model) SetLoading(loading bool) { m.loading = loading }

func (m *Model) SetActive(active bool) { m.active = active }

func (m *Model) SetWidth(w int) { m.width = w }

func (m Model) View() string {
	var sb strings.Builder
	title := fmt.Sprintf("History · %s · %d entries", m.variant, m.points)
	if m.loading {
		title += " · loading…"
	}
	sb.WriteString(theme.Title.Render(title) + "\n")
	sb.WriteString(m.filters.View() + "\n\n")
	sb.WriteString(m.output + "\n\n")
	sb.WriteString(theme.Muted.Render("1-4: range  v: chart type  ←/→: inspect  r: reload  tab: form"))
	style := theme.Pane
	if m.active {
		style = theme.PaneActive
	}
	if m.width > 4 {
		style = style.Width(m.width - 2)
	}
	return style.Render(sb.String())
}
