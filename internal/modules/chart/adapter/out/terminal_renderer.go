package out

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"healthlog/internal/modules/chart/domain"
	chartout "healthlog/internal/modules/chart/port/out"
)

const (
	colWidth  = 2
	rowsPerUp = 2
)

var (
	axisStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#a6adc8"))
	cursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#fab387")).Bold(true)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#74c7ec")).Bold(true)
)

// TerminalRenderer plots a spec as a character grid: one column per point,
// two rows per unit on the 0-5 scale.
type TerminalRenderer struct {
	// MaxPoints keeps only the newest points when positive.
	MaxPoints int
}

func NewTerminalRenderer(maxPoints int) chartout.Renderer {
	return TerminalRenderer{MaxPoints: maxPoints}
}

type cell struct {
	glyph string
	style lipgloss.Style
	set   bool
}

func (r TerminalRenderer) Render(spec domain.Spec, inspect int) (string, error) {
	n := len(spec.Data.Labels)
	if n == 0 {
		return axisStyle.Render("no records to chart"), nil
	}
	start := 0
	if r.MaxPoints > 0 && n > r.MaxPoints {
		start = n - r.MaxPoints
	}
	visible := n - start
	height := domain.ScaleMax*rowsPerUp + 1

	grid := make([][]cell, height)
	for i := range grid {
		grid[i] = make([]cell, visible)
	}

	pain, _ := spec.Dataset(domain.RolePain)
	pills, _ := spec.Dataset(domain.RolePills)
	exercise, hasExercise := spec.Dataset(domain.RoleExercise)
	healthy, hasHealthy := spec.Dataset(domain.RoleHealthy)

	if spec.Type == "bar" && hasExercise {
		bg := lipgloss.NewStyle().Foreground(colorOf(exercise.BorderColor, "#4bc0c0"))
		for c := 0; c < visible; c++ {
			if exercise.Data[start+c] <= 0 {
				continue
			}
			for row := range grid {
				grid[row][c] = cell{glyph: "░", style: bg, set: true}
			}
		}
	}
	plot(grid, pills, start, "◆", lipgloss.NewStyle().Foreground(colorOf(pills.BorderColor, "#36a2eb")))
	plot(grid, pain, start, "●", lipgloss.NewStyle().Foreground(colorOf(pain.BorderColor, "#ff6384")))

	var sb strings.Builder
	for row := 0; row < height; row++ {
		sb.WriteString(yLabel(row, height))
		for c := 0; c < visible; c++ {
			sb.WriteString(grid[row][c].render())
		}
		sb.WriteString("\n")
	}
	sb.WriteString(axisStyle.Render("  └" + strings.Repeat("─", visible*colWidth)))
	sb.WriteString("\n")

	if spec.Type != "bar" {
		if hasExercise {
			sb.WriteString(flagRow("ex ", exercise, start, visible, "▲"))
		}
		if hasHealthy {
			sb.WriteString(flagRow("ok ", healthy, start, visible, "♥"))
		}
	}
	sb.WriteString(xLabels(spec.Data.Labels[start], spec.Data.Labels[n-1], visible))
	if inspect >= start && inspect < n {
		pos := (inspect - start) * colWidth
		sb.WriteString("   " + strings.Repeat(" ", pos) + cursorStyle.Render("^") + "\n")
	}
	sb.WriteString(legend(spec))

	if inspect >= 0 && inspect < n {
		sb.WriteString("\n\n" + labelStyle.Render(spec.Data.Labels[inspect]))
		sb.WriteString(fmt.Sprintf("  pain %s  pills %s", value(pain, inspect), value(pills, inspect)))
		if inspect < len(spec.Footers) && spec.Footers[inspect] != "" {
			sb.WriteString("\n" + spec.Footers[inspect])
		}
	}
	return sb.String(), nil
}

func plot(grid [][]cell, ds domain.Dataset, start int, glyph string, style lipgloss.Style) {
	height := len(grid)
	for c := 0; c < len(grid[0]); c++ {
		if start+c >= len(ds.Data) {
			return
		}
		row := rowOf(ds.Data[start+c], height)
		g := glyph
		if existing := grid[row][c]; existing.set && existing.glyph != "░" {
			g = "◈"
		}
		grid[row][c] = cell{glyph: g, style: style, set: true}
	}
}

func rowOf(v float64, height int) int {
	row := int(math.Round((domain.ScaleMax - v) * rowsPerUp))
	if row < 0 {
		return 0
	}
	if row >= height {
		return height - 1
	}
	return row
}

func (c cell) render() string {
	if !c.set {
		return strings.Repeat(" ", colWidth)
	}
	return c.style.Render(c.glyph) + strings.Repeat(" ", colWidth-1)
}

func yLabel(row, height int) string {
	if row%rowsPerUp != 0 {
		return axisStyle.Render("  │")
	}
	v := (height - 1 - row) / rowsPerUp
	return axisStyle.Render(fmt.Sprintf("%d │", v))
}

func flagRow(prefix string, ds domain.Dataset, start, visible int, glyph string) string {
	style := lipgloss.NewStyle().Foreground(colorOf(ds.BorderColor, "#ffce56"))
	var sb strings.Builder
	sb.WriteString(axisStyle.Render(prefix))
	for c := 0; c < visible; c++ {
		if start+c < len(ds.Data) && ds.Data[start+c] > 0 {
			sb.WriteString(style.Render(glyph) + " ")
		} else {
			sb.WriteString(axisStyle.Render("·") + " ")
		}
	}
	sb.WriteString("\n")
	return sb.String()
}

func xLabels(first, last string, visible int) string {
	width := visible * colWidth
	if visible == 1 || first == last || width < len(first)+len(last)+1 {
		return "   " + axisStyle.Render(last) + "\n"
	}
	gap := width - len(first) - len(last)
	return "   " + axisStyle.Render(first+strings.Repeat(" ", gap)+last) + "\n"
}

func legend(spec domain.Spec) string {
	parts := make([]string, 0, len(spec.Data.Datasets))
	for _, ds := range spec.Data.Datasets {
		glyph := "●"
		switch ds.Role {
		case domain.RolePills:
			glyph = "◆"
		case domain.RoleExercise:
			glyph = "▲"
			if spec.Type == "bar" {
				glyph = "░"
			}
		case domain.RoleHealthy:
			glyph = "♥"
		}
		style := lipgloss.NewStyle().Foreground(colorOf(ds.BorderColor, "#cdd6f4"))
		parts = append(parts, style.Render(glyph)+" "+ds.Label)
	}
	return strings.Join(parts, "   ")
}

func value(ds domain.Dataset, i int) string {
	if i >= len(ds.Data) {
		return "-"
	}
	return fmt.Sprintf("%g", ds.Data[i])
}

// colorOf converts a Chart.js rgba() string to a hex terminal color.
func colorOf(rgba, fallback string) lipgloss.Color {
	var r, g, b int
	var a float64
	if _, err := fmt.Sscanf(rgba, "rgba(%d, %d, %d, %g)", &r, &g, &b, &a); err != nil {
		return lipgloss.Color(fallback)
	}
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", r, g, b))
}
