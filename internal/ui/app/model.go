package app

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	chartdomain "healthlog/internal/modules/chart/domain"
	chartdto "healthlog/internal/modules/chart/dto"
	recorddomain "healthlog/internal/modules/record/domain"
	recorddto "healthlog/internal/modules/record/dto"
	"healthlog/internal/platform/clock"
	apperrors "healthlog/internal/platform/errors"
	"healthlog/internal/ui/components"
	"healthlog/internal/ui/state"
	"healthlog/internal/ui/theme"
	chartview "healthlog/internal/ui/views/chart"
	formview "healthlog/internal/ui/views/form"
)

// ─── ports ───────────────────────────────────────────────────────────────────

type recordPort interface {
	Load(ctx context.Context) ([]recorddto.RecordOutput, error)
	Save(ctx context.Context, input recorddto.SaveInput) (recorddto.SaveOutput, error)
}

type chartPort interface {
	Render(ctx context.Context, input chartdto.RenderInput) (chartdto.RenderOutput, error)
	Teardown()
}

// ─── async messages ──────────────────────────────────────────────────────────

// Results carry the day they were fetched on so windows stay anchored to the
// current date in a long-running session.
type recordsLoadedMsg struct {
	records []recorddto.RecordOutput
	err     error
	today   recorddomain.Day
}

type recordSavedMsg struct {
	out   recorddto.SaveOutput
	err   error
	today recorddomain.Day
}

// ─── key bindings ────────────────────────────────────────────────────────────

type keyMap struct {
	Switch  key.Binding
	Window  key.Binding
	Variant key.Binding
	Inspect key.Binding
	Reload  key.Binding
	Save    key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Switch:  key.NewBinding(key.WithKeys("tab", "esc"), key.WithHelp("tab/esc", "form ↔ chart")),
		Window:  key.NewBinding(key.WithKeys("1", "2", "3", "4"), key.WithHelp("1-4", "range")),
		Variant: key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "chart type")),
		Inspect: key.NewBinding(key.WithKeys("left", "right"), key.WithHelp("←/→", "inspect")),
		Reload:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		Save:    key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:    key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Switch, k.Save, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Switch, k.Save},
		{k.Window, k.Variant, k.Inspect, k.Reload},
		{k.Help, k.Quit},
	}
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the root Bubble Tea model. Every change goes through state.Dispatch
// and the chart is re-rendered from the resulting view state.
type Model struct {
	records recordPort
	chart   chartPort
	clock   clock.Clock

	state     state.ViewState
	form      formview.Model
	chartView chartview.Model
	filters   components.FilterBar

	keys     keyMap
	help     help.Model
	showHelp bool
	width    int
	height   int
}

func NewModel(records recordPort, chart chartPort, clk clock.Clock, initial state.ViewState) Model {
	filters := components.NewFilterBar(initial.Window)
	m := Model{
		records:   records,
		chart:     chart,
		clock:     clk,
		state:     initial,
		form:      formview.New(),
		chartView: chartview.New(filters),
		filters:   filters,
		keys:      defaultKeys(),
		help:      help.New(),
	}
	m.chartView.SetActive(true)
	m.apply(state.Action{Kind: state.ActionLoadStarted})
	return m
}

func (m Model) State() state.ViewState { return m.state }

func (m Model) Init() tea.Cmd {
	return fetch(m.records, m.clock)
}

// ─── update ──────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.form.SetWidth(m.formWidth())
		m.chartView.SetWidth(msg.Width - m.formWidth())
		return m, nil

	case recordsLoadedMsg:
		if msg.err != nil {
			m.apply(state.Action{Kind: state.ActionLoadFailed, Err: msg.err, Today: msg.today})
		} else {
			m.apply(state.Action{Kind: state.ActionLoaded, Records: msg.records, Today: msg.today})
		}
		return m, nil

	case recordSavedMsg:
		switch {
		case errors.Is(msg.err, apperrors.ErrReloadAfterSave):
			m.apply(state.Action{Kind: state.ActionSaved, Today: msg.today})
			m.form.Reset(m.state.Form)
			m.apply(state.Action{Kind: state.ActionLoadFailed, Err: msg.err})
		case msg.err != nil:
			m.apply(state.Action{Kind: state.ActionSaveFailed, Err: msg.err})
		default:
			m.apply(state.Action{Kind: state.ActionSaved, Records: msg.out.Records, Today: msg.today})
			m.form.Reset(m.state.Form)
		}
		return m, nil

	case formview.SubmitMsg:
		return m, m.submit(msg.Form)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.chart.Teardown()
		return m, tea.Quit
	}
	if m.state.Blocked() {
		switch msg.String() {
		case "enter", "esc", " ":
			m.apply(state.Action{Kind: state.ActionDismissAlert})
		}
		return m, nil
	}
	if m.showHelp {
		if msg.String() == "?" || msg.String() == "esc" {
			m.showHelp = false
		}
		return m, nil
	}

	if m.form.Active() {
		switch msg.String() {
		case "esc":
			m.syncForm()
			m.form.Deactivate()
			m.chartView.SetActive(true)
			return m, nil
		}
		var cmd tea.Cmd
		m.form, cmd = m.form.Update(msg)
		m.syncForm()
		return m, cmd
	}

	switch msg.String() {
	case "q":
		m.chart.Teardown()
		return m, tea.Quit
	case "?":
		m.showHelp = true
	case "tab":
		m.chartView.SetActive(false)
		return m, m.form.Activate()
	case "r":
		return m, m.loadCmd()
	case "v":
		next := string(chartdomain.VariantLine)
		if m.state.Variant == string(chartdomain.VariantLine) {
			next = string(chartdomain.VariantCombo)
		}
		m.apply(state.Action{Kind: state.ActionSelectVariant, Variant: next})
	case "left":
		m.apply(state.Action{Kind: state.ActionInspectPrev})
	case "right":
		m.apply(state.Action{Kind: state.ActionInspectNext})
	case "ctrl+s":
		return m, m.submit(m.form.Values())
	default:
		if w, ok := m.filters.Key(msg.String()); ok {
			m.apply(state.Action{Kind: state.ActionSelectWindow, Window: w})
		}
	}
	return m, nil
}

// apply runs one transition and redraws the chart from the new state.
func (m *Model) apply(a state.Action) {
	m.state = state.Dispatch(m.state, a)
	m.filters.Select(m.state.Window)
	m.chartView.SetFilters(m.filters)
	m.chartView.SetLoading(m.state.Loading)
	m.rerender()
}

func (m *Model) rerender() {
	out, err := m.chart.Render(context.Background(), m.state.ChartInput())
	if err != nil {
		m.chartView.SetOutput(theme.Muted.Render("chart: "+err.Error()), m.state.Variant, 0)
		return
	}
	m.chartView.SetOutput(out.Output, out.Variant, out.Points)
}

func (m *Model) syncForm() {
	values := m.form.Values()
	for _, f := range state.Fields {
		if values.Get(f) != m.state.Form.Get(f) {
			m.state = state.Dispatch(m.state, state.Action{Kind: state.ActionSetField, Field: f, Value: values.Get(f)})
		}
	}
}

func (m *Model) submit(values state.Form) tea.Cmd {
	m.state.Form = values
	m.apply(state.Action{Kind: state.ActionSaveStarted})
	input := values.SaveInput()
	records, clk := m.records, m.clock
	return func() tea.Msg {
		out, err := records.Save(context.Background(), input)
		return recordSavedMsg{out: out, err: err, today: recorddomain.DayOf(clk.Now())}
	}
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	if m.showHelp {
		return lipgloss.NewStyle().Width(m.width).Render(m.help.View(m.keys))
	}
	body := lipgloss.JoinHorizontal(lipgloss.Top, m.form.View(), m.chartView.View())
	if m.state.Blocked() {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.renderAlert())
	}
	return lipgloss.JoinVertical(lipgloss.Left, body, m.renderStatusBar())
}

func (m Model) renderAlert() string {
	style := theme.AlertInfo
	if m.state.Alert.Kind == state.AlertError {
		style = theme.AlertError
	}
	return style.Render(m.state.Alert.Text + "\n\n" + theme.Muted.Render("enter: ok"))
}

func (m Model) renderStatusBar() string {
	left := "ready"
	switch {
	case m.state.Saving:
		left = "saving…"
	case m.state.Loading:
		left = "loading…"
	}
	left = theme.Hot.Render("healthlog") + "  " + left
	right := theme.Muted.Render(m.help.View(m.keys))
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).
		Render(left + lipgloss.NewStyle().Width(gap).Render("") + right)
}

func (m Model) formWidth() int {
	if m.width <= 0 {
		return 0
	}
	return m.width * 2 / 5
}

// ─── async commands ──────────────────────────────────────────────────────────

func (m *Model) loadCmd() tea.Cmd {
	m.apply(state.Action{Kind: state.ActionLoadStarted})
	return fetch(m.records, m.clock)
}

func fetch(records recordPort, clk clock.Clock) tea.Cmd {
	return func() tea.Msg {
		out, err := records.Load(context.Background())
		return recordsLoadedMsg{records: out, err: err, today: recorddomain.DayOf(clk.Now())}
	}
}
