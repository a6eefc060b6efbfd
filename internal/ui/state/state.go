// Package state holds the client view state and the table of transitions that
// user actions and async results apply to it. Nothing here performs I/O.
package state

import (
	chartdto "healthlog/internal/modules/chart/dto"
	recorddomain "healthlog/internal/modules/record/domain"
	recorddto "healthlog/internal/modules/record/dto"
)

type AlertKind int

const (
	AlertNone AlertKind = iota
	AlertInfo
	AlertError
)

// Alert blocks the screen until dismissed.
type Alert struct {
	Kind AlertKind
	Text string
}

type Field string

const (
	FieldPain     Field = "pain"
	FieldPills    Field = "pills"
	FieldExercise Field = "exercise"
	FieldHealthy  Field = "healthy"
	FieldWeather  Field = "weather"
	FieldActivity Field = "activity"
	FieldNotes    Field = "notes"
)

// Fields lists form fields in tab order.
var Fields = []Field{FieldPain, FieldPills, FieldExercise, FieldHealthy, FieldWeather, FieldActivity, FieldNotes}

type Form struct {
	Pain     string
	Pills    string
	Exercise string
	Healthy  string
	Weather  string
	Activity string
	Notes    string
}

func EmptyForm() Form {
	return Form{Exercise: string(recorddomain.No), Healthy: string(recorddomain.No)}
}

func (f Form) Get(field Field) string {
	switch field {
	case FieldPain:
		return f.Pain
	case FieldPills:
		return f.Pills
	case FieldExercise:
		return f.Exercise
	case FieldHealthy:
		return f.Healthy
	case FieldWeather:
		return f.Weather
	case FieldActivity:
		return f.Activity
	case FieldNotes:
		return f.Notes
	}
	return ""
}

func (f Form) With(field Field, value string) Form {
	switch field {
	case FieldPain:
		f.Pain = value
	case FieldPills:
		f.Pills = value
	case FieldExercise:
		f.Exercise = string(recorddomain.ParseAnswer(value))
	case FieldHealthy:
		f.Healthy = string(recorddomain.ParseAnswer(value))
	case FieldWeather:
		f.Weather = value
	case FieldActivity:
		f.Activity = value
	case FieldNotes:
		f.Notes = value
	}
	return f
}

func (f Form) SaveInput() recorddto.SaveInput {
	return recorddto.SaveInput{
		PainLevel:    f.Pain,
		PillCount:    f.Pills,
		ExerciseDone: f.Exercise,
		FeelsHealthy: f.Healthy,
		Weather:      f.Weather,
		ActivityNote: f.Activity,
		Notes:        f.Notes,
	}
}

// ViewState is everything the client screen depends on. Records is the full
// cached list in load order; the window only narrows what is drawn.
type ViewState struct {
	Records []recorddto.RecordOutput
	Window  recorddomain.Window
	Variant string
	Today   recorddomain.Day
	// Inspect indexes Visible(); negative selects the newest point.
	Inspect int
	Loading bool
	Saving  bool
	Alert   Alert
	Form    Form
}

func New(today recorddomain.Day, window recorddomain.Window, variant string) ViewState {
	return ViewState{
		Window:  window,
		Variant: variant,
		Today:   today,
		Inspect: -1,
		Form:    EmptyForm(),
	}
}

// Visible applies the selected window to the cached records.
func (s ViewState) Visible() []recorddto.RecordOutput {
	if s.Window.All() {
		return s.Records
	}
	out := make([]recorddto.RecordOutput, 0, len(s.Records))
	for _, r := range s.Records {
		day, err := recorddomain.ParseDay(r.Date)
		if err != nil {
			continue
		}
		if s.Window.Contains(day, s.Today) {
			out = append(out, r)
		}
	}
	return out
}

// ChartInput is the render request for the current state.
func (s ViewState) ChartInput() chartdto.RenderInput {
	return chartdto.RenderInput{Records: s.Visible(), Variant: s.Variant, Inspect: s.Inspect}
}

// Blocked reports whether an alert must be dismissed before other input.
func (s ViewState) Blocked() bool {
	return s.Alert.Kind != AlertNone
}
