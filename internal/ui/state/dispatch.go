package state

import (
	recorddomain "healthlog/internal/modules/record/domain"
	recorddto "healthlog/internal/modules/record/dto"
)

type ActionKind string

const (
	ActionLoadStarted   ActionKind = "load:started"
	ActionLoaded        ActionKind = "load:done"
	ActionLoadFailed    ActionKind = "load:failed"
	ActionSaveStarted   ActionKind = "save:started"
	ActionSaved         ActionKind = "save:done"
	ActionSaveFailed    ActionKind = "save:failed"
	ActionSelectWindow  ActionKind = "filter:window"
	ActionSelectVariant ActionKind = "chart:variant"
	ActionInspectPrev   ActionKind = "inspect:prev"
	ActionInspectNext   ActionKind = "inspect:next"
	ActionSetField      ActionKind = "form:set"
	ActionResetForm     ActionKind = "form:reset"
	ActionDismissAlert  ActionKind = "alert:dismiss"
)

// Action is a user intent or an async result. Only the fields relevant to
// Kind are read.
type Action struct {
	Kind    ActionKind
	Records []recorddto.RecordOutput
	Err     error
	Today   recorddomain.Day
	Window  recorddomain.Window
	Variant string
	Field   Field
	Value   string
}

type transition func(ViewState, Action) ViewState

var transitions = map[ActionKind]transition{
	ActionLoadStarted:   loadStarted,
	ActionLoaded:        loaded,
	ActionLoadFailed:    loadFailed,
	ActionSaveStarted:   saveStarted,
	ActionSaved:         saved,
	ActionSaveFailed:    saveFailed,
	ActionSelectWindow:  selectWindow,
	ActionSelectVariant: selectVariant,
	ActionInspectPrev:   inspectPrev,
	ActionInspectNext:   inspectNext,
	ActionSetField:      setField,
	ActionResetForm:     resetForm,
	ActionDismissAlert:  dismissAlert,
}

// Dispatch applies a to s. Unknown kinds leave s unchanged.
func Dispatch(s ViewState, a Action) ViewState {
	t, ok := transitions[a.Kind]
	if !ok {
		return s
	}
	return t(s, a)
}

const (
	loadFailedText = "Could not load the history from the store."
	saveFailedText = "Something went wrong while saving."
	savedText      = "Your entry has been saved."
)

func loadStarted(s ViewState, _ Action) ViewState {
	s.Loading = true
	return s
}

// refreshToday moves the window anchor forward when an async result carries
// the day it completed on.
func refreshToday(s ViewState, a Action) ViewState {
	if !a.Today.IsZero() {
		s.Today = a.Today
	}
	return s
}

func loaded(s ViewState, a Action) ViewState {
	s = refreshToday(s, a)
	s.Loading = false
	s.Records = a.Records
	s.Inspect = -1
	return s
}

// loadFailed drops the cache so the chart falls back to empty.
func loadFailed(s ViewState, a Action) ViewState {
	s = refreshToday(s, a)
	s.Loading = false
	s.Records = nil
	s.Inspect = -1
	s.Alert = Alert{Kind: AlertError, Text: withCause(loadFailedText, a.Err)}
	return s
}

func saveStarted(s ViewState, _ Action) ViewState {
	s.Saving = true
	return s
}

func saved(s ViewState, a Action) ViewState {
	s = refreshToday(s, a)
	s.Saving = false
	s.Form = EmptyForm()
	s.Records = a.Records
	s.Inspect = -1
	s.Alert = Alert{Kind: AlertInfo, Text: savedText}
	return s
}

func saveFailed(s ViewState, a Action) ViewState {
	s.Saving = false
	s.Alert = Alert{Kind: AlertError, Text: withCause(saveFailedText, a.Err)}
	return s
}

func selectWindow(s ViewState, a Action) ViewState {
	s.Window = a.Window
	s.Inspect = -1
	return s
}

func selectVariant(s ViewState, a Action) ViewState {
	s.Variant = a.Variant
	return s
}

func inspectPrev(s ViewState, _ Action) ViewState {
	n := len(s.Visible())
	if n == 0 {
		return s
	}
	i := s.Inspect
	if i < 0 || i >= n {
		i = n - 1
	}
	if i > 0 {
		i--
	}
	s.Inspect = i
	return s
}

func inspectNext(s ViewState, _ Action) ViewState {
	n := len(s.Visible())
	if n == 0 {
		return s
	}
	i := s.Inspect
	if i < 0 || i >= n {
		i = n - 1
	}
	if i < n-1 {
		i++
	}
	s.Inspect = i
	return s
}

func setField(s ViewState, a Action) ViewState {
	s.Form = s.Form.With(a.Field, a.Value)
	return s
}

func resetForm(s ViewState, _ Action) ViewState {
	s.Form = EmptyForm()
	return s
}

func dismissAlert(s ViewState, _ Action) ViewState {
	s.Alert = Alert{}
	return s
}

func withCause(text string, err error) string {
	if err == nil {
		return text
	}
	return text + " (" + err.Error() + ")"
}
