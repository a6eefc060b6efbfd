package domain

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// SortByDate orders records ascending by date. Records on the same day keep
// their input order, and undated records sort first.
func SortByDate(records []HealthRecord) []HealthRecord {
	out := slices.Clone(records)
	slices.SortStableFunc(out, func(a, b HealthRecord) int {
		return a.Date.Time().Compare(b.Date.Time())
	})
	return out
}

// Window restricts the displayed range to the last Days days. Days == 0 is the
// "all" window.
type Window struct {
	Days int
}

var (
	WindowAll = Window{}
	Window7   = Window{Days: 7}
	Window30  = Window{Days: 30}
	Window90  = Window{Days: 90}
)

// Windows lists the selectable windows in display order.
var Windows = []Window{Window7, Window30, Window90, WindowAll}

func (w Window) All() bool { return w.Days <= 0 }

func (w Window) String() string {
	if w.All() {
		return "all"
	}
	return strconv.Itoa(w.Days) + "d"
}

func (w Window) Label() string {
	if w.All() {
		return "All"
	}
	return strconv.Itoa(w.Days) + " days"
}

// ParseWindow accepts "all", "7", "7d".
func ParseWindow(s string) (Window, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" || s == "all" {
		return WindowAll, nil
	}
	n, err := strconv.Atoi(strings.TrimSuffix(s, "d"))
	if err != nil || n < 0 {
		return Window{}, fmt.Errorf("invalid window %q", s)
	}
	return Window{Days: n}, nil
}

// ParsePresetWindow is ParseWindow restricted to the selectable Windows.
func ParsePresetWindow(s string) (Window, error) {
	w, err := ParseWindow(s)
	if err != nil {
		return Window{}, err
	}
	for _, preset := range Windows {
		if preset == w {
			return w, nil
		}
	}
	return Window{}, fmt.Errorf("window %q is not one of %v", s, Windows)
}

// Contains reports whether d lies in [today-Days, today].
func (w Window) Contains(d, today Day) bool {
	if w.All() {
		return true
	}
	if d.IsZero() {
		return false
	}
	from := today.AddDays(-w.Days)
	return !d.Before(from) && !today.Before(d)
}

// Apply filters records in order. The all window returns the input as is.
func (w Window) Apply(records []HealthRecord, today Day) []HealthRecord {
	if w.All() {
		return records
	}
	out := make([]HealthRecord, 0, len(records))
	for _, r := range records {
		if w.Contains(r.Date, today) {
			out = append(out, r)
		}
	}
	return out
}
