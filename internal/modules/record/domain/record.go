package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

const dayLayout = "2006-01-02"

// Day is a calendar date without time of day. The zero Day means the stored
// value could not be read as a date.
type Day struct {
	t time.Time
}

// DayOf returns the calendar day of t in t's own location.
func DayOf(t time.Time) Day {
	return Day{t: time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

// ParseDay accepts YYYY-MM-DD or an RFC 3339 timestamp. Timestamps are moved to
// the local zone first: spreadsheet scripts serialise local midnight as UTC.
func ParseDay(s string) (Day, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(dayLayout, s); err == nil {
		return DayOf(t), nil
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return DayOf(t.In(time.Local)), nil
	}
	return Day{}, fmt.Errorf("parse day %q", s)
}

func MustDay(s string) Day {
	d, err := ParseDay(s)
	if err != nil {
		panic(err)
	}
	return d
}

func (d Day) IsZero() bool { return d.t.IsZero() }

func (d Day) Before(o Day) bool { return d.t.Before(o.t) }

func (d Day) Equal(o Day) bool { return d.t.Equal(o.t) }

// AddDays moves d by n calendar days.
func (d Day) AddDays(n int) Day { return Day{t: d.t.AddDate(0, 0, n)} }

func (d Day) Time() time.Time { return d.t }

func (d Day) String() string {
	if d.IsZero() {
		return ""
	}
	return d.t.Format(dayLayout)
}

func (d Day) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Day) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		*d = Day{}
		return nil
	}
	parsed, err := ParseDay(s)
	if err != nil {
		*d = Day{}
		return nil
	}
	*d = parsed
	return nil
}

type Answer string

const (
	Yes Answer = "yes"
	No  Answer = "no"
)

// ParseAnswer normalises case and the legacy ja/nej values. Anything else is
// kept lower-cased so it still round-trips.
func ParseAnswer(s string) Answer {
	switch v := strings.ToLower(strings.TrimSpace(s)); v {
	case "yes", "ja", "true", "1":
		return Yes
	case "no", "nej", "false", "0":
		return No
	default:
		return Answer(v)
	}
}

// Flag maps yes to 1 and everything else to 0.
func (a Answer) Flag() int {
	if a == Yes {
		return 1
	}
	return 0
}

// HealthRecord is one daily entry. Records are never updated once appended.
type HealthRecord struct {
	Date         Day    `json:"date"`
	PainLevel    int    `json:"painLevel"`
	PillCount    int    `json:"pillCount"`
	ExerciseDone Answer `json:"exerciseDone"`
	FeelsHealthy Answer `json:"feelsHealthy"`
	Weather      string `json:"weather"`
	ActivityNote string `json:"activityNote"`
	Notes        string `json:"notes"`
}

// legacy keys written by the first version of the form
var aliases = map[string][]string{
	"date":         {"date", "datum"},
	"painLevel":    {"painLevel", "smarta"},
	"pillCount":    {"pillCount", "tabletter"},
	"exerciseDone": {"exerciseDone", "ovningar"},
	"feelsHealthy": {"feelsHealthy", "frisk"},
	"weather":      {"weather", "vader"},
	"activityNote": {"activityNote", "gjort"},
	"notes":        {"notes", "anteckningar"},
}

func (r *HealthRecord) UnmarshalJSON(b []byte) error {
	raw := map[string]json.RawMessage{}
	if err := json.Unmarshal(b, &raw); err != nil {
		return fmt.Errorf("decode record: %w", err)
	}
	field := func(name string) json.RawMessage {
		for _, key := range aliases[name] {
			if v, ok := raw[key]; ok {
				return v
			}
		}
		return nil
	}

	out := HealthRecord{
		PainLevel:    coerceInt(field("painLevel")),
		PillCount:    coerceInt(field("pillCount")),
		ExerciseDone: ParseAnswer(coerceString(field("exerciseDone"))),
		FeelsHealthy: ParseAnswer(coerceString(field("feelsHealthy"))),
		Weather:      coerceString(field("weather")),
		ActivityNote: coerceString(field("activityNote")),
		Notes:        coerceString(field("notes")),
	}
	if d, err := ParseDay(coerceString(field("date"))); err == nil {
		out.Date = d
	}
	*r = out
	return nil
}

// coerceInt reads a JSON number or numeric string; anything else is 0.
func coerceInt(raw json.RawMessage) int {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return 0
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return int(math.Trunc(f))
	}
	return ParseInt(coerceString(raw))
}

func coerceString(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(raw)
}

// ParseInt reads the leading integer of a form field: leading space and one
// sign are allowed, parsing stops at the first non-digit, no digits yields 0.
func ParseInt(s string) int {
	s = strings.TrimLeft(s, " \t\r\n")
	neg := false
	if s != "" && (s[0] == '-' || s[0] == '+') {
		neg = s[0] == '-'
		s = s[1:]
	}
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	if neg {
		return -n
	}
	return n
}
