package domain_test

import (
	"encoding/json"
	"testing"

	"healthlog/internal/modules/record/domain"
)

func TestParseDayAcceptsDateAndTimestamp(t *testing.T) {
	t.Parallel()
	for _, raw := range []string{"2024-03-05", " 2024-03-05 ", "2024-03-05T12:00:00Z"} {
		d, err := domain.ParseDay(raw)
		if err != nil {
			t.Fatalf("parse %q: %v", raw, err)
		}
		if d.String() != "2024-03-05" {
			t.Fatalf("parse %q: expected 2024-03-05, got %s", raw, d)
		}
	}
	if _, err := domain.ParseDay("5 March"); err == nil {
		t.Fatalf("expected error for free-form date")
	}
}

func TestParseAnswerNormalises(t *testing.T) {
	t.Parallel()
	cases := map[string]domain.Answer{
		"yes": domain.Yes, "YES": domain.Yes, "ja": domain.Yes, " Ja ": domain.Yes,
		"no": domain.No, "Nej": domain.No, "false": domain.No,
		"maybe": domain.Answer("maybe"),
	}
	for in, want := range cases {
		if got := domain.ParseAnswer(in); got != want {
			t.Fatalf("ParseAnswer(%q) = %q, want %q", in, got, want)
		}
	}
	if domain.Yes.Flag() != 1 || domain.No.Flag() != 0 {
		t.Fatalf("unexpected flags")
	}
}

func TestParseIntCoercesFormText(t *testing.T) {
	t.Parallel()
	cases := map[string]int{
		"3": 3, " 2 ": 2, "4.7": 4, "": 0, "abc": 0, "-1": -1,
		"3abc": 3, "+5": 5, "12 pills": 12, "- 1": 0, "-": 0, "007": 7,
	}
	for in, want := range cases {
		if got := domain.ParseInt(in); got != want {
			t.Fatalf("ParseInt(%q) = %d, want %d", in, got, want)
		}
	}
}

func TestHealthRecordDecodesNumbersAndNumericStrings(t *testing.T) {
	t.Parallel()
	raw := `{"date":"2024-03-05","painLevel":"3","pillCount":2,"exerciseDone":"Yes","feelsHealthy":"no","weather":"sun","activityNote":"walk","notes":""}`
	var r domain.HealthRecord
	if err := json.Unmarshal([]byte(raw), &r); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if r.Date.String() != "2024-03-05" || r.PainLevel != 3 || r.PillCount != 2 {
		t.Fatalf("unexpected record: %+v", r)
	}
	if r.ExerciseDone != domain.Yes || r.FeelsHealthy != domain.No {
		t.Fatalf("unexpected answers: %+v", r)
	}
	if r.Weather != "sun" || r.ActivityNote != "walk" || r.Notes != "" {
		t.Fatalf("unexpected text fields: %+v", r)
	}
}

func TestHealthRecordDecodesLegacyKeys(t *testing.T) {
	t.Parallel()
	raw := `{"datum":"2024-01-02","smarta":4,"tabletter":"1","ovningar":"ja","frisk":"nej","vader":"regn","gjort":"jobb","anteckningar":"trött"}`
	var r domain.HealthRecord
	if err := json.Unmarshal([]byte(raw), &r); err != nil {
		t.Fatalf("decode: %v", err)
	}
	want := domain.HealthRecord{
		Date:         domain.MustDay("2024-01-02"),
		PainLevel:    4,
		PillCount:    1,
		ExerciseDone: domain.Yes,
		FeelsHealthy: domain.No,
		Weather:      "regn",
		ActivityNote: "jobb",
		Notes:        "trött",
	}
	if r != want {
		t.Fatalf("expected %+v, got %+v", want, r)
	}
}

func TestHealthRecordUnreadableDateIsZero(t *testing.T) {
	t.Parallel()
	var r domain.HealthRecord
	if err := json.Unmarshal([]byte(`{"date":"soon","painLevel":1}`), &r); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !r.Date.IsZero() || r.Date.String() != "" {
		t.Fatalf("expected zero day, got %q", r.Date)
	}
	if r.PainLevel != 1 {
		t.Fatalf("expected pain 1, got %d", r.PainLevel)
	}
}

func TestHealthRecordEncodesCanonicalKeys(t *testing.T) {
	t.Parallel()
	r := domain.HealthRecord{Date: domain.MustDay("2024-03-05"), PainLevel: 2, ExerciseDone: domain.Yes, FeelsHealthy: domain.No}
	raw, err := json.Marshal(r)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		t.Fatalf("decode map: %v", err)
	}
	if fields["date"] != "2024-03-05" || fields["exerciseDone"] != "yes" {
		t.Fatalf("unexpected encoding: %s", raw)
	}
	for _, key := range []string{"painLevel", "pillCount", "feelsHealthy", "weather", "activityNote", "notes"} {
		if _, ok := fields[key]; !ok {
			t.Fatalf("missing key %s in %s", key, raw)
		}
	}
}
