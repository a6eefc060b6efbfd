package dto

// RecordOutput is the transport shape of one stored record.
type RecordOutput struct {
	Date         string
	PainLevel    int
	PillCount    int
	ExerciseDone string
	FeelsHealthy string
	Weather      string
	ActivityNote string
	Notes        string
}

// SaveInput mirrors the form: numeric fields arrive as typed text and are
// coerced to integers. Date is optional and defaults to today.
type SaveInput struct {
	Date         string
	PainLevel    string
	PillCount    string
	ExerciseDone string
	FeelsHealthy string
	Weather      string
	ActivityNote string
	Notes        string
}

type SaveOutput struct {
	Saved   RecordOutput
	Records []RecordOutput
}

type HistoryInput struct {
	Window string
}

type HistoryOutput struct {
	Window  string
	Records []RecordOutput
}

type ExportInput struct {
	Path   string
	Window string
}

type ExportOutput struct {
	Path  string
	Count int
}
