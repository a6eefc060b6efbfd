package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"healthlog/internal/modules/record/domain"
	"healthlog/internal/modules/record/dto"
	recordin "healthlog/internal/modules/record/port/in"
	recordout "healthlog/internal/modules/record/port/out"
	"healthlog/internal/modules/record/service"
	"healthlog/internal/modules/record/usecase"
	"healthlog/internal/platform/clock"
	apperrors "healthlog/internal/platform/errors"
)

type fakeGateway struct {
	records   []domain.HealthRecord
	listErr   error
	appendErr error
	// failListAfterAppend makes every List after the first Append fail.
	failListAfterAppend bool
	appended            int
	listed              int
}

func (f *fakeGateway) List(context.Context) ([]domain.HealthRecord, error) {
	f.listed++
	if f.listErr != nil {
		return nil, f.listErr
	}
	if f.failListAfterAppend && f.appended > 0 {
		return nil, errors.New("connection reset")
	}
	return append([]domain.HealthRecord(nil), f.records...), nil
}

func (f *fakeGateway) Append(_ context.Context, r domain.HealthRecord) error {
	if f.appendErr != nil {
		return f.appendErr
	}
	f.appended++
	f.records = append(f.records, r)
	return nil
}

type fakeExporter struct {
	path    string
	records []domain.HealthRecord
}

func (f *fakeExporter) Export(_ context.Context, path string, records []domain.HealthRecord) (string, error) {
	f.path = path
	f.records = records
	return path, nil
}

var fixedNow = clock.Fixed(time.Date(2024, 3, 31, 21, 30, 0, 0, time.Local))

func newUsecase(gw *fakeGateway, exp *fakeExporter) recordin.Usecase {
	var exporter recordout.Exporter
	if exp != nil {
		exporter = exp
	}
	return usecase.NewInteractor(service.NewRecordService(fixedNow, gw, exporter))
}

func TestLoadSortsByDate(t *testing.T) {
	t.Parallel()
	gw := &fakeGateway{records: []domain.HealthRecord{
		{Date: domain.MustDay("2024-03-03"), Notes: "c"},
		{Date: domain.MustDay("2024-03-01"), Notes: "a"},
		{Date: domain.MustDay("2024-03-02"), Notes: "b"},
	}}
	out, err := newUsecase(gw, nil).Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(out) != 3 || out[0].Notes != "a" || out[2].Notes != "c" {
		t.Fatalf("unexpected order: %+v", out)
	}
}

func TestLoadPropagatesStatusError(t *testing.T) {
	t.Parallel()
	gw := &fakeGateway{listErr: &apperrors.HTTPStatusError{Status: 502}}
	_, err := newUsecase(gw, nil).Load(context.Background())
	var statusErr *apperrors.HTTPStatusError
	if !errors.As(err, &statusErr) || statusErr.Status != 502 {
		t.Fatalf("expected status error, got %v", err)
	}
	if err.Error() != "HTTP error! status: 502" {
		t.Fatalf("unexpected message: %q", err.Error())
	}
	if !errors.Is(err, apperrors.ErrUpstream) {
		t.Fatalf("status error should unwrap to ErrUpstream")
	}
}

func TestSaveDefaultsDateAndReturnsReloadedList(t *testing.T) {
	t.Parallel()
	gw := &fakeGateway{records: []domain.HealthRecord{{Date: domain.MustDay("2024-03-30"), PainLevel: 1}}}
	out, err := newUsecase(gw, nil).Save(context.Background(), dto.SaveInput{
		PainLevel:    "3",
		PillCount:    " 1 ",
		ExerciseDone: "yes",
		FeelsHealthy: "no",
		Weather:      "  cloudy ",
		Notes:        "line one\nline two",
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if out.Saved.Date != "2024-03-31" {
		t.Fatalf("expected today's date, got %q", out.Saved.Date)
	}
	if out.Saved.PainLevel != 3 || out.Saved.PillCount != 1 {
		t.Fatalf("expected coerced numbers, got %+v", out.Saved)
	}
	if out.Saved.Weather != "  cloudy " || out.Saved.Notes != "line one\nline two" {
		t.Fatalf("free text must be kept verbatim, got %+v", out.Saved)
	}
	if gw.listed != 1 {
		t.Fatalf("expected one reload after save, got %d", gw.listed)
	}
	if len(out.Records) != 2 || out.Records[1].Date != "2024-03-31" {
		t.Fatalf("expected reloaded list with new entry last, got %+v", out.Records)
	}
}

func TestSaveUnparseableNumberBecomesZero(t *testing.T) {
	t.Parallel()
	gw := &fakeGateway{}
	out, err := newUsecase(gw, nil).Save(context.Background(), dto.SaveInput{PainLevel: "lots"})
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if out.Saved.PainLevel != 0 {
		t.Fatalf("expected 0, got %d", out.Saved.PainLevel)
	}
}

func TestSaveRejectsUnreadableExplicitDate(t *testing.T) {
	t.Parallel()
	gw := &fakeGateway{}
	_, err := newUsecase(gw, nil).Save(context.Background(), dto.SaveInput{Date: "yesterday"})
	if !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
	if gw.appended != 0 {
		t.Fatalf("nothing should be appended")
	}
}

func TestSaveFailureSkipsReload(t *testing.T) {
	t.Parallel()
	gw := &fakeGateway{appendErr: &apperrors.HTTPStatusError{Status: 500}}
	out, err := newUsecase(gw, nil).Save(context.Background(), dto.SaveInput{PainLevel: "2"})
	if err == nil {
		t.Fatalf("expected error")
	}
	if errors.Is(err, apperrors.ErrReloadAfterSave) {
		t.Fatalf("append failure must not look like a reload failure")
	}
	if gw.listed != 0 || out.Saved.Date != "" {
		t.Fatalf("expected no reload and empty output, got listed=%d out=%+v", gw.listed, out)
	}
}

func TestSaveReportsReloadFailureSeparately(t *testing.T) {
	t.Parallel()
	gw := &fakeGateway{failListAfterAppend: true}
	out, err := newUsecase(gw, nil).Save(context.Background(), dto.SaveInput{PainLevel: "2"})
	if !errors.Is(err, apperrors.ErrReloadAfterSave) {
		t.Fatalf("expected reload failure, got %v", err)
	}
	if out.Saved.PainLevel != 2 || out.Records != nil {
		t.Fatalf("expected saved record without list, got %+v", out)
	}
}

func TestHistoryAppliesWindow(t *testing.T) {
	t.Parallel()
	gw := &fakeGateway{records: []domain.HealthRecord{
		{Date: domain.MustDay("2024-03-01")},
		{Date: domain.MustDay("2024-03-24")},
		{Date: domain.MustDay("2024-03-31")},
	}}
	uc := newUsecase(gw, nil)
	out, err := uc.History(context.Background(), dto.HistoryInput{Window: "7d"})
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if out.Window != "7d" || len(out.Records) != 2 {
		t.Fatalf("unexpected history: %+v", out)
	}
	if _, err := uc.History(context.Background(), dto.HistoryInput{Window: "fortnight"}); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
}

func TestExportWritesFilteredHistory(t *testing.T) {
	t.Parallel()
	gw := &fakeGateway{records: []domain.HealthRecord{{Date: domain.MustDay("2023-01-01")}, {Date: domain.MustDay("2024-03-30")}}}
	exp := &fakeExporter{}
	out, err := newUsecase(gw, exp).Export(context.Background(), dto.ExportInput{Path: "out.xlsx", Window: "30d"})
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if out.Path != "out.xlsx" || out.Count != 1 || len(exp.records) != 1 {
		t.Fatalf("unexpected export: %+v / %d", out, len(exp.records))
	}
}
