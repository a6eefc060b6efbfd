package service

import (
	"context"
	"fmt"
	"strings"

	"healthlog/internal/modules/record/domain"
	recordout "healthlog/internal/modules/record/port/out"
	"healthlog/internal/platform/clock"
	apperrors "healthlog/internal/platform/errors"
)

type RecordService struct {
	clock    clock.Clock
	gateway  recordout.RecordGateway
	exporter recordout.Exporter
}

func NewRecordService(clock clock.Clock, gateway recordout.RecordGateway, exporter recordout.Exporter) *RecordService {
	return &RecordService{clock: clock, gateway: gateway, exporter: exporter}
}

// Form holds raw field values as typed by the user.
type Form struct {
	Date         string
	PainLevel    string
	PillCount    string
	ExerciseDone string
	FeelsHealthy string
	Weather      string
	ActivityNote string
	Notes        string
}

func (s *RecordService) Today() domain.Day {
	return domain.DayOf(clock.Today(s.clock))
}

// Build turns a form into a record. Numeric fields are coerced, free text is
// kept verbatim.
func (s *RecordService) Build(form Form) (domain.HealthRecord, error) {
	date := s.Today()
	if strings.TrimSpace(form.Date) != "" {
		parsed, err := domain.ParseDay(form.Date)
		if err != nil {
			return domain.HealthRecord{}, fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
		}
		date = parsed
	}
	return domain.HealthRecord{
		Date:         date,
		PainLevel:    domain.ParseInt(form.PainLevel),
		PillCount:    domain.ParseInt(form.PillCount),
		ExerciseDone: domain.ParseAnswer(form.ExerciseDone),
		FeelsHealthy: domain.ParseAnswer(form.FeelsHealthy),
		Weather:      form.Weather,
		ActivityNote: form.ActivityNote,
		Notes:        form.Notes,
	}, nil
}

func (s *RecordService) Load(ctx context.Context) ([]domain.HealthRecord, error) {
	records, err := s.gateway.List(ctx)
	if err != nil {
		return nil, err
	}
	return domain.SortByDate(records), nil
}

// Save appends one record and returns the authoritative list fetched after
// the write.
func (s *RecordService) Save(ctx context.Context, form Form) (domain.HealthRecord, []domain.HealthRecord, error) {
	record, err := s.Build(form)
	if err != nil {
		return domain.HealthRecord{}, nil, err
	}
	if err := s.gateway.Append(ctx, record); err != nil {
		return domain.HealthRecord{}, nil, err
	}
	records, err := s.Load(ctx)
	if err != nil {
		return record, nil, fmt.Errorf("%w: %w", apperrors.ErrReloadAfterSave, err)
	}
	return record, records, nil
}

func (s *RecordService) History(ctx context.Context, window domain.Window) ([]domain.HealthRecord, error) {
	records, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}
	return window.Apply(records, s.Today()), nil
}

func (s *RecordService) Export(ctx context.Context, path string, window domain.Window) (string, int, error) {
	if s.exporter == nil {
		return "", 0, fmt.Errorf("exporter is not configured")
	}
	records, err := s.History(ctx, window)
	if err != nil {
		return "", 0, err
	}
	written, err := s.exporter.Export(ctx, path, records)
	if err != nil {
		return "", 0, err
	}
	return written, len(records), nil
}
