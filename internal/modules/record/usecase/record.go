package usecase

import (
	"context"
	"errors"
	"fmt"

	"healthlog/internal/modules/record/domain"
	"healthlog/internal/modules/record/dto"
	recordin "healthlog/internal/modules/record/port/in"
	"healthlog/internal/modules/record/service"
	apperrors "healthlog/internal/platform/errors"
)

type Interactor struct {
	svc *service.RecordService
}

func NewInteractor(svc *service.RecordService) recordin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Load(ctx context.Context) ([]dto.RecordOutput, error) {
	records, err := i.svc.Load(ctx)
	if err != nil {
		return nil, err
	}
	return toOutputs(records), nil
}

func (i *Interactor) Save(ctx context.Context, input dto.SaveInput) (dto.SaveOutput, error) {
	saved, records, err := i.svc.Save(ctx, service.Form{
		Date:         input.Date,
		PainLevel:    input.PainLevel,
		PillCount:    input.PillCount,
		ExerciseDone: input.ExerciseDone,
		FeelsHealthy: input.FeelsHealthy,
		Weather:      input.Weather,
		ActivityNote: input.ActivityNote,
		Notes:        input.Notes,
	})
	if errors.Is(err, apperrors.ErrReloadAfterSave) {
		return dto.SaveOutput{Saved: ToOutput(saved)}, err
	}
	if err != nil {
		return dto.SaveOutput{}, err
	}
	return dto.SaveOutput{Saved: ToOutput(saved), Records: toOutputs(records)}, nil
}

func (i *Interactor) History(ctx context.Context, input dto.HistoryInput) (dto.HistoryOutput, error) {
	window, err := domain.ParseWindow(input.Window)
	if err != nil {
		return dto.HistoryOutput{}, fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}
	records, err := i.svc.History(ctx, window)
	if err != nil {
		return dto.HistoryOutput{}, err
	}
	return dto.HistoryOutput{Window: window.String(), Records: toOutputs(records)}, nil
}

func (i *Interactor) Export(ctx context.Context, input dto.ExportInput) (dto.ExportOutput, error) {
	window, err := domain.ParseWindow(input.Window)
	if err != nil {
		return dto.ExportOutput{}, fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}
	path, count, err := i.svc.Export(ctx, input.Path, window)
	if err != nil {
		return dto.ExportOutput{}, err
	}
	return dto.ExportOutput{Path: path, Count: count}, nil
}

func ToOutput(r domain.HealthRecord) dto.RecordOutput {
	return dto.RecordOutput{
		Date:         r.Date.String(),
		PainLevel:    r.PainLevel,
		PillCount:    r.PillCount,
		ExerciseDone: string(r.ExerciseDone),
		FeelsHealthy: string(r.FeelsHealthy),
		Weather:      r.Weather,
		ActivityNote: r.ActivityNote,
		Notes:        r.Notes,
	}
}

func toOutputs(records []domain.HealthRecord) []dto.RecordOutput {
	out := make([]dto.RecordOutput, 0, len(records))
	for _, r := range records {
		out = append(out, ToOutput(r))
	}
	return out
}
