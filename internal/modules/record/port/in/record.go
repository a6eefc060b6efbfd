package in

import (
	"context"

	"healthlog/internal/modules/record/dto"
)

type Usecase interface {
	Load(ctx context.Context) ([]dto.RecordOutput, error)
	Save(ctx context.Context, input dto.SaveInput) (dto.SaveOutput, error)
	History(ctx context.Context, input dto.HistoryInput) (dto.HistoryOutput, error)
	Export(ctx context.Context, input dto.ExportInput) (dto.ExportOutput, error)
}
