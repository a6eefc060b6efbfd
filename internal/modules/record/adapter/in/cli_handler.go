package in

import (
	"context"

	"healthlog/internal/modules/record/dto"
	recordin "healthlog/internal/modules/record/port/in"
)

type CLIHandler struct {
	usecase recordin.Usecase
}

func NewCLIHandler(usecase recordin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Load(ctx context.Context) ([]dto.RecordOutput, error) {
	return h.usecase.Load(ctx)
}

func (h CLIHandler) Save(ctx context.Context, input dto.SaveInput) (dto.SaveOutput, error) {
	return h.usecase.Save(ctx, input)
}

func (h CLIHandler) History(ctx context.Context, window string) (dto.HistoryOutput, error) {
	return h.usecase.History(ctx, dto.HistoryInput{Window: window})
}

func (h CLIHandler) Export(ctx context.Context, path, window string) (dto.ExportOutput, error) {
	return h.usecase.Export(ctx, dto.ExportInput{Path: path, Window: window})
}
