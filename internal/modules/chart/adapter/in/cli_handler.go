package in

import (
	"context"

	"healthlog/internal/modules/chart/dto"
	chartin "healthlog/internal/modules/chart/port/in"
	recorddto "healthlog/internal/modules/record/dto"
)

type CLIHandler struct {
	usecase chartin.Usecase
}

func NewCLIHandler(usecase chartin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Render(ctx context.Context, records []recorddto.RecordOutput, variant string, inspect int) (dto.RenderOutput, error) {
	return h.usecase.Render(ctx, dto.RenderInput{Records: records, Variant: variant, Inspect: inspect})
}

func (h CLIHandler) Teardown() {
	h.usecase.Teardown()
}
