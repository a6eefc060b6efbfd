package in

import (
	"context"

	"healthlog/internal/modules/chart/dto"
)

type Usecase interface {
	Render(ctx context.Context, input dto.RenderInput) (dto.RenderOutput, error)
	Teardown()
}
