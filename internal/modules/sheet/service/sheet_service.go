package service

import (
	"context"
	"fmt"

	"healthlog/internal/modules/sheet/domain"
	sheetin "healthlog/internal/modules/sheet/port/in"
	sheetout "healthlog/internal/modules/sheet/port/out"
	apperrors "healthlog/internal/platform/errors"
)

type SheetService struct {
	store sheetout.RowStore
}

func NewSheetService(store sheetout.RowStore) sheetin.Usecase {
	return &SheetService{store: store}
}

func (s *SheetService) List(ctx context.Context) ([]map[string]any, error) {
	rows, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]map[string]any, 0, len(rows))
	for _, row := range rows {
		out = append(out, row)
	}
	return out, nil
}

func (s *SheetService) Append(ctx context.Context, payload []byte) error {
	row, err := domain.DecodeRow(payload)
	if err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}
	return s.store.Append(ctx, row)
}
