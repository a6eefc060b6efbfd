package out

import (
	"context"

	"healthlog/internal/modules/sheet/domain"
)

// RowStore is an append-only table. List returns rows in insertion order.
type RowStore interface {
	Append(ctx context.Context, row domain.Row) error
	List(ctx context.Context) ([]domain.Row, error)
	Close() error
}
