package out

import (
	"context"

	"healthlog/internal/modules/record/domain"
)

// RecordGateway reaches the record store, directly or through the proxy.
type RecordGateway interface {
	List(ctx context.Context) ([]domain.HealthRecord, error)
	Append(ctx context.Context, record domain.HealthRecord) error
}

// Exporter writes a record set to a file and returns its path.
type Exporter interface {
	Export(ctx context.Context, path string, records []domain.HealthRecord) (string, error)
}
