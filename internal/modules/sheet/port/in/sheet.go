package in

import "context"

type Usecase interface {
	List(ctx context.Context) ([]map[string]any, error)
	Append(ctx context.Context, payload []byte) error
}
