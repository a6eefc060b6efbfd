package in

import (
	"context"

	"healthlog/internal/modules/proxy/dto"
)

type Usecase interface {
	Handle(ctx context.Context, method string, body []byte) dto.Reply
}
