package service

import (
	"context"
	"net/http"

	"healthlog/internal/modules/proxy/dto"
	proxyin "healthlog/internal/modules/proxy/port/in"
	proxyout "healthlog/internal/modules/proxy/port/out"
)

// ProxyService relays GET and POST to the script. It keeps no state between
// requests and never retries.
type ProxyService struct {
	client proxyout.ScriptClient
	url    proxyout.URLSource
}

func NewProxyService(client proxyout.ScriptClient, url proxyout.URLSource) proxyin.Usecase {
	return &ProxyService{client: client, url: url}
}

func (s *ProxyService) Handle(ctx context.Context, method string, body []byte) dto.Reply {
	switch method {
	case http.MethodGet:
		payload, err := s.client.Fetch(ctx, s.url())
		if err != nil {
			return dto.Failure(err)
		}
		return dto.JSON(payload)
	case http.MethodPost:
		if err := s.client.Forward(ctx, s.url(), body); err != nil {
			return dto.Failure(err)
		}
		return dto.Saved()
	default:
		return dto.MethodNotAllowed()
	}
}
