package out

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	proxyout "healthlog/internal/modules/proxy/port/out"
)

type HTTPScriptClient struct {
	client *http.Client
}

func NewHTTPScriptClient(client *http.Client) proxyout.ScriptClient {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPScriptClient{client: client}
}

// Fetch returns the script's body untouched once it is known to be JSON.
func (c *HTTPScriptClient) Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read script response: %w", err)
	}
	if !json.Valid(payload) {
		return nil, fmt.Errorf("script response is not valid JSON (status %d)", resp.StatusCode)
	}
	return payload, nil
}

// Forward posts body as-is. The script's reply is drained and ignored.
func (c *HTTPScriptClient) Forward(ctx context.Context, url string, body []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}
