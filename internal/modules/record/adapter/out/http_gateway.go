package out

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"healthlog/internal/modules/record/domain"
	recordout "healthlog/internal/modules/record/port/out"
	apperrors "healthlog/internal/platform/errors"
)

// HTTPGateway talks the GET-all / POST-one contract shared by the proxy and
// the spreadsheet script.
type HTTPGateway struct {
	url    string
	client *http.Client
}

func NewHTTPGateway(url string, client *http.Client) recordout.RecordGateway {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPGateway{url: url, client: client}
}

func (g *HTTPGateway) List(ctx context.Context) ([]domain.HealthRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.url, nil)
	if err != nil {
		return nil, fmt.Errorf("build list request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, &apperrors.HTTPStatusError{Status: resp.StatusCode}
	}
	records := []domain.HealthRecord{}
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, fmt.Errorf("decode records: %w", err)
	}
	return records, nil
}

func (g *HTTPGateway) Append(ctx context.Context, record domain.HealthRecord) error {
	payload, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("marshal record: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build append request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := g.client.Do(req)
	if err != nil {
		return fmt.Errorf("append record: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &apperrors.HTTPStatusError{Status: resp.StatusCode}
	}
	return nil
}
