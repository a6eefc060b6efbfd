package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"healthlog/internal/modules/proxy/dto"
	"healthlog/internal/modules/proxy/service"
)

type fakeScript struct {
	payload  []byte
	err      error
	urls     []string
	forwards [][]byte
}

func (f *fakeScript) Fetch(_ context.Context, url string) ([]byte, error) {
	f.urls = append(f.urls, url)
	return f.payload, f.err
}

func (f *fakeScript) Forward(_ context.Context, url string, body []byte) error {
	f.urls = append(f.urls, url)
	f.forwards = append(f.forwards, body)
	return f.err
}

func TestGetPassesBodyThrough(t *testing.T) {
	t.Parallel()
	script := &fakeScript{payload: []byte(`[{"painLevel":"3"}]`)}
	reply := service.NewProxyService(script, func() string { return "https://script.example/exec" }).Handle(context.Background(), http.MethodGet, nil)
	if reply.Status != http.StatusOK || reply.ContentType != dto.ContentJSON || string(reply.Body) != `[{"painLevel":"3"}]` {
		t.Fatalf("unexpected reply: %d %s %s", reply.Status, reply.ContentType, reply.Body)
	}
	if script.urls[0] != "https://script.example/exec" {
		t.Fatalf("unexpected url: %v", script.urls)
	}
}

func TestPostForwardsVerbatim(t *testing.T) {
	t.Parallel()
	script := &fakeScript{}
	body := []byte(`{"date":"2024-03-31","notes":"  spaced  "}`)
	reply := service.NewProxyService(script, func() string { return "u" }).Handle(context.Background(), http.MethodPost, body)
	if reply.Status != http.StatusOK || string(reply.Body) != `{"status":"success"}` {
		t.Fatalf("unexpected reply: %d %s", reply.Status, reply.Body)
	}
	if string(script.forwards[0]) != string(body) {
		t.Fatalf("body must be forwarded unchanged, got %s", script.forwards[0])
	}
}

func TestTransportFailureIs500WithErrorText(t *testing.T) {
	t.Parallel()
	script := &fakeScript{err: errors.New("dial tcp: connection refused")}
	for _, method := range []string{http.MethodGet, http.MethodPost} {
		reply := service.NewProxyService(script, func() string { return "u" }).Handle(context.Background(), method, []byte(`{}`))
		if reply.Status != http.StatusInternalServerError || string(reply.Body) != "dial tcp: connection refused" {
			t.Fatalf("%s: unexpected reply %d %s", method, reply.Status, reply.Body)
		}
		if reply.ContentType != dto.ContentText {
			t.Fatalf("%s: expected text content type, got %s", method, reply.ContentType)
		}
	}
}

func TestOtherMethodsAre405(t *testing.T) {
	t.Parallel()
	script := &fakeScript{}
	for _, method := range []string{http.MethodPut, http.MethodDelete, http.MethodPatch} {
		reply := service.NewProxyService(script, func() string { return "u" }).Handle(context.Background(), method, nil)
		if reply.Status != http.StatusMethodNotAllowed || string(reply.Body) != "Method Not Allowed" {
			t.Fatalf("%s: unexpected reply %d %s", method, reply.Status, reply.Body)
		}
	}
	if len(script.urls) != 0 {
		t.Fatalf("the script must not be contacted for %d requests", len(script.urls))
	}
}

func TestURLIsReadPerRequest(t *testing.T) {
	t.Parallel()
	script := &fakeScript{payload: []byte(`[]`)}
	urls := []string{"first", "second"}
	calls := 0
	svc := service.NewProxyService(script, func() string {
		u := urls[calls]
		calls++
		return u
	})
	svc.Handle(context.Background(), http.MethodGet, nil)
	svc.Handle(context.Background(), http.MethodGet, nil)
	if script.urls[0] != "first" || script.urls[1] != "second" {
		t.Fatalf("expected per-request lookup, got %v", script.urls)
	}
}
