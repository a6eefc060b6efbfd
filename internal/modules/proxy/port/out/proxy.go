package out

import "context"

// ScriptClient reaches the spreadsheet script.
type ScriptClient interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
	Forward(ctx context.Context, url string, body []byte) error
}

// URLSource yields the script URL. It is consulted on every request.
type URLSource func() string
