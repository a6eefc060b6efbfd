package apperrors

import (
	"errors"
	"strconv"
)

var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrUpstream        = errors.New("upstream request failed")
	ErrReloadAfterSave = errors.New("record saved but reload failed")
)

// HTTPStatusError reports a non-2xx reply from a collaborator.
type HTTPStatusError struct {
	Status int
}

func (e *HTTPStatusError) Error() string {
	return "HTTP error! status: " + strconv.Itoa(e.Status)
}

func (e *HTTPStatusError) Unwrap() error {
	return ErrUpstream
}
