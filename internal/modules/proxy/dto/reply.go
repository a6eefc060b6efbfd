package dto

import "net/http"

const (
	ContentJSON = "application/json"
	ContentText = "text/plain; charset=utf-8"
)

// Reply is what the proxy sends back for one request.
type Reply struct {
	Status      int
	ContentType string
	Body        []byte
}

var successBody = []byte(`{"status":"success"}`)

func JSON(body []byte) Reply {
	return Reply{Status: http.StatusOK, ContentType: ContentJSON, Body: body}
}

func Saved() Reply {
	return Reply{Status: http.StatusOK, ContentType: ContentJSON, Body: successBody}
}

// Failure carries the error text as the whole body.
func Failure(err error) Reply {
	return Reply{Status: http.StatusInternalServerError, ContentType: ContentText, Body: []byte(err.Error())}
}

func MethodNotAllowed() Reply {
	return Reply{Status: http.StatusMethodNotAllowed, ContentType: ContentText, Body: []byte("Method Not Allowed")}
}
