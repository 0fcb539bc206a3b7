package transport

import (
	"fmt"
	"net/http"
	"strings"
)

// Object is the placeholder result type for endpoints whose body carries no
// useful payload. An empty 2xx body decodes to an empty, non-nil Object.
type Object map[string]any

// Error is a single server-reported error message.
type Error struct {
	Message string `json:"message"`
}

// ErrorResponse is the server's error envelope, `{"error":[{"message":"..."}]}`.
type ErrorResponse struct {
	Error []Error `json:"error"`
}

// Messages returns the messages in server order.
func (e *ErrorResponse) Messages() []string {
	if e == nil {
		return nil
	}
	out := make([]string, len(e.Error))
	for i, m := range e.Error {
		out[i] = m.Message
	}
	return out
}

func newErrorResponse(message string) *ErrorResponse {
	return &ErrorResponse{Error: []Error{{Message: message}}}
}

// Response is the envelope returned by every transport call.
//
// StatusCode is 0 when no HTTP response was received. Callers must check
// IsSuccess before trusting Result, and must not assume Error is nil just
// because Result is set.
type Response[T any] struct {
	StatusCode int
	Result     *T
	Error      *ErrorResponse

	// Diagnostics of the exchange.
	URI          string
	Method       string
	RequestBody  string
	ResponseBody string
}

// IsSuccess reports whether the server answered with a 2xx status.
func (r *Response[T]) IsSuccess() bool {
	return r != nil && r.StatusCode >= http.StatusOK && r.StatusCode < http.StatusMultipleChoices
}

// Err converts the envelope into a Go error: nil for a 2xx response without
// an error, a *ServerError otherwise.
func (r *Response[T]) Err() error {
	if r == nil {
		return &ServerError{Messages: []string{"nil response"}}
	}
	if r.IsSuccess() && r.Error == nil {
		return nil
	}
	return &ServerError{
		StatusCode: r.StatusCode,
		Method:     r.Method,
		URI:        r.URI,
		Messages:   r.Error.Messages(),
	}
}

// Rewrap copies the status, error and diagnostics of r into a response with
// a different result type.
func Rewrap[T, U any](r *Response[U], result *T) *Response[T] {
	return &Response[T]{
		StatusCode:   r.StatusCode,
		Result:       result,
		Error:        r.Error,
		URI:          r.URI,
		Method:       r.Method,
		RequestBody:  r.RequestBody,
		ResponseBody: r.ResponseBody,
	}
}

// ServerError is the error form of a failed Response. StatusCode 0 means
// the request never got an HTTP answer.
type ServerError struct {
	StatusCode int
	Method     string
	URI        string
	Messages   []string
}

// Error joins the envelope messages.
func (e *ServerError) Error() string {
	msg := strings.Join(e.Messages, "; ")
	if msg == "" {
		msg = http.StatusText(e.StatusCode)
	}
	if e.StatusCode == 0 {
		return fmt.Sprintf("weaviate: %s %s: %s", e.Method, e.URI, msg)
	}
	return fmt.Sprintf("weaviate: %s %s: status %d: %s", e.Method, e.URI, e.StatusCode, msg)
}
