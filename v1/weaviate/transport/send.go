package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// Decoder turns a non-empty 2xx body into a result. The decoder is chosen
// by the caller together with the result type, so the batch reshape is a
// static choice rather than a runtime type check.
type Decoder[T any] func(body []byte) (*T, error)

// PlainDecoder unmarshals the body directly into T.
func PlainDecoder[T any]() Decoder[T] {
	return func(body []byte) (*T, error) {
		v := new(T)
		if err := json.Unmarshal(body, v); err != nil {
			return nil, err
		}
		return v, nil
	}
}

// BatchArrayDecoder unmarshals a bare JSON array of E and then derives the
// BatchResponse counters from each element's status.
func BatchArrayDecoder[E BatchItem]() Decoder[BatchResponse[E]] {
	return func(body []byte) (*BatchResponse[E], error) {
		var items []E
		if err := json.Unmarshal(body, &items); err != nil {
			return nil, err
		}
		b := NewBatchResponse(items)
		return &b, nil
	}
}

// Do performs one round trip and decodes the response with decode.
//
// Do never returns nil and never panics on remote failures: connection
// errors, timeouts, cancellation, non-2xx statuses and undecodable bodies
// all end up in Response.Error.
func Do[T any](ctx context.Context, t *Transport, r Request, decode Decoder[T]) *Response[T] {
	started := time.Now()
	ctx, span := t.startSpan(ctx, r)
	defer span.End()

	x := t.roundTrip(ctx, r)
	resp := newResponse(x, decode)

	t.finish(span, r, x, resp.Err(), started)
	return resp
}

func newResponse[T any](x *exchange, decode Decoder[T]) *Response[T] {
	resp := &Response[T]{
		StatusCode:   x.status,
		URI:          x.uri,
		Method:       x.method,
		RequestBody:  x.requestBody,
		ResponseBody: string(x.body),
	}

	switch {
	case x.failure != "":
		resp.Error = newErrorResponse(x.failure)
	case resp.IsSuccess():
		if len(bytes.TrimSpace(x.body)) == 0 {
			resp.Result = emptyResult[T]()
			return resp
		}
		result, err := decode(x.body)
		if err != nil {
			resp.Error = newErrorResponse("Failed to deserialize response: " + err.Error())
			return resp
		}
		resp.Result = result
	default:
		resp.Error = parseErrorBody(x.status, x.body)
	}
	return resp
}

// emptyResult is the result of a 2xx response without body: an empty Object
// when T is Object, nothing otherwise.
func emptyResult[T any]() *T {
	var zero T
	if _, ok := any(zero).(Object); ok {
		v := any(Object{}).(T)
		return &v
	}
	return nil
}

// parseErrorBody decodes the server error envelope, falling back to a bare
// {"message":...} object and finally to the raw body as the only message.
func parseErrorBody(status int, body []byte) *ErrorResponse {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return newErrorResponse(fmt.Sprintf("unexpected status %d %s", status, http.StatusText(status)))
	}

	var envelope ErrorResponse
	if err := json.Unmarshal(trimmed, &envelope); err == nil && len(envelope.Error) > 0 {
		return &envelope
	}

	var single Error
	if err := json.Unmarshal(trimmed, &single); err == nil && single.Message != "" {
		return newErrorResponse(single.Message)
	}

	return newErrorResponse(string(body))
}

// Send performs a request with any method, optional JSON body and query.
func Send[T any](ctx context.Context, t *Transport, method, path string, body any, query url.Values) *Response[T] {
	return Do(ctx, t, Request{Method: method, Path: path, Body: body, Query: query}, PlainDecoder[T]())
}

// SendBatch performs a request whose 2xx body is a JSON array of per-object
// results and reshapes it into a BatchResponse.
func SendBatch[E BatchItem](ctx context.Context, t *Transport, method, path string, body any, query url.Values) *Response[BatchResponse[E]] {
	return Do(ctx, t, Request{Method: method, Path: path, Body: body, Query: query}, BatchArrayDecoder[E]())
}

// Get performs a GET request with an optional query.
func Get[T any](ctx context.Context, t *Transport, path string, query url.Values) *Response[T] {
	return Send[T](ctx, t, http.MethodGet, path, nil, query)
}

// Post performs a POST request with a JSON body.
func Post[T any](ctx context.Context, t *Transport, path string, body any) *Response[T] {
	return Send[T](ctx, t, http.MethodPost, path, body, nil)
}

// Put performs a PUT request with a JSON body.
func Put[T any](ctx context.Context, t *Transport, path string, body any) *Response[T] {
	return Send[T](ctx, t, http.MethodPut, path, body, nil)
}

// Patch performs a PATCH request with a JSON body.
func Patch[T any](ctx context.Context, t *Transport, path string, body any) *Response[T] {
	return Send[T](ctx, t, http.MethodPatch, path, body, nil)
}

// Delete performs a DELETE request with an optional query.
func Delete[T any](ctx context.Context, t *Transport, path string, query url.Values) *Response[T] {
	return Send[T](ctx, t, http.MethodDelete, path, nil, query)
}

// Head performs a HEAD request. The status is the only outcome.
func Head(ctx context.Context, t *Transport, path string, query url.Values) *Response[Object] {
	return Send[Object](ctx, t, http.MethodHead, path, nil, query)
}

// Async runs call on its own goroutine and delivers the response on the
// returned channel, which receives exactly one value. Cancel the context
// captured by call to abort the request.
//
//	ch := transport.Async(func() *transport.Response[Meta] {
//	    return transport.Get[Meta](ctx, t, "/v1/meta", nil)
//	})
//	// ... other work ...
//	meta := <-ch
func Async[T any](call func() *Response[T]) <-chan *Response[T] {
	ch := make(chan *Response[T], 1)
	go func() {
		ch <- call()
	}()
	return ch
}
