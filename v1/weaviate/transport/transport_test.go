package transport

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"
	"testing/iotest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.uber.org/mock/gomock"

	"github.com/Aleph-Alpha/weaviate-std/v1/observability"
)

type meta struct {
	Version  string `json:"version"`
	Hostname string `json:"hostname"`
}

type item struct {
	ID     string   `json:"id"`
	Status string   `json:"status"`
	Errors []string `json:"errors"`
}

func (i item) BatchStatus() string { return i.Status }

func newTestServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestTransport_URL(t *testing.T) {
	tr := New(Config{BaseURL: "http://localhost:8080/"})

	assert.Equal(t, "http://localhost:8080", tr.BaseURL())
	assert.Equal(t, "http://localhost:8080/v1/meta", tr.URL("/v1/meta", nil))
	assert.Equal(t, "http://localhost:8080/v1/meta", tr.URL("v1/meta", nil))
	assert.Equal(t, "http://localhost:8080/v1/objects?after=a%2Fb&limit=10",
		tr.URL("/v1/objects", url.Values{"limit": {"10"}, "after": {"a/b"}}))
	assert.Equal(t, "http://localhost:8080/v1/objects", tr.URL("/v1/objects", url.Values{}))
}

func TestGet_DecodesSuccessCaseInsensitively(t *testing.T) {
	srv := newTestServer(t, http.StatusOK, `{"Version":"1.28.2","HOSTNAME":"node1"}`)
	tr := New(Config{BaseURL: srv.URL})

	resp := Get[meta](context.Background(), tr, "/v1/meta", nil)

	require.True(t, resp.IsSuccess())
	require.Nil(t, resp.Error)
	require.NotNil(t, resp.Result)
	assert.Equal(t, "1.28.2", resp.Result.Version)
	assert.Equal(t, "node1", resp.Result.Hostname)
	assert.Equal(t, http.MethodGet, resp.Method)
	assert.Equal(t, srv.URL+"/v1/meta", resp.URI)
	assert.NoError(t, resp.Err())
}

func TestSend_EmptyBody(t *testing.T) {
	srv := newTestServer(t, http.StatusNoContent, "")
	tr := New(Config{BaseURL: srv.URL})

	obj := Delete[Object](context.Background(), tr, "/v1/schema/Pizza", nil)
	require.True(t, obj.IsSuccess())
	require.NotNil(t, obj.Result)
	assert.Empty(t, *obj.Result)
	assert.Nil(t, obj.Error)

	typed := Delete[meta](context.Background(), tr, "/v1/schema/Pizza", nil)
	assert.True(t, typed.IsSuccess())
	assert.Nil(t, typed.Result)
	assert.Nil(t, typed.Error)
}

func TestSend_DecodeFailureOnSuccess(t *testing.T) {
	srv := newTestServer(t, http.StatusOK, `{"version": 12`)
	tr := New(Config{BaseURL: srv.URL})

	resp := Get[meta](context.Background(), tr, "/v1/meta", nil)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Nil(t, resp.Result)
	require.NotNil(t, resp.Error)
	require.Len(t, resp.Error.Error, 1)
	assert.True(t, strings.HasPrefix(resp.Error.Error[0].Message, "Failed to deserialize response: "))
	assert.Error(t, resp.Err())
}

func TestSendBatch_ReshapesArray(t *testing.T) {
	srv := newTestServer(t, http.StatusOK,
		`[{"id":"a","status":"SUCCESS"},{"id":"b","status":"FAILED","errors":["x"]}]`)
	tr := New(Config{BaseURL: srv.URL})

	resp := SendBatch[item](context.Background(), tr, http.MethodPost, "/v1/batch/objects", map[string]any{"objects": []any{}}, nil)

	require.True(t, resp.IsSuccess())
	require.Nil(t, resp.Error)
	require.NotNil(t, resp.Result)
	assert.Equal(t, 1, resp.Result.Successful())
	assert.Equal(t, 1, resp.Result.Failed())
	assert.True(t, resp.Result.HasErrors())

	objects := resp.Result.Objects()
	require.Len(t, objects, 2)
	assert.Equal(t, "a", objects[0].ID)
	assert.Equal(t, "b", objects[1].ID)
	assert.Equal(t, []string{"x"}, objects[1].Errors)
}

func TestSendBatch_ObjectBodyIsDecodeError(t *testing.T) {
	srv := newTestServer(t, http.StatusOK, `{"id":"a"}`)
	tr := New(Config{BaseURL: srv.URL})

	resp := SendBatch[item](context.Background(), tr, http.MethodPost, "/v1/batch/objects", nil, nil)

	assert.Nil(t, resp.Result)
	require.NotNil(t, resp.Error)
	assert.Contains(t, resp.Error.Error[0].Message, "Failed to deserialize response")
}

func TestSend_ServerErrors(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		messages []string
	}{
		{
			name:     "structured error",
			status:   http.StatusNotFound,
			body:     `{"error":[{"message":"not found"}]}`,
			messages: []string{"not found"},
		},
		{
			name:     "several messages keep their order",
			status:   http.StatusUnprocessableEntity,
			body:     `{"error":[{"message":"first"},{"message":"second"}]}`,
			messages: []string{"first", "second"},
		},
		{
			name:     "single message object",
			status:   http.StatusForbidden,
			body:     `{"code":403,"message":"forbidden"}`,
			messages: []string{"forbidden"},
		},
		{
			name:     "raw body",
			status:   http.StatusBadGateway,
			body:     "upstream unavailable",
			messages: []string{"upstream unavailable"},
		},
		{
			name:     "empty body",
			status:   http.StatusInternalServerError,
			body:     "",
			messages: []string{"unexpected status 500 Internal Server Error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTestServer(t, tt.status, tt.body)
			tr := New(Config{BaseURL: srv.URL})

			resp := Get[meta](context.Background(), tr, "/v1/objects/Pizza/1", nil)

			assert.False(t, resp.IsSuccess())
			assert.Equal(t, tt.status, resp.StatusCode)
			assert.Nil(t, resp.Result)
			require.NotNil(t, resp.Error)
			assert.Equal(t, tt.messages, resp.Error.Messages())

			err := resp.Err()
			assert.True(t, IsServerError(err))
			assert.False(t, IsTransportFailure(err))
			assert.Equal(t, tt.status, StatusCode(err))
		})
	}
}

func TestSend_EnvelopeIsTotal(t *testing.T) {
	statuses := []int{200, 201, 204, 400, 401, 404, 422, 500, 503}
	bodies := []string{"", "{}", "[]", "null", "not json", `{"a":1}`, `{"error":[{"message":"m"}]}`}

	for _, status := range statuses {
		for _, body := range bodies {
			srv := newTestServer(t, status, body)
			tr := New(Config{BaseURL: srv.URL})

			resp := Get[Object](context.Background(), tr, "/", nil)

			if status >= 200 && status < 300 {
				assert.True(t, (resp.Result != nil) != (resp.Error != nil),
					"status %d body %q: result=%v error=%v", status, body, resp.Result, resp.Error)
			} else {
				assert.NotNil(t, resp.Error, "status %d body %q", status, body)
				assert.Nil(t, resp.Result, "status %d body %q", status, body)
			}
		}
	}
}

func TestSend_CancelledRequest(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
		w.WriteHeader(http.StatusOK)
		_, _ = io.WriteString(w, `{"version":"1.0.0"}`)
	}))
	defer srv.Close()
	defer close(release)

	tr := New(Config{BaseURL: srv.URL})

	ctx, cancel := context.WithCancel(context.Background())
	time.AfterFunc(50*time.Millisecond, cancel)

	resp := Get[meta](ctx, tr, "/v1/meta", nil)

	assert.Equal(t, 0, resp.StatusCode)
	assert.Nil(t, resp.Result)
	require.NotNil(t, resp.Error)
	assert.True(t, strings.HasPrefix(resp.Error.Error[0].Message, "Request failed: "))
	assert.Contains(t, resp.Error.Error[0].Message, context.Canceled.Error())
	assert.True(t, IsTransportFailure(resp.Err()))
}

func TestSend_ConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	base := srv.URL
	srv.Close()

	tr := New(Config{BaseURL: base, Timeout: time.Second})
	resp := Get[meta](context.Background(), tr, "/v1/meta", nil)

	assert.Nil(t, resp.Result)
	require.NotNil(t, resp.Error)
	assert.True(t, strings.HasPrefix(resp.Error.Error[0].Message, "Request failed: "))
}

func TestSend_UnencodableBody(t *testing.T) {
	tr := New(Config{BaseURL: "http://localhost:1"})

	resp := Post[Object](context.Background(), tr, "/v1/objects", map[string]any{"f": func() {}})

	assert.Nil(t, resp.Result)
	require.NotNil(t, resp.Error)
	assert.Contains(t, resp.Error.Error[0].Message, "Request failed: json: unsupported type")
}

func TestSend_RequestShape(t *testing.T) {
	var (
		gotMethod, gotPath, gotQuery, gotAuth, gotContentType, gotBody string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		raw, _ := io.ReadAll(r.Body)
		gotBody = string(raw)
		w.WriteHeader(http.StatusOK)
		_, _ = io.WriteString(w, `{}`)
	}))
	defer srv.Close()

	tr := New(Config{
		BaseURL: srv.URL,
		Headers: http.Header{"Authorization": {"Bearer secret"}},
	})

	resp := Send[Object](context.Background(), tr, http.MethodDelete, "v1/batch/objects",
		map[string]any{"dryRun": true}, url.Values{"consistency_level": {"ALL"}})

	require.True(t, resp.IsSuccess())
	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.Equal(t, "/v1/batch/objects", gotPath)
	assert.Equal(t, "consistency_level=ALL", gotQuery)
	assert.Equal(t, "Bearer secret", gotAuth)
	assert.Equal(t, "application/json", gotContentType)
	assert.JSONEq(t, `{"dryRun":true}`, gotBody)
	assert.JSONEq(t, `{"dryRun":true}`, resp.RequestBody)
	assert.Equal(t, `{}`, resp.ResponseBody)
}

func TestSend_MockDoerFailureIsLogged(t *testing.T) {
	ctrl := gomock.NewController(t)
	doer := NewMockHTTPDoer(ctrl)
	logger := NewMockLogger(ctrl)

	doer.EXPECT().Do(gomock.Any()).Return(nil, errors.New("dial tcp: connection refused"))
	logger.EXPECT().Warn("weaviate request failed", gomock.Any(), gomock.Any()).Times(1)

	tr := New(Config{BaseURL: "http://weaviate:8080", Doer: doer, Logger: logger})
	resp := Get[meta](context.Background(), tr, "/v1/meta", nil)

	require.NotNil(t, resp.Error)
	assert.Equal(t, []string{"Request failed: dial tcp: connection refused"}, resp.Error.Messages())
}

func TestSend_BodyReadFailureIsTransportFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	doer := NewMockHTTPDoer(ctrl)

	doer.EXPECT().Do(gomock.Any()).Return(&http.Response{
		StatusCode: http.StatusOK,
		Body:       io.NopCloser(iotest.ErrReader(context.DeadlineExceeded)),
	}, nil)

	tr := New(Config{BaseURL: "http://weaviate:8080", Doer: doer})
	resp := Get[meta](context.Background(), tr, "/v1/meta", nil)

	assert.Equal(t, 0, resp.StatusCode)
	assert.False(t, resp.IsSuccess())
	assert.Nil(t, resp.Result)
	require.NotNil(t, resp.Error)
	assert.Equal(t, []string{"Request failed: context deadline exceeded"}, resp.Error.Messages())
	assert.True(t, IsTransportFailure(resp.Err()))
	assert.False(t, IsServerError(resp.Err()))
}

func TestSend_MockDoerSuccessIsDebugLogged(t *testing.T) {
	ctrl := gomock.NewController(t)
	doer := NewMockHTTPDoer(ctrl)
	logger := NewMockLogger(ctrl)

	doer.EXPECT().Do(gomock.Any()).DoAndReturn(func(req *http.Request) (*http.Response, error) {
		assert.Equal(t, "http://weaviate:8080/v1/meta", req.URL.String())
		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(strings.NewReader(`{"version":"1.28.2"}`)),
		}, nil
	})
	logger.EXPECT().Debug("weaviate request", nil, gomock.Any()).Times(1)

	tr := New(Config{BaseURL: "http://weaviate:8080", Doer: doer, Logger: logger})
	resp := Get[meta](context.Background(), tr, "/v1/meta", nil)

	require.NotNil(t, resp.Result)
	assert.Equal(t, "1.28.2", resp.Result.Version)
}

func TestSend_RecordsSpans(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))

	srv := newTestServer(t, http.StatusNotFound, `{"error":[{"message":"not found"}]}`)
	tr := New(Config{BaseURL: srv.URL, TracerProvider: tp})

	_ = Get[meta](context.Background(), tr, "/v1/objects/x", nil)

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "weaviate.GET", spans[0].Name())
	assert.Equal(t, codes.Error, spans[0].Status().Code)
	require.NotEmpty(t, spans[0].Events())
	assert.Equal(t, "exception", spans[0].Events()[0].Name)
}

func TestSend_RawQueryStaysOutOfPath(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))

	var gotPath, gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		_, _ = io.WriteString(w, `[]`)
	}))
	defer srv.Close()

	var resources []string
	obs := observability.ObserverFunc(func(ctx observability.OperationContext) {
		resources = append(resources, ctx.Resource)
	})
	tr := New(Config{BaseURL: srv.URL, TracerProvider: tp, Observer: obs})

	resp := Do(context.Background(), tr, Request{
		Method:   http.MethodGet,
		Path:     "/v1/objects/explore",
		Query:    url.Values{"limit": {"3"}},
		RawQuery: "q=secret+pizza&collection=Pizza",
	}, PlainDecoder[[]Object]())

	require.True(t, resp.IsSuccess())
	assert.Equal(t, "/v1/objects/explore", gotPath)
	assert.Equal(t, "limit=3&q=secret+pizza&collection=Pizza", gotQuery)
	assert.Equal(t, srv.URL+"/v1/objects/explore?limit=3&q=secret+pizza&collection=Pizza", resp.URI)

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	for _, kv := range spans[0].Attributes() {
		if kv.Key == "url.path" {
			assert.Equal(t, "/v1/objects/explore", kv.Value.AsString())
		}
	}
	assert.Equal(t, []string{"/v1/objects/explore"}, resources)
}

func TestSend_NotifiesObserver(t *testing.T) {
	var got []observability.OperationContext
	obs := observability.ObserverFunc(func(ctx observability.OperationContext) {
		got = append(got, ctx)
	})

	srv := newTestServer(t, http.StatusOK, `{"version":"1"}`)
	tr := New(Config{BaseURL: srv.URL, Observer: obs})

	_ = Get[meta](context.Background(), tr, "/v1/meta", nil)

	require.Len(t, got, 1)
	assert.Equal(t, "weaviate", got[0].Component)
	assert.Equal(t, http.MethodGet, got[0].Operation)
	assert.Equal(t, "/v1/meta", got[0].Resource)
	assert.NoError(t, got[0].Error)
	assert.Equal(t, int64(len(`{"version":"1"}`)), got[0].Size)
	assert.Equal(t, http.StatusOK, got[0].Metadata["status_code"])
}

func TestAsync(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		_, _ = io.WriteString(w, `{"version":"1.28.2"}`)
	}))
	defer srv.Close()

	tr := New(Config{BaseURL: srv.URL})
	ctx := context.Background()

	a := Async(func() *Response[meta] { return Get[meta](ctx, tr, "/v1/meta", nil) })
	b := Async(func() *Response[meta] { return Get[meta](ctx, tr, "/v1/meta", nil) })

	ra, rb := <-a, <-b
	assert.Equal(t, "1.28.2", ra.Result.Version)
	assert.Equal(t, "1.28.2", rb.Result.Version)
	assert.Equal(t, int32(2), calls.Load())
}

type closeCounter struct {
	http.Client
	closed int
}

func (c *closeCounter) CloseIdleConnections() { c.closed++ }

func TestTransport_CloseOnce(t *testing.T) {
	doer := &closeCounter{}
	tr := New(Config{BaseURL: "http://localhost", Doer: doer})

	require.NoError(t, tr.Close())
	require.NoError(t, tr.Close())
	assert.Equal(t, 1, doer.closed)
}

func TestRewrap(t *testing.T) {
	src := &Response[meta]{
		StatusCode: http.StatusOK,
		Result:     &meta{Version: "1"},
		URI:        "http://x/v1/meta",
		Method:     http.MethodGet,
	}
	version := "1"
	out := Rewrap(src, &version)

	assert.Equal(t, http.StatusOK, out.StatusCode)
	assert.Equal(t, "1", *out.Result)
	assert.Equal(t, src.URI, out.URI)
	assert.Nil(t, out.Error)
}
