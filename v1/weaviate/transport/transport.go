package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/Aleph-Alpha/weaviate-std/v1/observability"
)

const (
	component  = "weaviate"
	tracerName = "github.com/Aleph-Alpha/weaviate-std/v1/weaviate/transport"
)

// Transport owns the HTTP channel to one server. It is safe for concurrent
// use; calls share the connection pool and nothing else.
type Transport struct {
	baseURL  string
	headers  http.Header
	doer     HTTPDoer
	logger   Logger
	observer observability.Observer
	tracer   trace.Tracer
	debug    bool

	closeOnce sync.Once
}

// New creates a Transport. Without cfg.Doer it creates its own *http.Client.
func New(cfg Config) *Transport {
	doer := cfg.Doer
	if doer == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		doer = &http.Client{Timeout: timeout}
	}

	var logger Logger = nopLogger{}
	if cfg.Logger != nil {
		logger = cfg.Logger
	}

	tp := cfg.TracerProvider
	if tp == nil {
		tp = otel.GetTracerProvider()
	}

	return &Transport{
		baseURL:  strings.TrimRight(cfg.BaseURL, "/"),
		headers:  cfg.Headers.Clone(),
		doer:     doer,
		logger:   logger,
		observer: cfg.Observer,
		tracer:   tp.Tracer(tracerName),
		debug:    cfg.Debug,
	}
}

// BaseURL returns the base URL without trailing slash.
func (t *Transport) BaseURL() string {
	return t.baseURL
}

// URL joins the base URL, path and encoded query parameters.
func (t *Transport) URL(path string, query url.Values) string {
	u := t.baseURL + "/" + strings.TrimLeft(path, "/")
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

func (t *Transport) requestURL(r Request) string {
	u := t.URL(r.Path, r.Query)
	if r.RawQuery == "" {
		return u
	}
	if len(r.Query) > 0 {
		return u + "&" + r.RawQuery
	}
	return u + "?" + r.RawQuery
}

// Close releases idle connections of the underlying client. It is safe to
// call more than once; only the first call has an effect.
func (t *Transport) Close() error {
	t.closeOnce.Do(func() {
		if c, ok := t.doer.(interface{ CloseIdleConnections() }); ok {
			c.CloseIdleConnections()
		}
	})
	return nil
}

// Request describes one HTTP call relative to the base URL.
type Request struct {
	Method string
	Path   string

	// Body is JSON encoded when non-nil.
	Body any

	Query url.Values

	// RawQuery is an already encoded query string appended after Query. It
	// keeps parameters in the order the caller wrote them.
	RawQuery string
}

// exchange is the raw outcome of one round trip.
type exchange struct {
	method      string
	uri         string
	requestBody string
	status      int
	body        []byte

	// failure is set when the exchange did not produce a readable response.
	failure string
	cause   error
}

func (t *Transport) roundTrip(ctx context.Context, r Request) *exchange {
	x := &exchange{method: r.Method, uri: t.requestURL(r)}

	var reader io.Reader
	if r.Body != nil {
		raw, err := json.Marshal(r.Body)
		if err != nil {
			x.fail("Request failed", err)
			return x
		}
		x.requestBody = string(raw)
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, r.Method, x.uri, reader)
	if err != nil {
		x.fail("Request failed", err)
		return x
	}
	req.Header.Set("Accept", "application/json")
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, values := range t.headers {
		for _, v := range values {
			req.Header.Add(k, v)
		}
	}
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	resp, err := t.doer.Do(req)
	if err != nil {
		x.fail("Request failed", err)
		return x
	}
	defer func() { _ = resp.Body.Close() }()

	x.body, err = io.ReadAll(resp.Body)
	if err != nil {
		// Headers arrived but the body did not: no usable HTTP answer.
		x.fail("Request failed", err)
		return x
	}
	x.status = resp.StatusCode
	return x
}

func (x *exchange) fail(prefix string, err error) {
	x.cause = err
	x.failure = fmt.Sprintf("%s: %v", prefix, err)
}

func (t *Transport) startSpan(ctx context.Context, r Request) (context.Context, trace.Span) {
	return t.tracer.Start(ctx, component+"."+r.Method,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.request.method", r.Method),
			attribute.String("url.path", r.Path),
			attribute.String("server.address", t.baseURL),
		),
	)
}

// finish records the outcome on the span, the logger and the observer.
func (t *Transport) finish(span trace.Span, r Request, x *exchange, err error, started time.Time) {
	duration := time.Since(started)

	span.SetAttributes(attribute.Int("http.response.status_code", x.status))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}

	fields := map[string]interface{}{
		"method":      x.method,
		"uri":         x.uri,
		"status":      x.status,
		"duration_ms": duration.Milliseconds(),
	}
	if t.debug {
		fields["request_body"] = x.requestBody
		fields["response_body"] = string(x.body)
	}
	if x.failure != "" {
		t.logger.Warn("weaviate request failed", x.cause, fields)
	} else {
		t.logger.Debug("weaviate request", nil, fields)
	}

	t.observeOperation(r, x, err, duration)
}

func (t *Transport) observeOperation(r Request, x *exchange, err error, duration time.Duration) {
	if t.observer == nil {
		return
	}
	size := int64(len(x.body))
	if x.failure != "" && x.status == 0 {
		size = -1
	}
	t.observer.ObserveOperation(observability.OperationContext{
		Component: component,
		Operation: r.Method,
		Resource:  r.Path,
		Duration:  duration,
		Error:     err,
		Size:      size,
		Metadata: map[string]interface{}{
			"status_code": x.status,
		},
	})
}
